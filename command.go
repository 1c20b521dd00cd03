package redis

import (
	"strconv"
)

// shaper turns a parsed reply into the logical value handed back to the
// caller. It is a pure function of the reply tree.
type shaper func(reply) (interface{}, error)

// argsFilter normalizes the caller's raw argument list into the byte-string
// list that gets encoded on the wire. The default (nil) filter is
// toBytesArgs; SORT and SLAVEOF install their own.
type argsFilter func(args []interface{}) [][]byte

// command is the immutable descriptor registered per verb. One value exists
// per registered name.
type command struct {
	verb       string // wire verb, uppercase ASCII
	encoding   encodingKind
	shape      shaper
	shardable  bool
	closesConn bool
	filter     argsFilter
}

// Encoding, ReplyShaper, ArgsFilter, and Reply are the exported names for
// this package's internal request-framing enum, shaper/filter function
// types, and reply tree, so a caller outside the package can spell and
// construct a Command value for RegisterCommand/RegisterCommands.
type (
	Encoding    = encodingKind
	ReplyShaper = shaper
	ArgsFilter  = argsFilter
	Reply       = reply
)

// The exported names for the three request encodings (see encodingKind).
const (
	InlineEncoding    = inline
	BulkEncoding      = bulk
	MultiBulkEncoding = multiBulk
)

// The exported names for the five reply kinds (see replyKind).
const (
	StatusReplyKind    = statusReply
	ErrorReplyKind     = errorReply
	BulkReplyKind      = bulkReply
	MultiBulkReplyKind = multiBulkReply
	IntegerReplyKind   = integerReply
)

// Command is the public descriptor shape: everything RegisterCommand and
// RegisterCommands need to extend a Client's catalog from outside the
// package. It mirrors the package's internal command type field for field.
type Command struct {
	Verb       string
	Encoding   Encoding
	Shape      ReplyShaper
	Shardable  bool
	ClosesConn bool
	Filter     ArgsFilter
}

// NewCommand builds a Command from its parts. filter may be nil, meaning
// the default argument conversion (toBytesArgs-equivalent) applies.
func NewCommand(verb string, encoding Encoding, shape ReplyShaper, shardable, closesConn bool, filter ArgsFilter) *Command {
	return &Command{
		Verb:       verb,
		Encoding:   encoding,
		Shape:      shape,
		Shardable:  shardable,
		ClosesConn: closesConn,
		Filter:     filter,
	}
}

// toInternal converts a public Command into the package's own descriptor
// shape, the form the catalog actually stores.
func (c *Command) toInternal() *command {
	return &command{
		verb:       c.Verb,
		encoding:   c.Encoding,
		shape:      c.Shape,
		shardable:  c.Shardable,
		closesConn: c.ClosesConn,
		filter:     c.Filter,
	}
}

// invocation is a descriptor plus an ordered raw argument list. It is built
// per call and consumed once.
type invocation struct {
	cmd  *command
	args []interface{}
}

// routingKey returns the argument used to pick a shard, and whether one is
// present. Only shardable commands' first argument is used for routing, and
// only when it is a byte-representable scalar.
func (iv invocation) routingKey() ([]byte, bool) {
	if !iv.cmd.shardable || len(iv.args) == 0 {
		return nil, false
	}
	b, ok := toBytesArg(iv.args[0])
	return b, ok
}

func (iv invocation) encode() []byte {
	filter := iv.cmd.filter
	if filter == nil {
		filter = toBytesArgs
	}
	return encode(iv.cmd, filter(iv.args))
}

// toBytesArg converts one caller-supplied scalar into its wire byte-string
// representation. Supported shapes: []byte, string, and the signed integer
// types (formatted as decimal ASCII).
func toBytesArg(a interface{}) ([]byte, bool) {
	switch v := a.(type) {
	case []byte:
		return v, true
	case string:
		return []byte(v), true
	case int:
		return []byte(strconv.Itoa(v)), true
	case int8:
		return []byte(strconv.FormatInt(int64(v), 10)), true
	case int16:
		return []byte(strconv.FormatInt(int64(v), 10)), true
	case int32:
		return []byte(strconv.FormatInt(int64(v), 10)), true
	case int64:
		return []byte(strconv.FormatInt(v, 10)), true
	default:
		return nil, false
	}
}

// toBytesArgs is the default argsFilter: every scalar argument is converted
// with toBytesArg. A []KV argument, wherever it appears, is flattened in place
// into key/value elements preserving the given order — the multi-bulk
// flattening rule for a mapping-shaped argument. A list argument ([]string or
// [][]byte) is expanded in place into its elements, so an inline command
// sends them space-joined. Any other argument type becomes an empty string.
func toBytesArgs(args []interface{}) [][]byte {
	if len(args) == 1 {
		if pairs, ok := args[0].([]KV); ok {
			return flattenPairs(pairs)
		}
	}
	out := make([][]byte, 0, len(args))
	for _, a := range args {
		if pairs, ok := a.([]KV); ok {
			out = append(out, flattenPairs(pairs)...)
			continue
		}
		if list, ok := a.([]string); ok {
			for _, s := range list {
				out = append(out, []byte(s))
			}
			continue
		}
		if list, ok := a.([][]byte); ok {
			out = append(out, list...)
			continue
		}
		b, ok := toBytesArg(a)
		if !ok {
			b = []byte{}
		}
		out = append(out, b)
	}
	return out
}

// catalog maps a human command name to its descriptor. Unknown lookups are a
// ClientError.
type catalog map[string]*command

func (c catalog) lookup(name string) (*command, error) {
	cmd, ok := c[name]
	if !ok {
		return nil, newClientError("unknown command %q", name)
	}
	return cmd, nil
}

// clone returns a shallow copy suitable for per-client registration: callers
// may add/replace entries without mutating the shared default catalog.
func (c catalog) clone() catalog {
	out := make(catalog, len(c))
	for k, v := range c {
		out[k] = v
	}
	return out
}

// --- shared shapers, shared across many commands ---

func shapeStatusOK(r reply) (interface{}, error) {
	if r.Kind == errorReply {
		return nil, ServerError(r.Err)
	}
	return r.StatusTrue, nil
}

func shapeStatusText(r reply) (interface{}, error) {
	if r.Kind == errorReply {
		return nil, ServerError(r.Err)
	}
	return r.Status, nil
}

func shapeBool(r reply) (interface{}, error) {
	switch r.Kind {
	case errorReply:
		return nil, ServerError(r.Err)
	case integerReply:
		return r.Integer != 0, nil
	default:
		return nil, newMalformedResponse("expected integer reply for boolean coercion", nil)
	}
}

func shapeInteger(r reply) (interface{}, error) {
	switch r.Kind {
	case errorReply:
		return nil, ServerError(r.Err)
	case integerReply:
		if r.Null {
			return int64(0), nil
		}
		return r.Integer, nil
	default:
		return nil, newMalformedResponse("expected integer reply", nil)
	}
}

func shapeBulk(r reply) (interface{}, error) {
	switch r.Kind {
	case errorReply:
		return nil, ServerError(r.Err)
	case bulkReply:
		if r.Null {
			return nil, nil
		}
		return r.Bulk, nil
	default:
		return nil, newMalformedResponse("expected bulk reply", nil)
	}
}

func shapeBulkArray(r reply) (interface{}, error) {
	switch r.Kind {
	case errorReply:
		return nil, ServerError(r.Err)
	case multiBulkReply:
		if r.Null {
			return nil, nil
		}
		out := make([][]byte, len(r.Multi))
		for i, item := range r.Multi {
			if item.Kind != bulkReply || item.Null {
				out[i] = nil
				continue
			}
			out[i] = item.Bulk
		}
		return out, nil
	default:
		return nil, newMalformedResponse("expected multibulk reply", nil)
	}
}

// shapePing returns true iff the server payload equals "PONG".
func shapePing(r reply) (interface{}, error) {
	v, err := shapeStatusText(r)
	if err != nil {
		return nil, err
	}
	if s, ok := v.(string); ok {
		return s == "PONG", nil
	}
	return false, nil
}

// shapeKeys decodes the multibulk array the protocol returns for KEYS,
// rather than treating the reply as one space-joined string.
func shapeKeys(r reply) (interface{}, error) {
	v, err := shapeBulkArray(r)
	if err != nil {
		return nil, err
	}
	list, _ := v.([][]byte)
	if list == nil {
		return [][]byte{}, nil
	}
	return list, nil
}

// shapeRandomKey returns an absent bulk string as an empty string.
func shapeRandomKey(r reply) (interface{}, error) {
	v, err := shapeBulk(r)
	if err != nil {
		return nil, err
	}
	b, _ := v.([]byte)
	return string(b), nil
}

// shapeInfo splits the INFO payload on CRLF, then each non-empty line on the
// first colon, yielding an ordered mapping.
func shapeInfo(r reply) (interface{}, error) {
	v, err := shapeBulk(r)
	if err != nil {
		return nil, err
	}
	b, _ := v.([]byte)
	return parseInfo(b), nil
}

func parseInfo(b []byte) []KV {
	var out []KV
	start := 0
	i := 0
	for i <= len(b) {
		atBreak := i+1 < len(b) && b[i] == '\r' && b[i+1] == '\n'
		if i == len(b) || atBreak {
			line := b[start:i]
			if len(line) > 0 {
				if idx := indexByte(line, ':'); idx >= 0 {
					out = append(out, KV{Key: append([]byte(nil), line[:idx]...), Value: append([]byte(nil), line[idx+1:]...)})
				} else {
					out = append(out, KV{Key: append([]byte(nil), line...), Value: nil})
				}
			}
			if i == len(b) {
				break
			}
			start = i + 2
			i += 2
			continue
		}
		i++
	}
	return out
}

func indexByte(b []byte, c byte) int {
	for i, x := range b {
		if x == c {
			return i
		}
	}
	return -1
}

// --- argument filters ---

// SortOptions mirrors SORT's options-mapping argument, rewritten into the
// fixed-order suffix [BY pat] [GET pat] [LIMIT off cnt] [ASC|DESC] [ALPHA] [STORE dst].
type SortOptions struct {
	By         string
	Get        []string
	HasLimit   bool
	Offset     int64
	Count      int64
	Descending bool
	Alpha      bool
	Store      string
}

// filterSort expects args = [key, *SortOptions]. The key is passed through;
// the options are rewritten into a fixed-order suffix.
func filterSort(args []interface{}) [][]byte {
	if len(args) == 0 {
		return nil
	}
	key, _ := toBytesArg(args[0])
	out := [][]byte{key}
	opts, _ := args[len(args)-1].(*SortOptions)
	if opts == nil {
		return out
	}
	if opts.By != "" {
		out = append(out, []byte("BY"), []byte(opts.By))
	}
	for _, g := range opts.Get {
		out = append(out, []byte("GET"), []byte(g))
	}
	if opts.HasLimit {
		out = append(out, []byte("LIMIT"), []byte(strconv.FormatInt(opts.Offset, 10)), []byte(strconv.FormatInt(opts.Count, 10)))
	}
	if opts.Descending {
		out = append(out, []byte("DESC"))
	} else {
		out = append(out, []byte("ASC"))
	}
	if opts.Alpha {
		out = append(out, []byte("ALPHA"))
	}
	if opts.Store != "" {
		out = append(out, []byte("STORE"), []byte(opts.Store))
	}
	return out
}

// filterSlaveOf rewrites a no-argument SLAVEOF into the literal "NO ONE".
func filterSlaveOf(args []interface{}) [][]byte {
	if len(args) == 0 {
		return [][]byte{[]byte("NO"), []byte("ONE")}
	}
	return toBytesArgs(args)
}
