package redis

import "time"

// Client is the facade: a connSet, a per-client command catalog, and an
// optional pipeline in progress. A Client is not safe for concurrent use by
// multiple goroutines (see the package doc comment).
type Client struct {
	cs      connSet
	catalog catalog
	pipe    *pipeline
}

// Option configures a Client at construction time.
type Option func(*clientConfig)

type clientConfig struct {
	connectTimeout time.Duration
	ioTimeout      time.Duration
}

// WithConnectTimeout overrides the default connection-establishment timeout.
func WithConnectTimeout(d time.Duration) Option {
	return func(c *clientConfig) { c.connectTimeout = d }
}

// WithIOTimeout overrides the default per-read/write timeout.
func WithIOTimeout(d time.Duration) Option {
	return func(c *clientConfig) { c.ioTimeout = d }
}

func buildConfig(opts []Option) clientConfig {
	var cfg clientConfig
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// NewClient returns a Client talking to a single server at addr (host:port,
// or a Unix domain socket path).
func NewClient(addr string, opts ...Option) *Client {
	cfg := buildConfig(opts)
	return &Client{
		cs:      newSingleConnSet(addr, cfg.connectTimeout, cfg.ioTimeout),
		catalog: defaultCatalog.clone(),
	}
}

// NewShardedClient returns a Client that distributes shardable commands
// across nodes by consistent hashing.
func NewShardedClient(nodes []string, opts ...Option) *Client {
	cfg := buildConfig(opts)
	return &Client{
		cs:      newShardedConnSet(nodes, cfg.connectTimeout, cfg.ioTimeout),
		catalog: defaultCatalog.clone(),
	}
}

// Connect dials the underlying transport(s).
func (c *Client) Connect() error { return c.cs.connect() }

// Disconnect closes the underlying transport(s). It is idempotent.
func (c *Client) Disconnect() error { return c.cs.disconnect() }

// IsConnected reports whether at least one underlying transport is open.
func (c *Client) IsConnected() bool { return c.cs.isConnected() }

// RegisterCommand adds or replaces a command descriptor under name, scoped
// to this Client only — it never affects the shared default catalog or any
// other Client.
func (c *Client) RegisterCommand(name string, cmd *Command) {
	c.catalog[name] = cmd.toInternal()
}

// RegisterCommands adds or replaces several descriptors at once.
func (c *Client) RegisterCommands(cmds map[string]*Command) {
	for name, cmd := range cmds {
		c.catalog[name] = cmd.toInternal()
	}
}

// Do looks up name in the client's catalog and issues it with args, either
// directly against the connection set or, while a Pipeline block is open,
// buffered into that pipeline for later flush.
func (c *Client) Do(name string, args ...interface{}) (interface{}, error) {
	cmd, err := c.catalog.lookup(name)
	if err != nil {
		return nil, err
	}
	iv := invocation{cmd: cmd, args: args}

	if c.pipe != nil {
		c.pipe.submit(iv)
		return nil, nil
	}
	return c.cs.execute(iv)
}

// Pipeline opens a pipelining block for the lexical duration of fn: every
// Do call made on c from within fn is buffered rather than sent immediately,
// then flushed as one batch when fn returns nil. If fn returns an error,
// nothing is sent and that error is returned wrapped in a PipelineError. It
// fails with a ClientError, without calling fn, if the underlying connection
// set is sharded (pipelining across shards is not well-defined) or if a
// pipeline is already open.
func (c *Client) Pipeline(fn func(p *Client) error) ([]interface{}, error) {
	if c.pipe != nil {
		return nil, newClientError("pipeline already open")
	}
	p, err := newPipeline(c.cs)
	if err != nil {
		return nil, err
	}

	c.pipe = p
	err = fn(c)
	c.pipe = nil
	if err != nil {
		return nil, newPipelineError(err)
	}
	return p.flush()
}

// Raw sends a caller-provided byte string straight to the wire and, if
// readReply is set, parses and returns exactly one reply frame unshaped. It
// is available only when the Client talks to a single endpoint — a sharded
// Client has no one transport to send it on.
func (c *Client) Raw(b []byte, readReply bool) (reply, error) {
	single, ok := c.cs.(*singleConnSet)
	if !ok {
		return reply{}, newClientError("raw commands require a single-endpoint client")
	}
	return single.c.raw(b, readReply)
}
