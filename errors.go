package redis

import (
	"errors"
	"fmt"
)

// errNull represents the null bulk/multibulk/integer reply. No function in
// the package returns it: the parser marks absence with reply.Null, and the
// shapers fold absence into their return value (nil, a zero value, or an
// empty slice).
var errNull = errors.New("redis: null reply")

// ClientError reports local misuse or a local precondition failure: an
// unknown command name, a raw command issued against a sharded client,
// connecting twice, a failed dial, using a transport that is not connected,
// or opening a pipeline against a sharded connection set or inside another
// pipeline. It never reaches the wire. Arguments are not validated: one of
// an unsupported type is sent as an empty string (see toBytesArgs).
type ClientError struct {
	msg string
}

func newClientError(format string, a ...interface{}) *ClientError {
	return &ClientError{msg: fmt.Sprintf(format, a...)}
}

func (e *ClientError) Error() string { return "redis: " + e.msg }

// ServerError is a message sent by the server in a `-` reply.
type ServerError string

// Error honors the error interface.
func (e ServerError) Error() string {
	return fmt.Sprintf("redis: server error %q", string(e))
}

// Prefix returns the first word of the message, which conventionally names
// the error kind (e.g. "WRONGTYPE").
func (e ServerError) Prefix() string {
	s := string(e)
	for i, r := range s {
		if r == ' ' {
			return s[:i]
		}
	}
	return s
}

// MalformedResponse means the byte stream could not be aligned with the
// protocol: an unrecognized reply prefix, or a length field that is not a
// decimal integer. The connection that produced it must be disconnected
// before further use — the stream is no longer assumed aligned.
type MalformedResponse struct {
	msg string
	err error
}

func newMalformedResponse(msg string, cause error) *MalformedResponse {
	return &MalformedResponse{msg: msg, err: cause}
}

func (e *MalformedResponse) Error() string {
	if e.err != nil {
		return fmt.Sprintf("redis: malformed response: %s: %v", e.msg, e.err)
	}
	return fmt.Sprintf("redis: malformed response: %s", e.msg)
}

func (e *MalformedResponse) Unwrap() error { return e.err }

// CommunicationError wraps a transport-level I/O failure: a timeout or a
// connection reset. The underlying error is usually a net.Error.
type CommunicationError struct {
	err error
}

func newCommunicationError(cause error) *CommunicationError {
	return &CommunicationError{err: cause}
}

func (e *CommunicationError) Error() string {
	return fmt.Sprintf("redis: communication error: %v", e.err)
}

func (e *CommunicationError) Unwrap() error { return e.err }

// PipelineError wraps the first failure encountered inside, or surrounding,
// a Pipeline block. The result list produced by that block is discarded.
type PipelineError struct {
	err error
}

func newPipelineError(cause error) *PipelineError {
	return &PipelineError{err: cause}
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("redis: pipeline failed: %v", e.err)
}

func (e *PipelineError) Unwrap() error { return e.err }
