package redis

import (
	"bufio"
	"net"
	"time"
)

// conn is the single-endpoint transport: host, port, and a socket handle
// that is present iff connected. disconnect is idempotent; reconnect is
// explicit — there is no background reconnect routine.
type conn struct {
	addr string

	connectTimeout time.Duration
	ioTimeout      time.Duration

	nc     net.Conn
	reader *bufio.Reader
}

func newConn(addr string, connectTimeout, ioTimeout time.Duration) *conn {
	if connectTimeout == 0 {
		connectTimeout = defaultConnectTimeout
	}
	if ioTimeout == 0 {
		ioTimeout = defaultIOTimeout
	}
	return &conn{
		addr:           normalizeAddr(addr),
		connectTimeout: connectTimeout,
		ioTimeout:      ioTimeout,
	}
}

// connect establishes a blocking TCP (or Unix domain socket) connection. It
// fails with a ClientError if already connected.
func (c *conn) connect() error {
	if c.nc != nil {
		return newClientError("already connected to %s", c.addr)
	}

	network := "tcp"
	if isUnixAddr(c.addr) {
		network = "unix"
	}
	nc, err := net.DialTimeout(network, c.addr, c.connectTimeout)
	if err != nil {
		return newClientError("connect to %s: %v", c.addr, err)
	}
	if tcp, ok := nc.(*net.TCPConn); ok {
		tcp.SetNoDelay(true)
	}

	c.nc = nc
	c.reader = bufio.NewReaderSize(nc, conservativeMSS)
	return nil
}

// disconnect closes the socket idempotently.
func (c *conn) disconnect() error {
	if c.nc == nil {
		return nil
	}
	err := c.nc.Close()
	c.nc = nil
	c.reader = nil
	return err
}

func (c *conn) isConnected() bool {
	return c.nc != nil
}

// writeCommand serializes iv and writes the whole frame, looping until the
// payload is drained. A partial-failure mid-write fails the connection by
// disconnecting.
func (c *conn) writeCommand(iv invocation) error {
	if c.nc == nil {
		return newClientError("not connected")
	}
	if c.ioTimeout != 0 {
		c.nc.SetWriteDeadline(time.Now().Add(c.ioTimeout))
	}
	frame := iv.encode()
	if _, err := writeFull(c.nc, frame); err != nil {
		c.disconnect()
		return newCommunicationError(err)
	}
	return nil
}

func writeFull(w net.Conn, buf []byte) (int, error) {
	done := 0
	for done < len(buf) {
		n, err := w.Write(buf[done:])
		done += n
		if err != nil {
			return done, err
		}
	}
	return done, nil
}

// readResponse parses one reply frame and applies cmd's response shaper. If
// cmd closes the connection, the transport drops the socket after the write
// already happened in writeCommand, and this returns nothing further.
func (c *conn) readResponse(cmd *command) (interface{}, error) {
	if cmd.closesConn {
		c.disconnect()
		return nil, nil
	}
	if c.nc == nil {
		return nil, newClientError("not connected")
	}
	if c.ioTimeout != 0 {
		c.nc.SetReadDeadline(time.Now().Add(c.ioTimeout))
	}
	r, err := parseReply(c.reader)
	if err != nil {
		c.disconnect()
		return nil, err
	}
	return cmd.shape(r)
}

// raw sends a caller-provided byte string and, if readReply is set, parses
// and returns exactly one reply frame unshaped. This is an escape hatch for
// callers that need to issue a command the catalog doesn't cover; it is
// available only on the single-endpoint transport, never on the sharded
// one, which has no single transport to send it on.
func (c *conn) raw(b []byte, readReply bool) (reply, error) {
	if c.nc == nil {
		return reply{}, newClientError("not connected")
	}
	if c.ioTimeout != 0 {
		c.nc.SetWriteDeadline(time.Now().Add(c.ioTimeout))
	}
	if _, err := writeFull(c.nc, b); err != nil {
		c.disconnect()
		return reply{}, newCommunicationError(err)
	}
	if !readReply {
		return reply{}, nil
	}
	if c.ioTimeout != 0 {
		c.nc.SetReadDeadline(time.Now().Add(c.ioTimeout))
	}
	r, err := parseReply(c.reader)
	if err != nil {
		c.disconnect()
		return reply{}, err
	}
	return r, nil
}
