package redis

import (
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeServer accepts exactly one connection, drains whatever the client
// writes (the tests here don't assert on request bytes), and writes back
// the given replies in order, back to back, letting the pipeline's
// batched-write / in-order-read behavior actually exercise the network.
func fakeServer(t *testing.T, replies []string) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		go io.Copy(io.Discard, conn)
		for _, r := range replies {
			if _, err := conn.Write([]byte(r)); err != nil {
				return
			}
		}
	}()

	t.Cleanup(func() { ln.Close() })
	return ln.Addr().String()
}

func TestPipelineRejectsShardedConnSet(t *testing.T) {
	cs := newShardedConnSet([]string{"a:1", "b:1"}, 0, 0)
	_, err := newPipeline(cs)
	require.Error(t, err)
	var ce *ClientError
	assert.ErrorAs(t, err, &ce)
}

func TestPipelineFlushPreservesOrder(t *testing.T) {
	addr := fakeServer(t, []string{
		"+OK\r\n",
		":1\r\n",
		"$3\r\nbar\r\n",
	})

	c := NewClient(addr, WithConnectTimeout(time.Second), WithIOTimeout(time.Second))
	require.NoError(t, c.Connect())
	defer c.Disconnect()

	results, err := c.Pipeline(func(p *Client) error {
		if _, err := p.Do("set", "foo", "bar"); err != nil {
			return err
		}
		if _, err := p.Do("incr", "counter"); err != nil {
			return err
		}
		if _, err := p.Do("get", "foo"); err != nil {
			return err
		}
		return nil
	})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, true, results[0])
	assert.Equal(t, int64(1), results[1])
	assert.Equal(t, []byte("bar"), results[2])
}

func TestPipelineFlushAbortsOnServerError(t *testing.T) {
	addr := fakeServer(t, []string{
		"+OK\r\n",
		"-ERR something went wrong\r\n",
	})

	c := NewClient(addr, WithConnectTimeout(time.Second), WithIOTimeout(time.Second))
	require.NoError(t, c.Connect())
	defer c.Disconnect()

	_, err := c.Pipeline(func(p *Client) error {
		if _, err := p.Do("set", "foo", "bar"); err != nil {
			return err
		}
		_, err := p.Do("incr", "notanumber")
		return err
	})
	require.Error(t, err)
	var pe *PipelineError
	assert.ErrorAs(t, err, &pe)
}

func TestPipelineAlreadyOpenRejected(t *testing.T) {
	addr := fakeServer(t, []string{"+OK\r\n"})
	c := NewClient(addr, WithConnectTimeout(time.Second), WithIOTimeout(time.Second))
	require.NoError(t, c.Connect())
	defer c.Disconnect()

	_, err := c.Pipeline(func(p *Client) error {
		_, nestedErr := p.Pipeline(func(*Client) error { return nil })
		return nestedErr
	})
	require.Error(t, err)
}
