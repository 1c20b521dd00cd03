package redis

import "time"

// connSet is the polymorphic transport contract: a single endpoint and a
// sharded ring share this capability set. The raw-command escape hatch is
// deliberately not part of the interface — it is promoted only on the
// single-endpoint concrete type, via a type assertion in the facade.
type connSet interface {
	connect() error
	disconnect() error
	isConnected() bool
	execute(iv invocation) (interface{}, error)
}

// singleConnSet delegates to one transport.
type singleConnSet struct {
	c *conn
}

func newSingleConnSet(addr string, connectTimeout, ioTimeout time.Duration) *singleConnSet {
	return &singleConnSet{c: newConn(addr, connectTimeout, ioTimeout)}
}

func (s *singleConnSet) connect() error    { return s.c.connect() }
func (s *singleConnSet) disconnect() error { return s.c.disconnect() }
func (s *singleConnSet) isConnected() bool { return s.c.isConnected() }

func (s *singleConnSet) execute(iv invocation) (interface{}, error) {
	if err := s.c.writeCommand(iv); err != nil {
		return nil, err
	}
	return s.c.readResponse(iv.cmd)
}

// transportFor always returns the sole transport, ignoring routing. It
// mirrors shardedConnSet.transportFor; the pipeline coordinator does not
// call it and obtains its transport through soleConn instead.
func (s *singleConnSet) transportFor(iv invocation) *conn { return s.c }

// soleConn reports the one transport a pipeline may batch against. Only
// singleConnSet has one; shardedConnSet's soleConn (below) reports false,
// causing the pipeline coordinator to reject pipelining against it.
func (s *singleConnSet) soleConn() (*conn, bool) { return s.c, true }

// shardedConnSet holds an ordered pool of transports and a ring.
// Non-shardable commands, or shardable commands with no routing key, fall
// back to the fixed slot at index 0.
type shardedConnSet struct {
	pool []*conn
	ring *hashRing
	// addrToIndex maps a node address to its position in pool, so ring
	// lookups (which return an address) can find the transport.
	addrToIndex map[string]int
}

func newShardedConnSet(addrs []string, connectTimeout, ioTimeout time.Duration) *shardedConnSet {
	pool := make([]*conn, len(addrs))
	norm := make([]string, len(addrs))
	addrToIndex := make(map[string]int, len(addrs))
	for i, a := range addrs {
		pool[i] = newConn(a, connectTimeout, ioTimeout)
		norm[i] = pool[i].addr
		addrToIndex[norm[i]] = i
	}
	return &shardedConnSet{
		pool:        pool,
		ring:        newHashRing(norm),
		addrToIndex: addrToIndex,
	}
}

func (s *shardedConnSet) connect() error {
	for _, c := range s.pool {
		if err := c.connect(); err != nil {
			return err
		}
	}
	return nil
}

func (s *shardedConnSet) disconnect() error {
	var firstErr error
	for _, c := range s.pool {
		if err := c.disconnect(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (s *shardedConnSet) isConnected() bool {
	for _, c := range s.pool {
		if c.isConnected() {
			return true
		}
	}
	return false
}

// transportFor picks the transport for iv: ring lookup on the routing key
// for shardable commands, otherwise the fixed fallback slot (index 0).
func (s *shardedConnSet) transportFor(iv invocation) *conn {
	if len(s.pool) == 0 {
		return nil
	}
	if key, ok := iv.routingKey(); ok {
		if addr, ok := s.ring.get(key); ok {
			if idx, ok := s.addrToIndex[addr]; ok {
				return s.pool[idx]
			}
		}
	}
	return s.pool[0]
}

func (s *shardedConnSet) execute(iv invocation) (interface{}, error) {
	c := s.transportFor(iv)
	if c == nil {
		return nil, newClientError("sharded client has no nodes configured")
	}
	if err := c.writeCommand(iv); err != nil {
		return nil, err
	}
	return c.readResponse(iv.cmd)
}

// soleConn always reports false: a sharded connection set routes across
// multiple transports, so there is no single transport a pipeline could
// unambiguously batch against.
func (s *shardedConnSet) soleConn() (*conn, bool) { return nil, false }
