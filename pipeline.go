package redis

// soleConnProvider is implemented by connSet values that can name the one
// transport a pipeline must run against.
type soleConnProvider interface {
	soleConn() (*conn, bool)
}

// pipeline is the buffered-submission coordinator: it borrows its Client
// only for the lexical duration of a Pipeline block and never outlives it.
// It is not reentrant — nested pipelines are not defined.
type pipeline struct {
	transport *conn
	buffer    []invocation
}

// newPipeline validates that cs names a single transport and returns a
// coordinator bound to it, or a ClientError if cs is sharded.
func newPipeline(cs connSet) (*pipeline, error) {
	provider, ok := cs.(soleConnProvider)
	if !ok {
		return nil, newClientError("pipelining requires a single-endpoint client")
	}
	c, ok := provider.soleConn()
	if !ok {
		return nil, newClientError("pipelining is not defined over a sharded client")
	}
	return &pipeline{transport: c}, nil
}

// submit buffers iv; nothing is written to the wire yet.
func (p *pipeline) submit(iv invocation) {
	p.buffer = append(p.buffer, iv)
}

// flush writes every buffered command in submission order, then reads every
// reply in the same order, returning a result list of the same length as the
// buffer. Any send/receive failure aborts the whole batch and discards the
// result list.
func (p *pipeline) flush() ([]interface{}, error) {
	for _, iv := range p.buffer {
		if err := p.transport.writeCommand(iv); err != nil {
			return nil, newPipelineError(err)
		}
	}

	// A ServerError (a `-` reply) surfaces here as err, same as any other
	// failure; it does not disconnect the transport, but it still aborts the
	// whole batch.
	results := make([]interface{}, len(p.buffer))
	for i, iv := range p.buffer {
		v, err := p.transport.readResponse(iv.cmd)
		if err != nil {
			return nil, newPipelineError(err)
		}
		results[i] = v
	}
	return results, nil
}
