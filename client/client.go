package client

import (
	"context"
	"io"
	"time"

	"github.com/smppgo/smpp5c/pdu"
)

// Client is a cheap, clonable handle to an asynchronous SMPP connection.
// All instances returned from the same New call share the same actor
// goroutine and connection; copying a Client is safe and idiomatic.
type Client struct {
	c *conn
}

// New takes ownership of rwc and starts the actor goroutine that reads
// and writes SMPP commands over it. Callers must eventually call Close or
// CloseAndWait to release rwc and stop the goroutine.
func New(rwc io.ReadWriteCloser, opts ...Option) *Client {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	cn := newConn(rwc, o)
	cn.start()
	return &Client{c: cn}
}

// Events returns the channel of incoming commands and lifecycle events.
// Callers must keep draining it; a stalled reader blocks the actor.
func (cl *Client) Events() <-chan Event {
	return cl.c.events
}

// IsClosed reports whether Close has run to completion. Unlike IsActive,
// a false result does not guarantee the connection can still accept
// requests — it may be mid-shutdown.
func (cl *Client) IsClosed() bool {
	select {
	case <-cl.c.closed:
		return true
	default:
		return false
	}
}

// Closed returns a channel that is closed once the actor has fully torn
// down the connection.
func (cl *Client) Closed() <-chan struct{} {
	return cl.c.closed
}

// IsActive reports whether the actor is still alive and accepting
// requests. It blocks until the actor takes the probe or finishes shutting
// down, so a false result means the connection has finished closing.
func (cl *Client) IsActive() bool {
	select {
	case cl.c.actions <- action{kind: actionPing}:
		return true
	case <-cl.c.closed:
		return false
	}
}

// PendingResponses returns the sequence numbers of registered requests
// currently awaiting a response.
func (cl *Client) PendingResponses(ctx context.Context) ([]uint32, error) {
	pendingC := make(chan []uint32, 1)
	select {
	case cl.c.actions <- action{kind: actionPendingResponses, pendingC: pendingC}:
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-cl.c.closed:
		return nil, ErrConnectionClosed
	}
	select {
	case seqs := <-pendingC:
		return seqs, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-cl.c.closed:
		return nil, ErrConnectionClosed
	}
}

// Close requests a graceful shutdown: the actor stops its keep-alive
// timer, flushes pending registered requests with ErrConnectionClosed and
// closes the underlying connection. It returns once the actor has
// finished tearing down.
func (cl *Client) Close(ctx context.Context) error {
	ackErr := make(chan error, 1)
	select {
	case cl.c.actions <- action{kind: actionClose, ackErr: ackErr}:
	case <-ctx.Done():
		return ctx.Err()
	case <-cl.c.closed:
		return nil
	}
	select {
	case err := <-ackErr:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-cl.c.closed:
		return nil
	}
}

// CloseAndWait calls Close and additionally blocks until Closed() fires.
func (cl *Client) CloseAndWait(ctx context.Context) error {
	if err := cl.Close(ctx); err != nil {
		return err
	}
	select {
	case <-cl.c.closed:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Send issues a registered request: body is written with a freshly
// allocated sequence number and the call blocks for its response, subject
// to ctx, the configured response timeout, and any RequestOption
// overrides. WithNoWait turns this into a fire-and-forget send.
func (cl *Client) Send(ctx context.Context, body pdu.Body, opts ...RequestOption) (pdu.Header, pdu.Body, error) {
	if body == nil {
		return pdu.Header{}, nil, errMarshalNilBody
	}
	cfg := newRequestConfig(opts)
	seq := cl.c.nextSequence()

	if cfg.noWait {
		ackErr := make(chan error, 1)
		act := action{kind: actionRegistered, seq: seq, status: cfg.status, body: body, ackErr: ackErr}
		if err := cl.dispatch(ctx, act); err != nil {
			return pdu.Header{}, nil, err
		}
		return pdu.Header{Sequence: seq}, nil, cl.awaitAck(ctx, ackErr)
	}

	if err := cl.c.sem.Acquire(ctx, 1); err != nil {
		return pdu.Header{}, nil, err
	}
	ackErr := make(chan error, 1)
	respCh := make(chan response, 1)
	act := action{kind: actionRegistered, seq: seq, status: cfg.status, body: body, ackErr: ackErr, respCh: respCh}
	if err := cl.dispatch(ctx, act); err != nil {
		cl.c.sem.Release(1)
		return pdu.Header{}, nil, err
	}
	if err := cl.awaitAck(ctx, ackErr); err != nil {
		cl.c.sem.Release(1)
		return pdu.Header{}, nil, err
	}

	var timeoutC <-chan time.Time
	timeout := cl.c.opts.responseTimeout
	if cfg.useTimeout {
		timeout = cfg.timeout
	}
	if cfg.noTimeout {
		timeout = 0
	}
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		timeoutC = timer.C
	}

	select {
	case resp := <-respCh:
		return resp.header, resp.body, resp.err
	case <-timeoutC:
		cl.removePending(seq)
		return pdu.Header{}, nil, &ResponseTimeoutError{Sequence: seq, Duration: timeout}
	case <-ctx.Done():
		cl.removePending(seq)
		return pdu.Header{}, nil, ctx.Err()
	case <-cl.c.closed:
		return pdu.Header{}, nil, ErrConnectionClosed
	}
}

// SendUnregistered writes body as the answer to sequence without
// registering a pending slot: the *Resp side of a request the peer sent,
// or a standalone push such as generic_nack.
func (cl *Client) SendUnregistered(ctx context.Context, sequence uint32, body pdu.Body, opts ...RequestOption) error {
	if body == nil {
		return errMarshalNilBody
	}
	cfg := newRequestConfig(opts)
	ackErr := make(chan error, 1)
	act := action{kind: actionUnregistered, seq: sequence, status: cfg.status, body: body, ackErr: ackErr}
	if err := cl.dispatch(ctx, act); err != nil {
		return err
	}
	return cl.awaitAck(ctx, ackErr)
}

func (cl *Client) dispatch(ctx context.Context, act action) error {
	select {
	case cl.c.actions <- act:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-cl.c.closed:
		return ErrConnectionClosed
	}
}

func (cl *Client) awaitAck(ctx context.Context, ackErr chan error) error {
	select {
	case err := <-ackErr:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-cl.c.closed:
		return ErrConnectionClosed
	}
}

func (cl *Client) removePending(seq uint32) {
	select {
	case cl.c.actions <- action{kind: actionRemovePending, seq: seq}:
	case <-cl.c.closed:
	}
}
