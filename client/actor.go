package client

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"

	"github.com/smppgo/smpp5c/frame"
	"github.com/smppgo/smpp5c/pdu"
)

type actionKind int

const (
	actionRegistered actionKind = iota
	actionUnregistered
	actionRemovePending
	actionClose
	actionPendingResponses
	actionPing
)

type action struct {
	kind     actionKind
	seq      uint32
	status   pdu.CommandStatus
	body     pdu.Body
	ackErr   chan error
	respCh   chan response
	pendingC chan []uint32
}

type response struct {
	header pdu.Header
	body   pdu.Body
	err    error
}

type incomingFrame struct {
	header pdu.Header
	body   pdu.Body
	err    error
}

// conn is the actor: the single goroutine that owns the connection, the
// pending-response table and the event stream. Client is a cheap handle
// wrapping a shared *conn, mirroring the donor's mutex-guarded Session
// state but replacing ad hoc locking with single-goroutine ownership.
type conn struct {
	rwc  io.ReadWriteCloser
	rd   *frame.Reader
	wr   *frame.Writer
	opts options
	log  *logrus.Entry
	sem  *semaphore.Weighted

	seq atomic.Uint32

	actions  chan action
	incoming chan incomingFrame
	events   chan Event

	closed    chan struct{}
	closeOnce sync.Once
}

func newConn(rwc io.ReadWriteCloser, o options) *conn {
	c := &conn{
		rwc:      rwc,
		rd:       frame.NewReader(rwc, o.maxCommandLength),
		wr:       frame.NewWriter(rwc),
		opts:     o,
		log:      o.logger.WithField("client", uuid.New().String()),
		sem:      semaphore.NewWeighted(o.maxConcurrentRequests),
		actions:  make(chan action),
		incoming: make(chan incomingFrame),
		events:   make(chan Event, o.eventBuffer),
		closed:   make(chan struct{}),
	}
	c.seq.Store(1)
	return c
}

func (c *conn) start() {
	go c.readLoop()
	go c.run()
}

// nextSequence returns successive odd sequence numbers starting at 1,
// matching rusmppc::client::next_sequence_number's fetch_add(2, Relaxed).
func (c *conn) nextSequence() uint32 {
	return c.seq.Add(2) - 2
}

func (c *conn) readLoop() {
	for {
		h, body, err := c.rd.ReadCommand()
		select {
		case c.incoming <- incomingFrame{header: h, body: body, err: err}:
		case <-c.closed:
			return
		}
		var decodeErr *frame.DecodeError
		if err != nil && !errors.As(err, &decodeErr) {
			return
		}
	}
}

func (c *conn) run() {
	pendingRegistered := make(map[uint32]chan response)
	pendingEnquire := make(map[uint32]struct{})

	var ticker *time.Ticker
	var tickC <-chan time.Time
	if c.opts.enquireLinkInterval > 0 {
		ticker = time.NewTicker(c.opts.enquireLinkInterval)
		tickC = ticker.C
		defer ticker.Stop()
	}

	shutdown := func(cause error) {
		c.rwc.Close()
		for seq, ch := range pendingRegistered {
			ch <- response{err: ErrConnectionClosed}
			delete(pendingRegistered, seq)
		}
		if cause != nil {
			c.log.WithError(cause).Info("client: connection closed")
		}
		c.emit(Event{Kind: Closed, Err: cause})
		c.closeOnce.Do(func() { close(c.closed) })
	}

	for {
		select {
		case f := <-c.incoming:
			var decodeErr *frame.DecodeError
			if f.err != nil && !errors.As(f.err, &decodeErr) {
				shutdown(f.err)
				close(c.events)
				return
			}
			if decodeErr != nil {
				c.log.WithError(decodeErr).Warn("client: dropping command with undecodable body")
				c.emitInsight(Event{Kind: ReceivedUndecodable, Header: decodeErr.Header, Err: decodeErr})
				continue
			}
			switch {
			case f.header.ID == pdu.EnquireLinkID:
				c.emitInsight(Event{Kind: ReceivedEnquireLink, Header: f.header})
				if err := c.wr.WriteFrame(pdu.Header{ID: pdu.EnquireLinkRespID, Status: pdu.StatusOK, Sequence: f.header.Sequence}, nil); err != nil {
					shutdown(err)
					close(c.events)
					return
				}
				c.emitInsight(Event{Kind: SentEnquireLinkResp, Header: f.header})
			case f.header.ID == pdu.EnquireLinkRespID:
				if _, ok := pendingEnquire[f.header.Sequence]; ok {
					delete(pendingEnquire, f.header.Sequence)
					c.emitInsight(Event{Kind: ReceivedEnquireLinkResp, Header: f.header})
					break
				}
				if ch, ok := pendingRegistered[f.header.Sequence]; ok {
					delete(pendingRegistered, f.header.Sequence)
					c.sem.Release(1)
					ch <- response{header: f.header, body: f.body, err: f.header.Ok()}
					break
				}
				c.emit(Event{Kind: IncomingPDU, Header: f.header, Body: f.body})
			default:
				if ch, ok := pendingRegistered[f.header.Sequence]; ok {
					delete(pendingRegistered, f.header.Sequence)
					c.sem.Release(1)
					ch <- response{header: f.header, body: f.body, err: f.header.Ok()}
					break
				}
				c.emit(Event{Kind: IncomingPDU, Header: f.header, Body: f.body})
			}

		case <-tickC:
			seq := c.nextSequence()
			if err := c.wr.WriteFrame(pdu.Header{ID: pdu.EnquireLinkID, Status: pdu.StatusOK, Sequence: seq}, nil); err != nil {
				shutdown(err)
				close(c.events)
				return
			}
			pendingEnquire[seq] = struct{}{}
			c.emitInsight(Event{Kind: SentEnquireLink})

		case a := <-c.actions:
			switch a.kind {
			case actionRegistered:
				raw, err := a.body.MarshalBinary()
				if err == nil {
					err = c.wr.WriteFrame(pdu.Header{ID: a.body.CommandID(), Status: a.status, Sequence: a.seq}, raw)
				}
				a.ackErr <- err
				if err != nil {
					if a.respCh != nil {
						c.sem.Release(1)
					}
					continue
				}
				if a.respCh != nil {
					pendingRegistered[a.seq] = a.respCh
				}

			case actionUnregistered:
				raw, err := a.body.MarshalBinary()
				if err == nil {
					err = c.wr.WriteFrame(pdu.Header{ID: a.body.CommandID(), Status: a.status, Sequence: a.seq}, raw)
				}
				a.ackErr <- err

			case actionRemovePending:
				if _, ok := pendingRegistered[a.seq]; ok {
					delete(pendingRegistered, a.seq)
					c.sem.Release(1)
				}
				delete(pendingEnquire, a.seq)

			case actionPendingResponses:
				seqs := make([]uint32, 0, len(pendingRegistered))
				for seq := range pendingRegistered {
					seqs = append(seqs, seq)
				}
				a.pendingC <- seqs

			case actionPing:
				// No-op: reaching this case proves the actor is alive.

			case actionClose:
				shutdown(nil)
				a.ackErr <- nil
				close(c.events)
				return
			}
		}
	}
}

func (c *conn) emit(ev Event) {
	select {
	case c.events <- ev:
	case <-c.closed:
	}
}

func (c *conn) emitInsight(ev Event) {
	if !c.opts.insights {
		return
	}
	c.emit(ev)
}

var errMarshalNilBody = fmt.Errorf("client: nil pdu body")
