package client

import (
	"time"

	"github.com/smppgo/smpp5c/pdu"
)

type requestConfig struct {
	status     pdu.CommandStatus
	timeout    time.Duration
	noTimeout  bool
	noWait     bool
	useTimeout bool
}

// RequestOption overrides the default behavior of a single Send call.
type RequestOption func(*requestConfig)

// WithStatus sets command_status on the outgoing command. Mostly useful on
// *Resp sends, where command_status carries the result of the request
// being answered.
func WithStatus(status pdu.CommandStatus) RequestOption {
	return func(c *requestConfig) { c.status = status }
}

// WithTimeout overrides the Client's default response timeout for a single
// registered request.
func WithTimeout(d time.Duration) RequestOption {
	return func(c *requestConfig) { c.timeout = d; c.useTimeout = true; c.noTimeout = false }
}

// WithNoTimeout disables the response timeout for a single registered
// request; it waits until its context is done instead.
func WithNoTimeout() RequestOption {
	return func(c *requestConfig) { c.noTimeout = true; c.useTimeout = false }
}

// WithNoWait sends a registered PDU without registering a pending slot or
// waiting for its response; the caller observes any reply later on the
// Events() stream like an unregistered send.
func WithNoWait() RequestOption {
	return func(c *requestConfig) { c.noWait = true }
}

func newRequestConfig(opts []RequestOption) requestConfig {
	c := requestConfig{status: pdu.StatusOK}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
