// Package client implements the asynchronous SMPP client: a single actor
// goroutine owns the connection and a pending-response table, while
// Client is a cheap, clonable handle callers use to issue requests and
// read the event stream.
package client

import (
	"errors"
	"fmt"
	"time"

	"github.com/smppgo/smpp5c/pdu"
)

// ErrConnectionClosed is returned by every pending and future request once
// the actor has torn down the connection. Close/CloseAndWait on an
// already-closed Client return nil rather than this error.
var ErrConnectionClosed = errors.New("client: connection closed")

// ResponseTimeoutError reports that a registered request's response never
// arrived within its deadline. The pending slot is freed eagerly; the
// connection itself is left open.
type ResponseTimeoutError struct {
	Sequence uint32
	Duration time.Duration
}

func (e *ResponseTimeoutError) Error() string {
	return fmt.Sprintf("client: no response to sequence %d after %s", e.Sequence, e.Duration)
}

// UnexpectedResponseError reports a response command_id that does not match
// what the request expected (e.g. a bind_transceiver_resp arriving for a
// submit_sm request).
type UnexpectedResponseError struct {
	Command pdu.CommandID
}

func (e *UnexpectedResponseError) Error() string {
	return fmt.Sprintf("client: unexpected response command 0x%08X", uint32(e.Command))
}

// UnsupportedInterfaceVersionError reports a bind response advertising an
// interface_version this client was configured to reject.
type UnsupportedInterfaceVersionError struct {
	Version pdu.InterfaceVersion
}

func (e *UnsupportedInterfaceVersionError) Error() string {
	return fmt.Sprintf("client: unsupported interface version %s", e.Version)
}
