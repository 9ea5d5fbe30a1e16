package client

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/smppgo/smpp5c/frame"
)

type options struct {
	maxCommandLength      int
	responseTimeout       time.Duration
	enquireLinkInterval   time.Duration
	checkInterfaceVer     bool
	logger                *logrus.Logger
	eventBuffer           int
	insights              bool
	maxConcurrentRequests int64
}

// Option configures a Client at construction time.
type Option func(*options)

// WithMaxCommandLength bounds the command_length the actor will accept
// from the peer before rejecting the frame. Zero disables the bound
// entirely; the default is frame.DefaultMaxLength.
func WithMaxCommandLength(n int) Option {
	return func(o *options) { o.maxCommandLength = n }
}

// WithResponseTimeout sets the default deadline a registered request waits
// for its response before failing with ResponseTimeoutError. Zero disables
// the default (requests wait until their context is done).
func WithResponseTimeout(d time.Duration) Option {
	return func(o *options) { o.responseTimeout = d }
}

// WithEnquireLinkInterval sets how often the actor sends its own
// EnquireLink probe. Zero disables the keep-alive loop.
func WithEnquireLinkInterval(d time.Duration) Option {
	return func(o *options) { o.enquireLinkInterval = d }
}

// WithInterfaceVersionCheck enables rejecting bind responses that
// advertise an interface_version this client doesn't expect.
func WithInterfaceVersionCheck(check bool) Option {
	return func(o *options) { o.checkInterfaceVer = check }
}

// WithLogger overrides the logger used for actor lifecycle and PDU decode
// diagnostics. Defaults to logrus.StandardLogger().
func WithLogger(l *logrus.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithEventBuffer sets the buffering of the Events() channel. Zero means
// unbuffered.
func WithEventBuffer(n int) Option {
	return func(o *options) { o.eventBuffer = n }
}

// WithMaxConcurrentRequests bounds the number of registered requests the
// Client may have awaiting a response at once, the Go analogue of the
// donor's SendWinSize. Defaults to 64.
func WithMaxConcurrentRequests(n int64) Option {
	return func(o *options) { o.maxConcurrentRequests = n }
}

// WithInsights additionally emits the enquire-link lifecycle events
// (SentEnquireLink, ReceivedEnquireLinkResp, ReceivedEnquireLink,
// SentEnquireLinkResp) and ReceivedUndecodable on the same Events() stream
// as IncomingPDU. Off by default, since most callers only care about
// incoming commands.
func WithInsights(enabled bool) Option {
	return func(o *options) { o.insights = enabled }
}

func defaultOptions() options {
	return options{
		maxCommandLength:      frame.DefaultMaxLength,
		logger:                logrus.StandardLogger(),
		eventBuffer:           16,
		maxConcurrentRequests: 64,
	}
}
