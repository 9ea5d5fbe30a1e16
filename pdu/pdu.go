package pdu

import (
	"bytes"
	"encoding"
	"errors"
	"time"

	"github.com/smppgo/smpp5c/internal/smpptime"
)

// Body is a single SMPP command body: one of BindTransmitter, SubmitSm,
// DeliverSm, and so on.
type Body interface {
	CommandID() CommandID
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
}

// EsmClass indicates special message-mode attributes of a short message.
// Mode/Type/Feature are packed into a single wire byte.
type EsmClass struct {
	Mode    int
	Type    int
	Feature int
}

// Byte packs EsmClass into its single-byte wire representation.
func (ec EsmClass) Byte() byte {
	out := byte(0)
	out |= byte(ec.Mode)
	out |= byte(ec.Type) << 2
	out |= byte(ec.Feature) << 6
	return out
}

// ParseEsmClass unpacks a wire byte into EsmClass.
func ParseEsmClass(b byte) EsmClass {
	return EsmClass{
		Mode:    int(b & 0x03),
		Type:    int((b >> 2) & 0x0F),
		Feature: int(b >> 6),
	}
}

const (
	DefaultEsmMode         = 0x0
	DatagramEsmMode        = 0x1
	ForwardEsmMode         = 0x2
	StoreAndForwardEsmMode = 0x3
	NotApplicableEsmMode   = 0x7
)

const (
	DefaultEsmType = 0x0
	DelRecEsmType  = 0x1
	DelAckEsmType  = 0x2
	UsrAckEsmType  = 0x4
	ConAbtEsmType  = 0x6
	IDNEsmType     = 0x8
)

const (
	NoEsmFeat          = 0x0
	UDHIEsmFeat        = 0x1
	RepPathEsmFeat     = 0x2
	UDHIRepPathEsmFeat = 0x3
)

// RegisteredDelivery requests an MC delivery receipt and/or SME
// acknowledgements.
type RegisteredDelivery struct {
	Receipt           int
	SMEAck            int
	InterNotification int
}

// Byte packs RegisteredDelivery into its single-byte wire representation.
func (rd RegisteredDelivery) Byte() byte {
	out := byte(0)
	out |= byte(rd.Receipt)
	out |= byte(rd.SMEAck) << 2
	out |= byte(rd.InterNotification) << 4
	return out
}

// ParseRegisteredDelivery unpacks a wire byte into RegisteredDelivery.
func ParseRegisteredDelivery(b byte) RegisteredDelivery {
	return RegisteredDelivery{
		Receipt:           int(b & 0x03),
		SMEAck:            int((b >> 2) & 0x03),
		InterNotification: int((b >> 4) & 0x01),
	}
}

const (
	NoDeliveryReceipt   = 0x0
	YesDeliveryReceipt  = 0x1
	FailDeliveryReceipt = 0x2
)

const (
	NoSMEAck     = 0x0
	YesSMEAck    = 0x1
	ManualSMEAck = 0x2
	AllSMEAck    = 0x3
)

const (
	NoInterNotification  = 0x0
	YesInterNotification = 0x1
)

// writeTime formats t per layout, or writes just the NUL terminator for a
// zero time.Time (absent schedule_delivery_time/validity_period).
func writeTime(layout smpptime.Layout, t time.Time) ([]byte, error) {
	var out []byte
	if !t.IsZero() {
		s, err := smpptime.Format(layout, t)
		if err != nil {
			return nil, err
		}
		out = []byte(s)
	}
	return append(out, 0), nil
}

// bodyReader wraps a bytes.Buffer with the C-string/length-prefixed-string
// read helpers PDU body Unmarshal methods need. Both helpers delegate to
// the string family (COctetString/OctetString) for the actual bounds and
// ASCII/termination checks, so every field decode goes through the same
// validated path the wire-format invariants are specified against.
type bodyReader struct {
	*bytes.Buffer
}

func newBuffer(buf []byte) *bodyReader {
	return &bodyReader{Buffer: bytes.NewBuffer(buf)}
}

// ReadCString decodes field as a COctetString bounded by [1,limit] and
// returns its text without the NUL terminator.
func (r *bodyReader) ReadCString(field string, limit int) ([]byte, error) {
	cs, consumed, err := DecodeCOctetString(field, r.Bytes(), 1, limit)
	if err != nil {
		return nil, err
	}
	r.Next(consumed)
	text := cs.String()
	if text == "" {
		return nil, nil
	}
	return []byte(text), nil
}

// ReadString decodes field as a length-prefixed OctetString: a one-byte
// length followed by that many bytes, the length itself bounded by limit.
func (r *bodyReader) ReadString(field string, limit int) ([]byte, error) {
	l, err := r.ReadByte()
	if err != nil {
		return nil, fieldErr(field, ErrUnexpectedEOF)
	}
	os, consumed, err := DecodeOctetString(field, r.Bytes(), int(l), 0, limit)
	if err != nil {
		return nil, err
	}
	r.Next(consumed)
	return os.Bytes(), nil
}

// cStringOptsUnmarshal decodes the common "NUL-terminated string followed by
// an optional TLV sequence" shape shared by several *Resp bodies.
func cStringOptsUnmarshal(field string, body []byte) (string, *Options, error) {
	cs, consumed, err := DecodeCOctetString(field, body, 1, len(body)+1)
	if err != nil {
		return "", nil, err
	}
	var opts *Options
	if len(body[consumed:]) > 0 {
		opts = NewOptions()
		if err := opts.UnmarshalBinary(body[consumed:]); err != nil {
			return "", nil, err
		}
	}
	return cs.String(), opts, nil
}

func cStringOptsMarshal(str string, opts *Options) ([]byte, error) {
	out := append([]byte(str), 0)
	if opts == nil {
		return out, nil
	}
	o, err := opts.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return append(out, o...), nil
}

// SeparateUDH splits a short_message payload into its User Data Header and
// the remaining content, per the length byte UDHL at c[0].
func SeparateUDH(c []byte) ([]byte, []byte, error) {
	if len(c) == 0 {
		return nil, c, errors.New("pdu: invalid udh length")
	}
	l := int(c[0])
	if l >= len(c) {
		return nil, c, errors.New("pdu: invalid udh length value")
	}
	return c[:l+1], c[l+1:], nil
}
