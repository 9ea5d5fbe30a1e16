package pdu

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Other is the catch-all body for a command_id this module doesn't
// recognize: the raw, undecoded body bytes are preserved so the frame can
// still be re-encoded or logged without loss (§4.6).
type Other struct {
	ID  CommandID
	Raw []byte
}

// CommandID implements Body.
func (o Other) CommandID() CommandID { return o.ID }

// MarshalBinary implements encoding.BinaryMarshaler.
func (o Other) MarshalBinary() ([]byte, error) {
	out := make([]byte, len(o.Raw))
	copy(out, o.Raw)
	return out, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (o *Other) UnmarshalBinary(body []byte) error {
	o.Raw = make([]byte, len(body))
	copy(o.Raw, body)
	return nil
}

// NewBody constructs a zero-valued Body for id, or an Other{} wrapper
// whose UnmarshalBinary preserves undecoded bytes for an unrecognized id.
// Unlike the donor's NewPDU, this never panics.
func NewBody(id CommandID) Body {
	switch id {
	case GenericNackID:
		return &GenericNack{}
	case BindReceiverID:
		return &BindReceiver{}
	case BindReceiverRespID:
		return &BindReceiverResp{}
	case BindTransmitterID:
		return &BindTransmitter{}
	case BindTransmitterRespID:
		return &BindTransmitterResp{}
	case BindTransceiverID:
		return &BindTransceiver{}
	case BindTransceiverRespID:
		return &BindTransceiverResp{}
	case OutbindID:
		return &Outbind{}
	case EnquireLinkID:
		return &EnquireLink{}
	case EnquireLinkRespID:
		return &EnquireLinkResp{}
	case UnbindID:
		return &Unbind{}
	case UnbindRespID:
		return &UnbindResp{}
	case QuerySmID:
		return &QuerySm{}
	case QuerySmRespID:
		return &QuerySmResp{}
	case SubmitSmID:
		return &SubmitSm{}
	case SubmitSmRespID:
		return &SubmitSmResp{}
	case SubmitMultiID:
		return &SubmitMulti{}
	case SubmitMultiRespID:
		return &SubmitMultiResp{}
	case DeliverSmID:
		return &DeliverSm{}
	case DeliverSmRespID:
		return &DeliverSmResp{}
	case DataSmID:
		return &DataSm{}
	case DataSmRespID:
		return &DataSmResp{}
	case CancelSmID:
		return &CancelSm{}
	case CancelSmRespID:
		return &CancelSmResp{}
	case ReplaceSmID:
		return &ReplaceSm{}
	case ReplaceSmRespID:
		return &ReplaceSmResp{}
	case AlertNotificationID:
		return &AlertNotification{}
	case BroadcastSmID:
		return &BroadcastSm{}
	case BroadcastSmRespID:
		return &BroadcastSmResp{}
	case QueryBroadcastSmID:
		return &QueryBroadcastSm{}
	case QueryBroadcastSmRespID:
		return &QueryBroadcastSmResp{}
	case CancelBroadcastSmID:
		return &CancelBroadcastSm{}
	case CancelBroadcastSmRespID:
		return &CancelBroadcastSmResp{}
	default:
		return &Other{ID: id}
	}
}

// Sequencer allocates sequence numbers for outgoing commands. Client code
// normally uses client.Client's own odd-number allocator (§4.8); Sequencer
// remains here for direct pdu.Encoder callers, e.g. tests.
type Sequencer interface {
	Next() uint32
}

// NewSequencer returns a Sequencer starting at n (or 1 if n == 0) and
// incrementing by 1. Client code wanting the ESME odd-sequence convention
// should use client.Client's built-in allocator instead.
func NewSequencer(n uint32) Sequencer {
	if n == 0 {
		n = 1
	}
	return &defaultSequencer{n: n}
}

type defaultSequencer struct{ n uint32 }

func (s *defaultSequencer) Next() uint32 {
	n := s.n
	s.n++
	return n
}

// Encoder writes Command envelopes (header + body) to an io.Writer.
type Encoder struct {
	w   io.Writer
	seq Sequencer
}

// NewEncoder creates an Encoder writing to w, allocating sequence numbers
// from seq (or a default Sequencer starting at 1 if seq is nil).
func NewEncoder(w io.Writer, seq Sequencer) *Encoder {
	if seq == nil {
		seq = NewSequencer(1)
	}
	return &Encoder{w: w, seq: seq}
}

type encodeOpts struct {
	seq    uint32
	status CommandStatus
}

// EncodeOption configures a single Encode call.
type EncodeOption func(*encodeOpts)

// WithSequence overrides the allocated sequence number.
func WithSequence(seq uint32) EncodeOption {
	return func(o *encodeOpts) { o.seq = seq }
}

// WithStatus sets command_status (responses only).
func WithStatus(status CommandStatus) EncodeOption {
	return func(o *encodeOpts) { o.status = status }
}

// Encode marshals body, wraps it in a Command header, and writes it to the
// underlying writer, returning the sequence number used.
func (e *Encoder) Encode(body Body, opts ...EncodeOption) (uint32, error) {
	raw, err := body.MarshalBinary()
	if err != nil {
		return 0, err
	}
	o := encodeOpts{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.seq == 0 {
		o.seq = e.seq.Next()
	}
	buf := make([]byte, 16+len(raw))
	binary.BigEndian.PutUint32(buf[0:4], uint32(len(buf)))
	binary.BigEndian.PutUint32(buf[4:8], uint32(body.CommandID()))
	binary.BigEndian.PutUint32(buf[8:12], uint32(o.status))
	binary.BigEndian.PutUint32(buf[12:16], o.seq)
	copy(buf[16:], raw)
	_, err = e.w.Write(buf)
	return o.seq, err
}

// Decoder reads Command envelopes from an io.Reader.
type Decoder struct {
	r io.Reader
}

// NewDecoder creates a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Decode reads one 16-byte header and its body, returning the decoded
// Header and Body.
func (d *Decoder) Decode() (Header, Body, error) {
	var raw [16]byte
	if _, err := io.ReadFull(d.r, raw[:]); err != nil {
		return Header{}, nil, err
	}
	h, err := DecodeHeader(raw[:])
	if err != nil {
		return h, nil, err
	}
	if h.Length < 16 {
		return h, nil, fmt.Errorf("pdu: invalid command_length %d", h.Length)
	}
	body := NewBody(h.ID)
	if h.Length == 16 {
		return h, body, nil
	}
	bodyBytes := make([]byte, h.Length-16)
	if _, err := io.ReadFull(d.r, bodyBytes); err != nil {
		return h, body, fmt.Errorf("pdu: short body read: %w", err)
	}
	if err := body.UnmarshalBinary(bodyBytes); err != nil {
		return h, body, err
	}
	return h, body, nil
}
