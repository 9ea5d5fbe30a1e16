package pdu

import (
	"fmt"
	"time"

	"github.com/smppgo/smpp5c/internal/smpptime"
)

// BroadcastSm submits a message for broadcast across one or more cell
// broadcast areas (SMPP 5.0 §4.11). The mandatory broadcast_area_identifier,
// broadcast_content_type, broadcast_rep_num and broadcast_frequency_interval
// TLVs are carried in Options rather than as struct fields — callers must
// set them via Options.Set before encoding.
type BroadcastSm struct {
	ServiceType          string
	SourceAddrTon        int
	SourceAddrNpi        int
	SourceAddr           string
	MessageID            string
	PriorityFlag         int
	ScheduleDeliveryTime time.Time
	ValidityPeriod       time.Time
	ReplaceIfPresentFlag int
	DataCoding           int
	SmDefaultMsgID       int
	Options              *Options
}

// CommandID implements Body.
func (p BroadcastSm) CommandID() CommandID { return BroadcastSmID }

// Response builds the matching BroadcastSmResp.
func (p BroadcastSm) Response(msgID string) *BroadcastSmResp {
	return &BroadcastSmResp{MessageID: msgID}
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (p BroadcastSm) MarshalBinary() ([]byte, error) {
	out := append([]byte(p.ServiceType), 0, byte(p.SourceAddrTon), byte(p.SourceAddrNpi))
	out = append(out, append([]byte(p.SourceAddr), 0)...)
	out = append(out, append([]byte(p.MessageID), 0)...)
	out = append(out, byte(p.PriorityFlag))
	tm, err := writeTime(smpptime.Absolute, p.ScheduleDeliveryTime)
	if err != nil {
		return nil, err
	}
	out = append(out, tm...)
	tm, err = writeTime(smpptime.Absolute, p.ValidityPeriod)
	if err != nil {
		return nil, err
	}
	out = append(out, tm...)
	out = append(out, byte(p.ReplaceIfPresentFlag), byte(p.DataCoding), byte(p.SmDefaultMsgID))
	if p.Options == nil {
		return out, nil
	}
	opts, err := p.Options.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return append(out, opts...), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p *BroadcastSm) UnmarshalBinary(body []byte) error {
	if len(body) < 10 {
		return fmt.Errorf("pdu: broadcast_sm body too short: %d", len(body))
	}
	buf := newBuffer(body)
	res, err := buf.ReadCString("service_type", 6)
	if err != nil {
		return err
	}
	p.ServiceType = string(res)
	b, err := buf.ReadByte()
	if err != nil {
		return fieldErr("source_addr_ton", ErrUnexpectedEOF)
	}
	p.SourceAddrTon = int(b)
	b, err = buf.ReadByte()
	if err != nil {
		return fieldErr("source_addr_npi", ErrUnexpectedEOF)
	}
	p.SourceAddrNpi = int(b)
	res, err = buf.ReadCString("source_addr", 21)
	if err != nil {
		return err
	}
	p.SourceAddr = string(res)
	res, err = buf.ReadCString("message_id", 65)
	if err != nil {
		return err
	}
	p.MessageID = string(res)
	b, err = buf.ReadByte()
	if err != nil {
		return fieldErr("priority_flag", ErrUnexpectedEOF)
	}
	p.PriorityFlag = int(b)
	res, err = buf.ReadCString("schedule_delivery_time", 17)
	if err != nil {
		return err
	}
	t, err := smpptime.Parse(res)
	if err != nil {
		return fieldErr("schedule_delivery_time", err)
	}
	p.ScheduleDeliveryTime = t
	res, err = buf.ReadCString("validity_period", 17)
	if err != nil {
		return err
	}
	t, err = smpptime.Parse(res)
	if err != nil {
		return fieldErr("validity_period", err)
	}
	p.ValidityPeriod = t
	b, err = buf.ReadByte()
	if err != nil {
		return fieldErr("replace_if_present_flag", ErrUnexpectedEOF)
	}
	p.ReplaceIfPresentFlag = int(b)
	b, err = buf.ReadByte()
	if err != nil {
		return fieldErr("data_coding", ErrUnexpectedEOF)
	}
	p.DataCoding = int(b)
	b, err = buf.ReadByte()
	if err != nil {
		return fieldErr("sm_default_msg_id", ErrUnexpectedEOF)
	}
	p.SmDefaultMsgID = int(b)
	if buf.Len() == 0 {
		return nil
	}
	p.Options = NewOptions()
	return p.Options.UnmarshalBinary(buf.Bytes())
}

// BroadcastSmResp is the broadcast_sm_resp body. Per-area success/failure
// status travels in Options as repeated broadcast_area_identifier /
// broadcast_area_success TLVs.
type BroadcastSmResp struct {
	MessageID string
	Options   *Options
}

// CommandID implements Body.
func (p BroadcastSmResp) CommandID() CommandID { return BroadcastSmRespID }

// MarshalBinary implements encoding.BinaryMarshaler.
func (p BroadcastSmResp) MarshalBinary() ([]byte, error) {
	return cStringOptsMarshal(p.MessageID, p.Options)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p *BroadcastSmResp) UnmarshalBinary(body []byte) error {
	var err error
	p.MessageID, p.Options, err = cStringOptsUnmarshal("message_id", body)
	return err
}

// QueryBroadcastSm queries the state of a previously submitted broadcast.
type QueryBroadcastSm struct {
	MessageID     string
	SourceAddrTon int
	SourceAddrNpi int
	SourceAddr    string
	Options       *Options
}

// CommandID implements Body.
func (p QueryBroadcastSm) CommandID() CommandID { return QueryBroadcastSmID }

// MarshalBinary implements encoding.BinaryMarshaler.
func (p QueryBroadcastSm) MarshalBinary() ([]byte, error) {
	out := append([]byte(p.MessageID), 0, byte(p.SourceAddrTon), byte(p.SourceAddrNpi))
	out = append(out, append([]byte(p.SourceAddr), 0)...)
	if p.Options == nil {
		return out, nil
	}
	opts, err := p.Options.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return append(out, opts...), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p *QueryBroadcastSm) UnmarshalBinary(body []byte) error {
	if len(body) < 4 {
		return fmt.Errorf("pdu: query_broadcast_sm body too short: %d", len(body))
	}
	buf := newBuffer(body)
	res, err := buf.ReadCString("message_id", 65)
	if err != nil {
		return err
	}
	p.MessageID = string(res)
	b, err := buf.ReadByte()
	if err != nil {
		return fieldErr("source_addr_ton", ErrUnexpectedEOF)
	}
	p.SourceAddrTon = int(b)
	b, err = buf.ReadByte()
	if err != nil {
		return fieldErr("source_addr_npi", ErrUnexpectedEOF)
	}
	p.SourceAddrNpi = int(b)
	res, err = buf.ReadCString("source_addr", 21)
	if err != nil {
		return err
	}
	p.SourceAddr = string(res)
	if buf.Len() == 0 {
		return nil
	}
	p.Options = NewOptions()
	return p.Options.UnmarshalBinary(buf.Bytes())
}

// QueryBroadcastSmResp is the query_broadcast_sm_resp body. message_state
// and the per-area status travel in Options, per spec §4.11 (message_state
// and broadcast_area_identifier/broadcast_area_success are carried as
// TLVs even though they are mandatory content of this response).
type QueryBroadcastSmResp struct {
	MessageID string
	Options   *Options
}

// CommandID implements Body.
func (p QueryBroadcastSmResp) CommandID() CommandID { return QueryBroadcastSmRespID }

// MarshalBinary implements encoding.BinaryMarshaler.
func (p QueryBroadcastSmResp) MarshalBinary() ([]byte, error) {
	return cStringOptsMarshal(p.MessageID, p.Options)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p *QueryBroadcastSmResp) UnmarshalBinary(body []byte) error {
	var err error
	p.MessageID, p.Options, err = cStringOptsUnmarshal("message_id", body)
	return err
}

// CancelBroadcastSm cancels a broadcast that is currently active.
type CancelBroadcastSm struct {
	ServiceType   string
	MessageID     string
	SourceAddrTon int
	SourceAddrNpi int
	SourceAddr    string
	Options       *Options
}

// CommandID implements Body.
func (p CancelBroadcastSm) CommandID() CommandID { return CancelBroadcastSmID }

// Response builds the matching CancelBroadcastSmResp.
func (p CancelBroadcastSm) Response() *CancelBroadcastSmResp { return &CancelBroadcastSmResp{} }

// MarshalBinary implements encoding.BinaryMarshaler.
func (p CancelBroadcastSm) MarshalBinary() ([]byte, error) {
	out := append([]byte(p.ServiceType), 0)
	out = append(out, append([]byte(p.MessageID), 0)...)
	out = append(out, byte(p.SourceAddrTon), byte(p.SourceAddrNpi))
	out = append(out, append([]byte(p.SourceAddr), 0)...)
	if p.Options == nil {
		return out, nil
	}
	opts, err := p.Options.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return append(out, opts...), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p *CancelBroadcastSm) UnmarshalBinary(body []byte) error {
	if len(body) < 9 {
		return fmt.Errorf("pdu: cancel_broadcast_sm body too short: %d", len(body))
	}
	buf := newBuffer(body)
	res, err := buf.ReadCString("service_type", 6)
	if err != nil {
		return err
	}
	p.ServiceType = string(res)
	res, err = buf.ReadCString("message_id", 65)
	if err != nil {
		return err
	}
	p.MessageID = string(res)
	b, err := buf.ReadByte()
	if err != nil {
		return fieldErr("source_addr_ton", ErrUnexpectedEOF)
	}
	p.SourceAddrTon = int(b)
	b, err = buf.ReadByte()
	if err != nil {
		return fieldErr("source_addr_npi", ErrUnexpectedEOF)
	}
	p.SourceAddrNpi = int(b)
	res, err = buf.ReadCString("source_addr", 21)
	if err != nil {
		return err
	}
	p.SourceAddr = string(res)
	if buf.Len() == 0 {
		return nil
	}
	p.Options = NewOptions()
	return p.Options.UnmarshalBinary(buf.Bytes())
}

// CancelBroadcastSmResp is the cancel_broadcast_sm_resp body. It carries no
// mandatory fields.
type CancelBroadcastSmResp struct{}

// CommandID implements Body.
func (p CancelBroadcastSmResp) CommandID() CommandID { return CancelBroadcastSmRespID }

// MarshalBinary implements encoding.BinaryMarshaler.
func (p CancelBroadcastSmResp) MarshalBinary() ([]byte, error) { return nil, nil }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p CancelBroadcastSmResp) UnmarshalBinary(body []byte) error { return nil }
