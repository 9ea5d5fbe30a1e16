package pdu

import (
	"fmt"
	"time"

	"github.com/smppgo/smpp5c/internal/smpptime"
)

// ReplaceSm replaces the content of a previously submitted, not-yet-
// delivered message.
type ReplaceSm struct {
	MessageID            string
	SourceAddrTon        int
	SourceAddrNpi        int
	SourceAddr           string
	ScheduleDeliveryTime time.Time
	ValidityPeriod       time.Time
	RegisteredDelivery   RegisteredDelivery
	SmDefaultMsgID       int
	ShortMessage         string
}

// CommandID implements Body.
func (p ReplaceSm) CommandID() CommandID { return ReplaceSmID }

// Response builds the matching ReplaceSmResp.
func (p ReplaceSm) Response() *ReplaceSmResp { return &ReplaceSmResp{} }

// MarshalBinary implements encoding.BinaryMarshaler.
func (p ReplaceSm) MarshalBinary() ([]byte, error) {
	out := append([]byte(p.MessageID), 0)
	out = append(out, byte(p.SourceAddrTon), byte(p.SourceAddrNpi))
	out = append(out, append([]byte(p.SourceAddr), 0)...)
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
	l := len(p.ShortMessage)
	out = append(out, p.RegisteredDelivery.Byte(), byte(p.SmDefaultMsgID), byte(l))
	if l > 0 {
		out = append(out, []byte(p.ShortMessage)...)
	}
	return out, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p *ReplaceSm) UnmarshalBinary(body []byte) error {
	if len(body) < 8 {
		return fmt.Errorf("pdu: replace_sm body too short: %d", len(body))
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
		return fieldErr("registered_delivery", ErrUnexpectedEOF)
	}
	p.RegisteredDelivery = ParseRegisteredDelivery(b)
	b, err = buf.ReadByte()
	if err != nil {
		return fieldErr("sm_default_msg_id", ErrUnexpectedEOF)
	}
	p.SmDefaultMsgID = int(b)
	sm, err := buf.ReadString("short_message", 254)
	if err != nil {
		return err
	}
	p.ShortMessage = string(sm)
	return nil
}

// ReplaceSmResp is the replace_sm_resp body. It carries no mandatory
// fields.
type ReplaceSmResp struct{}

// CommandID implements Body.
func (p ReplaceSmResp) CommandID() CommandID { return ReplaceSmRespID }

// MarshalBinary implements encoding.BinaryMarshaler.
func (p ReplaceSmResp) MarshalBinary() ([]byte, error) { return nil, nil }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p ReplaceSmResp) UnmarshalBinary(body []byte) error { return nil }
