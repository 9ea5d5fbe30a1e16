package pdu

import (
	"fmt"
	"time"

	"github.com/smppgo/smpp5c/internal/smpptime"
)

// SubmitSm submits a short message for delivery. SmLength is derived
// automatically when encoding; a ShortMessage over 254 bytes should instead
// be carried in Options via SetMessagePayload, leaving ShortMessage empty.
type SubmitSm struct {
	ServiceType          string
	SourceAddrTon        int
	SourceAddrNpi        int
	SourceAddr           string
	DestAddrTon          int
	DestAddrNpi          int
	DestinationAddr      string
	EsmClass             EsmClass
	ProtocolID           int
	PriorityFlag         int
	ScheduleDeliveryTime time.Time
	ValidityPeriod       time.Time
	RegisteredDelivery   RegisteredDelivery
	ReplaceIfPresentFlag int
	DataCoding           int
	SmDefaultMsgID       int
	ShortMessage         string
	Options              *Options
}

// CommandID implements Body.
func (p SubmitSm) CommandID() CommandID { return SubmitSmID }

// Response builds the matching SubmitSmResp.
func (p SubmitSm) Response(msgID string) *SubmitSmResp {
	return &SubmitSmResp{MessageID: msgID}
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (p SubmitSm) MarshalBinary() ([]byte, error) {
	out := append(
		[]byte(p.ServiceType),
		0,
		byte(p.SourceAddrTon),
		byte(p.SourceAddrNpi),
	)
	out = append(out, append([]byte(p.SourceAddr), 0)...)
	out = append(out, byte(p.DestAddrTon), byte(p.DestAddrNpi))
	out = append(out, append([]byte(p.DestinationAddr), 0)...)
	out = append(out, p.EsmClass.Byte(), byte(p.ProtocolID), byte(p.PriorityFlag))
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
	out = append(out, p.RegisteredDelivery.Byte(), byte(p.ReplaceIfPresentFlag), byte(p.DataCoding), byte(p.SmDefaultMsgID), byte(l))
	if l > 0 {
		out = append(out, []byte(p.ShortMessage)...)
	}
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
func (p *SubmitSm) UnmarshalBinary(body []byte) error {
	if len(body) < 25 {
		return fmt.Errorf("pdu: submit_sm body too short: %d", len(body))
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
	b, err = buf.ReadByte()
	if err != nil {
		return fieldErr("dest_addr_ton", ErrUnexpectedEOF)
	}
	p.DestAddrTon = int(b)
	b, err = buf.ReadByte()
	if err != nil {
		return fieldErr("dest_addr_npi", ErrUnexpectedEOF)
	}
	p.DestAddrNpi = int(b)
	res, err = buf.ReadCString("destination_addr", 21)
	if err != nil {
		return err
	}
	p.DestinationAddr = string(res)
	b, err = buf.ReadByte()
	if err != nil {
		return fieldErr("esm_class", ErrUnexpectedEOF)
	}
	p.EsmClass = ParseEsmClass(b)
	b, err = buf.ReadByte()
	if err != nil {
		return fieldErr("protocol_id", ErrUnexpectedEOF)
	}
	p.ProtocolID = int(b)
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
		return fieldErr("registered_delivery", ErrUnexpectedEOF)
	}
	p.RegisteredDelivery = ParseRegisteredDelivery(b)
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
	sm, err := buf.ReadString("short_message", 254)
	if err != nil {
		return err
	}
	p.ShortMessage = string(sm)
	if buf.Len() == 0 {
		return nil
	}
	if p.Options == nil {
		p.Options = NewOptions()
	}
	return p.Options.UnmarshalBinary(buf.Bytes())
}

// SubmitSmResp is the submit_sm_resp body.
type SubmitSmResp struct {
	MessageID string
	Options   *Options
}

// CommandID implements Body.
func (p SubmitSmResp) CommandID() CommandID { return SubmitSmRespID }

// MarshalBinary implements encoding.BinaryMarshaler.
func (p SubmitSmResp) MarshalBinary() ([]byte, error) {
	return cStringOptsMarshal(p.MessageID, p.Options)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p *SubmitSmResp) UnmarshalBinary(body []byte) error {
	var err error
	p.MessageID, p.Options, err = cStringOptsUnmarshal("message_id", body)
	return err
}
