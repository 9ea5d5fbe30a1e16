package pdu

import (
	"fmt"
	"time"

	"github.com/smppgo/smpp5c/internal/smpptime"
)

// DeliverSm delivers a short message to an ESME, or carries a delivery
// receipt/intermediate notification when EsmClass.Type is set accordingly.
// SmLength is derived automatically when encoding.
type DeliverSm struct {
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
func (p DeliverSm) CommandID() CommandID { return DeliverSmID }

// Response builds the matching DeliverSmResp.
func (p DeliverSm) Response(msgID string) *DeliverSmResp {
	return &DeliverSmResp{MessageID: msgID}
}

// IsReceipt reports whether EsmClass.Type marks this as a delivery receipt
// rather than a normal mobile-originated message.
func (p DeliverSm) IsReceipt() bool {
	return p.EsmClass.Type == DelRecEsmType
}

// DeliveryReceipt parses ShortMessage as a delivery receipt. Callers should
// check IsReceipt first; parsing a non-receipt short_message returns an
// error from ParseDeliveryReceipt.
func (p DeliverSm) DeliveryReceipt() (*DeliveryReceipt, error) {
	return ParseDeliveryReceipt(p.ShortMessage)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (p DeliverSm) MarshalBinary() ([]byte, error) {
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
func (p *DeliverSm) UnmarshalBinary(body []byte) error {
	if len(body) < 25 {
		return fmt.Errorf("pdu: deliver_sm body too short: %d", len(body))
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

// DeliverSmResp is the deliver_sm_resp body.
type DeliverSmResp struct {
	MessageID string
}

// CommandID implements Body.
func (p DeliverSmResp) CommandID() CommandID { return DeliverSmRespID }

// MarshalBinary implements encoding.BinaryMarshaler.
func (p DeliverSmResp) MarshalBinary() ([]byte, error) {
	return append([]byte(p.MessageID), 0), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p *DeliverSmResp) UnmarshalBinary(body []byte) error {
	if len(body) == 0 {
		return nil
	}
	s, _, err := DecodeCOctetString("message_id", body, 1, len(body)+1)
	if err != nil {
		return err
	}
	p.MessageID = s.String()
	return nil
}
