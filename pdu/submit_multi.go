package pdu

import (
	"fmt"
	"time"

	"github.com/smppgo/smpp5c/internal/smpptime"
)

// Distribution list / SME flags used by DestAddress.DestFlag.
const (
	SmeAddressFlag             = 0x01
	DistributionListNameFlag   = 0x02
)

// DestAddress is one entry of SubmitMulti's destination address list: either
// an SME address (DestFlag == SmeAddressFlag, Ton/Npi/Addr set) or a
// distribution list name (DestFlag == DistributionListNameFlag, DlName
// set).
type DestAddress struct {
	DestFlag int
	Ton      int
	Npi      int
	Addr     string
	DlName   string
}

func (d DestAddress) marshal() []byte {
	out := []byte{byte(d.DestFlag)}
	if d.DestFlag == DistributionListNameFlag {
		return append(out, append([]byte(d.DlName), 0)...)
	}
	out = append(out, byte(d.Ton), byte(d.Npi))
	return append(out, append([]byte(d.Addr), 0)...)
}

func (d *DestAddress) unmarshal(buf *bodyReader) error {
	flag, err := buf.ReadByte()
	if err != nil {
		return fieldErr("dest_flag", ErrUnexpectedEOF)
	}
	d.DestFlag = int(flag)
	if d.DestFlag == DistributionListNameFlag {
		res, err := buf.ReadCString("dl_name", 21)
		if err != nil {
			return err
		}
		d.DlName = string(res)
		return nil
	}
	ton, err := buf.ReadByte()
	if err != nil {
		return fieldErr("dest_addr_ton", ErrUnexpectedEOF)
	}
	d.Ton = int(ton)
	npi, err := buf.ReadByte()
	if err != nil {
		return fieldErr("dest_addr_npi", ErrUnexpectedEOF)
	}
	d.Npi = int(npi)
	res, err := buf.ReadCString("destination_addr", 21)
	if err != nil {
		return err
	}
	d.Addr = string(res)
	return nil
}

// UnsuccessSme is one entry of SubmitMultiResp's unsuccessful-delivery
// list.
type UnsuccessSme struct {
	Ton       int
	Npi       int
	Addr      string
	ErrorCode CommandStatus
}

// SubmitMulti submits a short message to multiple destinations in one
// request: SME addresses and/or MC-resident distribution lists.
type SubmitMulti struct {
	ServiceType          string
	SourceAddrTon        int
	SourceAddrNpi        int
	SourceAddr           string
	DestAddresses        []DestAddress
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
func (p SubmitMulti) CommandID() CommandID { return SubmitMultiID }

// MarshalBinary implements encoding.BinaryMarshaler.
func (p SubmitMulti) MarshalBinary() ([]byte, error) {
	out := append([]byte(p.ServiceType), 0, byte(p.SourceAddrTon), byte(p.SourceAddrNpi))
	out = append(out, append([]byte(p.SourceAddr), 0)...)
	out = append(out, byte(len(p.DestAddresses)))
	for _, d := range p.DestAddresses {
		out = append(out, d.marshal()...)
	}
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
func (p *SubmitMulti) UnmarshalBinary(body []byte) error {
	if len(body) < 10 {
		return fmt.Errorf("pdu: submit_multi body too short: %d", len(body))
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
	numDests, err := buf.ReadByte()
	if err != nil {
		return fieldErr("number_of_dests", ErrUnexpectedEOF)
	}
	p.DestAddresses = make([]DestAddress, numDests)
	for i := range p.DestAddresses {
		if err := p.DestAddresses[i].unmarshal(buf); err != nil {
			return err
		}
	}
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
	p.Options = NewOptions()
	return p.Options.UnmarshalBinary(buf.Bytes())
}

// SubmitMultiResp is the submit_multi_resp body.
type SubmitMultiResp struct {
	MessageID      string
	UnsuccessSmes  []UnsuccessSme
	Options        *Options
}

// CommandID implements Body.
func (p SubmitMultiResp) CommandID() CommandID { return SubmitMultiRespID }

// MarshalBinary implements encoding.BinaryMarshaler.
func (p SubmitMultiResp) MarshalBinary() ([]byte, error) {
	out := append([]byte(p.MessageID), 0, byte(len(p.UnsuccessSmes)))
	for _, u := range p.UnsuccessSmes {
		out = append(out, byte(u.Ton), byte(u.Npi))
		out = append(out, append([]byte(u.Addr), 0)...)
		status := make([]byte, 4)
		PutUint32(status, uint32(u.ErrorCode))
		out = append(out, status...)
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
func (p *SubmitMultiResp) UnmarshalBinary(body []byte) error {
	if len(body) < 2 {
		return fmt.Errorf("pdu: submit_multi_resp body too short: %d", len(body))
	}
	buf := newBuffer(body)
	res, err := buf.ReadCString("message_id", 65)
	if err != nil {
		return err
	}
	p.MessageID = string(res)
	numUnsuccess, err := buf.ReadByte()
	if err != nil {
		return fieldErr("no_unsuccess", ErrUnexpectedEOF)
	}
	p.UnsuccessSmes = make([]UnsuccessSme, numUnsuccess)
	for i := range p.UnsuccessSmes {
		ton, err := buf.ReadByte()
		if err != nil {
			return fieldErr("dest_addr_ton", ErrUnexpectedEOF)
		}
		p.UnsuccessSmes[i].Ton = int(ton)
		npi, err := buf.ReadByte()
		if err != nil {
			return fieldErr("dest_addr_npi", ErrUnexpectedEOF)
		}
		p.UnsuccessSmes[i].Npi = int(npi)
		addr, err := buf.ReadCString("destination_addr", 21)
		if err != nil {
			return err
		}
		p.UnsuccessSmes[i].Addr = string(addr)
		var statusBytes [4]byte
		n, err := buf.Read(statusBytes[:])
		if err != nil || n != 4 {
			return fieldErr("error_status_code", ErrUnexpectedEOF)
		}
		status, _, _ := Uint32(statusBytes[:])
		p.UnsuccessSmes[i].ErrorCode = CommandStatus(status)
	}
	if buf.Len() == 0 {
		return nil
	}
	p.Options = NewOptions()
	return p.Options.UnmarshalBinary(buf.Bytes())
}
