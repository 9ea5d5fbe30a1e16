package pdu

import "fmt"

// DataSm transfers data between an ESME and the message center over an
// interactive session, the data-exchange counterpart to SubmitSm/DeliverSm.
// The actual payload, if any, travels as Options.MessagePayload rather than
// an inline short_message field.
type DataSm struct {
	ServiceType        string
	SourceAddrTon      int
	SourceAddrNpi      int
	SourceAddr         string
	DestAddrTon        int
	DestAddrNpi        int
	DestinationAddr    string
	EsmClass           EsmClass
	RegisteredDelivery RegisteredDelivery
	DataCoding         int
	Options            *Options
}

// CommandID implements Body.
func (p DataSm) CommandID() CommandID { return DataSmID }

// Response builds the matching DataSmResp.
func (p DataSm) Response(msgID string) *DataSmResp {
	return &DataSmResp{MessageID: msgID}
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (p DataSm) MarshalBinary() ([]byte, error) {
	out := append([]byte(p.ServiceType), 0)
	out = append(out, byte(p.SourceAddrTon), byte(p.SourceAddrNpi))
	out = append(out, append([]byte(p.SourceAddr), 0)...)
	out = append(out, byte(p.DestAddrTon), byte(p.DestAddrNpi))
	out = append(out, append([]byte(p.DestinationAddr), 0)...)
	out = append(out, p.EsmClass.Byte(), p.RegisteredDelivery.Byte(), byte(p.DataCoding))
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
func (p *DataSm) UnmarshalBinary(body []byte) error {
	if len(body) < 9 {
		return fmt.Errorf("pdu: data_sm body too short: %d", len(body))
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
	res, err = buf.ReadCString("source_addr", 65)
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
	res, err = buf.ReadCString("destination_addr", 65)
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
		return fieldErr("registered_delivery", ErrUnexpectedEOF)
	}
	p.RegisteredDelivery = ParseRegisteredDelivery(b)
	b, err = buf.ReadByte()
	if err != nil {
		return fieldErr("data_coding", ErrUnexpectedEOF)
	}
	p.DataCoding = int(b)
	if buf.Len() == 0 {
		return nil
	}
	p.Options = NewOptions()
	return p.Options.UnmarshalBinary(buf.Bytes())
}

// DataSmResp is the data_sm_resp body.
type DataSmResp struct {
	MessageID string
	Options   *Options
}

// CommandID implements Body.
func (p DataSmResp) CommandID() CommandID { return DataSmRespID }

// MarshalBinary implements encoding.BinaryMarshaler.
func (p DataSmResp) MarshalBinary() ([]byte, error) {
	return cStringOptsMarshal(p.MessageID, p.Options)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p *DataSmResp) UnmarshalBinary(body []byte) error {
	var err error
	p.MessageID, p.Options, err = cStringOptsUnmarshal("message_id", body)
	return err
}
