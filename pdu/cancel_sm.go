package pdu

import "fmt"

// CancelSm cancels a previously submitted, not-yet-delivered message.
type CancelSm struct {
	ServiceType     string
	MessageID       string
	SourceAddrTon   int
	SourceAddrNpi   int
	SourceAddr      string
	DestAddrTon     int
	DestAddrNpi     int
	DestinationAddr string
}

// CommandID implements Body.
func (p CancelSm) CommandID() CommandID { return CancelSmID }

// Response builds the matching CancelSmResp.
func (p CancelSm) Response() *CancelSmResp { return &CancelSmResp{} }

// MarshalBinary implements encoding.BinaryMarshaler.
func (p CancelSm) MarshalBinary() ([]byte, error) {
	out := append([]byte(p.ServiceType), 0)
	out = append(out, append([]byte(p.MessageID), 0)...)
	out = append(out, byte(p.SourceAddrTon), byte(p.SourceAddrNpi))
	out = append(out, append([]byte(p.SourceAddr), 0)...)
	out = append(out, byte(p.DestAddrTon), byte(p.DestAddrNpi))
	out = append(out, append([]byte(p.DestinationAddr), 0)...)
	return out, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p *CancelSm) UnmarshalBinary(body []byte) error {
	if len(body) < 9 {
		return fmt.Errorf("pdu: cancel_sm body too short: %d", len(body))
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
	return nil
}

// CancelSmResp is the cancel_sm_resp body. It carries no mandatory fields.
type CancelSmResp struct{}

// CommandID implements Body.
func (p CancelSmResp) CommandID() CommandID { return CancelSmRespID }

// MarshalBinary implements encoding.BinaryMarshaler.
func (p CancelSmResp) MarshalBinary() ([]byte, error) { return nil, nil }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p CancelSmResp) UnmarshalBinary(body []byte) error { return nil }
