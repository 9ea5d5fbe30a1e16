package pdu

import "fmt"

// AlertNotification tells an ESME that a mobile subscriber it has pending
// messages for has become available (e.g. powered back on). It carries no
// response.
type AlertNotification struct {
	SourceAddrTon   int
	SourceAddrNpi   int
	SourceAddr      string
	EsmeAddrTon     int
	EsmeAddrNpi     int
	EsmeAddr        string
	Options         *Options
}

// CommandID implements Body.
func (p AlertNotification) CommandID() CommandID { return AlertNotificationID }

// MarshalBinary implements encoding.BinaryMarshaler.
func (p AlertNotification) MarshalBinary() ([]byte, error) {
	out := []byte{byte(p.SourceAddrTon), byte(p.SourceAddrNpi)}
	out = append(out, append([]byte(p.SourceAddr), 0)...)
	out = append(out, byte(p.EsmeAddrTon), byte(p.EsmeAddrNpi))
	out = append(out, append([]byte(p.EsmeAddr), 0)...)
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
func (p *AlertNotification) UnmarshalBinary(body []byte) error {
	if len(body) < 4 {
		return fmt.Errorf("pdu: alert_notification body too short: %d", len(body))
	}
	buf := newBuffer(body)
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
	res, err := buf.ReadCString("source_addr", 65)
	if err != nil {
		return err
	}
	p.SourceAddr = string(res)
	b, err = buf.ReadByte()
	if err != nil {
		return fieldErr("esme_addr_ton", ErrUnexpectedEOF)
	}
	p.EsmeAddrTon = int(b)
	b, err = buf.ReadByte()
	if err != nil {
		return fieldErr("esme_addr_npi", ErrUnexpectedEOF)
	}
	p.EsmeAddrNpi = int(b)
	res, err = buf.ReadCString("esme_addr", 65)
	if err != nil {
		return err
	}
	p.EsmeAddr = string(res)
	if buf.Len() == 0 {
		return nil
	}
	p.Options = NewOptions()
	return p.Options.UnmarshalBinary(buf.Bytes())
}
