package pdu

import (
	"fmt"
	"time"

	"github.com/smppgo/smpp5c/internal/smpptime"
)

// QuerySm queries the status of a previously submitted message.
type QuerySm struct {
	MessageID     string
	SourceAddrTon int
	SourceAddrNpi int
	SourceAddr    string
}

// CommandID implements Body.
func (p QuerySm) CommandID() CommandID { return QuerySmID }

// Response builds the matching QuerySmResp.
func (p QuerySm) Response(date time.Time, state, errCode int) *QuerySmResp {
	return &QuerySmResp{
		MessageID:    p.MessageID,
		FinalDate:    date,
		MessageState: state,
		ErrorCode:    errCode,
	}
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (p QuerySm) MarshalBinary() ([]byte, error) {
	out := append([]byte(p.MessageID), 0)
	out = append(out, byte(p.SourceAddrTon), byte(p.SourceAddrNpi))
	out = append(out, append([]byte(p.SourceAddr), 0)...)
	return out, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p *QuerySm) UnmarshalBinary(body []byte) error {
	if len(body) < 6 {
		return fmt.Errorf("pdu: query_sm body too short: %d", len(body))
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
	return nil
}

// QuerySmResp is the query_sm_resp body.
type QuerySmResp struct {
	MessageID    string
	FinalDate    time.Time
	MessageState int
	ErrorCode    int
}

// CommandID implements Body.
func (p QuerySmResp) CommandID() CommandID { return QuerySmRespID }

// MarshalBinary implements encoding.BinaryMarshaler.
func (p QuerySmResp) MarshalBinary() ([]byte, error) {
	out := append([]byte(p.MessageID), 0)
	tm, err := writeTime(smpptime.Absolute, p.FinalDate)
	if err != nil {
		return nil, err
	}
	out = append(out, tm...)
	out = append(out, byte(p.MessageState), byte(p.ErrorCode))
	return out, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p *QuerySmResp) UnmarshalBinary(body []byte) error {
	if len(body) < 6 {
		return fmt.Errorf("pdu: query_sm_resp body too short: %d", len(body))
	}
	buf := newBuffer(body)
	res, err := buf.ReadCString("message_id", 65)
	if err != nil {
		return err
	}
	p.MessageID = string(res)
	res, err = buf.ReadCString("final_date", 17)
	if err != nil {
		return err
	}
	t, err := smpptime.Parse(res)
	if err != nil {
		return fieldErr("final_date", err)
	}
	p.FinalDate = t
	b, err := buf.ReadByte()
	if err != nil {
		return fieldErr("message_state", ErrUnexpectedEOF)
	}
	p.MessageState = int(b)
	b, err = buf.ReadByte()
	if err != nil {
		return fieldErr("error_code", ErrUnexpectedEOF)
	}
	p.ErrorCode = int(b)
	return nil
}
