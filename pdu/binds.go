package pdu

import (
	"fmt"
)

// BindTransmitter binds the session in transmitter mode: the ESME may only
// submit messages.
type BindTransmitter struct {
	SystemID         string
	Password         string
	SystemType       string
	InterfaceVersion InterfaceVersion
	AddrTon          int
	AddrNpi          int
	AddressRange     string
}

// CommandID implements Body.
func (p BindTransmitter) CommandID() CommandID { return BindTransmitterID }

// Response builds the matching BindTransmitterResp.
func (p BindTransmitter) Response(sysID string) *BindTransmitterResp {
	return &BindTransmitterResp{SystemID: sysID}
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (p BindTransmitter) MarshalBinary() ([]byte, error) {
	return marshalBind(p.SystemID, p.Password, p.SystemType, int(p.InterfaceVersion), p.AddrTon, p.AddrNpi, p.AddressRange)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p *BindTransmitter) UnmarshalBinary(body []byte) error {
	var iv int
	if err := unmarshalBind(body, &p.SystemID, &p.Password, &p.SystemType, &iv, &p.AddrTon, &p.AddrNpi, &p.AddressRange); err != nil {
		return err
	}
	p.InterfaceVersion = InterfaceVersion(iv)
	return nil
}

// BindTransmitterResp is the bind_transmitter_resp body.
type BindTransmitterResp struct {
	SystemID string
	Options  *Options
}

// CommandID implements Body.
func (p BindTransmitterResp) CommandID() CommandID { return BindTransmitterRespID }

// MarshalBinary implements encoding.BinaryMarshaler.
func (p BindTransmitterResp) MarshalBinary() ([]byte, error) {
	return cStringOptsMarshal(p.SystemID, p.Options)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p *BindTransmitterResp) UnmarshalBinary(body []byte) error {
	var err error
	p.SystemID, p.Options, err = cStringOptsUnmarshal("system_id", body)
	return err
}

// BindReceiver binds the session in receiver mode: the ESME may only
// receive messages.
type BindReceiver struct {
	SystemID         string
	Password         string
	SystemType       string
	InterfaceVersion InterfaceVersion
	AddrTon          int
	AddrNpi          int
	AddressRange     string
}

// CommandID implements Body.
func (p BindReceiver) CommandID() CommandID { return BindReceiverID }

// Response builds the matching BindReceiverResp.
func (p BindReceiver) Response(sysID string) *BindReceiverResp {
	return &BindReceiverResp{SystemID: sysID}
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (p BindReceiver) MarshalBinary() ([]byte, error) {
	return marshalBind(p.SystemID, p.Password, p.SystemType, int(p.InterfaceVersion), p.AddrTon, p.AddrNpi, p.AddressRange)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p *BindReceiver) UnmarshalBinary(body []byte) error {
	var iv int
	if err := unmarshalBind(body, &p.SystemID, &p.Password, &p.SystemType, &iv, &p.AddrTon, &p.AddrNpi, &p.AddressRange); err != nil {
		return err
	}
	p.InterfaceVersion = InterfaceVersion(iv)
	return nil
}

// BindReceiverResp is the bind_receiver_resp body.
type BindReceiverResp struct {
	SystemID string
	Options  *Options
}

// CommandID implements Body.
func (p BindReceiverResp) CommandID() CommandID { return BindReceiverRespID }

// MarshalBinary implements encoding.BinaryMarshaler.
func (p BindReceiverResp) MarshalBinary() ([]byte, error) {
	return cStringOptsMarshal(p.SystemID, p.Options)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p *BindReceiverResp) UnmarshalBinary(body []byte) error {
	var err error
	p.SystemID, p.Options, err = cStringOptsUnmarshal("system_id", body)
	return err
}

// BindTransceiver binds the session in transceiver mode: the ESME may both
// submit and receive messages over the same connection.
type BindTransceiver struct {
	SystemID         string
	Password         string
	SystemType       string
	InterfaceVersion InterfaceVersion
	AddrTon          int
	AddrNpi          int
	AddressRange     string
}

// CommandID implements Body.
func (p BindTransceiver) CommandID() CommandID { return BindTransceiverID }

// Response builds the matching BindTransceiverResp.
func (p BindTransceiver) Response(sysID string) *BindTransceiverResp {
	return &BindTransceiverResp{SystemID: sysID}
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (p BindTransceiver) MarshalBinary() ([]byte, error) {
	return marshalBind(p.SystemID, p.Password, p.SystemType, int(p.InterfaceVersion), p.AddrTon, p.AddrNpi, p.AddressRange)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p *BindTransceiver) UnmarshalBinary(body []byte) error {
	var iv int
	if err := unmarshalBind(body, &p.SystemID, &p.Password, &p.SystemType, &iv, &p.AddrTon, &p.AddrNpi, &p.AddressRange); err != nil {
		return err
	}
	p.InterfaceVersion = InterfaceVersion(iv)
	return nil
}

// BindTransceiverResp is the bind_transceiver_resp body.
type BindTransceiverResp struct {
	SystemID string
	Options  *Options
}

// CommandID implements Body.
func (p BindTransceiverResp) CommandID() CommandID { return BindTransceiverRespID }

// MarshalBinary implements encoding.BinaryMarshaler.
func (p BindTransceiverResp) MarshalBinary() ([]byte, error) {
	return cStringOptsMarshal(p.SystemID, p.Options)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p *BindTransceiverResp) UnmarshalBinary(body []byte) error {
	var err error
	p.SystemID, p.Options, err = cStringOptsUnmarshal("system_id", body)
	return err
}

// Outbind lets an SMSC-mode peer initiate a bind towards an ESME. The ESME
// responds by issuing its own bind_transceiver/transmitter/receiver.
type Outbind struct {
	SystemID string
	Password string
}

// CommandID implements Body.
func (p Outbind) CommandID() CommandID { return OutbindID }

// MarshalBinary implements encoding.BinaryMarshaler.
func (p Outbind) MarshalBinary() ([]byte, error) {
	out := append([]byte(p.SystemID), 0)
	out = append(out, append([]byte(p.Password), 0)...)
	return out, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p *Outbind) UnmarshalBinary(body []byte) error {
	buf := newBuffer(body)
	res, err := buf.ReadCString("system_id", 16)
	if err != nil {
		return err
	}
	p.SystemID = string(res)
	res, err = buf.ReadCString("password", 9)
	if err != nil {
		return err
	}
	p.Password = string(res)
	return nil
}

func marshalBind(systemID, password, systemType string, interfaceVer, addrTon, addrNpi int, addrRange string) ([]byte, error) {
	out := append([]byte(systemID), 0)
	out = append(out, append([]byte(password), 0)...)
	out = append(out, append([]byte(systemType), 0)...)
	out = append(out, byte(interfaceVer), byte(addrTon), byte(addrNpi))
	out = append(out, append([]byte(addrRange), 0)...)
	return out, nil
}

func unmarshalBind(body []byte, systemID, password, systemType *string, interfaceVer, addrTon, addrNpi *int, addrRange *string) error {
	if len(body) < 7 {
		return fmt.Errorf("pdu: bind body too short: %d", len(body))
	}
	buf := newBuffer(body)
	res, err := buf.ReadCString("system_id", 16)
	if err != nil {
		return err
	}
	*systemID = string(res)
	res, err = buf.ReadCString("password", 9)
	if err != nil {
		return err
	}
	*password = string(res)
	res, err = buf.ReadCString("system_type", 13)
	if err != nil {
		return err
	}
	*systemType = string(res)
	b, err := buf.ReadByte()
	if err != nil {
		return fieldErr("interface_version", ErrUnexpectedEOF)
	}
	*interfaceVer = int(b)
	b, err = buf.ReadByte()
	if err != nil {
		return fieldErr("addr_ton", ErrUnexpectedEOF)
	}
	*addrTon = int(b)
	b, err = buf.ReadByte()
	if err != nil {
		return fieldErr("addr_npi", ErrUnexpectedEOF)
	}
	*addrNpi = int(b)
	res, err = buf.ReadCString("addr_range", 41)
	if err != nil {
		return err
	}
	*addrRange = string(res)
	return nil
}
