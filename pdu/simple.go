package pdu

// Unbind requests an orderly close of the session.
type Unbind struct{}

// CommandID implements Body.
func (p Unbind) CommandID() CommandID { return UnbindID }

// Response builds the matching UnbindResp.
func (p Unbind) Response() *UnbindResp { return &UnbindResp{} }

// MarshalBinary implements encoding.BinaryMarshaler.
func (p Unbind) MarshalBinary() ([]byte, error) { return nil, nil }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p Unbind) UnmarshalBinary(body []byte) error { return nil }

// UnbindResp acknowledges an Unbind.
type UnbindResp struct{}

// CommandID implements Body.
func (p UnbindResp) CommandID() CommandID { return UnbindRespID }

// MarshalBinary implements encoding.BinaryMarshaler.
func (p UnbindResp) MarshalBinary() ([]byte, error) { return nil, nil }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p UnbindResp) UnmarshalBinary(body []byte) error { return nil }

// EnquireLink is the session keep-alive request.
type EnquireLink struct{}

// CommandID implements Body.
func (p EnquireLink) CommandID() CommandID { return EnquireLinkID }

// Response builds the matching EnquireLinkResp.
func (p EnquireLink) Response() *EnquireLinkResp { return &EnquireLinkResp{} }

// MarshalBinary implements encoding.BinaryMarshaler.
func (p EnquireLink) MarshalBinary() ([]byte, error) { return nil, nil }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p EnquireLink) UnmarshalBinary(body []byte) error { return nil }

// EnquireLinkResp acknowledges an EnquireLink.
type EnquireLinkResp struct{}

// CommandID implements Body.
func (p EnquireLinkResp) CommandID() CommandID { return EnquireLinkRespID }

// MarshalBinary implements encoding.BinaryMarshaler.
func (p EnquireLinkResp) MarshalBinary() ([]byte, error) { return nil, nil }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p EnquireLinkResp) UnmarshalBinary(body []byte) error { return nil }

// GenericNack signals that the peer could not parse or route the last
// command it received (unknown command_id, malformed body, and so on).
type GenericNack struct{}

// CommandID implements Body.
func (p GenericNack) CommandID() CommandID { return GenericNackID }

// MarshalBinary implements encoding.BinaryMarshaler.
func (p GenericNack) MarshalBinary() ([]byte, error) { return nil, nil }

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p GenericNack) UnmarshalBinary(body []byte) error { return nil }
