package pdu

// Header is the 16-byte SMPP command header: command_length, command_id,
// command_status, sequence_number.
type Header struct {
	Length   uint32
	ID       CommandID
	Status   CommandStatus
	Sequence uint32
}

// DecodeHeader reads the 16-byte header from body. Callers are expected to
// have already read exactly 16 bytes (frame.Reader.ReadFrame does).
func DecodeHeader(body []byte) (Header, error) {
	if len(body) < 16 {
		return Header{}, fieldErr("header", ErrUnexpectedEOF)
	}
	length, _, _ := Uint32(body[0:4])
	id, _, _ := Uint32(body[4:8])
	status, _, _ := Uint32(body[8:12])
	seq, _, _ := Uint32(body[12:16])
	return Header{
		Length:   length,
		ID:       CommandID(id),
		Status:   CommandStatus(status),
		Sequence: seq,
	}, nil
}

// Encode writes the 16-byte header into dst.
func (h Header) Encode(dst []byte) int {
	PutUint32(dst[0:4], h.Length)
	PutUint32(dst[4:8], uint32(h.ID))
	PutUint32(dst[8:12], uint32(h.Status))
	PutUint32(dst[12:16], h.Sequence)
	return 16
}

// Ok returns nil iff Status is StatusOK, otherwise a classified error
// carrying the status.
func (h Header) Ok() error {
	if h.Status == StatusOK {
		return nil
	}
	return &StatusError{Status: h.Status}
}

// StatusError reports a non-OK command_status on a response.
type StatusError struct {
	Status CommandStatus
}

func (e *StatusError) Error() string {
	return "pdu: non-OK status " + e.Status.String()
}
