package frame

import (
	"bytes"
	"errors"
	"testing"

	"github.com/smppgo/smpp5c/pdu"
)

func TestReadFrameRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	h := pdu.Header{ID: pdu.EnquireLinkID, Status: pdu.StatusOK, Sequence: 7}
	if err := w.WriteFrame(h, nil); err != nil {
		t.Fatalf("WriteFrame() error = %s", err)
	}

	r := NewReader(buf, DefaultMaxLength)
	got, body, err := r.ReadFrame()
	if err != nil {
		t.Fatalf("ReadFrame() error = %s", err)
	}
	if got.ID != h.ID || got.Status != h.Status || got.Sequence != h.Sequence {
		t.Errorf("ReadFrame() header = %+v, want %+v", got, h)
	}
	if len(body) != 0 {
		t.Errorf("ReadFrame() body = %X, want empty", body)
	}
}

func TestReadFrameRejectsBelowMinimumLength(t *testing.T) {
	buf := bytes.NewBuffer([]byte{0, 0, 0, 8})
	r := NewReader(buf, DefaultMaxLength)
	if _, _, err := r.ReadFrame(); err == nil {
		t.Error("expected error for command_length below 16")
	}
}

func TestReadFrameRejectsAboveMaxLength(t *testing.T) {
	buf := bytes.NewBuffer([]byte{0, 0, 0, 32})
	r := NewReader(buf, 17)
	if _, _, err := r.ReadFrame(); err == nil {
		t.Error("expected error for command_length above configured maximum")
	}
}

func TestReadCommandDecodesBody(t *testing.T) {
	buf := &bytes.Buffer{}
	enc := pdu.NewEncoder(buf, nil)
	if _, err := enc.Encode(&pdu.EnquireLink{}, pdu.WithSequence(3)); err != nil {
		t.Fatalf("Encode() error = %s", err)
	}

	r := NewReader(buf, DefaultMaxLength)
	h, body, err := r.ReadCommand()
	if err != nil {
		t.Fatalf("ReadCommand() error = %s", err)
	}
	if h.Sequence != 3 {
		t.Errorf("ReadCommand() sequence = %d, want 3", h.Sequence)
	}
	if _, ok := body.(*pdu.EnquireLink); !ok {
		t.Errorf("ReadCommand() body type = %T, want *pdu.EnquireLink", body)
	}
}

func TestReadCommandResyncsPastBodyDecodeError(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)

	// cancel_sm with a non-ASCII byte in service_type: fails DecodeCOctetString
	// but is still a well-formed, fully-consumable frame.
	badBody := []byte{0x80, 0, 0, 0, 0, 0, 0, 0, 0}
	if err := w.WriteFrame(pdu.Header{ID: pdu.CancelSmID, Status: pdu.StatusOK, Sequence: 1}, badBody); err != nil {
		t.Fatalf("WriteFrame() error = %s", err)
	}
	if err := w.WriteFrame(pdu.Header{ID: pdu.EnquireLinkID, Status: pdu.StatusOK, Sequence: 3}, nil); err != nil {
		t.Fatalf("WriteFrame() error = %s", err)
	}

	r := NewReader(buf, DefaultMaxLength)
	_, _, err := r.ReadCommand()
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("ReadCommand() error = %v, want *DecodeError", err)
	}
	if decodeErr.Header.Sequence != 1 {
		t.Errorf("DecodeError.Header.Sequence = %d, want 1", decodeErr.Header.Sequence)
	}

	h, body, err := r.ReadCommand()
	if err != nil {
		t.Fatalf("ReadCommand() error = %s after resync, want nil", err)
	}
	if h.Sequence != 3 {
		t.Errorf("ReadCommand() sequence = %d, want 3", h.Sequence)
	}
	if _, ok := body.(*pdu.EnquireLink); !ok {
		t.Errorf("ReadCommand() body type = %T, want *pdu.EnquireLink", body)
	}
}
