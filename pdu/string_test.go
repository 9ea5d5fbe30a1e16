package pdu

import (
	"bytes"
	"errors"
	"testing"
)

func TestNewCOctetString(t *testing.T) {
	if _, err := NewCOctetString("system_id", "test", 1, 16); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if _, err := NewCOctetString("system_id", "way too long a system id value", 1, 16); !errors.Is(err, ErrTooManyBytes) {
		t.Errorf("expected ErrTooManyBytes, got %v", err)
	}
	if _, err := NewCOctetString("system_id", "bad\x00value", 1, 16); !errors.Is(err, ErrNullByteFound) {
		t.Errorf("expected ErrNullByteFound, got %v", err)
	}
	if _, err := NewCOctetString("system_id", "bad\xffvalue", 1, 16); !errors.Is(err, ErrNotASCII) {
		t.Errorf("expected ErrNotASCII, got %v", err)
	}
}

func TestDecodeCOctetString(t *testing.T) {
	c, n, err := DecodeCOctetString("system_id", []byte("test\x00trailing"), 1, 16)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if n != 5 {
		t.Errorf("consumed = %d, want 5", n)
	}
	if c.String() != "test" {
		t.Errorf("String() = %q, want %q", c.String(), "test")
	}
	if _, _, err := DecodeCOctetString("system_id", []byte("notterminated"), 1, 8); !errors.Is(err, ErrNotNullTerminated) {
		t.Errorf("expected ErrNotNullTerminated, got %v", err)
	}
}

func TestEmptyOrFullCOctetString(t *testing.T) {
	empty, err := NewEmptyOrFullCOctetString("service_type", "", 6)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if empty.String() != "" {
		t.Errorf("String() = %q, want empty", empty.String())
	}
	full, err := NewEmptyOrFullCOctetString("service_type", "CMT", 4)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if full.String() != "CMT" {
		t.Errorf("String() = %q, want %q", full.String(), "CMT")
	}
	if _, err := NewEmptyOrFullCOctetString("service_type", "AB", 6); err == nil {
		t.Error("expected error for partial-length value")
	}
	d, n, err := DecodeEmptyOrFullCOctetString("service_type", []byte{0, 'x'}, 6)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if n != 1 || d.String() != "" {
		t.Errorf("decode empty => n=%d val=%q", n, d.String())
	}
}

func TestOctetString(t *testing.T) {
	o, err := NewOctetString("short_message", []byte("hello"), 0, 254)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !bytes.Equal(o.Bytes(), []byte("hello")) {
		t.Errorf("Bytes() = %X", o.Bytes())
	}
	if _, err := NewOctetString("short_message", make([]byte, 255), 0, 254); !errors.Is(err, ErrTooManyBytes) {
		t.Errorf("expected ErrTooManyBytes, got %v", err)
	}
	if _, _, err := DecodeOctetString("short_message", []byte("ab"), 5, 0, 254); !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("expected ErrUnexpectedEOF, got %v", err)
	}
}

func TestAnyOctetString(t *testing.T) {
	a := NewAnyOctetString([]byte{1, 2, 3})
	if a.Len() != 3 {
		t.Errorf("Len() = %d, want 3", a.Len())
	}
	dec, n, err := DecodeAnyOctetString("tlv", []byte{1, 2, 3, 4}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if n != 3 || !bytes.Equal(dec.Bytes(), []byte{1, 2, 3}) {
		t.Errorf("decode any octet string => n=%d bytes=%X", n, dec.Bytes())
	}
}
