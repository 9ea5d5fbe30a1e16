package pdu

import (
	"bytes"
	"testing"
)

func TestOptionsRoundTrip(t *testing.T) {
	o := NewOptions().
		SetScInterfaceVersion(0x50).
		SetReceiptedMessageID("abc123").
		Set(TagDestAddrSubUnit, []byte{0x01})

	b, err := o.MarshalBinary()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	got := NewOptions()
	if err := got.UnmarshalBinary(b); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if got.ScInterfaceVersion() != 0x50 {
		t.Errorf("ScInterfaceVersion() = %#x, want 0x50", got.ScInterfaceVersion())
	}
	if got.ReceiptedMessageID() != "abc123" {
		t.Errorf("ReceiptedMessageID() = %q, want %q", got.ReceiptedMessageID(), "abc123")
	}
	if v, ok := got.Get(TagDestAddrSubUnit); !ok || !bytes.Equal(v, []byte{0x01}) {
		t.Errorf("Get(TagDestAddrSubUnit) = %X, %v", v, ok)
	}
}

func TestOptionsUnrecognizedPreserved(t *testing.T) {
	o := NewOptions().Set(0x9999, []byte{0xAA, 0xBB})
	unrec := o.Unrecognized()
	if len(unrec) != 1 {
		t.Fatalf("Unrecognized() returned %d entries, want 1", len(unrec))
	}
	if unrec[0].Tag != 0x9999 || !bytes.Equal(unrec[0].Value.Bytes(), []byte{0xAA, 0xBB}) {
		t.Errorf("Unrecognized()[0] = %+v", unrec[0])
	}

	b, err := o.MarshalBinary()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	want := []byte{0x99, 0x99, 0x00, 0x02, 0xAA, 0xBB}
	if !bytes.Equal(b, want) {
		t.Errorf("MarshalBinary() = %X, want %X", b, want)
	}
}

func TestOptionsRecognizedTagNotInUnrecognized(t *testing.T) {
	o := NewOptions().SetMessageState(2)
	if len(o.Unrecognized()) != 0 {
		t.Errorf("Unrecognized() = %+v, want empty for a recognized tag", o.Unrecognized())
	}
}

func TestOptionsUnmarshalRejectsTruncatedTLV(t *testing.T) {
	// tag+length header claims a 4-byte value but only 2 remain.
	buf := []byte{0x02, 0x10, 0x00, 0x04, 0xAA, 0xBB}
	o := NewOptions()
	if err := o.UnmarshalBinary(buf); err == nil {
		t.Error("expected error decoding a tlv whose length overruns the buffer")
	}
}

func TestOptionsUnmarshalRejectsShortTrailer(t *testing.T) {
	// 3 trailing bytes is not enough for another tag+length pair.
	buf := []byte{0x02, 0x10, 0x00, 0x00, 0xAA, 0xBB, 0xCC}
	o := NewOptions()
	if err := o.UnmarshalBinary(buf); err == nil {
		t.Error("expected error decoding a trailing partial tlv header")
	}
}

func TestOptionsUnmarshalAllowsZeroLengthValue(t *testing.T) {
	buf := []byte{0x02, 0x10, 0x00, 0x00}
	o := NewOptions()
	if err := o.UnmarshalBinary(buf); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	v, ok := o.Get(TagScInterfaceVersion)
	if !ok || len(v) != 0 {
		t.Errorf("Get(TagScInterfaceVersion) = %X, %v", v, ok)
	}
}
