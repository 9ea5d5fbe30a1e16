package pdu

// String family types backing SMPP's four size-bounded byte containers.
// Bounds are ordinary constructor/decode arguments rather than type
// parameters: Go has no const generics, and each PDU field already names
// its own bound as an integer literal at the call site (mirroring the
// donor's per-field ReadCString(n) calls).

// COctetString is an ASCII-only, NUL-terminated byte string whose length
// (including the terminator) is between min and max inclusive.
type COctetString struct {
	b []byte
}

// NewCOctetString validates a fully-formed value (e.g. from a builder,
// where the caller supplies the text without the terminator) and returns
// the wire-ready, NUL-terminated value.
func NewCOctetString(field, text string, min, max int) (COctetString, error) {
	b := make([]byte, 0, len(text)+1)
	b = append(b, text...)
	b = append(b, 0)
	if len(b) < min {
		return COctetString{}, boundedFieldErr(field, ErrTooFewBytes, len(b), min)
	}
	if len(b) > max {
		return COctetString{}, boundedFieldErr(field, ErrTooManyBytes, len(b), max)
	}
	for i, c := range b[:len(b)-1] {
		if c == 0 {
			return COctetString{}, boundedFieldErr(field, ErrNullByteFound, i, max)
		}
		if c > 0x7F {
			return COctetString{}, boundedFieldErr(field, ErrNotASCII, i, max)
		}
	}
	return COctetString{b: b}, nil
}

// DecodeCOctetString scans up to max bytes of src for a NUL terminator.
func DecodeCOctetString(field string, src []byte, min, max int) (COctetString, int, error) {
	if len(src) < min {
		return COctetString{}, 0, boundedFieldErr(field, ErrTooFewBytes, len(src), min)
	}
	scan := src
	if len(scan) > max {
		scan = scan[:max]
	}
	idx := -1
	for i, c := range scan {
		if c == 0 {
			idx = i
			break
		}
	}
	if idx == -1 {
		return COctetString{}, 0, boundedFieldErr(field, ErrNotNullTerminated, len(scan), max)
	}
	consumed := idx + 1
	if consumed < min {
		return COctetString{}, 0, boundedFieldErr(field, ErrTooFewBytes, consumed, min)
	}
	for _, c := range src[:idx] {
		if c > 0x7F {
			return COctetString{}, 0, boundedFieldErr(field, ErrNotASCII, idx, max)
		}
	}
	out := make([]byte, consumed)
	copy(out, src[:consumed])
	return COctetString{b: out}, consumed, nil
}

// String returns the text without the NUL terminator.
func (c COctetString) String() string {
	if len(c.b) == 0 {
		return ""
	}
	return string(c.b[:len(c.b)-1])
}

// Bytes returns the wire representation, including the terminator.
func (c COctetString) Bytes() []byte { return c.b }

// Len reports the wire length including the terminator.
func (c COctetString) Len() int { return len(c.b) }

// Encode writes the backing bytes verbatim into dst and returns the count.
func (c COctetString) Encode(dst []byte) int { return copy(dst, c.b) }

// EmptyOrFullCOctetString is a COctetString restricted to exactly 1 byte
// (empty, just the NUL) or exactly n bytes.
type EmptyOrFullCOctetString struct {
	b []byte
	n int
}

// NewEmptyOrFullCOctetString validates text against the exact-empty-or-full rule.
func NewEmptyOrFullCOctetString(field, text string, n int) (EmptyOrFullCOctetString, error) {
	if text == "" {
		return EmptyOrFullCOctetString{b: []byte{0}, n: n}, nil
	}
	b := make([]byte, 0, len(text)+1)
	b = append(b, text...)
	b = append(b, 0)
	if len(b) != n {
		return EmptyOrFullCOctetString{}, boundedFieldErr(field, ErrTooFewBytes, len(b), n)
	}
	for i, c := range b[:len(b)-1] {
		if c == 0 {
			return EmptyOrFullCOctetString{}, boundedFieldErr(field, ErrNullByteFound, i, n)
		}
		if c > 0x7F {
			return EmptyOrFullCOctetString{}, boundedFieldErr(field, ErrNotASCII, i, n)
		}
	}
	return EmptyOrFullCOctetString{b: b, n: n}, nil
}

// DecodeEmptyOrFullCOctetString scans for the NUL terminator; it must sit
// at offset 0 (empty) or offset n-1 (full).
func DecodeEmptyOrFullCOctetString(field string, src []byte, n int) (EmptyOrFullCOctetString, int, error) {
	if len(src) < 1 {
		return EmptyOrFullCOctetString{}, 0, boundedFieldErr(field, ErrTooFewBytes, len(src), 1)
	}
	if src[0] == 0 {
		return EmptyOrFullCOctetString{b: []byte{0}, n: n}, 1, nil
	}
	if len(src) < n {
		return EmptyOrFullCOctetString{}, 0, boundedFieldErr(field, ErrTooFewBytes, len(src), n)
	}
	if src[n-1] != 0 {
		return EmptyOrFullCOctetString{}, 0, boundedFieldErr(field, ErrNotNullTerminated, n, n)
	}
	for i, c := range src[:n-1] {
		if c == 0 {
			return EmptyOrFullCOctetString{}, 0, boundedFieldErr(field, ErrNullByteFound, i, n)
		}
		if c > 0x7F {
			return EmptyOrFullCOctetString{}, 0, boundedFieldErr(field, ErrNotASCII, i, n)
		}
	}
	out := make([]byte, n)
	copy(out, src[:n])
	return EmptyOrFullCOctetString{b: out, n: n}, n, nil
}

// String returns the text without the NUL terminator.
func (c EmptyOrFullCOctetString) String() string {
	if len(c.b) <= 1 {
		return ""
	}
	return string(c.b[:len(c.b)-1])
}

// Bytes returns the wire representation, including the terminator.
func (c EmptyOrFullCOctetString) Bytes() []byte { return c.b }

// Len reports the wire length.
func (c EmptyOrFullCOctetString) Len() int { return len(c.b) }

// Encode writes the backing bytes verbatim into dst and returns the count.
func (c EmptyOrFullCOctetString) Encode(dst []byte) int { return copy(dst, c.b) }

// OctetString is an opaque byte blob whose length is dictated by an
// external field (a preceding numeric length, or a TLV length) rather than
// a terminator, bounded by min/max.
type OctetString struct {
	b []byte
}

// NewOctetString validates b against [min,max] and copies it.
func NewOctetString(field string, b []byte, min, max int) (OctetString, error) {
	if len(b) < min {
		return OctetString{}, boundedFieldErr(field, ErrTooFewBytes, len(b), min)
	}
	if len(b) > max {
		return OctetString{}, boundedFieldErr(field, ErrTooManyBytes, len(b), max)
	}
	out := make([]byte, len(b))
	copy(out, b)
	return OctetString{b: out}, nil
}

// DecodeOctetString copies exactly length bytes from src, subject to [min,max].
func DecodeOctetString(field string, src []byte, length, min, max int) (OctetString, int, error) {
	if length < min {
		return OctetString{}, 0, boundedFieldErr(field, ErrTooFewBytes, length, min)
	}
	if length > max {
		return OctetString{}, 0, boundedFieldErr(field, ErrTooManyBytes, length, max)
	}
	if len(src) < length {
		return OctetString{}, 0, boundedFieldErr(field, ErrUnexpectedEOF, len(src), length)
	}
	out := make([]byte, length)
	copy(out, src[:length])
	return OctetString{b: out}, length, nil
}

// Bytes returns the raw value.
func (o OctetString) Bytes() []byte { return o.b }

// Len reports the byte length.
func (o OctetString) Len() int { return len(o.b) }

// Encode writes the backing bytes verbatim into dst and returns the count.
func (o OctetString) Encode(dst []byte) int { return copy(dst, o.b) }

// AnyOctetString is an opaque byte blob of arbitrary length, used for TLV
// values whose shape this module has no dedicated decoder for.
type AnyOctetString struct {
	b []byte
}

// NewAnyOctetString copies b verbatim.
func NewAnyOctetString(b []byte) AnyOctetString {
	out := make([]byte, len(b))
	copy(out, b)
	return AnyOctetString{b: out}
}

// DecodeAnyOctetString copies exactly length bytes from src.
func DecodeAnyOctetString(field string, src []byte, length int) (AnyOctetString, int, error) {
	if len(src) < length {
		return AnyOctetString{}, 0, boundedFieldErr(field, ErrUnexpectedEOF, len(src), length)
	}
	out := make([]byte, length)
	copy(out, src[:length])
	return AnyOctetString{b: out}, length, nil
}

// Bytes returns the raw value.
func (a AnyOctetString) Bytes() []byte { return a.b }

// Len reports the byte length.
func (a AnyOctetString) Len() int { return len(a.b) }

// Encode writes the backing bytes verbatim into dst and returns the count.
func (a AnyOctetString) Encode(dst []byte) int { return copy(dst, a.b) }
