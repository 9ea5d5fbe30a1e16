package pdu

import "encoding/binary"

// PutUint8 writes v into dst[0] and returns 1, the number of bytes written.
func PutUint8(dst []byte, v uint8) int {
	dst[0] = v
	return 1
}

// Uint8 reads a single byte from src. It fails with ErrUnexpectedEOF if src
// is empty.
func Uint8(src []byte) (uint8, int, error) {
	if len(src) < 1 {
		return 0, 0, ErrUnexpectedEOF
	}
	return src[0], 1, nil
}

// PutUint16 writes v big-endian into dst[0:2] and returns 2.
func PutUint16(dst []byte, v uint16) int {
	binary.BigEndian.PutUint16(dst, v)
	return 2
}

// Uint16 reads a big-endian uint16 from src.
func Uint16(src []byte) (uint16, int, error) {
	if len(src) < 2 {
		return 0, 0, ErrUnexpectedEOF
	}
	return binary.BigEndian.Uint16(src), 2, nil
}

// PutUint32 writes v big-endian into dst[0:4] and returns 4.
func PutUint32(dst []byte, v uint32) int {
	binary.BigEndian.PutUint32(dst, v)
	return 4
}

// Uint32 reads a big-endian uint32 from src.
func Uint32(src []byte) (uint32, int, error) {
	if len(src) < 4 {
		return 0, 0, ErrUnexpectedEOF
	}
	return binary.BigEndian.Uint32(src), 4, nil
}
