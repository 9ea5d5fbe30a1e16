// Package frame implements the length-delimited SMPP command framing: a
// 4-byte big-endian command_length prefix followed by that many bytes of
// header + body. Reader decodes frame boundaries in two states — first the
// length prefix, then the rest of the command — without requiring the
// underlying reader to deliver a whole command in one read.
package frame

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/smppgo/smpp5c/pdu"
)

// DefaultMaxLength is the largest command_length this module will accept
// before rejecting a frame outright.
const DefaultMaxLength = pdu.MaxPDUSize

// DecodeError reports that a frame's length-prefixed bytes were read off
// the wire in full but the body inside them did not decode. The stream
// itself is still in sync at the next command_length prefix: callers may
// keep reading rather than tearing down the connection.
type DecodeError struct {
	Header pdu.Header
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("frame: decoding command_id %#x body: %s", uint32(e.Header.ID), e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Reader decodes a stream of length-delimited SMPP commands from an
// underlying io.Reader.
type Reader struct {
	br        *bufio.Reader
	maxLength int
}

// NewReader wraps r. maxLength <= 0 disables the upper bound check.
func NewReader(r io.Reader, maxLength int) *Reader {
	return &Reader{br: bufio.NewReader(r), maxLength: maxLength}
}

// ReadFrame blocks until one full command has been read, returning its
// decoded Header and the raw, still-undecoded body bytes.
func (r *Reader) ReadFrame() (pdu.Header, []byte, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r.br, lenBuf[:]); err != nil {
		return pdu.Header{}, nil, err
	}
	length := binary.BigEndian.Uint32(lenBuf[:])
	if length < 16 {
		return pdu.Header{}, nil, fmt.Errorf("frame: command_length %d below the 16-byte header minimum", length)
	}
	if r.maxLength > 0 && int(length) > r.maxLength {
		return pdu.Header{}, nil, fmt.Errorf("frame: command_length %d exceeds maximum %d", length, r.maxLength)
	}
	rest := make([]byte, length-4)
	if _, err := io.ReadFull(r.br, rest); err != nil {
		return pdu.Header{}, nil, fmt.Errorf("frame: short read on command body: %w", err)
	}
	var hdrBuf [16]byte
	copy(hdrBuf[0:4], lenBuf[:])
	copy(hdrBuf[4:16], rest[0:12])
	h, err := pdu.DecodeHeader(hdrBuf[:])
	if err != nil {
		return pdu.Header{}, nil, err
	}
	return h, rest[12:], nil
}

// ReadCommand reads one frame and decodes its body into a pdu.Body via
// pdu.NewBody, matching pdu.Decoder.Decode but with MaxLength enforcement.
func (r *Reader) ReadCommand() (pdu.Header, pdu.Body, error) {
	h, body, err := r.ReadFrame()
	if err != nil {
		return h, nil, err
	}
	b := pdu.NewBody(h.ID)
	if len(body) == 0 {
		return h, b, nil
	}
	if err := b.UnmarshalBinary(body); err != nil {
		return h, b, &DecodeError{Header: h, Err: err}
	}
	return h, b, nil
}

// Writer encodes SMPP commands onto an underlying io.Writer.
type Writer struct {
	w io.Writer
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteFrame writes the 4-byte length prefix, 12-byte header remainder and
// body bytes as a single command.
func (w *Writer) WriteFrame(h pdu.Header, body []byte) error {
	h.Length = uint32(16 + len(body))
	buf := make([]byte, h.Length)
	h.Encode(buf)
	copy(buf[16:], body)
	_, err := w.w.Write(buf)
	return err
}
