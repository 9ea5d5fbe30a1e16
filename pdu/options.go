package pdu

import (
	"encoding/binary"
	"fmt"
)

// recognizedTags lists the tags this module exposes named accessors for.
// Everything else decoded into an Options bag is still retained (by Get and
// by Unrecognized) — never dropped — satisfying the "Other{tag,value}"
// preservation requirement without a second wrapper type per tag.
var recognizedTags = map[TagID]bool{
	TagUserMessageReference: true,
	TagSarMsgRefNum:         true,
	TagSarTotalSegments:     true,
	TagSarSegmentSeqnum:     true,
	TagScInterfaceVersion:   true,
	TagMessagePayload:       true,
	TagMessageState:         true,
	TagReceiptedMessageID:   true,
}

// Options is the TLV parameter bag attached to a PDU body: tag -> raw
// value bytes, with named accessors for the commonly used tags and a
// fallback path for everything else.
type Options struct {
	fields map[TagID][]byte
	// order preserves insertion/decode order so re-encoding an
	// unrecognized TLV produces bit-identical bytes to the input (§8
	// "Unknown TLV preserved").
	order []TagID
}

// NewOptions creates an empty Options bag.
func NewOptions() *Options {
	return &Options{fields: make(map[TagID][]byte)}
}

func (o *Options) set(tag TagID, val []byte) {
	if _, exists := o.fields[tag]; !exists {
		o.order = append(o.order, tag)
	}
	o.fields[tag] = val
}

// Set assigns a raw TLV value.
func (o *Options) Set(tag TagID, val []byte) *Options {
	o.set(tag, val)
	return o
}

// SetSingle assigns a one-byte TLV value.
func (o *Options) SetSingle(tag TagID, val int) *Options {
	o.set(tag, []byte{byte(val)})
	return o
}

// SetDouble assigns a two-byte big-endian TLV value.
func (o *Options) SetDouble(tag TagID, val int) *Options {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, uint16(val))
	o.set(tag, b)
	return o
}

// SetString assigns a raw (non-terminated) string TLV value.
func (o *Options) SetString(tag TagID, val string) *Options {
	o.set(tag, []byte(val))
	return o
}

// SetCString assigns a NUL-terminated string TLV value.
func (o *Options) SetCString(tag TagID, val string) *Options {
	o.set(tag, append([]byte(val), 0))
	return o
}

// Get returns the raw value for tag, if present.
func (o *Options) Get(tag TagID) ([]byte, bool) {
	val, ok := o.fields[tag]
	return val, ok
}

// GetSingle returns the tag's value as a one-byte integer.
func (o *Options) GetSingle(tag TagID) (int, bool) {
	val, ok := o.fields[tag]
	if !ok || len(val) == 0 {
		return 0, false
	}
	return int(val[0]), true
}

// GetDouble returns the tag's value as a two-byte big-endian integer.
func (o *Options) GetDouble(tag TagID) (int, bool) {
	b, ok := o.fields[tag]
	if !ok || len(b) < 2 {
		return 0, false
	}
	return int(binary.BigEndian.Uint16(b)), true
}

// GetString returns the tag's value as a raw string.
func (o *Options) GetString(tag TagID) (string, bool) {
	b, ok := o.fields[tag]
	if !ok {
		return "", false
	}
	return string(b), true
}

// GetCString returns the tag's value as a string with its NUL terminator
// stripped.
func (o *Options) GetCString(tag TagID) (string, bool) {
	b, ok := o.fields[tag]
	if !ok || len(b) == 0 {
		return "", false
	}
	return string(b[:len(b)-1]), true
}

// Unrecognized returns the {tag, value} pairs this module has no named
// accessor for, in their original decode order — the escape hatch
// required for tags this module doesn't know about (§4.4).
func (o *Options) Unrecognized() []struct {
	Tag   TagID
	Value AnyOctetString
} {
	var out []struct {
		Tag   TagID
		Value AnyOctetString
	}
	for _, tag := range o.order {
		if recognizedTags[tag] {
			continue
		}
		out = append(out, struct {
			Tag   TagID
			Value AnyOctetString
		}{Tag: tag, Value: NewAnyOctetString(o.fields[tag])})
	}
	return out
}

// UserMessageReference returns this option, or 0 if absent.
func (o *Options) UserMessageReference() int {
	val, _ := o.GetDouble(TagUserMessageReference)
	return val
}

// SarMsgRefNum returns this option, or 0 if absent.
func (o *Options) SarMsgRefNum() int {
	val, _ := o.GetDouble(TagSarMsgRefNum)
	return val
}

// SarTotalSegments returns this option, or 0 if absent.
func (o *Options) SarTotalSegments() int {
	val, _ := o.GetSingle(TagSarTotalSegments)
	return val
}

// SarSegmentSeqnum returns this option, or 0 if absent.
func (o *Options) SarSegmentSeqnum() int {
	val, _ := o.GetSingle(TagSarSegmentSeqnum)
	return val
}

// ScInterfaceVersion returns this option, or 0 if absent.
func (o *Options) ScInterfaceVersion() int {
	val, _ := o.GetSingle(TagScInterfaceVersion)
	return val
}

// MessagePayload returns this option, or "" if absent. It is independent
// of a sibling inline short_message field — neither implicitly shadows the
// other (DESIGN.md Open Question b).
func (o *Options) MessagePayload() string {
	val, _ := o.GetString(TagMessagePayload)
	return val
}

// MessageState returns this option, or 0 if absent.
func (o *Options) MessageState() int {
	val, _ := o.GetSingle(TagMessageState)
	return val
}

// ReceiptedMessageID returns this option, or "" if absent.
func (o *Options) ReceiptedMessageID() string {
	val, _ := o.GetCString(TagReceiptedMessageID)
	return val
}

// SetUserMessageReference sets this option.
func (o *Options) SetUserMessageReference(val int) *Options { return o.SetDouble(TagUserMessageReference, val) }

// SetSarMsgRefNum sets this option.
func (o *Options) SetSarMsgRefNum(val int) *Options { return o.SetDouble(TagSarMsgRefNum, val) }

// SetSarTotalSegments sets this option.
func (o *Options) SetSarTotalSegments(val int) *Options { return o.SetSingle(TagSarTotalSegments, val) }

// SetSarSegmentSeqnum sets this option.
func (o *Options) SetSarSegmentSeqnum(val int) *Options { return o.SetSingle(TagSarSegmentSeqnum, val) }

// SetScInterfaceVersion sets this option.
func (o *Options) SetScInterfaceVersion(val int) *Options {
	return o.SetSingle(TagScInterfaceVersion, val)
}

// SetMessagePayload sets this option.
func (o *Options) SetMessagePayload(val string) *Options { return o.SetString(TagMessagePayload, val) }

// SetMessageState sets this option.
func (o *Options) SetMessageState(val int) *Options { return o.SetSingle(TagMessageState, val) }

// SetReceiptedMessageID sets this option.
func (o *Options) SetReceiptedMessageID(val string) *Options {
	return o.SetCString(TagReceiptedMessageID, val)
}

// MarshalBinary implements encoding.BinaryMarshaler, writing every TLV in
// its original decode (or Set-call) order.
func (o *Options) MarshalBinary() ([]byte, error) {
	var out []byte
	for _, tag := range o.order {
		val := o.fields[tag]
		tlv := make([]byte, 4+len(val))
		binary.BigEndian.PutUint16(tlv[:2], uint16(tag))
		binary.BigEndian.PutUint16(tlv[2:4], uint16(len(val)))
		copy(tlv[4:], val)
		out = append(out, tlv...)
	}
	return out, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler, decoding a
// sequence of TLVs until buf is exhausted. A TLV whose declared length
// would read past the end of buf is rejected rather than silently
// truncated or looped on (Open Question a: reject zero/invalid
// consumption rather than accept it).
func (o *Options) UnmarshalBinary(buf []byte) error {
	if o.fields == nil {
		o.fields = make(map[TagID][]byte)
	}
	n := 0
	for n < len(buf) {
		if len(buf)-n < 4 {
			return fmt.Errorf("pdu: trailing %d byte(s) too short for a tlv tag+length", len(buf)-n)
		}
		tag := TagID(binary.BigEndian.Uint16(buf[n : n+2]))
		l := int(binary.BigEndian.Uint16(buf[n+2 : n+4]))
		if n+4+l > len(buf) {
			return fmt.Errorf("pdu: tlv 0x%04X declares length %d past end of body", uint16(tag), l)
		}
		val := make([]byte, l)
		copy(val, buf[n+4:n+4+l])
		o.set(tag, val)
		n += 4 + l
	}
	return nil
}
