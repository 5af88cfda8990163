package parser

import (
	"bytes"
	"math"

	"github.com/nullab-io/nbt/internal/bufcursor"
	"github.com/nullab-io/nbt/internal/mutf8"
	"github.com/nullab-io/nbt/internal/wire"
)

// TagID is re-exported so callers of this package never need to import
// internal/wire directly.
type TagID = wire.TagID

// Value is a node of the zero-copy tree the parser produces: containers
// hold their children directly (built depth-first during the single
// recursive descent pass), and primitive/array/string leaves hold a raw
// sub-slice of the original buffer rather than a decoded value. Decoding
// happens in the As* accessors, on demand.
type Value[E bufcursor.Endian] struct {
	tag      TagID
	payload  []byte // primitives, string bytes, and array element bytes
	compound []Entry[E]
	list     *List[E]
}

// Entry is one (key, value) pair of a compound, in source order.
type Entry[E bufcursor.Endian] struct {
	Key   []byte
	Value Value[E]
}

// List is a homogeneous, length-declared sequence. Values is nil for an
// empty list; Elem keeps the element tag the source declared, which by the
// wire format's convention is usually, but not necessarily, TagEnd.
type List[E bufcursor.Endian] struct {
	Elem   TagID
	Values []Value[E]
}

// NewPrimitive builds a leaf node directly from a payload slice; the parser
// uses it for every scalar, string, and array value once the slice is
// bounds-checked.
func NewPrimitive[E bufcursor.Endian](tag TagID, payload []byte) Value[E] {
	return Value[E]{tag: tag, payload: payload}
}

// NewCompound builds a compound node from already-parsed entries.
func NewCompound[E bufcursor.Endian](entries []Entry[E]) Value[E] {
	return Value[E]{tag: wire.TagCompound, compound: entries}
}

// NewList builds a list node from an already-parsed element slice.
func NewList[E bufcursor.Endian](elem TagID, values []Value[E]) Value[E] {
	return Value[E]{tag: wire.TagList, list: &List[E]{Elem: elem, Values: values}}
}

// Kind reports the tag of this value.
func (v Value[E]) Kind() TagID { return v.tag }

// Payload exposes the raw, still-encoded bytes backing a primitive,
// string, or array value. It is nil for compounds and lists.
func (v Value[E]) Payload() []byte { return v.payload }

func (v Value[E]) AsByte() (int8, bool) {
	if v.tag != wire.TagByte {
		return 0, false
	}
	return int8(v.payload[0]), true
}

func (v Value[E]) AsShort() (int16, bool) {
	if v.tag != wire.TagShort {
		return 0, false
	}
	var e E
	return int16(e.Uint16(v.payload)), true
}

func (v Value[E]) AsInt() (int32, bool) {
	if v.tag != wire.TagInt {
		return 0, false
	}
	return bufcursor.DecodeI32At[E](v.payload, 0), true
}

func (v Value[E]) AsLong() (int64, bool) {
	if v.tag != wire.TagLong {
		return 0, false
	}
	return bufcursor.DecodeI64At[E](v.payload, 0), true
}

func (v Value[E]) AsFloat() (float32, bool) {
	if v.tag != wire.TagFloat {
		return 0, false
	}
	var e E
	return math.Float32frombits(e.Uint32(v.payload)), true
}

func (v Value[E]) AsDouble() (float64, bool) {
	if v.tag != wire.TagDouble {
		return 0, false
	}
	var e E
	return math.Float64frombits(e.Uint64(v.payload)), true
}

// AsStringBytes returns the raw MUTF-8 bytes of a string value. This is
// the canonical zero-copy form; call DecodeString for Unicode text.
func (v Value[E]) AsStringBytes() ([]byte, bool) {
	if v.tag != wire.TagString {
		return nil, false
	}
	return v.payload, true
}

// DecodeString converts a string value's raw bytes to Unicode text.
func (v Value[E]) DecodeString() (string, error) {
	if v.tag != wire.TagString {
		return "", &Error{Kind: KindInvalidTag, Offset: -1}
	}
	return mutf8.Decode(v.payload)
}

func (v Value[E]) AsCompound() (Compound[E], bool) {
	if v.tag != wire.TagCompound {
		return Compound[E]{}, false
	}
	return Compound[E]{entries: v.compound}, true
}

func (v Value[E]) AsList() (List[E], bool) {
	if v.tag != wire.TagList {
		return List[E]{}, false
	}
	if v.list == nil {
		return List[E]{Elem: wire.TagEnd}, true
	}
	return *v.list, true
}

func (v Value[E]) AsByteArray() (ByteArray, bool) {
	if v.tag != wire.TagByteArray {
		return ByteArray{}, false
	}
	return ByteArray{raw: v.payload}, true
}

func (v Value[E]) AsIntArray() (IntArray[E], bool) {
	if v.tag != wire.TagIntArray {
		return IntArray[E]{}, false
	}
	return IntArray[E]{raw: v.payload}, true
}

func (v Value[E]) AsLongArray() (LongArray[E], bool) {
	if v.tag != wire.TagLongArray {
		return LongArray[E]{}, false
	}
	return LongArray[E]{raw: v.payload}, true
}

// Compound is a read-only view over a parsed compound's children, in
// source order.
type Compound[E bufcursor.Endian] struct {
	entries []Entry[E]
}

func (c Compound[E]) Len() int { return len(c.entries) }

// Get returns the first entry whose key equals key, per the duplicate-key
// policy: first occurrence wins.
func (c Compound[E]) Get(key []byte) (Value[E], bool) {
	for _, e := range c.entries {
		if bytes.Equal(e.Key, key) {
			return e.Value, true
		}
	}
	return Value[E]{}, false
}

func (c Compound[E]) Contains(key []byte) bool {
	_, ok := c.Get(key)
	return ok
}

// Entries exposes the full entry slice, including duplicates, in source
// order.
func (c Compound[E]) Entries() []Entry[E] { return c.entries }

func (l List[E]) Len() int { return len(l.Values) }

func (l List[E]) Get(i int) (Value[E], bool) {
	if i < 0 || i >= len(l.Values) {
		return Value[E]{}, false
	}
	return l.Values[i], true
}

// ByteArray is a zero-copy view over a TAG_Byte_Array payload. Elements
// are single signed bytes, so no byte-order conversion ever applies.
type ByteArray struct {
	raw []byte
}

func (a ByteArray) Len() int { return len(a.raw) }

func (a ByteArray) Get(i int) (int8, bool) {
	if i < 0 || i >= len(a.raw) {
		return 0, false
	}
	return int8(a.raw[i]), true
}

func (a ByteArray) Raw() []byte { return a.raw }

// IntArray is a zero-copy view over a TAG_Int_Array payload, decoding
// 4-byte elements in byte order E on demand.
type IntArray[E bufcursor.Endian] struct {
	raw []byte
}

func (a IntArray[E]) Len() int { return len(a.raw) / 4 }

func (a IntArray[E]) Get(i int) (int32, bool) {
	if i < 0 || i >= a.Len() {
		return 0, false
	}
	return bufcursor.DecodeI32At[E](a.raw, i*4), true
}

func (a IntArray[E]) Raw() []byte { return a.raw }

// LongArray is a zero-copy view over a TAG_Long_Array payload, decoding
// 8-byte elements in byte order E on demand.
type LongArray[E bufcursor.Endian] struct {
	raw []byte
}

func (a LongArray[E]) Len() int { return len(a.raw) / 8 }

func (a LongArray[E]) Get(i int) (int64, bool) {
	if i < 0 || i >= a.Len() {
		return 0, false
	}
	return bufcursor.DecodeI64At[E](a.raw, i*8), true
}

func (a LongArray[E]) Raw() []byte { return a.raw }
