package nbt

import (
	"github.com/nullab-io/nbt/internal/bufcursor"
	"github.com/nullab-io/nbt/internal/parser"
)

// ReadonlyByteArray is a zero-copy view over a TAG_Byte_Array payload.
// Elements are single signed bytes, so no byte-order conversion applies.
type ReadonlyByteArray struct {
	inner parser.ByteArray
}

func (a ReadonlyByteArray) Len() int               { return a.inner.Len() }
func (a ReadonlyByteArray) Get(i int) (int8, bool)  { return a.inner.Get(i) }
func (a ReadonlyByteArray) Raw() []byte             { return a.inner.Raw() }

// ReadonlyIntArray is a zero-copy view over a TAG_Int_Array payload,
// decoding 4-byte elements in byte order E on demand.
type ReadonlyIntArray[E bufcursor.Endian] struct {
	inner parser.IntArray[E]
}

func (a ReadonlyIntArray[E]) Len() int                { return a.inner.Len() }
func (a ReadonlyIntArray[E]) Get(i int) (int32, bool) { return a.inner.Get(i) }
func (a ReadonlyIntArray[E]) Raw() []byte             { return a.inner.Raw() }

// ReadonlyLongArray is a zero-copy view over a TAG_Long_Array payload,
// decoding 8-byte elements in byte order E on demand.
type ReadonlyLongArray[E bufcursor.Endian] struct {
	inner parser.LongArray[E]
}

func (a ReadonlyLongArray[E]) Len() int                { return a.inner.Len() }
func (a ReadonlyLongArray[E]) Get(i int) (int64, bool) { return a.inner.Get(i) }
func (a ReadonlyLongArray[E]) Raw() []byte             { return a.inner.Raw() }

// OwnedByteArray is a mutable TAG_Byte_Array. It carries no endianness
// parameter since its elements are single bytes.
type OwnedByteArray []int8

func (OwnedByteArray) Kind() TagID { return TagByteArray }

// OwnedIntArray and OwnedLongArray store their elements as raw bytes
// already encoded in byte order E rather than as decoded int32/int64
// slices — per the owned builder's design (scalars are decoded to
// host-native Go values, but array payloads stay in destination byte
// order so a write-back never needs to re-encode them). E is fixed at
// construction by ToOwned/NewOwnedIntArray and does not change afterward.
type OwnedIntArray[E bufcursor.Endian] struct {
	raw []byte
}

// NewOwnedIntArray encodes values into byte order E and wraps the result.
func NewOwnedIntArray[E bufcursor.Endian](values []int32) *OwnedIntArray[E] {
	raw := make([]byte, 0, len(values)*4)
	for _, v := range values {
		raw = bufcursor.EncodeI32[E](raw, v)
	}
	return &OwnedIntArray[E]{raw: raw}
}

func (a *OwnedIntArray[E]) Kind() TagID { return TagIntArray }
func (a *OwnedIntArray[E]) Len() int    { return len(a.raw) / 4 }

func (a *OwnedIntArray[E]) Get(i int) (int32, bool) {
	if i < 0 || i >= a.Len() {
		return 0, false
	}
	return bufcursor.DecodeI32At[E](a.raw, i*4), true
}

// Set overwrites the element at i in place, re-encoding in byte order E.
func (a *OwnedIntArray[E]) Set(i int, v int32) bool {
	if i < 0 || i >= a.Len() {
		return false
	}
	var e E
	e.PutUint32(a.raw[i*4:], uint32(v))
	return true
}

// Raw exposes the array's wire-encoded bytes directly, letting the writer
// bulk-copy them when the target endianness matches E.
func (a *OwnedIntArray[E]) Raw() []byte { return a.raw }

// OwnedLongArray is OwnedIntArray's 8-byte-element counterpart.
type OwnedLongArray[E bufcursor.Endian] struct {
	raw []byte
}

func NewOwnedLongArray[E bufcursor.Endian](values []int64) *OwnedLongArray[E] {
	raw := make([]byte, 0, len(values)*8)
	for _, v := range values {
		raw = bufcursor.EncodeI64[E](raw, v)
	}
	return &OwnedLongArray[E]{raw: raw}
}

func (a *OwnedLongArray[E]) Kind() TagID { return TagLongArray }
func (a *OwnedLongArray[E]) Len() int    { return len(a.raw) / 8 }

func (a *OwnedLongArray[E]) Get(i int) (int64, bool) {
	if i < 0 || i >= a.Len() {
		return 0, false
	}
	return bufcursor.DecodeI64At[E](a.raw, i*8), true
}

func (a *OwnedLongArray[E]) Set(i int, v int64) bool {
	if i < 0 || i >= a.Len() {
		return false
	}
	var e E
	e.PutUint64(a.raw[i*8:], uint64(v))
	return true
}

func (a *OwnedLongArray[E]) Raw() []byte { return a.raw }
