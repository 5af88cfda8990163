package nbt

import (
	"github.com/nullab-io/nbt/internal/bufcursor"
	"github.com/nullab-io/nbt/internal/parser"
)

// ReadonlyValue is a handle into a zero-copy parsed tree. Scalar and array
// payloads are views into the buffer a Document was parsed from; decoding
// (including MUTF-8 string decoding and array byte-order conversion)
// happens on demand in the As* accessors, never up front.
type ReadonlyValue[E bufcursor.Endian] struct {
	inner parser.Value[E]
}

func wrapValue[E bufcursor.Endian](v parser.Value[E]) ReadonlyValue[E] {
	return ReadonlyValue[E]{inner: v}
}

// Kind reports the tag of this value.
func (v ReadonlyValue[E]) Kind() TagID { return v.inner.Kind() }

// Payload exposes the raw, still-encoded bytes backing a scalar, string, or
// array value. It is nil for compounds and lists.
func (v ReadonlyValue[E]) Payload() []byte { return v.inner.Payload() }

func (v ReadonlyValue[E]) AsByte() (int8, bool)     { return v.inner.AsByte() }
func (v ReadonlyValue[E]) AsShort() (int16, bool)   { return v.inner.AsShort() }
func (v ReadonlyValue[E]) AsInt() (int32, bool)     { return v.inner.AsInt() }
func (v ReadonlyValue[E]) AsLong() (int64, bool)    { return v.inner.AsLong() }
func (v ReadonlyValue[E]) AsFloat() (float32, bool) { return v.inner.AsFloat() }
func (v ReadonlyValue[E]) AsDouble() (float64, bool) {
	return v.inner.AsDouble()
}

// AsStringBytes returns the raw MUTF-8 bytes of a string value without
// decoding them; call DecodeString to get Unicode text.
func (v ReadonlyValue[E]) AsStringBytes() ([]byte, bool) { return v.inner.AsStringBytes() }

// DecodeString decodes a string value's raw MUTF-8 bytes to Unicode text,
// returning ErrStringNotMutf8 (wrapped) if the bytes are malformed.
func (v ReadonlyValue[E]) DecodeString() (string, error) {
	s, err := v.inner.DecodeString()
	if err != nil {
		return "", newErr(KindStringNotMutf8, -1, "", err)
	}
	return s, nil
}

func (v ReadonlyValue[E]) AsCompound() (ReadonlyCompound[E], bool) {
	c, ok := v.inner.AsCompound()
	return ReadonlyCompound[E]{inner: c}, ok
}

func (v ReadonlyValue[E]) AsList() (ReadonlyList[E], bool) {
	l, ok := v.inner.AsList()
	return ReadonlyList[E]{inner: l}, ok
}

func (v ReadonlyValue[E]) AsByteArray() (ReadonlyByteArray, bool) {
	a, ok := v.inner.AsByteArray()
	return ReadonlyByteArray{inner: a}, ok
}

func (v ReadonlyValue[E]) AsIntArray() (ReadonlyIntArray[E], bool) {
	a, ok := v.inner.AsIntArray()
	return ReadonlyIntArray[E]{inner: a}, ok
}

func (v ReadonlyValue[E]) AsLongArray() (ReadonlyLongArray[E], bool) {
	a, ok := v.inner.AsLongArray()
	return ReadonlyLongArray[E]{inner: a}, ok
}

// OwnedValue is satisfied by every concrete owned node: the scalar types
// below, OwnedByteArray, *OwnedIntArray[E], *OwnedLongArray[E], *OwnedList,
// and *OwnedCompound. Unlike ReadonlyValue there is no single generic
// wrapper type — Go has no sum types, so the tree is a plain interface
// with one concrete type per tag, matched with a type switch (see
// VisitOwned in visit.go) rather than Rust's enum match.
type OwnedValue interface {
	Kind() TagID
}

type OwnedByte int8

func (OwnedByte) Kind() TagID { return TagByte }

type OwnedShort int16

func (OwnedShort) Kind() TagID { return TagShort }

type OwnedInt int32

func (OwnedInt) Kind() TagID { return TagInt }

type OwnedLong int64

func (OwnedLong) Kind() TagID { return TagLong }

type OwnedFloat float32

func (OwnedFloat) Kind() TagID { return TagFloat }

type OwnedDouble float64

func (OwnedDouble) Kind() TagID { return TagDouble }

type OwnedString string

func (OwnedString) Kind() TagID { return TagString }
