package nbt

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/nullab-io/nbt/internal/bufcursor"
	"github.com/nullab-io/nbt/internal/mutf8"
)

// Write encodes doc in byte order E to w, writing the root tag, name, and
// value depth-first. It validates each list's homogeneity as it walks
// (spec.md §4.6) and fails at the first mismatch found rather than
// partially writing a corrupt buffer.
func Write[E bufcursor.Endian](w io.Writer, doc *OwnedDocument, opts ...WriteOption) error {
	o := buildWriteOptions(opts...)
	name := o.RootName
	if name == "" {
		name = doc.RootName
	}
	var buf bytes.Buffer
	if err := writeNamedValue[E](&buf, name, doc.Root); err != nil {
		return err
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return newErr(KindIO, -1, "", err)
	}
	return nil
}

// ToBytes encodes doc in byte order E and returns the result directly.
func ToBytes[E bufcursor.Endian](doc *OwnedDocument, opts ...WriteOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write[E](&buf, doc, opts...); err != nil {
		return nil, err
	}
	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

// WriteReadonly encodes doc — a Readonly, zero-copy tree parsed in byte
// order SrcE — to w in destination byte order DstE, without ever
// materializing an OwnedDocument first. When DstE and SrcE are the same
// concrete type, writeReadonlyValue copies each leaf's already-encoded
// payload bytes straight into the output instead of decoding and
// re-encoding them; this is the write path's primary source of throughput
// for a tree that was never touched by ToOwned, the same shortcut the
// original Rust source's immutable::write module takes.
func WriteReadonly[DstE bufcursor.Endian, SrcE bufcursor.Endian](w io.Writer, doc *Document[SrcE], opts ...WriteOption) error {
	o := buildWriteOptions(opts...)
	var buf bytes.Buffer
	buf.WriteByte(byte(doc.Root.Kind()))

	var err error
	if o.RootName != "" {
		err = writeString[DstE](&buf, o.RootName)
	} else {
		err = writeStringBytes[DstE](&buf, doc.RootNameBytes)
	}
	if err != nil {
		return err
	}

	if err := writeReadonlyValue[DstE](&buf, doc.Root); err != nil {
		return err
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return newErr(KindIO, -1, "", err)
	}
	return nil
}

// ToBytesReadonly is WriteReadonly, returning the encoded bytes directly.
func ToBytesReadonly[DstE bufcursor.Endian, SrcE bufcursor.Endian](doc *Document[SrcE], opts ...WriteOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteReadonly[DstE](&buf, doc, opts...); err != nil {
		return nil, err
	}
	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

// checkListLen32 converts n — a Go int length — to the int32 the wire
// format actually stores, reporting ErrListLengthOverflow instead of
// silently wrapping when n exceeds INT32_MAX (spec.md §4.6, §7).
func checkListLen32(n int) (int32, error) {
	if n < 0 || int64(n) > math.MaxInt32 {
		return 0, ErrListLengthOverflow
	}
	return int32(n), nil
}

func writeNamedValue[E bufcursor.Endian](buf *bytes.Buffer, name string, v OwnedValue) error {
	buf.WriteByte(byte(v.Kind()))
	if err := writeString[E](buf, name); err != nil {
		return err
	}
	return writeValue[E](buf, v)
}

func writeString[E bufcursor.Endian](buf *bytes.Buffer, s string) error {
	encoded := mutf8.Encode(s)
	return writeStringBytes[E](buf, encoded)
}

// writeStringBytes writes an already-encoded MUTF-8 string body: a u16
// length prefix in byte order E, followed by the content bytes bulk-copied
// verbatim. MUTF-8 content bytes carry no multi-byte integers, so unlike a
// scalar payload they never need re-encoding regardless of E — only the
// length prefix is byte-order sensitive.
func writeStringBytes[E bufcursor.Endian](buf *bytes.Buffer, b []byte) error {
	if len(b) > 0xFFFF {
		return ErrStringTooLong
	}
	var e E
	buf.Write(e.AppendUint16(nil, uint16(len(b))))
	buf.Write(b)
	return nil
}

func writeValue[E bufcursor.Endian](buf *bytes.Buffer, v OwnedValue) error {
	switch t := v.(type) {
	case OwnedByte:
		buf.WriteByte(byte(t))
	case OwnedShort:
		buf.Write(bufcursor.EncodeI16[E](nil, int16(t)))
	case OwnedInt:
		buf.Write(bufcursor.EncodeI32[E](nil, int32(t)))
	case OwnedLong:
		buf.Write(bufcursor.EncodeI64[E](nil, int64(t)))
	case OwnedFloat:
		buf.Write(bufcursor.EncodeF32[E](nil, float32(t)))
	case OwnedDouble:
		buf.Write(bufcursor.EncodeF64[E](nil, float64(t)))
	case OwnedString:
		return writeString[E](buf, string(t))
	case OwnedByteArray:
		n, err := checkListLen32(len(t))
		if err != nil {
			return err
		}
		buf.Write(bufcursor.EncodeI32[E](nil, n))
		for _, b := range t {
			buf.WriteByte(byte(b))
		}
	case *OwnedIntArray[E]:
		// Storage byte order already matches the target: bulk-copy the
		// raw payload instead of decoding and re-encoding element by
		// element (spec.md §4.6's fast path for a matching endianness).
		n, err := checkListLen32(t.Len())
		if err != nil {
			return err
		}
		buf.Write(bufcursor.EncodeI32[E](nil, n))
		buf.Write(t.Raw())
	case *OwnedLongArray[E]:
		n, err := checkListLen32(t.Len())
		if err != nil {
			return err
		}
		buf.Write(bufcursor.EncodeI32[E](nil, n))
		buf.Write(t.Raw())
	case *OwnedList:
		return writeListBody[E](buf, t)
	case *OwnedCompound:
		return writeCompoundBody[E](buf, t)
	default:
		return writeForeignArray[E](buf, v)
	}
	return nil
}

// writeForeignArray handles *OwnedIntArray[D]/*OwnedLongArray[D] values
// built with a D other than the writer's own E: the fast bulk-copy path
// above only matches when D and E are the same concrete type, so any
// other array falls back to decoding each element through its Len/Get
// accessors and re-encoding in E.
func writeForeignArray[E bufcursor.Endian](buf *bytes.Buffer, v OwnedValue) error {
	if ia, ok := v.(intArrayLike); ok {
		count, err := checkListLen32(ia.Len())
		if err != nil {
			return err
		}
		buf.Write(bufcursor.EncodeI32[E](nil, count))
		for i := 0; i < ia.Len(); i++ {
			n, _ := ia.Get(i)
			buf.Write(bufcursor.EncodeI32[E](nil, n))
		}
		return nil
	}
	if la, ok := v.(longArrayLike); ok {
		count, err := checkListLen32(la.Len())
		if err != nil {
			return err
		}
		buf.Write(bufcursor.EncodeI32[E](nil, count))
		for i := 0; i < la.Len(); i++ {
			n, _ := la.Get(i)
			buf.Write(bufcursor.EncodeI64[E](nil, n))
		}
		return nil
	}
	return newErr(KindIO, -1, fmt.Sprintf("unwritable owned value of kind %s", v.Kind()), nil)
}

func writeListBody[E bufcursor.Endian](buf *bytes.Buffer, l *OwnedList) error {
	buf.WriteByte(byte(l.Elem))
	count, err := checkListLen32(l.Len())
	if err != nil {
		return err
	}
	buf.Write(bufcursor.EncodeI32[E](nil, count))
	for i := 0; i < l.Len(); i++ {
		v, _ := l.Get(i)
		if v.Kind() != l.Elem {
			return newErr(KindHeterogeneousList, -1,
				fmt.Sprintf("element %d has kind %s, want %s", i, v.Kind(), l.Elem), nil)
		}
		if err := writeValue[E](buf, v); err != nil {
			return err
		}
	}
	return nil
}

func writeCompoundBody[E bufcursor.Endian](buf *bytes.Buffer, c *OwnedCompound) error {
	for _, e := range c.Entries() {
		if err := writeNamedValue[E](buf, e.Key, e.Value); err != nil {
			return err
		}
	}
	buf.WriteByte(byte(TagEnd))
	return nil
}

// writeReadonlyValue is writeValue's counterpart for the Readonly/borrowed
// representation: instead of a Go type switch over concrete owned types,
// it dispatches on v.Kind() and reads through ReadonlyValue's As*
// accessors, bulk-copying v.Payload() for every leaf whose storage order
// SrcE equals the destination order DstE (bufcursor.SameEndian), and
// falling back to decode-then-re-encode only when the orders differ.
func writeReadonlyValue[DstE, SrcE bufcursor.Endian](buf *bytes.Buffer, v ReadonlyValue[SrcE]) error {
	switch v.Kind() {
	case TagByte:
		// A single byte carries no byte order at all.
		buf.Write(v.Payload())
	case TagShort:
		if bufcursor.SameEndian[DstE, SrcE]() {
			buf.Write(v.Payload())
		} else {
			n, _ := v.AsShort()
			buf.Write(bufcursor.EncodeI16[DstE](nil, n))
		}
	case TagInt:
		if bufcursor.SameEndian[DstE, SrcE]() {
			buf.Write(v.Payload())
		} else {
			n, _ := v.AsInt()
			buf.Write(bufcursor.EncodeI32[DstE](nil, n))
		}
	case TagLong:
		if bufcursor.SameEndian[DstE, SrcE]() {
			buf.Write(v.Payload())
		} else {
			n, _ := v.AsLong()
			buf.Write(bufcursor.EncodeI64[DstE](nil, n))
		}
	case TagFloat:
		if bufcursor.SameEndian[DstE, SrcE]() {
			buf.Write(v.Payload())
		} else {
			n, _ := v.AsFloat()
			buf.Write(bufcursor.EncodeF32[DstE](nil, n))
		}
	case TagDouble:
		if bufcursor.SameEndian[DstE, SrcE]() {
			buf.Write(v.Payload())
		} else {
			n, _ := v.AsDouble()
			buf.Write(bufcursor.EncodeF64[DstE](nil, n))
		}
	case TagString:
		b, _ := v.AsStringBytes()
		return writeStringBytes[DstE](buf, b)
	case TagByteArray:
		a, _ := v.AsByteArray()
		n, err := checkListLen32(a.Len())
		if err != nil {
			return err
		}
		buf.Write(bufcursor.EncodeI32[DstE](nil, n))
		buf.Write(a.Raw())
	case TagIntArray:
		a, _ := v.AsIntArray()
		n, err := checkListLen32(a.Len())
		if err != nil {
			return err
		}
		buf.Write(bufcursor.EncodeI32[DstE](nil, n))
		if bufcursor.SameEndian[DstE, SrcE]() {
			buf.Write(a.Raw())
		} else {
			for i := 0; i < a.Len(); i++ {
				elem, _ := a.Get(i)
				buf.Write(bufcursor.EncodeI32[DstE](nil, elem))
			}
		}
	case TagLongArray:
		a, _ := v.AsLongArray()
		n, err := checkListLen32(a.Len())
		if err != nil {
			return err
		}
		buf.Write(bufcursor.EncodeI32[DstE](nil, n))
		if bufcursor.SameEndian[DstE, SrcE]() {
			buf.Write(a.Raw())
		} else {
			for i := 0; i < a.Len(); i++ {
				elem, _ := a.Get(i)
				buf.Write(bufcursor.EncodeI64[DstE](nil, elem))
			}
		}
	case TagList:
		return writeReadonlyListBody[DstE](buf, v)
	case TagCompound:
		return writeReadonlyCompoundBody[DstE](buf, v)
	default:
		return newErr(KindIO, -1, fmt.Sprintf("unwritable readonly value of kind %s", v.Kind()), nil)
	}
	return nil
}

// writeReadonlyListBody writes a TAG_List body. Unlike writeListBody it
// never checks element homogeneity: the parser only ever produces a list
// whose elements all share the declared element tag, so a Readonly list
// is homogeneous by construction.
func writeReadonlyListBody[DstE, SrcE bufcursor.Endian](buf *bytes.Buffer, v ReadonlyValue[SrcE]) error {
	l, _ := v.AsList()
	buf.WriteByte(byte(l.Elem()))
	count, err := checkListLen32(l.Len())
	if err != nil {
		return err
	}
	buf.Write(bufcursor.EncodeI32[DstE](nil, count))
	for i := 0; i < l.Len(); i++ {
		elem, _ := l.Get(i)
		if err := writeReadonlyValue[DstE](buf, elem); err != nil {
			return err
		}
	}
	return nil
}

func writeReadonlyCompoundBody[DstE, SrcE bufcursor.Endian](buf *bytes.Buffer, v ReadonlyValue[SrcE]) error {
	c, _ := v.AsCompound()
	for _, e := range c.inner.Entries() {
		buf.WriteByte(byte(e.Value.Kind()))
		if err := writeStringBytes[DstE](buf, e.Key); err != nil {
			return err
		}
		if err := writeReadonlyValue[DstE](buf, wrapValue(e.Value)); err != nil {
			return err
		}
	}
	buf.WriteByte(byte(TagEnd))
	return nil
}
