package nbt

import "github.com/nullab-io/nbt/internal/bufcursor"

// Visitor holds one callback per tag kind, plus End for a Readonly value
// that carries TagEnd (never produced by the parser as a tree node, but
// reachable through a zero ReadonlyValue). Visit dispatches a value to
// exactly one callback, decoding only the payload that callback needs —
// the same exhaustive-match role the original Rust source's
// visit_scoped gives callers in place of Go's non-exhaustive type switch.
type Visitor[E bufcursor.Endian, R any] struct {
	Byte      func(int8) R
	Short     func(int16) R
	Int       func(int32) R
	Long      func(int64) R
	Float     func(float32) R
	Double    func(float64) R
	String    func(string) R
	ByteArray func(ReadonlyByteArray) R
	IntArray  func(ReadonlyIntArray[E]) R
	LongArray func(ReadonlyLongArray[E]) R
	List      func(ReadonlyList[E]) R
	Compound  func(ReadonlyCompound[E]) R
	End       func() R
}

// Visit dispatches v to the Visitor field matching its kind. A nil field
// for the kind actually present panics, the same way an unhandled Rust
// match arm would fail to compile — callers are expected to populate
// every branch whose kind they might encounter.
func Visit[E bufcursor.Endian, R any](v ReadonlyValue[E], vis Visitor[E, R]) R {
	switch v.Kind() {
	case TagByte:
		n, _ := v.AsByte()
		return vis.Byte(n)
	case TagShort:
		n, _ := v.AsShort()
		return vis.Short(n)
	case TagInt:
		n, _ := v.AsInt()
		return vis.Int(n)
	case TagLong:
		n, _ := v.AsLong()
		return vis.Long(n)
	case TagFloat:
		n, _ := v.AsFloat()
		return vis.Float(n)
	case TagDouble:
		n, _ := v.AsDouble()
		return vis.Double(n)
	case TagString:
		s, err := v.DecodeString()
		if err != nil {
			s = ""
		}
		return vis.String(s)
	case TagByteArray:
		a, _ := v.AsByteArray()
		return vis.ByteArray(a)
	case TagIntArray:
		a, _ := v.AsIntArray()
		return vis.IntArray(a)
	case TagLongArray:
		a, _ := v.AsLongArray()
		return vis.LongArray(a)
	case TagList:
		l, _ := v.AsList()
		return vis.List(l)
	case TagCompound:
		c, _ := v.AsCompound()
		return vis.Compound(c)
	default:
		return vis.End()
	}
}

// VisitOwned is Visit's owned-tree counterpart, dispatching on a concrete
// OwnedValue via a Go type switch rather than a field-per-kind struct,
// since the owned side already has one concrete type per kind to switch
// on and does not need the extra indirection Visitor adds for the
// zero-copy side's single generic Value type.
func VisitOwned[R any](v OwnedValue, onByte func(OwnedByte) R, onShort func(OwnedShort) R,
	onInt func(OwnedInt) R, onLong func(OwnedLong) R, onFloat func(OwnedFloat) R,
	onDouble func(OwnedDouble) R, onString func(OwnedString) R, onByteArray func(OwnedByteArray) R,
	onList func(*OwnedList) R, onCompound func(*OwnedCompound) R, onOther func(OwnedValue) R) R {
	switch t := v.(type) {
	case OwnedByte:
		return onByte(t)
	case OwnedShort:
		return onShort(t)
	case OwnedInt:
		return onInt(t)
	case OwnedLong:
		return onLong(t)
	case OwnedFloat:
		return onFloat(t)
	case OwnedDouble:
		return onDouble(t)
	case OwnedString:
		return onString(t)
	case OwnedByteArray:
		return onByteArray(t)
	case *OwnedList:
		return onList(t)
	case *OwnedCompound:
		return onCompound(t)
	default:
		return onOther(v)
	}
}
