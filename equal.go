package nbt

import "github.com/nullab-io/nbt/internal/bufcursor"

// intArrayLike and longArrayLike let Equal and the writer compare or
// re-encode *OwnedIntArray[E]/*OwnedLongArray[E] values without knowing
// their concrete E, by going through the logical Len/Get accessors rather
// than the raw backing bytes (which would only compare equal when both
// sides share the same E).
type intArrayLike interface {
	OwnedValue
	Len() int
	Get(int) (int32, bool)
}

type longArrayLike interface {
	OwnedValue
	Len() int
	Get(int) (int64, bool)
}

// Equal reports whether two owned trees are structurally equal: identical
// tag kinds throughout, identical scalar and array element values, list
// elements compared in order, and — per spec.md §8 testable property 2 —
// compounds compared order-insensitively with duplicate keys folded to
// their first occurrence before comparison.
func Equal(a, b OwnedValue) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case OwnedByte:
		return av == b.(OwnedByte)
	case OwnedShort:
		return av == b.(OwnedShort)
	case OwnedInt:
		return av == b.(OwnedInt)
	case OwnedLong:
		return av == b.(OwnedLong)
	case OwnedFloat:
		return av == b.(OwnedFloat)
	case OwnedDouble:
		return av == b.(OwnedDouble)
	case OwnedString:
		return av == b.(OwnedString)
	case OwnedByteArray:
		bv := b.(OwnedByteArray)
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i] != bv[i] {
				return false
			}
		}
		return true
	case *OwnedList:
		return listsEqual(av, b.(*OwnedList))
	case *OwnedCompound:
		return compoundsEqual(av, b.(*OwnedCompound))
	default:
		return foreignArraysEqual(a, b)
	}
}

func listsEqual(a, b *OwnedList) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		ea, _ := a.Get(i)
		eb, _ := b.Get(i)
		if !Equal(ea, eb) {
			return false
		}
	}
	return true
}

func compoundsEqual(a, b *OwnedCompound) bool {
	ae := firstOccurrences(a.Entries())
	be := firstOccurrences(b.Entries())
	if len(ae) != len(be) {
		return false
	}
	for k, av := range ae {
		bv, ok := be[k]
		if !ok || !Equal(av, bv) {
			return false
		}
	}
	return true
}

func firstOccurrences(entries []OwnedEntry) map[string]OwnedValue {
	out := make(map[string]OwnedValue, len(entries))
	for _, e := range entries {
		if _, exists := out[e.Key]; !exists {
			out[e.Key] = e.Value
		}
	}
	return out
}

func foreignArraysEqual(a, b OwnedValue) bool {
	if ia, ok := a.(intArrayLike); ok {
		ib, ok2 := b.(intArrayLike)
		if !ok2 || ia.Len() != ib.Len() {
			return false
		}
		for i := 0; i < ia.Len(); i++ {
			va, _ := ia.Get(i)
			vb, _ := ib.Get(i)
			if va != vb {
				return false
			}
		}
		return true
	}
	if la, ok := a.(longArrayLike); ok {
		lb, ok2 := b.(longArrayLike)
		if !ok2 || la.Len() != lb.Len() {
			return false
		}
		for i := 0; i < la.Len(); i++ {
			va, _ := la.Get(i)
			vb, _ := lb.Get(i)
			if va != vb {
				return false
			}
		}
		return true
	}
	return false
}

// EqualReadonly reports whether two Readonly values (sharing the same
// endianness E) are structurally equal, by materializing both into owned
// form (in a fixed canonical byte order, since Equal's array comparison is
// endianness-independent regardless of which order is chosen) and
// delegating to Equal, rather than duplicating its duplicate-key-folding
// and array-element logic a second time for the zero-copy representation.
func EqualReadonly[E bufcursor.Endian](a, b ReadonlyValue[E]) bool {
	return Equal(ToOwned[bufcursor.BigEndian](a), ToOwned[bufcursor.BigEndian](b))
}
