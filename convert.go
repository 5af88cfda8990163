package nbt

import "github.com/nullab-io/nbt/internal/bufcursor"

// ToOwned materializes a Readonly value into a fully owned tree. Scalars
// are decoded to host-native Go values, matching spec.md §4.5 ("scalars
// are stored host-native, byte-swapped at write time"); only the int and
// long array kinds carry byte order at all, re-encoded here into
// destination order D.
//
// The original Rust source exposes this as a method on the borrowed value
// itself (into_owned, Addition C.2); Go does not allow a method to add a
// type parameter beyond its receiver's, and D is independent of the
// receiver's own E, so this is a package-level function instead. D must be
// given explicitly at the call site; E is inferred from v.
func ToOwned[D bufcursor.Endian, E bufcursor.Endian](v ReadonlyValue[E]) OwnedValue {
	switch v.Kind() {
	case TagByte:
		n, _ := v.AsByte()
		return OwnedByte(n)
	case TagShort:
		n, _ := v.AsShort()
		return OwnedShort(n)
	case TagInt:
		n, _ := v.AsInt()
		return OwnedInt(n)
	case TagLong:
		n, _ := v.AsLong()
		return OwnedLong(n)
	case TagFloat:
		n, _ := v.AsFloat()
		return OwnedFloat(n)
	case TagDouble:
		n, _ := v.AsDouble()
		return OwnedDouble(n)
	case TagString:
		s, _ := v.DecodeString()
		return OwnedString(s)
	case TagByteArray:
		a, _ := v.AsByteArray()
		out := make(OwnedByteArray, a.Len())
		for i := range out {
			out[i], _ = a.Get(i)
		}
		return out
	case TagIntArray:
		a, _ := v.AsIntArray()
		vals := make([]int32, a.Len())
		for i := range vals {
			vals[i], _ = a.Get(i)
		}
		return NewOwnedIntArray[D](vals)
	case TagLongArray:
		a, _ := v.AsLongArray()
		vals := make([]int64, a.Len())
		for i := range vals {
			vals[i], _ = a.Get(i)
		}
		return NewOwnedLongArray[D](vals)
	case TagList:
		l, _ := v.AsList()
		out := NewOwnedList(l.Elem())
		for i := 0; i < l.Len(); i++ {
			elem, _ := l.Get(i)
			out.Append(ToOwned[D](elem))
		}
		return out
	case TagCompound:
		c, _ := v.AsCompound()
		out := NewOwnedCompound()
		for _, e := range c.Entries() {
			// appendRaw, not Insert: Insert replaces an existing key's value
			// in place, which for malformed input with duplicate keys would
			// leave the *last* duplicate's value stored under the *first*
			// key — contradicting compound.go's Get, which (like
			// tree.go's Compound.Get) always returns the first occurrence.
			out.appendRaw(e.Key, ToOwned[D](e.Value))
		}
		out.rebuildIndex()
		return out
	default:
		return nil
	}
}

// ReadOwned parses data and immediately materializes an owned document in
// destination byte order D, without retaining any reference to data. The
// owned representation is fully materialized, so unlike ReadBorrowed it
// decodes the root name eagerly and fails if it is not valid MUTF-8.
func ReadOwned[D bufcursor.Endian, E bufcursor.Endian](data []byte, opts ...ParseOption) (*OwnedDocument, error) {
	doc, err := ReadBorrowed[E](data, opts...)
	if err != nil {
		return nil, err
	}
	name, err := doc.RootName()
	if err != nil {
		return nil, err
	}
	return &OwnedDocument{RootName: name, Root: ToOwned[D](doc.Root)}, nil
}
