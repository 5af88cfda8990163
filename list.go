package nbt

import (
	"github.com/nullab-io/nbt/internal/bufcursor"
	"github.com/nullab-io/nbt/internal/parser"
)

// ReadonlyList is a read-only view over a parsed TAG_List's elements.
type ReadonlyList[E bufcursor.Endian] struct {
	inner parser.List[E]
}

// Elem reports the declared element tag. For an empty list it is whatever
// tag the source declared, conventionally TagEnd.
func (l ReadonlyList[E]) Elem() TagID { return l.inner.Elem }
func (l ReadonlyList[E]) Len() int    { return l.inner.Len() }

func (l ReadonlyList[E]) Get(i int) (ReadonlyValue[E], bool) {
	v, ok := l.inner.Get(i)
	return wrapValue(v), ok
}

// OwnedList is a mutable, homogeneous sequence. Elem is fixed by the first
// Append (or by NewOwnedList's argument) and never changes afterward,
// mirroring the wire format's single-element-tag-per-list constraint;
// Append itself does not enforce homogeneity — that check belongs to the
// writer (spec.md §4.6, the heterogeneous-list invariant is a write-time
// check, not a build-time one).
type OwnedList struct {
	Elem   TagID
	Values []OwnedValue
}

// NewOwnedList returns an empty list fixed to element kind elem.
func NewOwnedList(elem TagID) *OwnedList { return &OwnedList{Elem: elem} }

func (l *OwnedList) Kind() TagID { return TagList }
func (l *OwnedList) Len() int    { return len(l.Values) }

func (l *OwnedList) Get(i int) (OwnedValue, bool) {
	if i < 0 || i >= len(l.Values) {
		return nil, false
	}
	return l.Values[i], true
}

// Append adds v to the list, fixing Elem from v's kind if this is the
// first element and Elem was left as TagEnd.
func (l *OwnedList) Append(v OwnedValue) {
	if l.Elem == TagEnd && len(l.Values) == 0 {
		l.Elem = v.Kind()
	}
	l.Values = append(l.Values, v)
}

// Set overwrites the element at i in place. Like Append, it does not
// enforce homogeneity — that check belongs to the writer. It reports
// whether i was in range.
func (l *OwnedList) Set(i int, v OwnedValue) bool {
	if i < 0 || i >= len(l.Values) {
		return false
	}
	l.Values[i] = v
	return true
}

// Remove deletes the element at i, preserving the order of what remains.
// It reports whether i was in range.
func (l *OwnedList) Remove(i int) bool {
	if i < 0 || i >= len(l.Values) {
		return false
	}
	l.Values = append(l.Values[:i], l.Values[i+1:]...)
	return true
}
