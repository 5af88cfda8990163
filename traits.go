package nbt

// The four interfaces below name the capability tiers described in
// spec.md §4.7 for the read side and symmetrically for the owned/mutable
// side. In this Go rendition every tier's method set is just Kind(); the
// decoded-content accessors live on the concrete types. The Rust original expresses these as generic
// traits with associated types; Go has no associated types and does not
// allow a method to introduce type parameters beyond its receiver's, so
// the tiers here are plain structural interfaces satisfied by the
// concrete ReadonlyValue[E]/OwnedValue family rather than a trait a type
// opts into explicitly.

// ScopedReadableValue is the narrowest read tier: anything that can report
// its tag. Every ReadonlyValue[E] and every OwnedValue satisfies it.
type ScopedReadableValue interface {
	Kind() TagID
}

// ReadableValue has the same method set as ScopedReadableValue. No function
// in this package takes it as a parameter type: Visit and Debug take a
// ReadonlyValue[E] directly, and DebugOwned/VisitOwned an OwnedValue.
//
// The writer covers both representations with two functions: writeValue
// (a type switch over the concrete owned types) and writeReadonlyValue
// (dispatching on Kind()) implement the same wire format from the owned
// and Readonly sides respectively. They
// remain two functions, not one, because a Readonly leaf's payload is
// still-encoded bytes while an owned leaf's payload is a decoded Go value
// — collapsing that difference into a single generic function would need
// an associated-type-shaped accessor Go's type system has no way to
// express, so the tier-generic part is the wire format they both walk,
// not a single shared function body.
type ReadableValue interface {
	ScopedReadableValue
}

// ScopedWritableValue is the owned/mutable tier's narrowest capability: a
// node that can report its kind and be stored inside a container. Every
// concrete OwnedValue implementation satisfies it for free, since Go's
// normal value/pointer semantics already provide mutation — there is no
// separate "borrow mutably" step to model as its own method set.
type ScopedWritableValue interface {
	OwnedValue
}

// WritableValue is the full owned tier, identical to ScopedWritableValue
// in this Go rendition; kept as a distinct name to preserve the tier
// vocabulary spec.md §4.7 and §9 use when describing the four-tier design.
type WritableValue interface {
	ScopedWritableValue
}

// ReadableCompound and ReadableList name the read-only container tiers.
// ReadonlyCompound[E]/ReadonlyList[E] and *OwnedCompound/*OwnedList all
// satisfy them, since read access is a strict subset of read-write access.
type ReadableCompound interface {
	Len() int
}

type ReadableList interface {
	Len() int
}
