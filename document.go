package nbt

import (
	"github.com/nullab-io/nbt/internal/bufcursor"
	"github.com/nullab-io/nbt/internal/mutf8"
	"github.com/nullab-io/nbt/internal/parser"
)

// Document is the result of parsing a complete top-level NBT value: the
// root tag's raw name bytes and value, plus whatever bytes trailed it
// (always empty under WithStrictTrailingData, since any trailing byte then
// fails the parse). Like every string this package touches, the root name
// is never decoded during parsing; call RootName to decode it, or
// RootNameBytes to read the raw MUTF-8 directly.
type Document[E bufcursor.Endian] struct {
	RootNameBytes []byte
	Root          ReadonlyValue[E]
	Trailing      []byte
}

// RootName decodes the root tag's name, returning KindStringNotMutf8 if it
// is not valid MUTF-8 — the same deferred-decode contract ReadonlyValue's
// DecodeString gives ordinary string values (spec.md §4.3: the parser
// never decodes, so a malformed name only surfaces here, not at parse
// time).
func (d *Document[E]) RootName() (string, error) {
	s, err := mutf8.Decode(d.RootNameBytes)
	if err != nil {
		return "", newErr(KindStringNotMutf8, -1, "", err)
	}
	return s, nil
}

// ReadBorrowed parses data in place: every leaf payload in the resulting
// tree is a sub-slice of data, so data must outlive the returned Document
// and everything derived from it.
func ReadBorrowed[E bufcursor.Endian](data []byte, opts ...ParseOption) (*Document[E], error) {
	o := buildParseOptions(opts...)
	doc, err := parser.Parse[E](data, o.maxDepth(), o.StrictTrailingData)
	if err != nil {
		return nil, wrapParserError(err)
	}
	return &Document[E]{RootNameBytes: doc.RootNameBytes, Root: wrapValue(doc.Root), Trailing: doc.Trailing}, nil
}

// SharedBytes marks a buffer as held under the "shared" construction path
// (spec.md §3's Readonly-shared variant) rather than the plain "borrowed"
// one. Go's garbage collector already keeps data's backing array alive for
// as long as any slice derived from it is reachable — including every
// sub-slice a parsed Document holds — so this type carries no reference
// count of its own; it exists only to give read_shared its own input type,
// distinct from a bare []byte, the way the original Rust source
// distinguishes an Arc<[u8]> from a borrowed &[u8] at the type level.
type SharedBytes struct {
	data []byte
}

// NewSharedBytes wraps data for use with ReadShared.
func NewSharedBytes(data []byte) SharedBytes { return SharedBytes{data: data} }

// ReadShared parses b the same way ReadBorrowed parses a plain []byte; the
// distinction is purely at the API boundary (see SharedBytes).
func ReadShared[E bufcursor.Endian](b SharedBytes, opts ...ParseOption) (*Document[E], error) {
	return ReadBorrowed[E](b.data, opts...)
}

// OwnedDocument is a fully materialized, mutable top-level tree, the result
// of ReadOwned or of ToOwned applied to a Document's root.
type OwnedDocument struct {
	RootName string
	Root     OwnedValue
}

// Len estimates the tree's node count via a plain traversal of already
// materialized containers (no decoding cost beyond what the tree already
// paid at ToOwned time), mirroring the original Rust source's cheap,
// non-decoding size estimate (src/index.rs).
func (d *OwnedDocument) Len() int {
	return countOwned(d.Root)
}

func countOwned(v OwnedValue) int {
	switch t := v.(type) {
	case *OwnedCompound:
		n := 1
		for _, e := range t.Entries() {
			n += countOwned(e.Value)
		}
		return n
	case *OwnedList:
		n := 1
		for i := 0; i < t.Len(); i++ {
			elem, _ := t.Get(i)
			n += countOwned(elem)
		}
		return n
	default:
		return 1
	}
}
