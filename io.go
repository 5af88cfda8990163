package nbt

import (
	"bufio"
	"io"

	"github.com/nullab-io/nbt/internal/bufcursor"
)

// ToVecBE, ToVecLE, ToWriterBE, ToWriterLE, FromSliceBE, FromSliceLE,
// FromReaderBE, and FromReaderLE are thin, concretely-typed wrappers
// around the generic Write/ReadBorrowed entry points, named after the
// *_be/*_le convenience functions the original Rust source exposes
// (spec.md §6.2) for callers who would rather not spell out a type
// parameter at every call site.

func ToVecBE(doc *OwnedDocument, opts ...WriteOption) ([]byte, error) {
	return ToBytes[bufcursor.BigEndian](doc, opts...)
}

func ToVecLE(doc *OwnedDocument, opts ...WriteOption) ([]byte, error) {
	return ToBytes[bufcursor.LittleEndian](doc, opts...)
}

func ToWriterBE(w io.Writer, doc *OwnedDocument, opts ...WriteOption) error {
	return Write[bufcursor.BigEndian](w, doc, opts...)
}

func ToWriterLE(w io.Writer, doc *OwnedDocument, opts ...WriteOption) error {
	return Write[bufcursor.LittleEndian](w, doc, opts...)
}

func FromSliceBE(data []byte, opts ...ParseOption) (*Document[bufcursor.BigEndian], error) {
	return ReadBorrowed[bufcursor.BigEndian](data, opts...)
}

func FromSliceLE(data []byte, opts ...ParseOption) (*Document[bufcursor.LittleEndian], error) {
	return ReadBorrowed[bufcursor.LittleEndian](data, opts...)
}

// FromReaderBE and FromReaderLE read r to completion before parsing: the
// zero-copy parser needs one contiguous buffer to borrow into, so there is
// no way to parse incrementally off a stream.
func FromReaderBE(r io.Reader, opts ...ParseOption) (*Document[bufcursor.BigEndian], error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}
	return FromSliceBE(data, opts...)
}

func FromReaderLE(r io.Reader, opts ...ParseOption) (*Document[bufcursor.LittleEndian], error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}
	return FromSliceLE(data, opts...)
}

// ToVecReadonlyBE, ToVecReadonlyLE, ToWriterReadonlyBE, and
// ToWriterReadonlyLE are WriteReadonly/ToBytesReadonly's concretely-typed
// counterparts, letting a caller who parsed with FromSliceBE/FromSliceLE
// write straight back out — including through the bulk-copy fast path
// when the destination order matches the parse — without ever
// materializing an OwnedDocument.

func ToVecReadonlyBE[SrcE bufcursor.Endian](doc *Document[SrcE], opts ...WriteOption) ([]byte, error) {
	return ToBytesReadonly[bufcursor.BigEndian](doc, opts...)
}

func ToVecReadonlyLE[SrcE bufcursor.Endian](doc *Document[SrcE], opts ...WriteOption) ([]byte, error) {
	return ToBytesReadonly[bufcursor.LittleEndian](doc, opts...)
}

func ToWriterReadonlyBE[SrcE bufcursor.Endian](w io.Writer, doc *Document[SrcE], opts ...WriteOption) error {
	return WriteReadonly[bufcursor.BigEndian](w, doc, opts...)
}

func ToWriterReadonlyLE[SrcE bufcursor.Endian](w io.Writer, doc *Document[SrcE], opts ...WriteOption) error {
	return WriteReadonly[bufcursor.LittleEndian](w, doc, opts...)
}

func readAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		return nil, newErr(KindIO, -1, "", err)
	}
	return data, nil
}
