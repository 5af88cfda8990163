// Package bufcursor provides a bounds-checked, endian-parameterized cursor
// over a byte slice. It plays the same role for this module that
// internal/buf plays for the teacher library: endian-safe reads that never
// panic and never read past the end of the buffer.
package bufcursor

import "encoding/binary"

// Endian is the static byte-order contract a Cursor is parameterized over.
// It mirrors encoding/binary.ByteOrder plus AppendByteOrder, the same
// combination the arloliu/mebo endian package builds its EndianEngine from.
type Endian interface {
	Uint16([]byte) uint16
	Uint32([]byte) uint32
	Uint64([]byte) uint64
	PutUint16([]byte, uint16)
	PutUint32([]byte, uint32)
	PutUint64([]byte, uint64)
	AppendUint16([]byte, uint16) []byte
	AppendUint32([]byte, uint32) []byte
	AppendUint64([]byte, uint64) []byte
	Name() string
}

// BigEndian selects network byte order, the order mandated by the NBT wire
// format's historical (Java Edition) variant.
type BigEndian struct{}

func (BigEndian) Uint16(b []byte) uint16                 { return binary.BigEndian.Uint16(b) }
func (BigEndian) Uint32(b []byte) uint32                 { return binary.BigEndian.Uint32(b) }
func (BigEndian) Uint64(b []byte) uint64                 { return binary.BigEndian.Uint64(b) }
func (BigEndian) PutUint16(b []byte, v uint16)           { binary.BigEndian.PutUint16(b, v) }
func (BigEndian) PutUint32(b []byte, v uint32)           { binary.BigEndian.PutUint32(b, v) }
func (BigEndian) PutUint64(b []byte, v uint64)           { binary.BigEndian.PutUint64(b, v) }
func (BigEndian) AppendUint16(b []byte, v uint16) []byte { return binary.BigEndian.AppendUint16(b, v) }
func (BigEndian) AppendUint32(b []byte, v uint32) []byte { return binary.BigEndian.AppendUint32(b, v) }
func (BigEndian) AppendUint64(b []byte, v uint64) []byte { return binary.BigEndian.AppendUint64(b, v) }
func (BigEndian) Name() string                           { return "big-endian" }

// LittleEndian selects the byte order used by Bedrock Edition NBT and by
// little-endian-with-varint NBT variants found in region/level files.
type LittleEndian struct{}

func (LittleEndian) Uint16(b []byte) uint16       { return binary.LittleEndian.Uint16(b) }
func (LittleEndian) Uint32(b []byte) uint32       { return binary.LittleEndian.Uint32(b) }
func (LittleEndian) Uint64(b []byte) uint64       { return binary.LittleEndian.Uint64(b) }
func (LittleEndian) PutUint16(b []byte, v uint16) { binary.LittleEndian.PutUint16(b, v) }
func (LittleEndian) PutUint32(b []byte, v uint32) { binary.LittleEndian.PutUint32(b, v) }
func (LittleEndian) PutUint64(b []byte, v uint64) { binary.LittleEndian.PutUint64(b, v) }
func (LittleEndian) AppendUint16(b []byte, v uint16) []byte {
	return binary.LittleEndian.AppendUint16(b, v)
}
func (LittleEndian) AppendUint32(b []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(b, v)
}
func (LittleEndian) AppendUint64(b []byte, v uint64) []byte {
	return binary.LittleEndian.AppendUint64(b, v)
}
func (LittleEndian) Name() string { return "little-endian" }

// SameEndian reports whether A and B are the same concrete Endian type.
// The writer uses it to decide, at the point of writing a single leaf,
// whether a Readonly value's storage order can be bulk-copied verbatim
// or must be decoded and re-encoded into the destination order.
func SameEndian[A, B Endian]() bool {
	var b B
	_, ok := any(b).(A)
	return ok
}
