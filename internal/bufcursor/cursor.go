package bufcursor

import (
	"fmt"
	"math"
)

// EOFError reports that a read ran past the end of the buffer. The cursor's
// position is left unchanged on failure, so Offset always names the byte at
// which the short read was attempted.
type EOFError struct {
	Offset int
	Need   int
	Have   int
}

func (e *EOFError) Error() string {
	return fmt.Sprintf("bufcursor: unexpected EOF at offset %d (need %d bytes, have %d)", e.Offset, e.Need, e.Have)
}

// Cursor reads fixed and variable-width fields from b in byte order E,
// advancing only on successful reads. It never allocates and never panics;
// every short read returns an *EOFError naming the byte offset.
type Cursor[E Endian] struct {
	buf []byte
	pos int
}

// New wraps b for sequential reading starting at offset 0.
func New[E Endian](b []byte) *Cursor[E] {
	return &Cursor[E]{buf: b}
}

// Pos returns the current read offset into the underlying buffer.
func (c *Cursor[E]) Pos() int { return c.pos }

// Remaining returns the number of unread bytes.
func (c *Cursor[E]) Remaining() int { return len(c.buf) - c.pos }

// Bytes returns the full underlying buffer (not just the unread tail).
func (c *Cursor[E]) Bytes() []byte { return c.buf }

func (c *Cursor[E]) eof(need int) error {
	return &EOFError{Offset: c.pos, Need: need, Have: c.Remaining()}
}

// PeekU8 returns the next byte without advancing the cursor.
func (c *Cursor[E]) PeekU8() (byte, error) {
	if c.Remaining() < 1 {
		return 0, c.eof(1)
	}
	return c.buf[c.pos], nil
}

// TakeU8 reads and consumes one byte.
func (c *Cursor[E]) TakeU8() (byte, error) {
	if c.Remaining() < 1 {
		return 0, c.eof(1)
	}
	v := c.buf[c.pos]
	c.pos++
	return v, nil
}

// TakeSlice consumes and returns the next n bytes as a sub-slice of the
// original buffer (no copy).
func (c *Cursor[E]) TakeSlice(n int) ([]byte, error) {
	if n < 0 {
		return nil, c.eof(n)
	}
	if c.Remaining() < n {
		return nil, c.eof(n)
	}
	s := c.buf[c.pos : c.pos+n]
	c.pos += n
	return s, nil
}

// TakeI16 reads a signed 16-bit integer in the cursor's byte order.
func (c *Cursor[E]) TakeI16() (int16, error) {
	var e E
	b, err := c.TakeSlice(2)
	if err != nil {
		return 0, err
	}
	return int16(e.Uint16(b)), nil
}

// TakeU16 reads an unsigned 16-bit integer in the cursor's byte order.
func (c *Cursor[E]) TakeU16() (uint16, error) {
	var e E
	b, err := c.TakeSlice(2)
	if err != nil {
		return 0, err
	}
	return e.Uint16(b), nil
}

// TakeI32 reads a signed 32-bit integer in the cursor's byte order.
func (c *Cursor[E]) TakeI32() (int32, error) {
	var e E
	b, err := c.TakeSlice(4)
	if err != nil {
		return 0, err
	}
	return int32(e.Uint32(b)), nil
}

// TakeI64 reads a signed 64-bit integer in the cursor's byte order.
func (c *Cursor[E]) TakeI64() (int64, error) {
	var e E
	b, err := c.TakeSlice(8)
	if err != nil {
		return 0, err
	}
	return int64(e.Uint64(b)), nil
}

// TakeF32 reads an IEEE-754 32-bit float in the cursor's byte order.
func (c *Cursor[E]) TakeF32() (float32, error) {
	var e E
	b, err := c.TakeSlice(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(e.Uint32(b)), nil
}

// TakeF64 reads an IEEE-754 64-bit float in the cursor's byte order.
func (c *Cursor[E]) TakeF64() (float64, error) {
	var e E
	b, err := c.TakeSlice(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(e.Uint64(b)), nil
}

// DecodeI32At decodes a signed 32-bit integer from b at off without a
// cursor, used by array accessors that index directly into a payload slice.
func DecodeI32At[E Endian](b []byte, off int) int32 {
	var e E
	return int32(e.Uint32(b[off:]))
}

// DecodeI64At decodes a signed 64-bit integer from b at off.
func DecodeI64At[E Endian](b []byte, off int) int64 {
	var e E
	return int64(e.Uint64(b[off:]))
}

// EncodeI32 appends v to dst in byte order E.
func EncodeI32[E Endian](dst []byte, v int32) []byte {
	var e E
	return e.AppendUint32(dst, uint32(v))
}

// EncodeI64 appends v to dst in byte order E.
func EncodeI64[E Endian](dst []byte, v int64) []byte {
	var e E
	return e.AppendUint64(dst, uint64(v))
}

// EncodeI16 appends v to dst in byte order E.
func EncodeI16[E Endian](dst []byte, v int16) []byte {
	var e E
	return e.AppendUint16(dst, uint16(v))
}

// EncodeF32 appends v to dst in byte order E.
func EncodeF32[E Endian](dst []byte, v float32) []byte {
	var e E
	return e.AppendUint32(dst, math.Float32bits(v))
}

// EncodeF64 appends v to dst in byte order E.
func EncodeF64[E Endian](dst []byte, v float64) []byte {
	var e E
	return e.AppendUint64(dst, math.Float64bits(v))
}
