package parser

import (
	"math"

	"github.com/nullab-io/nbt/internal/bufcursor"
	"github.com/nullab-io/nbt/internal/wire"
)

// Document is the result of a single top-level parse: the root tag's raw
// name bytes, its value, and whatever bytes trailed the root value (empty
// unless the caller disabled strict trailing-data checking). The name is
// kept undecoded, same as every other string this package touches — this
// package never decodes MUTF-8, so a root name that happens to be
// malformed never fails the parse itself.
type Document[E bufcursor.Endian] struct {
	RootNameBytes []byte
	Root          Value[E]
	Trailing      []byte
}

// maxPreallocElems bounds how many elements a single list or array header
// is allowed to preallocate up front, regardless of what its declared
// length claims, so a crafted 2^31-1 length cannot force a multi-gigabyte
// allocation before a single byte of actual content has been read.
const maxPreallocElems = 4096

// Parse runs the single-pass, zero-copy recursive descent over data and
// returns the root value. maxDepth bounds compound/list nesting; a maxDepth
// of zero or less means no limit. strictTrailing turns
// unconsumed bytes after the root value into an error instead of returning
// them as Trailing.
func Parse[E bufcursor.Endian](data []byte, maxDepth int, strictTrailing bool) (*Document[E], error) {
	if maxDepth <= 0 {
		maxDepth = math.MaxInt
	}
	c := bufcursor.New[E](data)

	tag, err := c.TakeU8()
	if err != nil {
		return nil, wrapEOF(err)
	}
	tagID := wire.TagID(tag)
	if !tagID.Valid() {
		return nil, &Error{Kind: KindInvalidTag, Offset: c.Pos() - 1}
	}

	name, err := takeStringBytes(c)
	if err != nil {
		return nil, err
	}

	root, err := parseValue[E](c, tagID, 1, maxDepth)
	if err != nil {
		return nil, err
	}

	trailing := data[c.Pos():]
	if strictTrailing && len(trailing) > 0 {
		return nil, &Error{Kind: KindTrailingData, Offset: c.Pos()}
	}

	return &Document[E]{RootNameBytes: name, Root: root, Trailing: trailing}, nil
}

// parseValue dispatches on tag and reads exactly one value body (the bytes
// that follow the tag ID and, for compound entries, the name). depth counts
// the current value itself; only list and compound values are checked
// against maxDepth, so a non-container tag never trips the depth cap.
func parseValue[E bufcursor.Endian](c *bufcursor.Cursor[E], tag wire.TagID, depth, maxDepth int) (Value[E], error) {
	if depth > maxDepth && (tag == wire.TagList || tag == wire.TagCompound) {
		return Value[E]{}, &Error{Kind: KindDepthExceeded, Offset: c.Pos()}
	}

	if size, ok := wire.FixedSize(tag); ok {
		b, err := c.TakeSlice(size)
		if err != nil {
			return Value[E]{}, wrapEOF(err)
		}
		return NewPrimitive[E](tag, b), nil
	}

	switch tag {
	case wire.TagString:
		b, err := takeStringBytes(c)
		if err != nil {
			return Value[E]{}, err
		}
		return NewPrimitive[E](tag, b), nil

	case wire.TagByteArray:
		return parseArray[E](c, tag, 1)

	case wire.TagIntArray:
		return parseArray[E](c, tag, 4)

	case wire.TagLongArray:
		return parseArray[E](c, tag, 8)

	case wire.TagList:
		return parseListBody[E](c, depth, maxDepth)

	case wire.TagCompound:
		return parseCompoundBody[E](c, depth, maxDepth)

	default:
		// Every caller checks Valid first, and parseListBody rejects a
		// TagEnd element type for a non-empty list, so the only tag that
		// reaches here is TagEnd given as the root tag, which has no body.
		return Value[E]{}, &Error{Kind: KindInvalidTag, Offset: c.Pos()}
	}
}

// parseArray reads a TAG_Byte_Array/TAG_Int_Array/TAG_Long_Array body: a
// signed 32-bit element count followed by count*elemSize raw bytes.
func parseArray[E bufcursor.Endian](c *bufcursor.Cursor[E], tag wire.TagID, elemSize int) (Value[E], error) {
	n, err := c.TakeI32()
	if err != nil {
		return Value[E]{}, wrapEOF(err)
	}
	if n < 0 {
		return Value[E]{}, &Error{Kind: KindNegativeLength, Offset: c.Pos() - 4}
	}
	byteLen, ok := scaledLen(n, elemSize)
	if !ok {
		return Value[E]{}, &Error{Kind: KindNegativeLength, Offset: c.Pos() - 4}
	}
	b, err := c.TakeSlice(byteLen)
	if err != nil {
		return Value[E]{}, wrapEOF(err)
	}
	return NewPrimitive[E](tag, b), nil
}

// parseListBody reads a TAG_List body: an element tag, a signed 32-bit
// count, and that many values of the element tag. An element tag of TagEnd
// is only valid when count is zero, per the format's convention for
// representing an empty list.
func parseListBody[E bufcursor.Endian](c *bufcursor.Cursor[E], depth, maxDepth int) (Value[E], error) {
	elemTagByte, err := c.TakeU8()
	if err != nil {
		return Value[E]{}, wrapEOF(err)
	}
	elemTag := wire.TagID(elemTagByte)
	if !elemTag.Valid() {
		return Value[E]{}, &Error{Kind: KindInvalidTag, Offset: c.Pos() - 1}
	}

	n, err := c.TakeI32()
	if err != nil {
		return Value[E]{}, wrapEOF(err)
	}
	if n < 0 {
		return Value[E]{}, &Error{Kind: KindNegativeLength, Offset: c.Pos() - 4}
	}
	if n == 0 {
		return NewList[E](elemTag, nil), nil
	}
	if elemTag == wire.TagEnd {
		return Value[E]{}, &Error{Kind: KindInvalidTag, Offset: c.Pos() - 5}
	}

	values := make([]Value[E], 0, clampPrealloc(n))
	for i := int32(0); i < n; i++ {
		v, err := parseValue[E](c, elemTag, depth+1, maxDepth)
		if err != nil {
			return Value[E]{}, err
		}
		values = append(values, v)
	}
	return NewList[E](elemTag, values), nil
}

// parseCompoundBody reads a TAG_Compound body: a sequence of (tag, name,
// value) entries terminated by a lone TAG_End byte.
func parseCompoundBody[E bufcursor.Endian](c *bufcursor.Cursor[E], depth, maxDepth int) (Value[E], error) {
	var entries []Entry[E]
	for {
		tagByte, err := c.TakeU8()
		if err != nil {
			return Value[E]{}, wrapEOF(err)
		}
		tag := wire.TagID(tagByte)
		if tag == wire.TagEnd {
			break
		}
		if !tag.Valid() {
			return Value[E]{}, &Error{Kind: KindInvalidTag, Offset: c.Pos() - 1}
		}

		name, err := takeStringBytes(c)
		if err != nil {
			return Value[E]{}, err
		}

		v, err := parseValue[E](c, tag, depth+1, maxDepth)
		if err != nil {
			return Value[E]{}, err
		}
		entries = append(entries, Entry[E]{Key: name, Value: v})
	}
	return NewCompound[E](entries), nil
}

// takeStringBytes reads an NBT string: an unsigned 16-bit length prefix
// followed by that many MUTF-8 bytes, returned as a sub-slice of the
// original buffer without validating or decoding them.
func takeStringBytes[E bufcursor.Endian](c *bufcursor.Cursor[E]) ([]byte, error) {
	n, err := c.TakeU16()
	if err != nil {
		return nil, wrapEOF(err)
	}
	b, err := c.TakeSlice(int(n))
	if err != nil {
		return nil, wrapEOF(err)
	}
	return b, nil
}

// scaledLen multiplies n by elemSize without overflowing int, the same
// guard the teacher's internal/buf.CheckListBounds applies before trusting
// a length taken directly from untrusted input.
func scaledLen(n int32, elemSize int) (int, bool) {
	if n < 0 {
		return 0, false
	}
	total := int64(n) * int64(elemSize)
	if total > int64(^uint(0)>>1) {
		return 0, false
	}
	return int(total), true
}

// clampPrealloc caps a declared element count used only to size an initial
// slice allocation, so a bogus huge count costs at most a bounded
// over-allocation rather than an attacker-controlled one.
func clampPrealloc(n int32) int {
	if n < 0 {
		return 0
	}
	if n > maxPreallocElems {
		return maxPreallocElems
	}
	return int(n)
}
