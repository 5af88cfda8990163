package nbt

import "github.com/nullab-io/nbt/internal/wire"

// TagID identifies the kind of an NBT value, re-exported from internal/wire
// so both this package and internal/parser share one definition without
// importing each other, the same re-export-by-alias shape the teacher uses
// in pkg/hive/types.go for its internal/*-defined types.
type TagID = wire.TagID

const (
	TagEnd       = wire.TagEnd
	TagByte      = wire.TagByte
	TagShort     = wire.TagShort
	TagInt       = wire.TagInt
	TagLong      = wire.TagLong
	TagFloat     = wire.TagFloat
	TagDouble    = wire.TagDouble
	TagByteArray = wire.TagByteArray
	TagString    = wire.TagString
	TagList      = wire.TagList
	TagCompound  = wire.TagCompound
	TagIntArray  = wire.TagIntArray
	TagLongArray = wire.TagLongArray
)

// FixedSize returns the on-wire payload size of a single element of kind t
// when that size does not depend on the element's contents.
var FixedSize = wire.FixedSize
