// Package nbt implements a reader and writer for the Named Binary Tag
// (NBT) format used by Minecraft for world, chunk, and entity data.
//
// Three value representations share one data model: ReadonlyValue points
// into a source buffer without copying payloads (the result of
// ReadBorrowed or ReadShared), OwnedValue fully materializes a tree for
// mutation (the result of ReadOwned or ToOwned), and the view types in
// traits.go name the capability tiers both representations satisfy.
// Endianness is a type parameter on every generic entry point —
// bufcursor.BigEndian for the historical Java Edition wire format,
// bufcursor.LittleEndian for Bedrock Edition and region-file variants — so
// there is no runtime byte-order branch in hot accessor loops.
//
// The package does not handle compression, schema validation, or file
// I/O; callers are expected to hand it an already-decompressed in-memory
// buffer (or an io.Reader it will read fully, via FromReaderBE/LE) and to
// own the compression/IO layer themselves.
package nbt
