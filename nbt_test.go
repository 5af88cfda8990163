package nbt_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/nullab-io/nbt"
	"github.com/nullab-io/nbt/internal/bufcursor"
)

// buildSampleBytes assembles a small but representative big-endian NBT
// document covering every tag kind, the shape spec.md §8's seed scenarios
// describe: a compound containing one of each scalar, a byte array, an int
// array, a long array, a string, a nested compound, and a list of shorts.
func buildSampleBytes(t *testing.T, seed int8) []byte {
	t.Helper()
	b := []byte{
		byte(nbt.TagCompound), 0x00, 0x00, // root, unnamed

		byte(nbt.TagByte), 0x00, 0x02, 'i', 'd', byte(seed),

		byte(nbt.TagShort), 0x00, 0x01, 's', 0x01, 0x02,

		byte(nbt.TagInt), 0x00, 0x01, 'n', 0x00, 0x00, 0x01, 0x00,

		byte(nbt.TagLong), 0x00, 0x01, 'l',
		0, 0, 0, 0, 0, 0, 0, 42,

		byte(nbt.TagFloat), 0x00, 0x01, 'f', 0x3F, 0xC0, 0x00, 0x00, // 1.5

		byte(nbt.TagDouble), 0x00, 0x01, 'd', 0x40, 0x02, 0, 0, 0, 0, 0, 0, // 2.25

		byte(nbt.TagString), 0x00, 0x04, 'n', 'a', 'm', 'e', 0x00, 0x05, 'h', 'e', 'l', 'l', 'o',

		byte(nbt.TagByteArray), 0x00, 0x05, 'b', 'y', 't', 'e', 's',
		0x00, 0x00, 0x00, 0x03, 0x01, 0x02, 0x03,

		byte(nbt.TagIntArray), 0x00, 0x04, 'i', 'n', 't', 's',
		0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00, 0x0A, 0x00, 0x00, 0x00, 0x14,

		byte(nbt.TagLongArray), 0x00, 0x05, 'l', 'o', 'n', 'g', 's',
		0x00, 0x00, 0x00, 0x01, 0, 0, 0, 0, 0, 0, 0, 7,

		byte(nbt.TagCompound), 0x00, 0x06, 'n', 'e', 's', 't', 'e', 'd',
		byte(nbt.TagByte), 0x00, 0x01, 'x', 0x09,
		byte(nbt.TagEnd),

		byte(nbt.TagList), 0x00, 0x05, 'l', 'e', 'v', 'e', 'l',
		byte(nbt.TagShort), 0x00, 0x00, 0x00, 0x03,
		0x00, 0x01, 0x00, 0x02, 0x00, 0x03,

		byte(nbt.TagEnd),
	}
	return b
}

func TestReadBorrowedCoversEveryTagKind(t *testing.T) {
	data := buildSampleBytes(t, 7)
	doc, err := nbt.ReadBorrowed[bufcursor.BigEndian](data)
	require.NoError(t, err)
	name, err := doc.RootName()
	require.NoError(t, err)
	require.Equal(t, "", name)
	require.Empty(t, doc.Trailing)

	c, ok := doc.Root.AsCompound()
	require.True(t, ok)

	idVal, ok := c.Get("id")
	require.True(t, ok)
	b, ok := idVal.AsByte()
	require.True(t, ok)
	require.Equal(t, int8(7), b)

	nameVal, ok := c.Get("name")
	require.True(t, ok)
	s, err := nameVal.DecodeString()
	require.NoError(t, err)
	require.Equal(t, "hello", s)

	intsVal, ok := c.Get("ints")
	require.True(t, ok)
	ia, ok := intsVal.AsIntArray()
	require.True(t, ok)
	require.Equal(t, 2, ia.Len())
	v0, _ := ia.Get(0)
	v1, _ := ia.Get(1)
	require.Equal(t, int32(10), v0)
	require.Equal(t, int32(20), v1)

	nestedVal, ok := c.Get("nested")
	require.True(t, ok)
	nested, ok := nestedVal.AsCompound()
	require.True(t, ok)
	xVal, ok := nested.Get("x")
	require.True(t, ok)
	xb, _ := xVal.AsByte()
	require.Equal(t, int8(9), xb)

	levelVal, ok := c.Get("level")
	require.True(t, ok)
	level, ok := levelVal.AsList()
	require.True(t, ok)
	require.Equal(t, nbt.TagShort, level.Elem())
	require.Equal(t, 3, level.Len())
	e2, _ := level.Get(2)
	s2, _ := e2.AsShort()
	require.Equal(t, int16(3), s2)
}

func TestReadOwnedThenWriteRoundTrips(t *testing.T) {
	data := buildSampleBytes(t, 42)
	owned, err := nbt.ReadOwned[bufcursor.BigEndian, bufcursor.BigEndian](data)
	require.NoError(t, err)

	out, err := nbt.ToVecBE(owned)
	require.NoError(t, err)

	doc2, err := nbt.ReadBorrowed[bufcursor.BigEndian](out)
	require.NoError(t, err)

	require.True(t, nbt.EqualReadonly[bufcursor.BigEndian](doc2.Root, borrowFromOwned(t, owned)))
}

func borrowFromOwned(t *testing.T, owned *nbt.OwnedDocument) nbt.ReadonlyValue[bufcursor.BigEndian] {
	t.Helper()
	out, err := nbt.ToVecBE(owned)
	require.NoError(t, err)
	doc, err := nbt.ReadBorrowed[bufcursor.BigEndian](out)
	require.NoError(t, err)
	return doc.Root
}

// TestConcurrentReadsAreSafe parses many independent documents
// concurrently and reads a value back from each, matching spec.md §5's
// claim that Readonly reads (as opposed to mutation of a single owned tree) are freely
// concurrent — wired with golang.org/x/sync/errgroup per SPEC_FULL.md's
// domain-stack entry for that dependency.
func TestConcurrentReadsAreSafe(t *testing.T) {
	const n = 32
	var g errgroup.Group
	for i := 0; i < n; i++ {
		seed := int8(i)
		g.Go(func() error {
			data := buildSampleBytes(t, seed)
			doc, err := nbt.ReadBorrowed[bufcursor.BigEndian](data)
			if err != nil {
				return err
			}
			c, ok := doc.Root.AsCompound()
			if !ok {
				t.Errorf("root is not a compound")
				return nil
			}
			idVal, ok := c.Get("id")
			if !ok {
				t.Errorf("missing id")
				return nil
			}
			b, _ := idVal.AsByte()
			if b != seed {
				t.Errorf("id = %d, want %d", b, seed)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestDepthLimitOption(t *testing.T) {
	data := []byte{
		byte(nbt.TagCompound), 0x00, 0x00,
		byte(nbt.TagCompound), 0x00, 0x01, 'a',
		byte(nbt.TagEnd),
		byte(nbt.TagEnd),
	}
	_, err := nbt.ReadBorrowed[bufcursor.BigEndian](data, nbt.WithMaxDepth(1))
	require.Error(t, err)
	var nerr *nbt.Error
	require.ErrorAs(t, err, &nerr)
	require.Equal(t, nbt.KindDepthExceeded, nerr.Kind)
}

func TestStrictTrailingDataOption(t *testing.T) {
	data := []byte{
		byte(nbt.TagCompound), 0x00, 0x00,
		byte(nbt.TagEnd),
		0xFF,
	}
	_, err := nbt.ReadBorrowed[bufcursor.BigEndian](data, nbt.WithStrictTrailingData())
	require.ErrorIs(t, err, nbt.ErrTrailingData)
}
