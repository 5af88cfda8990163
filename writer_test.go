package nbt_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nullab-io/nbt"
	"github.com/nullab-io/nbt/internal/bufcursor"
)

func TestWriteEmptyCompound(t *testing.T) {
	doc := &nbt.OwnedDocument{RootName: "", Root: nbt.NewOwnedCompound()}
	out, err := nbt.ToVecBE(doc)
	require.NoError(t, err)
	require.Equal(t, []byte{byte(nbt.TagCompound), 0x00, 0x00, byte(nbt.TagEnd)}, out)
}

func TestWriteRootNameOverride(t *testing.T) {
	doc := &nbt.OwnedDocument{RootName: "original", Root: nbt.NewOwnedCompound()}
	out, err := nbt.ToVecBE(doc, nbt.WithRootName("renamed"))
	require.NoError(t, err)

	want := []byte{byte(nbt.TagCompound), 0x00, 0x07}
	want = append(want, []byte("renamed")...)
	want = append(want, byte(nbt.TagEnd))
	require.Equal(t, want, out)
}

func TestWriteScalarsAndReadBack(t *testing.T) {
	c := nbt.NewOwnedCompound()
	c.Insert("b", nbt.OwnedByte(-5))
	c.Insert("s", nbt.OwnedShort(1000))
	c.Insert("i", nbt.OwnedInt(-70000))
	c.Insert("l", nbt.OwnedLong(9999999999))
	c.Insert("f", nbt.OwnedFloat(1.5))
	c.Insert("d", nbt.OwnedDouble(2.25))
	doc := &nbt.OwnedDocument{Root: c}

	out, err := nbt.ToVecBE(doc)
	require.NoError(t, err)

	parsed, err := nbt.ReadBorrowed[bufcursor.BigEndian](out)
	require.NoError(t, err)
	rc, ok := parsed.Root.AsCompound()
	require.True(t, ok)

	bv, _ := mustGet(t, rc, "b").AsByte()
	require.Equal(t, int8(-5), bv)
	sv, _ := mustGet(t, rc, "s").AsShort()
	require.Equal(t, int16(1000), sv)
	iv, _ := mustGet(t, rc, "i").AsInt()
	require.Equal(t, int32(-70000), iv)
	lv, _ := mustGet(t, rc, "l").AsLong()
	require.Equal(t, int64(9999999999), lv)
	fv, _ := mustGet(t, rc, "f").AsFloat()
	require.InDelta(t, float32(1.5), fv, 0.0001)
	dv, _ := mustGet(t, rc, "d").AsDouble()
	require.InDelta(t, 2.25, dv, 0.0001)
}

func mustGet(t *testing.T, c nbt.ReadonlyCompound[bufcursor.BigEndian], key string) nbt.ReadonlyValue[bufcursor.BigEndian] {
	t.Helper()
	v, ok := c.Get(key)
	require.True(t, ok, "missing key %q", key)
	return v
}

func TestWriteIntArrayFastPathMatchesForeignPath(t *testing.T) {
	values := []int32{1, 2, 3, -4, 1 << 20}

	fast := nbt.NewOwnedIntArray[bufcursor.BigEndian](values)
	var bufFast bytes.Buffer
	docFast := &nbt.OwnedDocument{Root: wrapInCompound("arr", fast)}
	require.NoError(t, nbt.Write[bufcursor.BigEndian](&bufFast, docFast))

	// Same logical values, but constructed for a different byte order than
	// the writer targets, forcing the re-encoding fallback instead of the
	// bulk-copy fast path.
	foreign := nbt.NewOwnedIntArray[bufcursor.LittleEndian](values)
	var bufForeign bytes.Buffer
	docForeign := &nbt.OwnedDocument{Root: wrapInCompound("arr", foreign)}
	require.NoError(t, nbt.Write[bufcursor.BigEndian](&bufForeign, docForeign))

	require.Equal(t, bufFast.Bytes(), bufForeign.Bytes())
}

func wrapInCompound(key string, v nbt.OwnedValue) *nbt.OwnedCompound {
	c := nbt.NewOwnedCompound()
	c.Insert(key, v)
	return c
}

func TestWriteHeterogeneousListFails(t *testing.T) {
	l := nbt.NewOwnedList(nbt.TagByte)
	l.Values = append(l.Values, nbt.OwnedByte(1), nbt.OwnedShort(2))
	doc := &nbt.OwnedDocument{Root: wrapInCompound("bad", l)}

	_, err := nbt.ToVecBE(doc)
	require.ErrorIs(t, err, nbt.ErrHeterogeneousList)
}

func TestWriteStringTooLongFails(t *testing.T) {
	big := make([]byte, 0x10000)
	for i := range big {
		big[i] = 'a'
	}
	doc := &nbt.OwnedDocument{Root: wrapInCompound("s", nbt.OwnedString(string(big)))}

	_, err := nbt.ToVecBE(doc)
	require.ErrorIs(t, err, nbt.ErrStringTooLong)
}

func TestWriteLittleEndian(t *testing.T) {
	doc := &nbt.OwnedDocument{Root: wrapInCompound("x", nbt.OwnedShort(0x1234))}
	out, err := nbt.ToVecLE(doc)
	require.NoError(t, err)

	parsed, err := nbt.ReadBorrowed[bufcursor.LittleEndian](out)
	require.NoError(t, err)
	c, _ := parsed.Root.AsCompound()
	v, _ := mustGetLE(t, c, "x").AsShort()
	require.Equal(t, int16(0x1234), v)
}

func mustGetLE(t *testing.T, c nbt.ReadonlyCompound[bufcursor.LittleEndian], key string) nbt.ReadonlyValue[bufcursor.LittleEndian] {
	t.Helper()
	v, ok := c.Get(key)
	require.True(t, ok, "missing key %q", key)
	return v
}

// TestWriteReadonlySameEndiannessRoundTrips exercises the bulk-copy fast
// path directly: writing a Readonly tree back out in its own storage
// order must reproduce the original bytes exactly, without ever
// materializing an OwnedDocument.
func TestWriteReadonlySameEndiannessRoundTrips(t *testing.T) {
	data := buildSampleBytes(t, 9)
	doc, err := nbt.ReadBorrowed[bufcursor.BigEndian](data)
	require.NoError(t, err)

	out, err := nbt.ToBytesReadonly[bufcursor.BigEndian](doc)
	require.NoError(t, err)
	require.Equal(t, data, out)
}

// TestWriteReadonlyCrossEndiannessMatchesOwnedPath checks that writing a
// Readonly tree into a different destination order produces the same
// bytes as going through ReadOwned + the owned writer, so the two write
// paths agree even when the bulk-copy shortcut cannot apply.
func TestWriteReadonlyCrossEndiannessMatchesOwnedPath(t *testing.T) {
	data := buildSampleBytes(t, 4)
	doc, err := nbt.ReadBorrowed[bufcursor.BigEndian](data)
	require.NoError(t, err)

	viaReadonly, err := nbt.ToBytesReadonly[bufcursor.LittleEndian](doc)
	require.NoError(t, err)

	owned, err := nbt.ReadOwned[bufcursor.LittleEndian, bufcursor.BigEndian](data)
	require.NoError(t, err)
	viaOwned, err := nbt.ToVecLE(owned)
	require.NoError(t, err)

	require.Equal(t, viaOwned, viaReadonly)
}

func TestWriteReadonlyRootNameOverride(t *testing.T) {
	data := buildSampleBytes(t, 1)
	doc, err := nbt.ReadBorrowed[bufcursor.BigEndian](data)
	require.NoError(t, err)

	out, err := nbt.ToBytesReadonly[bufcursor.BigEndian](doc, nbt.WithRootName("renamed"))
	require.NoError(t, err)

	parsed, err := nbt.ReadBorrowed[bufcursor.BigEndian](out)
	require.NoError(t, err)
	name, err := parsed.RootName()
	require.NoError(t, err)
	require.Equal(t, "renamed", name)
}

// overflowIntArray reports an out-of-range Len() without backing it with
// any real data, so writeForeignArray's length guard must reject it
// before ever calling Get.
type overflowIntArray struct{}

func (overflowIntArray) Kind() nbt.TagID       { return nbt.TagIntArray }
func (overflowIntArray) Len() int              { return math.MaxInt32 + 1 }
func (overflowIntArray) Get(int) (int32, bool) { return 0, false }

func TestWriteListLengthOverflowFails(t *testing.T) {
	doc := &nbt.OwnedDocument{Root: wrapInCompound("big", overflowIntArray{})}
	_, err := nbt.ToVecBE(doc)
	require.ErrorIs(t, err, nbt.ErrListLengthOverflow)
}
