package nbt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nullab-io/nbt"
)

func TestOwnedListSetOverwritesInPlace(t *testing.T) {
	l := nbt.NewOwnedList(nbt.TagByte)
	l.Append(nbt.OwnedByte(1))
	l.Append(nbt.OwnedByte(2))
	l.Append(nbt.OwnedByte(3))

	require.True(t, l.Set(1, nbt.OwnedByte(9)))
	v, ok := l.Get(1)
	require.True(t, ok)
	require.Equal(t, nbt.OwnedByte(9), v)
	require.Equal(t, 3, l.Len())

	require.False(t, l.Set(-1, nbt.OwnedByte(0)))
	require.False(t, l.Set(3, nbt.OwnedByte(0)))
}

func TestOwnedListRemovePreservesOrder(t *testing.T) {
	l := nbt.NewOwnedList(nbt.TagByte)
	l.Append(nbt.OwnedByte(1))
	l.Append(nbt.OwnedByte(2))
	l.Append(nbt.OwnedByte(3))

	require.True(t, l.Remove(1))
	require.Equal(t, 2, l.Len())
	first, _ := l.Get(0)
	second, _ := l.Get(1)
	require.Equal(t, nbt.OwnedByte(1), first)
	require.Equal(t, nbt.OwnedByte(3), second)

	require.False(t, l.Remove(5))
}
