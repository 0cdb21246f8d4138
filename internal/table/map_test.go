package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_AscendingOrder(t *testing.T) {
	m := NewMap()
	m.Put(0xA1B2C3D4, "Hello")
	m.Put(0x00000001, "World")
	m.Put(0x80000000, "Mid")

	entries := m.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, []Entry{
		{Hash: 0x00000001, Text: "World"},
		{Hash: 0x80000000, Text: "Mid"},
		{Hash: 0xA1B2C3D4, Text: "Hello"},
	}, entries)
}

func TestMap_PutOverwrites(t *testing.T) {
	m := NewMap()
	m.Put(1, "first")
	m.Put(1, "second")

	got, ok := m.Get(1)
	require.True(t, ok)
	assert.Equal(t, "second", got)
	assert.Equal(t, 1, m.Len())
}

func TestMap_PutIfAbsentKeepsFirst(t *testing.T) {
	m := NewMap()
	assert.True(t, m.PutIfAbsent(1, "first"))
	assert.False(t, m.PutIfAbsent(1, "second"))

	got, _ := m.Get(1)
	assert.Equal(t, "first", got)
}

func TestMap_GetMissing(t *testing.T) {
	m := NewMap()
	got, ok := m.Get(42)
	assert.False(t, ok)
	assert.Empty(t, got)
	assert.False(t, m.Has(42))
}

func TestMap_RemoveAndClear(t *testing.T) {
	m := MapOf(Entry{1, "a"}, Entry{2, "b"})
	m.Remove(1)
	m.Remove(99)
	assert.Equal(t, 1, m.Len())
	assert.False(t, m.Has(1))

	m.Clear()
	assert.Equal(t, 0, m.Len())
}

func TestMap_MergeLaterWins(t *testing.T) {
	a := MapOf(Entry{1, "a1"}, Entry{2, "a2"})
	b := MapOf(Entry{2, "b2"}, Entry{3, "b3"})

	a.Merge(b)

	assert.True(t, a.Equal(MapOf(Entry{1, "a1"}, Entry{2, "b2"}, Entry{3, "b3"})))
}

func TestMap_CloneIsIndependent(t *testing.T) {
	m := MapOf(Entry{1, "a"})
	c := m.Clone()
	c.Put(2, "b")

	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 2, c.Len())
}

func TestMap_Equal(t *testing.T) {
	a := MapOf(Entry{1, "a"}, Entry{2, "b"})
	assert.True(t, a.Equal(MapOf(Entry{2, "b"}, Entry{1, "a"})))
	assert.False(t, a.Equal(MapOf(Entry{1, "a"}, Entry{2, "c"})))
	assert.False(t, a.Equal(MapOf(Entry{1, "a"})))
	assert.False(t, a.Equal(MapOf(Entry{1, "a"}, Entry{3, "b"})))
}

func TestMap_EachStopsEarly(t *testing.T) {
	m := MapOf(Entry{1, "a"}, Entry{2, "b"}, Entry{3, "c"})
	var seen []uint32
	m.Each(func(hash uint32, _ string) bool {
		seen = append(seen, hash)
		return hash < 2
	})
	assert.Equal(t, []uint32{1, 2}, seen)
}

func TestMap_Validate(t *testing.T) {
	assert.NoError(t, MapOf(Entry{1, "ok"}).Validate())

	err := MapOf(Entry{1, "ok"}, Entry{0x2A, "bad\x00"}).Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmbeddedNUL)

	var entryErr *EntryError
	require.ErrorAs(t, err, &entryErr)
	assert.Equal(t, uint32(0x2A), entryErr.Hash)
	assert.Contains(t, err.Error(), "0x0000002A")
}
