package table

import (
	"github.com/emirpasic/gods/maps/treemap"
)

// Map is the sorted hash->text store.
// Use NewMap; the zero value is not usable.
type Map struct {
	tree *treemap.Map
}

// compareHash orders treemap keys numerically.
func compareHash(a, b interface{}) int {
	x, y := a.(uint32), b.(uint32)
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{tree: treemap.NewWith(compareHash)}
}

// MapOf builds a Map from entries; later entries overwrite earlier ones.
func MapOf(entries ...Entry) *Map {
	m := NewMap()
	for _, e := range entries {
		m.Put(e.Hash, e.Text)
	}
	return m
}

// Put stores text under hash, replacing any previous value.
func (m *Map) Put(hash uint32, text string) {
	m.tree.Put(hash, text)
}

// PutIfAbsent stores text only when hash is not present yet.
// It reports whether the value was stored.
func (m *Map) PutIfAbsent(hash uint32, text string) bool {
	if _, found := m.tree.Get(hash); found {
		return false
	}
	m.tree.Put(hash, text)
	return true
}

// Get returns the text stored for hash.
func (m *Map) Get(hash uint32) (string, bool) {
	v, found := m.tree.Get(hash)
	if !found {
		return "", false
	}
	return v.(string), true
}

// Has reports whether hash is present.
func (m *Map) Has(hash uint32) bool {
	_, found := m.tree.Get(hash)
	return found
}

// Remove deletes hash. Removing a missing hash is a no-op.
func (m *Map) Remove(hash uint32) {
	m.tree.Remove(hash)
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return m.tree.Size()
}

// Clear removes all entries.
func (m *Map) Clear() {
	m.tree.Clear()
}

// Each calls fn for every entry in ascending hash order.
// Iteration stops early when fn returns false.
func (m *Map) Each(fn func(hash uint32, text string) bool) {
	it := m.tree.Iterator()
	for it.Next() {
		if !fn(it.Key().(uint32), it.Value().(string)) {
			return
		}
	}
}

// Entries returns all entries in ascending hash order.
func (m *Map) Entries() []Entry {
	entries := make([]Entry, 0, m.Len())
	m.Each(func(hash uint32, text string) bool {
		entries = append(entries, Entry{Hash: hash, Text: text})
		return true
	})
	return entries
}

// Merge inserts every entry of other into m. On a shared hash the value
// from other wins.
func (m *Map) Merge(other *Map) {
	other.Each(func(hash uint32, text string) bool {
		m.Put(hash, text)
		return true
	})
}

// Clone returns an independent copy of m.
func (m *Map) Clone() *Map {
	c := NewMap()
	c.Merge(m)
	return c
}

// Equal reports whether both maps hold the same (hash, text) pairs.
func (m *Map) Equal(other *Map) bool {
	if m.Len() != other.Len() {
		return false
	}
	equal := true
	m.Each(func(hash uint32, text string) bool {
		got, ok := other.Get(hash)
		if !ok || got != text {
			equal = false
			return false
		}
		return true
	})
	return equal
}

// Validate checks every text value with ValidateText and returns the
// first offending entry's error.
func (m *Map) Validate() error {
	var err error
	m.Each(func(hash uint32, text string) bool {
		if verr := ValidateText(text); verr != nil {
			err = &EntryError{Hash: hash, Err: verr}
			return false
		}
		return true
	})
	return err
}

// EntryError attributes an error to one entry.
type EntryError struct {
	Hash uint32
	Err  error
}

func (e *EntryError) Error() string {
	return FormatKey(e.Hash) + ": " + e.Err.Error()
}

func (e *EntryError) Unwrap() error {
	return e.Err
}
