package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequence_PreservesInsertionOrder(t *testing.T) {
	var s Sequence
	s.Append(3, "c")
	s.Append(1, "a")
	s.Append(3, "c2")

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []Entry{{3, "c"}, {1, "a"}, {3, "c2"}}, s.Entries())
}

func TestSequence_ToMapLastWins(t *testing.T) {
	var s Sequence
	s.Append(3, "c")
	s.Append(1, "a")
	s.Append(3, "c2")

	m := s.ToMap()
	assert.Equal(t, 2, m.Len())
	got, _ := m.Get(3)
	assert.Equal(t, "c2", got)
	assert.Equal(t, []Entry{{1, "a"}, {3, "c2"}}, m.Entries())
}

func TestSequence_Duplicates(t *testing.T) {
	var s Sequence
	s.Append(1, "a")
	s.Append(2, "b")
	s.Append(1, "a2")
	s.Append(1, "a3")
	s.Append(2, "b2")

	assert.Equal(t, []uint32{1, 2}, s.Duplicates())
}

func TestSequence_EntriesIsCopy(t *testing.T) {
	var s Sequence
	s.Append(1, "a")
	entries := s.Entries()
	entries[0].Text = "mutated"

	assert.Equal(t, "a", s.Entries()[0].Text)
}
