package table

// Sequence is an insertion-ordered list of entries. Duplicate hashes are
// kept until ToMap resolves them.
type Sequence struct {
	entries []Entry
}

// Append adds an entry at the end.
func (s *Sequence) Append(hash uint32, text string) {
	s.entries = append(s.entries, Entry{Hash: hash, Text: text})
}

// Len returns the number of entries, duplicates included.
func (s *Sequence) Len() int {
	return len(s.entries)
}

// Entries returns the entries in insertion order.
func (s *Sequence) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Duplicates returns the hashes that occur more than once, in order of
// their second occurrence.
func (s *Sequence) Duplicates() []uint32 {
	seen := make(map[uint32]int, len(s.entries))
	var dups []uint32
	for _, e := range s.entries {
		seen[e.Hash]++
		if seen[e.Hash] == 2 {
			dups = append(dups, e.Hash)
		}
	}
	return dups
}

// ToMap resolves the sequence into a Map. For a repeated hash the last
// text wins.
func (s *Sequence) ToMap() *Map {
	m := NewMap()
	for _, e := range s.entries {
		m.Put(e.Hash, e.Text)
	}
	return m
}
