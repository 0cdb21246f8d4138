package table

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Filter returns the entries of m whose text contains query, in ascending
// hash order. Both sides are compared in NFC so composed and decomposed
// spellings of the same character match. An empty query matches all.
//
// Filter is for display; stored text is never normalized.
func Filter(m *Map, query string) []Entry {
	if query == "" {
		return m.Entries()
	}
	needle := norm.NFC.String(query)

	var out []Entry
	m.Each(func(hash uint32, text string) bool {
		if strings.Contains(norm.NFC.String(text), needle) {
			out = append(out, Entry{Hash: hash, Text: text})
		}
		return true
	})
	return out
}
