// Package table holds the in-memory form of a GXT text table.
//
// A table comes in two shapes:
//   - Map: one text per hash, always iterated in ascending hash order.
//     The binary writer relies on this order for its offset table.
//   - Sequence: (hash, text) pairs in insertion order, duplicates
//     allowed. Importers collect into a Sequence before collisions are
//     resolved.
//
// The only conversion is Sequence.ToMap, where the last entry seen for a
// hash wins.
//
// Keys are written as fixed-width literals ("0x0000002A") in every text
// representation; FormatKey and ParseKey are the single source of that
// spelling.
package table
