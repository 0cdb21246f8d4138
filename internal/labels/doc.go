// Package labels is a persistent reverse lookup from string hashes to the
// labels that produced them.
//
// Tables store only hashes, so the label behind a key is unknown unless
// it has been seen before. The cache records every label it is given,
// keyed by strhash.Hash, and lets dump output show the label next to
// the hash. It is display-only: nothing in the codecs consults it.
//
// Storage is SQLite in WAL mode with a single connection. The schema is
// embedded and versioned through PRAGMA user_version.
package labels
