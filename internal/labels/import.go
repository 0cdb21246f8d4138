package labels

import (
	"context"
	"fmt"
	"os"

	"github.com/roach88/gxt2/internal/gxt"
	"github.com/roach88/gxt2/internal/strhash"
	"github.com/roach88/gxt2/internal/table"
)

// ImportStats counts what ImportTable did.
type ImportStats struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

// ImportTable records the texts of a table whose texts are the labels
// of their own keys, as found in label dictionaries shipped alongside
// game data. Entries whose text does not hash to the key are skipped.
func (c *Cache) ImportTable(ctx context.Context, m *table.Map, source string) (ImportStats, error) {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return ImportStats{}, fmt.Errorf("begin import: %w", err)
	}
	defer tx.Rollback()

	var stats ImportStats
	for _, e := range m.Entries() {
		if e.Text == "" || strhash.Hash(e.Text) != e.Hash {
			stats.Skipped++
			continue
		}
		if _, err := c.add(ctx, tx, e.Text, source); err != nil {
			return ImportStats{}, err
		}
		stats.Imported++
	}
	if err := tx.Commit(); err != nil {
		return ImportStats{}, fmt.Errorf("commit import: %w", err)
	}
	return stats, nil
}

// ImportBinary reads the binary table at path and imports it with
// ImportTable.
func (c *Cache) ImportBinary(ctx context.Context, path string, opts ...gxt.Option) (ImportStats, error) {
	f, err := gxt.OpenFile(path, gxt.ModeRead, gxt.NewBinary(opts...))
	if err != nil {
		return ImportStats{}, err
	}
	defer f.Close()

	m := table.NewMap()
	if err := f.ReadEntries(m); err != nil {
		return ImportStats{}, err
	}
	return c.ImportTable(ctx, m, path)
}

// ImportFile imports path by extension: binary tables through
// ImportBinary, anything else as one label per line.
func (c *Cache) ImportFile(ctx context.Context, path string, opts ...gxt.Option) (ImportStats, error) {
	if f, err := gxt.FormatForPath(path); err == nil && f == gxt.Binary {
		return c.ImportBinary(ctx, path, opts...)
	}
	r, err := os.Open(path)
	if err != nil {
		return ImportStats{}, &gxt.OpenError{Path: path, Mode: gxt.ModeRead, Err: err}
	}
	defer r.Close()
	n, err := c.ImportLines(ctx, r, path)
	return ImportStats{Imported: n}, err
}
