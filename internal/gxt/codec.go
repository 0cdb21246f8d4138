package gxt

import (
	"io"

	"github.com/roach88/gxt2/internal/table"
)

// Codec reads and writes one representation of a text table.
//
// ReadEntries consumes the whole stream and inserts its entries into dst.
// WriteEntries serializes src in ascending hash order. Neither keeps a
// reference to the table after returning.
type Codec interface {
	Format() Format
	ReadEntries(r io.Reader, dst *table.Map) error
	WriteEntries(w io.Writer, src *table.Map) error
}
