package gxt

import (
	"io"

	"github.com/roach88/gxt2/internal/table"
)

// CSV columns: [0,10) key literal, [10] comma, [11,end) text.
const csvTextFrom = table.KeyLength + 1

// CSVCodec is the "0xHHHHHHHH,text" representation.
//
// Text is written verbatim: commas and quotes are neither quoted nor
// escaped, and everything after the first comma is text on read. Files
// from spreadsheet tools that quote fields will keep their quotes.
type CSVCodec struct {
	settings
}

// NewCSV returns a CSV codec.
func NewCSV(opts ...Option) *CSVCodec {
	return &CSVCodec{settings: newSettings(opts)}
}

// Format implements Codec.
func (c *CSVCodec) Format() Format { return CSV }

// ReadEntries implements Codec.
func (c *CSVCodec) ReadEntries(r io.Reader, dst *table.Map) error {
	var seq table.Sequence
	err := scanLines(r, func(n int, line string) error {
		if line == "" {
			return nil
		}
		if len(line) < table.KeyLength {
			return lineError(CSV, n, "line shorter than key column")
		}
		hash, err := table.ParseKey(line[:table.KeyLength])
		if err != nil {
			return lineError(CSV, n, "%v", err)
		}
		text := ""
		if len(line) > csvTextFrom {
			text = line[csvTextFrom:]
		}
		seq.Append(hash, text)
		return nil
	})
	if err != nil {
		return err
	}
	c.collect(CSV, &seq, dst)
	return nil
}

// WriteEntries implements Codec.
func (c *CSVCodec) WriteEntries(w io.Writer, src *table.Map) error {
	return writeLines(w, src, nil, nil, func(e table.Entry) string {
		return table.FormatKey(e.Hash) + "," + e.Text
	})
}
