package gxt

import (
	"io"

	"github.com/roach88/gxt2/internal/table"
)

// Line-Text columns: [0,10) key literal, [10,13) " = ", [13,end) text.
const (
	lineTextKeyEnd   = table.KeyLength
	lineTextTextFrom = table.KeyLength + len(" = ")
)

// LineTextCodec is the fixed-column "0xHHHHHHHH = text" representation.
type LineTextCodec struct {
	settings
}

// NewLineText returns a Line-Text codec.
func NewLineText(opts ...Option) *LineTextCodec {
	return &LineTextCodec{settings: newSettings(opts)}
}

// Format implements Codec.
func (c *LineTextCodec) Format() Format { return LineText }

// ReadEntries implements Codec. The separator columns are skipped by
// position and never checked.
func (c *LineTextCodec) ReadEntries(r io.Reader, dst *table.Map) error {
	var seq table.Sequence
	err := scanLines(r, func(n int, line string) error {
		if line == "" {
			return nil
		}
		if len(line) < lineTextKeyEnd {
			return lineError(LineText, n, "line shorter than key column")
		}
		hash, err := table.ParseKey(line[:lineTextKeyEnd])
		if err != nil {
			return lineError(LineText, n, "%v", err)
		}
		text := ""
		if len(line) > lineTextTextFrom {
			text = line[lineTextTextFrom:]
		}
		seq.Append(hash, text)
		return nil
	})
	if err != nil {
		return err
	}
	c.collect(LineText, &seq, dst)
	return nil
}

// WriteEntries implements Codec.
func (c *LineTextCodec) WriteEntries(w io.Writer, src *table.Map) error {
	return writeLines(w, src, nil, nil, func(e table.Entry) string {
		return table.FormatKey(e.Hash) + " = " + e.Text
	})
}
