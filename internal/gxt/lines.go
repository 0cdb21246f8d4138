package gxt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/roach88/gxt2/internal/table"
)

// maxLineSize bounds a single line of a text representation.
const maxLineSize = 16 << 20

const byteOrderMark = "\uFEFF"

// scanLines calls fn for each line of r with its 1-based number. Line
// terminators ("\n" or "\r\n") are stripped, as is a UTF-8 byte order
// mark on the first line.
func scanLines(r io.Reader, fn func(n int, line string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	n := 0
	for sc.Scan() {
		n++
		line := sc.Text()
		if n == 1 {
			line = strings.TrimPrefix(line, byteOrderMark)
		}
		if err := fn(n, line); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("scan line %d: %w", n+1, err)
	}
	return nil
}

// collect resolves the entries read from a text representation into dst.
// A key repeated within one file keeps its last text.
func (s settings) collect(f Format, seq *table.Sequence, dst *table.Map) {
	for _, h := range seq.Duplicates() {
		s.logger.Debug("duplicate key, keeping last", "format", f, "hash", table.FormatKey(h))
	}
	dst.Merge(seq.ToMap())
	s.logger.Debug("read text table", "format", f, "lines", seq.Len())
}

// writeLines writes one formatted line per entry of src, in ascending
// hash order, between optional header and footer lines. Every text is
// checked with table.ValidateLineText before anything is written.
func writeLines(w io.Writer, src *table.Map, header, footer []string, line func(table.Entry) string) error {
	var err error
	src.Each(func(hash uint32, text string) bool {
		if verr := table.ValidateLineText(text); verr != nil {
			err = &table.EntryError{Hash: hash, Err: verr}
			return false
		}
		return true
	})
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for _, h := range header {
		bw.WriteString(h)
		bw.WriteByte('\n')
	}
	src.Each(func(hash uint32, text string) bool {
		bw.WriteString(line(table.Entry{Hash: hash, Text: text}))
		bw.WriteByte('\n')
		return true
	})
	for _, f := range footer {
		bw.WriteString(f)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
