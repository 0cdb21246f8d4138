package gxt

import (
	"io"
	"strings"

	"github.com/roach88/gxt2/internal/strhash"
	"github.com/roach88/gxt2/internal/table"
)

// Sentinel lines framing a legacy tab file.
const (
	oxtVersion = "Version 2 30"
	oxtOpen    = "{"
	oxtClose   = "}"
	oxtSep     = " = "
)

// LegacyTabCodec is the tab-indented .oxt representation:
//
//	Version 2 30
//	{
//		0x0000002A = text
//		mylabel = text
//	}
//
// It is the only format whose keys may be labels instead of hashes; a key
// without a 0x prefix is hashed with strhash.Hash.
type LegacyTabCodec struct {
	settings
}

// NewLegacyTab returns a legacy tab codec.
func NewLegacyTab(opts ...Option) *LegacyTabCodec {
	return &LegacyTabCodec{settings: newSettings(opts)}
}

// Format implements Codec.
func (c *LegacyTabCodec) Format() Format { return LegacyTab }

// ReadEntries implements Codec.
func (c *LegacyTabCodec) ReadEntries(r io.Reader, dst *table.Map) error {
	var seq table.Sequence
	err := scanLines(r, func(n int, line string) error {
		switch strings.TrimSpace(line) {
		case "", oxtVersion, oxtOpen, oxtClose:
			return nil
		}

		body := strings.TrimLeft(line, "\t ")
		sep := strings.Index(body, oxtSep)
		if sep < 0 {
			return lineError(LegacyTab, n, "missing %q separator", oxtSep)
		}
		key := strings.TrimSpace(body[:sep])
		if key == "" {
			return lineError(LegacyTab, n, "empty key")
		}

		var hash uint32
		if table.HasKeyPrefix(key) {
			h, err := table.ParseKey(key)
			if err != nil {
				return lineError(LegacyTab, n, "%v", err)
			}
			hash = h
		} else {
			hash = strhash.Hash(key)
			c.logger.Debug("hashed label key", "label", key, "hash", table.FormatKey(hash))
		}
		seq.Append(hash, body[sep+len(oxtSep):])
		return nil
	})
	if err != nil {
		return err
	}
	c.collect(LegacyTab, &seq, dst)
	return nil
}

// WriteEntries implements Codec.
func (c *LegacyTabCodec) WriteEntries(w io.Writer, src *table.Map) error {
	header := []string{oxtVersion, oxtOpen}
	footer := []string{oxtClose}
	return writeLines(w, src, header, footer, func(e table.Entry) string {
		return "\t" + table.FormatKey(e.Hash) + oxtSep + e.Text
	})
}
