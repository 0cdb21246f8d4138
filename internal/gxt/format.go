package gxt

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies one on-disk representation.
type Format int

const (
	Binary Format = iota
	LineText
	JSON
	CSV
	LegacyTab
)

var formatInfo = [...]struct {
	name string
	ext  string
}{
	Binary:    {"gxt2", ".gxt2"},
	LineText:  {"txt", ".txt"},
	JSON:      {"json", ".json"},
	CSV:       {"csv", ".csv"},
	LegacyTab: {"oxt", ".oxt"},
}

// Formats lists every supported format.
func Formats() []Format {
	return []Format{Binary, LineText, JSON, CSV, LegacyTab}
}

func (f Format) valid() bool {
	return f >= Binary && f <= LegacyTab
}

func (f Format) String() string {
	if !f.valid() {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatInfo[f].name
}

// Extension returns the file extension, including the leading dot.
func (f Format) Extension() string {
	if !f.valid() {
		return ""
	}
	return formatInfo[f].ext
}

// FormatForExtension maps an extension (".json", "json", ".JSON") to a
// Format.
func FormatForExtension(ext string) (Format, error) {
	e := strings.ToLower(ext)
	if e != "" && !strings.HasPrefix(e, ".") {
		e = "." + e
	}
	for _, f := range Formats() {
		if formatInfo[f].ext == e {
			return f, nil
		}
	}
	return 0, &UnknownExtensionError{Ext: ext}
}

// FormatForPath maps a path to a Format by its extension.
func FormatForPath(path string) (Format, error) {
	return FormatForExtension(filepath.Ext(path))
}

func supportedExtensions() []string {
	exts := make([]string, 0, len(formatInfo))
	for _, f := range Formats() {
		exts = append(exts, f.Extension())
	}
	return exts
}

// NewCodec returns the codec for f.
func NewCodec(f Format, opts ...Option) (Codec, error) {
	switch f {
	case Binary:
		return NewBinary(opts...), nil
	case LineText:
		return NewLineText(opts...), nil
	case JSON:
		return NewJSON(opts...), nil
	case CSV:
		return NewCSV(opts...), nil
	case LegacyTab:
		return NewLegacyTab(opts...), nil
	default:
		return nil, fmt.Errorf("no codec for %s", f)
	}
}
