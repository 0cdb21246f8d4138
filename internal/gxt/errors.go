package gxt

import (
	"errors"
	"fmt"
	"strings"
)

// FormatError reports input that does not match the codec's layout.
type FormatError struct {
	// Format is the codec that rejected the input.
	Format Format

	// Reason is a human-readable description.
	Reason string

	// Line is the 1-based line number for line-oriented formats, 0 otherwise.
	Line int

	// Offset is the byte offset for the binary format, -1 when unknown.
	Offset int64
}

func (e *FormatError) Error() string {
	switch {
	case e.Line > 0:
		return fmt.Sprintf("%s: line %d: %s", e.Format, e.Line, e.Reason)
	case e.Offset >= 0:
		return fmt.Sprintf("%s: offset %d: %s", e.Format, e.Offset, e.Reason)
	default:
		return fmt.Sprintf("%s: %s", e.Format, e.Reason)
	}
}

// IsFormatError reports whether err is, or wraps, a *FormatError.
func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

func binaryError(offset int64, format string, args ...any) *FormatError {
	return &FormatError{Format: Binary, Reason: fmt.Sprintf(format, args...), Offset: offset}
}

func lineError(f Format, line int, format string, args ...any) *FormatError {
	return &FormatError{Format: f, Reason: fmt.Sprintf(format, args...), Line: line, Offset: -1}
}

// OpenError reports a file that could not be opened.
type OpenError struct {
	Path string
	Mode Mode
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open %s for %s: %v", e.Path, e.Mode, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// UnknownExtensionError reports a path whose extension maps to no codec.
type UnknownExtensionError struct {
	Ext string
}

func (e *UnknownExtensionError) Error() string {
	if e.Ext == "" {
		return "unknown file format: no extension"
	}
	return fmt.Sprintf("unknown file format %q (supported: %s)", e.Ext, strings.Join(supportedExtensions(), ", "))
}
