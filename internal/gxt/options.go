package gxt

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"strings"
)

// Endian selects the byte order of a binary file.
type Endian int

const (
	LittleEndian Endian = iota
	BigEndian
)

func (e Endian) String() string {
	if e == BigEndian {
		return "be"
	}
	return "le"
}

// ByteOrder returns the encoding/binary order for e.
func (e Endian) ByteOrder() binary.ByteOrder {
	if e == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// ParseEndian accepts "le", "be", "little", "big" and the command-line
// spellings "/le" and "/be", case-insensitively.
func ParseEndian(s string) (Endian, error) {
	switch strings.ToLower(strings.TrimPrefix(s, "/")) {
	case "le", "little":
		return LittleEndian, nil
	case "be", "big":
		return BigEndian, nil
	default:
		return 0, fmt.Errorf("invalid endianness %q: must be le or be", s)
	}
}

// DuplicatePolicy decides what a binary read does with a hash that
// appears twice in the offset table.
type DuplicatePolicy int

const (
	// DuplicateOverwrite keeps the last text seen for the hash.
	DuplicateOverwrite DuplicatePolicy = iota
	// DuplicateKeepFirst keeps the first text and logs a warning.
	DuplicateKeepFirst
)

func (p DuplicatePolicy) String() string {
	if p == DuplicateKeepFirst {
		return "keep-first"
	}
	return "overwrite"
}

// ParseDuplicatePolicy accepts "overwrite" and "keep-first".
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch strings.ToLower(s) {
	case "overwrite", "":
		return DuplicateOverwrite, nil
	case "keep-first", "keepfirst":
		return DuplicateKeepFirst, nil
	default:
		return 0, fmt.Errorf("invalid duplicate policy %q: must be overwrite or keep-first", s)
	}
}

// DefaultJSONIndent is the indent width of written JSON.
const DefaultJSONIndent = 4

type settings struct {
	endian      Endian
	duplicates  DuplicatePolicy
	strictMagic bool
	jsonIndent  int
	logger      *slog.Logger
}

func newSettings(opts []Option) settings {
	s := settings{
		endian:     LittleEndian,
		duplicates: DuplicateOverwrite,
		jsonIndent: DefaultJSONIndent,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Option configures a codec.
type Option func(*settings)

// WithEndian sets the byte order used when writing binary files.
// Reads always follow the file's magic.
func WithEndian(e Endian) Option {
	return func(s *settings) {
		s.endian = e
	}
}

// WithDuplicatePolicy sets how a binary read handles repeated hashes.
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	return func(s *settings) {
		s.duplicates = p
	}
}

// WithStrictMagic makes a mismatched second magic a *FormatError instead
// of a logged warning.
func WithStrictMagic(strict bool) Option {
	return func(s *settings) {
		s.strictMagic = strict
	}
}

// WithJSONIndent sets the number of spaces per JSON nesting level.
// Zero writes compact JSON.
func WithJSONIndent(n int) Option {
	return func(s *settings) {
		if n >= 0 {
			s.jsonIndent = n
		}
	}
}

// WithLogger sets the logger for warnings and debug output.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		s.logger = l
	}
}
