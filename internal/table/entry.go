package table

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrEmbeddedNUL is returned for text values containing a NUL byte.
// NUL terminates strings in the binary heap, so such text cannot be stored.
var ErrEmbeddedNUL = errors.New("text contains NUL byte")

// ErrLineBreak is returned for text that a line-based representation
// cannot hold: a "\n" anywhere, or a trailing "\r" that would read back
// as part of a CRLF terminator.
var ErrLineBreak = errors.New("text contains line break")

// KeyLength is the width of a formatted key literal.
const KeyLength = 10

// Entry is one (hash, text) pair.
type Entry struct {
	Hash uint32
	Text string
}

func (e Entry) String() string {
	return FormatKey(e.Hash) + " = " + e.Text
}

// ValidateText rejects text that cannot be stored in a table.
func ValidateText(text string) error {
	if strings.IndexByte(text, 0) >= 0 {
		return ErrEmbeddedNUL
	}
	return nil
}

// ValidateLineText applies ValidateText and additionally rejects text
// that would not survive one entry per line.
func ValidateLineText(text string) error {
	if err := ValidateText(text); err != nil {
		return err
	}
	if strings.IndexByte(text, '\n') >= 0 || strings.HasSuffix(text, "\r") {
		return ErrLineBreak
	}
	return nil
}

// FormatKey renders a hash as "0x" followed by eight upper-case hex digits.
func FormatKey(hash uint32) string {
	return fmt.Sprintf("0x%08X", hash)
}

// ParseKey parses a "0x"-prefixed hex literal of up to eight digits.
func ParseKey(s string) (uint32, error) {
	if len(s) < 3 || s[0] != '0' || (s[1] != 'x' && s[1] != 'X') {
		return 0, fmt.Errorf("key %q: missing 0x prefix", s)
	}
	digits := s[2:]
	if len(digits) > 8 {
		return 0, fmt.Errorf("key %q: more than 8 hex digits", s)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("key %q: %w", s, err)
	}
	return uint32(v), nil
}

// HasKeyPrefix reports whether s starts like a hex key literal.
func HasKeyPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
