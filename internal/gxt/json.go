package gxt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/tidwall/jsonc"

	"github.com/roach88/gxt2/internal/table"
)

// JSONCodec is the { "0xHHHHHHHH": "text" } representation.
//
// Input may contain comments and trailing commas; they are stripped
// before decoding. Members are read in document order, so a key that
// appears twice keeps its last value. Output is one object with keys in
// ascending hash order.
type JSONCodec struct {
	settings
}

// NewJSON returns a JSON codec.
func NewJSON(opts ...Option) *JSONCodec {
	return &JSONCodec{settings: newSettings(opts)}
}

// Format implements Codec.
func (c *JSONCodec) Format() Format { return JSON }

func jsonError(dec *json.Decoder, format string, args ...any) *FormatError {
	return &FormatError{Format: JSON, Reason: fmt.Sprintf(format, args...), Offset: dec.InputOffset()}
}

// ReadEntries implements Codec. A top-level null is an empty table.
func (c *JSONCodec) ReadEntries(r io.Reader, dst *table.Map) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read json: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(raw)))

	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return jsonError(dec, "empty document")
	}
	if err != nil {
		return jsonError(dec, "%v", err)
	}
	if tok == nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return jsonError(dec, "top-level value must be an object, got %v", tok)
	}

	var seq table.Sequence
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return jsonError(dec, "%v", err)
		}
		key, _ := keyTok.(string)
		hash, err := table.ParseKey(key)
		if err != nil {
			return jsonError(dec, "%v", err)
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return jsonError(dec, "value for %s: %v", key, err)
		}
		text, ok := value.(string)
		if !ok {
			return jsonError(dec, "value for %s is %s, want string", key, jsonKind(value))
		}
		if err := table.ValidateText(text); err != nil {
			return jsonError(dec, "value for %s: %v", key, err)
		}
		seq.Append(hash, text)
	}
	if _, err := dec.Token(); err != nil {
		return jsonError(dec, "%v", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return jsonError(dec, "unexpected data after object")
	}

	c.collect(JSON, &seq, dst)
	return nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// WriteEntries implements Codec.
func (c *JSONCodec) WriteEntries(w io.Writer, src *table.Map) error {
	if err := src.Validate(); err != nil {
		return err
	}

	// Fixed-width upper-case keys sort lexically in numeric order, which
	// is the order encoding/json emits map keys in.
	obj := make(map[string]string, src.Len())
	// encoding/json replaces invalid UTF-8 with U+FFFD.
	src.Each(func(hash uint32, text string) bool {
		key := table.FormatKey(hash)
		if !utf8.ValidString(text) {
			c.logger.Warn("text is not valid UTF-8, invalid bytes written as U+FFFD", "hash", key)
		}
		obj[key] = text
		return true
	})

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", strings.Repeat(" ", c.jsonIndent))
	if err := enc.Encode(obj); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}
