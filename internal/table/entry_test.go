package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatKey(t *testing.T) {
	assert.Equal(t, "0x0000002A", FormatKey(0x2A))
	assert.Equal(t, "0xA1B2C3D4", FormatKey(0xA1B2C3D4))
	assert.Equal(t, "0x00000000", FormatKey(0))
	assert.Len(t, FormatKey(0xFFFFFFFF), KeyLength)
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{"0x0000002A", 0x2A, false},
		{"0XA1B2C3D4", 0xA1B2C3D4, false},
		{"0xa1b2c3d4", 0xA1B2C3D4, false},
		{"0x1", 1, false},
		{"0xFFFFFFFF", 0xFFFFFFFF, false},
		{"0x", 0, true},
		{"2A", 0, true},
		{"0x123456789", 0, true},
		{"0xZZ", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKey(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseKey_FormatKeyInverse(t *testing.T) {
	for _, h := range []uint32{0, 1, 0x2A, 0x80000000, 0xDEADBEEF, 0xFFFFFFFF} {
		got, err := ParseKey(FormatKey(h))
		require.NoError(t, err)
		assert.Equal(t, h, got)
	}
}

func TestValidateText(t *testing.T) {
	assert.NoError(t, ValidateText(""))
	assert.NoError(t, ValidateText("Hello ~r~world"))
	assert.ErrorIs(t, ValidateText("bad\x00text"), ErrEmbeddedNUL)
}

func TestValidateLineText(t *testing.T) {
	assert.NoError(t, ValidateLineText("Hello, world = 1"))
	assert.NoError(t, ValidateLineText("carriage\rinside"))
	assert.ErrorIs(t, ValidateLineText("line1\nline2"), ErrLineBreak)
	assert.ErrorIs(t, ValidateLineText("trailing\n"), ErrLineBreak)
	assert.ErrorIs(t, ValidateLineText("crlf\r"), ErrLineBreak)
	assert.ErrorIs(t, ValidateLineText("nul\x00"), ErrEmbeddedNUL)
}

func TestEntryString(t *testing.T) {
	assert.Equal(t, "0x0000002A = Answer", Entry{Hash: 0x2A, Text: "Answer"}.String())
}
