package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/gxt2/internal/gxt"
	"github.com/roach88/gxt2/internal/table"
	"github.com/roach88/gxt2/internal/testutil"
)

func TestConvertCommand_DefaultTarget(t *testing.T) {
	dir := t.TempDir()
	src := writeBinary(t, dir, "sample.gxt2", gxt.LittleEndian, testutil.SampleTable())

	out, _, err := run(t, NewConvertCommand(testRoot(t, "text")), src)
	require.NoError(t, err)
	assert.Contains(t, out, "sample.json")
	assert.Contains(t, out, "5 entries")

	var obj map[string]string
	require.NoError(t, json.Unmarshal(testutil.ReadFile(t, filepath.Join(dir, "sample.json")), &obj))
	assert.Equal(t, "Answer", obj["0x0000002A"])
}

func TestConvertCommand_BigEndian(t *testing.T) {
	dir := t.TempDir()
	src := testutil.WriteFile(t, dir, "scenario.txt", []byte("0x0000002A = Answer\n"))

	out, _, err := run(t, NewConvertCommand(testRoot(t, "json")), src, "/be")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	data := testutil.ReadFile(t, filepath.Join(dir, "scenario.gxt2"))
	assert.Equal(t, []byte("2TXG"), data[:4])
	assert.True(t, table.MapOf(table.Entry{Hash: 0x2A, Text: "Answer"}).Equal(readBinary(t, filepath.Join(dir, "scenario.gxt2"))))
}

func TestConvertCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		args []string
	}{
		{"no args", nil},
		{"too many", []string{"a.gxt2", "b.gxt2"}},
		{"bad endian", []string{"a.gxt2", "/mid"}},
		{"unknown extension", []string{filepath.Join(dir, "a.bin")}},
		{"missing file", []string{filepath.Join(dir, "missing.gxt2")}},
		{"not a table", []string{testutil.WriteFile(t, dir, "junk.gxt2", []byte("junkjunk"))}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, NewConvertCommand(testRoot(t, "text")), tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitFailure, GetExitCode(err))
		})
	}
}

func TestConvertCommand_StrictMagic(t *testing.T) {
	dir := t.TempDir()
	data, err := gxt.NewBinary().Encode(testutil.SampleTable())
	require.NoError(t, err)
	second := 8 + 8*len(testutil.SampleEntries)
	copy(data[second:], "XXXX")
	src := testutil.WriteFile(t, dir, "loose.gxt2", data)

	_, stderr, err := run(t, NewConvertCommand(testRoot(t, "text")), src)
	require.NoError(t, err)
	assert.Contains(t, stderr, "second magic mismatch")

	root := testRoot(t, "text")
	root.StrictMagic = true
	_, _, err = run(t, NewConvertCommand(root), src)
	require.Error(t, err)
	assert.Equal(t, ErrCodeFormat, ErrorCode(err))
}

func TestConvertCommand_FailureIsExitError(t *testing.T) {
	dir := t.TempDir()
	src := testutil.WriteFile(t, dir, "junk.gxt2", []byte("junkjunk"))

	_, _, err := run(t, NewConvertCommand(testRoot(t, "text")), src)
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitFailure, exitErr.Code)
	assert.Contains(t, exitErr.Message, "failed to convert")
	assert.True(t, gxt.IsFormatError(err))
	assert.Equal(t, ErrCodeFormat, ErrorCode(err))
}

func TestConvertCommand_VerboseProgressOnStderr(t *testing.T) {
	dir := t.TempDir()
	src := writeBinary(t, dir, "sample.gxt2", gxt.LittleEndian, testutil.SampleTable())

	root := testRoot(t, "json")
	root.Verbose = true
	out, stderr, err := run(t, NewConvertCommand(root), src, "--to", "txt")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Converting "+src)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	root = testRoot(t, "text")
	_, stderr, err = run(t, NewConvertCommand(root), src, "--to", "csv")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "Converting")
}
