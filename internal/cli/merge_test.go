package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/gxt2/internal/gxt"
	"github.com/roach88/gxt2/internal/table"
	"github.com/roach88/gxt2/internal/testutil"
)

func TestMergeCommand_ThreeArgs(t *testing.T) {
	dir := t.TempDir()
	a := writeBinary(t, dir, "a.gxt2", gxt.LittleEndian, table.MapOf(
		table.Entry{Hash: 1, Text: "old"},
		table.Entry{Hash: 2, Text: "keep"},
	))
	b := writeBinary(t, dir, "b.gxt2", gxt.LittleEndian, table.MapOf(table.Entry{Hash: 1, Text: "new"}))
	out := filepath.Join(dir, "out.gxt2")

	stdout, _, err := run(t, NewMergeCommand(testRoot(t, "text")), a, b, out, "/be")
	require.NoError(t, err)
	assert.Contains(t, stdout, "2 entries, be, 1 overridden")

	assert.Equal(t, []byte("2TXG"), testutil.ReadFile(t, out)[:4])
	want := table.MapOf(table.Entry{Hash: 1, Text: "new"}, table.Entry{Hash: 2, Text: "keep"})
	assert.True(t, want.Equal(readBinary(t, out)))
}

func TestMergeCommand_OutputFlag(t *testing.T) {
	dir := t.TempDir()
	a := writeBinary(t, dir, "a.gxt2", gxt.LittleEndian, table.MapOf(table.Entry{Hash: 1, Text: "one"}))
	b := testutil.WriteFile(t, dir, "b.csv", []byte("0x00000002,two\n"))
	c := testutil.WriteFile(t, dir, "c.oxt", []byte("Version 2 30\n{\n\tmylabel = three\n}\n"))
	out := filepath.Join(dir, "all.gxt2")

	_, _, err := run(t, NewMergeCommand(testRoot(t, "text")), "-o", out, a, b, c)
	require.NoError(t, err)

	want := table.MapOf(
		table.Entry{Hash: 1, Text: "one"},
		table.Entry{Hash: 2, Text: "two"},
		table.Entry{Hash: 0x4905A9DD, Text: "three"},
	)
	assert.True(t, want.Equal(readBinary(t, out)))
}

func TestMergeCommand_Arity(t *testing.T) {
	for _, args := range [][]string{
		{"a.gxt2"},
		{"a.gxt2", "b.gxt2"},
		{"a.gxt2", "b.gxt2", "c.gxt2", "d.gxt2"},
		{"a.gxt2", "/le"},
	} {
		_, _, err := run(t, NewMergeCommand(testRoot(t, "text")), args...)
		var usage *UsageError
		assert.ErrorAs(t, err, &usage, "%v", args)
	}
}

func TestMergeCommand_FailureIsExitError(t *testing.T) {
	dir := t.TempDir()
	a := writeBinary(t, dir, "a.gxt2", gxt.LittleEndian, table.MapOf(table.Entry{Hash: 1, Text: "x"}))
	missing := filepath.Join(dir, "missing.gxt2")

	_, _, err := run(t, NewMergeCommand(testRoot(t, "text")), a, missing, filepath.Join(dir, "out.gxt2"))
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, "failed to merge", exitErr.Message)
	assert.Equal(t, ErrCodeOpen, ErrorCode(err))
}
