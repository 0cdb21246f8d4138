package labels

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/gxt2/internal/gxt"
	"github.com/roach88/gxt2/internal/strhash"
	"github.com/roach88/gxt2/internal/table"
	"github.com/roach88/gxt2/internal/testutil"
)

func openCache(t *testing.T) (*Cache, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "labels.db")
	c, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c, path
}

func TestOpen_CreatesDatabase(t *testing.T) {
	_, path := openCache(t)
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.db")
	for i := 0; i < 3; i++ {
		c, err := Open(path)
		require.NoError(t, err, "iteration %d", i)
		require.NoError(t, c.Close())
	}
}

func TestOpen_Pragmas(t *testing.T) {
	c, _ := openCache(t)

	var mode string
	require.NoError(t, c.db.QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)

	var version int
	require.NoError(t, c.db.QueryRow("PRAGMA user_version").Scan(&version))
	assert.Equal(t, currentSchemaVersion, version)
}

func TestAddAndLookup(t *testing.T) {
	ctx := context.Background()
	c, _ := openCache(t)

	hash, err := c.Add(ctx, "mylabel")
	require.NoError(t, err)
	assert.Equal(t, uint32(0x4905A9DD), hash)

	label, ok, err := c.Lookup(ctx, hash)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "mylabel", label)

	_, ok, err = c.Lookup(ctx, strhash.Hash("MYLABEL"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAdd_DuplicateIsNoop(t *testing.T) {
	ctx := context.Background()
	c, _ := openCache(t)

	_, err := c.Add(ctx, "HELLO")
	require.NoError(t, err)
	_, err = c.Add(ctx, "HELLO")
	require.NoError(t, err)

	n, err := c.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestAdd_Empty(t *testing.T) {
	c, _ := openCache(t)
	_, err := c.Add(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyLabel)
}

func TestLookup_HighBitHash(t *testing.T) {
	ctx := context.Background()
	c, _ := openCache(t)

	hash, err := c.Add(ctx, "player_one")
	require.NoError(t, err)
	require.Equal(t, uint32(0x9B22DBAF), hash)

	label, ok, err := c.Lookup(ctx, 0x9B22DBAF)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "player_one", label)
}

func TestImportLines(t *testing.T) {
	ctx := context.Background()
	c, _ := openCache(t)

	n, err := c.ImportLines(ctx, strings.NewReader("HELLO\n\n  mylabel  \r\nplayer_one\n"), "test")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	label, ok, err := c.Lookup(ctx, 0x4905A9DD)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "mylabel", label)
}

func TestImportBinary(t *testing.T) {
	ctx := context.Background()
	c, _ := openCache(t)

	m := table.MapOf(
		table.Entry{Hash: strhash.Hash("HELLO"), Text: "HELLO"},
		table.Entry{Hash: strhash.Hash("mylabel"), Text: "mylabel"},
		table.Entry{Hash: 1, Text: "not a label"},
	)
	data, err := gxt.NewBinary().Encode(m)
	require.NoError(t, err)
	path := testutil.WriteFile(t, t.TempDir(), "labels.gxt2", data)

	stats, err := c.ImportFile(ctx, path, gxt.WithLogger(testutil.DiscardLogger()))
	require.NoError(t, err)
	assert.Equal(t, ImportStats{Imported: 2, Skipped: 1}, stats)

	n, err := c.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestImportFile_Missing(t *testing.T) {
	c, _ := openCache(t)
	_, err := c.ImportFile(context.Background(), filepath.Join(t.TempDir(), "none.txt"))

	var open *gxt.OpenError
	assert.ErrorAs(t, err, &open)
}

func TestOpen_CreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "labels.db")
	c, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, c.Close())
	_, err = os.Stat(path)
	assert.NoError(t, err)
}
