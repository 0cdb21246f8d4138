package convert

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/gxt2/internal/gxt"
	"github.com/roach88/gxt2/internal/testutil"
)

func TestBatchConvertsTree(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "nested")
	require.NoError(t, os.Mkdir(sub, 0o755))

	writeBinary(t, root, "a.gxt2", gxt.LittleEndian, testutil.SampleTable())
	writeBinary(t, sub, "b.gxt2", gxt.BigEndian, testutil.SampleTable())
	testutil.WriteFile(t, sub, "broken.gxt2", []byte("not a table"))
	testutil.WriteFile(t, root, "notes.txt", []byte("ignored"))

	res, err := Batch(root, "gxt2", "json", testOptions())
	require.NoError(t, err)
	require.Len(t, res.Converted, 2)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, filepath.Join(sub, "broken.gxt2"), res.Skipped[0].Path)

	for _, r := range res.Converted {
		assert.True(t, testutil.SampleTable().Equal(readTable(t, r.Output)), r.Output)
	}
	_, err = os.Stat(filepath.Join(sub, "broken.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestBatchDefaultTarget(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, root, "a.txt", []byte("0x00000001 = one\n"))

	res, err := Batch(root, ".txt", "", testOptions())
	require.NoError(t, err)
	require.Len(t, res.Converted, 1)
	assert.Equal(t, filepath.Join(root, "a.gxt2"), res.Converted[0].Output)
}

func TestBatchRejectsBadArguments(t *testing.T) {
	_, err := Batch(t.TempDir(), "xml", "", testOptions())
	var ext *gxt.UnknownExtensionError
	require.ErrorAs(t, err, &ext)

	_, err = Batch(t.TempDir(), "gxt2", "out/dir.json", testOptions())
	require.Error(t, err)
}
