package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/roach88/gxt2/internal/gxt"
	"github.com/roach88/gxt2/internal/table"
	"github.com/roach88/gxt2/internal/testutil"
)

// testRoot returns options isolated from any config in the environment.
func testRoot(t *testing.T, format string) *RootOptions {
	t.Helper()
	dir := t.TempDir()
	cfg := testutil.WriteFile(t, dir, "gxt2.yaml", []byte("labels_db: "+filepath.Join(dir, "labels.db")+"\n"))
	return &RootOptions{Format: format, ConfigPath: cfg}
}

// run executes cmd with args and returns stdout and stderr.
func run(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeBinary(t *testing.T, dir, name string, endian gxt.Endian, m *table.Map) string {
	t.Helper()
	data, err := gxt.NewBinary(gxt.WithEndian(endian)).Encode(m)
	require.NoError(t, err)
	return testutil.WriteFile(t, dir, name, data)
}

func readBinary(t *testing.T, path string) *table.Map {
	t.Helper()
	m := table.NewMap()
	require.NoError(t, gxt.NewBinary(gxt.WithLogger(testutil.DiscardLogger())).ReadEntries(bytes.NewReader(testutil.ReadFile(t, path)), m))
	return m
}
