package testutil

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/roach88/gxt2/internal/table"
)

// SampleEntries is the canonical fixture, in ascending hash order.
var SampleEntries = []table.Entry{
	{Hash: 0x00000001, Text: "World"},
	{Hash: 0x0000002A, Text: "Answer"},
	{Hash: 0x4905A9DD, Text: ""},
	{Hash: 0x9B22DBAF, Text: "Player, one"},
	{Hash: 0xA1B2C3D4, Text: "Hello ~r~Grüße~s~"},
}

// SampleTable returns a fresh Map holding SampleEntries.
func SampleTable() *table.Map {
	return table.MapOf(SampleEntries...)
}

// WriteFile writes data to name inside dir and returns the full path.
func WriteFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// ReadFile returns the contents of path.
func ReadFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return data
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// CaptureLogger returns a logger writing text records to w at debug level.
func CaptureLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
