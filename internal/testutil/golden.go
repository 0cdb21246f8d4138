package testutil

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// AssertGolden compares data byte for byte with testdata/golden/<name>.golden.
func AssertGolden(t *testing.T, name string, data []byte) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
}

// Golden returns the expected bytes stored for name, for tests that feed
// a golden file back into a reader.
func Golden(t *testing.T, name string) []byte {
	t.Helper()
	return ReadFile(t, "testdata/golden/"+name+".golden")
}
