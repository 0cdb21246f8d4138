// Package testutil provides fixtures shared by the package tests: a
// sample table covering the awkward cases (empty text, commas, non-ASCII,
// keys at both ends of the hash range), temp-file helpers, a silent
// logger and golden-file assertions.
//
// Golden files live in testdata/golden of the calling package. To
// regenerate them run:
//
//	go test ./internal/... -update
package testutil
