package gxt

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/roach88/gxt2/internal/table"
)

// Mode is the direction a File is opened for.
type Mode int

const (
	ModeRead Mode = iota
	ModeWrite
)

func (m Mode) String() string {
	if m == ModeWrite {
		return "writing"
	}
	return "reading"
}

// ErrClosed is returned by operations on a closed File.
var ErrClosed = errors.New("gxt: file already closed")

// File binds a path, a direction and a codec. The handle is acquired by
// OpenFile and released by Close; callers defer Close right after a
// successful OpenFile so every exit path releases it.
type File struct {
	path  string
	mode  Mode
	codec Codec
	f     *os.File
}

// OpenFile opens path for mode. ModeWrite creates or truncates the file.
func OpenFile(path string, mode Mode, codec Codec) (*File, error) {
	var (
		f   *os.File
		err error
	)
	switch mode {
	case ModeRead:
		f, err = os.Open(path)
	case ModeWrite:
		f, err = os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	default:
		err = fmt.Errorf("invalid mode %d", mode)
	}
	if err != nil {
		return nil, &OpenError{Path: path, Mode: mode, Err: err}
	}
	return &File{path: path, mode: mode, codec: codec, f: f}, nil
}

// Path returns the path the file was opened with.
func (f *File) Path() string { return f.path }

// Codec returns the codec bound to the file.
func (f *File) Codec() Codec { return f.codec }

// ReadEntries decodes the whole file into dst.
func (f *File) ReadEntries(dst *table.Map) error {
	if f.f == nil {
		return ErrClosed
	}
	if f.mode != ModeRead {
		return fmt.Errorf("%s: opened for %s", f.path, f.mode)
	}
	if err := f.codec.ReadEntries(bufio.NewReader(f.f), dst); err != nil {
		return fmt.Errorf("%s: %w", f.path, err)
	}
	return nil
}

// WriteEntries encodes src into the file and syncs it to disk.
func (f *File) WriteEntries(src *table.Map) error {
	if f.f == nil {
		return ErrClosed
	}
	if f.mode != ModeWrite {
		return fmt.Errorf("%s: opened for %s", f.path, f.mode)
	}
	if err := f.codec.WriteEntries(f.f, src); err != nil {
		return fmt.Errorf("%s: %w", f.path, err)
	}
	if err := f.f.Sync(); err != nil {
		return fmt.Errorf("%s: sync: %w", f.path, err)
	}
	return nil
}

// Close releases the handle. Closing twice is a no-op.
func (f *File) Close() error {
	if f.f == nil {
		return nil
	}
	err := f.f.Close()
	f.f = nil
	return err
}
