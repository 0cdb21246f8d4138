package convert

import (
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/roach88/gxt2/internal/gxt"
	"github.com/roach88/gxt2/internal/table"
)

// ReadFile decodes path with codec into dst.
func ReadFile(path string, codec gxt.Codec, dst *table.Map) error {
	f, err := gxt.OpenFile(path, gxt.ModeRead, codec)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.ReadEntries(dst)
}

// WriteFile encodes src with codec into path. The table goes to a
// uniquely named sibling first and is renamed over path once complete.
func WriteFile(path string, codec gxt.Codec, src *table.Map) (err error) {
	tmp := path + ".tmp-" + uuid.NewString()
	f, err := gxt.OpenFile(tmp, gxt.ModeWrite, codec)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if err := f.WriteEntries(src); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

// detectedEndian returns the byte order a binary codec found on read.
func detectedEndian(c gxt.Codec) *gxt.Endian {
	if b, ok := c.(*gxt.BinaryCodec); ok {
		e := b.DetectedEndian()
		return &e
	}
	return nil
}
