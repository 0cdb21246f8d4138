package convert

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/roach88/gxt2/internal/gxt"
)

// Skipped records a file Batch passed over.
type Skipped struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// BatchResult lists what Batch did, in walk order.
type BatchResult struct {
	Converted []*Result `json:"converted"`
	Skipped   []Skipped `json:"skipped,omitempty"`
}

// Batch converts every file below root whose extension is sourceExt.
// target is an extension as accepted by ResolveTarget; empty selects the
// default. A file that is not in the expected format is skipped and
// reported; any other failure stops the walk.
func Batch(root, sourceExt, target string, opts Options) (*BatchResult, error) {
	from, err := gxt.FormatForExtension(sourceExt)
	if err != nil {
		return nil, err
	}
	if target != "" && !isExtension(target) {
		return nil, fmt.Errorf("batch target must be an extension, got %q", target)
	}
	log := opts.logger()

	res := &BatchResult{}
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), from.Extension()) {
			return nil
		}
		conv, err := NewConverter(path, target, opts)
		if err != nil {
			return err
		}
		r, err := conv.Convert()
		if gxt.IsFormatError(err) {
			log.Warn("skipping file", "path", path, "error", err)
			res.Skipped = append(res.Skipped, Skipped{Path: path, Reason: err.Error()})
			return nil
		}
		if err != nil {
			return err
		}
		res.Converted = append(res.Converted, r)
		return nil
	})
	if err != nil {
		return res, err
	}
	return res, nil
}
