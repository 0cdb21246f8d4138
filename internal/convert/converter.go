package convert

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/roach88/gxt2/internal/gxt"
	"github.com/roach88/gxt2/internal/table"
)

// Result summarizes one completed operation.
type Result struct {
	Inputs       []string `json:"inputs"`
	Output       string   `json:"output"`
	InputFormat  string   `json:"input_format,omitempty"`
	OutputFormat string   `json:"output_format"`
	Entries      int      `json:"entries"`
	Endian       string   `json:"endian,omitempty"`
	Overridden   int      `json:"overridden,omitempty"`
}

// DefaultTarget returns the format a source converts to when no target
// is named: JSON for binary tables, binary for everything else.
func DefaultTarget(source gxt.Format) gxt.Format {
	if source == gxt.Binary {
		return gxt.JSON
	}
	return gxt.Binary
}

// ResolveTarget works out the output of converting source.
//
// target may be empty (default format, same base name), an extension
// ("json" or ".json", same base name) or a path whose extension selects
// the format. Unknown extensions fail before any file is touched.
func ResolveTarget(source, target string) (from, to gxt.Format, output string, err error) {
	from, err = gxt.FormatForPath(source)
	if err != nil {
		return 0, 0, "", err
	}
	base := strings.TrimSuffix(source, filepath.Ext(source))

	switch {
	case target == "":
		to = DefaultTarget(from)
		output = base + to.Extension()
	case isExtension(target):
		to, err = gxt.FormatForExtension(target)
		if err != nil {
			return 0, 0, "", err
		}
		output = base + to.Extension()
	default:
		to, err = gxt.FormatForPath(target)
		if err != nil {
			return 0, 0, "", err
		}
		output = target
	}
	return from, to, output, nil
}

func isExtension(target string) bool {
	if strings.ContainsAny(target, `/\`) {
		return false
	}
	ext := filepath.Ext(target)
	return ext == "" || ext == target
}

// Converter moves one table between two representations.
type Converter struct {
	Source       string
	Output       string
	SourceFormat gxt.Format
	OutputFormat gxt.Format

	opts Options
}

// NewConverter resolves source and target (see ResolveTarget).
func NewConverter(source, target string, opts Options) (*Converter, error) {
	from, to, output, err := ResolveTarget(source, target)
	if err != nil {
		return nil, err
	}
	return &Converter{
		Source:       source,
		Output:       output,
		SourceFormat: from,
		OutputFormat: to,
		opts:         opts,
	}, nil
}

// Convert reads the source completely, then writes the output. A failed
// read aborts before the output is opened.
func (c *Converter) Convert() (*Result, error) {
	log := c.opts.logger()

	in, err := c.opts.codec(c.SourceFormat, gxt.LittleEndian)
	if err != nil {
		return nil, err
	}
	entries := table.NewMap()
	log.Debug("reading", "path", c.Source, "format", c.SourceFormat)
	if err := ReadFile(c.Source, in, entries); err != nil {
		return nil, fmt.Errorf("failed to read content: %w", err)
	}

	endian := c.opts.outputEndian(detectedEndian(in))
	out, err := c.opts.codec(c.OutputFormat, endian)
	if err != nil {
		return nil, err
	}
	log.Debug("writing", "path", c.Output, "format", c.OutputFormat, "entries", entries.Len())
	if err := WriteFile(c.Output, out, entries); err != nil {
		return nil, fmt.Errorf("failed to save content: %w", err)
	}

	res := &Result{
		Inputs:       []string{c.Source},
		Output:       c.Output,
		InputFormat:  c.SourceFormat.String(),
		OutputFormat: c.OutputFormat.String(),
		Entries:      entries.Len(),
	}
	if c.OutputFormat == gxt.Binary {
		res.Endian = endian.String()
	}
	log.Info("converted", "from", c.Source, "to", c.Output, "entries", res.Entries)
	return res, nil
}
