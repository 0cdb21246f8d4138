package convert

import (
	"errors"
	"fmt"

	"github.com/roach88/gxt2/internal/gxt"
	"github.com/roach88/gxt2/internal/table"
)

// ErrTooFewInputs is returned when a merge names fewer than two inputs.
var ErrTooFewInputs = errors.New("merge needs at least two inputs")

type source struct {
	path   string
	format gxt.Format
}

// Merger writes the union of several tables. Inputs are applied in
// order; on a hash present in more than one input the later text wins.
// That is precedence, not an error.
type Merger struct {
	inputs []source
	output source
	opts   Options
}

// NewMerger merges two binary tables into a binary output. The binary
// codec is used for all three paths whatever their extensions.
func NewMerger(first, second, output string, opts Options) *Merger {
	return &Merger{
		inputs: []source{{first, gxt.Binary}, {second, gxt.Binary}},
		output: source{output, gxt.Binary},
		opts:   opts,
	}
}

// NewMultiMerger merges any number (at least two) of tables, choosing
// each codec by extension. Extensions are checked before any I/O.
func NewMultiMerger(output string, inputs []string, opts Options) (*Merger, error) {
	if len(inputs) < 2 {
		return nil, ErrTooFewInputs
	}
	m := &Merger{opts: opts}
	for _, path := range inputs {
		f, err := gxt.FormatForPath(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		m.inputs = append(m.inputs, source{path, f})
	}
	f, err := gxt.FormatForPath(output)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", output, err)
	}
	m.output = source{output, f}
	return m, nil
}

// Run reads every input, aborting on the first failure, then writes the
// merged table once.
func (m *Merger) Run() (*Result, error) {
	log := m.opts.logger()

	var firstEndian *gxt.Endian
	tables := make([]*table.Map, len(m.inputs))
	for i, in := range m.inputs {
		codec, err := m.opts.codec(in.format, gxt.LittleEndian)
		if err != nil {
			return nil, err
		}
		tables[i] = table.NewMap()
		if err := ReadFile(in.path, codec, tables[i]); err != nil {
			return nil, fmt.Errorf("failed to read content: %w", err)
		}
		if firstEndian == nil {
			firstEndian = detectedEndian(codec)
		}
		log.Debug("read merge input", "path", in.path, "entries", tables[i].Len())
	}

	merged := table.NewMap()
	overridden := 0
	for i, t := range tables {
		t.Each(func(hash uint32, text string) bool {
			if prev, ok := merged.Get(hash); ok && prev != text {
				overridden++
				log.Debug("merge override", "hash", table.FormatKey(hash), "input", m.inputs[i].path)
			}
			merged.Put(hash, text)
			return true
		})
	}

	endian := m.opts.outputEndian(firstEndian)
	codec, err := m.opts.codec(m.output.format, endian)
	if err != nil {
		return nil, err
	}
	if err := WriteFile(m.output.path, codec, merged); err != nil {
		return nil, fmt.Errorf("failed to save content: %w", err)
	}

	res := &Result{
		Output:       m.output.path,
		OutputFormat: m.output.format.String(),
		Entries:      merged.Len(),
		Overridden:   overridden,
	}
	for _, in := range m.inputs {
		res.Inputs = append(res.Inputs, in.path)
	}
	if m.output.format == gxt.Binary {
		res.Endian = endian.String()
	}
	log.Info("merged", "inputs", len(m.inputs), "output", m.output.path, "entries", res.Entries, "overridden", overridden)
	return res, nil
}
