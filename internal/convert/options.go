package convert

import (
	"log/slog"

	"github.com/roach88/gxt2/internal/gxt"
)

// Options carries codec settings shared by every file an operation touches.
type Options struct {
	// Endian forces the byte order of binary output. When nil, output
	// follows the byte order of the first binary input, or little endian.
	Endian *gxt.Endian

	// Duplicates is the repeated-hash policy for binary input.
	Duplicates gxt.DuplicatePolicy

	// StrictMagic fails binary reads on a mismatched second magic.
	StrictMagic bool

	// JSONIndent is the indent width of JSON output.
	JSONIndent int

	Logger *slog.Logger
}

// DefaultOptions returns the settings used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Duplicates: gxt.DuplicateOverwrite,
		JSONIndent: gxt.DefaultJSONIndent,
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

// codec builds the codec for f. endian is the byte order for binary output.
func (o Options) codec(f gxt.Format, endian gxt.Endian) (gxt.Codec, error) {
	return gxt.NewCodec(f,
		gxt.WithEndian(endian),
		gxt.WithDuplicatePolicy(o.Duplicates),
		gxt.WithStrictMagic(o.StrictMagic),
		gxt.WithJSONIndent(o.JSONIndent),
		gxt.WithLogger(o.logger()),
	)
}

// outputEndian picks the byte order for binary output.
func (o Options) outputEndian(detected *gxt.Endian) gxt.Endian {
	switch {
	case o.Endian != nil:
		return *o.Endian
	case detected != nil:
		return *detected
	default:
		return gxt.LittleEndian
	}
}

// Endian returns a pointer to e, for Options.Endian.
func Endian(e gxt.Endian) *gxt.Endian {
	return &e
}
