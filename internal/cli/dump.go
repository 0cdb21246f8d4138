package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/gxt2/internal/convert"
	"github.com/roach88/gxt2/internal/gxt"
	"github.com/roach88/gxt2/internal/labels"
	"github.com/roach88/gxt2/internal/table"
)

type dumpOptions struct {
	filter string
	labels bool
}

// DumpEntry is one row of dump output.
type DumpEntry struct {
	Hash  string `json:"hash"`
	Label string `json:"label,omitempty"`
	Text  string `json:"text"`
}

type dumpText []DumpEntry

func (d dumpText) String() string {
	lines := make([]string, len(d))
	for i, e := range d {
		if e.Label != "" {
			lines[i] = fmt.Sprintf("%s (%s) = %s", e.Hash, e.Label, e.Text)
		} else {
			lines[i] = e.Hash + " = " + e.Text
		}
	}
	return strings.Join(lines, "\n")
}

// NewDumpCommand creates the dump command.
func NewDumpCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &dumpOptions{}

	cmd := &cobra.Command{
		Use:   "dump <path>",
		Short: "Print the entries of a table",
		Long: `Print every entry of a table in ascending hash order, one
"0xHHHHHHHH = text" line each.

--filter keeps entries whose text contains the query, comparing
Unicode-normalized forms. --labels shows the label cached for each hash.`,
		Args:          positional("dump <path> [--filter text] [--labels]", 1, 1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(rootOpts, opts, args[0], cmd)
		},
	}
	cmd.Flags().StringVar(&opts.filter, "filter", "", "only entries whose text contains this")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "show cached labels")

	return cmd
}

func runDump(rootOpts *RootOptions, opts *dumpOptions, path string, cmd *cobra.Command) error {
	if err := rootOpts.prepare(cmd); err != nil {
		return err
	}
	copts, err := rootOpts.options(nil)
	if err != nil {
		return err
	}

	f, err := gxt.FormatForPath(path)
	if err != nil {
		return err
	}
	codec, err := gxt.NewCodec(f,
		gxt.WithDuplicatePolicy(copts.Duplicates),
		gxt.WithStrictMagic(copts.StrictMagic),
		gxt.WithLogger(rootOpts.logger),
	)
	if err != nil {
		return err
	}
	m := table.NewMap()
	if err := convert.ReadFile(path, codec, m); err != nil {
		return WrapExitError(ExitFailure, "failed to read content", err)
	}
	rootOpts.formatter(cmd).VerboseLog("Read %d entries from %s (%s)", m.Len(), path, f)

	entries := table.Filter(m, opts.filter)
	rows := make(dumpText, len(entries))
	for i, e := range entries {
		rows[i] = DumpEntry{Hash: table.FormatKey(e.Hash), Text: e.Text}
	}

	if opts.labels {
		if err := attachLabels(cmd.Context(), rootOpts.labelsDB(), entries, rows); err != nil {
			return err
		}
	}
	return rootOpts.formatter(cmd).Success(rows)
}

func attachLabels(ctx context.Context, db string, entries []table.Entry, rows dumpText) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cache, err := labels.Open(db)
	if err != nil {
		return err
	}
	defer cache.Close()

	for i, e := range entries {
		label, ok, err := cache.Lookup(ctx, e.Hash)
		if err != nil {
			return err
		}
		if ok {
			rows[i].Label = label
		}
	}
	return nil
}
