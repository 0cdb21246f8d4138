package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/gxt2/internal/labels"
	"github.com/roach88/gxt2/internal/strhash"
	"github.com/roach88/gxt2/internal/table"
)

type hashOptions struct {
	record bool
}

// HashEntry is one row of hash output.
type HashEntry struct {
	Label string `json:"label"`
	Hash  string `json:"hash"`
}

type hashText []HashEntry

func (h hashText) String() string {
	lines := make([]string, len(h))
	for i, e := range h {
		lines[i] = e.Hash + "  " + e.Label
	}
	return strings.Join(lines, "\n")
}

// NewHashCommand creates the hash command.
func NewHashCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &hashOptions{}

	cmd := &cobra.Command{
		Use:   "hash <label>...",
		Short: "Print the table key of each label",
		Long: `Print the case-sensitive hash of each label as a table key.

With --record the labels are also stored in the label cache so that
dump --labels can show them.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHash(rootOpts, opts, args, cmd)
		},
	}
	cmd.Flags().BoolVar(&opts.record, "record", false, "store the labels in the label cache")

	return cmd
}

func runHash(rootOpts *RootOptions, opts *hashOptions, args []string, cmd *cobra.Command) error {
	if err := rootOpts.prepare(cmd); err != nil {
		return err
	}

	rows := make(hashText, len(args))
	for i, label := range args {
		rows[i] = HashEntry{Label: label, Hash: table.FormatKey(strhash.Hash(label))}
	}

	if opts.record {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		cache, err := labels.Open(rootOpts.labelsDB())
		if err != nil {
			return err
		}
		defer cache.Close()
		for _, label := range args {
			if _, err := cache.Add(ctx, label); err != nil {
				return err
			}
		}
		rootOpts.logger.Debug("recorded labels", "count", len(args), "db", rootOpts.labelsDB())
	}
	return rootOpts.formatter(cmd).Success(rows)
}
