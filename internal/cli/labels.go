package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/gxt2/internal/gxt"
	"github.com/roach88/gxt2/internal/labels"
	"github.com/roach88/gxt2/internal/table"
)

// NewLabelsCommand creates the labels command group.
func NewLabelsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "labels",
		Short: "Manage the hash label cache",
	}
	cmd.AddCommand(newLabelsImportCommand(rootOpts))
	cmd.AddCommand(newLabelsLookupCommand(rootOpts))
	cmd.AddCommand(newLabelsCountCommand(rootOpts))
	return cmd
}

// ImportSummary is the output of labels import.
type ImportSummary struct {
	Files    int `json:"files"`
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}

func (s ImportSummary) String() string {
	return fmt.Sprintf("imported %d label(s) from %d file(s), %d skipped", s.Imported, s.Files, s.Skipped)
}

// LabelCount is the output of labels count.
type LabelCount struct {
	Labels int    `json:"labels"`
	DB     string `json:"db"`
}

func (c LabelCount) String() string {
	return fmt.Sprintf("%d label(s) in %s", c.Labels, c.DB)
}

type lookupText []HashEntry

func (l lookupText) String() string {
	lines := make([]string, len(l))
	for i, e := range l {
		label := e.Label
		if label == "" {
			label = "?"
		}
		lines[i] = e.Hash + "  " + label
	}
	return strings.Join(lines, "\n")
}

func withCache(rootOpts *RootOptions, cmd *cobra.Command, fn func(ctx context.Context, c *labels.Cache) error) error {
	if err := rootOpts.prepare(cmd); err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cache, err := labels.Open(rootOpts.labelsDB())
	if err != nil {
		return err
	}
	defer cache.Close()
	return fn(ctx, cache)
}

func newLabelsImportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>...",
		Short: "Import labels from text lists or label tables",
		Long: `Import labels into the cache.

A .gxt2 file is read as a table whose texts are the labels of their own
keys; entries that do not hash to their key are skipped. Any other file
is read as one label per line.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCache(rootOpts, cmd, func(ctx context.Context, cache *labels.Cache) error {
				copts, err := rootOpts.options(nil)
				if err != nil {
					return err
				}
				sum := ImportSummary{}
				for _, path := range args {
					stats, err := cache.ImportFile(ctx, path,
						gxt.WithDuplicatePolicy(copts.Duplicates),
						gxt.WithStrictMagic(copts.StrictMagic),
						gxt.WithLogger(rootOpts.logger),
					)
					if err != nil {
						return err
					}
					rootOpts.logger.Debug("imported labels", "path", path, "imported", stats.Imported, "skipped", stats.Skipped)
					sum.Files++
					sum.Imported += stats.Imported
					sum.Skipped += stats.Skipped
				}
				return rootOpts.formatter(cmd).Success(sum)
			})
		},
	}
}

func newLabelsLookupCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "lookup <0xHASH>...",
		Short:         "Print the cached label of each hash",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCache(rootOpts, cmd, func(ctx context.Context, cache *labels.Cache) error {
				rows := make(lookupText, len(args))
				for i, arg := range args {
					hash, err := table.ParseKey(arg)
					if err != nil {
						return &UsageError{Usage: "labels lookup <0xHASH>...", Reason: err.Error()}
					}
					label, _, err := cache.Lookup(ctx, hash)
					if err != nil {
						return err
					}
					rows[i] = HashEntry{Hash: table.FormatKey(hash), Label: label}
				}
				return rootOpts.formatter(cmd).Success(rows)
			})
		},
	}
}

func newLabelsCountCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "count",
		Short:         "Print the number of cached labels",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withCache(rootOpts, cmd, func(ctx context.Context, cache *labels.Cache) error {
				n, err := cache.Count(ctx)
				if err != nil {
					return err
				}
				return rootOpts.formatter(cmd).Success(LabelCount{Labels: n, DB: rootOpts.labelsDB()})
			})
		},
	}
}
