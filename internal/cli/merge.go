package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/gxt2/internal/convert"
)

const mergeUsage = "merge <first.gxt2> <second.gxt2> <output.gxt2> [/le|/be] | merge -o <output> <input>..."

type mergeOptions struct {
	output string
}

// NewMergeCommand creates the merge command.
func NewMergeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &mergeOptions{}

	cmd := &cobra.Command{
		Use:   "merge <first.gxt2> <second.gxt2> <output.gxt2> [/le|/be]",
		Short: "Merge tables, later inputs winning",
		Long: `Merge tables into one.

With three arguments all files are binary, whatever their extensions, and
texts from the second file replace those of the first. With -o any
number of inputs in any format are merged in order into the output.`,
		Args:          positional(mergeUsage, 2, -1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMerge(rootOpts, opts, args, cmd)
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output path; treat every argument as an input")

	return cmd
}

// NewMergeTool creates the standalone gxt2merge command.
func NewMergeTool() *cobra.Command {
	rootOpts := &RootOptions{}
	cmd := NewMergeCommand(rootOpts)
	cmd.Use = "gxt2merge <first.gxt2> <second.gxt2> <output.gxt2> [/le|/be]"
	rootOpts.addFlags(cmd)
	return cmd
}

func runMerge(rootOpts *RootOptions, opts *mergeOptions, args []string, cmd *cobra.Command) error {
	if err := rootOpts.prepare(cmd); err != nil {
		return err
	}
	formatter := rootOpts.formatter(cmd)
	rest, endian := splitEndian(args)
	copts, err := rootOpts.options(endian)
	if err != nil {
		return err
	}

	var m *convert.Merger
	if opts.output != "" {
		m, err = convert.NewMultiMerger(opts.output, rest, copts)
		if err != nil {
			return WrapExitError(ExitFailure, "failed to merge", err)
		}
		formatter.VerboseLog("Merging %d input(s) into %s", len(rest), opts.output)
	} else {
		if len(rest) != 3 {
			return &UsageError{Usage: mergeUsage, Reason: "expected exactly 3 arguments without -o"}
		}
		m = convert.NewMerger(rest[0], rest[1], rest[2], copts)
		formatter.VerboseLog("Merging %s and %s into %s", rest[0], rest[1], rest[2])
	}

	res, err := m.Run()
	if err != nil {
		return WrapExitError(ExitFailure, "failed to merge", err)
	}
	return formatter.Success(resultText{res})
}
