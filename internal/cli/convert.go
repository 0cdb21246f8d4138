package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/gxt2/internal/convert"
)

const convertUsage = "convert <path> [/le|/be] [--to ext|path]"

type convertOptions struct {
	to string
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert <path> [/le|/be]",
		Short: "Convert a table to another format",
		Long: `Convert a table, choosing both formats by extension.

Without --to a .gxt2 file becomes .json beside it and every text format
becomes .gxt2. A trailing /le or /be forces the byte order of binary
output; otherwise it follows the input, or little endian.`,
		Args:          positional(convertUsage, 1, 1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(rootOpts, opts, args, cmd)
		},
	}
	cmd.Flags().StringVar(&opts.to, "to", "", "target extension or output path")

	return cmd
}

// NewConvertTool creates the standalone gxt2conv command.
func NewConvertTool() *cobra.Command {
	rootOpts := &RootOptions{}
	cmd := NewConvertCommand(rootOpts)
	cmd.Use = "gxt2conv <path> [/le|/be]"
	rootOpts.addFlags(cmd)
	return cmd
}

func runConvert(rootOpts *RootOptions, opts *convertOptions, args []string, cmd *cobra.Command) error {
	if err := rootOpts.prepare(cmd); err != nil {
		return err
	}
	formatter := rootOpts.formatter(cmd)
	rest, endian := splitEndian(args)
	copts, err := rootOpts.options(endian)
	if err != nil {
		return err
	}

	conv, err := convert.NewConverter(rest[0], opts.to, copts)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to convert "+rest[0], err)
	}
	formatter.VerboseLog("Converting %s (%s) to %s (%s)", conv.Source, conv.SourceFormat, conv.Output, conv.OutputFormat)
	res, err := conv.Convert()
	if err != nil {
		return WrapExitError(ExitFailure, "failed to convert "+rest[0], err)
	}
	return formatter.Success(resultText{res})
}
