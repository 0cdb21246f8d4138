package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/gxt2/internal/convert"
)

type batchOptions struct {
	from string
	to   string
}

type batchText struct {
	*convert.BatchResult
}

func (b batchText) String() string {
	var sb strings.Builder
	for _, r := range b.Converted {
		sb.WriteString(resultText{r}.String())
		sb.WriteByte('\n')
	}
	for _, s := range b.Skipped {
		fmt.Fprintf(&sb, "skipped %s: %s\n", s.Path, s.Reason)
	}
	fmt.Fprintf(&sb, "%d converted, %d skipped", len(b.Converted), len(b.Skipped))
	return sb.String()
}

// NewBatchCommand creates the batch command.
func NewBatchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &batchOptions{}

	cmd := &cobra.Command{
		Use:   "batch <dir>",
		Short: "Convert every table in a directory tree",
		Long: `Convert every file under <dir> with the --from extension.

Files that are not valid tables are reported and skipped; any other
failure stops the run.`,
		Args:          positional("batch <dir> [/le|/be] [--from ext] [--to ext]", 1, 1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(rootOpts, opts, args, cmd)
		},
	}
	cmd.Flags().StringVar(&opts.from, "from", "gxt2", "source extension")
	cmd.Flags().StringVar(&opts.to, "to", "", "target extension (default json for gxt2, else gxt2)")

	return cmd
}

func runBatch(rootOpts *RootOptions, opts *batchOptions, args []string, cmd *cobra.Command) error {
	if err := rootOpts.prepare(cmd); err != nil {
		return err
	}
	rest, endian := splitEndian(args)
	copts, err := rootOpts.options(endian)
	if err != nil {
		return err
	}

	formatter := rootOpts.formatter(cmd)
	formatter.VerboseLog("Converting *.%s below %s", strings.TrimPrefix(opts.from, "."), rest[0])
	res, err := convert.Batch(rest[0], opts.from, opts.to, copts)
	if err != nil {
		return WrapExitError(ExitFailure, "batch conversion failed", err)
	}
	formatter.VerboseLog("Converted %d file(s), skipped %d", len(res.Converted), len(res.Skipped))
	return formatter.Success(batchText{res})
}
