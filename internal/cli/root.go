package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/gxt2/internal/config"
	"github.com/roach88/gxt2/internal/convert"
	"github.com/roach88/gxt2/internal/gxt"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string

	// Overrides for config file values. Zero values leave the file alone.
	Duplicates  string
	StrictMagic bool
	JSONIndent  int
	LabelsDB    string

	jsonIndentSet bool
	logger        *slog.Logger
	config        *config.Config
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the gxt2 multi-command tool.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "gxt2",
		Short: "Convert, merge and inspect GXT2 text tables",
		Long: `Read and write GXT text tables as compiled .gxt2 binaries (either
byte order) or as .txt, .json, .csv and .oxt text files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.validate()
		},
	}
	opts.addFlags(cmd)

	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewMergeCommand(opts))
	cmd.AddCommand(NewBatchCommand(opts))
	cmd.AddCommand(NewDumpCommand(opts))
	cmd.AddCommand(NewHashCommand(opts))
	cmd.AddCommand(NewLabelsCommand(opts))

	return cmd
}

func (o *RootOptions) addFlags(cmd *cobra.Command) {
	f := cmd.PersistentFlags()
	f.BoolVarP(&o.Verbose, "verbose", "v", false, "verbose output")
	f.StringVar(&o.Format, "format", "text", "output format (json|text)")
	f.StringVar(&o.ConfigPath, "config", "", "config file (default $"+config.EnvVar+" or ./"+config.DefaultFile+")")
	f.StringVar(&o.Duplicates, "duplicates", "", "repeated hash in binary input: overwrite|keep-first")
	f.BoolVar(&o.StrictMagic, "strict-magic", false, "fail on a mismatched second magic")
	f.IntVar(&o.JSONIndent, "json-indent", gxt.DefaultJSONIndent, "indent width of JSON output")
	f.StringVar(&o.LabelsDB, "labels-db", "", "label cache database")
}

func (o *RootOptions) validate() error {
	if !isValidFormat(o.Format) {
		return &UsageError{
			Usage:  "--format text|json",
			Reason: fmt.Sprintf("invalid format %q: must be one of %v", o.Format, ValidFormats),
		}
	}
	return nil
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// prepare installs the logger and loads the config file. It is called
// by every command before doing work, so commands built on their own in
// tests behave like their root-mounted versions.
func (o *RootOptions) prepare(cmd *cobra.Command) error {
	if err := o.validate(); err != nil {
		return err
	}
	if f := cmd.Flags().Lookup("json-indent"); f != nil {
		o.jsonIndentSet = f.Changed
	}
	if o.logger == nil {
		o.logger = newLogger(cmd.ErrOrStderr(), o.Verbose)
	}
	if o.config == nil {
		cfg, err := config.Load(o.ConfigPath)
		if err != nil {
			return err
		}
		o.config = cfg
		if cfg.Path != "" {
			o.logger.Debug("loaded config", "path", cfg.Path)
		}
	}
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// options merges config file values and flags. endian, when not nil,
// comes from a positional /le or /be and wins over everything.
func (o *RootOptions) options(endian *gxt.Endian) (convert.Options, error) {
	opts, err := o.config.Options(o.logger)
	if err != nil {
		return opts, err
	}
	if o.Duplicates != "" {
		d, err := gxt.ParseDuplicatePolicy(o.Duplicates)
		if err != nil {
			return opts, &UsageError{Usage: "--duplicates overwrite|keep-first", Reason: err.Error()}
		}
		opts.Duplicates = d
	}
	if o.StrictMagic {
		opts.StrictMagic = true
	}
	if o.jsonIndentSet {
		if o.JSONIndent < 0 || o.JSONIndent > 8 {
			return opts, &UsageError{Usage: "--json-indent 0..8", Reason: fmt.Sprintf("invalid indent %d", o.JSONIndent)}
		}
		opts.JSONIndent = o.JSONIndent
	}
	if endian != nil {
		opts.Endian = endian
	}
	return opts, nil
}

func (o *RootOptions) labelsDB() string {
	if o.LabelsDB != "" {
		return o.LabelsDB
	}
	return o.config.LabelsDB
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}

// splitEndian removes a trailing /le or /be argument, in any case. Any
// other last argument, "/srv" included, stays positional.
func splitEndian(args []string) ([]string, *gxt.Endian) {
	if len(args) == 0 {
		return args, nil
	}
	last := args[len(args)-1]
	if !strings.EqualFold(last, "/le") && !strings.EqualFold(last, "/be") {
		return args, nil
	}
	e, err := gxt.ParseEndian(last)
	if err != nil {
		return args, nil
	}
	return args[:len(args)-1], convert.Endian(e)
}

// positional validates arity after a trailing /le or /be is removed.
func positional(usage string, min, max int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		rest, _ := splitEndian(args)
		switch {
		case len(rest) < min:
			return &UsageError{Usage: usage, Reason: fmt.Sprintf("expected at least %d argument(s), got %d", min, len(rest))}
		case max >= 0 && len(rest) > max:
			return &UsageError{Usage: usage, Reason: fmt.Sprintf("expected at most %d argument(s), got %d", max, len(rest))}
		}
		return nil
	}
}

// Execute runs cmd with args and reports a failure on the command's
// standard output in the selected format. It returns the process exit
// code.
func Execute(cmd *cobra.Command, args []string) int {
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}
	format := "text"
	if f := cmd.PersistentFlags().Lookup("format"); f != nil && f.Value.String() == "json" {
		format = "json"
	}
	formatter := &OutputFormatter{Format: format, Writer: cmd.OutOrStdout()}
	formatter.Error(ErrorCode(err), err.Error(), nil)
	return GetExitCode(err)
}
