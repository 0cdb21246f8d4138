// Package config loads the optional gxt2.yaml tool configuration.
//
// The file is looked up in this order: the path given on the command
// line, the GXT2_CONFIG environment variable, then gxt2.yaml in the
// working directory. A missing default file is not an error; a missing
// explicit file is. Every file is checked against an embedded CUE schema
// before it is decoded, so unknown keys and out-of-range values are
// reported with their path.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"

	"github.com/roach88/gxt2/internal/convert"
	"github.com/roach88/gxt2/internal/gxt"
)

//go:embed schema.cue
var schemaCUE string

const (
	// DefaultFile is looked up in the working directory.
	DefaultFile = "gxt2.yaml"
	// EnvVar names a config file when no path is given.
	EnvVar = "GXT2_CONFIG"
)

// Config is the decoded configuration file.
type Config struct {
	// Endian forces the byte order of binary output: "le" or "be".
	// Empty follows the input.
	Endian string `yaml:"endian"`

	// Duplicates is "overwrite" or "keep-first".
	Duplicates string `yaml:"duplicates"`

	StrictMagic bool `yaml:"strict_magic"`

	// LabelsDB is the label cache path. ${HOME} style variables are
	// expanded.
	LabelsDB string `yaml:"labels_db"`

	JSONIndent int `yaml:"json_indent"`

	// Path is the file the config was read from, empty for defaults.
	Path string `yaml:"-"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Duplicates: gxt.DuplicateOverwrite.String(),
		LabelsDB:   DefaultLabelsDB(),
		JSONIndent: gxt.DefaultJSONIndent,
	}
}

// DefaultLabelsDB is the label cache inside the user cache directory,
// or labels.db in the working directory when there is none.
func DefaultLabelsDB() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "labels.db"
	}
	return filepath.Join(dir, "gxt2", "labels.db")
}

// Load resolves and reads the config file. path may be empty.
func Load(path string) (*Config, error) {
	explicit := true
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		path, explicit = DefaultFile, false
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Parse validates and decodes YAML config data over the defaults.
func Parse(data []byte) (*Config, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if raw == nil {
		raw = map[string]any{}
	}
	if err := validate(raw); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.LabelsDB = os.ExpandEnv(cfg.LabelsDB)
	return cfg, nil
}

func validate(raw map[string]any) error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Config"))

	v := def.Unify(ctx.Encode(raw))
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("invalid config: %s", cueerrors.Details(err, nil))
	}
	return nil
}

// Options converts the config into conversion options.
func (c *Config) Options(logger *slog.Logger) (convert.Options, error) {
	opts := convert.DefaultOptions()
	opts.Logger = logger
	opts.StrictMagic = c.StrictMagic
	opts.JSONIndent = c.JSONIndent

	if c.Endian != "" {
		e, err := gxt.ParseEndian(c.Endian)
		if err != nil {
			return opts, err
		}
		opts.Endian = convert.Endian(e)
	}
	d, err := gxt.ParseDuplicatePolicy(c.Duplicates)
	if err != nil {
		return opts, err
	}
	opts.Duplicates = d
	return opts, nil
}
