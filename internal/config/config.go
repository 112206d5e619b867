// Package config loads the gridplot configuration from defaults, a yaml
// file, GRIDPLOT_ environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix prefixes environment variables, e.g. GRIDPLOT_COLOR.
const EnvPrefix = "GRIDPLOT_"

// Default values.
const (
	DefaultBins       = 50
	DefaultLogLevel   = "info"
	DefaultCellWidth  = 6.0
	DefaultCellHeight = 4.0
)

// Formats are the accepted values of Config.Display.
var Formats = []string{"png", "svg", "pdf", "eps", "jpg", "jpeg", "tif", "tiff", "html"}

// ErrInvalid is wrapped by all validation errors.
var ErrInvalid = errors.New("invalid configuration")

// Config is the configuration of one gridplot run.
type Config struct {
	// Input is the data file to plot.
	Input string `koanf:"input"`
	Table string `koanf:"table"`
	Sheet string `koanf:"sheet"`

	// Out is the output file, "-" for stdout. Empty writes a temporary
	// file.
	Out string `koanf:"out"`

	// Display is the output format. Empty derives it from Out.
	Display string `koanf:"display"`

	TitlePrefix string `koanf:"title_prefix"`
	Color       string `koanf:"color"`
	Bins        int    `koanf:"bins"`

	// Columns restricts plotting to these columns; Exclude removes
	// columns.
	Columns []string `koanf:"columns"`
	Exclude []string `koanf:"exclude"`

	LogLevel string `koanf:"log_level"`

	// CellWidth and CellHeight are the size of one chart in inches.
	CellWidth  float64 `koanf:"cell_width"`
	CellHeight float64 `koanf:"cell_height"`

	// File is the configuration file used, if any.
	File string `koanf:"-"`
}

// findConfigFile returns explicit or the first default config file present
// in the working directory.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"gridplot.yaml", "gridplot.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load loads the configuration.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
// Only flags explicitly set on the command line override other sources.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"bins":        DefaultBins,
		"log_level":   DefaultLogLevel,
		"cell_width":  DefaultCellWidth,
		"cell_height": DefaultCellHeight,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// GRIDPLOT_TITLE_PREFIX -> title_prefix
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = used
	return &cfg, nil
}

// Format returns the output format: Display if set, else the extension of
// Out, else "png".
func (c *Config) Format() string {
	if c.Display != "" {
		return strings.ToLower(c.Display)
	}
	if i := strings.LastIndexByte(c.Out, '.'); i >= 0 && !strings.ContainsAny(c.Out[i:], `/\`) {
		return strings.ToLower(c.Out[i+1:])
	}
	return "png"
}

// Validate checks c for values no command can work with.
func (c *Config) Validate() error {
	format := c.Format()
	ok := false
	for _, f := range Formats {
		if f == format {
			ok = true
			break
		}
	}
	if !ok {
		return fmt.Errorf("%w: unknown display format %q (want one of %s)",
			ErrInvalid, format, strings.Join(Formats, ", "))
	}
	if c.CellWidth <= 0 || c.CellHeight <= 0 {
		return fmt.Errorf("%w: cell size %gx%g must be positive", ErrInvalid, c.CellWidth, c.CellHeight)
	}
	return nil
}
