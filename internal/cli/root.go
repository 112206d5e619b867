// Package cli provides the command-line interface of gridplot.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vdobler/plotgrid/internal/config"
	"github.com/vdobler/plotgrid/internal/logger"
)

// Version information (set at build time).
var Version = "0.1.0"

// configKey is used to store the config in the command context.
type configKey struct{}

// NewRootCmd creates the root command with all subcommands.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "gridplot",
		Short: "Boxplots and distributions of all numeric columns",
		Long: `gridplot draws one chart per numeric column of a CSV, Parquet, SQLite or
Excel file and arranges the charts on a grid two charts wide.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "version" || cmd.Name() == "completion" {
				return nil
			}
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger.SetLevel(cfg.LogLevel)
			if cfg.File != "" {
				logger.L().Debug("using config file", "path", cfg.File)
			}
			cmd.SetContext(context.WithValue(cmd.Context(), configKey{}, cfg))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./gridplot.yaml)")
	pf.StringP("input", "i", "", "data file (.csv, .tsv, .parquet, .db, .sqlite, .xlsx)")
	pf.String("table", "", "table of a SQLite database (default: first table)")
	pf.String("sheet", "", "sheet of an Excel workbook (default: first sheet)")
	pf.StringP("out", "o", "", "output file, - for stdout (default: temporary file)")
	pf.String("display", "", "output format: png, svg, pdf, eps, jpg, tif or html")
	pf.String("title-prefix", "", "text in front of the column name in chart titles")
	pf.String("color", "", "fill color, a CSS color name or #rrggbb")
	pf.StringSlice("columns", nil, "plot only these columns")
	pf.StringSlice("exclude", nil, "do not plot these columns")
	pf.String("log-level", "", "log level (debug|info|warn|error)")
	pf.Float64("cell-width", 0, "width of one chart in inches")
	pf.Float64("cell-height", 0, "height of one chart in inches")

	_ = rootCmd.RegisterFlagCompletionFunc("display", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return config.Formats, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(NewBoxplotsCommand())
	rootCmd.AddCommand(NewDistributionsCommand())
	rootCmd.AddCommand(NewDescribeCommand())
	rootCmd.AddCommand(NewVersionCommand(Version))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) (*config.Config, error) {
	if ctx == nil {
		return nil, errors.New("no configuration loaded")
	}
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c, nil
	}
	return nil, errors.New("no configuration loaded")
}
