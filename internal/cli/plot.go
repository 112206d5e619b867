package cli

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/plotgrid"
	"github.com/vdobler/plotgrid/echart"
	"github.com/vdobler/plotgrid/internal/config"
	"github.com/vdobler/plotgrid/internal/logger"
	"github.com/vdobler/plotgrid/internal/source"
)

// NewBoxplotsCommand creates the boxplots command.
func NewBoxplotsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "boxplots [file]",
		Short: "Draw a boxplot of every numeric column",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, df, err := setup(cmd, args)
			if err != nil {
				return err
			}
			_, err = renderer(cmd.OutOrStdout(), cfg).Boxplots(df, plotgrid.BoxplotOptions{
				TitlePrefix: cfg.TitlePrefix,
				Color:       cfg.Color,
			})
			return err
		},
	}
}

// NewDistributionsCommand creates the distributions command.
func NewDistributionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "distributions [file]",
		Short: "Draw a histogram with density curve of every numeric column",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, df, err := setup(cmd, args)
			if err != nil {
				return err
			}
			_, err = renderer(cmd.OutOrStdout(), cfg).Distributions(df, plotgrid.DistributionOptions{
				Bins:        cfg.Bins,
				TitlePrefix: cfg.TitlePrefix,
				Color:       cfg.Color,
			})
			return err
		},
	}
	cmd.Flags().Int("bins", 0, "number of histogram bins (default 50)")
	return cmd
}

// setup loads the data frame named by the first argument or the input
// setting and applies the column selection.
func setup(cmd *cobra.Command, args []string) (*config.Config, *plotgrid.DataFrame, error) {
	cfg, err := GetConfig(cmd.Context())
	if err != nil {
		return nil, nil, err
	}
	if len(args) > 0 {
		cfg.Input = args[0]
	}
	df, err := loadFrame(cmd.Context(), cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, df, nil
}

func loadFrame(ctx context.Context, cfg *config.Config) (*plotgrid.DataFrame, error) {
	if cfg.Input == "" {
		return nil, errors.New("no input file given")
	}
	df, err := source.Load(ctx, cfg.Input, source.Options{Table: cfg.Table, Sheet: cfg.Sheet})
	if err != nil {
		return nil, err
	}
	logger.L().Debug("data loaded", "input", cfg.Input, "rows", df.N, "columns", len(df.Fields))

	if len(cfg.Columns) > 0 {
		if df, err = df.Select(cfg.Columns...); err != nil {
			return nil, err
		}
	}
	if len(cfg.Exclude) > 0 {
		df = df.Drop(cfg.Exclude...)
	}
	return df, nil
}

func renderer(stdout io.Writer, cfg *config.Config) *plotgrid.Renderer {
	th := plotgrid.DefaultTheme
	th.CellWidth = vg.Length(cfg.CellWidth) * vg.Inch
	th.CellHeight = vg.Length(cfg.CellHeight) * vg.Inch

	return &plotgrid.Renderer{
		Display: display(stdout, cfg),
		Diag:    stdout,
		Logger:  logger.L(),
		Theme:   &th,
	}
}

func display(stdout io.Writer, cfg *config.Config) plotgrid.Display {
	format := cfg.Format()
	if format == "html" {
		if cfg.Out == "-" {
			return &echart.Display{W: stdout, Logger: logger.L()}
		}
		return &echart.Display{Path: cfg.Out, Logger: logger.L()}
	}
	if cfg.Out == "-" {
		return plotgrid.WriterDisplay{W: stdout, Format: format}
	}
	return &plotgrid.FileDisplay{Path: cfg.Out, Format: format, Logger: logger.L()}
}
