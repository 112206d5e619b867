package plotgrid

import (
	"fmt"

	"github.com/vdobler/plotgrid/stat"
)

// BoxplotOptions controls Boxplots. Zero values select the defaults.
type BoxplotOptions struct {
	// TitlePrefix precedes the column name in each title.
	// Default "Boxplot of".
	TitlePrefix string

	// Color fills the boxes, see ParseColor. Default "lightcoral".
	Color string
}

func (o BoxplotOptions) withDefaults() BoxplotOptions {
	if o.TitlePrefix == "" {
		o.TitlePrefix = "Boxplot of"
	}
	if o.Color == "" {
		o.Color = "lightcoral"
	}
	return o
}

// Boxplots draws a horizontal boxplot of every numeric column of df, two
// per row in column order, and shows the figure on r.Display.
//
// If df has no numeric column the NoNumericColumns diagnostic is printed
// and Boxplots returns a nil figure and nil error.
func (r *Renderer) Boxplots(df *DataFrame, opts BoxplotOptions) (*Figure, error) {
	opts = opts.withDefaults()
	fields, grid := r.layout(df, "boxplots")
	if grid == nil {
		return nil, nil
	}
	fill, err := ParseColor(opts.Color)
	if err != nil {
		return nil, fmt.Errorf("boxplots: %w", err)
	}

	for _, f := range fields {
		ax := grid.Next()
		ax.Column = f.Name
		ax.Title = title(opts.TitlePrefix, f.Name)
		ax.XLabel = f.Name
		ax.Chart = &BoxChart{
			Data: stat.BoxPlot(f.Values(), stat.DefaultCoef),
			Fill: fill,
		}
	}

	return r.finish("boxplots", grid)
}

// Boxplots draws the boxplots of df with the DefaultRenderer.
func Boxplots(df *DataFrame, opts BoxplotOptions) (*Figure, error) {
	return DefaultRenderer.Boxplots(df, opts)
}
