package plotgrid

import (
	"fmt"

	"github.com/vdobler/plotgrid/stat"
)

// DefaultBins is the number of histogram bins used if none is given.
const DefaultBins = 50

// DistributionOptions controls Distributions. Zero values select the
// defaults.
type DistributionOptions struct {
	// Bins is the number of histogram bins. Default DefaultBins.
	// Negative counts are passed on to stat.Bin which rejects them.
	Bins int

	// TitlePrefix precedes the column name in each title.
	// Default "Distribution of".
	TitlePrefix string

	// Color of the bars and the density curve, see ParseColor.
	// Default "skyblue".
	Color string
}

func (o DistributionOptions) withDefaults() DistributionOptions {
	if o.Bins == 0 {
		o.Bins = DefaultBins
	}
	if o.TitlePrefix == "" {
		o.TitlePrefix = "Distribution of"
	}
	if o.Color == "" {
		o.Color = "skyblue"
	}
	return o
}

// Distributions draws a count histogram with a density curve of every
// numeric column of df, two per row in column order, and shows the figure
// on r.Display. The density curve is scaled to the counts of the
// histogram.
//
// If df has no numeric column the NoNumericColumns diagnostic is printed
// and Distributions returns a nil figure and nil error.
func (r *Renderer) Distributions(df *DataFrame, opts DistributionOptions) (*Figure, error) {
	opts = opts.withDefaults()
	fields, grid := r.layout(df, "distributions")
	if grid == nil {
		return nil, nil
	}
	fill, err := ParseColor(opts.Color)
	if err != nil {
		return nil, fmt.Errorf("distributions: %w", err)
	}
	th := r.theme()

	for _, f := range fields {
		values := f.Values()
		bins, err := stat.Bin(values, opts.Bins)
		if err != nil {
			return nil, fmt.Errorf("distribution of %s: %w", f.Name, err)
		}

		density := stat.Density(values, th.DensityPoints)
		scale := float64(len(values)) * stat.Width(bins)
		for i := range density {
			density[i].Y *= scale
		}

		ax := grid.Next()
		ax.Column = f.Name
		ax.Title = title(opts.TitlePrefix, f.Name)
		ax.XLabel = f.Name
		ax.YLabel = th.FrequencyLabel
		ax.Chart = &HistChart{
			Bins:    bins,
			Density: density,
			Fill:    fill,
			Line:    fill,
		}
	}

	return r.finish("distributions", grid)
}

// Distributions draws the distributions of df with the DefaultRenderer.
func Distributions(df *DataFrame, opts DistributionOptions) (*Figure, error) {
	return DefaultRenderer.Distributions(df, opts)
}
