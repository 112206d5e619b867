package plotgrid

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"

	"github.com/vdobler/plotgrid/geom"
	"github.com/vdobler/plotgrid/stat"
)

// Axes is one cell of a grid: the chart of one column with its labels.
type Axes struct {
	Row, Col int

	// Column is the name of the data frame column shown.
	Column string

	Title  string
	XLabel string
	YLabel string

	// Chart is the content of the axes; nil for an empty cell.
	Chart Chart
}

// Chart is the content of an axes. It is either a *BoxChart or a *HistChart.
type Chart interface {
	Kind() string
}

// BoxChart is a horizontal box and whisker plot of one column.
type BoxChart struct {
	Data stat.BoxPlotData
	Fill color.Color
}

func (*BoxChart) Kind() string { return "boxplot" }

// HistChart is a count histogram of one column with a density curve
// scaled to counts.
type HistChart struct {
	Bins    []stat.BinnedData
	Density []stat.Point
	Fill    color.Color
	Line    color.Color
}

func (*HistChart) Kind() string { return "histogram" }

// Plot renders ax as a gonum plot.
func (ax *Axes) Plot(th Theme) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = ax.Title
	p.X.Label.Text = ax.XLabel
	p.Y.Label.Text = ax.YLabel

	switch ch := ax.Chart.(type) {
	case nil:
	case *BoxChart:
		p.Add(geom.Box{
			Data:    ch.Data,
			Width:   th.BoxWidth,
			Fill:    ch.Fill,
			Line:    th.LineStyle,
			Outlier: th.OutlierStyle,
		})
		p.HideY()
	case *HistChart:
		edge := th.LineStyle
		edge.Color = color.White
		edge.Width /= 2
		if len(ch.Bins) > 0 {
			p.Add(geom.Histogram(ch.Bins, SetAlpha(ch.Fill, th.HistAlpha), edge))
		}
		if len(ch.Density) > 0 {
			line := th.LineStyle
			line.Color = ch.Line
			line.Width = th.DensityWidth
			l, err := geom.Density(ch.Density, line)
			if err != nil {
				return nil, fmt.Errorf("density of %s: %w", ax.Column, err)
			}
			p.Add(l)
		}
	default:
		return nil, fmt.Errorf("plotgrid: unsupported chart kind %q", ch.Kind())
	}
	return p, nil
}
