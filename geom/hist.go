package geom

import (
	"image/color"

	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/plotgrid/stat"
)

// Histogram draws bins as bars of height Count.
func Histogram(bins []stat.BinnedData, fill color.Color, line draw.LineStyle) *plotter.Histogram {
	h := &plotter.Histogram{
		Bins:      make([]plotter.HistogramBin, len(bins)),
		Width:     stat.Width(bins),
		FillColor: fill,
		LineStyle: line,
	}
	for i, b := range bins {
		h.Bins[i] = plotter.HistogramBin{Min: b.Min, Max: b.Max, Weight: float64(b.Count)}
	}
	return h
}

// Density draws a curve through pts.
func Density(pts []stat.Point, line draw.LineStyle) (*plotter.Line, error) {
	xys := make(plotter.XYs, len(pts))
	for i, p := range pts {
		xys[i].X, xys[i].Y = p.X, p.Y
	}
	l, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	l.LineStyle = line
	return l, nil
}
