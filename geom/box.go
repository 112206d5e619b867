// Package geom turns statistical summaries into gonum plotters.
package geom

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/plotgrid/stat"
)

// Box is a horizontal box and whisker plot centered on the y value Loc.
type Box struct {
	Data stat.BoxPlotData

	// Loc is the vertical position of the box. The box claims the
	// y range Loc-0.5 to Loc+0.5.
	Loc float64

	// Width is the thickness of the box in y data units.
	Width float64

	Fill    color.Color
	Line    draw.LineStyle
	Outlier draw.GlyphStyle
}

var (
	_ plot.Plotter    = Box{}
	_ plot.DataRanger = Box{}
)

// Plot draws the box: a rectangle from Q1 to Q3 with the median, whiskers
// with caps to Low and High and a glyph per outlier.
func (b Box) Plot(c draw.Canvas, plt *plot.Plot) {
	if b.Data.N == 0 {
		return
	}
	trX, trY := plt.Transforms(&c)

	hw := b.Width / 2
	y := trY(b.Loc)
	ylo, yhi := trY(b.Loc-hw), trY(b.Loc+hw)
	capLo, capHi := trY(b.Loc-hw/2), trY(b.Loc+hw/2)
	q1, med, q3 := trX(b.Data.Q1), trX(b.Data.Median), trX(b.Data.Q3)
	low, high := trX(b.Data.Low), trX(b.Data.High)

	box := []vg.Point{{X: q1, Y: ylo}, {X: q3, Y: ylo}, {X: q3, Y: yhi}, {X: q1, Y: yhi}, {X: q1, Y: ylo}}
	if b.Fill != nil {
		c.FillPolygon(b.Fill, c.ClipPolygonXY(box))
	}
	c.StrokeLines(b.Line, c.ClipLinesXY(
		box,
		[]vg.Point{{X: med, Y: ylo}, {X: med, Y: yhi}},
		[]vg.Point{{X: low, Y: y}, {X: q1, Y: y}},
		[]vg.Point{{X: q3, Y: y}, {X: high, Y: y}},
		[]vg.Point{{X: low, Y: capLo}, {X: low, Y: capHi}},
		[]vg.Point{{X: high, Y: capLo}, {X: high, Y: capHi}},
	)...)

	for _, o := range b.Data.Outliers {
		p := vg.Point{X: trX(o), Y: y}
		if c.Contains(p) {
			c.DrawGlyph(b.Outlier, p)
		}
	}
}

// DataRange spans all values horizontally and the unit interval around
// Loc vertically.
func (b Box) DataRange() (xmin, xmax, ymin, ymax float64) {
	ymin, ymax = b.Loc-0.5, b.Loc+0.5
	if b.Data.N == 0 {
		return math.Inf(+1), math.Inf(-1), ymin, ymax
	}
	return b.Data.Min, b.Data.Max, ymin, ymax
}
