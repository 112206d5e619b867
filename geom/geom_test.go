package geom

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/vdobler/plotgrid/stat"
)

func TestBoxDataRange(t *testing.T) {
	b := Box{Data: stat.BoxPlot([]float64{-3, 1, 2, 3, 30}, stat.DefaultCoef), Loc: 2}
	xmin, xmax, ymin, ymax := b.DataRange()
	assert.Equal(t, -3.0, xmin)
	assert.Equal(t, 30.0, xmax)
	assert.Equal(t, 1.5, ymin)
	assert.Equal(t, 2.5, ymax)

	empty := Box{}
	xmin, xmax, _, _ = empty.DataRange()
	assert.True(t, math.IsInf(xmin, +1))
	assert.True(t, math.IsInf(xmax, -1))
}

func TestBoxPlotDraws(t *testing.T) {
	p := plot.New()
	p.Add(Box{
		Data:    stat.BoxPlot([]float64{-3, 1, 2, 3, 30}, stat.DefaultCoef),
		Width:   0.8,
		Fill:    color.RGBA{R: 0xf0, G: 0x80, B: 0x80, A: 0xff},
		Line:    draw.LineStyle{Color: color.Black, Width: vg.Points(1)},
		Outlier: draw.GlyphStyle{Color: color.Black, Radius: vg.Points(2), Shape: draw.RingGlyph{}},
	}, Box{})
	p.HideY()

	assert.NotPanics(t, func() {
		p.Draw(draw.New(vgimg.New(4*vg.Inch, 3*vg.Inch)))
	})
}

func TestHistogram(t *testing.T) {
	bins, err := stat.Bin([]float64{0, 1, 1, 2, 4}, 4)
	require.NoError(t, err)
	fill := color.RGBA{B: 0xff, A: 0xff}
	h := Histogram(bins, fill, draw.LineStyle{})

	require.Len(t, h.Bins, 4)
	assert.Equal(t, 1.0, h.Width)
	assert.Equal(t, fill, h.FillColor)
	weights := make([]float64, len(h.Bins))
	for i, b := range h.Bins {
		weights[i] = b.Weight
		assert.Equal(t, bins[i].Min, b.Min)
		assert.Equal(t, bins[i].Max, b.Max)
	}
	assert.Equal(t, []float64{1, 2, 1, 1}, weights)
}

func TestDensity(t *testing.T) {
	pts := []stat.Point{{X: 0, Y: 1}, {X: 1, Y: 3}, {X: 2, Y: 2}}
	style := draw.LineStyle{Color: color.Black, Width: vg.Points(2)}
	l, err := Density(pts, style)
	require.NoError(t, err)
	assert.Equal(t, style, l.LineStyle)
	require.Equal(t, 3, l.Len())
	x, y := l.XY(1)
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 3.0, y)

	_, err = Density([]stat.Point{{X: math.NaN(), Y: 1}}, style)
	assert.Error(t, err)
}
