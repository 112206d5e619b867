package plotgrid

import (
	"image/color"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Theme controls the look of a figure which is not data driven.
type Theme struct {
	// CellWidth and CellHeight are the size of one grid cell. The figure
	// is two cells wide and one cell high per grid row.
	CellWidth, CellHeight vg.Length

	// Padding is the space around and between cells.
	Padding vg.Length

	// BoxWidth is the thickness of a box in a boxplot, relative to
	// the height of its cell.
	BoxWidth float64

	// LineStyle is used for box outlines, medians and whiskers.
	LineStyle draw.LineStyle

	// OutlierStyle draws the points beyond the whiskers.
	OutlierStyle draw.GlyphStyle

	// HistAlpha is the opacity of histogram bars.
	HistAlpha float64

	// DensityWidth is the line width of the density curve.
	DensityWidth vg.Length

	// DensityPoints is the number of points the density curve is
	// evaluated at.
	DensityPoints int

	// FrequencyLabel labels the y axis of histograms.
	FrequencyLabel string
}

var darkGray = color.Gray{Y: 0x3f}

var DefaultTheme = Theme{
	CellWidth:  6 * vg.Inch,
	CellHeight: 4 * vg.Inch,
	Padding:    3 * vg.Millimeter,
	BoxWidth:   0.8,
	LineStyle: draw.LineStyle{
		Color: darkGray,
		Width: vg.Points(1.25),
	},
	OutlierStyle: draw.GlyphStyle{
		Color:  darkGray,
		Radius: vg.Points(2.5),
		Shape:  draw.RingGlyph{},
	},
	HistAlpha:      0.75,
	DensityWidth:   vg.Points(1.5),
	DensityPoints:  200,
	FrequencyLabel: "Frequency",
}
