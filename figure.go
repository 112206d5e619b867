package plotgrid

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Figure is a rendered grid of charts, ready to be shown on a Display.
type Figure struct {
	// Name identifies the kind of figure, e.g. "boxplots".
	Name string

	Grid  *Grid
	Theme Theme
}

// Size returns the width and height of f.
func (f *Figure) Size() (width, height vg.Length) {
	return vg.Length(f.Grid.Cols) * f.Theme.CellWidth, vg.Length(f.Grid.Rows) * f.Theme.CellHeight
}

// Draw draws all cells of f onto dc. Removed cells stay blank; the
// remaining cells are aligned so that labels do not overlap.
func (f *Figure) Draw(dc draw.Canvas) error {
	plots := make([][]*plot.Plot, f.Grid.Rows)
	for r, row := range f.Grid.Cells {
		plots[r] = make([]*plot.Plot, len(row))
		for c, ax := range row {
			if ax == nil {
				continue
			}
			p, err := ax.Plot(f.Theme)
			if err != nil {
				return err
			}
			plots[r][c] = p
		}
	}

	pad := f.Theme.Padding
	tiles := draw.Tiles{
		Rows:      f.Grid.Rows,
		Cols:      f.Grid.Cols,
		PadX:      pad,
		PadY:      pad,
		PadTop:    pad,
		PadBottom: pad,
		PadLeft:   pad,
		PadRight:  pad,
	}
	canvases := plot.Align(plots, tiles, dc)
	for r := range plots {
		for c, p := range plots[r] {
			if p != nil {
				p.Draw(canvases[r][c])
			}
		}
	}
	return nil
}

// Encode draws f in the given format ("png", "svg", "pdf", "eps", "jpg",
// "tif") and writes it to w.
func (f *Figure) Encode(w io.Writer, format string) error {
	width, height := f.Size()
	c, err := draw.NewFormattedCanvas(width, height, format)
	if err != nil {
		return fmt.Errorf("figure %s: %w", f.Name, err)
	}
	if err := f.Draw(draw.New(c)); err != nil {
		return fmt.Errorf("figure %s: %w", f.Name, err)
	}
	if _, err := c.WriteTo(w); err != nil {
		return fmt.Errorf("figure %s: %w", f.Name, err)
	}
	return nil
}
