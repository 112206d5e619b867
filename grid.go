package plotgrid

// GridCols is the number of charts per grid row.
const GridCols = 2

// Grid is the row-major arrangement of axes of a figure: one cell per
// numeric column, two per row. Cells are handed out by Next; Prune removes
// the cells which received no chart.
type Grid struct {
	Rows, Cols int

	// Cells[r][c] is the axes in row r and column c or nil if the
	// cell has been removed.
	Cells [][]*Axes

	used    int
	removed int
}

// GridShape returns the number of rows and columns needed for k charts.
func GridShape(k int) (rows, cols int) {
	if k <= 0 {
		return 0, GridCols
	}
	return (k + GridCols - 1) / GridCols, GridCols
}

// NewGrid allocates a grid large enough for k charts.
func NewGrid(k int) *Grid {
	rows, cols := GridShape(k)
	g := &Grid{Rows: rows, Cols: cols, Cells: make([][]*Axes, rows)}
	for r := range g.Cells {
		g.Cells[r] = make([]*Axes, cols)
		for c := range g.Cells[r] {
			g.Cells[r][c] = &Axes{Row: r, Col: c}
		}
	}
	return g
}

// Next returns the next unused axes in row-major order or nil if all
// cells are in use.
func (g *Grid) Next() *Axes {
	if g.used >= g.Rows*g.Cols {
		return nil
	}
	ax := g.Cells[g.used/g.Cols][g.used%g.Cols]
	g.used++
	return ax
}

// Used returns the number of axes handed out by Next.
func (g *Grid) Used() int { return g.used }

// Removed returns the number of cells removed by Prune.
func (g *Grid) Removed() int { return g.removed }

// Prune removes all cells not handed out by Next and returns how many
// were removed by this call.
func (g *Grid) Prune() int {
	n := 0
	for i := g.used; i < g.Rows*g.Cols; i++ {
		r, c := i/g.Cols, i%g.Cols
		if g.Cells[r][c] != nil {
			g.Cells[r][c] = nil
			n++
		}
	}
	g.removed += n
	return n
}

// Axes returns the cells which are not removed in row-major order.
func (g *Grid) Axes() []*Axes {
	var axes []*Axes
	for _, row := range g.Cells {
		for _, ax := range row {
			if ax != nil {
				axes = append(axes, ax)
			}
		}
	}
	return axes
}
