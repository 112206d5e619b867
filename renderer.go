package plotgrid

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// NoNumericColumns is the diagnostic printed when a data frame has nothing
// to plot.
const NoNumericColumns = "No numeric columns found in the data frame."

// Renderer draws grids of charts and hands the resulting figures to a
// Display. The zero value is ready to use: it writes figures as PNG to
// temporary files, diagnostics to stdout and logs to slog.Default().
type Renderer struct {
	// Display shows finished figures. Nil means a FileDisplay
	// writing to a temporary file.
	Display Display

	// Diag receives user facing diagnostics. Nil means os.Stdout.
	Diag io.Writer

	Logger *slog.Logger

	// Theme overrides DefaultTheme if not nil.
	Theme *Theme
}

// DefaultRenderer is used by the package level functions.
var DefaultRenderer = &Renderer{}

// Warnf prints a diagnostic to r.Diag.
func (r *Renderer) Warnf(f string, args ...interface{}) {
	if !strings.HasSuffix(f, "\n") {
		f = f + "\n"
	}
	w := r.Diag
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprintf(w, f, args...)
}

func (r *Renderer) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}

func (r *Renderer) theme() Theme {
	if r.Theme != nil {
		return *r.Theme
	}
	return DefaultTheme
}

// layout selects the numeric columns of df and allocates a grid for them.
// A nil grid means there is nothing to plot; the diagnostic has then been
// printed already.
func (r *Renderer) layout(df *DataFrame, kind string) ([]Field, *Grid) {
	var fields []Field
	for _, f := range df.Fields {
		if f.Type.Numeric() {
			fields = append(fields, f)
		}
	}
	if len(fields) == 0 {
		r.logger().Debug("nothing to plot", "figure", kind, "frame", df.Name, "columns", len(df.Fields))
		r.Warnf(NoNumericColumns)
		return nil, nil
	}
	grid := NewGrid(len(fields))
	r.logger().Debug("grid allocated", "figure", kind, "frame", df.Name,
		"numeric", len(fields), "rows", grid.Rows, "cols", grid.Cols)
	return fields, grid
}

// finish prunes the unused cells of grid and shows the figure.
func (r *Renderer) finish(kind string, grid *Grid) (*Figure, error) {
	removed := grid.Prune()
	fig := &Figure{Name: kind, Grid: grid, Theme: r.theme()}
	r.logger().Debug("figure complete", "figure", kind, "axes", grid.Used(), "removed", removed)

	display := r.Display
	if display == nil {
		display = &FileDisplay{Logger: r.logger()}
	}
	if err := display.Show(fig); err != nil {
		return nil, fmt.Errorf("show %s: %w", kind, err)
	}
	return fig, nil
}

func title(prefix, column string) string {
	return prefix + " " + column
}
