// Package echart shows plotgrid figures as interactive HTML pages built
// with go-echarts. Every cell of the grid becomes one chart on a flex
// page; the removed trailing cell is skipped.
package echart

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/vdobler/plotgrid"
	"github.com/vdobler/plotgrid/stat"
)

// screenDPI converts cell sizes to CSS pixels.
const screenDPI = 96

// Display renders figures as HTML. The page goes to W if set, else to
// the file Path, else to a new temporary file.
type Display struct {
	W      io.Writer
	Path   string
	Logger *slog.Logger
}

func (d *Display) Show(fig *plotgrid.Figure) (err error) {
	page, err := Page(fig)
	if err != nil {
		return err
	}
	if d.W != nil {
		return page.Render(d.W)
	}

	var file *os.File
	if d.Path == "" {
		file, err = os.CreateTemp("", fmt.Sprintf("plotgrid-%s-*.html", fig.Name))
	} else {
		file, err = os.Create(d.Path)
	}
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	if err = page.Render(file); err != nil {
		return err
	}

	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("figure written", "figure", fig.Name, "path", file.Name(), "format", "html")
	return nil
}

// Page builds the page for fig with one chart per populated axes in grid
// order.
func Page(fig *plotgrid.Figure) (*components.Page, error) {
	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)
	page.PageTitle = fig.Name

	init := opts.Initialization{
		Width:  fmt.Sprintf("%dpx", int(fig.Theme.CellWidth.Dots(screenDPI))),
		Height: fmt.Sprintf("%dpx", int(fig.Theme.CellHeight.Dots(screenDPI))),
	}
	for _, ax := range fig.Grid.Axes() {
		switch ch := ax.Chart.(type) {
		case *plotgrid.BoxChart:
			page.AddCharts(boxChart(ax, ch, init))
		case *plotgrid.HistChart:
			page.AddCharts(histChart(ax, ch, init))
		case nil:
		default:
			return nil, fmt.Errorf("echart: unsupported chart kind %q", ch.Kind())
		}
	}
	if len(page.Charts) == 0 {
		return nil, fmt.Errorf("echart: no charts in figure %s", fig.Name)
	}
	return page, nil
}

func globalOpts(ax *plotgrid.Axes, init opts.Initialization) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(init),
		charts.WithTitleOpts(opts.Title{Title: ax.Title, Left: "center"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	}
}

// boxChart draws a vertical box since echarts has no horizontal variant
// for category axes without swapping them.
func boxChart(ax *plotgrid.Axes, ch *plotgrid.BoxChart, init opts.Initialization) *charts.BoxPlot {
	box := charts.NewBoxPlot()
	box.SetGlobalOptions(append(globalOpts(ax, init),
		charts.WithXAxisOpts(opts.XAxis{Name: ax.XLabel}),
		charts.WithYAxisOpts(opts.YAxis{Scale: opts.Bool(true)}),
	)...)

	d := ch.Data
	var data []opts.BoxPlotData
	if d.N > 0 {
		data = append(data, opts.BoxPlotData{
			Name:  ax.Column,
			Value: []float64{d.Low, d.Q1, d.Median, d.Q3, d.High},
		})
	}
	box.SetXAxis([]string{ax.Column}).
		AddSeries(ax.Column, data,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: plotgrid.HexColor(ch.Fill)}))

	if len(d.Outliers) > 0 {
		outliers := make([]opts.ScatterData, len(d.Outliers))
		for i, v := range d.Outliers {
			outliers[i] = opts.ScatterData{Value: []interface{}{ax.Column, v}}
		}
		scatter := charts.NewScatter()
		scatter.SetXAxis([]string{ax.Column}).
			AddSeries("outliers", outliers)
		box.Overlap(scatter)
	}
	return box
}

// histChart draws the bins as bars labeled with their centers and
// overlays the density sampled at the same centers.
func histChart(ax *plotgrid.Axes, ch *plotgrid.HistChart, init opts.Initialization) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(append(globalOpts(ax, init),
		charts.WithXAxisOpts(opts.XAxis{Name: ax.XLabel}),
		charts.WithYAxisOpts(opts.YAxis{Name: ax.YLabel}),
	)...)
	bar.SetSeriesOptions(charts.WithBarChartOpts(opts.BarChart{BarCategoryGap: "0%"}))

	labels := make([]string, len(ch.Bins))
	counts := make([]opts.BarData, len(ch.Bins))
	centers := make([]float64, len(ch.Bins))
	for i, b := range ch.Bins {
		centers[i] = b.X
		labels[i] = strconv.FormatFloat(b.X, 'g', 4, 64)
		counts[i] = opts.BarData{Value: b.Count}
	}
	color := plotgrid.HexColor(ch.Fill)
	bar.SetXAxis(labels).
		AddSeries(ax.Column, counts,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: color, Opacity: opts.Float(0.75)}))

	if len(ch.Density) > 0 {
		dens := make([]opts.LineData, len(centers))
		for i, x := range centers {
			dens[i] = opts.LineData{Value: Interpolate(ch.Density, x)}
		}
		line := charts.NewLine()
		line.SetSeriesOptions(
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: plotgrid.HexColor(ch.Line), Width: 2}),
		)
		line.SetXAxis(labels).AddSeries("density", dens)
		bar.Overlap(line)
	}
	return bar
}

// Interpolate evaluates the piecewise linear curve pts at x. Outside the
// curve it is 0. pts must be sorted by X.
func Interpolate(pts []stat.Point, x float64) float64 {
	n := len(pts)
	if n == 0 || x < pts[0].X || x > pts[n-1].X {
		return 0
	}
	for i := 1; i < n; i++ {
		if x > pts[i].X {
			continue
		}
		a, b := pts[i-1], pts[i]
		if b.X == a.X {
			return b.Y
		}
		return a.Y + (b.Y-a.Y)*(x-a.X)/(b.X-a.X)
	}
	return pts[n-1].Y
}
