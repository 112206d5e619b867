package plotgrid

import (
	"bytes"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vdobler/plotgrid/stat"
)

func TestDistributionsMixedColumns(t *testing.T) {
	rec := &recorder{}
	fig, err := rec.renderer().Distributions(mixedFrame(t), DistributionOptions{})
	require.NoError(t, err)
	require.Len(t, rec.figures, 1)

	g := fig.Grid
	assert.Equal(t, "distributions", fig.Name)
	assert.Equal(t, 2, g.Rows)
	assert.Equal(t, 3, g.Used())
	assert.Equal(t, 1, g.Removed())

	axes := g.Axes()
	require.Len(t, axes, 3)
	for i, col := range []string{"a", "c", "d"} {
		ax := axes[i]
		assert.Equal(t, "Distribution of "+col, ax.Title)
		assert.Equal(t, col, ax.XLabel)
		assert.Equal(t, "Frequency", ax.YLabel)

		ch, ok := ax.Chart.(*HistChart)
		require.True(t, ok)
		assert.Len(t, ch.Bins, DefaultBins)
		assert.Len(t, ch.Density, stat.DefaultDensityPoints)
		assert.Equal(t, "#87ceeb", HexColor(ch.Fill))
		assert.Equal(t, ch.Fill, ch.Line)

		total := int64(0)
		for _, b := range ch.Bins {
			total += b.Count
		}
		assert.Equal(t, int64(10), total)
	}
}

func TestDistributionsOptions(t *testing.T) {
	rec := &recorder{}
	fig, err := rec.renderer().Distributions(pairFrame(t), DistributionOptions{
		Bins:        3,
		TitlePrefix: "Histogram of",
		Color:       "gray40",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, fig.Grid.Rows)
	assert.Equal(t, 0, fig.Grid.Removed())
	ax := fig.Grid.Cells[0][1]
	assert.Equal(t, "Histogram of y", ax.Title)
	ch := ax.Chart.(*HistChart)
	require.Len(t, ch.Bins, 3)
	for _, b := range ch.Bins {
		assert.Equal(t, int64(1), b.Count)
	}
	assert.Equal(t, "#666666", HexColor(ch.Fill))
}

func TestDistributionsDensityScaledToCounts(t *testing.T) {
	df := NewDataFrame("normal", nil)
	values := make([]float64, 400)
	for i := range values {
		// Deterministic, roughly bell shaped sample.
		values[i] = math.Sin(float64(i)) + math.Cos(float64(3*i))
	}
	require.NoError(t, df.AddFloats("v", values))

	rec := &recorder{}
	fig, err := rec.renderer().Distributions(df, DistributionOptions{Bins: 20})
	require.NoError(t, err)
	ch := fig.Grid.Cells[0][0].Chart.(*HistChart)

	// The area under the scaled curve approximates the area of the bars.
	area := 0.0
	for i := 1; i < len(ch.Density); i++ {
		a, b := ch.Density[i-1], ch.Density[i]
		area += (b.X - a.X) * (a.Y + b.Y) / 2
	}
	bars := 0.0
	for _, b := range ch.Bins {
		bars += float64(b.Count) * (b.Max - b.Min)
	}
	assert.InEpsilon(t, bars, area, 0.25)
}

func TestDistributionsBadBins(t *testing.T) {
	rec := &recorder{}
	fig, err := rec.renderer().Distributions(pairFrame(t), DistributionOptions{Bins: -4})
	assert.ErrorIs(t, err, stat.ErrBinCount)
	assert.Nil(t, fig)
	assert.Empty(t, rec.figures)
}

func TestDistributionsInfiniteValue(t *testing.T) {
	df := NewDataFrame("inf", nil)
	require.NoError(t, df.AddFloats("v", []float64{1, 2, 3, math.Inf(+1)}))

	rec := &recorder{}
	fig, err := rec.renderer().Distributions(df, DistributionOptions{Bins: 4})
	assert.ErrorIs(t, err, stat.ErrNonFinite)
	assert.Nil(t, fig)
	assert.Empty(t, rec.figures)
}

func TestDistributionsBadColor(t *testing.T) {
	rec := &recorder{}
	_, err := rec.renderer().Distributions(pairFrame(t), DistributionOptions{Color: "blurple"})
	assert.ErrorIs(t, err, ErrUnknownColor)
	assert.Empty(t, rec.figures)
}

func TestDistributionsConstantAndEmptyColumns(t *testing.T) {
	df := NewDataFrame("degenerate", nil)
	nan := math.NaN()
	require.NoError(t, df.AddFloats("const", []float64{7, 7, 7}))
	require.NoError(t, df.AddFloats("gone", []float64{nan, nan, nan}))
	require.NoError(t, df.AddFloats("one", []float64{nan, 2, nan}))

	var buf bytes.Buffer
	r := &Renderer{
		Display: WriterDisplay{W: &buf, Format: "svg"},
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	fig, err := r.Distributions(df, DistributionOptions{Bins: 5})
	require.NoError(t, err)

	constant := fig.Grid.Cells[0][0].Chart.(*HistChart)
	assert.Equal(t, 6.5, constant.Bins[0].Min)
	assert.Equal(t, 7.5, constant.Bins[4].Max)
	assert.Nil(t, constant.Density, "no density without spread")

	gone := fig.Grid.Cells[0][1].Chart.(*HistChart)
	assert.Empty(t, gone.Bins)

	assert.Equal(t, 1, fig.Grid.Removed())
	assert.Contains(t, buf.String(), "<svg")
}

func TestDistributionsIdempotent(t *testing.T) {
	rec := &recorder{}
	r := rec.renderer()
	first, err := r.Distributions(mixedFrame(t), DistributionOptions{})
	require.NoError(t, err)
	second, err := r.Distributions(mixedFrame(t), DistributionOptions{})
	require.NoError(t, err)
	assert.Equal(t, first.Grid, second.Grid)
}

func TestDistributionsPackageFunc(t *testing.T) {
	rec := &recorder{}
	saved := DefaultRenderer
	DefaultRenderer = rec.renderer()
	defer func() { DefaultRenderer = saved }()

	_, err := Distributions(textFrame(t), DistributionOptions{})
	require.NoError(t, err)
	assert.Equal(t, NoNumericColumns+"\n", rec.diag.String())
}
