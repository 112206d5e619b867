package stat

import (
	"math"
	"sort"
)

// DefaultCoef is the usual whisker length in multiples of the
// interquartile range.
const DefaultCoef = 1.5

// BoxPlotData are the components of a box and whisker plot.
type BoxPlotData struct {
	N int // number of samples

	Min, Max  float64 // extreme values
	Low, High float64 // whisker ends
	Q1, Q3    float64 // box edges
	Median    float64
	Outliers  []float64 // values beyond the whiskers, ascending
}

// IQR is the interquartile range.
func (b BoxPlotData) IQR() float64 { return b.Q3 - b.Q1 }

// BoxPlot calculates the components of a box and whisker plot of data.
// Whiskers extend to the most extreme values within coef interquartile
// ranges of the box; everything beyond is an outlier. Data is not modified.
// Empty data yields a BoxPlotData with N == 0.
func BoxPlot(data []float64, coef float64) BoxPlotData {
	n := len(data)
	if n == 0 {
		return BoxPlotData{}
	}
	d := make([]float64, n)
	copy(d, data)
	sort.Float64s(d)

	b := BoxPlotData{N: n, Min: d[0], Max: d[n-1]}
	b.Q1 = Quantile(d, 0.25)
	b.Median = Quantile(d, 0.5)
	b.Q3 = Quantile(d, 0.75)

	iqr := b.Q3 - b.Q1
	lo, hi := b.Q1-coef*iqr, b.Q3+coef*iqr
	b.Low, b.High = b.Max, b.Min

	// Compute low, high and outliers.
	for _, y := range d {
		if y >= lo && y < b.Low {
			b.Low = y
		}
		if y <= hi && y > b.High {
			b.High = y
		}
		if y < lo || y > hi {
			b.Outliers = append(b.Outliers, y)
		}
	}

	return b
}

// Quantile returns the p-quantile of the ascending sorted sample d,
// interpolating linearly between the order statistics at (n-1)*p.
func Quantile(d []float64, p float64) float64 {
	n := len(d)
	if n == 0 {
		return math.NaN()
	}
	h := float64(n-1) * p
	lo := math.Floor(h)
	i := int(lo)
	if i >= n-1 {
		return d[n-1]
	}
	if i < 0 {
		return d[0]
	}
	return d[i] + (h-lo)*(d[i+1]-d[i])
}
