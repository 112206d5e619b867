// Package stat provides the statistical transformations behind the plots:
// binning for histograms, the five number summary for boxplots and kernel
// density estimates.
package stat

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ErrBinCount is returned by Bin for bin counts below one.
var ErrBinCount = errors.New("stat: bin count must be at least one")

// ErrNonFinite is returned by Bin if data contains an infinite value.
var ErrNonFinite = errors.New("stat: data range is not finite")

// BinnedData is one bin of a histogram covering [Min,Max).
// The last bin of a histogram is closed on both sides.
type BinnedData struct {
	Min, Max float64
	X        float64 // center of the bin
	Count    int64
	Density  float64 // Count / (total count * bin width)
}

// Bin groups data into n bins of equal width spanning the range of data
// and counts occurrences in these bins. A constant sample spans the unit
// interval centered on its value. Bin returns no bins for empty data.
func Bin(data []float64, n int) ([]BinnedData, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrBinCount, n)
	}
	if len(data) == 0 {
		return nil, nil
	}

	min, max := floats.Min(data), floats.Max(data)
	if math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrNonFinite, min, max)
	}
	if min == max {
		min -= 0.5
		max += 0.5
	}
	width := (max - min) / float64(n)

	bins := make([]BinnedData, n)
	for b := range bins {
		bins[b].Min = min + float64(b)*width
		bins[b].Max = min + float64(b+1)*width
		bins[b].X = bins[b].Min + width/2
	}
	bins[n-1].Max = max

	for _, x := range data {
		b := int((x - min) / width)
		if b >= n {
			b = n - 1
		} else if b < 0 {
			b = 0
		}
		bins[b].Count++
	}

	total := float64(len(data))
	for b := range bins {
		bins[b].Density = float64(bins[b].Count) / (total * width)
	}
	return bins, nil
}

// Width returns the common width of bins or 0 if there are none.
func Width(bins []BinnedData) float64 {
	if len(bins) == 0 {
		return 0
	}
	return bins[0].Max - bins[0].Min
}
