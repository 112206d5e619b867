package stat

import (
	"math"

	"gonum.org/v1/gonum/floats"
	gstat "gonum.org/v1/gonum/stat"
)

// Summary are the usual descriptive statistics of a sample.
type Summary struct {
	Count               int
	Mean, Std           float64
	Min, Q1, Median, Q3 float64
	Max                 float64
}

// Describe summarizes data. Statistics of an empty sample are NaN and the
// standard deviation of a single value is NaN.
func Describe(data []float64) Summary {
	s := Summary{Count: len(data)}
	if len(data) == 0 {
		nan := math.NaN()
		s.Mean, s.Std, s.Min, s.Q1, s.Median, s.Q3, s.Max = nan, nan, nan, nan, nan, nan, nan
		return s
	}
	s.Mean, s.Std = gstat.MeanStdDev(data, nil)
	if len(data) == 1 {
		s.Std = math.NaN()
	}
	s.Min, s.Max = floats.Min(data), floats.Max(data)

	b := BoxPlot(data, DefaultCoef)
	s.Q1, s.Median, s.Q3 = b.Q1, b.Median, b.Q3
	return s
}
