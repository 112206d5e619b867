package stat

import (
	"math"

	"gonum.org/v1/gonum/floats"
	gstat "gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// DefaultDensityPoints is the resolution of a density curve.
const DefaultDensityPoints = 200

// Point is one point of a curve.
type Point struct {
	X, Y float64
}

// ScottBandwidth is Scott's rule of thumb for the bandwidth of a Gaussian
// kernel density estimate: the sample standard deviation times n^(-1/5).
func ScottBandwidth(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	return gstat.StdDev(data, nil) * math.Pow(float64(len(data)), -0.2)
}

// Density estimates the probability density of data with a Gaussian
// kernel of Scott bandwidth and evaluates it at n points spanning the range
// of data. A sample without spread has no estimate and yields nil.
func Density(data []float64, n int) []Point {
	bw := ScottBandwidth(data)
	if bw == 0 || math.IsNaN(bw) || math.IsInf(bw, 0) {
		return nil
	}
	if n < 2 {
		n = DefaultDensityPoints
	}

	xs := floats.Span(make([]float64, n), floats.Min(data), floats.Max(data))
	pts := make([]Point, n)
	for i, x := range xs {
		pts[i] = Point{X: x, Y: kde(data, bw, x)}
	}
	return pts
}

// kde evaluates the Gaussian kernel density estimate of data at x.
func kde(data []float64, bw, x float64) float64 {
	sum := 0.0
	for _, xi := range data {
		sum += distuv.UnitNormal.Prob((x - xi) / bw)
	}
	return sum / (float64(len(data)) * bw)
}
