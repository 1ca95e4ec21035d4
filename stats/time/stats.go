package time

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean of x, or NaN for an empty slice.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return vecmath.Sum(x) / float64(len(x))
}

// PopStd returns the population standard deviation of x, or NaN for an
// empty slice.
func PopStd(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return stat.PopStdDev(x, nil)
}

// ZScore returns (x - mean) / std using population statistics. A constant
// series has zero deviation and produces NaN or ±Inf samples.
func ZScore(x []float64) []float64 {
	out := make([]float64, len(x))
	if len(x) == 0 {
		return out
	}

	mean, std := stat.PopMeanStdDev(x, nil)
	for i, v := range x {
		out[i] = (v - mean) / std
	}
	return out
}

// Square returns x[i]*x[i] in a new slice.
func Square(x []float64) []float64 {
	out := make([]float64, len(x))
	vecmath.MulBlock(out, x, x)
	return out
}

// Max returns the largest element of x, or NaN for an empty slice.
func Max(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return floats.Max(x)
}

// ArgMax returns the index of the first largest element, or -1 for an
// empty slice.
func ArgMax(x []float64) int {
	if len(x) == 0 {
		return -1
	}
	return floats.MaxIdx(x)
}

// MeanRange returns the mean of x[start:end]. Bounds are clamped to the
// slice; an empty range yields NaN.
func MeanRange(x []float64, start, end int) float64 {
	start, end = clampRange(start, end, len(x))
	return Mean(x[start:end])
}

// MaxRange returns the largest element of x[start:end]. Bounds are clamped
// to the slice; an empty range yields NaN.
func MaxRange(x []float64, start, end int) float64 {
	start, end = clampRange(start, end, len(x))
	return Max(x[start:end])
}

// NanMean averages the non-NaN values, returning NaN when there are none.
func NanMean(values ...float64) float64 {
	var (
		sum float64
		n   int
	)
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return math.NaN()
	}
	return sum / float64(n)
}

func clampRange(start, end, n int) (int, int) {
	start = max(0, min(start, n))
	end = max(start, min(end, n))
	return start, end
}
