package core

import "math"

const defaultEpsilon = 1e-12

// ClampInt limits value to the inclusive range [lo, hi].
func ClampInt(value, lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}

	if value < lo {
		return lo
	}

	if value > hi {
		return hi
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// SecondsToSamples converts a duration in seconds to the nearest whole
// number of samples at sampleRate.
func SecondsToSamples(seconds, sampleRate float64) int {
	return int(math.Round(seconds * sampleRate))
}

// SamplesToSeconds converts a sample count back to seconds.
func SamplesToSeconds(samples int, sampleRate float64) float64 {
	if sampleRate <= 0 {
		return math.NaN()
	}
	return float64(samples) / sampleRate
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// Clone returns a freshly allocated copy of x.
func Clone(x []float64) []float64 {
	if x == nil {
		return nil
	}
	out := make([]float64, len(x))
	copy(out, x)
	return out
}
