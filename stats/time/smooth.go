package time

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// MovingAverage convolves x with a box of the given width normalised to
// unit area and returns a series of the same length. The window is centred
// with floor(width/2) samples before the current one; samples outside x
// count as zero, so the edges taper.
//
// Widths below 1 are treated as 1, which returns a copy of x.
func MovingAverage(x []float64, width int) []float64 {
	n := len(x)
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	if width <= 1 {
		copy(out, x)
		return out
	}

	prefix := make([]float64, n+1)
	floats.CumSum(prefix[1:], x)

	before := width / 2
	for i := range out {
		lo := max(i-before, 0)
		hi := min(i-before+width, n)
		if hi > lo {
			out[i] = prefix[hi] - prefix[lo]
		}
	}

	vecmath.ScaleBlockInPlace(out, 1/float64(width))
	return out
}

// BoxWidth scales a reference window of refWidth samples defined at
// refRate to sampleRate, rounding to the nearest sample and never
// returning less than 1.
func BoxWidth(refWidth int, refRate, sampleRate float64) int {
	w := int(math.Round(sampleRate / refRate * float64(refWidth)))
	return max(w, 1)
}
