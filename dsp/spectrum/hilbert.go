package spectrum

import (
	vecmath "github.com/cwbudde/algo-vecmath"
	"github.com/mjibson/go-dsp/fft"
)

// AnalyticSignal returns x + j*H{x}, where H is the Hilbert transform,
// computed by zeroing the negative-frequency half of the spectrum of x.
func AnalyticSignal(x []float64) []complex128 {
	n := len(x)
	if n == 0 {
		return []complex128{}
	}

	spec := fft.FFTReal(x)

	// Keep DC (and Nyquist for even n), double positive bins, drop the rest.
	half := (n + 1) / 2
	for k := 1; k < half; k++ {
		spec[k] *= 2
	}
	for k := half; k < n; k++ {
		if n%2 == 0 && k == n/2 {
			continue
		}
		spec[k] = 0
	}

	return fft.IFFT(spec)
}

// Envelope returns the instantaneous amplitude |x + j*H{x}| of x.
func Envelope(x []float64) []float64 {
	return Magnitude(AnalyticSignal(x))
}

// Magnitude returns |X[k]| for each complex value.
func Magnitude(in []complex128) []float64 {
	out := make([]float64, len(in))
	if len(in) == 0 {
		return out
	}

	re := make([]float64, len(in))
	im := make([]float64, len(in))
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	return out
}
