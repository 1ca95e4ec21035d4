package pass

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidBand is returned when the band edges are not strictly
	// ordered inside (0, Nyquist) or the sample rate is not positive.
	ErrInvalidBand = errors.New("pass: invalid band")

	// ErrInvalidOrder is returned for non-positive filter orders.
	ErrInvalidOrder = errors.New("pass: order must be positive")
)

// validateBand checks 0 < low < high < sampleRate/2 and order >= 1.
func validateBand(low, high float64, order int, sampleRate float64) error {
	if order < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidOrder, order)
	}

	if !(sampleRate > 0) || !(low > 0) || !(high > low) || !(high < sampleRate/2) {
		return fmt.Errorf("%w: [%g, %g] Hz at fs=%g", ErrInvalidBand, low, high, sampleRate)
	}

	return nil
}

// prewarp maps a digital frequency in Hz to the analog angular frequency
// that the bilinear transform sends back onto it.
func prewarp(freq, sampleRate float64) float64 {
	return 2 * sampleRate * math.Tan(math.Pi*freq/sampleRate)
}

// bandGeometry returns the analog centre w0 and bandwidth bw of a band.
func bandGeometry(low, high, sampleRate float64) (w0, bw float64) {
	wl := prewarp(low, sampleRate)
	wh := prewarp(high, sampleRate)
	return math.Sqrt(wl * wh), wh - wl
}

// CenterFrequency returns the digital frequency (Hz) where a band design
// built from low and high reaches its geometric centre after prewarping.
// Band-pass gain is unity there and band-stop gain is zero.
func CenterFrequency(low, high, sampleRate float64) float64 {
	w0, _ := bandGeometry(low, high, sampleRate)
	return sampleRate / math.Pi * math.Atan(w0/(2*sampleRate))
}
