package conv

import (
	"errors"
	"fmt"

	algofft "github.com/cwbudde/algo-fft"
	vecmath "github.com/cwbudde/algo-vecmath"
)

// ErrEmptyInput is returned when either input sequence is empty.
var ErrEmptyInput = errors.New("conv: empty input")

// minFFTSize is the smallest transform planned by Correlate.
const minFFTSize = 16

// Correlate computes the full cross-correlation of a and b using the FFT.
// The result has length len(a) + len(b) - 1.
func Correlate(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	n, m := len(a), len(b)
	fftSize := max(nextPowerOf2(n+m-1), minFFTSize)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	aPadded := make([]complex128, fftSize)
	bPadded := make([]complex128, fftSize)
	for i, v := range a {
		aPadded[i] = complex(v, 0)
	}
	for i, v := range b {
		bPadded[i] = complex(v, 0)
	}

	aFreq := make([]complex128, fftSize)
	bFreq := make([]complex128, fftSize)
	if err := plan.Forward(aFreq, aPadded); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}
	if err := plan.Forward(bFreq, bPadded); err != nil {
		return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
	}

	for i := range aFreq {
		aFreq[i] *= complex(real(bFreq[i]), -imag(bFreq[i]))
	}

	circ := make([]complex128, fftSize)
	if err := plan.Inverse(circ, aFreq); err != nil {
		return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
	}

	// Circular result holds lags 0..n-1 first and negative lags at the end.
	result := make([]float64, n+m-1)
	for i := range n {
		result[m-1+i] = real(circ[i])
	}
	for i := range m - 1 {
		result[i] = real(circ[fftSize-m+1+i])
	}

	return result, nil
}

// CorrelateDirect computes the full cross-correlation by direct summation.
func CorrelateDirect(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	n, m := len(a), len(b)
	result := make([]float64, n+m-1)
	for k := range result {
		lag := LagFromIndex(k, m)
		lo := max(0, -lag)
		hi := min(m, n-lag)
		if hi > lo {
			result[k] = vecmath.DotProduct(a[lo+lag:hi+lag], b[lo:hi])
		}
	}

	return result, nil
}

// FindPeak returns the index and value of the largest element of corr.
// It returns -1 for an empty slice.
func FindPeak(corr []float64) (index int, value float64) {
	if len(corr) == 0 {
		return -1, 0
	}

	index, value = 0, corr[0]
	for i, v := range corr {
		if v > value {
			index, value = i, v
		}
	}

	return index, value
}

// PeakLag returns the lag (in samples) that maximizes the cross-correlation
// of a against b.
func PeakLag(a, b []float64) (int, error) {
	corr, err := Correlate(a, b)
	if err != nil {
		return 0, err
	}

	idx, _ := FindPeak(corr)
	return LagFromIndex(idx, len(b)), nil
}

// LagFromIndex converts a correlation result index to a lag value.
func LagFromIndex(index, lenB int) int {
	return index - (lenB - 1)
}

// IndexFromLag converts a lag value to a correlation result index.
func IndexFromLag(lag, lenB int) int {
	return lag + (lenB - 1)
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
