package spectrum

import (
	"math"

	"github.com/mjibson/go-dsp/spectral"
	"github.com/mjibson/go-dsp/window"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// PeriodicHann returns an n-point Hann window for spectral analysis: the
// first n samples of the symmetric (n+1)-point window.
func PeriodicHann(n int) []float64 {
	return window.Hann(n + 1)[:n]
}

// SegmentPSD estimates the one-sided power spectral density of x as a
// single Welch segment spanning the whole input, after removing the mean
// and applying a periodic Hann window. Frequencies are spaced
// sampleRate/len(x) apart.
func SegmentPSD(x []float64, sampleRate float64) (pxx, freqs []float64) {
	if len(x) == 0 {
		return []float64{}, []float64{}
	}

	centred := make([]float64, len(x))
	copy(centred, x)
	floats.AddConst(-stat.Mean(centred, nil), centred)

	return spectral.Pwelch(centred, sampleRate, &spectral.PwelchOptions{
		NFFT:   len(x),
		Pad:    len(x),
		Window: PeriodicHann,
	})
}

// DominantFrequency returns the frequency (Hz) of the largest bin of
// SegmentPSD(x). Inputs shorter than two samples yield NaN.
func DominantFrequency(x []float64, sampleRate float64) float64 {
	if len(x) < 2 {
		return math.NaN()
	}

	pxx, freqs := SegmentPSD(x, sampleRate)
	return freqs[floats.MaxIdx(pxx)]
}
