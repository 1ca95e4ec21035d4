// Package testutil holds deterministic signal fixtures and tolerance
// helpers shared by package tests.
package testutil

import (
	"math"
	"math/rand"
)

// Sine returns amplitude*sin(2*pi*freq*n/fs + phase) for n in [0, length).
func Sine(freqHz, sampleRate, amplitude, phase float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i)+phase)
	}
	return out
}

// GaussianNoise returns length samples of N(0, std^2) from a fixed seed.
func GaussianNoise(seed int64, std float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = rng.NormFloat64() * std
	}
	return out
}

// AddBurst adds a sine burst of the given length starting at start into x.
// Samples outside x are dropped.
func AddBurst(x []float64, start, length int, freqHz, sampleRate, amplitude float64) {
	step := 2 * math.Pi * freqHz / sampleRate
	for k := range length {
		i := start + k
		if i < 0 || i >= len(x) {
			continue
		}
		x[i] += amplitude * math.Sin(step*float64(k))
	}
}

// Constant returns a slice of length n filled with value.
func Constant(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// ArgMax returns the index of the largest element, or -1 for empty input.
func ArgMax(x []float64) int {
	best := -1
	for i, v := range x {
		if best < 0 || v > x[best] {
			best = i
		}
	}
	return best
}
