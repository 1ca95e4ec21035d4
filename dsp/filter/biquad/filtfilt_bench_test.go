package biquad

import (
	"fmt"
	"testing"
)

var benchCoeffs = Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}

func BenchmarkFiltFilt(b *testing.B) {
	x := make([]float64, 60000)
	for i := range x {
		x[i] = float64(i%97) * 0.01
	}

	for _, n := range []int{1, 3, 6} {
		b.Run(fmt.Sprintf("sections=%d", n), func(b *testing.B) {
			coeffs := make([]Coefficients, n)
			for i := range coeffs {
				coeffs[i] = benchCoeffs
			}
			c := NewChain(coeffs)

			b.ReportAllocs()
			b.SetBytes(int64(len(x) * 8))
			for b.Loop() {
				c.FiltFilt(x)
			}
		})
	}
}
