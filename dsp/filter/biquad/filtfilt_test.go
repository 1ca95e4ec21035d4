package biquad

import (
	"math"
	"testing"
)

func TestFiltFilt_Empty(t *testing.T) {
	if got := FiltFilt(twoSectionCoeffs(), nil); len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestFiltFilt_NoSectionsCopies(t *testing.T) {
	x := []float64{1, 2, 3}
	got := FiltFilt(nil, x)
	got[0] = 9
	if x[0] != 1 {
		t.Fatal("input aliased")
	}
	if got[1] != 2 || got[2] != 3 {
		t.Fatalf("got %v", got)
	}
}

func TestFiltFilt_ConstantInputHasNoTransient(t *testing.T) {
	coeffs := twoSectionCoeffs()
	g := coeffs[0].DCGain() * coeffs[1].DCGain()

	x := make([]float64, 64)
	for i := range x {
		x[i] = 1.5
	}
	y := FiltFilt(coeffs, x)

	want := 1.5 * g * g
	for i := range y {
		if !almostEqual(y[i], want, 1e-9) {
			t.Fatalf("y[%d] = %v, want %v", i, y[i], want)
		}
	}
}

func TestFiltFilt_SingleSample(t *testing.T) {
	c := smoother()
	g := c.DCGain()
	y := FiltFilt([]Coefficients{c}, []float64{2})
	if len(y) != 1 || !almostEqual(y[0], 2*g*g, 1e-12) {
		t.Fatalf("y = %v, want [%v]", y, 2*g*g)
	}
}

func TestFiltFilt_ShortInputShrinksPad(t *testing.T) {
	x := []float64{0.5, -1, 2}
	y := FiltFilt(twoSectionCoeffs(), x)
	if len(y) != len(x) {
		t.Fatalf("len = %d, want %d", len(y), len(x))
	}
	for i, v := range y {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("y[%d] not finite: %v", i, v)
		}
	}
}

func TestFiltFilt_ZeroPhasePeak(t *testing.T) {
	const n = 1001
	const center = 500
	x := make([]float64, n)
	for i := range x {
		d := float64(i-center) / 20
		x[i] = math.Exp(-d * d)
	}
	orig := append([]float64(nil), x...)

	y := FiltFilt(twoSectionCoeffs(), x)

	for i := range x {
		if x[i] != orig[i] {
			t.Fatalf("input modified at %d", i)
		}
	}

	peak := 0
	for i := range y {
		if y[i] > y[peak] {
			peak = i
		}
	}
	if peak != center {
		t.Fatalf("peak at %d, want %d", peak, center)
	}
	for k := 1; k < 200; k++ {
		if !almostEqual(y[center+k], y[center-k], 1e-9) {
			t.Fatalf("asymmetric at ±%d: %v vs %v", k, y[center+k], y[center-k])
		}
	}
}

func TestOddExtend(t *testing.T) {
	got := oddExtend([]float64{1, 2, 4, 7}, 2)
	want := []float64{-2, 0, 1, 2, 4, 7, 10, 12}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestPadLength(t *testing.T) {
	if PadLength(3) != 21 {
		t.Fatalf("PadLength(3) = %d, want 21", PadLength(3))
	}
}
