package biquad

import (
	"math/cmplx"
	"testing"
)

func TestPoles_ConjugatePair(t *testing.T) {
	p := complex(0.72, 0.19)
	z := complex(0.31, 0.44)
	b0 := 2.3
	c := Coefficients{
		B0: b0,
		B1: -b0 * 2 * real(z),
		B2: b0 * real(z*cmplx.Conj(z)),
		A1: -2 * real(p),
		A2: real(p * cmplx.Conj(p)),
	}

	poles := c.Poles()
	if !unorderedRootsClose(poles, p, cmplx.Conj(p), 1e-12) {
		t.Fatalf("unexpected poles: %v", poles)
	}
	zeros := c.Zeros()
	if !unorderedRootsClose(zeros, z, cmplx.Conj(z), 1e-12) {
		t.Fatalf("unexpected zeros: %v", zeros)
	}
	if r := c.PoleRadius(); !almostEqual(r, cmplx.Abs(p), 1e-12) {
		t.Fatalf("PoleRadius = %v, want %v", r, cmplx.Abs(p))
	}
}

func TestStable(t *testing.T) {
	if !Stable(twoSectionCoeffs()) {
		t.Fatal("expected stable cascade")
	}
	unstable := append(twoSectionCoeffs(), Coefficients{B0: 1, A1: -2.1, A2: 1.1})
	if Stable(unstable) {
		t.Fatalf("expected unstable cascade, max radius %v", MaxPoleRadius(unstable))
	}
	if MaxPoleRadius(nil) != 0 {
		t.Fatal("empty cascade should have radius 0")
	}
}

func unorderedRootsClose(got [2]complex128, want1, want2 complex128, tol float64) bool {
	return (rootsClose(got[0], want1, tol) && rootsClose(got[1], want2, tol)) ||
		(rootsClose(got[0], want2, tol) && rootsClose(got[1], want1, tol))
}

func rootsClose(a, b complex128, tol float64) bool {
	return cmplx.Abs(a-b) <= tol
}
