package biquad

import "math/cmplx"

// Poles returns the z-plane poles of the section denominator:
//
//	1 + A1*z^-1 + A2*z^-2 = 0
func (c *Coefficients) Poles() [2]complex128 {
	return quadraticRoots(1, c.A1, c.A2)
}

// Zeros returns the z-plane zeros of the section numerator:
//
//	B0 + B1*z^-1 + B2*z^-2 = 0
func (c *Coefficients) Zeros() [2]complex128 {
	return quadraticRoots(c.B0, c.B1, c.B2)
}

// PoleRadius returns the largest pole magnitude of the section.
func (c *Coefficients) PoleRadius() float64 {
	p := c.Poles()
	return max(cmplx.Abs(p[0]), cmplx.Abs(p[1]))
}

// MaxPoleRadius returns the largest pole magnitude across a cascade.
// A cascade is stable when the result is below 1.
func MaxPoleRadius(coeffs []Coefficients) float64 {
	var r float64
	for i := range coeffs {
		r = max(r, coeffs[i].PoleRadius())
	}
	return r
}

// Stable reports whether every pole of the cascade lies strictly inside
// the unit circle.
func Stable(coeffs []Coefficients) bool {
	return MaxPoleRadius(coeffs) < 1
}

func quadraticRoots(a, b, c float64) [2]complex128 {
	if a == 0 {
		if b == 0 {
			return [2]complex128{}
		}
		return [2]complex128{complex(-c/b, 0), 0}
	}

	sqrtDisc := cmplx.Sqrt(complex(b*b-4*a*c, 0))
	den := complex(2*a, 0)
	return [2]complex128{
		(-complex(b, 0) + sqrtDisc) / den,
		(-complex(b, 0) - sqrtDisc) / den,
	}
}
