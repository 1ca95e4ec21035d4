package pass

import (
	"math"
	"math/cmplx"
	"sort"

	"github.com/seancoady-ox/SWRS-SLab-HT2025/dsp/filter/biquad"
)

// butterworthPrototype returns the poles of the normalized analog
// Butterworth low-pass of the given order (cutoff 1 rad/s, no finite zeros).
func butterworthPrototype(order int) []complex128 {
	poles := make([]complex128, 0, order)
	for m := -order + 1; m < order; m += 2 {
		theta := math.Pi * float64(m) / float64(2*order)
		poles = append(poles, -cmplx.Exp(complex(0, theta)))
	}
	return poles
}

// lowpassToBandpass splits every prototype pole into the two band-pass
// poles centred on w0 with bandwidth bw.
func lowpassToBandpass(proto []complex128, w0, bw float64) []complex128 {
	out := make([]complex128, 0, 2*len(proto))
	w02 := complex(w0*w0, 0)
	for _, p := range proto {
		pl := p * complex(bw/2, 0)
		d := cmplx.Sqrt(pl*pl - w02)
		out = append(out, pl+d, pl-d)
	}
	return out
}

// lowpassToBandstop is the band-stop counterpart of lowpassToBandpass.
func lowpassToBandstop(proto []complex128, w0, bw float64) []complex128 {
	out := make([]complex128, 0, 2*len(proto))
	w02 := complex(w0*w0, 0)
	for _, p := range proto {
		pl := complex(bw/2, 0) / p
		d := cmplx.Sqrt(pl*pl - w02)
		out = append(out, pl+d, pl-d)
	}
	return out
}

// bilinear maps s-plane roots onto the z-plane.
func bilinear(roots []complex128, sampleRate float64) []complex128 {
	fs2 := complex(2*sampleRate, 0)
	out := make([]complex128, len(roots))
	for i, r := range roots {
		out[i] = (fs2 + r) / (fs2 - r)
	}
	return out
}

// poleSections turns a set of z-plane poles closed under conjugation into
// denominators. Complex poles contribute one section per conjugate pair;
// real poles are paired in order of magnitude.
func poleSections(poles []complex128) [][2]float64 {
	const imagTol = 1e-10

	var (
		dens  [][2]float64
		reals []float64
	)
	for _, p := range poles {
		re, im := real(p), imag(p)
		tol := imagTol * max(1, cmplx.Abs(p))
		switch {
		case im > tol:
			dens = append(dens, [2]float64{-2 * re, re*re + im*im})
		case im >= -tol:
			reals = append(reals, re)
		}
	}

	sort.Float64s(reals)
	for i := 0; i+1 < len(reals); i += 2 {
		a, b := reals[i], reals[i+1]
		dens = append(dens, [2]float64{-(a + b), a * b})
	}
	if len(reals)%2 == 1 {
		dens = append(dens, [2]float64{-reals[len(reals)-1], 0})
	}

	return dens
}

// assemble pairs each denominator with the numerator num and scales the
// first section so the cascade has unit magnitude at w (rad/sample).
func assemble(dens [][2]float64, num [3]float64, w float64) []biquad.Coefficients {
	sections := make([]biquad.Coefficients, len(dens))
	for i, d := range dens {
		sections[i] = biquad.Coefficients{
			B0: num[0], B1: num[1], B2: num[2],
			A1: d[0], A2: d[1],
		}
	}

	if g := cmplx.Abs(biquad.CascadeResponse(sections, w)); g > 0 {
		sections[0] = sections[0].Scaled(1 / g)
	}

	return sections
}
