package biquad

import (
	"math"
	"math/cmplx"

	"github.com/seancoady-ox/SWRS-SLab-HT2025/dsp/core"
)

// Response evaluates H(e^jw) at freqHz for a section run at sampleRate.
func (c *Coefficients) Response(freqHz, sampleRate float64) complex128 {
	return c.responseAt(2 * math.Pi * freqHz / sampleRate)
}

func (c *Coefficients) responseAt(w float64) complex128 {
	z1 := cmplx.Exp(complex(0, -w))
	z2 := z1 * z1
	num := complex(c.B0, 0) + complex(c.B1, 0)*z1 + complex(c.B2, 0)*z2
	den := 1 + complex(c.A1, 0)*z1 + complex(c.A2, 0)*z2
	return num / den
}

// CascadeResponse multiplies the section responses at w radians/sample.
func CascadeResponse(coeffs []Coefficients, w float64) complex128 {
	h := complex(1, 0)
	for i := range coeffs {
		h *= coeffs[i].responseAt(w)
	}
	return h
}

// Response is the single-pass response of the cascade, input gain included.
func (c *Chain) Response(freqHz, sampleRate float64) complex128 {
	h := complex(c.gain, 0)
	for i := range c.sections {
		h *= c.sections[i].Response(freqHz, sampleRate)
	}
	return h
}

// MagnitudeDB is 20*log10|H(f)| for one causal pass.
func (c *Chain) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return core.LinearToDB(cmplx.Abs(c.Response(freqHz, sampleRate)))
}

// ZeroPhaseDB is the attenuation FiltFilt applies at freqHz: the
// single-pass magnitude counted twice.
func (c *Chain) ZeroPhaseDB(freqHz, sampleRate float64) float64 {
	return 2 * c.MagnitudeDB(freqHz, sampleRate)
}
