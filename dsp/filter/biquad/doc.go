// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Multiple sections are
// cascaded via [Chain] for higher-order filters such as the Butterworth
// band designs in dsp/filter/design/pass.
//
// [FiltFilt] runs a cascade forward and then backward over a complete
// in-memory signal, so the squared magnitude response is applied with zero
// net phase. Edges are handled with an odd reflection of the signal and
// steady-state initial conditions, which keeps start-up transients out of
// the returned samples.
//
// This package provides the processing runtime only. Coefficient design
// lives in dsp/filter/design/pass.
package biquad
