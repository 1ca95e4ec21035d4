// Package zerophase applies Butterworth band filters forward and backward
// over complete signals so that filtered features stay aligned in time with
// the input.
package zerophase

import (
	"fmt"

	"github.com/seancoady-ox/SWRS-SLab-HT2025/dsp/core"
	"github.com/seancoady-ox/SWRS-SLab-HT2025/dsp/filter/biquad"
	"github.com/seancoady-ox/SWRS-SLab-HT2025/dsp/filter/design/pass"
)

// Kind selects the response shape of a Filter.
type Kind int

const (
	// BandPass keeps [Low, High].
	BandPass Kind = iota
	// BandStop rejects [Low, High].
	BandStop
)

func (k Kind) String() string {
	switch k {
	case BandPass:
		return "bandpass"
	case BandStop:
		return "bandstop"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Filter is a designed Butterworth band filter. It holds no state between
// calls to Apply and is safe for concurrent use.
type Filter struct {
	Kind       Kind
	Low, High  float64
	Order      int
	SampleRate float64

	sections []biquad.Coefficients
}

// NewBandpass designs a band-pass filter of the given prototype order.
func NewBandpass(low, high, sampleRate float64, order int) (*Filter, error) {
	sections, err := pass.ButterworthBandpass(low, high, order, sampleRate)
	if err != nil {
		return nil, fmt.Errorf("zerophase: bandpass: %w", err)
	}

	return &Filter{
		Kind: BandPass, Low: low, High: high, Order: order, SampleRate: sampleRate,
		sections: sections,
	}, nil
}

// NewBandstop designs a band-stop filter of the given prototype order.
func NewBandstop(low, high, sampleRate float64, order int) (*Filter, error) {
	sections, err := pass.ButterworthBandstop(low, high, order, sampleRate)
	if err != nil {
		return nil, fmt.Errorf("zerophase: bandstop: %w", err)
	}

	return &Filter{
		Kind: BandStop, Low: low, High: high, Order: order, SampleRate: sampleRate,
		sections: sections,
	}, nil
}

// Apply filters x with zero net phase and returns a new slice.
func (f *Filter) Apply(x []float64) []float64 {
	return biquad.FiltFilt(f.sections, x)
}

// Sections returns a copy of the second-order sections.
func (f *Filter) Sections() []biquad.Coefficients {
	out := make([]biquad.Coefficients, len(f.sections))
	copy(out, f.sections)
	return out
}

func (f *Filter) String() string {
	return fmt.Sprintf("%s %g-%g Hz order %d @ %g Hz", f.Kind, f.Low, f.High, f.Order, f.SampleRate)
}

// Bandpass designs and applies a zero-phase band-pass filter in one call.
func Bandpass(x []float64, low, high, sampleRate float64, order int) ([]float64, error) {
	f, err := NewBandpass(low, high, sampleRate, order)
	if err != nil {
		return nil, err
	}
	return f.Apply(x), nil
}

// Bandstop designs and applies a zero-phase band-stop filter in one call.
func Bandstop(x []float64, low, high, sampleRate float64, order int) ([]float64, error) {
	f, err := NewBandstop(low, high, sampleRate, order)
	if err != nil {
		return nil, err
	}
	return f.Apply(x), nil
}

// Cascade applies filters one after another, each with zero phase.
type Cascade []*Filter

// Apply runs every filter in order. An empty cascade returns a copy of x.
func (c Cascade) Apply(x []float64) []float64 {
	if len(c) == 0 {
		return core.Clone(x)
	}

	out := c[0].Apply(x)
	for _, f := range c[1:] {
		out = f.Apply(out)
	}
	return out
}
