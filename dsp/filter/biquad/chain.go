package biquad

import vecmath "github.com/cwbudde/algo-vecmath"

// Chain is an ordered cascade of second-order sections with an input gain.
// It is meant for whole recordings held in memory: Filter and FiltFilt
// return new slices and leave the caller's samples untouched.
type Chain struct {
	sections []Section
	gain     float64
}

type chainConfig struct {
	gain float64
}

// ChainOption configures a Chain.
type ChainOption func(*chainConfig)

// WithGain scales the input before the first section. Default 1.
func WithGain(g float64) ChainOption {
	return func(cfg *chainConfig) { cfg.gain = g }
}

// NewChain builds a cascade with one Section per coefficient set, in order.
func NewChain(coeffs []Coefficients, opts ...ChainOption) *Chain {
	cfg := chainConfig{gain: 1}
	for _, o := range opts {
		o(&cfg)
	}

	sections := make([]Section, len(coeffs))
	for i, c := range coeffs {
		sections[i] = Section{Coefficients: c}
	}

	return &Chain{sections: sections, gain: cfg.gain}
}

// Filter runs the cascade once, causally, from zero state over a copy of x.
// The output lags the input by the group delay of the cascade.
func (c *Chain) Filter(x []float64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)
	c.Reset()
	c.processBlock(out)
	c.Reset()
	return out
}

func (c *Chain) processBlock(buf []float64) {
	if c.gain != 1 {
		vecmath.ScaleBlockInPlace(buf, c.gain)
	}
	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

func (c *Chain) processBlockReverse(buf []float64) {
	if c.gain != 1 {
		vecmath.ScaleBlockInPlace(buf, c.gain)
	}
	for i := range c.sections {
		c.sections[i].ProcessBlockReverse(buf)
	}
}

// Reset zeroes every section's delay line.
func (c *Chain) Reset() {
	for i := range c.sections {
		c.sections[i].state = [2]float64{}
	}
}

// Order is the design order of the cascade, two per section.
func (c *Chain) Order() int { return 2 * len(c.sections) }

// Gain returns the input gain.
func (c *Chain) Gain() float64 { return c.gain }

// Coefficients returns a copy of the per-section coefficients.
func (c *Chain) Coefficients() []Coefficients {
	out := make([]Coefficients, len(c.sections))
	for i := range c.sections {
		out[i] = c.sections[i].Coefficients
	}
	return out
}

// DCGain is the gain of one causal pass for a constant input, including
// the input gain. A zero-phase pass applies it twice.
func (c *Chain) DCGain() float64 {
	g := c.gain
	for i := range c.sections {
		g *= c.sections[i].DCGain()
	}
	return g
}
