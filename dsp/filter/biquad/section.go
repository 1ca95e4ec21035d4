package biquad

// Coefficients of one second-order section, normalised so that a0 = 1.
// Processing uses Direct Form II Transposed:
//
//	y  = B0*x + s0
//	s0 = B1*x - A1*y + s1
//	s1 = B2*x - A2*y
type Coefficients struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// DCGain is H(1). Zero when the denominator vanishes at DC.
func (c Coefficients) DCGain() float64 {
	den := 1 + c.A1 + c.A2
	if den == 0 {
		return 0
	}
	return (c.B0 + c.B1 + c.B2) / den
}

// Scaled multiplies the numerator by g.
func (c Coefficients) Scaled(g float64) Coefficients {
	c.B0 *= g
	c.B1 *= g
	c.B2 *= g
	return c
}

// steadyState is the delay line a section holds after a long run of unit
// input, so that a constant signal passes without a start-up transient.
func (c Coefficients) steadyState() [2]float64 {
	if 1+c.A1+c.A2 == 0 {
		return [2]float64{}
	}
	k := c.DCGain()
	s1 := c.B2 - c.A2*k
	s0 := c.B1 - c.A1*k + s1
	return [2]float64{s0, s1}
}

// Section is a biquad with its delay line.
type Section struct {
	Coefficients

	state [2]float64
}

// NewSection returns a zero-state section.
func NewSection(c Coefficients) *Section {
	return &Section{Coefficients: c}
}

// ProcessSample filters one sample.
func (s *Section) ProcessSample(x float64) float64 {
	y := s.B0*x + s.state[0]
	s.state[0] = s.B1*x - s.A1*y + s.state[1]
	s.state[1] = s.B2*x - s.A2*y
	return y
}

// ProcessBlock filters buf in place, first sample to last.
func (s *Section) ProcessBlock(buf []float64) {
	c, st := s.Coefficients, s.state
	for i, x := range buf {
		y := c.B0*x + st[0]
		st[0] = c.B1*x - c.A1*y + st[1]
		st[1] = c.B2*x - c.A2*y
		buf[i] = y
	}
	s.state = st
}

// ProcessBlockReverse filters buf in place, last sample to first, which is
// the same as filtering the time-reversed block.
func (s *Section) ProcessBlockReverse(buf []float64) {
	c, st := s.Coefficients, s.state
	for i := len(buf) - 1; i >= 0; i-- {
		x := buf[i]
		y := c.B0*x + st[0]
		st[0] = c.B1*x - c.A1*y + st[1]
		st[1] = c.B2*x - c.A2*y
		buf[i] = y
	}
	s.state = st
}

// State returns the delay line.
func (s *Section) State() [2]float64 { return s.state }

// SetState overwrites the delay line.
func (s *Section) SetState(state [2]float64) { s.state = state }
