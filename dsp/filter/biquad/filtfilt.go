package biquad

// PadLength returns the number of samples FiltFilt reflects onto each end
// of the input for a cascade of the given number of sections.
func PadLength(sections int) int {
	return 3 * (2*sections + 1)
}

// FiltFilt applies the cascade described by coeffs forward and then
// backward over x and returns a new slice of the same length. The input is
// not modified.
//
// Each end is extended by an odd reflection of PadLength samples, shortened
// to len(x)-1 for short inputs, and every pass starts from the steady state
// the cascade would reach for a constant input equal to the edge sample.
func FiltFilt(coeffs []Coefficients, x []float64) []float64 {
	return NewChain(coeffs).FiltFilt(x)
}

// FiltFilt runs the chain forward and backward over x. It overwrites the
// section delay lines.
func (c *Chain) FiltFilt(x []float64) []float64 {
	n := len(x)
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	if len(c.sections) == 0 {
		for i, v := range x {
			out[i] = c.gain * v
		}
		return out
	}

	pad := min(PadLength(len(c.sections)), n-1)
	ext := oddExtend(x, pad)
	zi := c.steadyStates()

	c.setScaledState(zi, ext[0])
	c.processBlock(ext)

	c.setScaledState(zi, ext[len(ext)-1])
	c.processBlockReverse(ext)

	copy(out, ext[pad:pad+n])
	return out
}

// steadyStates returns, per section, the delay-line state reached for a
// unit constant input to the chain. Each section sees the DC output of the
// sections before it.
func (c *Chain) steadyStates() [][2]float64 {
	states := make([][2]float64, len(c.sections))
	scale := c.gain
	for i := range c.sections {
		s := c.sections[i].steadyState()
		states[i] = [2]float64{s[0] * scale, s[1] * scale}
		scale *= c.sections[i].DCGain()
	}
	return states
}

func (c *Chain) setScaledState(unit [][2]float64, edge float64) {
	for i := range c.sections {
		c.sections[i].state = [2]float64{unit[i][0] * edge, unit[i][1] * edge}
	}
}

// oddExtend returns x with pad samples of point-symmetric reflection about
// each end sample prepended and appended.
func oddExtend(x []float64, pad int) []float64 {
	n := len(x)
	ext := make([]float64, n+2*pad)
	first, last := x[0], x[n-1]
	for i := 0; i < pad; i++ {
		ext[i] = 2*first - x[pad-i]
		ext[pad+n+i] = 2*last - x[n-2-i]
	}
	copy(ext[pad:], x)
	return ext
}
