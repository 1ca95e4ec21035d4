package biquad

import (
	"math"
	"testing"
)

const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func smoother() Coefficients {
	return Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
}

func TestProcessSample_DFIIT(t *testing.T) {
	// Impulse traced by hand through B=[0.25 0.5 0.25], A=[1 -0.2 0.04]:
	//
	// n=0: y=0.25         d0=0.5+0.05=0.55     d1=0.25-0.01=0.24
	// n=1: y=0.55         d0=0.11+0.24=0.35    d1=-0.022
	// n=2: y=0.35         d0=0.07-0.022=0.048  d1=-0.014
	// n=3: y=0.048
	s := NewSection(smoother())

	want := []float64{0.25, 0.55, 0.35, 0.048}
	for i, w := range want {
		var x float64
		if i == 0 {
			x = 1
		}
		if y := s.ProcessSample(x); !almostEqual(y, w, eps) {
			t.Errorf("sample %d: got %.15f, want %.15f", i, y, w)
		}
	}
}

func TestProcessBlock_MatchesSample(t *testing.T) {
	input := []float64{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8}

	s1 := NewSection(smoother())
	ref := make([]float64, len(input))
	for i, x := range input {
		ref[i] = s1.ProcessSample(x)
	}

	s2 := NewSection(smoother())
	block := append([]float64(nil), input...)
	s2.ProcessBlock(block)

	for i := range block {
		if !almostEqual(block[i], ref[i], eps) {
			t.Errorf("sample %d: ProcessBlock=%.15f, ProcessSample=%.15f", i, block[i], ref[i])
		}
	}
	if s1.State() != s2.State() {
		t.Fatalf("state mismatch: %v vs %v", s1.State(), s2.State())
	}
}

func TestProcessBlockReverse_MatchesReversedInput(t *testing.T) {
	input := []float64{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8}
	n := len(input)

	rev := make([]float64, n)
	for i := range input {
		rev[i] = input[n-1-i]
	}
	s1 := NewSection(smoother())
	s1.ProcessBlock(rev)

	s2 := NewSection(smoother())
	block := append([]float64(nil), input...)
	s2.ProcessBlockReverse(block)

	for i := range block {
		if !almostEqual(block[i], rev[n-1-i], eps) {
			t.Errorf("sample %d: reverse=%.15f, want %.15f", i, block[i], rev[n-1-i])
		}
	}
}

func TestProcessSample_PureDelay(t *testing.T) {
	s := NewSection(Coefficients{B1: 1})
	input := []float64{1, 2, 3, 4, 5}
	want := []float64{0, 1, 2, 3, 4}
	for i, x := range input {
		if y := s.ProcessSample(x); !almostEqual(y, want[i], eps) {
			t.Errorf("sample %d: got %v, want %v", i, y, want[i])
		}
	}
}

func TestChainReset(t *testing.T) {
	c := NewChain(twoSectionCoeffs())
	c.processBlock([]float64{1, 0.5})
	if c.sections[0].State() == [2]float64{} {
		t.Fatal("state should be non-zero after processing")
	}

	c.Reset()
	for i := range c.sections {
		if st := c.sections[i].State(); st != [2]float64{} {
			t.Fatalf("section %d not reset: %v", i, st)
		}
	}
}

func TestState_SaveRestore(t *testing.T) {
	s := NewSection(smoother())
	s.ProcessSample(1)
	s.ProcessSample(0.5)
	saved := s.State()

	y3 := s.ProcessSample(-0.3)
	y4 := s.ProcessSample(0.7)

	s.SetState(saved)
	if y := s.ProcessSample(-0.3); !almostEqual(y, y3, eps) {
		t.Errorf("sample 3: got %v after restore, want %v", y, y3)
	}
	if y := s.ProcessSample(0.7); !almostEqual(y, y4, eps) {
		t.Errorf("sample 4: got %v after restore, want %v", y, y4)
	}
}

func TestDCGain(t *testing.T) {
	c := smoother()
	want := 1 / 0.84
	if g := c.DCGain(); !almostEqual(g, want, eps) {
		t.Fatalf("DCGain = %v, want %v", g, want)
	}
	if g := (Coefficients{B0: 1, A1: -1}).DCGain(); g != 0 {
		t.Fatalf("integrator DCGain = %v, want 0", g)
	}
}

func TestSteadyState_HoldsConstantOutput(t *testing.T) {
	c := smoother()
	s := NewSection(c)
	s.SetState(c.steadyState())

	want := c.DCGain()
	for i := range 50 {
		if y := s.ProcessSample(1); !almostEqual(y, want, 1e-12) {
			t.Fatalf("sample %d: got %v, want %v", i, y, want)
		}
	}
}

func TestScaled(t *testing.T) {
	c := smoother().Scaled(2)
	if c.B0 != 0.5 || c.B1 != 1 || c.B2 != 0.5 || c.A1 != -0.2 || c.A2 != 0.04 {
		t.Fatalf("unexpected scaled coefficients: %+v", c)
	}
}
