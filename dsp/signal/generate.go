// Package signal generates deterministic synthetic LFP sessions: Gaussian
// background noise, theta rhythm, ripple bursts riding on sharp-wave
// deflections, and a matching firing-rate trace.
package signal

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/seancoady-ox/SWRS-SLab-HT2025/dsp/core"
)

// ErrInvalidParameter is returned for non-positive lengths, rates or
// negative amplitudes.
var ErrInvalidParameter = errors.New("signal: invalid parameter")

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the random seed. Each generating method derives its own
// stream from it, so results do not depend on call order.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

func (g *Generator) rng(stream int64) *rand.Rand {
	return rand.New(rand.NewSource(g.seed*7919 + stream))
}

// Sine generates amplitude*sin(2*pi*f*t).
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("%w: sine samples must be > 0: %d", ErrInvalidParameter, samples)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// GaussianNoise generates deterministic N(0, std^2) noise.
func (g *Generator) GaussianNoise(std float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("%w: noise samples must be > 0: %d", ErrInvalidParameter, samples)
	}
	if std < 0 {
		return nil, fmt.Errorf("%w: noise std must be >= 0: %f", ErrInvalidParameter, std)
	}
	out := make([]float64, samples)
	rng := g.rng(0)
	for i := range out {
		out[i] = rng.NormFloat64() * std
	}
	return out, nil
}

// Burst is one oscillatory event embedded in a signal, in samples.
type Burst struct {
	Start     int
	Length    int
	FreqHz    float64
	Amplitude float64
}

// End returns the exclusive end sample of the burst.
func (b Burst) End() int { return b.Start + b.Length }

// AddBurst adds a rectangular-gated sine burst into x in place. Samples
// outside x are dropped.
func (g *Generator) AddBurst(x []float64, b Burst) {
	step := 2 * math.Pi * b.FreqHz / g.cfg.SampleRate
	lo := max(b.Start, 0)
	hi := min(b.End(), len(x))
	for i := lo; i < hi; i++ {
		x[i] += b.Amplitude * math.Sin(step*float64(i-b.Start))
	}
}

// AddDeflection adds a negative half-cosine deflection (a sharp wave)
// centred on the burst, spanning width samples.
func (g *Generator) AddDeflection(x []float64, centre, width int, depth float64) {
	if width <= 0 {
		return
	}
	start := centre - width/2
	for k := range width {
		i := start + k
		if i < 0 || i >= len(x) {
			continue
		}
		x[i] -= depth * math.Sin(math.Pi*float64(k)/float64(width))
	}
}

// Schedule places count non-overlapping bursts of the given length in a
// signal of n samples, keeping at least gap samples between neighbours and
// margin samples from either end. Start positions are jittered with the
// generator seed and returned in increasing order.
func (g *Generator) Schedule(count, length, gap, margin, n int) ([]int, error) {
	if count <= 0 {
		return nil, nil
	}
	slot := (n - 2*margin) / count
	if length <= 0 || slot < length+gap {
		return nil, fmt.Errorf("%w: %d bursts of %d samples do not fit in %d samples",
			ErrInvalidParameter, count, length, n)
	}

	rng := g.rng(1)
	starts := make([]int, count)
	for i := range starts {
		slack := slot - length - gap
		jitter := 0
		if slack > 0 {
			jitter = rng.Intn(slack + 1)
		}
		starts[i] = margin + i*slot + jitter
	}
	sort.Ints(starts)
	return starts, nil
}

// FiringRate returns a non-negative rate trace: baseline plus Gaussian
// jitter of relative size noise, multiplied by gain inside every burst.
func (g *Generator) FiringRate(baseline, noise, gain float64, bursts []Burst, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("%w: rate samples must be > 0: %d", ErrInvalidParameter, samples)
	}
	if baseline < 0 || noise < 0 || gain < 0 {
		return nil, fmt.Errorf("%w: rate parameters must be >= 0", ErrInvalidParameter)
	}

	out := make([]float64, samples)
	rng := g.rng(2)
	for i := range out {
		out[i] = max(0, baseline*(1+noise*rng.NormFloat64()))
	}
	for _, b := range bursts {
		for i := max(b.Start, 0); i < min(b.End(), samples); i++ {
			out[i] *= gain
		}
	}
	return out, nil
}
