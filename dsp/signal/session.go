package signal

import "fmt"

// SessionConfig describes a synthetic recording.
type SessionConfig struct {
	Samples        int
	NoiseStd       float64
	ThetaHz        float64
	ThetaAmplitude float64

	Ripples         int
	RippleHz        float64
	RippleAmplitude float64
	RippleSamples   int
	SharpWaveDepth  float64

	BaselineRate float64
	RateNoise    float64
	RateGain     float64
}

// DefaultSessionConfig returns a 60 s session at the generator rate with
// twenty 100 ms ripples at 150 Hz.
func DefaultSessionConfig(sampleRate float64) SessionConfig {
	return SessionConfig{
		Samples:         int(60 * sampleRate),
		NoiseStd:        1,
		ThetaHz:         8,
		ThetaAmplitude:  1,
		Ripples:         20,
		RippleHz:        150,
		RippleAmplitude: 5,
		RippleSamples:   int(0.1 * sampleRate),
		SharpWaveDepth:  3,
		BaselineRate:    5,
		RateNoise:       0.2,
		RateGain:        4,
	}
}

// Session is a generated recording with the ground-truth burst positions.
type Session struct {
	LFP        []float64
	FiringRate []float64
	Bursts     []Burst
}

// Session synthesizes an LFP trace and a firing-rate trace.
func (g *Generator) Session(cfg SessionConfig) (Session, error) {
	lfp, err := g.GaussianNoise(cfg.NoiseStd, cfg.Samples)
	if err != nil {
		return Session{}, err
	}

	if cfg.ThetaAmplitude != 0 {
		theta, err := g.Sine(cfg.ThetaHz, cfg.ThetaAmplitude, cfg.Samples)
		if err != nil {
			return Session{}, err
		}
		for i := range lfp {
			lfp[i] += theta[i]
		}
	}

	gap := cfg.RippleSamples
	margin := cfg.RippleSamples
	starts, err := g.Schedule(cfg.Ripples, cfg.RippleSamples, gap, margin, cfg.Samples)
	if err != nil {
		return Session{}, fmt.Errorf("signal: session: %w", err)
	}

	bursts := make([]Burst, len(starts))
	for i, s := range starts {
		bursts[i] = Burst{Start: s, Length: cfg.RippleSamples, FreqHz: cfg.RippleHz, Amplitude: cfg.RippleAmplitude}
		g.AddBurst(lfp, bursts[i])
		g.AddDeflection(lfp, s+cfg.RippleSamples/2, 2*cfg.RippleSamples, cfg.SharpWaveDepth)
	}

	rate, err := g.FiringRate(cfg.BaselineRate, cfg.RateNoise, cfg.RateGain, bursts, cfg.Samples)
	if err != nil {
		return Session{}, err
	}

	return Session{LFP: lfp, FiringRate: rate, Bursts: bursts}, nil
}
