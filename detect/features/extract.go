// Package features computes per-event and per-session features for
// detected ripples: dominant frequency, envelope amplitudes in the ripple,
// sharp-wave and theta bands, firing-rate coupling and the low-theta
// occupancy of the session.
package features

import (
	"fmt"
	"math"

	"github.com/seancoady-ox/SWRS-SLab-HT2025/detect/edges"
	"github.com/seancoady-ox/SWRS-SLab-HT2025/dsp/filter/zerophase"
	"github.com/seancoady-ox/SWRS-SLab-HT2025/dsp/spectrum"
	stats "github.com/seancoady-ox/SWRS-SLab-HT2025/stats/time"
)

// lowThetaDivisor converts the low-theta sample count to seconds at the
// reference 1 kHz rate.
const lowThetaDivisor = 1000.0

// Session holds per-recording aggregates.
type Session struct {
	// LowThetaPerSecond is the count of samples with negative theta z and a
	// sharp-wave/theta ratio above the threshold, divided by 1000.
	LowThetaPerSecond float64
	// MeanSpikeRate is the mean firing rate over the whole recording.
	MeanSpikeRate float64
}

// Result holds the extracted features and the session series they were
// computed from.
type Result struct {
	Events  Events
	Session Session

	Ripple        []float64
	ThetaEnvelope []float64
	Ratio         []float64
	ThetaZ        []float64
}

// Extractor computes features with a fixed, validated configuration. It is
// safe for concurrent use.
type Extractor struct {
	cfg Config

	ripple    zerophase.Cascade
	sharpWave *zerophase.Filter
	theta     *zerophase.Filter
}

// New validates cfg and designs its filters.
func New(cfg Config) (*Extractor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	design := func(name string, b Band) (*zerophase.Filter, error) {
		f, err := zerophase.NewBandpass(b.LowHz, b.HighHz, cfg.SampleRate, b.Order)
		if err != nil {
			return nil, fmt.Errorf("features: %s band: %w", name, err)
		}
		return f, nil
	}

	ripple, err := design("ripple", cfg.Ripple)
	if err != nil {
		return nil, err
	}
	sharpWave, err := design("sharp-wave", cfg.SharpWave)
	if err != nil {
		return nil, err
	}
	theta, err := design("theta", cfg.Theta)
	if err != nil {
		return nil, err
	}

	e := &Extractor{cfg: cfg, ripple: zerophase.Cascade{ripple}, sharpWave: sharpWave, theta: theta}
	if cfg.Notch.Order > 0 {
		notch, err := zerophase.NewBandstop(cfg.Notch.LowHz, cfg.Notch.HighHz, cfg.SampleRate, cfg.Notch.Order)
		if err != nil {
			return nil, fmt.Errorf("features: notch: %w", err)
		}
		e.ripple = append(e.ripple, notch)
	}

	return e, nil
}

// Config returns the extractor configuration.
func (e *Extractor) Config() Config { return e.cfg }

// Extract computes features for every event in events. lfp and rate must
// have equal length and every event must lie inside them. Inputs are not
// modified.
func (e *Extractor) Extract(lfp, rate []float64, events edges.Set) (Result, error) {
	n := len(lfp)
	if len(rate) != n {
		return Result{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, n, len(rate))
	}
	if err := events.Validate(); err != nil {
		return Result{}, fmt.Errorf("features: %w", err)
	}
	if k := events.Len(); k > 0 && (events.Onsets[0] < 0 || events.Offsets[k-1] > n) {
		return Result{}, fmt.Errorf("%w: [%d, %d) in %d samples", ErrEventRange, events.Onsets[0], events.Offsets[k-1], n)
	}

	ripple := e.ripple.Apply(lfp)
	rippleEnv := spectrum.Envelope(ripple)
	spwEnv := spectrum.Envelope(e.sharpWave.Apply(lfp))
	thetaEnv := spectrum.Envelope(e.theta.Apply(lfp))

	smoothTheta := stats.MovingAverage(thetaEnv, e.cfg.ThetaSmoothing)
	ratio := make([]float64, n)
	for i := range ratio {
		ratio[i] = spwEnv[i] / smoothTheta[i]
	}
	thetaZ := stats.ZScore(thetaEnv)

	low := 0
	for i := range thetaZ {
		if thetaZ[i] < 0 && ratio[i] > e.cfg.RatioThreshold {
			low++
		}
	}

	pad := e.cfg.Padding
	out := make(Events, events.Len())
	for i := range out {
		sp := events.Span(i)
		padded := sp.Pad(pad, pad, n)
		before, after := sp.Before(pad, n), sp.After(pad, n)

		out[i] = Event{
			Onset:          sp.Start,
			Offset:         sp.End,
			Duration:       sp.Len(),
			Frequency:      spectrum.DominantFrequency(ripple[sp.Start:sp.End], e.cfg.SampleRate),
			RippleEnvelope: stats.MeanRange(rippleEnv, padded.Start, padded.End),
			MaxSharpWave:   stats.MaxRange(spwEnv, sp.Start, sp.End),
			MeanSharpWave:  stats.MeanRange(spwEnv, sp.Start, sp.End),
			MeanTheta: stats.NanMean(
				stats.MeanRange(thetaEnv, before.Start, before.End),
				stats.MeanRange(thetaEnv, after.Start, after.End),
			),
			MeanSpike: stats.MeanRange(rate, sp.Start, sp.End),
			Ratio:     stats.MeanRange(ratio, sp.Start, sp.End),
			ThetaZ:    stats.MeanRange(thetaZ, sp.Start, sp.End),
		}
	}

	return Result{
		Events: out,
		Session: Session{
			LowThetaPerSecond: float64(low) / lowThetaDivisor,
			MeanSpikeRate:     stats.Mean(rate),
		},
		Ripple:        ripple,
		ThetaEnvelope: thetaEnv,
		Ratio:         ratio,
		ThetaZ:        thetaZ,
	}, nil
}

// Extract builds an Extractor from opts and runs it.
func Extract(lfp, rate []float64, events edges.Set, opts ...Option) (Result, error) {
	e, err := New(NewConfig(opts...))
	if err != nil {
		return Result{}, err
	}
	return e.Extract(lfp, rate, events)
}

// Valid reports whether an event passes the validity rule: sharp-wave/theta
// ratio above ratioMin and in-event firing above spikeMin times the session
// mean. NaN comparisons fail.
func Valid(ev Event, s Session, ratioMin, spikeMin float64) bool {
	if !(ev.Ratio > ratioMin) {
		return false
	}
	rel := ev.MeanSpike / s.MeanSpikeRate
	return !math.IsNaN(rel) && rel > spikeMin
}
