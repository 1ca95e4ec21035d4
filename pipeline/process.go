package pipeline

import (
	"fmt"

	"github.com/seancoady-ox/SWRS-SLab-HT2025/detect/features"
	"github.com/seancoady-ox/SWRS-SLab-HT2025/detect/ripple"
	"github.com/seancoady-ox/SWRS-SLab-HT2025/dsp/core"
	"github.com/seancoady-ox/SWRS-SLab-HT2025/recording"
	stats "github.com/seancoady-ox/SWRS-SLab-HT2025/stats/time"
)

// Summary is one row of the output table. Means are over valid events and
// are NaN when a recording has none.
type Summary struct {
	Filename  string    `json:"filename" yaml:"filename"`
	Condition Condition `json:"condition" yaml:"condition"`
	Phase     Phase     `json:"phase" yaml:"phase"`

	LowThetaPerSecond float64 `json:"low_theta_per_second" yaml:"low_theta_per_second"`
	// MeanDuration is in samples.
	MeanDuration      float64 `json:"mean_duration" yaml:"mean_duration"`
	MeanRatio         float64 `json:"mean_ratio" yaml:"mean_ratio"`
	MeanThetaZ        float64 `json:"mean_theta_z" yaml:"mean_theta_z"`
	RippleCount       int     `json:"ripple_count" yaml:"ripple_count"`
	MeanFrequency     float64 `json:"mean_frequency" yaml:"mean_frequency"`
	MaxSPWEnvelope    float64 `json:"max_spw_envelope" yaml:"max_spw_envelope"`
	MeanThetaEnvelope float64 `json:"mean_theta_envelope" yaml:"mean_theta_envelope"`
	MinDeflections    float64 `json:"min_deflections" yaml:"min_deflections"`
	RippleEnvelope    float64 `json:"ripple_envelope" yaml:"ripple_envelope"`
	MeanSpike         float64 `json:"mean_spike" yaml:"mean_spike"`
}

// FileResult is the full outcome of one recording.
type FileResult struct {
	Path    string
	Summary Summary
	// Events holds every detected event; Valid the subset passing the
	// validity rule.
	Events  features.Events
	Valid   features.Events
	Session features.Session
	Trace   ripple.Trace
}

// Processor runs detection and feature extraction with designed filters.
// It is safe for concurrent use.
type Processor struct {
	opts      Options
	detector  *ripple.Detector
	extractor *features.Extractor
}

// NewProcessor validates opts and designs every filter once.
func NewProcessor(opts Options) (*Processor, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	det, err := ripple.New(opts.Ripple)
	if err != nil {
		return nil, err
	}
	ext, err := features.New(opts.Features)
	if err != nil {
		return nil, err
	}
	return &Processor{opts: opts, detector: det, extractor: ext}, nil
}

// Options returns the processor options.
func (p *Processor) Options() Options { return p.opts }

// Process classifies rec, detects ripples, extracts features and
// summarises the valid events.
func (p *Processor) Process(rec *recording.Recording) (FileResult, error) {
	cond, phase, err := Classify(RelativeTo(rec.Path, p.opts.Roots), p.opts.Rules)
	if err != nil {
		return FileResult{}, err
	}
	if !core.NearlyEqual(rec.SampleRate, p.opts.Ripple.SampleRate, rateTolerance) {
		return FileResult{}, fmt.Errorf("pipeline: %s: sample rate %g, configured %g",
			rec.Name, rec.SampleRate, p.opts.Ripple.SampleRate)
	}

	det := p.detector.Detect(rec.LFP)
	feat, err := p.extractor.Extract(rec.LFP, rec.FiringRate, det.Events)
	if err != nil {
		return FileResult{}, fmt.Errorf("pipeline: %s: %w", rec.Name, err)
	}

	valid := feat.Events.Filter(func(ev features.Event) bool {
		return features.Valid(ev, feat.Session, p.opts.RatioThreshold, p.opts.SpikeThreshold)
	})

	return FileResult{
		Path:    rec.Path,
		Summary: Summarize(rec.Name, cond, phase, valid, feat.Session),
		Events:  feat.Events,
		Valid:   valid,
		Session: feat.Session,
		Trace:   det.Trace,
	}, nil
}

// ProcessRecording builds a Processor from opts and runs it on rec.
func ProcessRecording(rec *recording.Recording, opts Options) (FileResult, error) {
	p, err := NewProcessor(opts)
	if err != nil {
		return FileResult{}, err
	}
	return p.Process(rec)
}

// Summarize aggregates valid events into a table row.
func Summarize(name string, cond Condition, phase Phase, valid features.Events, s features.Session) Summary {
	return Summary{
		Filename:          name,
		Condition:         cond,
		Phase:             phase,
		LowThetaPerSecond: s.LowThetaPerSecond,
		MeanDuration:      stats.Mean(valid.Durations()),
		MeanRatio:         stats.Mean(valid.Ratios()),
		MeanThetaZ:        stats.Mean(valid.ThetaZs()),
		RippleCount:       len(valid),
		MeanFrequency:     stats.Mean(valid.Frequencies()),
		MaxSPWEnvelope:    stats.Mean(valid.MaxSharpWaves()),
		MeanThetaEnvelope: stats.Mean(valid.MeanThetas()),
		MinDeflections:    stats.Mean(valid.MeanSharpWaves()),
		RippleEnvelope:    stats.Mean(valid.RippleEnvelopes()),
		MeanSpike:         stats.Mean(valid.MeanSpikes()),
	}
}
