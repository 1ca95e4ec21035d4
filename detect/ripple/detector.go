package ripple

import (
	"fmt"
	"strings"

	"github.com/seancoady-ox/SWRS-SLab-HT2025/detect/edges"
	"github.com/seancoady-ox/SWRS-SLab-HT2025/dsp/filter/zerophase"
	stats "github.com/seancoady-ox/SWRS-SLab-HT2025/stats/time"
)

// StageCount records how many events survived a named stage.
type StageCount struct {
	Stage string
	Count int
}

// Trace lists per-stage survivor counts in pipeline order.
type Trace []StageCount

func (t Trace) String() string {
	parts := make([]string, len(t))
	for i, s := range t {
		parts[i] = fmt.Sprintf("%s=%d", s.Stage, s.Count)
	}
	return strings.Join(parts, " ")
}

// Stage names used in Trace.
const (
	StageThresholded = "thresholded"
	StageMerged      = "merged"
	StageDuration    = "duration"
	StageMean        = "mean-amplitude"
	StagePeak        = "peak-amplitude"
)

// Result is the outcome of a detection run.
type Result struct {
	Events   edges.Set
	Filtered []float64
	Envelope []float64
	Trace    Trace
}

// Detector runs ripple detection with a fixed, validated configuration.
// It is safe for concurrent use.
type Detector struct {
	cfg     Config
	filters zerophase.Cascade

	smoothWidth int
	minLen1     int
	minLen2     int
	maxLen      int
	minGap      int
}

// New validates cfg and designs its filters.
func New(cfg Config) (*Detector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	bp, err := zerophase.NewBandpass(cfg.LowHz, cfg.HighHz, cfg.SampleRate, cfg.Order)
	if err != nil {
		return nil, fmt.Errorf("ripple: %w", err)
	}
	filters := zerophase.Cascade{bp}

	if cfg.NotchOrder > 0 {
		notch, err := zerophase.NewBandstop(cfg.NotchLowHz, cfg.NotchHighHz, cfg.SampleRate, cfg.NotchOrder)
		if err != nil {
			return nil, fmt.Errorf("ripple: notch: %w", err)
		}
		filters = append(filters, notch)
	}

	return &Detector{
		cfg:         cfg,
		filters:     filters,
		smoothWidth: stats.BoxWidth(smoothRefWidth, smoothRefRate, cfg.SampleRate),
		minLen1:     cfg.samples(cfg.MinDuration1),
		minLen2:     cfg.samples(cfg.MinDuration2),
		maxLen:      cfg.samples(cfg.MaxDuration),
		minGap:      cfg.samples(cfg.MinGap),
	}, nil
}

// Config returns the detector configuration.
func (d *Detector) Config() Config { return d.cfg }

// Filters returns the filter cascade applied to the raw signal.
func (d *Detector) Filters() zerophase.Cascade { return d.filters }

// SmoothWidth returns the envelope box width in samples.
func (d *Detector) SmoothWidth() int { return d.smoothWidth }

// Detect runs every stage over lfp. The input is not modified.
func (d *Detector) Detect(lfp []float64) Result {
	filtered := d.filters.Apply(lfp)
	env := Envelope(filtered, d.smoothWidth)

	trace := make(Trace, 0, 5)
	record := func(stage string, s edges.Set) edges.Set {
		trace = append(trace, StageCount{Stage: stage, Count: s.Len()})
		return s
	}

	s := record(StageThresholded, edges.Threshold(env, d.cfg.LowThreshold))
	s = record(StageMerged, MergeGaps(DropShort(s, d.minLen1), d.minGap))
	s = record(StageDuration, FilterDuration(s, d.minLen2, d.maxLen))
	s = record(StageMean, FilterMeanAmplitude(s, env, d.cfg.MeanThreshold))
	s = record(StagePeak, FilterPeakAmplitude(s, env, d.cfg.HighThreshold))

	return Result{Events: s, Filtered: filtered, Envelope: env, Trace: trace}
}

// Detect builds a Detector from opts and runs it over lfp.
func Detect(lfp []float64, opts ...Option) (Result, error) {
	d, err := New(NewConfig(opts...))
	if err != nil {
		return Result{}, err
	}
	return d.Detect(lfp), nil
}
