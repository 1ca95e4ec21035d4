package pipeline

import (
	"fmt"

	"github.com/seancoady-ox/SWRS-SLab-HT2025/detect/features"
	"github.com/seancoady-ox/SWRS-SLab-HT2025/detect/ripple"
	"github.com/seancoady-ox/SWRS-SLab-HT2025/dsp/core"
	"github.com/seancoady-ox/SWRS-SLab-HT2025/recording"
)

// rateTolerance is the relative difference below which two sample rates
// are the same. EDF rates are derived from a record duration.
const rateTolerance = 1e-9

// Default validity thresholds.
const (
	DefaultRatioThreshold = 2.0
	DefaultSpikeThreshold = 2.0
)

// Options configures a batch run. All sample rates must agree.
type Options struct {
	Ripple    ripple.Config
	Features  features.Config
	Recording recording.Options
	Rules     []Rule

	// Roots are the directories recordings were discovered under. Only the
	// part of a path below its root is used for classification.
	Roots []string

	// RatioThreshold and SpikeThreshold define a valid event: mean
	// sharp-wave/theta ratio above RatioThreshold and in-event firing above
	// SpikeThreshold times the session mean.
	RatioThreshold float64
	SpikeThreshold float64

	// Workers bounds concurrent files; zero means GOMAXPROCS.
	Workers int
}

// DefaultOptions returns the standard settings at 1 kHz.
func DefaultOptions() Options {
	rc := ripple.DefaultConfig()
	return Options{
		Ripple:         rc,
		Features:       features.DefaultConfig(),
		Recording:      recording.DefaultOptions(rc.SampleRate),
		Rules:          DefaultRules(),
		RatioThreshold: DefaultRatioThreshold,
		SpikeThreshold: DefaultSpikeThreshold,
	}
}

// Validate checks the nested configurations and their agreement.
func (o Options) Validate() error {
	if err := o.Ripple.Validate(); err != nil {
		return err
	}
	if err := o.Features.Validate(); err != nil {
		return err
	}
	if !core.NearlyEqual(o.Ripple.SampleRate, o.Features.SampleRate, rateTolerance) ||
		!core.NearlyEqual(o.Ripple.SampleRate, o.Recording.SampleRate, rateTolerance) {
		return fmt.Errorf("pipeline: sample rates disagree: detector %g, features %g, recording %g",
			o.Ripple.SampleRate, o.Features.SampleRate, o.Recording.SampleRate)
	}
	if len(o.Rules) == 0 {
		return fmt.Errorf("pipeline: no classification rules")
	}
	if o.Workers < 0 {
		return fmt.Errorf("pipeline: workers %d", o.Workers)
	}
	return nil
}
