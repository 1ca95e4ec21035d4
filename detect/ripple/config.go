package ripple

import (
	"errors"
	"fmt"
	"math"

	"github.com/seancoady-ox/SWRS-SLab-HT2025/dsp/core"
)

// ErrInvalidConfig is returned by Validate for inconsistent settings.
var ErrInvalidConfig = errors.New("ripple: invalid config")

const (
	// DefaultLowHz and DefaultHighHz bound the ripple band.
	DefaultLowHz  = 120.0
	DefaultHighHz = 200.0
	// DefaultOrder is the Butterworth prototype order of the band-pass.
	DefaultOrder = 3

	// Envelope smoothing uses an 11-sample box defined at 1250 Hz, scaled
	// to the recording rate.
	smoothRefWidth = 11
	smoothRefRate  = 1250.0
)

// Config holds detector settings. Durations and gaps are in seconds.
type Config struct {
	SampleRate float64

	LowHz, HighHz float64
	Order         int

	// Notch is applied after the band-pass when NotchOrder > 0.
	NotchLowHz, NotchHighHz float64
	NotchOrder              int

	LowThreshold  float64
	HighThreshold float64
	MeanThreshold float64

	MinDuration1 float64
	MinDuration2 float64
	MaxDuration  float64
	MinGap       float64
}

// DefaultConfig returns the standard detector settings at 1 kHz.
func DefaultConfig() Config {
	return Config{
		SampleRate:    core.DefaultSampleRate,
		LowHz:         DefaultLowHz,
		HighHz:        DefaultHighHz,
		Order:         DefaultOrder,
		LowThreshold:  1,
		HighThreshold: 3,
		MeanThreshold: 0,
		MinDuration1:  0,
		MinDuration2:  0.015,
		MaxDuration:   0.25,
		MinGap:        0.03,
	}
}

// Option mutates a Config.
type Option func(*Config)

// WithSampleRate sets the recording sample rate in Hz.
func WithSampleRate(fs float64) Option {
	return func(c *Config) { c.SampleRate = fs }
}

// WithBand sets the ripple band edges in Hz.
func WithBand(low, high float64) Option {
	return func(c *Config) { c.LowHz, c.HighHz = low, high }
}

// WithOrder sets the band-pass prototype order.
func WithOrder(order int) Option {
	return func(c *Config) { c.Order = order }
}

// WithNotch enables a band-stop stage after the band-pass.
func WithNotch(low, high float64, order int) Option {
	return func(c *Config) { c.NotchLowHz, c.NotchHighHz, c.NotchOrder = low, high, order }
}

// WithThresholds sets the z-scored envelope thresholds used for run
// detection (low) and for the peak gate (high).
func WithThresholds(low, high float64) Option {
	return func(c *Config) { c.LowThreshold, c.HighThreshold = low, high }
}

// WithMeanThreshold sets the gate on the mean envelope inside an event.
func WithMeanThreshold(thr float64) Option {
	return func(c *Config) { c.MeanThreshold = thr }
}

// WithDurations sets the pre-merge minimum, post-merge minimum and maximum
// event durations in seconds.
func WithDurations(min1, min2, maxDur float64) Option {
	return func(c *Config) { c.MinDuration1, c.MinDuration2, c.MaxDuration = min1, min2, maxDur }
}

// WithMinGap sets the shortest gap (seconds) kept between two events.
func WithMinGap(gap float64) Option {
	return func(c *Config) { c.MinGap = gap }
}

// NewConfig applies opts over DefaultConfig.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	return cfg
}

// Validate reports the first inconsistency in c. Band edges are checked
// again by the filter designer.
func (c Config) Validate() error {
	switch {
	case !(c.SampleRate > 0):
		return fmt.Errorf("%w: sample rate %g", ErrInvalidConfig, c.SampleRate)
	case c.Order < 1:
		return fmt.Errorf("%w: order %d", ErrInvalidConfig, c.Order)
	case c.NotchOrder < 0:
		return fmt.Errorf("%w: notch order %d", ErrInvalidConfig, c.NotchOrder)
	case math.IsNaN(c.LowThreshold) || math.IsNaN(c.HighThreshold) || math.IsNaN(c.MeanThreshold):
		return fmt.Errorf("%w: NaN threshold", ErrInvalidConfig)
	case c.MinDuration1 < 0 || c.MinDuration2 < 0 || c.MinGap < 0:
		return fmt.Errorf("%w: negative duration or gap", ErrInvalidConfig)
	case !(c.MaxDuration > c.MinDuration2):
		return fmt.Errorf("%w: max duration %g s not above min duration %g s",
			ErrInvalidConfig, c.MaxDuration, c.MinDuration2)
	}
	return nil
}

// samples converts seconds to whole samples at the configured rate.
func (c Config) samples(seconds float64) int {
	return core.SecondsToSamples(seconds, c.SampleRate)
}
