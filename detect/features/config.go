package features

import (
	"errors"
	"fmt"

	"github.com/seancoady-ox/SWRS-SLab-HT2025/dsp/core"
)

var (
	// ErrInvalidConfig is returned by Validate for inconsistent settings.
	ErrInvalidConfig = errors.New("features: invalid config")

	// ErrLengthMismatch is returned when the LFP and firing-rate series
	// differ in length.
	ErrLengthMismatch = errors.New("features: lfp and firing rate lengths differ")

	// ErrEventRange is returned when an event lies outside the signal.
	ErrEventRange = errors.New("features: event outside signal")
)

// Band is a Butterworth band-pass specification.
type Band struct {
	LowHz, HighHz float64
	Order         int
}

func (b Band) String() string {
	return fmt.Sprintf("%g-%g Hz (order %d)", b.LowHz, b.HighHz, b.Order)
}

// Config holds feature extraction settings. Window sizes are in samples.
type Config struct {
	SampleRate float64

	Ripple    Band
	SharpWave Band
	Theta     Band

	// Notch is applied to the ripple band when Notch.Order > 0.
	Notch Band

	// ThetaSmoothing is the box width applied to the theta envelope before
	// forming the sharp-wave/theta ratio.
	ThetaSmoothing int
	// Padding widens event windows for the ripple envelope mean and sets
	// the width of the theta side windows.
	Padding int
	// RatioThreshold is the sharp-wave/theta ratio above which a sample
	// counts towards LowThetaPerSecond.
	RatioThreshold float64
}

// DefaultConfig returns the standard settings at 1 kHz.
func DefaultConfig() Config {
	return Config{
		SampleRate:     core.DefaultSampleRate,
		Ripple:         Band{LowHz: 120, HighHz: 200, Order: 3},
		SharpWave:      Band{LowHz: 4, HighHz: 20, Order: 2},
		Theta:          Band{LowHz: 6, HighHz: 12, Order: 2},
		ThetaSmoothing: 1000,
		Padding:        500,
		RatioThreshold: 2,
	}
}

// Option mutates a Config.
type Option func(*Config)

// WithSampleRate sets the recording sample rate in Hz.
func WithSampleRate(fs float64) Option {
	return func(c *Config) { c.SampleRate = fs }
}

// WithRippleBand sets the ripple band.
func WithRippleBand(low, high float64, order int) Option {
	return func(c *Config) { c.Ripple = Band{LowHz: low, HighHz: high, Order: order} }
}

// WithSharpWaveBand sets the sharp-wave band.
func WithSharpWaveBand(low, high float64, order int) Option {
	return func(c *Config) { c.SharpWave = Band{LowHz: low, HighHz: high, Order: order} }
}

// WithThetaBand sets the theta band.
func WithThetaBand(low, high float64, order int) Option {
	return func(c *Config) { c.Theta = Band{LowHz: low, HighHz: high, Order: order} }
}

// WithNotch enables a band-stop on the ripple-band signal.
func WithNotch(low, high float64, order int) Option {
	return func(c *Config) { c.Notch = Band{LowHz: low, HighHz: high, Order: order} }
}

// WithPadding sets the event padding in samples.
func WithPadding(samples int) Option {
	return func(c *Config) { c.Padding = samples }
}

// WithThetaSmoothing sets the theta envelope box width in samples.
func WithThetaSmoothing(samples int) Option {
	return func(c *Config) { c.ThetaSmoothing = samples }
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

// Validate reports the first inconsistency in c.
func (c Config) Validate() error {
	switch {
	case !(c.SampleRate > 0):
		return fmt.Errorf("%w: sample rate %g", ErrInvalidConfig, c.SampleRate)
	case c.Ripple.Order < 1 || c.SharpWave.Order < 1 || c.Theta.Order < 1:
		return fmt.Errorf("%w: band orders must be positive", ErrInvalidConfig)
	case c.Notch.Order < 0:
		return fmt.Errorf("%w: notch order %d", ErrInvalidConfig, c.Notch.Order)
	case c.ThetaSmoothing < 1:
		return fmt.Errorf("%w: theta smoothing %d", ErrInvalidConfig, c.ThetaSmoothing)
	case c.Padding < 0:
		return fmt.Errorf("%w: padding %d", ErrInvalidConfig, c.Padding)
	}
	return nil
}
