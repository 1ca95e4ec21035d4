// Package config loads swrdetect settings from defaults, an optional YAML
// file, SWRDETECT_* environment variables and command-line flags, and
// converts them into the library configurations.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/seancoady-ox/SWRS-SLab-HT2025/detect/features"
	"github.com/seancoady-ox/SWRS-SLab-HT2025/detect/ripple"
	"github.com/seancoady-ox/SWRS-SLab-HT2025/pipeline"
	"github.com/seancoady-ox/SWRS-SLab-HT2025/recording"
	"github.com/seancoady-ox/SWRS-SLab-HT2025/report"
)

// EnvPrefix prefixes every environment override, e.g.
// SWRDETECT_DETECTOR_LOW_THRESHOLD.
const EnvPrefix = "SWRDETECT"

// Name is the config file base name searched for when no file is given.
const Name = "swrdetect"

// Config is the full application configuration.
type Config struct {
	LogLevel   string  `mapstructure:"log_level" yaml:"log_level"`
	Verbose    bool    `mapstructure:"verbose" yaml:"verbose"`
	SampleRate float64 `mapstructure:"sample_rate" yaml:"sample_rate"`

	Input    InputConfig    `mapstructure:"input" yaml:"input"`
	Detector DetectorConfig `mapstructure:"detector" yaml:"detector"`
	Features FeaturesConfig `mapstructure:"features" yaml:"features"`
	Filters  FiltersConfig  `mapstructure:"filters" yaml:"filters"`
	Validity ValidityConfig `mapstructure:"validity" yaml:"validity"`
	Pipeline PipelineConfig `mapstructure:"pipeline" yaml:"pipeline"`
	Classify ClassifyConfig `mapstructure:"classify" yaml:"classify"`
	Output   OutputConfig   `mapstructure:"output" yaml:"output"`
}

// InputConfig selects recordings and the traces inside them.
type InputConfig struct {
	Extensions []string  `mapstructure:"extensions" yaml:"extensions"`
	LFPColumn  string    `mapstructure:"lfp_column" yaml:"lfp_column"`
	RateColumn string    `mapstructure:"rate_column" yaml:"rate_column"`
	EDF        EDFConfig `mapstructure:"edf" yaml:"edf"`
}

// EDFConfig holds EDF signal indices.
type EDFConfig struct {
	LFPSignal  int `mapstructure:"lfp_signal" yaml:"lfp_signal"`
	RateSignal int `mapstructure:"rate_signal" yaml:"rate_signal"`
}

// DetectorConfig mirrors ripple.Config. Durations are in seconds.
type DetectorConfig struct {
	LowHz         float64 `mapstructure:"low_hz" yaml:"low_hz"`
	HighHz        float64 `mapstructure:"high_hz" yaml:"high_hz"`
	Order         int     `mapstructure:"order" yaml:"order"`
	LowThreshold  float64 `mapstructure:"low_threshold" yaml:"low_threshold"`
	HighThreshold float64 `mapstructure:"high_threshold" yaml:"high_threshold"`
	MeanThreshold float64 `mapstructure:"mean_threshold" yaml:"mean_threshold"`
	MinDuration1  float64 `mapstructure:"min_duration1" yaml:"min_duration1"`
	MinDuration2  float64 `mapstructure:"min_duration2" yaml:"min_duration2"`
	MaxDuration   float64 `mapstructure:"max_duration" yaml:"max_duration"`
	MinGap        float64 `mapstructure:"min_gap" yaml:"min_gap"`
}

// BandConfig is a band-pass or band-stop specification.
type BandConfig struct {
	LowHz  float64 `mapstructure:"low_hz" yaml:"low_hz"`
	HighHz float64 `mapstructure:"high_hz" yaml:"high_hz"`
	Order  int     `mapstructure:"order" yaml:"order"`
}

// FeaturesConfig mirrors features.Config. Windows are in samples.
type FeaturesConfig struct {
	Ripple         BandConfig `mapstructure:"ripple" yaml:"ripple"`
	SharpWave      BandConfig `mapstructure:"sharp_wave" yaml:"sharp_wave"`
	Theta          BandConfig `mapstructure:"theta" yaml:"theta"`
	ThetaSmoothing int        `mapstructure:"theta_smoothing" yaml:"theta_smoothing"`
	Padding        int        `mapstructure:"padding" yaml:"padding"`
	RatioThreshold float64    `mapstructure:"ratio_threshold" yaml:"ratio_threshold"`
}

// FiltersConfig holds optional extra filtering. A zero notch order
// disables the notch.
type FiltersConfig struct {
	Notch BandConfig `mapstructure:"notch" yaml:"notch"`
}

// ValidityConfig defines a valid event.
type ValidityConfig struct {
	Ratio float64 `mapstructure:"ratio" yaml:"ratio"`
	Spike float64 `mapstructure:"spike" yaml:"spike"`
}

// PipelineConfig controls batch execution.
type PipelineConfig struct {
	Workers int `mapstructure:"workers" yaml:"workers"`
}

// RuleConfig is a classification rule with the condition by name.
type RuleConfig struct {
	Condition string   `mapstructure:"condition" yaml:"condition"`
	Match     []string `mapstructure:"match" yaml:"match"`
}

// ClassifyConfig holds the ordered classification rules.
type ClassifyConfig struct {
	Rules []RuleConfig `mapstructure:"rules" yaml:"rules"`
}

// OutputConfig controls reporting.
type OutputConfig struct {
	Format    string `mapstructure:"format" yaml:"format"`
	Precision int    `mapstructure:"precision" yaml:"precision"`
	EventsDir string `mapstructure:"events_dir" yaml:"events_dir"`
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	rc := ripple.DefaultConfig()
	fc := features.DefaultConfig()

	v.SetDefault("log_level", "info")
	v.SetDefault("verbose", false)
	v.SetDefault("sample_rate", rc.SampleRate)

	v.SetDefault("input.extensions", recording.DefaultExtensions)
	v.SetDefault("input.lfp_column", recording.DefaultLFPColumn)
	v.SetDefault("input.rate_column", recording.DefaultRateColumn)
	v.SetDefault("input.edf.lfp_signal", recording.DefaultLFPSignal)
	v.SetDefault("input.edf.rate_signal", recording.DefaultRateSignal)

	v.SetDefault("detector.low_hz", rc.LowHz)
	v.SetDefault("detector.high_hz", rc.HighHz)
	v.SetDefault("detector.order", rc.Order)
	v.SetDefault("detector.low_threshold", rc.LowThreshold)
	v.SetDefault("detector.high_threshold", rc.HighThreshold)
	v.SetDefault("detector.mean_threshold", rc.MeanThreshold)
	v.SetDefault("detector.min_duration1", rc.MinDuration1)
	v.SetDefault("detector.min_duration2", rc.MinDuration2)
	v.SetDefault("detector.max_duration", rc.MaxDuration)
	v.SetDefault("detector.min_gap", rc.MinGap)

	setBand := func(key string, b features.Band) {
		v.SetDefault(key+".low_hz", b.LowHz)
		v.SetDefault(key+".high_hz", b.HighHz)
		v.SetDefault(key+".order", b.Order)
	}
	setBand("features.ripple", fc.Ripple)
	setBand("features.sharp_wave", fc.SharpWave)
	setBand("features.theta", fc.Theta)
	v.SetDefault("features.theta_smoothing", fc.ThetaSmoothing)
	v.SetDefault("features.padding", fc.Padding)
	v.SetDefault("features.ratio_threshold", fc.RatioThreshold)

	setBand("filters.notch", features.Band{LowHz: 0, HighHz: 0, Order: 0})

	v.SetDefault("validity.ratio", pipeline.DefaultRatioThreshold)
	v.SetDefault("validity.spike", pipeline.DefaultSpikeThreshold)
	v.SetDefault("pipeline.workers", 0)

	rules := make([]map[string]any, 0, 3)
	for _, r := range pipeline.DefaultRules() {
		rules = append(rules, map[string]any{"condition": r.Condition.String(), "match": r.Match})
	}
	v.SetDefault("classify.rules", rules)

	v.SetDefault("output.format", string(report.FormatText))
	v.SetDefault("output.precision", 3)
	v.SetDefault("output.events_dir", "")
}

// New returns a viper instance with defaults and environment overrides.
// When file is empty the working directory, ./configs and
// $HOME/.config/swrdetect are searched for swrdetect.yaml.
func New(file string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(Name)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", Name))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// ReadFile reads the configured file. A missing file is not an error when
// none was named explicitly.
func ReadFile(v *viper.Viper) error {
	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err == nil || errors.As(err, &notFound) {
		return nil
	}
	return fmt.Errorf("config: %w", err)
}

// BindFlags binds each flag to a config key. Keys in aliases map a flag
// name to its key; other flags bind to their name with dashes replaced by
// underscores, so --detector.low-threshold sets detector.low_threshold.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet, aliases map[string]string) error {
	var errs []error
	flags.VisitAll(func(f *pflag.Flag) {
		key, ok := aliases[f.Name]
		if !ok {
			key = strings.ReplaceAll(f.Name, "-", "_")
		}
		if err := v.BindPFlag(key, f); err != nil {
			errs = append(errs, err)
		}
	})
	return errors.Join(errs...)
}

// Load decodes v into a Config and validates it.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration by building every library config.
func (c *Config) Validate() error {
	if _, err := report.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Output.Precision < 0 {
		return fmt.Errorf("config: output.precision %d", c.Output.Precision)
	}
	opts, err := c.PipelineOptions()
	if err != nil {
		return err
	}
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// RippleConfig returns the detector configuration.
func (c *Config) RippleConfig() ripple.Config {
	d := c.Detector
	return ripple.NewConfig(
		ripple.WithSampleRate(c.SampleRate),
		ripple.WithBand(d.LowHz, d.HighHz),
		ripple.WithOrder(d.Order),
		ripple.WithThresholds(d.LowThreshold, d.HighThreshold),
		ripple.WithMeanThreshold(d.MeanThreshold),
		ripple.WithDurations(d.MinDuration1, d.MinDuration2, d.MaxDuration),
		ripple.WithMinGap(d.MinGap),
		ripple.WithNotch(c.Filters.Notch.LowHz, c.Filters.Notch.HighHz, c.Filters.Notch.Order),
	)
}

// FeaturesConfig returns the feature extraction configuration.
func (c *Config) FeaturesConfig() features.Config {
	f := c.Features
	cfg := features.NewConfig(
		features.WithSampleRate(c.SampleRate),
		features.WithRippleBand(f.Ripple.LowHz, f.Ripple.HighHz, f.Ripple.Order),
		features.WithSharpWaveBand(f.SharpWave.LowHz, f.SharpWave.HighHz, f.SharpWave.Order),
		features.WithThetaBand(f.Theta.LowHz, f.Theta.HighHz, f.Theta.Order),
		features.WithNotch(c.Filters.Notch.LowHz, c.Filters.Notch.HighHz, c.Filters.Notch.Order),
		features.WithThetaSmoothing(f.ThetaSmoothing),
		features.WithPadding(f.Padding),
	)
	cfg.RatioThreshold = f.RatioThreshold
	return cfg
}

// RecordingOptions returns the loader options.
func (c *Config) RecordingOptions() recording.Options {
	return recording.Options{
		SampleRate: c.SampleRate,
		LFPColumn:  c.Input.LFPColumn,
		RateColumn: c.Input.RateColumn,
		LFPSignal:  c.Input.EDF.LFPSignal,
		RateSignal: c.Input.EDF.RateSignal,
	}
}

// Rules converts the classification rules.
func (c *Config) Rules() ([]pipeline.Rule, error) {
	out := make([]pipeline.Rule, 0, len(c.Classify.Rules))
	for i, r := range c.Classify.Rules {
		cond, err := pipeline.ParseCondition(r.Condition)
		if err != nil {
			return nil, fmt.Errorf("config: classify.rules[%d]: %w", i, err)
		}
		out = append(out, pipeline.Rule{Condition: cond, Match: r.Match})
	}
	return out, nil
}

// PipelineOptions assembles the batch options.
func (c *Config) PipelineOptions() (pipeline.Options, error) {
	rules, err := c.Rules()
	if err != nil {
		return pipeline.Options{}, err
	}
	return pipeline.Options{
		Ripple:         c.RippleConfig(),
		Features:       c.FeaturesConfig(),
		Recording:      c.RecordingOptions(),
		Rules:          rules,
		RatioThreshold: c.Validity.Ratio,
		SpikeThreshold: c.Validity.Spike,
		Workers:        c.Pipeline.Workers,
	}, nil
}

// WriteYAML writes the effective configuration as YAML.
func (c *Config) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return enc.Close()
}
