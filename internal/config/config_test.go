package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seancoady-ox/SWRS-SLab-HT2025/detect/features"
	"github.com/seancoady-ox/SWRS-SLab-HT2025/detect/ripple"
	"github.com/seancoady-ox/SWRS-SLab-HT2025/pipeline"
)

func TestDefaults(t *testing.T) {
	v := New(filepath.Join(t.TempDir(), "absent.yaml"))
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, ripple.DefaultConfig(), cfg.RippleConfig())
	assert.Equal(t, features.DefaultConfig(), cfg.FeaturesConfig())

	opts, err := cfg.PipelineOptions()
	require.NoError(t, err)
	assert.Equal(t, pipeline.DefaultRules(), opts.Rules)
	assert.Equal(t, pipeline.DefaultRatioThreshold, opts.RatioThreshold)
	assert.Equal(t, "text", cfg.Output.Format)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swrdetect.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
sample_rate: 1250
detector:
  low_threshold: 2
  min_gap: 0.05
filters:
  notch:
    low_hz: 140
    high_hz: 160
    order: 2
classify:
  rules:
    - condition: OpenStim
      match: [laser]
output:
  format: json
`), 0o644))

	v := New(path)
	require.NoError(t, ReadFile(v))
	cfg, err := Load(v)
	require.NoError(t, err)

	rc := cfg.RippleConfig()
	assert.Equal(t, 1250.0, rc.SampleRate)
	assert.Equal(t, 2.0, rc.LowThreshold)
	assert.Equal(t, 0.05, rc.MinGap)
	assert.Equal(t, 3.0, rc.HighThreshold)
	assert.Equal(t, 2, rc.NotchOrder)
	assert.Equal(t, 1250.0, cfg.FeaturesConfig().SampleRate)
	assert.Equal(t, 2, cfg.FeaturesConfig().Notch.Order)

	rules, err := cfg.Rules()
	require.NoError(t, err)
	assert.Equal(t, []pipeline.Rule{{Condition: pipeline.OpenStim, Match: []string{"laser"}}}, rules)
}

func TestReadFile_Missing(t *testing.T) {
	t.Chdir(t.TempDir())
	v := New("")
	require.NoError(t, ReadFile(v))

	v = New(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, ReadFile(v))
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("SWRDETECT_DETECTOR_HIGH_THRESHOLD", "4.5")
	t.Setenv("SWRDETECT_PIPELINE_WORKERS", "3")

	cfg, err := Load(New(""))
	require.NoError(t, err)
	assert.Equal(t, 4.5, cfg.Detector.HighThreshold)
	assert.Equal(t, 3, cfg.Pipeline.Workers)
}

func TestBindFlags(t *testing.T) {
	t.Setenv("SWRDETECT_DETECTOR_LOW_THRESHOLD", "1.5")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Float64("detector.low-threshold", 1, "")
	fs.String("log-level", "info", "")
	fs.Int("workers", 0, "")
	require.NoError(t, fs.Parse([]string{"--log-level=debug", "--workers=5"}))

	v := New("")
	require.NoError(t, BindFlags(v, fs, map[string]string{"workers": "pipeline.workers"}))
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5, cfg.Pipeline.Workers)
	// Unchanged flags do not mask the environment.
	assert.Equal(t, 1.5, cfg.Detector.LowThreshold)
}

func TestValidate(t *testing.T) {
	cases := map[string]string{
		"SWRDETECT_OUTPUT_FORMAT":         "xml",
		"SWRDETECT_SAMPLE_RATE":           "0",
		"SWRDETECT_FEATURES_PADDING":      "-1",
		"SWRDETECT_OUTPUT_PRECISION":      "-2",
		"SWRDETECT_DETECTOR_MAX_DURATION": "0.01",
	}
	for env, val := range cases {
		t.Run(env, func(t *testing.T) {
			t.Setenv(env, val)
			_, err := Load(New(""))
			require.Error(t, err)
		})
	}
}

func TestRules_UnknownCondition(t *testing.T) {
	cfg := &Config{Classify: ClassifyConfig{Rules: []RuleConfig{{Condition: "Laser", Match: []string{"x"}}}}}
	_, err := cfg.Rules()
	require.Error(t, err)
}

func TestWriteYAML_RoundTrip(t *testing.T) {
	cfg, err := Load(New(""))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, cfg.WriteYAML(&buf))
	assert.Contains(t, buf.String(), "low_threshold: 1")

	path := filepath.Join(t.TempDir(), "dump.yaml")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	v := New(path)
	require.NoError(t, ReadFile(v))
	again, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}
