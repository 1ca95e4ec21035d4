package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seancoady-ox/SWRS-SLab-HT2025/internal/config"
	"github.com/seancoady-ox/SWRS-SLab-HT2025/internal/logging"
)

// flagKeys maps short flag names to their config keys.
var flagKeys = map[string]string{
	"format":         "output.format",
	"precision":      "output.precision",
	"events-dir":     "output.events_dir",
	"workers":        "pipeline.workers",
	"low-threshold":  "detector.low_threshold",
	"high-threshold": "detector.high_threshold",
	"min-gap":        "detector.min_gap",
}

// app carries state shared by subcommands once flags are parsed.
type app struct {
	configFile string
	cfg        *config.Config
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "swrdetect",
		Short: "Sharp-wave ripple detection for LFP recordings",
		Long: `swrdetect detects sharp-wave ripples in local field potential recordings,
extracts per-event features (frequency, envelopes, sharp-wave/theta ratio,
firing-rate coupling) and tabulates per-recording summaries grouped by
stimulation condition.

Configuration is layered: built-in defaults, a YAML file (--config or
swrdetect.yaml in ., ./configs or ~/.config/swrdetect), SWRDETECT_*
environment variables, then flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = logging.Sync(a.logger)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default swrdetect.yaml in ., ./configs or ~/.config/swrdetect)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.BoolP("verbose", "v", false, "human-readable console logging")
	pf.Float64("sample-rate", 1000, "recording sample rate in Hz")

	root.AddCommand(
		newRunCmd(a),
		newSimulateCmd(a),
		newFiltersCmd(a),
		newConfigCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	v := config.New(a.configFile)
	if err := config.ReadFile(v); err != nil {
		return err
	}
	if err := config.BindFlags(v, cmd.Flags(), flagKeys); err != nil {
		return err
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.logger = logging.New(
		logging.WithLevel(cfg.LogLevel),
		logging.WithDevelopment(cfg.Verbose),
		logging.WithFields(map[string]any{"command": cmd.Name()}),
	)
	if used := v.ConfigFileUsed(); used != "" {
		a.logger.Debug("loaded config file", zap.String("path", used))
	}
	return nil
}
