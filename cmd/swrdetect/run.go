package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	ossignal "os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seancoady-ox/SWRS-SLab-HT2025/detect/features"
	"github.com/seancoady-ox/SWRS-SLab-HT2025/pipeline"
	"github.com/seancoady-ox/SWRS-SLab-HT2025/recording"
	"github.com/seancoady-ox/SWRS-SLab-HT2025/report"
)

func newRunCmd(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "run [path ...]",
		Short: "Detect ripples in every recording under the given paths",
		Long: `Run walks each path for recordings (.csv and .edf by default), detects
ripples, extracts features, keeps events whose sharp-wave/theta ratio and
relative firing rate exceed the validity thresholds, and prints one summary
row per recording. Recordings that cannot be loaded or classified are
logged and skipped.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := ossignal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.run(ctx, args, out, cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.StringVarP(&out, "out", "o", "", "write the summary table to this file instead of stdout")
	f.String("format", "text", "summary format (text, csv, json, yaml)")
	f.Int("precision", 3, "decimal places in text output")
	f.String("events-dir", "", "write a per-recording event table into this directory")
	f.Int("workers", 0, "recordings processed concurrently (0 = GOMAXPROCS)")
	f.Float64("low-threshold", 1, "envelope z-score that opens an event")
	f.Float64("high-threshold", 3, "envelope z-score an event peak must exceed")
	f.Float64("min-gap", 0.03, "events closer than this many seconds are merged")
	return cmd
}

func (a *app) run(ctx context.Context, roots []string, out string, stdout io.Writer) error {
	cfg := a.cfg
	format, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	opts, err := cfg.PipelineOptions()
	if err != nil {
		return err
	}
	opts.Roots = roots

	var paths []string
	for _, root := range roots {
		found, err := recording.Discover(root, cfg.Input.Extensions)
		if err != nil {
			return err
		}
		paths = append(paths, found...)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no recordings found under %s", strings.Join(roots, ", "))
	}
	a.logger.Info("starting batch", zap.Int("recordings", len(paths)), zap.Int("workers", opts.Workers))

	batch, runErr := pipeline.Run(ctx, paths, opts, a.logger)
	if batch == nil {
		return runErr
	}
	if len(batch.Results) == 0 {
		return fmt.Errorf("no recordings processed: %w", runErr)
	}

	if dir := cfg.Output.EventsDir; dir != "" {
		if err := writeEvents(dir, batch.Results, opts); err != nil {
			return err
		}
	}

	if err := writeReport(stdout, out, report.NewTable(batch.Summaries()), format, cfg.Output.Precision); err != nil {
		return err
	}

	if runErr != nil {
		a.logger.Warn("some recordings were skipped", zap.Int("skipped", batch.Skipped))
	}
	return nil
}

// writeReport writes the table to the file named out, or to stdout when out
// is empty. A failed close of the file is reported.
func writeReport(stdout io.Writer, out string, tab *report.Table, format report.Format, precision int) (err error) {
	if out == "" {
		return tab.Write(stdout, format, precision)
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", out, cerr)
		}
	}()
	return tab.Write(f, format, precision)
}

// eventFileNames returns one events file name per result. Recordings that
// share a condition and stem get a numeric suffix in batch order.
func eventFileNames(results []pipeline.FileResult) []string {
	names := make([]string, len(results))
	seen := make(map[string]int, len(results))
	for i, res := range results {
		stem := strings.TrimSuffix(res.Summary.Filename, filepath.Ext(res.Summary.Filename))
		base := fmt.Sprintf("%s_%s", res.Summary.Condition, stem)
		key := strings.ToLower(base)
		seen[key]++
		if n := seen[key]; n > 1 {
			base = fmt.Sprintf("%s_%d", base, n)
		}
		names[i] = base + ".events.csv"
	}
	return names
}

func writeEvents(dir string, results []pipeline.FileResult, opts pipeline.Options) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	names := eventFileNames(results)
	var errs []error
	for i, res := range results {
		path := filepath.Join(dir, names[i])

		f, err := os.Create(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		valid := func(ev features.Event) bool {
			return features.Valid(ev, res.Session, opts.RatioThreshold, opts.SpikeThreshold)
		}
		errs = append(errs, report.WriteEvents(f, res.Events, valid), f.Close())
	}
	return errors.Join(errs...)
}
