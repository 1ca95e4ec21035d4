package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sourcegraph/conc/iter"
	"go.uber.org/zap"

	"github.com/seancoady-ox/SWRS-SLab-HT2025/recording"
)

// Batch holds the results of Run in input order. Failed files are absent
// from Results and reported in the error returned alongside.
type Batch struct {
	Results []FileResult
	Skipped int
}

// Summaries returns the summary row of every processed file.
func (b *Batch) Summaries() []Summary {
	out := make([]Summary, len(b.Results))
	for i, r := range b.Results {
		out[i] = r.Summary
	}
	return out
}

type outcome struct {
	result FileResult
	err    error
}

// Run loads and processes paths concurrently. Per-file failures are logged,
// skipped and returned joined; the batch itself only fails up front on
// invalid options. A cancelled ctx skips files not yet started.
func Run(ctx context.Context, paths []string, opts Options, logger *zap.Logger) (*Batch, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	p, err := NewProcessor(opts)
	if err != nil {
		return nil, err
	}

	mapper := iter.Mapper[string, outcome]{MaxGoroutines: opts.Workers}
	outcomes := mapper.Map(paths, func(path *string) outcome {
		if err := ctx.Err(); err != nil {
			return outcome{err: fmt.Errorf("%s: %w", *path, err)}
		}
		return p.processFile(*path, logger)
	})

	batch := &Batch{Results: make([]FileResult, 0, len(paths))}
	var errs []error
	for _, o := range outcomes {
		if o.err != nil {
			errs = append(errs, o.err)
			batch.Skipped++
			continue
		}
		batch.Results = append(batch.Results, o.result)
	}

	logger.Info("batch complete",
		zap.Int("files", len(paths)),
		zap.Int("processed", len(batch.Results)),
		zap.Int("skipped", batch.Skipped))

	return batch, errors.Join(errs...)
}

func (p *Processor) processFile(path string, logger *zap.Logger) outcome {
	start := time.Now()
	log := logger.With(zap.String("file", path))

	rec, err := recording.Load(path, p.opts.Recording)
	if err != nil {
		log.Warn("skipping recording", zap.Error(err))
		return outcome{err: err}
	}

	res, err := p.Process(rec)
	if err != nil {
		log.Warn("skipping recording", zap.Error(err))
		return outcome{err: err}
	}

	log.Debug("detection stages", zap.Stringer("trace", res.Trace))
	log.Info("processed recording",
		zap.Stringer("condition", res.Summary.Condition),
		zap.Stringer("phase", res.Summary.Phase),
		zap.Int("samples", rec.Len()),
		zap.Int("events", len(res.Events)),
		zap.Int("valid", len(res.Valid)),
		zap.Duration("elapsed", time.Since(start)))

	return outcome{result: res}
}
