package scenario

import (
	"context"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/zeusync/vecmath/internal/observability/log"
	"golang.org/x/sync/errgroup"
)

// Report collects the results of one evaluated file.
type Report struct {
	// RunID is unique per evaluation; Checksum is the same for every run
	// that produces the same results.
	RunID    string
	Name     string
	Results  []Result
	Checksum uint64
	Duration time.Duration
}

// Failed counts the steps that produced an error instead of a value.
func (r *Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

type Evaluator struct {
	cfg    Config
	logger log.Log
}

// NewEvaluator fills in defaults for non-positive Workers and a negative
// Precision.
func NewEvaluator(cfg Config, logger log.Log) *Evaluator {
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultConfig().Workers
	}
	if cfg.Precision < 0 {
		cfg.Precision = DefaultConfig().Precision
	}
	return &Evaluator{cfg: cfg, logger: logger}
}

func (e *Evaluator) Logger() log.Log { return e.logger }

// Run validates f and evaluates its steps in order. Step-level failures such
// as normalizing a zero vector are recorded on the result; only an invalid
// file or a cancelled context fail the run.
func (e *Evaluator) Run(ctx context.Context, f *File) (*Report, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	precision := e.cfg.Precision
	if f.Precision != nil {
		precision = *f.Precision
	}

	report := &Report{
		RunID:   uuid.NewString(),
		Name:    f.Name,
		Results: make([]Result, 0, len(f.Steps)),
	}
	logger := e.logger.With(log.String("scenario", f.Name), log.String("run_id", report.RunID))
	logger.Debug("scenario started", log.Int("steps", len(f.Steps)))

	start := time.Now()
	digest := xxhash.New()
	for _, step := range f.Steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res := evaluate(step)
		res.StepID = step.ID
		res.Op = step.Op
		res.precision = precision
		report.Results = append(report.Results, res)

		_, _ = digest.WriteString(res.String())
		_, _ = digest.WriteString("\n")

		if res.Err != nil {
			logger.Warn("step failed", log.String("step", step.ID), log.String("op", string(step.Op)), log.Error(res.Err))
			continue
		}
		logger.Debug("step evaluated", log.String("step", step.ID), log.String("op", string(step.Op)), log.String("value", res.Value()))
	}
	report.Checksum = digest.Sum64()
	report.Duration = time.Since(start)

	logger.Info("scenario finished",
		log.Int("steps", len(report.Results)),
		log.Int("failed", report.Failed()),
		log.Duration("took", report.Duration),
	)
	return report, nil
}

// RunAll evaluates files concurrently, at most Config.Workers at a time. The
// reports are returned in the order of files. The first failing file cancels
// the rest.
func (e *Evaluator) RunAll(ctx context.Context, files []*File) ([]*Report, error) {
	reports := make([]*Report, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.Workers)
	for i, f := range files {
		g.Go(func() error {
			report, err := e.Run(gctx, f)
			if err != nil {
				return fmt.Errorf("scenario %q: %w", f.Name, err)
			}
			reports[i] = report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
