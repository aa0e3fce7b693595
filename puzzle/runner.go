package puzzle

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// Runner loads a Solution's input, solves it and logs what happened.
type Runner struct {
	Loader *Loader
	Logger *slog.Logger
	Params Params
}

// NewRunner returns a Runner with p, reading through loader and logging to
// logger. Nil arguments fall back to afs.New() and a discarding logger.
func NewRunner(loader *Loader, logger *slog.Logger, p Params) *Runner {
	if loader == nil {
		loader = NewLoader(nil)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Runner{Loader: loader, Logger: logger, Params: p}
}

// Run solves s on the input at url, or at s.DefaultInput when url is empty.
// Any load or parse failure aborts the run; no partial result is returned.
func (r *Runner) Run(ctx context.Context, s Solution, url string) (Result, error) {
	if url == "" {
		url = s.DefaultInput
	}
	logger := r.Logger.With(slog.String("solution", s.Name), slog.String("input", url))

	// 1. Load
	data, err := r.Loader.Load(ctx, url)
	if err != nil {
		logger.Error("load failed", slog.String("error", err.Error()))
		return Result{}, err
	}

	// 2. Fingerprint
	sum, err := Fingerprint(data)
	if err != nil {
		return Result{}, fmt.Errorf("puzzle: fingerprint: %w", err)
	}
	logger.Debug("input loaded",
		slog.Int("bytes", len(data)),
		slog.String("fingerprint", fmt.Sprintf("%016x", sum)))

	// 3. Solve
	start := time.Now()
	res, err := s.Solve(string(data), r.Params)
	if err != nil {
		logger.Error("solve failed", slog.String("error", err.Error()))
		return Result{}, fmt.Errorf("%s: %w", s.Name, err)
	}
	logger.Info("solved",
		slog.Bool("found", res.Found),
		slog.Int("value", res.Value),
		slog.Duration("elapsed", time.Since(start)))

	return res, nil
}
