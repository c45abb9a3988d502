// SPDX-License-Identifier: MIT
// Package: ellpack/pipeline
//
// benchmark.go: repeated, timed multiplication.
//
// Iteration 0 writes into the caller's accumulator, which therefore holds the
// kept result afterwards. Later iterations use throwaway accumulators of the
// same shape so that every iteration starts from an empty result.

package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/ellpack"
	"github.com/katalvlaran/ellpack/accumulator"
	"github.com/katalvlaran/ellpack/matmul"
	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Report summarises one Run or Benchmark.
type Report struct {
	Strategy      matmul.Strategy
	Kernel        string
	Iterations    int
	Total         time.Duration
	Average       time.Duration
	Min, Max      time.Duration
	ResultNonZero uint64
}

func newReport(s matmul.Strategy, durations []time.Duration, acc *accumulator.Accumulator) *Report {
	r := &Report{
		Strategy:      s,
		Kernel:        "scalar",
		Iterations:    len(durations),
		ResultNonZero: acc.TotalPushed(),
	}
	if s == matmul.Vectorized {
		r.Kernel = matmul.ActiveKernel()
	}
	if len(durations) > 0 {
		r.Total = lo.Sum(durations)
		r.Average = r.Total / time.Duration(len(durations))
		r.Min, r.Max = lo.Min(durations), lo.Max(durations)
	}
	return r
}

// Benchmark runs strategy s iterations times and times every run.
// ctx is checked before each iteration and during the cooldown.
func Benchmark(ctx context.Context, s matmul.Strategy, a, b *ellpack.Matrix, acc *accumulator.Accumulator, iterations int, opts ...Option) (*Report, error) {
	const method = "Benchmark"
	if iterations < 1 {
		return nil, fmt.Errorf("%s: %d: %w", method, iterations, ErrRepetitions)
	}
	cfg := newConfig(opts...)
	durations := make([]time.Duration, 0, iterations)

	for i := 0; i < iterations; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: iteration %d: %w", method, i, err)
		}

		target := acc
		if i > 0 {
			tmp, err := accumulator.FromOperands(a, b)
			if err != nil {
				return nil, fmt.Errorf("%s: iteration %d: %w", method, i, err)
			}
			target = tmp
		}

		start := time.Now()
		err := matmul.Run(s, a, b, target, cfg.matmulOptions()...)
		elapsed := time.Since(start)
		if i > 0 {
			target.Release()
		}
		if err != nil {
			cfg.logger.Error("pipeline: benchmark iteration failed", "iteration", i, "err", err)
			return nil, fmt.Errorf("%s: iteration %d: %w", method, i, err)
		}
		durations = append(durations, elapsed)
		cfg.logger.Debug("pipeline: iteration", "iteration", i, "elapsed", elapsed)

		if cfg.cooldown > 0 && i < iterations-1 {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("%s: cooldown: %w", method, ctx.Err())
			case <-time.After(cfg.cooldown):
			}
		}
	}

	r := newReport(s, durations, acc)
	cfg.logger.Info("pipeline: benchmark done",
		"strategy", s.String(), "iterations", r.Iterations, "average", r.Average)
	return r, nil
}

// Print writes a human-readable summary with grouped digits.
func (r *Report) Print(w io.Writer) error {
	p := message.NewPrinter(language.English)
	_, err := p.Fprintf(w, "strategy %s (kernel %s): %d iteration(s), total %v, average %v (min %v, max %v), %d result entries\n",
		r.Strategy, r.Kernel, r.Iterations, r.Total, r.Average, r.Min, r.Max, r.ResultNonZero)
	return err
}
