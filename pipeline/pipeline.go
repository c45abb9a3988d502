// SPDX-License-Identifier: MIT
// Package: ellpack/pipeline
//
// pipeline.go: the read → check → multiply → write run.

package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/ellpack/accumulator"
	"github.com/katalvlaran/ellpack/codec"
	"github.com/katalvlaran/ellpack/matmul"
)

// Run multiplies the matrices stored at pathA and pathB.
//
// repetitions == 0 performs one untimed-for-benchmark run; repetitions > 0
// runs Benchmark with that many iterations, keeping the first result. The
// result is written to outPath unless it is empty. selector is resolved by
// matmul.Select.
//
// The returned Report is non-nil on success. Errors carry the ellpack kind of
// the failing stage (ErrIO, ErrParse, ErrIncompatibleShapes, ...).
func Run(ctx context.Context, pathA, pathB, outPath string, repetitions int, selector matmul.Strategy, opts ...Option) (*Report, error) {
	const method = "Run"
	if repetitions < 0 {
		return nil, fmt.Errorf("%s: %d: %w", method, repetitions, ErrRepetitions)
	}
	cfg := newConfig(opts...)

	a, err := codec.Read(pathA, cfg.codecOptions()...)
	if err != nil {
		return nil, fmt.Errorf("%s: a: %w", method, err)
	}
	b, err := codec.Read(pathB, cfg.codecOptions()...)
	if err != nil {
		return nil, fmt.Errorf("%s: b: %w", method, err)
	}
	defer a.Release()
	defer b.Release()

	acc, err := accumulator.FromOperands(a, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	defer acc.Release()

	strategy := matmul.Select(a, b, selector)
	cfg.logger.Info("pipeline: multiplying",
		"a", pathA, "b", pathB, "strategy", strategy.String(),
		"a_nnz", a.TotalNonZero(), "b_nnz", b.TotalNonZero())

	var report *Report
	if repetitions > 0 {
		report, err = Benchmark(ctx, strategy, a, b, acc, repetitions, opts...)
	} else {
		start := time.Now()
		err = matmul.Run(strategy, a, b, acc, cfg.matmulOptions()...)
		report = newReport(strategy, []time.Duration{time.Since(start)}, acc)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	if outPath != "" {
		if err = codec.Write(outPath, acc, a.Rows, b.Cols); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
		cfg.logger.Info("pipeline: result written", "path", outPath, "nnz", report.ResultNonZero)
	}
	return report, nil
}
