// SPDX-License-Identifier: MIT
// Package: ellpack/pipeline
//
// options.go: functional options shared by Run, Benchmark, Compare and RunSuite.

package pipeline

import (
	"log/slog"
	"math"
	"time"

	"github.com/katalvlaran/ellpack/codec"
	"github.com/katalvlaran/ellpack/matmul"
)

// Option customizes the pipeline.
type Option func(*config)

type config struct {
	logger    *slog.Logger
	cooldown  time.Duration
	bufSize   int
	tolerance float64
}

func newConfig(opts ...Option) config {
	cfg := config{
		logger:  slog.New(slog.DiscardHandler),
		bufSize: codec.DefaultBufferSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (c config) codecOptions() []codec.Option {
	return []codec.Option{codec.WithBufferSize(c.bufSize), codec.WithLogger(c.logger)}
}

func (c config) matmulOptions() []matmul.Option {
	return []matmul.Option{matmul.WithLogger(c.logger)}
}

// WithLogger routes every stage's logging to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("pipeline: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithCooldown pauses between benchmark iterations. Panics when d < 0.
func WithCooldown(d time.Duration) Option {
	if d < 0 {
		panic("pipeline: WithCooldown requires d >= 0")
	}
	return func(c *config) { c.cooldown = d }
}

// WithBufferSize sets the reader buffer (see codec.WithBufferSize).
// Panics below codec.MinBufferSize.
func WithBufferSize(n int) Option {
	if n < codec.MinBufferSize {
		panic("pipeline: WithBufferSize below codec.MinBufferSize")
	}
	return func(c *config) { c.bufSize = n }
}

// WithTolerance sets the relative value tolerance of Compare (default 0:
// exact). Panics on negative, NaN or infinite values.
func WithTolerance(tol float64) Option {
	if !(tol >= 0) || math.IsInf(tol, 0) {
		panic("pipeline: WithTolerance requires a finite tol >= 0")
	}
	return func(c *config) { c.tolerance = tol }
}
