// SPDX-License-Identifier: MIT
// Package: ellpack/matmul
//
// options.go: functional options for Multiply and Run.

package matmul

import "log/slog"

// Option customizes a multiplication.
type Option func(*config)

type config struct {
	logger  *slog.Logger
	epsilon float32
}

func newConfig(opts ...Option) config {
	cfg := config{
		logger:  slog.New(slog.DiscardHandler),
		epsilon: Epsilon,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger reports strategy selection and failures to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("matmul: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithEpsilon overrides the zero-suppression threshold. Panics when eps is
// negative or NaN.
func WithEpsilon(eps float32) Option {
	if !(eps >= 0) {
		panic("matmul: WithEpsilon requires eps >= 0")
	}
	return func(c *config) { c.epsilon = eps }
}
