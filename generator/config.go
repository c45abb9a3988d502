// SPDX-License-Identifier: MIT
// Package: ellpack/generator
//
// config.go: internal configuration and deterministic defaults.
//
// Defaults:
//   • rng         = nil            (stochastic constructors fail with ErrNeedRandSource)
//   • valueFn     = integer 1..100
//   • concurrency = 4
//   • logger      = discard

package generator

import (
	"log/slog"
	"math/rand"
)

const (
	defaultConcurrency = 4
	maxDrawnValue      = 100
)

type config struct {
	rng         *rand.Rand
	valueFn     func(*rand.Rand) float32
	concurrency int
	logger      *slog.Logger
}

// newConfig applies defaults, then options in order (last wins).
func newConfig(opts ...Option) config {
	cfg := config{
		valueFn:     intValue,
		concurrency: defaultConcurrency,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// intValue draws an integer in [1, maxDrawnValue].
func intValue(r *rand.Rand) float32 {
	return float32(r.Intn(maxDrawnValue) + 1)
}
