// SPDX-License-Identifier: MIT
// Package: ellpack/generator
//
// options.go: functional options for the generator package.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors validate and panic on meaningless inputs;
//     constructors themselves return errors.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package generator

import (
	"log/slog"
	"math/rand"
)

// Option customizes a generator call.
type Option func(*config)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed seeds a fresh RNG; the same seed reproduces the same matrices.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithValueFn overrides the value drawn for every stored entry of Random.
// The function must return a non-zero value. Panics on nil.
func WithValueFn(fn func(*rand.Rand) float32) Option {
	if fn == nil {
		panic("generator: WithValueFn(nil)")
	}
	return func(c *config) { c.valueFn = fn }
}

// WithConcurrency bounds the number of cases Suite writes at once.
// Panics when n < 1.
func WithConcurrency(n int) Option {
	if n < 1 {
		panic("generator: WithConcurrency requires n >= 1")
	}
	return func(c *config) { c.concurrency = n }
}

// WithLogger reports written files at debug level. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("generator: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}
