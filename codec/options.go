// SPDX-License-Identifier: MIT
// Package: ellpack/codec
//
// options.go: functional options for the reader.
//
// Contract:
//   • Option constructors validate and panic on meaningless input.
//   • Defaults are applied first, then options in order (last wins).

package codec

import (
	"log/slog"
)

const (
	// DefaultBufferSize is the working buffer of the streaming reader.
	DefaultBufferSize = 1024

	// MinBufferSize is the smallest accepted buffer.
	MinBufferSize = 16

	// maxPrealloc caps the up-front reservation of entry slices.
	maxPrealloc = 1 << 20

	// shrinkRatio: slices whose length is below this share of their
	// capacity are copied to an exact fit after a successful read.
	shrinkRatio = 0.9
)

// Option customizes Read and Decode.
type Option func(*config)

type config struct {
	bufSize int
	logger  *slog.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		bufSize: DefaultBufferSize,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithBufferSize sets the working buffer size in bytes.
// Panics when n < MinBufferSize.
func WithBufferSize(n int) Option {
	if n < MinBufferSize {
		panic("codec: WithBufferSize below MinBufferSize")
	}
	return func(c *config) { c.bufSize = n }
}

// WithLogger routes warnings (NaN/Inf values, unsorted columns) to l.
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("codec: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}
