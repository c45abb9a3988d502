// SPDX-License-Identifier: MIT
// Package: ellpack/generator
//
// errors.go: sentinel errors for the generator package.
//
// Only sentinels live here. Constructors attach context with
// fmt.Errorf("<Method>: ...: %w", ErrX); callers branch with errors.Is.
// Option constructors (WithX) panic instead of returning these.

package generator

import "errors"

var (
	// ErrTooSmall indicates a zero dimension.
	ErrTooSmall = errors.New("generator: dimension too small")

	// ErrInvalidProbability indicates a sparsity outside [0,1].
	ErrInvalidProbability = errors.New("generator: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor without WithSeed/WithRand.
	ErrNeedRandSource = errors.New("generator: rng is required")

	// ErrBadFill indicates a BandConfig whose fullest column is zero or exceeds
	// the row count, or whose row count is the padding sentinel.
	ErrBadFill = errors.New("generator: invalid fill configuration")
)
