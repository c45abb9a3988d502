// SPDX-License-Identifier: MIT
// Package: ellpack/pipeline
//
// errors.go: sentinel errors of the pipeline.

package pipeline

import "errors"

var (
	// ErrRepetitions indicates a negative repetition count.
	ErrRepetitions = errors.New("pipeline: repetitions must be >= 0")

	// ErrDifferent indicates two matrices that do not compare equal.
	ErrDifferent = errors.New("pipeline: matrices differ")

	// ErrSuite indicates an invalid suite definition.
	ErrSuite = errors.New("pipeline: invalid suite")
)
