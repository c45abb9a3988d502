// SPDX-License-Identifier: MIT
// Package: ellpack/generator
//
// validators.go: shared argument checks. Each returns a bare sentinel;
// callers add the method context.

package generator

import (
	"fmt"
	"math"
)

func validateDims(rows, cols uint64) error {
	if rows == 0 || cols == 0 {
		return fmt.Errorf("%dx%d: %w", rows, cols, ErrTooSmall)
	}
	return nil
}

func validateProbability(p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%v: %w", p, ErrInvalidProbability)
	}
	return nil
}

func validateRNG(cfg config) error {
	if cfg.rng == nil {
		return ErrNeedRandSource
	}
	return nil
}
