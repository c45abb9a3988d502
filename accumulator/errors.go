// SPDX-License-Identifier: MIT
// Package: ellpack/accumulator
//
// errors.go: sentinel errors of the result accumulator.
// Every sentinel wraps one of the ellpack error kinds, so callers may match
// either the specific failure or the coarse class.

package accumulator

import (
	"fmt"

	"github.com/katalvlaran/ellpack"
)

var (
	// ErrColumnOutOfRange indicates a push into a column index ≥ Len().
	ErrColumnOutOfRange = fmt.Errorf("accumulator: column out of range: %w", ellpack.ErrAllocation)

	// ErrColumnFull indicates a push into a column already at MaxColHeight.
	ErrColumnFull = fmt.Errorf("accumulator: column full: %w", ellpack.ErrAllocation)

	// ErrGrowthOverflow indicates that doubling a column would overflow.
	ErrGrowthOverflow = fmt.Errorf("accumulator: growth overflow: %w", ellpack.ErrAllocation)

	// ErrBudgetExceeded indicates an initial reservation above the cell budget.
	ErrBudgetExceeded = fmt.Errorf("accumulator: allocation budget exceeded: %w", ellpack.ErrAllocation)

	// ErrPoisoned indicates an operation on an accumulator that already failed.
	ErrPoisoned = fmt.Errorf("accumulator: poisoned: %w", ellpack.ErrAllocation)
)
