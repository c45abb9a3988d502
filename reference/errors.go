// SPDX-License-Identifier: MIT
// Package: ellpack/reference
//
// errors.go: sentinel errors of the dense reference layer.

package reference

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ellpack"
)

var (
	// ErrEmptyShape indicates a matrix with zero rows or columns; gonum has no
	// representation for it.
	ErrEmptyShape = errors.New("reference: zero-sized matrix")

	// ErrTooLarge indicates a dense expansion above MaxCells.
	ErrTooLarge = fmt.Errorf("reference: dense expansion too large: %w", ellpack.ErrAllocation)

	// ErrShape indicates operands or results whose shapes do not line up.
	ErrShape = fmt.Errorf("reference: shape mismatch: %w", ellpack.ErrIncompatibleShapes)

	// ErrTolerance indicates a negative, NaN or infinite tolerance.
	ErrTolerance = errors.New("reference: invalid tolerance")

	// ErrMismatch indicates a result element outside the tolerance.
	ErrMismatch = errors.New("reference: result mismatch")
)
