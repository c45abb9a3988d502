// SPDX-License-Identifier: MIT
// Package: ellpack/matmul
//
// errors.go: sentinel errors of the multiplication engine.

package matmul

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/ellpack"
)

var (
	// ErrUnknownStrategy indicates an unrecognised strategy name or value.
	ErrUnknownStrategy = errors.New("matmul: unknown strategy")

	// ErrResultShape indicates an accumulator whose column count is not b.Cols.
	ErrResultShape = fmt.Errorf("matmul: accumulator shape does not match b: %w", ellpack.ErrIncompatibleShapes)
)

// ErrNilAccumulator indicates a nil result accumulator.
var ErrNilAccumulator = errors.New("matmul: nil accumulator")
