// SPDX-License-Identifier: MIT
// Package: ellpack/codec
//
// errors.go: sentinel errors of the text codec.
//
// Every parse failure wraps ellpack.ErrParse and every write failure wraps
// ellpack.ErrIO, so a caller can branch on the coarse kind with errors.Is and
// still tell the exact cause apart in tests and logs.

package codec

import (
	"fmt"

	"github.com/katalvlaran/ellpack"
)

var (
	// ErrMissingHeader indicates empty input.
	ErrMissingHeader = fmt.Errorf("codec: missing header: %w", ellpack.ErrParse)

	// ErrBadHeader indicates a header that is not three unsigned integers.
	ErrBadHeader = fmt.Errorf("codec: bad header: %w", ellpack.ErrParse)

	// ErrNegativeDimension indicates a '-' in the header.
	ErrNegativeDimension = fmt.Errorf("codec: negative dimension: %w", ellpack.ErrParse)

	// ErrShapeOverflow indicates cols·max_per_col does not fit in memory indices.
	ErrShapeOverflow = fmt.Errorf("codec: shape overflow: %w", ellpack.ErrParse)

	// ErrFieldCount indicates a values or indices line with too few or too many fields.
	ErrFieldCount = fmt.Errorf("codec: wrong field count: %w", ellpack.ErrParse)

	// ErrInvalidValue indicates a value token that is not a float32.
	ErrInvalidValue = fmt.Errorf("codec: invalid value: %w", ellpack.ErrParse)

	// ErrNegativeIndex indicates a '-' in a row index token.
	ErrNegativeIndex = fmt.Errorf("codec: negative index: %w", ellpack.ErrParse)

	// ErrInvalidIndex indicates a row index token that is not an unsigned integer.
	ErrInvalidIndex = fmt.Errorf("codec: invalid index: %w", ellpack.ErrParse)

	// ErrIndexOutOfRange indicates a row index ≥ rows.
	ErrIndexOutOfRange = fmt.Errorf("codec: index out of range: %w", ellpack.ErrParse)

	// ErrDuplicateIndex indicates the same row index twice in one column.
	ErrDuplicateIndex = fmt.Errorf("codec: duplicate index: %w", ellpack.ErrParse)

	// ErrPaddingMismatch indicates '*' in one line where the other line holds an entry.
	ErrPaddingMismatch = fmt.Errorf("codec: padding mismatch: %w", ellpack.ErrParse)

	// ErrTokenTooLong indicates a single field longer than the read buffer.
	ErrTokenTooLong = fmt.Errorf("codec: token exceeds buffer: %w", ellpack.ErrParse)
)

var (
	// ErrInvalidResult indicates a poisoned or released accumulator.
	ErrInvalidResult = fmt.Errorf("codec: invalid result: %w", ellpack.ErrIO)

	// ErrNoColumns indicates a result with zero columns.
	ErrNoColumns = fmt.Errorf("codec: result has no columns: %w", ellpack.ErrIO)

	// ErrShapeMismatch indicates cols != number of accumulator columns.
	ErrShapeMismatch = fmt.Errorf("codec: column count mismatch: %w", ellpack.ErrIO)
)
