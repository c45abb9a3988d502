// SPDX-License-Identifier: MIT
// Package: ellpack
//
// errors.go: sentinel error set shared by every stage of the pipeline.
//
// Error policy:
//   • Only package-level sentinels are declared here; stages attach context
//     with fmt.Errorf("<Method>: ...: %w", ErrX) and callers branch with errors.Is.
//   • The six kinds below are the coarse failure classes of the pipeline.
//     Stage packages declare finer sentinels that wrap one of these kinds, so
//     errors.Is(err, ellpack.ErrParse) holds for every malformed input.
//   • Nothing in the core panics on user input.

package ellpack

import "errors"

var (
	// ErrIO reports that a file could not be opened, read or written.
	ErrIO = errors.New("ellpack: i/o failure")

	// ErrParse reports malformed text input: bad header, wrong field count,
	// invalid number, negative dimension or index, out-of-range or duplicate
	// index, or a value/index padding mismatch.
	ErrParse = errors.New("ellpack: parse error")

	// ErrIncompatibleShapes reports that a.Cols != b.Rows, or that a sorted
	// algorithm was requested for an operand that is not sorted.
	ErrIncompatibleShapes = errors.New("ellpack: incompatible shapes")

	// ErrTooWide reports an operand with more than math.MaxUint32 columns.
	ErrTooWide = errors.New("ellpack: matrix too wide")

	// ErrAllocation reports that a buffer could not be created or grown.
	ErrAllocation = errors.New("ellpack: allocation failure")

	// ErrOverflow reports that the product of the operands' non-zero counts
	// does not fit into a uint64 counter.
	ErrOverflow = errors.New("ellpack: non-zero count overflow")
)

var (
	// ErrNilMatrix indicates a nil *Matrix operand.
	ErrNilMatrix = errors.New("ellpack: nil matrix")

	// ErrNotSorted indicates that a sorted-only operation got an unsorted operand.
	ErrNotSorted = errors.New("ellpack: matrix is not sorted")

	// ErrInvalidMatrix indicates a Matrix whose fields violate the model
	// invariants (lengths, bounds, duplicates). See (*Matrix).Validate.
	ErrInvalidMatrix = errors.New("ellpack: invalid matrix")
)
