// SPDX-License-Identifier: MIT
// Package: ellpack
//
// check.go: compatibility gate in front of the multiplication engine.
//
// Check is pure: it only reads the shape fields and never allocates.
// Order of tests (first match wins):
//   1) nil operand                    → Incompatible
//   2) a.Cols != b.Rows               → Incompatible
//   3) nnz(a)·nnz(b) overflows uint64 → Incompatible
//   4) requireSorted && !sorted       → Incompatible
//   5) Cols > math.MaxUint32          → TooWide
//   6) otherwise                      → Compatible

package ellpack

import (
	"fmt"
	"math"
)

// Verdict is the tri-state outcome of Check.
type Verdict uint8

const (
	// Compatible means the operands can be multiplied.
	Compatible Verdict = iota
	// Incompatible means the shapes, counts or sortedness rule the product out.
	Incompatible
	// TooWide means an operand has more columns than a uint32 can address.
	// Callers may still proceed when that operand stores no entries.
	TooWide
)

// String returns a lower-case name of the verdict.
func (v Verdict) String() string {
	switch v {
	case Compatible:
		return "compatible"
	case Incompatible:
		return "incompatible"
	case TooWide:
		return "too-wide"
	default:
		return fmt.Sprintf("verdict(%d)", uint8(v))
	}
}

// Check decides whether a·b may be computed.
// Complexity: O(1).
func Check(a, b *Matrix, requireSorted bool) Verdict {
	v, _ := check(a, b, requireSorted)
	return v
}

// CheckErr is Check with the reason attached: nil for Compatible, otherwise an
// error wrapping ErrIncompatibleShapes (plus ErrNilMatrix, ErrOverflow or
// ErrNotSorted where they apply) or ErrTooWide.
func CheckErr(a, b *Matrix, requireSorted bool) error {
	const method = "Check"
	v, reason := check(a, b, requireSorted)
	switch v {
	case Compatible:
		return nil
	case TooWide:
		return fmt.Errorf("%s: %w", method, reason)
	default:
		if reason == ErrIncompatibleShapes {
			return fmt.Errorf("%s: a is %dx%d, b is %dx%d: %w", method, a.Rows, a.Cols, b.Rows, b.Cols, reason)
		}
		return fmt.Errorf("%s: %w: %w", method, ErrIncompatibleShapes, reason)
	}
}

// IsEmptyProduct reports whether a·b is known to hold no entries because one
// operand stores none.
func IsEmptyProduct(a, b *Matrix) bool {
	return a.IsEmpty() || b.IsEmpty()
}

func check(a, b *Matrix, requireSorted bool) (Verdict, error) {
	if a == nil || b == nil {
		return Incompatible, ErrNilMatrix
	}
	if a.Cols != b.Rows {
		return Incompatible, ErrIncompatibleShapes
	}
	// Pre-division guard: n·m overflows iff m > MaxUint64/n.
	if n := a.TotalNonZero(); n != 0 && b.TotalNonZero() > math.MaxUint64/n {
		return Incompatible, ErrOverflow
	}
	if requireSorted && (!a.Sorted || !b.Sorted) {
		return Incompatible, ErrNotSorted
	}
	if a.Cols > math.MaxUint32 || b.Cols > math.MaxUint32 {
		return TooWide, ErrTooWide
	}

	return Compatible, nil
}
