// SPDX-License-Identifier: MIT
// Package: ellpack/reference
//
// verify.go: tolerance comparison of a sparse result against a dense product.
//
// Stage 1 (Validate): tolerances finite and non-negative, shapes equal.
// Stage 2 (Compare):  row-major scan, first violation reported.

package reference

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ellpack"
	"github.com/katalvlaran/ellpack/codec"
	"gonum.org/v1/gonum/mat"
)

// DefaultTolerance is used for both atol and rtol by the command-line verifier.
const DefaultTolerance = 1e-6

// Mismatch locates the first element outside the tolerance.
type Mismatch struct {
	Row, Col  int
	Got, Want float64
}

// AllClose reports whether got and want have equal shapes and every element
// satisfies |got-want| ≤ atol + rtol·|want|.
// Complexity: O(rows·cols).
func AllClose(got, want mat.Matrix, atol, rtol float64) (bool, error) {
	m, err := firstMismatch(got, want, atol, rtol)
	if err != nil {
		return false, fmt.Errorf("AllClose: %w", err)
	}
	return m == nil, nil
}

// Verify multiplies a and b densely and compares result against the product.
// result must be a.Rows×b.Cols.
//
// Errors: ErrShape, ErrTolerance, ErrMismatch (with position), plus
// conversion errors from ToDense.
func Verify(a, b, result *ellpack.Matrix, atol, rtol float64) error {
	const method = "Verify"
	if result == nil {
		return fmt.Errorf("%s: %w", method, ellpack.ErrNilMatrix)
	}
	want, err := Multiply(a, b)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	if result.Rows != a.Rows || result.Cols != b.Cols {
		return fmt.Errorf("%s: result %dx%d, want %dx%d: %w", method, result.Rows, result.Cols, a.Rows, b.Cols, ErrShape)
	}
	got, err := ToDense(result)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}

	mm, err := firstMismatch(got, want, atol, rtol)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	if mm != nil {
		return fmt.Errorf("%s: (%d,%d) got %g want %g: %w", method, mm.Row, mm.Col, mm.Got, mm.Want, ErrMismatch)
	}
	return nil
}

// VerifyFiles reads the three ELLPACK files and calls Verify.
func VerifyFiles(pathA, pathB, pathResult string, atol, rtol float64, opts ...codec.Option) error {
	const method = "VerifyFiles"
	a, err := codec.Read(pathA, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	b, err := codec.Read(pathB, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	r, err := codec.Read(pathResult, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	return Verify(a, b, r, atol, rtol)
}

func firstMismatch(got, want mat.Matrix, atol, rtol float64) (*Mismatch, error) {
	if !validTolerance(atol) || !validTolerance(rtol) {
		return nil, ErrTolerance
	}
	if got == nil || want == nil {
		return nil, ellpack.ErrNilMatrix
	}
	gr, gc := got.Dims()
	wr, wc := want.Dims()
	if gr != wr || gc != wc {
		return nil, fmt.Errorf("%dx%d vs %dx%d: %w", gr, gc, wr, wc, ErrShape)
	}

	for i := 0; i < gr; i++ {
		for j := 0; j < gc; j++ {
			g, w := got.At(i, j), want.At(i, j)
			// NaN fails the comparison on either side.
			if !(math.Abs(g-w) <= atol+rtol*math.Abs(w)) {
				return &Mismatch{Row: i, Col: j, Got: g, Want: w}, nil
			}
		}
	}
	return nil, nil
}

func validTolerance(t float64) bool {
	return t >= 0 && !math.IsInf(t, 0)
}
