// SPDX-License-Identifier: MIT
// Package: ellpack/pipeline
//
// compare.go: entry-by-entry comparison of two ELLPACK matrices.

package pipeline

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ellpack"
	"github.com/katalvlaran/ellpack/codec"
)

// Compare reads both files and reports the first difference as ErrDifferent.
// Shapes, per-column counts and row indices must match exactly; values match
// when |got-want| ≤ tol·max(1, |want|) with tol from WithTolerance.
func Compare(pathGot, pathWant string, opts ...Option) error {
	const method = "Compare"
	cfg := newConfig(opts...)
	got, err := codec.Read(pathGot, cfg.codecOptions()...)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	want, err := codec.Read(pathWant, cfg.codecOptions()...)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	if err = CompareMatrices(got, want, cfg.tolerance); err != nil {
		return fmt.Errorf("%s %s vs %s: %w", method, pathGot, pathWant, err)
	}
	return nil
}

// CompareMatrices is Compare for in-memory matrices.
func CompareMatrices(got, want *ellpack.Matrix, tol float64) error {
	if got == nil || want == nil {
		return ellpack.ErrNilMatrix
	}
	if got.Rows != want.Rows || got.Cols != want.Cols {
		return fmt.Errorf("shape %dx%d, want %dx%d: %w", got.Rows, got.Cols, want.Rows, want.Cols, ErrDifferent)
	}
	if got.LongestColumn() != want.LongestColumn() {
		return fmt.Errorf("longest column %d, want %d: %w", got.LongestColumn(), want.LongestColumn(), ErrDifferent)
	}

	gOff, wOff := got.Offsets(), want.Offsets()
	for j := uint64(0); j < got.Cols && j+1 < uint64(len(wOff)); j++ {
		gn, wn := got.ColumnLen(j), want.ColumnLen(j)
		if gn != wn {
			return fmt.Errorf("column %d: %d entries, want %d: %w", j, gn, wn, ErrDifferent)
		}
		for k := uint64(0); k < gn; k++ {
			g, w := gOff[j]+k, wOff[j]+k
			if got.Indices[g] != want.Indices[w] {
				return fmt.Errorf("column %d entry %d: row %d, want %d: %w", j, k, got.Indices[g], want.Indices[w], ErrDifferent)
			}
			gv, wv := float64(got.Values[g]), float64(want.Values[w])
			if !(math.Abs(gv-wv) <= tol*math.Max(1, math.Abs(wv))) {
				return fmt.Errorf("column %d row %d: value %g, want %g: %w", j, got.Indices[g], gv, wv, ErrDifferent)
			}
		}
	}
	return nil
}
