// SPDX-License-Identifier: MIT
// Package: ellpack/reference
//
// dense.go: ELLPACK ⇄ gonum dense conversion.

package reference

import (
	"fmt"

	"github.com/katalvlaran/ellpack"
	"gonum.org/v1/gonum/mat"
)

// MaxCells bounds rows×cols of any dense expansion.
const MaxCells = 1 << 26

// ToDense expands m into a rows×cols dense matrix.
// Complexity: O(rows·cols) space, O(rows·cols + nnz) time.
func ToDense(m *ellpack.Matrix) (*mat.Dense, error) {
	const method = "ToDense"
	if m == nil {
		return nil, fmt.Errorf("%s: %w", method, ellpack.ErrNilMatrix)
	}
	r, c, err := denseShape(m.Rows, m.Cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	d := mat.NewDense(r, c, nil)
	off := m.Offsets()
	for j := 0; j+1 < len(off); j++ {
		for k := off[j]; k < off[j+1]; k++ {
			d.Set(int(m.Indices[k]), j, float64(m.Values[k]))
		}
	}
	return d, nil
}

// FromDense stores every non-zero element of d, column by column in
// ascending row order. The result is sorted and its width is the fullest
// column.
func FromDense(d mat.Matrix) (*ellpack.Matrix, error) {
	if d == nil {
		return nil, fmt.Errorf("FromDense: %w", ellpack.ErrNilMatrix)
	}
	r, c := d.Dims()
	cols := make([][]ellpack.Entry, c)
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			if v := d.At(i, j); v != 0 {
				cols[j] = append(cols[j], ellpack.Entry{Row: uint64(i), Value: float32(v)})
			}
		}
	}
	return ellpack.FromColumns(uint64(r), cols)
}

// Multiply returns the dense product a·b.
func Multiply(a, b *ellpack.Matrix) (*mat.Dense, error) {
	const method = "Multiply"
	if a == nil || b == nil {
		return nil, fmt.Errorf("%s: %w", method, ellpack.ErrNilMatrix)
	}
	if a.Cols != b.Rows {
		return nil, fmt.Errorf("%s: %dx%d · %dx%d: %w", method, a.Rows, a.Cols, b.Rows, b.Cols, ErrShape)
	}
	if _, _, err := denseShape(a.Rows, b.Cols); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	da, err := ToDense(a)
	if err != nil {
		return nil, fmt.Errorf("%s: a: %w", method, err)
	}
	db, err := ToDense(b)
	if err != nil {
		return nil, fmt.Errorf("%s: b: %w", method, err)
	}

	var out mat.Dense
	out.Mul(da, db)
	return &out, nil
}

func denseShape(rows, cols uint64) (int, int, error) {
	if rows == 0 || cols == 0 {
		return 0, 0, fmt.Errorf("%dx%d: %w", rows, cols, ErrEmptyShape)
	}
	if rows > MaxCells || cols > MaxCells/rows {
		return 0, 0, fmt.Errorf("%dx%d: %w", rows, cols, ErrTooLarge)
	}
	return int(rows), int(cols), nil
}
