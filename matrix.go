// SPDX-License-Identifier: MIT
// Package: ellpack
//
// matrix.go: the ELLPACK sparse matrix model.
//
// Storage contract:
//   • Column-major. Column j owns NonZerosPerCol[j] consecutive entries of
//     Values/Indices, starting right after column j-1.
//   • Padding is not stored: the text layout pads every column to MaxPerCol
//     fields with '*', the in-memory form keeps only real entries.
//   • Sorted is decided once (by the reader or FromColumns) and never recomputed.

package ellpack

import (
	"fmt"
	"math"
	"sort"

	"github.com/samber/lo"
)

// Padding is the "no entry" sentinel for row indices in raw column buffers.
// It never appears in Matrix.Indices.
const Padding uint64 = math.MaxUint64

// Matrix is a sparse matrix in ELLPACK form.
//
// Fields are exported for zero-copy access by the engine and codec; treat a
// Matrix returned by the codec as read-only.
type Matrix struct {
	Rows      uint64 // number of rows
	Cols      uint64 // number of columns
	MaxPerCol uint64 // ELLPACK width: maximum stored entries in any column

	Values         []float32 // non-zero values, column-major
	Indices        []uint64  // row index of each value, parallel to Values
	NonZerosPerCol []uint64  // entries per column, len == Cols (nil when MaxPerCol == 0)

	// Sorted is true iff row indices strictly increase inside every column.
	Sorted bool
}

// Entry is one stored (row, value) pair of a column.
type Entry struct {
	Row   uint64
	Value float32
}

// Empty returns a zeroed matrix. An empty matrix is trivially sorted.
func Empty() *Matrix {
	return &Matrix{Sorted: true}
}

// Release drops every buffer and zeroes the shape. Safe to call repeatedly
// and on a nil receiver.
func (m *Matrix) Release() {
	if m == nil {
		return
	}
	*m = Matrix{Sorted: true}
}

// TotalNonZero returns the number of stored entries.
func (m *Matrix) TotalNonZero() uint64 {
	if m == nil {
		return 0
	}
	return uint64(len(m.Values))
}

// IsEmpty reports whether the matrix stores no entries at all.
func (m *Matrix) IsEmpty() bool {
	return m == nil || m.MaxPerCol == 0
}

// LongestColumn returns the largest per-column entry count actually present.
// For a matrix built by the codec this equals MaxPerCol or is smaller when
// every column is padded.
// Complexity: O(Cols).
func (m *Matrix) LongestColumn() uint64 {
	if m == nil || len(m.NonZerosPerCol) == 0 {
		return 0
	}
	return lo.Max(m.NonZerosPerCol)
}

// Offsets returns the prefix sums of NonZerosPerCol: column j occupies
// Values[off[j]:off[j+1]]. The result has Cols+1 elements.
// Complexity: O(Cols) time and space.
func (m *Matrix) Offsets() []uint64 {
	if m == nil {
		return nil
	}
	off := make([]uint64, len(m.NonZerosPerCol)+1)
	for j, n := range m.NonZerosPerCol {
		off[j+1] = off[j] + n
	}
	return off
}

// Column returns the row indices and values stored in column j. The slices
// alias the matrix buffers. Out-of-range j yields empty slices.
// Complexity: O(j) to locate the column.
func (m *Matrix) Column(j uint64) ([]uint64, []float32) {
	if m == nil || j >= uint64(len(m.NonZerosPerCol)) {
		return nil, nil
	}
	var start uint64
	for _, n := range m.NonZerosPerCol[:j] {
		start += n
	}
	end := start + m.NonZerosPerCol[j]
	return m.Indices[start:end], m.Values[start:end]
}

// ColumnLen returns the number of entries of column j, 0 when out of range.
func (m *Matrix) ColumnLen(j uint64) uint64 {
	if m == nil || j >= uint64(len(m.NonZerosPerCol)) {
		return 0
	}
	return m.NonZerosPerCol[j]
}

// FromColumns builds a Matrix from explicit column contents. Entries are
// stored in the given order, so unsorted columns produce Sorted == false.
// MaxPerCol is the longest column.
//
// Errors: ErrInvalidMatrix for an index ≥ rows or a duplicate row inside a
// column.
// Complexity: O(nnz) time, O(nnz) space.
func FromColumns(rows uint64, columns [][]Entry) (*Matrix, error) {
	m := &Matrix{Rows: rows, Cols: uint64(len(columns)), Sorted: true}
	total := lo.SumBy(columns, func(c []Entry) int { return len(c) })
	if total > 0 {
		m.NonZerosPerCol = make([]uint64, len(columns))
		m.Values = make([]float32, 0, total)
		m.Indices = make([]uint64, 0, total)
	}

	for j, col := range columns {
		seen := make(map[uint64]struct{}, len(col))
		for k, e := range col {
			if e.Row >= rows {
				return nil, fmt.Errorf("FromColumns: column %d: row %d ≥ %d: %w", j, e.Row, rows, ErrInvalidMatrix)
			}
			if _, dup := seen[e.Row]; dup {
				return nil, fmt.Errorf("FromColumns: column %d: duplicate row %d: %w", j, e.Row, ErrInvalidMatrix)
			}
			seen[e.Row] = struct{}{}
			if k > 0 && e.Row < col[k-1].Row {
				m.Sorted = false
			}
			m.Values = append(m.Values, e.Value)
			m.Indices = append(m.Indices, e.Row)
		}
		if total > 0 {
			m.NonZerosPerCol[j] = uint64(len(col))
		}
		if uint64(len(col)) > m.MaxPerCol {
			m.MaxPerCol = uint64(len(col))
		}
	}

	return m, nil
}

// Validate checks the structural invariants: buffer lengths agree, every
// column count is ≤ MaxPerCol and sums to TotalNonZero, every index is < Rows
// and unique within its column, and Sorted is not claimed for an unsorted
// column.
// Complexity: O(nnz) time, O(max column) extra space.
func (m *Matrix) Validate() error {
	const method = "Validate"
	if m == nil {
		return fmt.Errorf("%s: %w", method, ErrNilMatrix)
	}
	if len(m.Values) != len(m.Indices) {
		return fmt.Errorf("%s: %d values vs %d indices: %w", method, len(m.Values), len(m.Indices), ErrInvalidMatrix)
	}
	if m.MaxPerCol == 0 {
		if len(m.Values) != 0 {
			return fmt.Errorf("%s: entries stored with zero width: %w", method, ErrInvalidMatrix)
		}
		return nil
	}
	if uint64(len(m.NonZerosPerCol)) != m.Cols {
		return fmt.Errorf("%s: %d column counts for %d columns: %w", method, len(m.NonZerosPerCol), m.Cols, ErrInvalidMatrix)
	}

	var start uint64
	scratch := make([]uint64, 0, m.MaxPerCol)
	for j, n := range m.NonZerosPerCol {
		if n > m.MaxPerCol {
			return fmt.Errorf("%s: column %d holds %d > width %d: %w", method, j, n, m.MaxPerCol, ErrInvalidMatrix)
		}
		end := start + n
		if end > uint64(len(m.Indices)) {
			return fmt.Errorf("%s: column counts exceed %d entries: %w", method, len(m.Indices), ErrInvalidMatrix)
		}
		col := m.Indices[start:end]
		scratch = append(scratch[:0], col...)
		for k, r := range col {
			if r >= m.Rows {
				return fmt.Errorf("%s: column %d: row %d ≥ %d: %w", method, j, r, m.Rows, ErrInvalidMatrix)
			}
			if m.Sorted && k > 0 && r <= col[k-1] {
				return fmt.Errorf("%s: column %d marked sorted but row %d follows %d: %w", method, j, r, col[k-1], ErrInvalidMatrix)
			}
		}
		sort.Slice(scratch, func(a, b int) bool { return scratch[a] < scratch[b] })
		for k := 1; k < len(scratch); k++ {
			if scratch[k] == scratch[k-1] {
				return fmt.Errorf("%s: column %d: duplicate row %d: %w", method, j, scratch[k], ErrInvalidMatrix)
			}
		}
		start = end
	}
	if start != uint64(len(m.Values)) {
		return fmt.Errorf("%s: column counts sum to %d, %d entries stored: %w", method, start, len(m.Values), ErrInvalidMatrix)
	}

	return nil
}
