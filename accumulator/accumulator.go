// SPDX-License-Identifier: MIT
// Package: ellpack/accumulator
//
// accumulator.go: growable column-major result buffer.
//
// Growth policy (per column):
//   • next = 2·height, clamped to maxColHeight;
//   • values are reallocated first, indices second, so a failure in the
//     second step never leaves the two slices of different physical length
//     visible (the accumulator is poisoned and both are dropped).
// Amortised O(1) per Push.

package accumulator

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ellpack"
	"github.com/samber/lo"
)

// DefaultBudget bounds the number of cells (value+index pairs) New reserves
// up front across all columns.
const DefaultBudget uint64 = 1 << 31

// Column is one growable result column.
type Column struct {
	indices []uint64
	values  []float32
	height  uint32 // physical capacity
	used    uint32 // logical length
}

// Indices returns the pushed row indices. The slice aliases internal storage.
func (c *Column) Indices() []uint64 { return c.indices[:c.used] }

// Values returns the pushed values. The slice aliases internal storage.
func (c *Column) Values() []float32 { return c.values[:c.used] }

// UsedHeight returns the number of pushed entries.
func (c *Column) UsedHeight() uint32 { return c.used }

// Height returns the current physical capacity.
func (c *Column) Height() uint32 { return c.height }

// Accumulator holds the result columns of one multiplication.
type Accumulator struct {
	cols         []Column
	maxColHeight uint32
	err          error
}

// New reserves columns result columns with initialCapacity slots each.
// initialCapacity is clamped to [1, maxHeight] (or to 0 when maxHeight is 0,
// in which case every push fails with ErrColumnFull). maxHeight is clamped to
// math.MaxUint32.
//
// On failure New returns a poisoned accumulator together with the error so
// that callers holding only the accumulator still observe Valid() == false.
//
// Errors: ellpack.ErrTooWide when columns > math.MaxUint32; ErrBudgetExceeded
// when columns·initialCapacity exceeds DefaultBudget.
func New(columns, initialCapacity, maxHeight uint64) (*Accumulator, error) {
	const method = "New"
	acc := &Accumulator{maxColHeight: clampUint32(maxHeight)}

	if columns > math.MaxUint32 {
		return acc.fail(fmt.Errorf("%s: %d columns: %w", method, columns, ellpack.ErrTooWide))
	}

	capacity := initialCapacity
	if capacity < 1 {
		capacity = 1
	}
	if capacity > uint64(acc.maxColHeight) {
		capacity = uint64(acc.maxColHeight)
	}
	if columns != 0 && capacity > DefaultBudget/columns {
		return acc.fail(fmt.Errorf("%s: %d columns × %d slots: %w", method, columns, capacity, ErrBudgetExceeded))
	}

	acc.cols = make([]Column, columns)
	for i := range acc.cols {
		acc.cols[i] = Column{
			indices: make([]uint64, capacity),
			values:  make([]float32, capacity),
			height:  uint32(capacity),
		}
	}

	return acc, nil
}

// FromOperands sizes an accumulator for a·b: b.Cols result columns, a capacity
// hint of one tenth of a's average entries per column (at least 1), and a
// column cap of a.Rows.
func FromOperands(a, b *ellpack.Matrix) (*Accumulator, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("FromOperands: %w", ellpack.ErrNilMatrix)
	}
	var hint uint64 = 1
	if a.Cols != 0 {
		if h := a.TotalNonZero() / a.Cols / 10; h > hint {
			hint = h
		}
	}

	return New(b.Cols, hint, a.Rows)
}

// FromMatrix copies m into a fresh accumulator, so that any Matrix can be
// serialized through the result writer.
func FromMatrix(m *ellpack.Matrix) (*Accumulator, error) {
	if m == nil {
		return nil, fmt.Errorf("FromMatrix: %w", ellpack.ErrNilMatrix)
	}
	acc, err := New(m.Cols, 1, m.Rows)
	if err != nil {
		return acc, fmt.Errorf("FromMatrix: %w", err)
	}
	off := m.Offsets()
	for j := 0; j+1 < len(off); j++ {
		for k := off[j]; k < off[j+1]; k++ {
			if err = acc.Push(m.Values[k], m.Indices[k], uint64(j)); err != nil {
				return acc, fmt.Errorf("FromMatrix: %w", err)
			}
		}
	}

	return acc, nil
}

// Push appends (row, value) to column col, growing it if needed.
// Any failure poisons the accumulator.
// Complexity: amortised O(1).
func (a *Accumulator) Push(value float32, row, col uint64) error {
	const method = "Push"
	if a.err != nil {
		return fmt.Errorf("%s: %w", method, ErrPoisoned)
	}
	if col >= uint64(len(a.cols)) {
		return a.poison(fmt.Errorf("%s: column %d of %d: %w", method, col, len(a.cols), ErrColumnOutOfRange))
	}

	c := &a.cols[col]
	if c.used == c.height {
		if c.height >= a.maxColHeight {
			return a.poison(fmt.Errorf("%s: column %d at cap %d: %w", method, col, a.maxColHeight, ErrColumnFull))
		}
		if err := a.grow(c); err != nil {
			return a.poison(fmt.Errorf("%s: column %d: %w", method, col, err))
		}
	}
	c.indices[c.used] = row
	c.values[c.used] = value
	c.used++

	return nil
}

// grow doubles c.height, clamped to maxColHeight.
func (a *Accumulator) grow(c *Column) error {
	next := uint64(c.height) * 2
	if next == 0 {
		next = 1
	}
	if next > uint64(a.maxColHeight) {
		next = uint64(a.maxColHeight)
	}
	if next <= uint64(c.height) {
		return ErrGrowthOverflow
	}

	values := make([]float32, next)
	copy(values, c.values[:c.used])
	indices := make([]uint64, next)
	copy(indices, c.indices[:c.used])
	c.values, c.indices, c.height = values, indices, uint32(next)

	return nil
}

// Len returns the number of result columns (0 once poisoned or released).
func (a *Accumulator) Len() int {
	if a == nil {
		return 0
	}
	return len(a.cols)
}

// MaxColHeight returns the per-column cap.
func (a *Accumulator) MaxColHeight() uint32 { return a.maxColHeight }

// Column returns column i, or nil when out of range.
func (a *Accumulator) Column(i int) *Column {
	if a == nil || i < 0 || i >= len(a.cols) {
		return nil
	}
	return &a.cols[i]
}

// Valid reports whether the accumulator is usable (not poisoned, not released).
func (a *Accumulator) Valid() bool {
	return a != nil && a.err == nil && a.cols != nil
}

// Err returns the first failure that poisoned the accumulator, or nil.
func (a *Accumulator) Err() error {
	if a == nil {
		return ellpack.ErrNilMatrix
	}
	return a.err
}

// Poison marks the accumulator failed with cause (first cause wins) and drops
// every column. A nil cause is recorded as ErrPoisoned.
func (a *Accumulator) Poison(cause error) {
	if cause == nil {
		cause = ErrPoisoned
	}
	_ = a.poison(cause)
}

// Release drops all columns. Idempotent. A released accumulator is invalid but
// carries no error.
func (a *Accumulator) Release() {
	if a == nil {
		return
	}
	a.cols = nil
}

// LongestColumn returns the largest UsedHeight over all columns.
func (a *Accumulator) LongestColumn() uint64 {
	if a.Len() == 0 {
		return 0
	}
	return uint64(lo.MaxBy(a.cols, func(x, cur Column) bool { return x.used > cur.used }).used)
}

// TotalPushed returns the number of entries pushed over all columns.
func (a *Accumulator) TotalPushed() uint64 {
	if a.Len() == 0 {
		return 0
	}
	return lo.SumBy(a.cols, func(c Column) uint64 { return uint64(c.used) })
}

// ToMatrix converts the pushed entries into a Matrix with the given row count.
// Sorted is derived from the pushed order.
func (a *Accumulator) ToMatrix(rows uint64) (*ellpack.Matrix, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("ToMatrix: %w", ErrPoisoned)
	}
	cols := make([][]ellpack.Entry, len(a.cols))
	for j := range a.cols {
		c := &a.cols[j]
		col := make([]ellpack.Entry, c.used)
		for k := range col {
			col[k] = ellpack.Entry{Row: c.indices[k], Value: c.values[k]}
		}
		cols[j] = col
	}

	return ellpack.FromColumns(rows, cols)
}

func (a *Accumulator) poison(cause error) error {
	if a.err == nil {
		a.err = cause
	}
	a.cols = nil
	return cause
}

func (a *Accumulator) fail(cause error) (*Accumulator, error) {
	_ = a.poison(cause)
	return a, cause
}

func clampUint32(v uint64) uint32 {
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
