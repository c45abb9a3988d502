// SPDX-License-Identifier: MIT
// Package: ellpack/matmul
//
// sorted.go: merge-walk multiplication for sorted operands.
//
// One cursor per column of A points at the next unvisited entry. Each round
// picks the smallest row under any cursor, copies every entry of that row into
// the dense row cache and advances the matching cursors. The cache is then
// dotted with every non-empty column of B.
//
// Complexity: O(R·(a.Cols + nnz(B))) for R non-empty rows of A;
// O(a.Cols) extra space.

package matmul

import (
	"github.com/katalvlaran/ellpack"
	"github.com/katalvlaran/ellpack/accumulator"
)

// dotFunc returns Σ cache[rows[k]]·vals[k].
type dotFunc func(cache []float32, rows []uint64, vals []float32) float32

// rowMerger walks the rows of a sorted matrix in ascending order.
type rowMerger struct {
	m       *ellpack.Matrix
	off     []uint64 // column offsets of m
	cursor  []uint64 // next entry per column
	touched []int    // columns written into the cache for the current row
}

func newRowMerger(m *ellpack.Matrix) *rowMerger {
	off := m.Offsets()
	cursor := make([]uint64, len(off)-1)
	copy(cursor, off)
	return &rowMerger{m: m, off: off, cursor: cursor}
}

// next fills cache with the next row and returns its index, or
// (ellpack.Padding, false) once every column is exhausted. The previous row's
// cache entries are cleared first.
func (rm *rowMerger) next(cache []float32) (uint64, bool) {
	for _, k := range rm.touched {
		cache[k] = 0
	}
	rm.touched = rm.touched[:0]

	row := ellpack.Padding
	for k, p := range rm.cursor {
		if p < rm.off[k+1] && rm.m.Indices[p] < row {
			row = rm.m.Indices[p]
		}
	}
	if row == ellpack.Padding {
		return row, false
	}

	for k, p := range rm.cursor {
		if p < rm.off[k+1] && rm.m.Indices[p] == row {
			cache[k] = rm.m.Values[p]
			rm.cursor[k]++
			rm.touched = append(rm.touched, k)
		}
	}
	return row, true
}

func multiplySorted(a, b *ellpack.Matrix, acc *accumulator.Accumulator, dot dotFunc, eps float32) error {
	cache := make([]float32, a.Cols)
	offB := b.Offsets()
	rm := newRowMerger(a)

	for {
		row, ok := rm.next(cache)
		if !ok {
			return nil
		}
		for j := 0; j+1 < len(offB); j++ {
			lo, hi := offB[j], offB[j+1]
			if lo == hi {
				continue
			}
			v := dot(cache, b.Indices[lo:hi], b.Values[lo:hi])
			if !keep(v, eps) {
				continue
			}
			if err := acc.Push(v, row, uint64(j)); err != nil {
				return err
			}
		}
	}
}
