// SPDX-License-Identifier: MIT
// Package: ellpack/matmul
//
// unsorted.go: linear-scan multiplication for arbitrary row order.

package matmul

import (
	"github.com/katalvlaran/ellpack"
	"github.com/katalvlaran/ellpack/accumulator"
)

// multiplyUnsorted visits every row 0..a.Rows-1 and searches each column of A
// for it. Rows without entries are skipped before touching B.
// Complexity: O(a.Rows·nnz(A) + R·nnz(B)); O(a.Cols) extra space.
func multiplyUnsorted(a, b *ellpack.Matrix, acc *accumulator.Accumulator, eps float32) error {
	cache := make([]float32, a.Cols)
	offA, offB := a.Offsets(), b.Offsets()
	touched := make([]int, 0, len(offA)-1)

	for row := uint64(0); row < a.Rows; row++ {
		for _, k := range touched {
			cache[k] = 0
		}
		touched = touched[:0]

		for k := 0; k+1 < len(offA); k++ {
			for p := offA[k]; p < offA[k+1]; p++ {
				if a.Indices[p] == row {
					cache[k] = a.Values[p]
					touched = append(touched, k)
					break
				}
			}
		}
		if len(touched) == 0 {
			continue
		}

		for j := 0; j+1 < len(offB); j++ {
			lo, hi := offB[j], offB[j+1]
			if lo == hi {
				continue
			}
			v := dotScalar(cache, b.Indices[lo:hi], b.Values[lo:hi])
			if !keep(v, eps) {
				continue
			}
			if err := acc.Push(v, row, uint64(j)); err != nil {
				return err
			}
		}
	}
	return nil
}
