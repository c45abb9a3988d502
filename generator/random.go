// SPDX-License-Identifier: MIT
// Package: ellpack/generator
//
// random.go: Random, Identity and Shuffle.

package generator

import (
	"fmt"

	"github.com/katalvlaran/ellpack"
	"github.com/samber/lo"
)

// Random returns a rows×cols matrix whose cells are zero with probability
// sparsity and a drawn value otherwise (default: integers 1..100). Cells are
// drawn row by row; entries are stored in ascending row order, so the result
// is sorted.
//
// Errors: ErrTooSmall, ErrInvalidProbability, ErrNeedRandSource.
// Complexity: O(rows·cols) time, O(nnz) space.
func Random(rows, cols uint64, sparsity float64, opts ...Option) (*ellpack.Matrix, error) {
	const method = "Random"
	cfg := newConfig(opts...)
	if err := validateDims(rows, cols); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	if err := validateProbability(sparsity); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	if err := validateRNG(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	columns := make([][]ellpack.Entry, cols)
	for i := uint64(0); i < rows; i++ {
		for j := range columns {
			if cfg.rng.Float64() < sparsity {
				continue
			}
			columns[j] = append(columns[j], ellpack.Entry{Row: i, Value: cfg.valueFn(cfg.rng)})
		}
	}

	m, err := ellpack.FromColumns(rows, columns)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	return m, nil
}

// Identity returns the n×n identity: column j holds row j with value 1.
func Identity(n uint64) (*ellpack.Matrix, error) {
	if err := validateDims(n, n); err != nil {
		return nil, fmt.Errorf("Identity: %w", err)
	}
	columns := lo.Times(int(n), func(j int) []ellpack.Entry {
		return []ellpack.Entry{{Row: uint64(j), Value: 1}}
	})
	return ellpack.FromColumns(n, columns)
}

// Shuffle returns a copy of m with the entries of every column permuted.
// The copy is unsorted unless every column has at most one entry or the
// permutation happens to keep the order.
//
// Errors: ellpack.ErrNilMatrix, ErrNeedRandSource.
func Shuffle(m *ellpack.Matrix, opts ...Option) (*ellpack.Matrix, error) {
	const method = "Shuffle"
	cfg := newConfig(opts...)
	if m == nil {
		return nil, fmt.Errorf("%s: %w", method, ellpack.ErrNilMatrix)
	}
	if err := validateRNG(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	off := m.Offsets()
	columns := make([][]ellpack.Entry, m.Cols)
	for j := 0; j+1 < len(off); j++ {
		col := make([]ellpack.Entry, 0, off[j+1]-off[j])
		for k := off[j]; k < off[j+1]; k++ {
			col = append(col, ellpack.Entry{Row: m.Indices[k], Value: m.Values[k]})
		}
		cfg.rng.Shuffle(len(col), func(x, y int) { col[x], col[y] = col[y], col[x] })
		columns[j] = col
	}

	out, err := ellpack.FromColumns(m.Rows, columns)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	return out, nil
}
