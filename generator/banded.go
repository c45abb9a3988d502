// SPDX-License-Identifier: MIT
// Package: ellpack/generator
//
// banded.go: benchmark matrices with controlled column fill.
//
// Per column j the number of entries is drawn from
//
//	[emptiest, fullest)   with emptiest = Filling·Fullest/255
//
// (exactly emptiest when the two coincide). One randomly chosen column is
// filled to Fullest. Entry i of a column with f entries sits at
// i·step + r, step = Rows/f, r ∈ [0, step), so every column is sorted.
//
// The matrix is first laid out in raw ELLPACK buffers of Cols·Fullest slots,
// with ellpack.Padding marking unused indices and NaN unused values, then
// compacted.

package generator

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ellpack"
)

// BandConfig describes one Banded matrix.
type BandConfig struct {
	Name     string // file name used by BenchSuite
	Rows     uint64
	Cols     uint64
	Fullest  uint64 // entries in the fullest column (the ELLPACK width)
	Filling  uint8  // 255: every column near Fullest; 1: columns nearly empty
	OnlyInts bool   // draw integers 1..1000 instead of floats in [0, 1000)
}

// benchSize is the edge length of the default benchmark matrices.
const benchSize = 1000

// BenchConfigs returns the default benchmark matrix set.
func BenchConfigs() []BandConfig {
	const tall = math.MaxUint64 - 1
	return []BandConfig{
		{"sparse_regular_square.txt", benchSize, benchSize, 50, 100, false},
		{"dense_regular_square.txt", benchSize, benchSize, benchSize, 255, false},
		{"dense_irregular_square.txt", benchSize, benchSize, benchSize, 64, false},
		{"sparse_tall.txt", tall, benchSize, 50, 255, false},
		{"dense_tall.txt", tall, benchSize, benchSize / 4, 255, false},
		{"single_row_sparse.txt", 1, benchSize, 1, 1, false},
		{"single_row_dense.txt", 1, benchSize, 1, 255, false},
		{"single_column_sparse.txt", benchSize, 1, 100, 1, false},
		{"single_column_dense.txt", benchSize, 1, benchSize / 4, 255, false},
		{"10x10_sparse.txt", 10, 10, 4, 255, true},
		{"large_square_sparse.txt", benchSize * 4, benchSize * 4, 100, 1, false},
		{"test_max_uint64.txt", tall, 5, 5, 40, false},
		{"100x100_random.txt", 100, 100, 50, 100, false},
	}
}

// Banded builds the matrix described by bc.
//
// Errors: ErrTooSmall, ErrBadFill, ErrNeedRandSource.
// Complexity: O(Cols·Fullest) time and space.
func Banded(bc BandConfig, opts ...Option) (*ellpack.Matrix, error) {
	const method = "Banded"
	cfg := newConfig(opts...)
	if err := validateDims(bc.Rows, bc.Cols); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	if bc.Rows == ellpack.Padding || bc.Fullest == 0 || bc.Fullest > bc.Rows || bc.Filling == 0 {
		return nil, fmt.Errorf("%s: rows=%d fullest=%d filling=%d: %w", method, bc.Rows, bc.Fullest, bc.Filling, ErrBadFill)
	}
	if bc.Cols > math.MaxInt/bc.Fullest {
		return nil, fmt.Errorf("%s: %d×%d slots: %w", method, bc.Cols, bc.Fullest, ErrBadFill)
	}
	if err := validateRNG(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	rng := cfg.rng

	emptiest := uint64(bc.Filling) * bc.Fullest / 255
	delta := max(bc.Fullest-emptiest, 1)
	fillColumn := rng.Uint64() % bc.Cols

	slots := int(bc.Cols * bc.Fullest)
	indices := make([]uint64, slots)
	values := make([]float32, slots)

	for j := uint64(0); j < bc.Cols; j++ {
		base := j * bc.Fullest
		filled := min(rng.Uint64()%delta+emptiest, bc.Fullest)
		if j == fillColumn {
			filled = bc.Fullest
		}
		step := bc.Rows / max(filled, 1)
		for i := uint64(0); i < bc.Fullest; i++ {
			if i >= filled {
				indices[base+i] = ellpack.Padding
				values[base+i] = float32(math.NaN())
				continue
			}
			indices[base+i] = i*step + rng.Uint64()%step
			if bc.OnlyInts {
				values[base+i] = float32(rng.Intn(1000) + 1)
			} else {
				values[base+i] = rng.Float32() * 1000
			}
		}
	}

	m, err := compact(bc.Rows, bc.Cols, bc.Fullest, indices, values)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	return m, nil
}

// compact turns raw fixed-stride buffers into a Matrix, dropping padded slots.
func compact(rows, cols, width uint64, indices []uint64, values []float32) (*ellpack.Matrix, error) {
	columns := make([][]ellpack.Entry, cols)
	for j := range columns {
		base := uint64(j) * width
		for i := uint64(0); i < width; i++ {
			if indices[base+i] == ellpack.Padding {
				continue
			}
			columns[j] = append(columns[j], ellpack.Entry{Row: indices[base+i], Value: values[base+i]})
		}
	}
	return ellpack.FromColumns(rows, columns)
}
