// SPDX-License-Identifier: MIT
// Package: ellpack/matmul
//
// dot.go: gathered dot products over the dense row cache.
//
// Both kernels compute Σ cache[rows[k]]·vals[k]. The lane kernel keeps four
// partial sums and reduces them as (s0+s1)+(s2+s3) before adding the scalar
// tail, so its rounding differs from dotScalar in the last bits.

package matmul

import "os"

// NoSimdEnvVar disables the hardware vector kernel when set to any value.
const NoSimdEnvVar = "ELLPACK_NO_SIMD"

// NoSimdEnv reports whether NoSimdEnvVar is set.
func NoSimdEnv() bool {
	return os.Getenv(NoSimdEnvVar) != ""
}

// vectorDot is the kernel of the Vectorized strategy. Build-specific files
// may replace it during init.
var (
	vectorDot    dotFunc = dotLanes
	vectorKernel         = "lanes-4"
)

// ActiveKernel names the kernel the Vectorized strategy runs.
func ActiveKernel() string { return vectorKernel }

func dotScalar(cache []float32, rows []uint64, vals []float32) float32 {
	var sum float32
	for k, r := range rows {
		sum += cache[r] * vals[k]
	}
	return sum
}

// dotLanes is the portable 4-lane kernel.
func dotLanes(cache []float32, rows []uint64, vals []float32) float32 {
	n := len(vals)
	rows = rows[:n]
	var s0, s1, s2, s3 float32
	i := 0
	for ; i+4 <= n; i += 4 {
		s0 += cache[rows[i]] * vals[i]
		s1 += cache[rows[i+1]] * vals[i+1]
		s2 += cache[rows[i+2]] * vals[i+2]
		s3 += cache[rows[i+3]] * vals[i+3]
	}
	sum := (s0 + s1) + (s2 + s3)
	for ; i < n; i++ {
		sum += cache[rows[i]] * vals[i]
	}
	return sum
}
