//go:build amd64 && goexperiment.simd

// SPDX-License-Identifier: MIT
// Package: ellpack/matmul
//
// dot_amd64_simd.go: archsimd kernel, selected at init when AVX is present
// and NoSimdEnvVar is unset.

package matmul

import "simd/archsimd"

func init() {
	if NoSimdEnv() || !archsimd.X86.AVX() {
		return
	}
	vectorDot = dotF32x4
	vectorKernel = "archsimd-f32x4"
}

// dotF32x4 gathers four cache entries per step into a lane buffer and
// multiplies them against four contiguous values of the B column.
func dotF32x4(cache []float32, rows []uint64, vals []float32) float32 {
	n := len(vals)
	rows = rows[:n]
	sum := archsimd.BroadcastFloat32x4(0)
	var gathered [4]float32
	i := 0
	for ; i+4 <= n; i += 4 {
		gathered[0] = cache[rows[i]]
		gathered[1] = cache[rows[i+1]]
		gathered[2] = cache[rows[i+2]]
		gathered[3] = cache[rows[i+3]]
		va := archsimd.LoadFloat32x4Slice(gathered[:])
		vb := archsimd.LoadFloat32x4Slice(vals[i:])
		sum = sum.Add(va.Mul(vb))
	}

	var lanes [4]float32
	sum.StoreSlice(lanes[:])
	result := (lanes[0] + lanes[1]) + (lanes[2] + lanes[3])
	for ; i < n; i++ {
		result += cache[rows[i]] * vals[i]
	}
	return result
}
