// SPDX-License-Identifier: MIT
// Package: ellpack/codec
//
// bitset.go: growable bitset for padding positions.

package codec

// bitset grows on set; get beyond the last word reports false.
type bitset []uint64

func (b *bitset) set(i int) {
	w := i >> 6
	for len(*b) <= w {
		*b = append(*b, 0)
	}
	(*b)[w] |= 1 << (uint(i) & 63)
}

func (b bitset) get(i int) bool {
	w := i >> 6
	return w < len(b) && b[w]&(1<<(uint(i)&63)) != 0
}
