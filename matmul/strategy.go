// SPDX-License-Identifier: MIT
// Package: ellpack/matmul
//
// strategy.go: the closed set of multiplication algorithms.
//
// The numeric values match the command-line variant numbers:
// 0 auto, 1 vectorized, 2 scalar, 3 unsorted.

package matmul

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/ellpack"
)

// Strategy selects the multiplication algorithm.
type Strategy uint8

const (
	// Auto picks Vectorized for sorted operands and Unsorted otherwise.
	Auto Strategy = iota
	// Vectorized is the sorted merge walk with the 4-lane dot kernel.
	Vectorized
	// Scalar is the sorted merge walk with a scalar dot product.
	Scalar
	// Unsorted is the linear-scan fallback; valid for any input.
	Unsorted
)

var strategyNames = [...]string{
	Auto:       "auto",
	Vectorized: "simd",
	Scalar:     "scalar",
	Unsorted:   "unsorted",
}

// String returns the canonical lower-case name.
func (s Strategy) String() string {
	if int(s) < len(strategyNames) {
		return strategyNames[s]
	}
	return fmt.Sprintf("strategy(%d)", uint8(s))
}

// Sorted reports whether s requires sorted operands.
func (s Strategy) Sorted() bool {
	return s == Vectorized || s == Scalar
}

// ParseStrategy accepts a canonical name, an alias ("vectorized", "no-simd")
// or the variant number "0".."3".
func ParseStrategy(s string) (Strategy, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	switch key {
	case "vectorized", "vector":
		return Vectorized, nil
	case "no-simd", "nosimd":
		return Scalar, nil
	}
	for i, name := range strategyNames {
		if key == name {
			return Strategy(i), nil
		}
	}
	if n, err := strconv.ParseUint(key, 10, 8); err == nil && int(n) < len(strategyNames) {
		return Strategy(n), nil
	}
	return Auto, fmt.Errorf("ParseStrategy %q: %w", s, ErrUnknownStrategy)
}

// Select resolves the strategy to run. An explicit override always wins; Auto
// resolves to Vectorized when both operands are sorted, Unsorted otherwise.
// Select never inspects anything but the Sorted flags.
func Select(a, b *ellpack.Matrix, override Strategy) Strategy {
	if override != Auto {
		return override
	}
	if a != nil && b != nil && a.Sorted && b.Sorted {
		return Vectorized
	}
	return Unsorted
}
