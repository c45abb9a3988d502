// SPDX-License-Identifier: MIT
// Package: ellpack/matmul
//
// matmul.go: entry points of the multiplication engine.
//
// Stage 1 (Resolve):  Select the strategy (override or sortedness).
// Stage 2 (Validate): ellpack.Check; TooWide is tolerated only when the
//                     product is known to be empty.
// Stage 3 (Execute):  sorted merge walk or unsorted scan.
// Any failure in Stage 2 or 3 poisons the accumulator.

package matmul

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/ellpack"
	"github.com/katalvlaran/ellpack/accumulator"
)

// Epsilon is the default zero-suppression threshold: results with
// |v| < Epsilon are not stored. NaN results are stored.
const Epsilon float32 = 1e-7

// Multiply computes a·b into acc with the automatically selected strategy.
// It reports failure only through acc: check acc.Valid() and acc.Err().
func Multiply(a, b *ellpack.Matrix, acc *accumulator.Accumulator, opts ...Option) {
	_ = Run(Auto, a, b, acc, opts...)
}

// Run computes a·b into acc with strategy s (Auto resolves via Select).
// An operand with no entries leaves acc untouched.
//
// Errors (acc is poisoned for all but the first two):
//   - ErrNilAccumulator, accumulator.ErrPoisoned for an unusable acc;
//   - ellpack.ErrIncompatibleShapes (with ErrNotSorted/ErrOverflow/ErrNilMatrix);
//   - ellpack.ErrTooWide for a non-empty product over too many columns;
//   - ErrResultShape when acc.Len() != b.Cols;
//   - ErrUnknownStrategy;
//   - accumulator push failures (ellpack.ErrAllocation).
func Run(s Strategy, a, b *ellpack.Matrix, acc *accumulator.Accumulator, opts ...Option) error {
	const method = "Run"
	if acc == nil {
		return fmt.Errorf("%s: %w", method, ErrNilAccumulator)
	}
	if !acc.Valid() {
		return fmt.Errorf("%s: %w", method, accumulator.ErrPoisoned)
	}
	cfg := newConfig(opts...)

	// Stage 1: resolve.
	s = Select(a, b, s)
	fail := func(err error) error {
		err = fmt.Errorf("%s(%s): %w", method, s, err)
		acc.Poison(err)
		cfg.logger.Error("matmul: multiplication failed", "strategy", s.String(), "err", err)
		return err
	}
	if s > Unsorted {
		return fail(ErrUnknownStrategy)
	}

	// Stage 2: validate.
	switch ellpack.Check(a, b, s.Sorted()) {
	case ellpack.Incompatible:
		return fail(ellpack.CheckErr(a, b, s.Sorted()))
	case ellpack.TooWide:
		if !ellpack.IsEmptyProduct(a, b) {
			return fail(ellpack.CheckErr(a, b, s.Sorted()))
		}
	}
	if ellpack.IsEmptyProduct(a, b) {
		cfg.logger.Debug("matmul: empty operand, nothing to do")
		return nil
	}
	if uint64(acc.Len()) != b.Cols {
		return fail(fmt.Errorf("%d columns for %d: %w", acc.Len(), b.Cols, ErrResultShape))
	}

	// Stage 3: execute.
	cfg.logger.Debug("matmul: start",
		slog.String("strategy", s.String()),
		slog.String("kernel", kernelFor(s)),
		slog.Uint64("a_nnz", a.TotalNonZero()),
		slog.Uint64("b_nnz", b.TotalNonZero()))

	var err error
	switch s {
	case Vectorized:
		err = multiplySorted(a, b, acc, vectorDot, cfg.epsilon)
	case Scalar:
		err = multiplySorted(a, b, acc, dotScalar, cfg.epsilon)
	case Unsorted:
		err = multiplyUnsorted(a, b, acc, cfg.epsilon)
	}
	if err != nil {
		return fail(err)
	}
	return nil
}

// keep reports whether v survives zero suppression.
func keep(v, eps float32) bool {
	if v < 0 {
		v = -v
	}
	return !(v < eps)
}

func kernelFor(s Strategy) string {
	if s == Vectorized {
		return ActiveKernel()
	}
	return "scalar"
}
