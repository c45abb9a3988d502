// Package accumulator collects the result of a sparse multiplication whose
// final shape is unknown in advance.
//
// An Accumulator owns one growable Column per result column. Each column keeps
// parallel row-index and value slices, a logical height (entries pushed) and a
// physical height (capacity). Capacity starts at a hint and doubles on demand,
// never beyond the matrix-wide MaxColHeight.
//
// Validity is binary. Any failed Push poisons the accumulator: the columns are
// dropped, Valid reports false and Err returns the first cause. There is no
// partially valid state to inspect.
//
//	acc, err := accumulator.FromOperands(a, b)
//	if err != nil { ... }
//	matmul.Multiply(a, b, acc)
//	if !acc.Valid() { return acc.Err() }
package accumulator
