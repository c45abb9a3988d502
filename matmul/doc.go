// Package matmul multiplies two ELLPACK matrices into a result accumulator.
//
// Two algorithms are offered:
//
//   - Sorted: both operands have strictly increasing row indices per column.
//     A k-way merge over the columns of A visits the non-empty rows of A in
//     ascending order, expands each into a dense row cache of length a.Cols
//     and forms the gathered dot product with every column of B. The dot
//     product runs either scalar or with a 4-lane vector kernel.
//   - Unsorted: no ordering is assumed. Every row 0..a.Rows-1 is located by a
//     linear scan over A; rows without entries are skipped.
//
// Results whose magnitude is below Epsilon are not stored. Every pushed
// column receives rows in ascending order, so results are always sorted.
//
// Failures poison the accumulator; Multiply reports nothing else, Run also
// returns the cause.
package matmul
