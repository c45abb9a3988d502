// Package reference computes dense reference products with gonum and checks
// sparse results against them.
//
// It is a verification aid for tests, generators and the verify command, not
// a multiplication path: every matrix is expanded to a dense gonum mat.Dense,
// so memory grows with rows×cols. Conversions refuse shapes above MaxCells.
//
// Closeness follows the usual allclose contract, element-wise
//
//	|got - want| ≤ atol + rtol·|want|
//
// with NaN never close to anything.
package reference
