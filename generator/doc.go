// Package generator builds synthetic ELLPACK matrices and ready-made
// multiplication test cases.
//
// Constructors:
//
//	Random(rows, cols, sparsity)  - every cell is zero with probability sparsity
//	Banded(BandConfig)            - per-column fill between an emptiest and a
//	                                fullest count, strided row indices, one
//	                                column filled completely
//	Identity(n)                   - n×n identity
//	Shuffle(m)                    - same entries, column order scrambled
//
// Writers:
//
//	Case(dir, n, TestCase)        - <n>a.txt, <n>b.txt and expect<n>.txt
//	Suite(ctx, dir, cases)        - Case for every entry, concurrently
//
// Stochastic constructors require an RNG (WithSeed or WithRand) and are fully
// deterministic for a given seed. Suite derives one seed per case from the
// configured RNG before fanning out, so its output does not depend on
// scheduling.
package generator
