// Package ellpack is the data model of a sparse matrix multiplier that works on
// the column-major, fixed-stride ELLPACK layout.
//
// 🚀 What is in the box?
//
//	A small, single-threaded pipeline that multiplies two sparse matrices:
//		• Model:        ellpack.Matrix (this package) + the compatibility checker
//		• Codec:        codec.Read / codec.Write for the three-line text layout
//		• Accumulator:  accumulator.Accumulator, growable result columns
//		• Engine:       matmul.Multiply, sorted merge walk or unsorted scan
//		• Pipeline:     pipeline.Run, read → check → multiply → write (+ benchmark)
//
// Supporting packages:
//
//	generator/  - synthetic ELLPACK matrices and ready-made test cases
//	reference/  - dense reference products (gonum) and result verification
//	spy/        - sparsity-pattern plots
//	cmd/ellpack - command-line front end
//
// Layout in one picture (rows=4, cols=2, max_per_col=3):
//
//	4,2,3
//	1.0,5.0,*,2.0,*,*
//	0,3,*,1,*,*
//
// column 0 holds {row 0: 1.0, row 3: 5.0}, column 1 holds {row 1: 2.0}; the
// '*' marker pads every column out to max_per_col fields.
//
//	go get github.com/katalvlaran/ellpack
package ellpack
