package matmul_test

import (
	"fmt"

	"github.com/katalvlaran/ellpack"
	"github.com/katalvlaran/ellpack/accumulator"
	"github.com/katalvlaran/ellpack/matmul"
)

// ExampleRun multiplies a diagonal matrix by a column vector.
func ExampleRun() {
	a, _ := ellpack.FromColumns(2, [][]ellpack.Entry{{{Row: 0, Value: 2}}, {{Row: 1, Value: 3}}})
	b, _ := ellpack.FromColumns(2, [][]ellpack.Entry{{{Row: 0, Value: 5}, {Row: 1, Value: 7}}})

	acc, err := accumulator.FromOperands(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	if err = matmul.Run(matmul.Scalar, a, b, acc); err != nil {
		fmt.Println(err)
		return
	}
	col := acc.Column(0)
	fmt.Println(col.Indices(), col.Values())

	// Output:
	// [0 1] [10 21]
}

// ExampleParseStrategy shows the accepted spellings.
func ExampleParseStrategy() {
	for _, name := range []string{"0", "simd", "no-simd", "3"} {
		s, _ := matmul.ParseStrategy(name)
		fmt.Println(name, "->", s)
	}

	// Output:
	// 0 -> auto
	// simd -> simd
	// no-simd -> scalar
	// 3 -> unsorted
}
