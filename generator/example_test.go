package generator_test

import (
	"fmt"

	"github.com/katalvlaran/ellpack/generator"
)

func ExampleIdentity() {
	m, err := generator.Identity(3)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(m)
	// Output:
	// ellpack.Matrix rows=3 cols=3 max_per_col=1 nnz=3 sorted=true
	//   col 0 [1]: 0:1
	//   col 1 [1]: 1:1
	//   col 2 [1]: 2:1
}
