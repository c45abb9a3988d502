// Package matmul_test benchmarks the strategies on deterministic random
// operands.
package matmul_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/ellpack"
	"github.com/katalvlaran/ellpack/accumulator"
	"github.com/katalvlaran/ellpack/generator"
	"github.com/katalvlaran/ellpack/matmul"
)

// benchShapes are square sizes paired with the probability of a zero cell.
var benchShapes = []struct {
	n        uint64
	sparsity float64
}{
	{64, 0.5},
	{256, 0.9},
	{512, 0.99},
}

// sink to defeat dead-code elimination
var sinkNNZ uint64

func benchOperands(b *testing.B, n uint64, sparsity float64, shuffle bool) (*ellpack.Matrix, *ellpack.Matrix) {
	b.Helper()
	x, err := generator.Random(n, n, sparsity, generator.WithSeed(1337))
	if err != nil {
		b.Fatal(err)
	}
	y, err := generator.Random(n, n, sparsity, generator.WithSeed(4242))
	if err != nil {
		b.Fatal(err)
	}
	if shuffle {
		if x, err = generator.Shuffle(x, generator.WithSeed(7)); err != nil {
			b.Fatal(err)
		}
	}
	return x, y
}

func BenchmarkRun(b *testing.B) {
	b.ReportAllocs()
	for _, s := range explicit {
		for _, sh := range benchShapes {
			b.Run(fmt.Sprintf("%s/n=%d/sparsity=%g", s, sh.n, sh.sparsity), func(b *testing.B) {
				x, y := benchOperands(b, sh.n, sh.sparsity, s == matmul.Unsorted)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					acc, err := accumulator.FromOperands(x, y)
					if err != nil {
						b.Fatal(err)
					}
					if err = matmul.Run(s, x, y, acc); err != nil {
						b.Fatal(err)
					}
					sinkNNZ = acc.TotalPushed()
					acc.Release()
				}
			})
		}
	}
}
