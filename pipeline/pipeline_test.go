package pipeline_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/katalvlaran/ellpack"
	"github.com/katalvlaran/ellpack/accumulator"
	"github.com/katalvlaran/ellpack/codec"
	"github.com/katalvlaran/ellpack/matmul"
	"github.com/katalvlaran/ellpack/pipeline"
	"github.com/stretchr/testify/require"
)

const (
	diagA    = "2,2,1\n2,3\n0,1\n"
	columnB  = "2,1,2\n5,7\n0,1\n"
	productC = "2,1,2\n10,21\n0,1\n"
	tallB    = "3,1,1\n1\n2\n"
)

// fixture writes content under dir and returns its path.
func fixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestRun_WritesProduct(t *testing.T) {
	t.Parallel()
	for _, s := range []matmul.Strategy{matmul.Auto, matmul.Vectorized, matmul.Scalar, matmul.Unsorted} {
		s := s
		t.Run(s.String(), func(t *testing.T) {
			t.Parallel()
			dir := t.TempDir()
			a := fixture(t, dir, "a.txt", diagA)
			b := fixture(t, dir, "b.txt", columnB)
			out := filepath.Join(dir, "c.txt")

			r, err := pipeline.Run(context.Background(), a, b, out, 0, s)
			require.NoError(t, err)
			require.Equal(t, 1, r.Iterations)
			require.Equal(t, uint64(2), r.ResultNonZero)

			got, err := codec.Read(out)
			require.NoError(t, err)
			require.Equal(t, []float32{10, 21}, got.Values)
			require.Equal(t, []uint64{0, 1}, got.Indices)
			require.NoError(t, pipeline.Compare(out, fixture(t, dir, "want.txt", productC)))
		})
	}
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	a := fixture(t, dir, "a.txt", diagA)
	b := fixture(t, dir, "b.txt", columnB)
	tall := fixture(t, dir, "tall.txt", tallB)
	bad := fixture(t, dir, "bad.txt", "2,x,1\n")

	cases := []struct {
		name   string
		a, b   string
		reps   int
		target error
	}{
		{"negative repetitions", a, b, -1, pipeline.ErrRepetitions},
		{"missing file", filepath.Join(dir, "nope.txt"), b, 0, ellpack.ErrIO},
		{"malformed header", bad, b, 0, ellpack.ErrParse},
		{"incompatible shapes", a, tall, 0, ellpack.ErrIncompatibleShapes},
		{"incompatible shapes benchmarked", a, tall, 3, ellpack.ErrIncompatibleShapes},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out := filepath.Join(t.TempDir(), "c.txt")
			r, err := pipeline.Run(context.Background(), tc.a, tc.b, out, tc.reps, matmul.Auto)
			require.ErrorIs(t, err, tc.target)
			require.Nil(t, r)
			_, statErr := os.Stat(out)
			require.True(t, os.IsNotExist(statErr), "no output on failure")
		})
	}
}

func TestRun_NoOutputPath(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	r, err := pipeline.Run(context.Background(),
		fixture(t, dir, "a.txt", diagA), fixture(t, dir, "b.txt", columnB), "", 0, matmul.Scalar)
	require.NoError(t, err)
	require.Equal(t, matmul.Scalar, r.Strategy)
	require.Equal(t, "scalar", r.Kernel)
}

func TestBenchmark_KeepsFirstResult(t *testing.T) {
	t.Parallel()
	a, err := codec.Decode(strings.NewReader(diagA))
	require.NoError(t, err)
	b, err := codec.Decode(strings.NewReader(columnB))
	require.NoError(t, err)
	acc, err := accumulator.FromOperands(a, b)
	require.NoError(t, err)

	r, err := pipeline.Benchmark(context.Background(), matmul.Vectorized, a, b, acc, 4)
	require.NoError(t, err)
	require.Equal(t, 4, r.Iterations)
	require.Equal(t, matmul.ActiveKernel(), r.Kernel)
	require.LessOrEqual(t, r.Min, r.Average)
	require.LessOrEqual(t, r.Average, r.Max)
	require.Equal(t, uint64(2), acc.TotalPushed(), "later iterations must not accumulate into acc")

	_, err = pipeline.Benchmark(context.Background(), matmul.Vectorized, a, b, acc, 0)
	require.ErrorIs(t, err, pipeline.ErrRepetitions)
}

func TestBenchmark_Cancelled(t *testing.T) {
	t.Parallel()
	a, err := codec.Decode(strings.NewReader(diagA))
	require.NoError(t, err)
	b, err := codec.Decode(strings.NewReader(columnB))
	require.NoError(t, err)
	acc, err := accumulator.FromOperands(a, b)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = pipeline.Benchmark(ctx, matmul.Scalar, a, b, acc, 2)
	require.ErrorIs(t, err, context.Canceled)

	ctx, cancel = context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = pipeline.Benchmark(ctx, matmul.Scalar, a, b, acc, 2, pipeline.WithCooldown(time.Hour))
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestReport_Print(t *testing.T) {
	t.Parallel()
	r := &pipeline.Report{
		Strategy:      matmul.Unsorted,
		Kernel:        "scalar",
		Iterations:    3,
		Total:         3 * time.Millisecond,
		Average:       time.Millisecond,
		Min:           time.Millisecond,
		Max:           time.Millisecond,
		ResultNonZero: 1234567,
	}
	var buf bytes.Buffer
	require.NoError(t, r.Print(&buf))
	require.Contains(t, buf.String(), "strategy unsorted")
	require.Contains(t, buf.String(), "1,234,567 result entries")
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() { pipeline.WithLogger(nil) })
	require.Panics(t, func() { pipeline.WithCooldown(-time.Second) })
	require.Panics(t, func() { pipeline.WithBufferSize(codec.MinBufferSize - 1) })
	require.Panics(t, func() { pipeline.WithTolerance(-1) })
}
