package reference_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/ellpack"
	"github.com/katalvlaran/ellpack/codec"
	"github.com/katalvlaran/ellpack/reference"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// mustColumns builds a matrix or fails the test.
func mustColumns(t *testing.T, rows uint64, cols [][]ellpack.Entry) *ellpack.Matrix {
	t.Helper()
	m, err := ellpack.FromColumns(rows, cols)
	require.NoError(t, err)
	return m
}

func TestToDenseAndBack(t *testing.T) {
	t.Parallel()
	m := mustColumns(t, 3, [][]ellpack.Entry{{{Row: 2, Value: 4}, {Row: 0, Value: 1}}, {}, {{Row: 1, Value: -2}}})
	d, err := reference.ToDense(m)
	require.NoError(t, err)
	require.Equal(t, []float64{
		1, 0, 0,
		0, 0, -2,
		4, 0, 0,
	}, d.RawMatrix().Data)

	back, err := reference.FromDense(d)
	require.NoError(t, err)
	require.True(t, back.Sorted)
	require.Equal(t, []uint64{0, 2, 1}, back.Indices)
	require.Equal(t, []float32{1, 4, -2}, back.Values)
	require.Equal(t, uint64(2), back.MaxPerCol)
}

func TestToDense_Errors(t *testing.T) {
	t.Parallel()
	_, err := reference.ToDense(nil)
	require.ErrorIs(t, err, ellpack.ErrNilMatrix)
	_, err = reference.ToDense(&ellpack.Matrix{Rows: 0, Cols: 3})
	require.ErrorIs(t, err, reference.ErrEmptyShape)
	_, err = reference.ToDense(&ellpack.Matrix{Rows: 1 << 20, Cols: 1 << 20})
	require.ErrorIs(t, err, reference.ErrTooLarge)
}

func TestMultiply(t *testing.T) {
	t.Parallel()
	a := mustColumns(t, 2, [][]ellpack.Entry{{{Row: 0, Value: 2}}, {{Row: 1, Value: 3}}})
	b := mustColumns(t, 2, [][]ellpack.Entry{{{Row: 0, Value: 5}, {Row: 1, Value: 7}}})
	p, err := reference.Multiply(a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{10, 21}, p.RawMatrix().Data)

	_, err = reference.Multiply(b, b)
	require.ErrorIs(t, err, reference.ErrShape)
	require.ErrorIs(t, err, ellpack.ErrIncompatibleShapes)
}

func TestAllClose(t *testing.T) {
	t.Parallel()
	want := mat.NewDense(1, 3, []float64{1, 100, 0})
	cases := []struct {
		name       string
		got        []float64
		atol, rtol float64
		ok         bool
	}{
		{"equal", []float64{1, 100, 0}, 0, 0, true},
		{"within atol", []float64{1 + 1e-7, 100, 1e-7}, 1e-6, 0, true},
		{"within rtol", []float64{1, 100.00005, 0}, 0, 1e-6, true},
		{"outside", []float64{1, 100.01, 0}, 1e-6, 1e-6, false},
		{"nan", []float64{math.NaN(), 100, 0}, 1, 1, false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ok, err := reference.AllClose(mat.NewDense(1, 3, tc.got), want, tc.atol, tc.rtol)
			require.NoError(t, err)
			require.Equal(t, tc.ok, ok)
		})
	}

	_, err := reference.AllClose(want, want, -1, 0)
	require.ErrorIs(t, err, reference.ErrTolerance)
	_, err = reference.AllClose(mat.NewDense(3, 1, nil), want, 0, 0)
	require.ErrorIs(t, err, reference.ErrShape)
}

func TestVerify(t *testing.T) {
	t.Parallel()
	a := mustColumns(t, 2, [][]ellpack.Entry{{{Row: 0, Value: 2}}, {{Row: 1, Value: 3}}})
	b := mustColumns(t, 2, [][]ellpack.Entry{{{Row: 0, Value: 5}, {Row: 1, Value: 7}}})
	good := mustColumns(t, 2, [][]ellpack.Entry{{{Row: 0, Value: 10}, {Row: 1, Value: 21}}})
	bad := mustColumns(t, 2, [][]ellpack.Entry{{{Row: 0, Value: 10}, {Row: 1, Value: 20}}})
	wrongShape := mustColumns(t, 2, [][]ellpack.Entry{{}, {}})

	require.NoError(t, reference.Verify(a, b, good, reference.DefaultTolerance, reference.DefaultTolerance))

	err := reference.Verify(a, b, bad, reference.DefaultTolerance, reference.DefaultTolerance)
	require.ErrorIs(t, err, reference.ErrMismatch)
	require.Contains(t, err.Error(), "(1,0)")

	require.ErrorIs(t, reference.Verify(a, b, wrongShape, 0, 0), reference.ErrShape)
	require.ErrorIs(t, reference.Verify(a, b, nil, 0, 0), ellpack.ErrNilMatrix)
}

func TestVerifyFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
		return p
	}
	pa := write("a.txt", "2,2,1\n2,3\n0,1\n")
	pb := write("b.txt", "2,1,2\n5,7\n0,1\n")
	pr := write("r.txt", "2,1,2\n1.000000e+01,2.100000e+01\n0,1\n")
	require.NoError(t, reference.VerifyFiles(pa, pb, pr, reference.DefaultTolerance, reference.DefaultTolerance, codec.WithBufferSize(64)))

	err := reference.VerifyFiles(pa, pb, filepath.Join(dir, "missing.txt"), 0, 0)
	require.ErrorIs(t, err, ellpack.ErrIO)
}
