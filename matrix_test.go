package ellpack_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/ellpack"
	"github.com/stretchr/testify/require"
)

// mustColumns builds a matrix or fails the test.
func mustColumns(t *testing.T, rows uint64, cols [][]ellpack.Entry) *ellpack.Matrix {
	t.Helper()
	m, err := ellpack.FromColumns(rows, cols)
	require.NoError(t, err)
	return m
}

func TestEmptyAndRelease(t *testing.T) {
	t.Parallel()
	m := ellpack.Empty()
	require.True(t, m.Sorted)
	require.Zero(t, m.TotalNonZero())
	require.True(t, m.IsEmpty())
	require.NoError(t, m.Validate())

	full := mustColumns(t, 3, [][]ellpack.Entry{{{0, 1}, {2, 3}}, {{1, 2}}})
	full.Release()
	full.Release() // idempotent
	require.Equal(t, *ellpack.Empty(), *full)

	var nilM *ellpack.Matrix
	require.NotPanics(t, nilM.Release)
}

func TestFromColumns(t *testing.T) {
	t.Parallel()
	m := mustColumns(t, 4, [][]ellpack.Entry{
		{{0, 1}, {3, 5}},
		{{1, 2}},
		{},
	})
	require.Equal(t, uint64(4), m.Rows)
	require.Equal(t, uint64(3), m.Cols)
	require.Equal(t, uint64(2), m.MaxPerCol)
	require.Equal(t, []uint64{2, 1, 0}, m.NonZerosPerCol)
	require.Equal(t, []float32{1, 5, 2}, m.Values)
	require.Equal(t, []uint64{0, 3, 1}, m.Indices)
	require.True(t, m.Sorted)
	require.Equal(t, []uint64{0, 2, 3, 3}, m.Offsets())
	require.Equal(t, uint64(2), m.LongestColumn())
	require.NoError(t, m.Validate())

	rows, vals := m.Column(1)
	require.Equal(t, []uint64{1}, rows)
	require.Equal(t, []float32{2}, vals)
	rows, vals = m.Column(9)
	require.Empty(t, rows)
	require.Empty(t, vals)
	require.Equal(t, uint64(0), m.ColumnLen(2))
}

func TestFromColumns_Unsorted(t *testing.T) {
	t.Parallel()
	m := mustColumns(t, 4, [][]ellpack.Entry{{{3, 1}, {0, 2}}})
	require.False(t, m.Sorted)
	require.NoError(t, m.Validate())
}

func TestFromColumns_Errors(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		rows uint64
		cols [][]ellpack.Entry
	}{
		{"out of range", 2, [][]ellpack.Entry{{{2, 1}}}},
		{"adjacent duplicate", 3, [][]ellpack.Entry{{{1, 1}, {1, 2}}}},
		{"distant duplicate", 5, [][]ellpack.Entry{{{1, 1}, {3, 2}, {1, 3}}}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ellpack.FromColumns(tc.rows, tc.cols)
			require.ErrorIs(t, err, ellpack.ErrInvalidMatrix)
		})
	}
}

func TestValidate_Errors(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		m    *ellpack.Matrix
	}{
		{"nil", nil},
		{"length mismatch", &ellpack.Matrix{Rows: 2, Cols: 1, MaxPerCol: 1, Values: []float32{1}, NonZerosPerCol: []uint64{1}}},
		{"column over width", &ellpack.Matrix{Rows: 3, Cols: 1, MaxPerCol: 1, Values: []float32{1, 2}, Indices: []uint64{0, 1}, NonZerosPerCol: []uint64{2}}},
		{"row out of range", &ellpack.Matrix{Rows: 1, Cols: 1, MaxPerCol: 1, Values: []float32{1}, Indices: []uint64{1}, NonZerosPerCol: []uint64{1}}},
		{"false sorted flag", &ellpack.Matrix{Rows: 3, Cols: 1, MaxPerCol: 2, Values: []float32{1, 2}, Indices: []uint64{2, 0}, NonZerosPerCol: []uint64{2}, Sorted: true}},
		{"duplicate", &ellpack.Matrix{Rows: 3, Cols: 1, MaxPerCol: 2, Values: []float32{1, 2}, Indices: []uint64{1, 1}, NonZerosPerCol: []uint64{2}}},
		{"count sum", &ellpack.Matrix{Rows: 3, Cols: 1, MaxPerCol: 2, Values: []float32{1, 2}, Indices: []uint64{0, 1}, NonZerosPerCol: []uint64{1}}},
		{"missing counts", &ellpack.Matrix{Rows: 3, Cols: 2, MaxPerCol: 1, Values: []float32{1}, Indices: []uint64{0}, NonZerosPerCol: []uint64{1}}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.m.Validate()
			require.Error(t, err)
			require.True(t, errors.Is(err, ellpack.ErrInvalidMatrix) || errors.Is(err, ellpack.ErrNilMatrix))
		})
	}
}

func TestDump(t *testing.T) {
	t.Parallel()
	m := mustColumns(t, 4, [][]ellpack.Entry{{{0, 1}, {3, 5}}, {{1, 2.5}}})
	s := m.String()
	require.True(t, strings.HasPrefix(s, "ellpack.Matrix rows=4 cols=2 max_per_col=2 nnz=3 sorted=true\n"))
	require.Contains(t, s, "col 0 [2]: 0:1 3:5\n")
	require.Contains(t, s, "col 1 [1]: 1:2.5\n")

	var nilM *ellpack.Matrix
	require.Equal(t, "ellpack.Matrix(nil)\n", nilM.String())
}
