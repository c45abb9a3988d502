package pipeline_test

import (
	"testing"

	"github.com/katalvlaran/ellpack"
	"github.com/katalvlaran/ellpack/pipeline"
	"github.com/stretchr/testify/require"
)

func TestCompareMatrices(t *testing.T) {
	t.Parallel()
	col := func(rows uint64, cols ...[]ellpack.Entry) *ellpack.Matrix {
		m, err := ellpack.FromColumns(rows, cols)
		require.NoError(t, err)
		return m
	}
	want := col(3, []ellpack.Entry{{Row: 0, Value: 1}, {Row: 2, Value: 4}}, []ellpack.Entry{{Row: 1, Value: 2}})

	cases := []struct {
		name string
		got  *ellpack.Matrix
		tol  float64
		ok   bool
	}{
		{"identical", col(3, []ellpack.Entry{{Row: 0, Value: 1}, {Row: 2, Value: 4}}, []ellpack.Entry{{Row: 1, Value: 2}}), 0, true},
		{"rows", col(4, []ellpack.Entry{{Row: 0, Value: 1}, {Row: 2, Value: 4}}, []ellpack.Entry{{Row: 1, Value: 2}}), 0, false},
		{"column count", col(3, []ellpack.Entry{{Row: 0, Value: 1}, {Row: 2, Value: 4}}), 0, false},
		{"entries per column", col(3, []ellpack.Entry{{Row: 0, Value: 1}}, []ellpack.Entry{{Row: 1, Value: 2}, {Row: 2, Value: 4}}), 0, false},
		{"row index", col(3, []ellpack.Entry{{Row: 1, Value: 1}, {Row: 2, Value: 4}}, []ellpack.Entry{{Row: 1, Value: 2}}), 0, false},
		{"value exact", col(3, []ellpack.Entry{{Row: 0, Value: 1}, {Row: 2, Value: 4.001}}, []ellpack.Entry{{Row: 1, Value: 2}}), 0, false},
		{"value within tolerance", col(3, []ellpack.Entry{{Row: 0, Value: 1}, {Row: 2, Value: 4.001}}, []ellpack.Entry{{Row: 1, Value: 2}}), 1e-3, true},
		{"empty vs non-empty", col(3, nil, nil), 0, false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := pipeline.CompareMatrices(tc.got, want, tc.tol)
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, pipeline.ErrDifferent)
		})
	}

	require.ErrorIs(t, pipeline.CompareMatrices(nil, want, 0), ellpack.ErrNilMatrix)
}
