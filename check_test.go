package ellpack_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ellpack"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	t.Parallel()
	a := &ellpack.Matrix{Rows: 2, Cols: 3, Sorted: true}
	b := &ellpack.Matrix{Rows: 3, Cols: 4, Sorted: true}
	unsorted := &ellpack.Matrix{Rows: 3, Cols: 4}
	wide := &ellpack.Matrix{Rows: 3, Cols: math.MaxUint32 + 1, Sorted: true}

	cases := []struct {
		name          string
		a, b          *ellpack.Matrix
		requireSorted bool
		want          ellpack.Verdict
		wantErr       error
	}{
		{"compatible", a, b, true, ellpack.Compatible, nil},
		{"shape mismatch", b, a, false, ellpack.Incompatible, ellpack.ErrIncompatibleShapes},
		{"nil operand", nil, b, false, ellpack.Incompatible, ellpack.ErrNilMatrix},
		{"unsorted required", a, unsorted, true, ellpack.Incompatible, ellpack.ErrNotSorted},
		{"unsorted tolerated", a, unsorted, false, ellpack.Compatible, nil},
		{"too wide", a, wide, false, ellpack.TooWide, ellpack.ErrTooWide},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, ellpack.Check(tc.a, tc.b, tc.requireSorted))
			err := ellpack.CheckErr(tc.a, tc.b, tc.requireSorted)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
			if tc.want == ellpack.Incompatible {
				require.ErrorIs(t, err, ellpack.ErrIncompatibleShapes)
			}
		})
	}
}

func TestVerdictString(t *testing.T) {
	t.Parallel()
	require.Equal(t, "compatible", ellpack.Compatible.String())
	require.Equal(t, "incompatible", ellpack.Incompatible.String())
	require.Equal(t, "too-wide", ellpack.TooWide.String())
	require.Equal(t, "verdict(9)", ellpack.Verdict(9).String())
}

func TestIsEmptyProduct(t *testing.T) {
	t.Parallel()
	full := &ellpack.Matrix{Rows: 1, Cols: 1, MaxPerCol: 1}
	require.True(t, ellpack.IsEmptyProduct(ellpack.Empty(), full))
	require.True(t, ellpack.IsEmptyProduct(full, ellpack.Empty()))
	require.False(t, ellpack.IsEmptyProduct(full, full))
}
