// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/matverify/matrix"
	"github.com/stretchr/testify/require"
)

// TestMul_Table checks the reference product on hand-computed cases,
// through both the *Dense fast path and the generic fallback.
func TestMul_Table(t *testing.T) {
	tests := []struct {
		name string
		a, b [][]int64
		want [][]int64
	}{
		{
			name: "2x2",
			a:    [][]int64{{1, 2}, {3, 4}},
			b:    [][]int64{{5, 6}, {7, 8}},
			want: [][]int64{{19, 22}, {43, 50}},
		},
		{
			name: "2x3 by 3x1",
			a:    [][]int64{{1, 0, -2}, {0, 3, 1}},
			b:    [][]int64{{4}, {5}, {6}},
			want: [][]int64{{-8}, {21}},
		},
		{
			name: "1x1",
			a:    [][]int64{{7}},
			b:    [][]int64{{-3}},
			want: [][]int64{{-21}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, b := mustFromRows(t, tc.a), mustFromRows(t, tc.b)
			want := mustFromRows(t, tc.want)

			fast, err := matrix.Mul(a, b)
			require.NoError(t, err)
			require.Equal(t, want.String(), fast.String())

			slow, err := matrix.Mul(hide{a}, hide{b}) // force the At/Set path
			require.NoError(t, err)
			require.Equal(t, fast.String(), slow.String())
		})
	}
}

// TestMul_FastPathMatchesFallback compares both paths on random operands.
func TestMul_FastPathMatchesFallback(t *testing.T) {
	a := randDense(t, 17, 9, 1337)
	b := randDense(t, 9, 13, 4242)

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{a}, b)
	require.NoError(t, err)

	d, err := matrix.Compare(fast, slow)
	require.NoError(t, err)
	require.True(t, d.Equal())
}

// TestMul_DimensionMismatch ensures a.Cols != b.Rows is rejected before allocation.
func TestMul_DimensionMismatch(t *testing.T) {
	a := mustFromRows(t, [][]int64{{1, 2, 3}})
	b := mustFromRows(t, [][]int64{{1, 2}, {3, 4}})

	_, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Contains(t, err.Error(), "1x3 × 2x2")
}

// TestMul_Nil ensures nil operands (including a typed nil) surface ErrNilMatrix.
func TestMul_Nil(t *testing.T) {
	a := mustFromRows(t, [][]int64{{1}})

	_, err := matrix.Mul(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typed *matrix.Dense
	_, err = matrix.Mul(a, typed)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestCompare_Equal returns a zero Diff when every cell matches.
func TestCompare_Equal(t *testing.T) {
	a := randDense(t, 4, 4, 7)

	d, err := matrix.Compare(a, a.Clone())
	require.NoError(t, err)
	require.True(t, d.Equal())
	require.Zero(t, d.MaxAbs)
}

// TestCompare_MaxAbsDiff checks the exact maximum, the count and the first cell.
func TestCompare_MaxAbsDiff(t *testing.T) {
	ref := mustFromRows(t, [][]int64{{10, 20, 30}, {40, 50, 60}})
	claimed := mustFromRows(t, [][]int64{{10, 23, 30}, {33, 50, 60}})

	d, err := matrix.Compare(claimed, ref)
	require.NoError(t, err)
	require.False(t, d.Equal())
	require.Equal(t, uint64(7), d.MaxAbs)                  // |33-40| beats |23-20|
	require.Equal(t, 2, d.Count)                           // two cells differ
	require.Equal(t, matrix.Cell{Row: 0, Col: 1}, d.First) // row-major first
}

// TestCompare_ShapeMismatch rejects different shapes with ErrDimensionMismatch.
func TestCompare_ShapeMismatch(t *testing.T) {
	ref := mustFromRows(t, [][]int64{{1, 2}, {3, 4}})
	claimed := mustFromRows(t, [][]int64{{1, 2}})

	_, err := matrix.Compare(claimed, ref)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestCompare_ExtremeValues keeps the deviation exact across the whole int64 range.
func TestCompare_ExtremeValues(t *testing.T) {
	tests := []struct {
		name       string
		claimed    int64
		reference  int64
		wantMaxAbs uint64
	}{
		{"min vs zero", math.MinInt64, 0, 1 << 63},
		{"max vs zero", math.MaxInt64, 0, math.MaxInt64},
		{"min vs max", math.MinInt64, math.MaxInt64, math.MaxUint64},
		{"max vs min", math.MaxInt64, math.MinInt64, math.MaxUint64},
		{"neighbours", -1, 1, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			claimed := mustFromRows(t, [][]int64{{tc.claimed}})
			ref := mustFromRows(t, [][]int64{{tc.reference}})

			d, err := matrix.Compare(claimed, ref)
			require.NoError(t, err)
			require.Equal(t, 1, d.Count)
			require.Equal(t, tc.wantMaxAbs, d.MaxAbs)
		})
	}
}

// TestMul_Overflow fails a cell whose final value leaves the int64 range,
// on both paths.
func TestMul_Overflow(t *testing.T) {
	tests := []struct {
		name string
		a, b [][]int64
	}{
		{"product", [][]int64{{math.MaxInt64}}, [][]int64{{2}}},
		{"sum", [][]int64{{math.MaxInt64, 1}}, [][]int64{{1}, {1}}},
		{"negative", [][]int64{{math.MinInt64}}, [][]int64{{-1}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, b := mustFromRows(t, tc.a), mustFromRows(t, tc.b)

			_, err := matrix.Mul(a, b)
			require.ErrorIs(t, err, matrix.ErrOverflow)
			require.Contains(t, err.Error(), "cell (0,0)")

			_, err = matrix.Mul(hide{a}, hide{b})
			require.ErrorIs(t, err, matrix.ErrOverflow)
		})
	}
}

// TestMul_ExactNearLimits: intermediate sums may leave the int64 range as long
// as the final cell value is representable.
func TestMul_ExactNearLimits(t *testing.T) {
	tests := []struct {
		name string
		a, b [][]int64
		want int64
	}{
		{"back into range", [][]int64{{math.MaxInt64, 1, -1}}, [][]int64{{1}, {1}, {1}}, math.MaxInt64},
		{"min times one", [][]int64{{math.MinInt64}}, [][]int64{{1}}, math.MinInt64},
		{"large cancel", [][]int64{{math.MaxInt64, math.MaxInt64}}, [][]int64{{3}, {-3}}, 0},
		{"min from negatives", [][]int64{{math.MinInt64 / 2, math.MinInt64 / 2}}, [][]int64{{1}, {1}}, math.MinInt64},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, b := mustFromRows(t, tc.a), mustFromRows(t, tc.b)

			for _, pair := range [][2]matrix.Matrix{{a, b}, {hide{a}, hide{b}}} {
				got, err := matrix.Mul(pair[0], pair[1])
				require.NoError(t, err)
				v, err := got.At(0, 0)
				require.NoError(t, err)
				require.Equal(t, tc.want, v)
			}
		})
	}
}
