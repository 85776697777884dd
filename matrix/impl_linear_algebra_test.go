// Package matrix_test contains unit tests for the out-of-place linear algebra kernels.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/lvnet/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// ---------- Add / Sub / Hadamard ----------

func TestElementwise_FastAndFallback_Match(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := NewFilledDense(t, 2, 3, []float64{6, 5, 4, 3, 2, 1})

	tests := []struct {
		name string
		op   func(x, y matrix.Matrix) (*matrix.Dense, error)
		want [][]float64
	}{
		{"Add", matrix.Add, [][]float64{{7, 7, 7}, {7, 7, 7}}},
		{"Sub", matrix.Sub, [][]float64{{-5, -3, -1}, {1, 3, 5}}},
		{"Hadamard", matrix.Hadamard, [][]float64{{6, 10, 12}, {12, 10, 6}}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			fast, err := tc.op(a, b)
			require.NoError(t, err)
			slow, err := tc.op(hide{a}, hide{b})
			require.NoError(t, err)
			require.Equal(t, tc.want, Rows2D(t, fast))
			require.Equal(t, tc.want, Rows2D(t, slow))
		})
	}
	// Operands are never mutated.
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, Rows2D(t, a))
	require.Equal(t, [][]float64{{6, 5, 4}, {3, 2, 1}}, Rows2D(t, b))
}

func TestElementwise_DimensionMismatch(t *testing.T) {
	t.Parallel()

	a := MustDense(t, 2, 2)
	b := MustDense(t, 3, 2)
	for name, op := range map[string]func(x, y matrix.Matrix) (*matrix.Dense, error){
		"Add": matrix.Add, "Sub": matrix.Sub, "Hadamard": matrix.Hadamard,
	} {
		_, err := op(a, b)
		require.ErrorIs(t, err, matrix.ErrDimensionMismatch, name)
		_, err = op(nil, b)
		require.ErrorIs(t, err, matrix.ErrNilMatrix, name)
	}
}

// ---------- Mul ----------

func TestMul_Correctness(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	b := NewFilledDense(t, 2, 2, []float64{2, 0, 1, 2})
	want := [][]float64{{4, 4}, {10, 8}}

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, want, Rows2D(t, got))

	got, err = matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	require.Equal(t, want, Rows2D(t, got))
}

func TestMul_OuterProduct(t *testing.T) {
	t.Parallel()

	col, err := matrix.FromSlice([]float64{1, 2, 3})
	require.NoError(t, err)
	row := NewFilledDense(t, 1, 2, []float64{10, -1})

	got, err := matrix.Mul(col, row)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{10, -1}, {20, -2}, {30, -3}}, Rows2D(t, got))
}

func TestMul_RightIdentity(t *testing.T) {
	t.Parallel()

	for _, sh := range [][2]int{{1, 1}, {2, 3}, {4, 1}, {5, 5}} {
		sh := sh
		t.Run(fmt.Sprintf("%dx%d", sh[0], sh[1]), func(t *testing.T) {
			a := MustDense(t, sh[0], sh[1])
			RandomFill(t, a, int64(sh[0]*10+sh[1]))
			id, err := matrix.NewIdentity(sh[1])
			require.NoError(t, err)

			got, err := matrix.Mul(a, id)
			require.NoError(t, err)
			eq, err := matrix.Equal(got, a)
			require.NoError(t, err)
			require.True(t, eq)
		})
	}
}

func TestMul_DimensionMismatch_OperandsUnchanged(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := NewFilledDense(t, 2, 2, []float64{1, 1, 1, 1})

	_, err := matrix.Mul(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, Rows2D(t, a))
	require.Equal(t, [][]float64{{1, 1}, {1, 1}}, Rows2D(t, b))
}

// TestMul_AgainstGonum cross-checks Mul with gonum's reference implementation.
func TestMul_AgainstGonum(t *testing.T) {
	t.Parallel()

	const r, n, c = 7, 5, 4
	a := MustDense(t, r, n)
	b := MustDense(t, n, c)
	RandomFill(t, a, 1337)
	RandomFill(t, b, 4242)

	ga := mat.NewDense(r, n, flat(t, a))
	gb := mat.NewDense(n, c, flat(t, b))
	var want mat.Dense
	want.Mul(ga, gb)

	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.InDelta(t, want.At(i, j), MustAt(t, got, i, j), 1e-12)
		}
	}
}

// flat returns the row-major contents of m.
func flat(t testing.TB, m matrix.Matrix) []float64 {
	t.Helper()
	out := make([]float64, 0, m.Rows()*m.Cols())
	for _, row := range Rows2D(t, m) {
		out = append(out, row...)
	}

	return out
}

// ---------- Transpose ----------

func TestTranspose_Shape_And_Values(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, Rows2D(t, tr))

	slow, err := matrix.Transpose(hide{m})
	require.NoError(t, err)
	require.Equal(t, Rows2D(t, tr), Rows2D(t, slow))
}

func TestTranspose_Involution(t *testing.T) {
	t.Parallel()

	for r := 1; r <= 4; r++ {
		for c := 1; c <= 4; c++ {
			m := MustDense(t, r, c)
			RandomFill(t, m, int64(r*7+c))
			once, err := matrix.Transpose(m)
			require.NoError(t, err)
			twice, err := matrix.Transpose(once)
			require.NoError(t, err)
			eq, err := matrix.Equal(twice, m)
			require.NoError(t, err)
			require.True(t, eq, "%dx%d", r, c)
		}
	}

	_, err := matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// ---------- Map ----------

func TestMap_SourceUnmodified(t *testing.T) {
	t.Parallel()

	src := NewFilledDense(t, 2, 2, []float64{0, 1, 2, 3})
	out, err := matrix.Map(src, func(i, j int, v float64) float64 { return v * v })
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 1}, {4, 9}}, Rows2D(t, out))
	require.Equal(t, [][]float64{{0, 1}, {2, 3}}, Rows2D(t, src))

	slow, err := matrix.Map(hide{src}, func(i, j int, v float64) float64 { return v * v })
	require.NoError(t, err)
	require.Equal(t, Rows2D(t, out), Rows2D(t, slow))
}

func TestMap_NonFinite(t *testing.T) {
	t.Parallel()

	src := NewFilledDense(t, 1, 2, []float64{1, 0})
	_, err := matrix.Map(src, func(_, _ int, v float64) float64 { return 1 / v })
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.Map(src, func(_, _ int, _ float64) float64 { return math.NaN() })
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
