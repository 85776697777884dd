// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvnet/matrix"
	"github.com/stretchr/testify/require"
)

func TestFromSlice_ToSlice_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, seq := range [][]float64{
		{0},
		{1, 2, 3},
		{-0.5, 0.25, 1e-9, 42},
	} {
		m, err := matrix.FromSlice(seq)
		require.NoError(t, err)
		require.Equal(t, len(seq), m.Rows())
		require.Equal(t, 1, m.Cols())

		got, err := m.ToSlice()
		require.NoError(t, err)
		require.Equal(t, seq, got)
	}
}

func TestFromSlice_Copies(t *testing.T) {
	t.Parallel()

	seq := []float64{1, 2}
	m, err := matrix.FromSlice(seq)
	require.NoError(t, err)
	seq[0] = 99
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

func TestFromSlice_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.FromSlice(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.FromSlice([]float64{1, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestToSlice_NotColumn(t *testing.T) {
	t.Parallel()

	_, err := MustDense(t, 2, 2).ToSlice()
	require.ErrorIs(t, err, matrix.ErrInvalidShape)

	_, err = MustDense(t, 1, 3).ToSlice()
	require.ErrorIs(t, err, matrix.ErrInvalidShape)
}

func TestNewIdentity(t *testing.T) {
	t.Parallel()

	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, Rows2D(t, id))

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestClip(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 1, 4, []float64{-3, -0.5, 0.5, 3})
	want := [][]float64{{-1, -0.5, 0.5, 1}}

	got, err := matrix.Clip(m, -1, 1)
	require.NoError(t, err)
	require.Equal(t, want, Rows2D(t, got))

	got, err = matrix.Clip(hide{m}, 1, -1) // swapped bounds are normalized
	require.NoError(t, err)
	require.Equal(t, want, Rows2D(t, got))

	_, err = matrix.Clip(m, math.NaN(), 1)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestAllClose_And_Equal(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 1, 2, []float64{1, 2})
	b := NewFilledDense(t, 1, 2, []float64{1 + 1e-12, 2})

	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(hide{a}, hide{b}, 0, 0)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = matrix.Equal(a, MustDense(t, 2, 1))
	require.NoError(t, err)
	require.False(t, ok, "different shapes are not equal")

	_, err = matrix.AllClose(a, MustDense(t, 2, 1), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Equal(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
