// SPDX-License-Identifier: MIT
// Package matrix: constructors and conversions between matrices and flat
// float64 sequences, plus thin facades over the private element-wise kernels.

package matrix

import "fmt"

// Constructor/conversion tags.
const (
	opFromSlice = "FromSlice"
	opToSlice   = "ToSlice"
	opIdentity  = "NewIdentity"
	opClip      = "Clip"
	opAllClose  = "AllClose"
	opEqual     = "Equal"
)

// NewIdentity returns an n×n identity matrix (diagonal = 1, else 0).
//
// Errors:
//   - ErrInvalidDimensions when n <= 0.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewIdentity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// FromSlice builds a len(seq)×1 column vector whose entries equal seq in order.
// seq is copied; later changes to seq do not affect the matrix.
//
// Errors:
//   - ErrInvalidDimensions for an empty seq.
//   - ErrNaNInf when an entry is NaN or ±Inf.
//
// Complexity:
//   - Time O(n), Space O(n).
func FromSlice(seq []float64) (*Dense, error) {
	m, err := NewDense(len(seq), 1)
	if err != nil {
		return nil, matrixErrorf(opFromSlice, err)
	}
	for i, v := range seq {
		if !isFinite(v) {
			return nil, matrixErrorf(opFromSlice, fmt.Errorf("index %d: %w", i, ErrNaNInf))
		}
	}
	copy(m.data, seq)

	return m, nil
}

// ToSlice returns the entries of a column vector as a fresh slice of length Rows().
//
// Errors:
//   - ErrInvalidShape when Cols() != 1.
//
// Complexity:
//   - Time O(n), Space O(n).
func (m *Dense) ToSlice() ([]float64, error) {
	if err := ValidateColumnVector(m); err != nil {
		return nil, matrixErrorf(opToSlice, err)
	}
	out := make([]float64, m.r)
	copy(out, m.data)

	return out, nil
}

// Clip returns a copy of m with every entry clamped into [lo, hi].
// Bounds must be finite; if lo > hi they are swapped.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf (non-finite bounds).
func Clip(m Matrix, lo, hi float64) (*Dense, error) {
	out, err := ewClipRange(m, lo, hi)
	if err != nil {
		return nil, matrixErrorf(opClip, err)
	}

	return out, nil
}

// AllClose reports whether |a-b| ≤ atol + rtol*|b| holds element-wise.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (non-finite tolerances).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	ok, err := ewAllClose(a, b, rtol, atol)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	return ok, nil
}

// Equal reports whether a and b have the same shape and bitwise-equal entries.
//
// Errors:
//   - ErrNilMatrix.
func Equal(a, b Matrix) (bool, error) {
	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opEqual, err)
	}
	if ValidateSameShape(a, b) != nil {
		return false, nil
	}

	return ewAllClose(a, b, 0, 0)
}
