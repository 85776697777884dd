// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - In-place ("mutate") kernels on *Dense: AddMatrix, AddScalar, MulElem,
//     Scale and Randomize. Apply lives next to the storage in impl_dense.go.
//
// Design:
//   - Matrix operands and scalar operands are separate, explicitly named
//     methods; no runtime inspection of the operand kind.
//   - Validation happens before the first write, so a failed call leaves the
//     receiver untouched.
//
// Determinism & Performance:
//   - Fixed flat loop 0..n-1 on the receiver buffer; no allocations when the
//     operand is *Dense.

package matrix

import (
	"fmt"
	"math/rand"
)

// Method tags for in-place kernels.
const (
	opAddMatrix = "AddMatrix"
	opAddScalar = "AddScalar"
	opMulElem   = "MulElem"
	opScale     = "Scale"
	opRandomize = "Randomize"
)

// operandData returns a flat row-major view of a same-shaped operand.
// *Dense returns its own buffer (read only here); any other Matrix is copied
// through At first so that every read happens before the receiver is written.
func operandData(m *Dense, other Matrix, tag string) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf(tag, ErrNilMatrix)
	}
	if err := ValidateNotNil(other); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if err := ValidateSameShape(m, other); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	if d, ok := other.(*Dense); ok {
		return d.data, nil
	}
	d, err := toDense(other)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return d.data, nil
}

// AddMatrix adds other to the receiver element-wise, in place: m[i,j] += other[i,j].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (receiver untouched).
//
// Complexity:
//   - Time O(r*c), Space O(1) for *Dense operands.
func (m *Dense) AddMatrix(other Matrix) error {
	src, err := operandData(m, other, opAddMatrix)
	if err != nil {
		return err
	}
	for idx := range m.data {
		m.data[idx] += src[idx]
	}

	return nil
}

// AddScalar adds alpha to every element in place.
// Complexity: O(r*c).
func (m *Dense) AddScalar(alpha float64) {
	for idx := range m.data {
		m.data[idx] += alpha
	}
}

// MulElem multiplies the receiver by other element-wise (Hadamard), in place.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (receiver untouched).
//
// Complexity:
//   - Time O(r*c), Space O(1) for *Dense operands.
func (m *Dense) MulElem(other Matrix) error {
	src, err := operandData(m, other, opMulElem)
	if err != nil {
		return err
	}
	for idx := range m.data {
		m.data[idx] *= src[idx]
	}

	return nil
}

// Scale multiplies every element by alpha in place.
// Complexity: O(r*c).
func (m *Dense) Scale(alpha float64) {
	for idx := range m.data {
		m.data[idx] *= alpha
	}
}

// Randomize fills every cell independently from U[low, high) drawn from rng.
//
// Implementation:
//   - Stage 1: validate rng != nil, finite bounds and low < high.
//   - Stage 2: flat loop 0..n-1, v = low + (high-low)*rng.Float64().
//
// Behavior highlights:
//   - The caller owns the random source; no package-level RNG is touched,
//     so a seeded rng gives a reproducible fill.
//
// Errors:
//   - ErrNilRand, ErrBadRange (receiver untouched).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Randomize(rng *rand.Rand, low, high float64) error {
	if rng == nil {
		return matrixErrorf(opRandomize, ErrNilRand)
	}
	if !isFinite(low) || !isFinite(high) || low >= high {
		return matrixErrorf(opRandomize, fmt.Errorf("[%g, %g): %w", low, high, ErrBadRange))
	}
	width := high - low
	for idx := range m.data {
		m.data[idx] = low + width*rng.Float64()
	}

	return nil
}
