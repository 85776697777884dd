// SPDX-License-Identifier: MIT

package network

import (
	"fmt"

	"github.com/katalvlaran/lvnet/matrix"
)

// ErrShapeMismatch reports an input, target or parameter whose length/shape
// does not match the network topology. It is the matrix package's
// ErrDimensionMismatch, so errors.Is matches either name.
var ErrShapeMismatch = matrix.ErrDimensionMismatch

// Operation tags used in error wrapping.
const (
	opNew            = "network.New"
	opNewWithParams  = "network.NewWithParameters"
	opPredict        = "network.Predict"
	opTrain          = "network.Train"
	ctxInputVector   = "input"
	ctxTargetVector  = "target"
	ctxForwardHidden = "hidden layer"
	ctxForwardOutput = "output layer"
)

// netErrorf wraps err with an operation tag, preserving the sentinel via %w.
func netErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// lengthErrorf reports a vector of the wrong length for the given role.
func lengthErrorf(op, role string, got, want int) error {
	return fmt.Errorf("%s: %s length %d, want %d: %w", op, role, got, want, ErrShapeMismatch)
}
