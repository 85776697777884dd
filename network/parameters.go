// SPDX-License-Identifier: MIT

package network

import (
	"fmt"

	"github.com/katalvlaran/lvnet/matrix"
)

// Parameters bundles the four trainable matrices of a FeedForward.
//
//	WeightsInputHidden  hidden×input
//	WeightsHiddenOutput output×hidden
//	BiasHidden          hidden×1
//	BiasOutput          output×1
//
// Values returned by FeedForward.Parameters are deep copies and may be
// modified freely.
type Parameters struct {
	WeightsInputHidden  *matrix.Dense
	WeightsHiddenOutput *matrix.Dense
	BiasHidden          *matrix.Dense
	BiasOutput          *matrix.Dense
}

// Clone returns a deep copy of all four matrices. Nil fields stay nil.
func (p Parameters) Clone() Parameters {
	return Parameters{
		WeightsInputHidden:  copyOrNil(p.WeightsInputHidden),
		WeightsHiddenOutput: copyOrNil(p.WeightsHiddenOutput),
		BiasHidden:          copyOrNil(p.BiasHidden),
		BiasOutput:          copyOrNil(p.BiasOutput),
	}
}

// Sizes derives the topology (input, hidden, output) from the weight shapes
// after checking that all four matrices agree with each other.
//
// Errors:
//   - matrix.ErrNilMatrix when any field is nil.
//   - ErrShapeMismatch when the shapes do not chain.
func (p Parameters) Sizes() (input, hidden, output int, err error) {
	for _, m := range []*matrix.Dense{p.WeightsInputHidden, p.WeightsHiddenOutput, p.BiasHidden, p.BiasOutput} {
		if err = matrix.ValidateNotNil(m); err != nil {
			return 0, 0, 0, err
		}
	}
	hidden, input = p.WeightsInputHidden.Shape()
	output = p.WeightsHiddenOutput.Rows()

	switch {
	case p.WeightsHiddenOutput.Cols() != hidden:
		err = fmt.Errorf("hidden→output weights are %d×%d, want %d columns: %w",
			output, p.WeightsHiddenOutput.Cols(), hidden, ErrShapeMismatch)
	case p.BiasHidden.Rows() != hidden || p.BiasHidden.Cols() != 1:
		err = fmt.Errorf("hidden bias is %d×%d, want %d×1: %w",
			p.BiasHidden.Rows(), p.BiasHidden.Cols(), hidden, ErrShapeMismatch)
	case p.BiasOutput.Rows() != output || p.BiasOutput.Cols() != 1:
		err = fmt.Errorf("output bias is %d×%d, want %d×1: %w",
			p.BiasOutput.Rows(), p.BiasOutput.Cols(), output, ErrShapeMismatch)
	}
	if err != nil {
		return 0, 0, 0, err
	}

	return input, hidden, output, nil
}

func copyOrNil(m *matrix.Dense) *matrix.Dense {
	if m == nil {
		return nil
	}

	return m.Copy()
}
