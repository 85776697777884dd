// SPDX-License-Identifier: MIT

// Package network - FeedForward: one hidden layer, sigmoid activations,
// online backpropagation.
//
// Purpose:
//   - Hold the four parameter matrices of a fixed input→hidden→output topology.
//   - Predict: pure forward pass.
//   - Train: one stochastic gradient step on a single (input, target) pair.
//
// Determinism:
//   - Predict and Train contain no randomness; only New draws from the RNG.
//   - Train derives every delta from the current parameters before the first
//     write, so a failed step leaves the network untouched.

package network

import (
	"fmt"

	"github.com/katalvlaran/lvnet/matrix"
)

// FeedForward is a fully connected network with exactly one hidden layer.
// The zero value is not usable; construct with New or NewWithParameters.
type FeedForward struct {
	inputSize  int
	hiddenSize int
	outputSize int

	wIH *matrix.Dense // hidden×input
	wHO *matrix.Dense // output×hidden
	bH  *matrix.Dense // hidden×1
	bO  *matrix.Dense // output×1

	learningRate float64
}

// New builds a network with the given layer sizes and randomly initialized
// parameters. Every weight and bias is drawn independently from
// U[DefaultInitLow, DefaultInitHigh) unless WithInitRange overrides it.
//
// Implementation:
//   - Stage 1: validate all three sizes > 0.
//   - Stage 2: allocate the four matrices and randomize them in the fixed
//     order wIH, wHO, bH, bO, so a seeded RNG reproduces the same network.
//
// Errors:
//   - matrix.ErrInvalidDimensions when any size is <= 0.
//
// Complexity:
//   - Time O(h·(n+o)), Space O(h·(n+o)).
func New(inputSize, hiddenSize, outputSize int, opts ...Option) (*FeedForward, error) {
	if inputSize <= 0 || hiddenSize <= 0 || outputSize <= 0 {
		return nil, netErrorf(opNew, fmt.Errorf("sizes %d/%d/%d: %w",
			inputSize, hiddenSize, outputSize, matrix.ErrInvalidDimensions))
	}
	o := gatherOptions(opts...)

	shapes := [4][2]int{
		{hiddenSize, inputSize},
		{outputSize, hiddenSize},
		{hiddenSize, 1},
		{outputSize, 1},
	}
	var params [4]*matrix.Dense
	var err error
	for k, s := range shapes {
		if params[k], err = matrix.NewDense(s[0], s[1]); err != nil {
			return nil, netErrorf(opNew, err)
		}
		if err = params[k].Randomize(o.rng, o.initLow, o.initHigh); err != nil {
			return nil, netErrorf(opNew, err)
		}
	}

	return &FeedForward{
		inputSize:    inputSize,
		hiddenSize:   hiddenSize,
		outputSize:   outputSize,
		wIH:          params[0],
		wHO:          params[1],
		bH:           params[2],
		bO:           params[3],
		learningRate: o.learningRate,
	}, nil
}

// NewWithParameters builds a network from explicit parameters. The matrices
// are deep-copied; later changes to p do not reach the network.
// Initialization options (WithSeed, WithRand, WithInitRange) have no effect.
//
// Errors:
//   - matrix.ErrNilMatrix when a field is nil.
//   - ErrShapeMismatch when the shapes do not form a valid topology.
func NewWithParameters(p Parameters, opts ...Option) (*FeedForward, error) {
	in, hid, out, err := p.Sizes()
	if err != nil {
		return nil, netErrorf(opNewWithParams, err)
	}
	o := gatherOptions(opts...)
	cp := p.Clone()

	return &FeedForward{
		inputSize:    in,
		hiddenSize:   hid,
		outputSize:   out,
		wIH:          cp.WeightsInputHidden,
		wHO:          cp.WeightsHiddenOutput,
		bH:           cp.BiasHidden,
		bO:           cp.BiasOutput,
		learningRate: o.learningRate,
	}, nil
}

// InputSize returns the expected input vector length.
func (n *FeedForward) InputSize() int { return n.inputSize }

// HiddenSize returns the number of hidden neurons.
func (n *FeedForward) HiddenSize() int { return n.hiddenSize }

// OutputSize returns the length of Predict's result.
func (n *FeedForward) OutputSize() int { return n.outputSize }

// LearningRate returns the step size used by Train.
func (n *FeedForward) LearningRate() float64 { return n.learningRate }

// WeightsInputHidden returns a copy of the hidden×input weights.
func (n *FeedForward) WeightsInputHidden() *matrix.Dense { return n.wIH.Copy() }

// WeightsHiddenOutput returns a copy of the output×hidden weights.
func (n *FeedForward) WeightsHiddenOutput() *matrix.Dense { return n.wHO.Copy() }

// BiasHidden returns a copy of the hidden×1 bias.
func (n *FeedForward) BiasHidden() *matrix.Dense { return n.bH.Copy() }

// BiasOutput returns a copy of the output×1 bias.
func (n *FeedForward) BiasOutput() *matrix.Dense { return n.bO.Copy() }

// Parameters returns a deep copy of all four parameter matrices.
func (n *FeedForward) Parameters() Parameters {
	return Parameters{
		WeightsInputHidden:  n.wIH.Copy(),
		WeightsHiddenOutput: n.wHO.Copy(),
		BiasHidden:          n.bH.Copy(),
		BiasOutput:          n.bO.Copy(),
	}
}

// Predict runs the forward pass and returns the output activations.
//
//	hidden = σ(wIH·x + bH)
//	output = σ(wHO·hidden + bO)
//
// Errors:
//   - ErrShapeMismatch when len(input) != InputSize().
//   - matrix.ErrNaNInf when input holds NaN or ±Inf.
//
// Complexity:
//   - Time O(h·(n+o)), Space O(h+o).
func (n *FeedForward) Predict(input []float64) ([]float64, error) {
	if err := matrix.ValidateVecLen(input, n.inputSize); err != nil {
		return nil, lengthErrorf(opPredict, ctxInputVector, len(input), n.inputSize)
	}
	x, err := matrix.FromSlice(input)
	if err != nil {
		return nil, netErrorf(opPredict, err)
	}
	_, out, err := n.forward(x)
	if err != nil {
		return nil, netErrorf(opPredict, err)
	}

	res, err := out.ToSlice()
	if err != nil {
		return nil, netErrorf(opPredict, err)
	}

	return res, nil
}

// Train performs one online gradient step towards target for input.
//
// Implementation:
//   - Stage 1: validate both lengths and build column vectors.
//   - Stage 2: backprop computes every delta from the current parameters,
//     including hiddenErrors = wHOᵗ·outputErrors on the unmodified wHO.
//   - Stage 3: commit adds the four deltas.
//
// Errors:
//   - ErrShapeMismatch when len(input) != InputSize() or
//     len(target) != OutputSize(); the network is untouched.
//   - matrix.ErrNaNInf when input or target holds NaN or ±Inf.
//
// Complexity:
//   - Time O(h·(n+o)), Space O(h·(n+o)) for the deltas.
func (n *FeedForward) Train(input, target []float64) error {
	s, err := n.backprop(input, target)
	if err != nil {
		return err
	}

	return n.commit(s)
}

// forward computes the hidden and output activations for column vector x.
func (n *FeedForward) forward(x *matrix.Dense) (hidden, output *matrix.Dense, err error) {
	if hidden, err = layer(n.wIH, x, n.bH); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ctxForwardHidden, err)
	}
	if output, err = layer(n.wHO, hidden, n.bO); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ctxForwardOutput, err)
	}

	return hidden, output, nil
}

// layer returns σ(w·x + b) as a fresh column vector.
func layer(w, x, b *matrix.Dense) (*matrix.Dense, error) {
	z, err := matrix.Mul(w, x)
	if err != nil {
		return nil, err
	}
	if err = z.AddMatrix(b); err != nil {
		return nil, err
	}
	if err = z.Apply(activate); err != nil {
		return nil, err
	}

	return z, nil
}

// step holds every intermediate of one training step. Nothing in it aliases
// the network's parameters.
type step struct {
	inputs  *matrix.Dense // n×1
	targets *matrix.Dense // o×1
	hidden  *matrix.Dense // h×1
	outputs *matrix.Dense // o×1

	outputErrors   *matrix.Dense // o×1, targets − outputs
	outputGradient *matrix.Dense // o×1, σ'(outputs) ⊙ outputErrors · lr
	deltaHO        *matrix.Dense // o×h, outputGradient · hiddenᵗ

	hiddenErrors   *matrix.Dense // h×1, wHOᵗ · outputErrors
	hiddenGradient *matrix.Dense // h×1, σ'(hidden) ⊙ hiddenErrors · lr
	deltaIH        *matrix.Dense // h×n, hiddenGradient · inputsᵗ
}

// backprop computes a full training step without writing to the network.
func (n *FeedForward) backprop(input, target []float64) (*step, error) {
	if err := matrix.ValidateVecLen(input, n.inputSize); err != nil {
		return nil, lengthErrorf(opTrain, ctxInputVector, len(input), n.inputSize)
	}
	if err := matrix.ValidateVecLen(target, n.outputSize); err != nil {
		return nil, lengthErrorf(opTrain, ctxTargetVector, len(target), n.outputSize)
	}

	var s step
	var err error
	if s.inputs, err = matrix.FromSlice(input); err != nil {
		return nil, netErrorf(opTrain, fmt.Errorf("%s: %w", ctxInputVector, err))
	}
	if s.targets, err = matrix.FromSlice(target); err != nil {
		return nil, netErrorf(opTrain, fmt.Errorf("%s: %w", ctxTargetVector, err))
	}
	if s.hidden, s.outputs, err = n.forward(s.inputs); err != nil {
		return nil, netErrorf(opTrain, err)
	}

	// Output layer.
	if s.outputErrors, err = matrix.Sub(s.targets, s.outputs); err != nil {
		return nil, netErrorf(opTrain, err)
	}
	if s.outputGradient, err = n.gradient(s.outputs, s.outputErrors); err != nil {
		return nil, netErrorf(opTrain, err)
	}
	if s.deltaHO, err = outer(s.outputGradient, s.hidden); err != nil {
		return nil, netErrorf(opTrain, err)
	}

	// Hidden layer, propagated through wHO as it is now.
	wHOt, err := matrix.Transpose(n.wHO)
	if err != nil {
		return nil, netErrorf(opTrain, err)
	}
	if s.hiddenErrors, err = matrix.Mul(wHOt, s.outputErrors); err != nil {
		return nil, netErrorf(opTrain, err)
	}
	if s.hiddenGradient, err = n.gradient(s.hidden, s.hiddenErrors); err != nil {
		return nil, netErrorf(opTrain, err)
	}
	if s.deltaIH, err = outer(s.hiddenGradient, s.inputs); err != nil {
		return nil, netErrorf(opTrain, err)
	}

	return &s, nil
}

// gradient returns σ'(activations) ⊙ errs · learningRate.
func (n *FeedForward) gradient(activations, errs *matrix.Dense) (*matrix.Dense, error) {
	g, err := matrix.Map(activations, derivative)
	if err != nil {
		return nil, err
	}
	if err = g.MulElem(errs); err != nil {
		return nil, err
	}
	g.Scale(n.learningRate)

	return g, nil
}

// outer returns col · rowᵗ for two column vectors.
func outer(col, row *matrix.Dense) (*matrix.Dense, error) {
	rt, err := matrix.Transpose(row)
	if err != nil {
		return nil, err
	}

	return matrix.Mul(col, rt)
}

// commit applies the deltas of s. Shapes were fixed by backprop, so the
// additions cannot fail part way through.
func (n *FeedForward) commit(s *step) error {
	updates := [4]struct {
		dst, delta *matrix.Dense
	}{
		{n.wHO, s.deltaHO},
		{n.bO, s.outputGradient},
		{n.wIH, s.deltaIH},
		{n.bH, s.hiddenGradient},
	}
	for _, u := range updates {
		if err := u.dst.AddMatrix(u.delta); err != nil {
			return netErrorf(opTrain, err)
		}
	}

	return nil
}
