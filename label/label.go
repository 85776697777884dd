// SPDX-License-Identifier: MIT

// Package label converts between class indices and network output vectors.
//
//   - OneHot encodes a class as a training target.
//   - ArgMax decodes an output vector into the winning class.
//   - Classify runs a Predictor and decodes its output in one call.
package label

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Sentinel errors.
var (
	// ErrEmptyVector is returned for a zero-length vector or class count.
	ErrEmptyVector = errors.New("label: empty vector")

	// ErrClassOutOfRange is returned when a class index is outside [0, n).
	ErrClassOutOfRange = errors.New("label: class out of range")
)

// Predictor is the inference half of a network.
// *network.FeedForward and *network.Guarded satisfy it.
type Predictor interface {
	Predict(input []float64) ([]float64, error)
}

// OneHot returns a length-n vector with 1 at class and 0 elsewhere.
//
// Errors:
//   - ErrEmptyVector when n <= 0.
//   - ErrClassOutOfRange when class is not in [0, n).
func OneHot(class, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("label.OneHot: n=%d: %w", n, ErrEmptyVector)
	}
	if class < 0 || class >= n {
		return nil, fmt.Errorf("label.OneHot: class %d of %d: %w", class, n, ErrClassOutOfRange)
	}
	v := make([]float64, n)
	v[class] = 1

	return v, nil
}

// ArgMax returns the index of the largest entry of v. Ties resolve to the
// lowest index.
//
// Errors:
//   - ErrEmptyVector when len(v) == 0.
func ArgMax(v []float64) (int, error) {
	if len(v) == 0 {
		return 0, fmt.Errorf("label.ArgMax: %w", ErrEmptyVector)
	}

	return floats.MaxIdx(v), nil
}

// Classify predicts input with p and returns the winning class together with
// the raw outputs.
func Classify(p Predictor, input []float64) (int, []float64, error) {
	out, err := p.Predict(input)
	if err != nil {
		return 0, nil, fmt.Errorf("label.Classify: %w", err)
	}
	class, err := ArgMax(out)
	if err != nil {
		return 0, nil, fmt.Errorf("label.Classify: %w", err)
	}

	return class, out, nil
}
