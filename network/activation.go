// SPDX-License-Identifier: MIT

package network

import "math"

// Sigmoid is the logistic function 1 / (1 + e^-x). Its range is (0, 1) for
// every finite x; it saturates to exactly 0 or 1 only in float64 rounding.
func Sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// SigmoidDerivative returns y·(1−y), the slope of the sigmoid expressed in
// terms of its OUTPUT y = Sigmoid(x). Pass activations, not pre-activations.
func SigmoidDerivative(y float64) float64 {
	return y * (1 - y)
}

// Adapters with the matrix Apply/Map callback signature.
func activate(_, _ int, v float64) float64   { return Sigmoid(v) }
func derivative(_, _ int, v float64) float64 { return SigmoidDerivative(v) }
