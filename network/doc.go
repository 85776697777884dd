// Package network implements a fully connected feedforward network with
// exactly one hidden layer, logistic sigmoid activations on both layers, and
// online (single-example) backpropagation.
//
// Topology is fixed at construction:
//
//	input (n) ──W_ih (h×n), b_h──▶ hidden (h) ──W_ho (o×h), b_o──▶ output (o)
//
// A FeedForward owns its four parameter matrices. Predict only reads them;
// Train computes every delta from the current parameters first and then
// applies all four updates, so the hidden-layer error is always propagated
// through the output weights as they were before the step.
//
// A FeedForward is not safe for concurrent use. Wrap it in a Guarded when
// several goroutines predict and train on the same instance.
//
// Typical use:
//
//	net, err := network.New(784, 16, 10, network.WithSeed(1))
//	...
//	target, _ := label.OneHot(digit, 10)
//	err = net.Train(features, target)
//	out, err := net.Predict(features)
package network
