// Package lvnet is a small, dependency-light neural network toolkit: a dense
// matrix library and a one-hidden-layer sigmoid network trained by online
// backpropagation, plus the glue to feed it images and draw it.
//
// What is inside
//
//	matrix/   row-major Dense matrix; derive ops (Mul, Add, Sub, Hadamard,
//	          Transpose, Map, Clip) return new matrices, mutate ops
//	          (AddMatrix, AddScalar, MulElem, Scale, Apply, Randomize)
//	          work in place; every op validates shapes before writing
//	network/  FeedForward: Predict and Train on a fixed input→hidden→output
//	          topology; Guarded adds RWMutex serialization
//	label/    one-hot targets, arg-max decoding, Classify
//	features/ image → 28×28 inverted grayscale feature vector
//	visual/   neuron layout and weight-styled connections for renderers
//
// Errors are sentinel values wrapped with an operation tag, so callers match
// them with errors.Is:
//
//	_, err := net.Predict(x)
//	if errors.Is(err, network.ErrShapeMismatch) { ... }
//
// Quick start
//
//	net, _ := network.New(784, 16, 10, network.WithSeed(1))
//	x, _ := features.FromImage(img)
//	t, _ := label.OneHot(7, 10)
//	_ = net.Train(x, t)
//	class, _, _ := label.Classify(net, x)
//
// See examples/digits for a complete training run.
package lvnet
