// Package matrix provides the dense linear-algebra primitives used by the
// network package: a row-major float64 matrix (Dense), column-vector
// conversions, and the handful of kernels a one-hidden-layer network needs.
//
// Operations come in two explicitly named families:
//
//   - mutate: methods on *Dense that rewrite the receiver in place
//     (AddMatrix, AddScalar, MulElem, Scale, Apply, Randomize);
//   - derive: package functions that allocate a fresh *Dense and never touch
//     their operands (Mul, Sub, Add, Hadamard, Transpose, Map, Clip).
//
// Every operation validates shapes before writing anything, so a failed call
// leaves all operands exactly as they were. Failures are reported with the
// sentinels in errors.go and are matched with errors.Is:
//
//	_, err := matrix.Mul(a, b)
//	if errors.Is(err, matrix.ErrDimensionMismatch) { ... }
//
// A Dense is owned by one goroutine at a time; the package does no locking.
package matrix
