package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvnet/matrix"
)

// ExampleMul builds a weight matrix, multiplies it by a column vector and
// converts the result back into a plain slice.
func ExampleMul() {
	w, _ := matrix.NewDense(2, 3)
	for j := 0; j < 3; j++ {
		_ = w.Set(0, j, 1)
		_ = w.Set(1, j, float64(j))
	}
	x, _ := matrix.FromSlice([]float64{1, 2, 3})

	y, err := matrix.Mul(w, x)
	if err != nil {
		fmt.Println(err)
		return
	}
	out, _ := y.ToSlice()
	fmt.Println(out)

	// Output:
	// [6 8]
}

// ExampleDense_AddMatrix shows the mutate family and its shape guard.
func ExampleDense_AddMatrix() {
	a, _ := matrix.FromSlice([]float64{1, 2})
	b, _ := matrix.FromSlice([]float64{10, 20})
	_ = a.AddMatrix(b)
	a.Scale(0.5)
	fmt.Print(a)

	c, _ := matrix.NewDense(3, 1)
	err := a.AddMatrix(c)
	fmt.Println(errors.Is(err, matrix.ErrDimensionMismatch))

	// Output:
	// [5.5]
	// [11]
	// true
}
