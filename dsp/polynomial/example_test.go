package polynomial_test

import (
	"fmt"

	"github.com/cwbudde/algo-filter/dsp/polynomial"
)

func ExamplePoly() {
	c := polynomial.PolyReal([]complex128{1, 2})
	fmt.Printf("%.0f\n", c)
	// Output:
	// [1 -3 2]
}

func ExampleRoots() {
	roots, _ := polynomial.Roots([]float64{1, -3, 2})

	sum := roots[0] + roots[1]
	fmt.Printf("%.0f\n", real(sum))
	// Output:
	// 3
}
