package window

import "fmt"

func ExampleGenerate() {
	w := Generate(TypeHann, 4)
	fmt.Printf("%.2f %.2f %.2f %.2f\n", w[0], w[1], w[2], w[3])
	// Output:
	// 0.00 0.75 0.75 0.00
}

func ExampleBartlett() {
	w, _ := Bartlett(5)
	fmt.Printf("%.1f\n", w)
	// Output:
	// [0.0 0.5 1.0 0.5 0.0]
}
