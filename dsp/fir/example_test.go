package fir_test

import (
	"fmt"
	"log"

	"github.com/cwbudde/algo-filter/dsp/fir"
	"github.com/cwbudde/algo-filter/dsp/window"
)

func ExampleLowpass() {
	f, err := fir.Lowpass(4, 0.5, window.TypeHamming)
	if err != nil {
		log.Fatal(err)
	}

	for _, h := range f.Taps {
		fmt.Printf("%.6f\n", h)
	}

	// Output:
	// 0.000000
	// 0.203712
	// 0.592575
	// 0.203712
	// 0.000000
}

func ExampleHilbertTransformer() {
	re, im, err := fir.HilbertTransformer(10, 8)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("real taps: %d, imaginary taps: %d\n", len(re.Taps), len(im.Taps))

	// Output:
	// real taps: 11, imaginary taps: 11
}
