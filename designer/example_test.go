package designer_test

import (
	"fmt"
	"log"

	"github.com/cwbudde/algo-filter/designer"
	"github.com/cwbudde/algo-filter/dsp/iir"
)

func ExampleLowpassSOS() {
	// 100 Hz Chebyshev I lowpass with 1 dB of passband ripple at a
	// 1 kHz sample rate.
	sos, err := designer.LowpassSOS(4, 100, 1000,
		designer.WithPrototype(iir.PrototypeChebyshevI),
		designer.WithRipple(1))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("sections: %d\n", len(sos.Sections))

	// Output:
	// sections: 2
}
