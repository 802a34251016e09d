package iir_test

import (
	"fmt"
	"log"

	"github.com/cwbudde/algo-filter/dsp/iir"
)

func ExampleDesignSOS() {
	// Fourth-order Butterworth lowpass with the cutoff at a quarter of
	// the Nyquist frequency, delivered as biquad sections.
	sos, err := iir.DesignSOS(4, []float64{0.25}, 0, 0,
		iir.BandLowpass, iir.PrototypeButterworth, iir.DomainDigital,
		iir.PairNearest)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("sections: %d\n", len(sos.Sections))

	// Output:
	// sections: 2
}

func ExampleButterworth() {
	zpk, err := iir.Butterworth(3)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("poles: %d, zeros: %d, gain: %.0f\n",
		len(zpk.Poles), len(zpk.Zeros), zpk.Gain)

	// Output:
	// poles: 3, zeros: 0, gain: 1
}
