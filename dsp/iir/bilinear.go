package iir

import (
	"fmt"

	"github.com/cwbudde/algo-filter/dsp/rep"
)

// Bilinear maps an analog ZPK design to a digital one at sample rate fs via
// Tustin's substitution s = 2*fs*(z-1)/(z+1). Each analog root maps to one
// digital root; the zero-count deficit is padded with digital zeros at
// z = -1 (the image of s = infinity) to keep the transfer function proper.
//
// Callers designing at a prescribed critical frequency must pre-warp that
// frequency before the analog band transform; DesignZPK does this.
func Bilinear(zpk rep.ZPK, fs float64) (rep.ZPK, error) {
	if fs <= 0 {
		return rep.ZPK{}, fmt.Errorf("%w: fs=%g", ErrInvalidSampleRate, fs)
	}

	if len(zpk.Zeros) > len(zpk.Poles) {
		return rep.ZPK{}, ErrZeroExcess
	}

	degree := len(zpk.Poles) - len(zpk.Zeros)
	fs2 := complex(2*fs, 0)

	out := rep.ZPK{
		Zeros: make([]complex128, len(zpk.Zeros), len(zpk.Zeros)+degree),
		Poles: make([]complex128, len(zpk.Poles)),
	}

	for i, z := range zpk.Zeros {
		out.Zeros[i] = (fs2 + z) / (fs2 - z)
	}

	for i, p := range zpk.Poles {
		out.Poles[i] = (fs2 + p) / (fs2 - p)
	}

	for range degree {
		out.Zeros = append(out.Zeros, -1)
	}

	num := complex(1, 0)
	for _, z := range zpk.Zeros {
		num *= fs2 - z
	}

	den := complex(1, 0)
	for _, p := range zpk.Poles {
		den *= fs2 - p
	}

	out.Gain = zpk.Gain * real(num/den)

	return out, nil
}
