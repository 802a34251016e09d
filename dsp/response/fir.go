package response

import (
	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-filter/dsp/rep"
)

// FIRFreqzGrid returns the magnitude response of an FIR tap sequence on a
// grid of n evenly spaced frequencies over [0, Nyquist). The taps are
// zero-padded to the next power of two at least 2n and transformed in one
// FFT pass, which is much cheaper than n polynomial evaluations for dense
// grids.
func FIRFreqzGrid(f rep.FIR, n int) ([]float64, error) {
	if len(f.Taps) == 0 {
		return nil, ErrEmptyFilter
	}

	if n <= 0 {
		return nil, ErrInvalidGridSize
	}

	fftSize := nextPowerOf2(2 * n)
	if fftSize < len(f.Taps) {
		fftSize = nextPowerOf2(len(f.Taps))
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, err
	}

	in := make([]complex128, fftSize)
	for i, h := range f.Taps {
		in[i] = complex(h, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, err
	}

	// Resample the first half of the spectrum onto the requested grid.
	re := make([]float64, n)
	im := make([]float64, n)

	for i := range n {
		bin := i * (fftSize / 2) / n
		re[i] = real(out[bin])
		im[i] = imag(out[bin])
	}

	mag := make([]float64, n)
	vecmath.Magnitude(mag, re, im)

	return mag, nil
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
