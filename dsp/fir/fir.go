package fir

import (
	"math"

	"github.com/cwbudde/algo-filter/dsp/rep"
	"github.com/cwbudde/algo-filter/dsp/window"
)

// Lowpass designs a windowed-sinc lowpass filter of the given order with
// order+1 taps. The cutoff is a fraction of the Nyquist frequency in (0, 1).
func Lowpass(order int, cutoff float64, win window.Type) (rep.FIR, error) {
	if err := validateOrder(order); err != nil {
		return rep.FIR{}, err
	}

	if err := validateCutoff(cutoff); err != nil {
		return rep.FIR{}, err
	}

	taps := make([]float64, order+1)
	for k := range taps {
		t := offset(k, order)
		taps[k] = cutoff * sinc(cutoff*t)
	}

	window.Apply(win, taps)
	normalizeAt(taps, 0)

	return rep.FIR{Taps: taps}, nil
}

// Highpass designs a windowed-sinc highpass filter. The order must be even:
// an odd-order symmetric filter has a forced zero at Nyquist and cannot pass
// the stopband complement.
func Highpass(order int, cutoff float64, win window.Type) (rep.FIR, error) {
	if err := validateEvenOrder(order); err != nil {
		return rep.FIR{}, err
	}

	if err := validateCutoff(cutoff); err != nil {
		return rep.FIR{}, err
	}

	taps := make([]float64, order+1)
	for k := range taps {
		t := offset(k, order)
		taps[k] = sinc(t) - cutoff*sinc(cutoff*t)
	}

	window.Apply(win, taps)
	normalizeAt(taps, 1)

	return rep.FIR{Taps: taps}, nil
}

// Bandpass designs a windowed-sinc bandpass filter with edges low < high,
// both fractions of Nyquist in (0, 1). Gain is unity at the band center.
func Bandpass(order int, low, high float64, win window.Type) (rep.FIR, error) {
	if err := validateOrder(order); err != nil {
		return rep.FIR{}, err
	}

	if err := validateBand(low, high); err != nil {
		return rep.FIR{}, err
	}

	taps := make([]float64, order+1)
	for k := range taps {
		t := offset(k, order)
		taps[k] = high*sinc(high*t) - low*sinc(low*t)
	}

	window.Apply(win, taps)
	normalizeAt(taps, (low+high)/2)

	return rep.FIR{Taps: taps}, nil
}

// Bandstop designs a windowed-sinc bandstop (notch) filter with edges
// low < high. The order must be even for the same reason as Highpass.
func Bandstop(order int, low, high float64, win window.Type) (rep.FIR, error) {
	if err := validateEvenOrder(order); err != nil {
		return rep.FIR{}, err
	}

	if err := validateBand(low, high); err != nil {
		return rep.FIR{}, err
	}

	taps := make([]float64, order+1)
	for k := range taps {
		t := offset(k, order)
		taps[k] = sinc(t) - high*sinc(high*t) + low*sinc(low*t)
	}

	window.Apply(win, taps)
	normalizeAt(taps, 0)

	return rep.FIR{Taps: taps}, nil
}

// HilbertTransformer designs a Kaiser-windowed FIR approximation of the
// Hilbert transform and returns the real and imaginary tap sequences, each
// with order+1 taps.
//
// An even order produces a Type III design: the real filter is a unit
// impulse at the group delay and every even-offset imaginary tap is exactly
// zero, which halves the work for an implementation that exploits sparsity.
// An odd order produces a Type IV design: neither filter is sparse but the
// response stays flat up to Nyquist, approximating the ideal transform more
// closely.
func HilbertTransformer(order int, beta float64) (rep.FIR, rep.FIR, error) {
	if order < 0 {
		return rep.FIR{}, rep.FIR{}, ErrNegativeOrder
	}

	win, err := window.Kaiser(order+1, beta)
	if err != nil {
		return rep.FIR{}, rep.FIR{}, err
	}

	re := make([]float64, order+1)
	im := make([]float64, order+1)

	for k := range im {
		t := offset(k, order)

		if order%2 == 0 {
			if k == order/2 {
				re[k] = 1
			}
		} else {
			re[k] = win[k] * sinc(t)
		}

		im[k] = win[k] * hilbertKernel(t)
	}

	return rep.FIR{Taps: re}, rep.FIR{Taps: im}, nil
}

// offset returns the tap position relative to the filter's group delay.
func offset(k, order int) float64 {
	return float64(k) - float64(order)/2
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}

	px := math.Pi * x

	return math.Sin(px) / px
}

// hilbertKernel samples the ideal Hilbert impulse response
// (1 - cos(pi t)) / (pi t); zero at t = 0 by the limit.
func hilbertKernel(t float64) float64 {
	if t == 0 {
		return 0
	}

	return (1 - math.Cos(math.Pi*t)) / (math.Pi * t)
}

// normalizeAt rescales taps so the amplitude response is unity at the
// normalized frequency f (fraction of Nyquist). Symmetric taps make the
// response magnitude a pure cosine sum around the group delay.
func normalizeAt(taps []float64, f float64) {
	var re, im float64

	w := math.Pi * f
	for k, h := range taps {
		re += h * math.Cos(w*float64(k))
		im -= h * math.Sin(w*float64(k))
	}

	gain := math.Hypot(re, im)
	if gain == 0 {
		return
	}

	inv := 1 / gain
	for k := range taps {
		taps[k] *= inv
	}
}
