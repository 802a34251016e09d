package response

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-filter/dsp/polynomial"
	"github.com/cwbudde/algo-filter/dsp/rep"
)

// Freqs evaluates the analog transfer function H(s) = B(s)/A(s) at
// s = i*w for each angular frequency in w (rad/s).
func Freqs(ba rep.BA, w []float64) ([]complex128, error) {
	if err := validateBA(ba.B, ba.A); err != nil {
		return nil, err
	}

	if len(w) == 0 {
		return nil, nil
	}

	b := toComplex(ba.B)
	a := toComplex(ba.A)

	h := make([]complex128, len(w))
	for i, wi := range w {
		s := complex(0, wi)

		num, err := polynomial.PolyvalAt(b, s)
		if err != nil {
			return nil, err
		}

		den, err := polynomial.PolyvalAt(a, s)
		if err != nil {
			return nil, err
		}

		h[i] = num / den
	}

	return h, nil
}

// Freqz evaluates the digital transfer function H(z) = B(z)/A(z) on the
// unit circle at z = e^{iw} for each angular frequency in w (rad/sample,
// pi corresponding to Nyquist).
func Freqz(ba rep.BA, w []float64) ([]complex128, error) {
	if err := validateBA(ba.B, ba.A); err != nil {
		return nil, err
	}

	if len(w) == 0 {
		return nil, nil
	}

	// Coefficients index powers of z^-1; evaluating the reversed sequence
	// at e^{-iw} yields sum b[k] e^{-iwk} with a single Horner pass.
	b := reversedComplex(ba.B)
	a := reversedComplex(ba.A)

	h := make([]complex128, len(w))
	for i, wi := range w {
		z := cmplx.Exp(complex(0, -wi))

		num, err := polynomial.PolyvalAt(b, z)
		if err != nil {
			return nil, err
		}

		den, err := polynomial.PolyvalAt(a, z)
		if err != nil {
			return nil, err
		}

		h[i] = num / den
	}

	return h, nil
}

// SOSFreqz evaluates a second-order-section cascade on the unit circle as
// the product of the per-section responses.
func SOSFreqz(sos rep.SOS, w []float64) ([]complex128, error) {
	if len(sos.Sections) == 0 {
		return nil, ErrEmptyFilter
	}

	h := make([]complex128, len(w))
	for i := range h {
		h[i] = 1
	}

	for _, s := range sos.Sections {
		ba := rep.BA{
			B: []float64{s.B0, s.B1, s.B2},
			A: []float64{1, s.A1, s.A2},
		}

		hs, err := Freqz(ba, w)
		if err != nil {
			return nil, err
		}

		for i := range h {
			h[i] *= hs[i]
		}
	}

	return h, nil
}

// GroupDelay computes the group delay -d(arg H)/dw of a digital filter in
// samples at each angular frequency in w.
//
// The derivative is taken analytically: the phase of H = B/A equals the
// phase of B*conj(A), whose ramp coefficient follows from the power rule
// on the correlation of b with a. Singular points where the response
// magnitude vanishes yield a delay of zero.
func GroupDelay(ba rep.BA, w []float64) ([]float64, error) {
	if err := validateBA(ba.B, ba.A); err != nil {
		return nil, err
	}

	if len(w) == 0 {
		return nil, nil
	}

	// Correlation is convolution with the second operand reversed.
	c := correlate(ba.B, ba.A)

	// Ascending-power copy and its power-rule derivative, stored highest
	// power first for polynomial evaluation.
	nc := len(c)
	zc := make([]complex128, nc)
	zcr := make([]complex128, nc)

	for i, ci := range c {
		zc[nc-1-i] = complex(ci, 0)
		zcr[nc-1-i] = complex(ci*float64(i), 0)
	}

	shift := float64(len(ba.A) - 1)

	gd := make([]float64, len(w))
	for i, wi := range w {
		z := cmplx.Exp(complex(0, -wi))

		num, err := polynomial.PolyvalAt(zcr, z)
		if err != nil {
			return nil, err
		}

		den, err := polynomial.PolyvalAt(zc, z)
		if err != nil {
			return nil, err
		}

		if cmplx.Abs(den) < 10*machineEpsilon {
			gd[i] = 0

			continue
		}

		gd[i] = real(num/den) - shift
	}

	return gd, nil
}

const machineEpsilon = 2.220446049250313e-16

// LinSpace returns n angular frequencies evenly spaced over [0, pi),
// the usual evaluation grid for Freqz.
func LinSpace(n int) []float64 {
	if n <= 0 {
		return nil
	}

	w := make([]float64, n)
	for i := range w {
		w[i] = math.Pi * float64(i) / float64(n)
	}

	return w
}

func toComplex(in []float64) []complex128 {
	out := make([]complex128, len(in))
	for i, v := range in {
		out[i] = complex(v, 0)
	}

	return out
}

func reversedComplex(in []float64) []complex128 {
	out := make([]complex128, len(in))
	for i, v := range in {
		out[len(in)-1-i] = complex(v, 0)
	}

	return out
}

// correlate computes the full cross-correlation of b with a, equal to the
// convolution of b with the reversal of a.
func correlate(b, a []float64) []float64 {
	n := len(b) + len(a) - 1
	out := make([]float64, n)

	for i, bi := range b {
		for j, aj := range a {
			out[i+len(a)-1-j] += bi * aj
		}
	}

	return out
}
