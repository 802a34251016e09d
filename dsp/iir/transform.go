package iir

import (
	"fmt"
	"math/cmplx"

	"github.com/cwbudde/algo-filter/dsp/rep"
)

// LP2LP rescales a normalized analog lowpass prototype to the cutoff
// frequency w0 in rad/s.
func LP2LP(zpk rep.ZPK, w0 float64) (rep.ZPK, error) {
	if err := validateTransformInput(zpk, w0); err != nil {
		return rep.ZPK{}, err
	}

	degree := len(zpk.Poles) - len(zpk.Zeros)
	w := complex(w0, 0)

	out := rep.ZPK{
		Zeros: make([]complex128, len(zpk.Zeros)),
		Poles: make([]complex128, len(zpk.Poles)),
		Gain:  zpk.Gain * pow(w0, degree),
	}

	for i, z := range zpk.Zeros {
		out.Zeros[i] = z * w
	}

	for i, p := range zpk.Poles {
		out.Poles[i] = p * w
	}

	return out, nil
}

// LP2HP transforms a normalized analog lowpass prototype into a highpass
// filter with cutoff w0 in rad/s. Each root is inverted and scaled; the
// degree deficit becomes zeros at the origin.
func LP2HP(zpk rep.ZPK, w0 float64) (rep.ZPK, error) {
	if err := validateTransformInput(zpk, w0); err != nil {
		return rep.ZPK{}, err
	}

	degree := len(zpk.Poles) - len(zpk.Zeros)
	w := complex(w0, 0)

	out := rep.ZPK{
		Zeros: make([]complex128, len(zpk.Zeros), len(zpk.Zeros)+degree),
		Poles: make([]complex128, len(zpk.Poles)),
	}

	for i, z := range zpk.Zeros {
		out.Zeros[i] = w / z
	}

	for i, p := range zpk.Poles {
		out.Poles[i] = w / p
	}

	for range degree {
		out.Zeros = append(out.Zeros, 0)
	}

	out.Gain = zpk.Gain * real(prodNeg(zpk.Zeros)/prodNeg(zpk.Poles))

	return out, nil
}

// LP2BP transforms a normalized analog lowpass prototype into a bandpass
// filter centered at w0 with passband width bw, both in rad/s. The
// quadratic substitution doubles the order.
func LP2BP(zpk rep.ZPK, w0, bw float64) (rep.ZPK, error) {
	if err := validateTransformInput(zpk, w0); err != nil {
		return rep.ZPK{}, err
	}

	if bw <= 0 {
		return rep.ZPK{}, fmt.Errorf("%w: bandpass width must be positive: %g", ErrInvalidBandwidth, bw)
	}

	degree := len(zpk.Poles) - len(zpk.Zeros)

	out := rep.ZPK{
		Zeros: bandSplit(zpk.Zeros, w0, bw),
		Poles: bandSplit(zpk.Poles, w0, bw),
		Gain:  zpk.Gain * pow(bw, degree),
	}

	// Degree deficit becomes zeros at the origin.
	for range degree {
		out.Zeros = append(out.Zeros, 0)
	}

	return out, nil
}

// LP2BS transforms a normalized analog lowpass prototype into a bandstop
// filter centered at w0 with stopband width bw, both in rad/s. The dual of
// LP2BP: roots are inverted before the quadratic split, and the degree
// deficit becomes zeros at the stopband center +-i*w0.
func LP2BS(zpk rep.ZPK, w0, bw float64) (rep.ZPK, error) {
	if err := validateTransformInput(zpk, w0); err != nil {
		return rep.ZPK{}, err
	}

	if bw < 0 {
		return rep.ZPK{}, fmt.Errorf("%w: bandstop width must be >= 0: %g", ErrInvalidBandwidth, bw)
	}

	degree := len(zpk.Poles) - len(zpk.Zeros)
	half := complex(bw/2, 0)

	zInv := make([]complex128, len(zpk.Zeros))
	for i, z := range zpk.Zeros {
		zInv[i] = half / z
	}

	pInv := make([]complex128, len(zpk.Poles))
	for i, p := range zpk.Poles {
		pInv[i] = half / p
	}

	out := rep.ZPK{
		Zeros: bandSplitInv(zInv, w0),
		Poles: bandSplitInv(pInv, w0),
		Gain:  zpk.Gain * real(prodNeg(zpk.Zeros)/prodNeg(zpk.Poles)),
	}

	for range degree {
		out.Zeros = append(out.Zeros, complex(0, w0), complex(0, -w0))
	}

	return out, nil
}

func validateTransformInput(zpk rep.ZPK, w0 float64) error {
	if zpk.IsEmpty() {
		return ErrEmptyFilter
	}

	if len(zpk.Zeros) > len(zpk.Poles) {
		return ErrZeroExcess
	}

	if w0 < 0 {
		return fmt.Errorf("%w: w0=%g rad/s", ErrInvalidCutoff, w0)
	}

	return nil
}

// bandSplit maps each lowpass root scaled by bw/2 to its two band-edge
// roots r +- sqrt(r^2 - w0^2), listing all upper images before all lower
// ones to keep conjugates discoverable.
func bandSplit(roots []complex128, w0, bw float64) []complex128 {
	scaled := make([]complex128, len(roots))
	for i, r := range roots {
		scaled[i] = r * complex(bw/2, 0)
	}

	return quadSplit(scaled, w0)
}

func bandSplitInv(scaled []complex128, w0 float64) []complex128 {
	return quadSplit(scaled, w0)
}

func quadSplit(scaled []complex128, w0 float64) []complex128 {
	out := make([]complex128, 0, 2*len(scaled))
	ww := complex(w0*w0, 0)

	for _, r := range scaled {
		d := cmplx.Sqrt(r*r - ww)
		out = append(out, r+d)
	}

	for _, r := range scaled {
		d := cmplx.Sqrt(r*r - ww)
		out = append(out, r-d)
	}

	return out
}

// prodNeg returns the product of the negated roots, i.e. the constant term
// of the monic expansion. An empty set yields 1.
func prodNeg(roots []complex128) complex128 {
	out := complex(1, 0)
	for _, r := range roots {
		out *= -r
	}

	return out
}

func pow(base float64, exp int) float64 {
	out := 1.0
	for range exp {
		out *= base
	}

	return out
}
