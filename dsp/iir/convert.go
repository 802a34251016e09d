package iir

import (
	"fmt"

	"github.com/cwbudde/algo-filter/dsp/polynomial"
	"github.com/cwbudde/algo-filter/dsp/rep"
)

// ZPK2TF expands a pole-zero-gain design into real transfer-function
// coefficients. The denominator is monic; the numerator carries the gain.
func ZPK2TF(zpk rep.ZPK) rep.BA {
	b := polynomial.PolyReal(zpk.Zeros)
	for i := range b {
		b[i] *= zpk.Gain
	}

	return rep.BA{
		B: b,
		A: polynomial.PolyReal(zpk.Poles),
	}
}

// TF2ZPK factors transfer-function coefficients into zeros, poles, and
// gain. Both coefficient sequences must be non-empty with a non-zero
// leading coefficient; the gain is the ratio of the leading coefficients.
func TF2ZPK(ba rep.BA) (rep.ZPK, error) {
	if len(ba.B) == 0 || len(ba.A) == 0 {
		return rep.ZPK{}, ErrEmptyCoefficients
	}

	if ba.B[0] == 0 || ba.A[0] == 0 {
		return rep.ZPK{}, ErrZeroLeadingCoeff
	}

	zeros, err := polynomial.Roots(ba.B)
	if err != nil {
		return rep.ZPK{}, fmt.Errorf("iir: numerator roots: %w", err)
	}

	poles, err := polynomial.Roots(ba.A)
	if err != nil {
		return rep.ZPK{}, fmt.Errorf("iir: denominator roots: %w", err)
	}

	return rep.ZPK{
		Zeros: zeros,
		Poles: poles,
		Gain:  ba.B[0] / ba.A[0],
	}, nil
}
