package rep

import (
	"math"
	"math/cmplx"
)

// ZPK represents a filter as zeros, poles, and a scalar gain.
//
// For a real-valued filter every non-real zero and pole must have its complex
// conjugate present. Analog prototypes additionally satisfy
// len(Zeros) <= len(Poles).
type ZPK struct {
	Zeros []complex128
	Poles []complex128
	Gain  float64
}

// NewZPK builds a ZPK from copies of the given root slices.
func NewZPK(zeros, poles []complex128, gain float64) ZPK {
	return ZPK{
		Zeros: append([]complex128(nil), zeros...),
		Poles: append([]complex128(nil), poles...),
		Gain:  gain,
	}
}

// Clone returns a deep copy.
func (z ZPK) Clone() ZPK {
	return NewZPK(z.Zeros, z.Poles, z.Gain)
}

// Order returns the filter order, the larger of the pole and zero counts.
func (z ZPK) Order() int {
	if len(z.Zeros) > len(z.Poles) {
		return len(z.Zeros)
	}

	return len(z.Poles)
}

// IsEmpty reports whether the filter has neither zeros nor poles.
func (z ZPK) IsEmpty() bool {
	return len(z.Zeros) == 0 && len(z.Poles) == 0
}

// IsReal reports whether the zeros and poles are closed under complex
// conjugation within tol, i.e. whether the filter has real coefficients.
func (z ZPK) IsReal(tol float64) bool {
	return conjugateClosed(z.Zeros, tol) && conjugateClosed(z.Poles, tol)
}

func conjugateClosed(roots []complex128, tol float64) bool {
	for _, r := range roots {
		if math.Abs(imag(r)) <= tol {
			continue
		}

		found := false

		for _, s := range roots {
			if cmplx.Abs(s-cmplx.Conj(r)) <= tol*math.Max(1, cmplx.Abs(r)) {
				found = true
				break
			}
		}

		if !found {
			return false
		}
	}

	return true
}

// BA represents a filter as real transfer-function coefficients, ordered
// from the highest power down to the constant term.
type BA struct {
	B []float64 // numerator
	A []float64 // denominator
}

// NewBA builds a BA from copies of the given coefficient slices.
func NewBA(b, a []float64) BA {
	return BA{
		B: append([]float64(nil), b...),
		A: append([]float64(nil), a...),
	}
}

// Clone returns a deep copy.
func (ba BA) Clone() BA {
	return NewBA(ba.B, ba.A)
}

// Order returns the filter order, the larger polynomial degree.
func (ba BA) Order() int {
	nb := len(ba.B) - 1
	na := len(ba.A) - 1

	if nb > na {
		return nb
	}

	if na < 0 {
		return 0
	}

	return na
}

// Section holds one second-order section with the denominator's leading
// coefficient normalized to 1. A first-order section has B2 == 0 and A2 == 0.
type Section struct {
	B0, B1, B2 float64
	A1, A2     float64
}

// IsFirstOrder reports whether the section is strictly first order.
func (s Section) IsFirstOrder() bool {
	return s.B2 == 0 && s.A2 == 0
}

// SOS represents a filter as an ordered cascade of second-order sections.
// The ordering matters for numerical headroom when the sections are applied
// in sequence.
type SOS struct {
	Sections []Section
}

// NewSOS builds an SOS from a copy of the given sections.
func NewSOS(sections []Section) SOS {
	return SOS{Sections: append([]Section(nil), sections...)}
}

// Clone returns a deep copy.
func (s SOS) Clone() SOS {
	return NewSOS(s.Sections)
}

// FIR represents a finite impulse response filter as a tap sequence of
// length order+1.
type FIR struct {
	Taps []float64
}

// NewFIR builds an FIR from a copy of the given taps.
func NewFIR(taps []float64) FIR {
	return FIR{Taps: append([]float64(nil), taps...)}
}

// Clone returns a deep copy.
func (f FIR) Clone() FIR {
	return NewFIR(f.Taps)
}

// Order returns the filter order (len(Taps) - 1).
func (f FIR) Order() int {
	return len(f.Taps) - 1
}
