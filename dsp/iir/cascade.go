package iir

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-filter/dsp/polynomial"
	"github.com/cwbudde/algo-filter/dsp/rep"
)

// Pairing selects the pole/zero pairing strategy for ZPK2SOS.
type Pairing int

const (
	// PairNearest greedily pairs each pole with its closest available zero,
	// processing the highest-Q poles first so they end up late in the
	// cascade. Odd-order systems are padded with a zero and pole at the
	// origin, so every section is second order.
	PairNearest Pairing = iota

	// PairKeepOdd behaves like PairNearest except that an odd-order system
	// keeps one strictly first-order section carrying the lone real
	// pole/zero.
	PairKeepOdd
)

// conjugateTol is the relative tolerance for grouping roots into conjugate
// pairs.
const conjugateTol = 1e-8

// ZPK2SOS converts a pole-zero-gain design into cascaded second-order
// sections. The zero count must equal the pole count (pad with roots at the
// origin beforehand if needed) and there must be at least one pole.
//
// Sections are ordered with the highest-Q poles last, which improves
// numerical headroom when the cascade is applied in sequence. The overall
// gain is folded into the first section, so the product of the section
// scales equals the ZPK gain.
func ZPK2SOS(zpk rep.ZPK, pairing Pairing) (rep.SOS, error) {
	if len(zpk.Poles) == 0 {
		return rep.SOS{}, ErrNoPoles
	}

	if len(zpk.Zeros) != len(zpk.Poles) {
		return rep.SOS{}, fmt.Errorf("%w: %d zeros, %d poles",
			ErrCountMismatch, len(zpk.Zeros), len(zpk.Poles))
	}

	n := len(zpk.Poles)

	poles := append([]complex128(nil), zpk.Poles...)
	zeros := append([]complex128(nil), zpk.Zeros...)

	if pairing == PairNearest && n%2 == 1 {
		poles = append(poles, 0)
		zeros = append(zeros, 0)
	}

	pc, pr, err := splitConjugates(poles)
	if err != nil {
		return rep.SOS{}, err
	}

	zc, zr, err := splitConjugates(zeros)
	if err != nil {
		return rep.SOS{}, err
	}

	// Build sections from the highest-Q pole down; reverse at the end so
	// the worst sections run last.
	var built []rep.Section

	for len(pc)+len(pr) > 0 {
		ci := worstComplexIdx(pc)
		ri := worstRealIdx(pr)

		if ci >= 0 && (ri < 0 || poleBadness(pc[ci]) <= poleBadness(complex(pr[ri], 0))) {
			p1 := pc[ci]
			pc = removeComplex(pc, ci)

			secZeros := takeTwoZeros(&zc, &zr, p1)
			built = append(built, buildSection([]complex128{p1, cmplx.Conj(p1)}, secZeros))

			continue
		}

		p1 := pr[ri]
		pr = removeReal(pr, ri)

		if len(pr) == 0 {
			if pairing != PairKeepOdd {
				// A lone real pole outside keep-odd mode means the input
				// parity was broken by non-conjugate roots.
				return rep.SOS{}, ErrUnpairedRoot
			}

			// Lone real pole of an odd-order keep-odd design: strictly
			// first-order section carrying the nearest real zero.
			zi := nearestRealIdx(zr, p1)
			z1 := zr[zi]
			zr = removeReal(zr, zi)

			built = append(built, buildSection(
				[]complex128{complex(p1, 0)},
				[]complex128{complex(z1, 0)},
			))

			continue
		}

		pi := nearestRealIdx(pr, p1)
		p2 := pr[pi]
		pr = removeReal(pr, pi)

		secZeros := takeTwoZeros(&zc, &zr, complex(p1, 0))
		built = append(built, buildSection(
			[]complex128{complex(p1, 0), complex(p2, 0)},
			secZeros,
		))
	}

	// Reverse so the highest-Q section is last, then fold the gain into the
	// first section.
	for i, j := 0, len(built)-1; i < j; i, j = i+1, j-1 {
		built[i], built[j] = built[j], built[i]
	}

	built[0].B0 *= zpk.Gain
	built[0].B1 *= zpk.Gain
	built[0].B2 *= zpk.Gain

	return rep.SOS{Sections: built}, nil
}

// SOS2ZPK flattens a cascade back into zeros, poles, and gain by factoring
// each section.
func SOS2ZPK(sos rep.SOS) (rep.ZPK, error) {
	if len(sos.Sections) == 0 {
		return rep.ZPK{}, ErrEmptyFilter
	}

	out := rep.ZPK{Gain: 1}

	for i, s := range sos.Sections {
		b, a := sectionPolys(s)

		// Strip leading numerator zeros so the root finder sees the true
		// degree; the leading coefficient carries the section's scale.
		lead := 0
		for lead < len(b)-1 && b[lead] == 0 {
			lead++
		}

		if b[lead] == 0 {
			return rep.ZPK{}, fmt.Errorf("iir: section %d: %w", i, ErrZeroLeadingCoeff)
		}

		zeros, err := polynomial.Roots(b[lead:])
		if err != nil {
			return rep.ZPK{}, fmt.Errorf("iir: section %d numerator: %w", i, err)
		}

		poles, err := polynomial.Roots(a)
		if err != nil {
			return rep.ZPK{}, fmt.Errorf("iir: section %d denominator: %w", i, err)
		}

		out.Zeros = append(out.Zeros, zeros...)
		out.Poles = append(out.Poles, poles...)
		out.Gain *= b[lead]
	}

	return out, nil
}

// SOS2TF flattens a cascade into transfer-function coefficients by
// multiplying out the section polynomials.
func SOS2TF(sos rep.SOS) (rep.BA, error) {
	if len(sos.Sections) == 0 {
		return rep.BA{}, ErrEmptyFilter
	}

	b := []float64{1}
	a := []float64{1}

	for _, s := range sos.Sections {
		sb, sa := sectionPolys(s)
		b = convolve(b, sb)
		a = convolve(a, sa)
	}

	return rep.BA{B: b, A: a}, nil
}

// sectionPolys returns the section's numerator and denominator in
// descending powers, two terms for a first-order section and three
// otherwise.
func sectionPolys(s rep.Section) (b, a []float64) {
	if s.IsFirstOrder() {
		return []float64{s.B0, s.B1}, []float64{1, s.A1}
	}

	return []float64{s.B0, s.B1, s.B2}, []float64{1, s.A1, s.A2}
}

func convolve(a, b []float64) []float64 {
	out := make([]float64, len(a)+len(b)-1)
	for i, va := range a {
		for j, vb := range b {
			out[i+j] += va * vb
		}
	}

	return out
}

// splitConjugates partitions roots into upper-half-plane representatives of
// conjugate pairs and real roots. A complex root without a conjugate
// partner within tolerance is a numerical degeneracy.
func splitConjugates(roots []complex128) (cplx []complex128, reals []float64, err error) {
	used := make([]bool, len(roots))

	for i, r := range roots {
		if used[i] {
			continue
		}

		if math.Abs(imag(r)) <= conjugateTol*math.Max(1, cmplx.Abs(r)) {
			used[i] = true
			reals = append(reals, real(r))

			continue
		}

		conj := cmplx.Conj(r)
		best := -1
		bestDist := math.MaxFloat64

		for j := i + 1; j < len(roots); j++ {
			if used[j] {
				continue
			}

			if d := cmplx.Abs(roots[j] - conj); d < bestDist {
				bestDist = d
				best = j
			}
		}

		if best < 0 || bestDist > conjugateTol*math.Max(1, cmplx.Abs(r)) {
			return nil, nil, fmt.Errorf("%w: root %v", ErrUnpairedRoot, r)
		}

		used[i] = true
		used[best] = true

		if imag(r) > 0 {
			cplx = append(cplx, r)
		} else {
			cplx = append(cplx, conj)
		}
	}

	return cplx, reals, nil
}

// poleBadness orders poles by proximity to the unit circle; smaller is
// higher Q.
func poleBadness(p complex128) float64 {
	return math.Abs(1 - cmplx.Abs(p))
}

func worstComplexIdx(pc []complex128) int {
	best := -1
	bestVal := math.MaxFloat64

	for i, p := range pc {
		if v := poleBadness(p); v < bestVal {
			bestVal = v
			best = i
		}
	}

	return best
}

func worstRealIdx(pr []float64) int {
	best := -1
	bestVal := math.MaxFloat64

	for i, p := range pr {
		if v := poleBadness(complex(p, 0)); v < bestVal {
			bestVal = v
			best = i
		}
	}

	return best
}

func nearestRealIdx(cands []float64, target float64) int {
	best := -1
	bestDist := math.MaxFloat64

	for i, c := range cands {
		if d := math.Abs(c - target); d < bestDist {
			bestDist = d
			best = i
		}
	}

	return best
}

func nearestComplexIdx(cands []complex128, target complex128) int {
	best := -1
	bestDist := math.MaxFloat64

	for i, c := range cands {
		if d := cmplx.Abs(c - target); d < bestDist {
			bestDist = d
			best = i
		}
	}

	return best
}

// takeTwoZeros removes and returns the two zeros closest to the pole p1,
// either one conjugate pair or two real zeros. Mixing a real zero with half
// a conjugate pair would break the real-coefficient property, so the
// section takes whichever homogeneous pair is nearer.
func takeTwoZeros(zc *[]complex128, zr *[]float64, p1 complex128) []complex128 {
	ci := nearestComplexIdx(*zc, p1)
	ri := nearestRealIdx(*zr, real(p1))

	useComplex := false

	switch {
	case ci >= 0 && len(*zr) >= 2:
		useComplex = cmplx.Abs((*zc)[ci]-p1) <= math.Abs((*zr)[ri]-real(p1))
	case ci >= 0:
		useComplex = true
	}

	if useComplex {
		z := (*zc)[ci]
		*zc = removeComplex(*zc, ci)

		return []complex128{z, cmplx.Conj(z)}
	}

	z1 := (*zr)[ri]
	*zr = removeReal(*zr, ri)

	ri2 := nearestRealIdx(*zr, real(p1))
	z2 := (*zr)[ri2]
	*zr = removeReal(*zr, ri2)

	return []complex128{complex(z1, 0), complex(z2, 0)}
}

// buildSection expands section roots into normalized coefficients. Poles
// and zeros arrive in equal counts (one or two of each).
func buildSection(poles, zeros []complex128) rep.Section {
	b := polynomial.PolyReal(zeros)
	a := polynomial.PolyReal(poles)

	if len(poles) == 1 {
		return rep.Section{B0: b[0], B1: b[1], A1: a[1]}
	}

	return rep.Section{B0: b[0], B1: b[1], B2: b[2], A1: a[1], A2: a[2]}
}

func removeComplex(s []complex128, i int) []complex128 {
	return append(s[:i], s[i+1:]...)
}

func removeReal(s []float64, i int) []float64 {
	return append(s[:i], s[i+1:]...)
}
