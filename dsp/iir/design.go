package iir

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-filter/dsp/rep"
)

// Band identifies the target frequency band of a design.
type Band int

const (
	BandLowpass Band = iota
	BandHighpass
	BandBandpass
	BandBandstop
)

// Prototype identifies the analog prototype family.
type Prototype int

const (
	PrototypeButterworth Prototype = iota
	PrototypeBessel
	PrototypeChebyshevI
	PrototypeChebyshevII
)

// Domain distinguishes digital designs from analog ones. Digital designs
// take critical frequencies as fractions of Nyquist in (0, 1) and run the
// bilinear transform; analog designs take rad/s and stop at the band
// transform.
type Domain int

const (
	DomainDigital Domain = iota
	DomainAnalog
)

// DesignZPK designs an IIR filter and returns it as zeros, poles, and gain.
//
// Lowpass and highpass bands take one critical frequency; bandpass and
// bandstop take a low/high pair. rp is the passband ripple in dB (Chebyshev
// I only) and rs the stopband attenuation in dB (Chebyshev II only); both
// are ignored by the other families.
func DesignZPK(order int, freqs []float64, rp, rs float64,
	band Band, proto Prototype, domain Domain,
) (rep.ZPK, error) {
	if order < 1 {
		return rep.ZPK{}, ErrInvalidOrder
	}

	warped, err := validateFrequencies(freqs, band, domain)
	if err != nil {
		return rep.ZPK{}, err
	}

	zpk, err := synthesizePrototype(order, rp, rs, proto)
	if err != nil {
		return rep.ZPK{}, err
	}

	switch band {
	case BandLowpass:
		zpk, err = LP2LP(zpk, warped[0])
	case BandHighpass:
		zpk, err = LP2HP(zpk, warped[0])
	case BandBandpass:
		w0 := math.Sqrt(warped[0] * warped[1])
		zpk, err = LP2BP(zpk, w0, warped[1]-warped[0])
	case BandBandstop:
		w0 := math.Sqrt(warped[0] * warped[1])
		zpk, err = LP2BS(zpk, w0, warped[1]-warped[0])
	default:
		return rep.ZPK{}, ErrUnknownBand
	}

	if err != nil {
		return rep.ZPK{}, err
	}

	if domain == DomainAnalog {
		return zpk, nil
	}

	return Bilinear(zpk, designSampleRate)
}

// DesignBA designs an IIR filter and returns it as transfer-function
// coefficients with a monic denominator.
func DesignBA(order int, freqs []float64, rp, rs float64,
	band Band, proto Prototype, domain Domain,
) (rep.BA, error) {
	zpk, err := DesignZPK(order, freqs, rp, rs, band, proto, domain)
	if err != nil {
		return rep.BA{}, err
	}

	return ZPK2TF(zpk), nil
}

// DesignSOS designs an IIR filter and returns it as cascaded second-order
// sections under the given pairing strategy.
func DesignSOS(order int, freqs []float64, rp, rs float64,
	band Band, proto Prototype, domain Domain, pairing Pairing,
) (rep.SOS, error) {
	zpk, err := DesignZPK(order, freqs, rp, rs, band, proto, domain)
	if err != nil {
		return rep.SOS{}, err
	}

	return ZPK2SOS(zpk, pairing)
}

// designSampleRate is the internal sample rate for digital designs.
// Normalized frequencies make the true rate irrelevant; 2 Hz puts Nyquist
// at 1, matching the normalized-frequency convention.
const designSampleRate = 2.0

func synthesizePrototype(order int, rp, rs float64, proto Prototype) (rep.ZPK, error) {
	switch proto {
	case PrototypeButterworth:
		return Butterworth(order)
	case PrototypeBessel:
		return Bessel(order)
	case PrototypeChebyshevI:
		return ChebyshevI(order, rp)
	case PrototypeChebyshevII:
		return ChebyshevII(order, rs)
	default:
		return rep.ZPK{}, ErrUnknownPrototype
	}
}

// validateFrequencies checks the critical frequencies for the band and
// returns them in rad/s, pre-warped for digital designs so the bilinear
// transform maps each one exactly.
func validateFrequencies(freqs []float64, band Band, domain Domain) ([]float64, error) {
	want := 1
	if band == BandBandpass || band == BandBandstop {
		want = 2
	}

	if len(freqs) != want {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrFrequencyCount, len(freqs), want)
	}

	for _, f := range freqs {
		if domain == DomainDigital {
			if f <= 0 || f >= 1 {
				return nil, fmt.Errorf("%w: %g not in (0, 1)", ErrInvalidCutoff, f)
			}
		} else if f <= 0 {
			return nil, fmt.Errorf("%w: %g rad/s", ErrInvalidCutoff, f)
		}
	}

	if want == 2 && freqs[0] >= freqs[1] {
		return nil, fmt.Errorf("%w: %g >= %g", ErrFrequencyOrder, freqs[0], freqs[1])
	}

	out := make([]float64, len(freqs))

	for i, f := range freqs {
		if domain == DomainDigital {
			out[i] = 2 * designSampleRate * math.Tan(math.Pi*f/designSampleRate)
		} else {
			out[i] = f
		}
	}

	return out, nil
}
