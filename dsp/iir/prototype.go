package iir

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-filter/dsp/polynomial"
	"github.com/cwbudde/algo-filter/dsp/rep"
)

// Butterworth returns the normalized analog lowpass Butterworth prototype of
// order n: poles evenly spaced on the left half of the unit circle, no
// zeros, unit gain.
func Butterworth(n int) (rep.ZPK, error) {
	if n < 1 {
		return rep.ZPK{}, ErrInvalidOrder
	}

	poles := make([]complex128, n)
	for k := range n {
		theta := math.Pi * float64(2*k+n+1) / float64(2*n)
		poles[k] = complex(math.Cos(theta), math.Sin(theta))
	}

	return rep.ZPK{Poles: poles, Gain: 1}, nil
}

// ChebyshevI returns the normalized analog lowpass Chebyshev type I
// prototype of order n with rp decibels of passband ripple. Poles lie on an
// ellipse in the left half-plane; there are no zeros. The gain is set so the
// passband edge meets the ripple specification.
func ChebyshevI(n int, rp float64) (rep.ZPK, error) {
	if n < 1 {
		return rep.ZPK{}, ErrInvalidOrder
	}

	if rp <= 0 {
		return rep.ZPK{}, fmt.Errorf("%w: rp=%g", ErrInvalidRipple, rp)
	}

	eps := math.Sqrt(math.Pow(10, 0.1*rp) - 1)
	mu := math.Asinh(1/eps) / float64(n)

	poles := make([]complex128, n)
	gain := complex(1, 0)

	for k := range n {
		theta := math.Pi * float64(2*k-n+1) / float64(2*n)
		p := complex(-math.Sinh(mu)*math.Cos(theta), math.Cosh(mu)*math.Sin(theta))
		poles[k] = p
		gain *= -p
	}

	g := real(gain)
	if n%2 == 0 {
		g /= math.Sqrt(1 + eps*eps)
	}

	return rep.ZPK{Poles: poles, Gain: g}, nil
}

// ChebyshevII returns the normalized analog lowpass Chebyshev type II
// (inverse Chebyshev) prototype of order n with at least rs decibels of
// stopband attenuation. Zeros lie on the imaginary axis; poles are the
// inverted type I ellipse.
func ChebyshevII(n int, rs float64) (rep.ZPK, error) {
	if n < 1 {
		return rep.ZPK{}, ErrInvalidOrder
	}

	if rs <= 0 {
		return rep.ZPK{}, fmt.Errorf("%w: rs=%g", ErrInvalidRipple, rs)
	}

	de := 1 / math.Sqrt(math.Pow(10, 0.1*rs)-1)
	mu := math.Asinh(1/de) / float64(n)

	// Zeros at the reciprocal Chebyshev nodes on the imaginary axis. An odd
	// order skips the node at the origin, leaving n-1 zeros.
	zeros := make([]complex128, 0, n)

	for k := range n {
		m := 2*k - n + 1
		if m == 0 {
			continue
		}

		s := math.Sin(math.Pi * float64(m) / float64(2*n))
		zeros = append(zeros, complex(0, -1/s))
	}

	poles := make([]complex128, n)

	for k := range n {
		theta := math.Pi * float64(2*k-n+1) / float64(2*n)
		p := complex(-math.Sinh(mu)*math.Cos(theta), math.Cosh(mu)*math.Sin(theta))
		poles[k] = 1 / p
	}

	num := complex(1, 0)
	for _, p := range poles {
		num *= -p
	}

	den := complex(1, 0)
	for _, z := range zeros {
		den *= -z
	}

	return rep.ZPK{Zeros: zeros, Poles: poles, Gain: real(num / den)}, nil
}

// Bessel returns the normalized analog lowpass Bessel prototype of order n.
// The poles are the roots of the reverse Bessel polynomial, which gives the
// filter unit group delay at DC; the gain normalizes the DC response to one.
func Bessel(n int) (rep.ZPK, error) {
	if n < 1 {
		return rep.ZPK{}, ErrInvalidOrder
	}

	coeffs := reverseBesselCoeffs(n)

	poles, err := polynomial.Roots(coeffs)
	if err != nil {
		return rep.ZPK{}, fmt.Errorf("iir: bessel prototype: %w", err)
	}

	// Force exact conjugate symmetry on the eigenvalue output.
	for i, p := range poles {
		if math.Abs(imag(p)) < 1e-12*cmplx.Abs(p) {
			poles[i] = complex(real(p), 0)
		}
	}

	return rep.ZPK{Poles: poles, Gain: coeffs[n]}, nil
}

// reverseBesselCoeffs returns the coefficients of the degree-n reverse
// Bessel polynomial, highest power first:
//
//	a_k = (2n-k)! / (2^(n-k) * k! * (n-k)!),  k = 0..n
func reverseBesselCoeffs(n int) []float64 {
	coeffs := make([]float64, n+1)

	for k := 0; k <= n; k++ {
		lg, _ := math.Lgamma(float64(2*n-k) + 1)
		lk, _ := math.Lgamma(float64(k) + 1)
		lnk, _ := math.Lgamma(float64(n-k) + 1)

		// Index n-k puts the s^k coefficient in descending order.
		coeffs[n-k] = math.Exp(lg - lk - lnk - float64(n-k)*math.Ln2)
	}

	return coeffs
}
