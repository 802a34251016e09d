package polynomial

import (
	"math"
)

// Poly expands a root set into the coefficients of the monic polynomial
//
//	(x - roots[0]) * (x - roots[1]) * ...
//
// returned from the highest power down to the constant term. Imaginary
// residues below machine epsilon are snapped to zero so that conjugate-
// symmetric root sets expand to numerically real coefficients.
func Poly(roots []complex128) []complex128 {
	out := make([]complex128, 1, len(roots)+1)
	out[0] = 1

	// Iterative convolution with (x - r).
	for _, r := range roots {
		out = append(out, 0)
		for j := len(out) - 1; j >= 1; j-- {
			out[j] -= r * out[j-1]
		}
	}

	for i, c := range out {
		if math.Abs(imag(c)) < machineEpsilon*math.Max(1, math.Abs(real(c))) {
			out[i] = complex(real(c), 0)
		}
	}

	return out
}

// PolyReal expands a conjugate-symmetric root set into real monic
// coefficients, discarding the residual imaginary parts.
func PolyReal(roots []complex128) []float64 {
	c := Poly(roots)

	out := make([]float64, len(c))
	for i, v := range c {
		out[i] = real(v)
	}

	return out
}

// Polyval evaluates a real polynomial at each point of x using Horner's
// method. Degrees 0 through 3 take unrolled fast paths.
func Polyval(coeffs, x []float64) ([]float64, error) {
	if len(coeffs) == 0 {
		return nil, ErrNoCoefficients
	}

	order := len(coeffs) - 1
	y := make([]float64, len(x))

	switch order {
	case 0:
		for i := range y {
			y[i] = coeffs[0]
		}
	case 1:
		for i, v := range x {
			y[i] = coeffs[0]*v + coeffs[1]
		}
	case 2:
		for i, v := range x {
			y[i] = coeffs[2] + v*(coeffs[1]+v*coeffs[0])
		}
	case 3:
		for i, v := range x {
			y[i] = coeffs[3] + v*(coeffs[2]+v*(coeffs[1]+v*coeffs[0]))
		}
	default:
		for i, v := range x {
			acc := coeffs[0]
			for j := 1; j <= order; j++ {
				acc = acc*v + coeffs[j]
			}

			y[i] = acc
		}
	}

	return y, nil
}

// PolyvalComplex evaluates a complex polynomial at each point of x using
// Horner's method.
func PolyvalComplex(coeffs, x []complex128) ([]complex128, error) {
	if len(coeffs) == 0 {
		return nil, ErrNoCoefficients
	}

	y := make([]complex128, len(x))
	for i, v := range x {
		acc := coeffs[0]
		for j := 1; j < len(coeffs); j++ {
			acc = acc*v + coeffs[j]
		}

		y[i] = acc
	}

	return y, nil
}

// PolyvalAt evaluates a complex polynomial at a single point.
func PolyvalAt(coeffs []complex128, x complex128) (complex128, error) {
	if len(coeffs) == 0 {
		return 0, ErrNoCoefficients
	}

	acc := coeffs[0]
	for j := 1; j < len(coeffs); j++ {
		acc = acc*x + coeffs[j]
	}

	return acc, nil
}

const machineEpsilon = 2.220446049250313e-16
