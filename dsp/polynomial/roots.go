package polynomial

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Errors returned by the polynomial engine.
var (
	ErrNoCoefficients         = errors.New("polynomial: coefficient sequence is empty")
	ErrZeroLeadingCoefficient = errors.New("polynomial: leading coefficient is zero")
	ErrEigenFailed            = errors.New("polynomial: eigen-decomposition failed to converge")
)

// Roots returns the complex roots of the real polynomial
//
//	coeffs[0]*x^n + coeffs[1]*x^(n-1) + ... + coeffs[n]
//
// by computing the eigenvalues of its companion matrix. The leading
// coefficient must be non-zero so the degree is well defined. A constant
// polynomial has no roots and yields an empty slice.
//
// Eigen-decomposition cost grows as O(n^3); this dominates the latency of
// high-order designs.
func Roots(coeffs []float64) ([]complex128, error) {
	if len(coeffs) == 0 {
		return nil, ErrNoCoefficients
	}

	if coeffs[0] == 0 {
		return nil, ErrZeroLeadingCoefficient
	}

	n := len(coeffs) - 1
	if n == 0 {
		return []complex128{}, nil
	}

	if n == 1 {
		return []complex128{complex(-coeffs[1]/coeffs[0], 0)}, nil
	}

	// Companion matrix: negated normalized coefficients across the top row,
	// ones on the sub-diagonal.
	a := mat.NewDense(n, n, nil)
	inv := 1 / coeffs[0]

	for j := range n {
		a.Set(0, j, -coeffs[j+1]*inv)
	}

	for i := 1; i < n; i++ {
		a.Set(i, i-1, 1)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(a, mat.EigenNone); !ok {
		return nil, ErrEigenFailed
	}

	return eig.Values(nil), nil
}
