package polynomial

import (
	"errors"
	"math"
	"math/cmplx"
	"sort"
	"testing"

	"github.com/cwbudde/algo-filter/internal/testutil"
)

func sortRoots(r []complex128) {
	sort.Slice(r, func(i, j int) bool {
		if real(r[i]) != real(r[j]) {
			return real(r[i]) < real(r[j])
		}

		return imag(r[i]) < imag(r[j])
	})
}

func TestRootsQuadratic(t *testing.T) {
	// x^2 - 3x + 2 = (x-1)(x-2)
	roots, err := Roots([]float64{1, -3, 2})
	if err != nil {
		t.Fatal(err)
	}

	if len(roots) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(roots))
	}

	sortRoots(roots)

	if cmplx.Abs(roots[0]-1) > 1e-10 || cmplx.Abs(roots[1]-2) > 1e-10 {
		t.Errorf("expected roots {1, 2}, got %v", roots)
	}
}

func TestRootsConjugatePair(t *testing.T) {
	// x^2 + 1, roots at +-i
	roots, err := Roots([]float64{1, 0, 1})
	if err != nil {
		t.Fatal(err)
	}

	sortRoots(roots)

	if cmplx.Abs(roots[0]-complex(0, -1)) > 1e-10 || cmplx.Abs(roots[1]-complex(0, 1)) > 1e-10 {
		t.Errorf("expected roots {-i, i}, got %v", roots)
	}
}

func TestRootsLinearAndConstant(t *testing.T) {
	roots, err := Roots([]float64{2, -4})
	if err != nil {
		t.Fatal(err)
	}

	if len(roots) != 1 || cmplx.Abs(roots[0]-2) > 1e-12 {
		t.Errorf("expected single root 2, got %v", roots)
	}

	roots, err = Roots([]float64{5})
	if err != nil {
		t.Fatal(err)
	}

	if len(roots) != 0 {
		t.Errorf("constant polynomial should have no roots, got %v", roots)
	}
}

func TestRootsInvalidInput(t *testing.T) {
	if _, err := Roots(nil); !errors.Is(err, ErrNoCoefficients) {
		t.Errorf("empty input: got %v, want ErrNoCoefficients", err)
	}

	if _, err := Roots([]float64{0, 1, 2}); !errors.Is(err, ErrZeroLeadingCoefficient) {
		t.Errorf("zero leading coefficient: got %v, want ErrZeroLeadingCoefficient", err)
	}
}

func TestRootsPolyRoundTrip(t *testing.T) {
	// Distinct roots up to degree 20 must round-trip within 1e-8.
	cases := [][]complex128{
		{1, 2, 3},
		{complex(0.5, 0.5), complex(0.5, -0.5), -1},
		{-1, -2, -3, -4, -5, -6, -7, -8},
	}

	// Degree-20 case with well separated roots on a circle.
	big := make([]complex128, 0, 20)
	for k := range 10 {
		angle := math.Pi * (2*float64(k) + 1) / 20
		r := complex(2*math.Cos(angle), 2*math.Sin(angle))
		big = append(big, r, cmplx.Conj(r))
	}

	cases = append(cases, big)

	for ci, want := range cases {
		coeffs := PolyReal(want)

		got, err := Roots(coeffs)
		if err != nil {
			t.Fatalf("case %d: %v", ci, err)
		}

		testutil.RequireRootsNear(t, got, want, 1e-8)
	}
}

func TestPolyRealRootsGiveRealCoefficients(t *testing.T) {
	c := Poly([]complex128{1, 2, 3})

	want := []float64{1, -6, 11, -6}
	for i, v := range c {
		if imag(v) != 0 {
			t.Errorf("coefficient %d has imaginary residue %v", i, imag(v))
		}

		if math.Abs(real(v)-want[i]) > 1e-12 {
			t.Errorf("coefficient %d: got %v, want %v", i, real(v), want[i])
		}
	}
}

func TestPolyEmptyRootSet(t *testing.T) {
	c := Poly(nil)
	if len(c) != 1 || c[0] != 1 {
		t.Fatalf("expected monic constant [1], got %v", c)
	}
}

func TestPolyvalFastPaths(t *testing.T) {
	x := []float64{-2, -1, 0, 1, 2}

	tests := []struct {
		name   string
		coeffs []float64
		eval   func(float64) float64
	}{
		{"constant", []float64{3}, func(float64) float64 { return 3 }},
		{"linear", []float64{2, 1}, func(v float64) float64 { return 2*v + 1 }},
		{"quadratic", []float64{1, -2, 1}, func(v float64) float64 { return v*v - 2*v + 1 }},
		{"cubic", []float64{1, 0, -3, 5}, func(v float64) float64 { return v*v*v - 3*v + 5 }},
		{"quintic", []float64{1, 0, 0, 0, 0, -1}, func(v float64) float64 { return math.Pow(v, 5) - 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, err := Polyval(tt.coeffs, x)
			if err != nil {
				t.Fatal(err)
			}

			for i, v := range x {
				if want := tt.eval(v); math.Abs(y[i]-want) > 1e-12 {
					t.Errorf("x=%v: got %v, want %v", v, y[i], want)
				}
			}
		})
	}
}

func TestPolyvalEmptyCoefficients(t *testing.T) {
	if _, err := Polyval(nil, []float64{1}); !errors.Is(err, ErrNoCoefficients) {
		t.Errorf("got %v, want ErrNoCoefficients", err)
	}

	if _, err := PolyvalComplex(nil, []complex128{1}); !errors.Is(err, ErrNoCoefficients) {
		t.Errorf("got %v, want ErrNoCoefficients", err)
	}
}

func TestPolyvalComplexAgainstReal(t *testing.T) {
	coeffs := []float64{2, -1, 0.5, 3}
	x := []float64{-1.5, 0.25, 2}

	yr, err := Polyval(coeffs, x)
	if err != nil {
		t.Fatal(err)
	}

	cc := make([]complex128, len(coeffs))
	for i, v := range coeffs {
		cc[i] = complex(v, 0)
	}

	cx := make([]complex128, len(x))
	for i, v := range x {
		cx[i] = complex(v, 0)
	}

	yc, err := PolyvalComplex(cc, cx)
	if err != nil {
		t.Fatal(err)
	}

	for i := range yr {
		if cmplx.Abs(yc[i]-complex(yr[i], 0)) > 1e-12 {
			t.Errorf("index %d: complex %v vs real %v", i, yc[i], yr[i])
		}
	}
}
