package iir

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-filter/dsp/rep"
	"github.com/cwbudde/algo-filter/internal/testutil"
)

func TestZPK2TFKnownSystem(t *testing.T) {
	// 2*(z-1)(z+1) / (z-0.5-0.5i)(z-0.5+0.5i)
	zpk := rep.ZPK{
		Zeros: []complex128{1, -1},
		Poles: []complex128{complex(0.5, 0.5), complex(0.5, -0.5)},
		Gain:  2,
	}

	ba := ZPK2TF(zpk)

	testutil.RequireSliceNearlyEqual(t, ba.B, []float64{2, 0, -2}, 1e-12)
	testutil.RequireSliceNearlyEqual(t, ba.A, []float64{1, -1, 0.5}, 1e-12)
}

func TestTFZPKRoundTrip(t *testing.T) {
	// Well-conditioned systems round-trip within 1e-8 relative error.
	cases := []rep.BA{
		NewDigitalTestBA([]float64{0.5, 0.2, 0.1}, []float64{1, -0.9, 0.3}),
		NewDigitalTestBA([]float64{2, 0, -2}, []float64{1, -1, 0.5}),
		NewDigitalTestBA(
			[]float64{1, 2, 3, 4},
			[]float64{1, -0.5, 0.25, -0.125},
		),
	}

	for ci, ba := range cases {
		zpk, err := TF2ZPK(ba)
		if err != nil {
			t.Fatalf("case %d: %v", ci, err)
		}

		back := ZPK2TF(zpk)

		if len(back.B) != len(ba.B) || len(back.A) != len(ba.A) {
			t.Fatalf("case %d: length mismatch", ci)
		}

		for i := range ba.B {
			rel := math.Abs(back.B[i]-ba.B[i]) / math.Max(1, math.Abs(ba.B[i]))
			if rel > 1e-8 {
				t.Errorf("case %d B[%d]: got %v, want %v", ci, i, back.B[i], ba.B[i])
			}
		}

		for i := range ba.A {
			rel := math.Abs(back.A[i]-ba.A[i]) / math.Max(1, math.Abs(ba.A[i]))
			if rel > 1e-8 {
				t.Errorf("case %d A[%d]: got %v, want %v", ci, i, back.A[i], ba.A[i])
			}
		}
	}
}

// NewDigitalTestBA builds a BA without copying ceremony; test helper.
func NewDigitalTestBA(b, a []float64) rep.BA {
	return rep.BA{B: b, A: a}
}

func TestTF2ZPKValidation(t *testing.T) {
	if _, err := TF2ZPK(rep.BA{A: []float64{1}}); !errors.Is(err, ErrEmptyCoefficients) {
		t.Errorf("empty numerator: got %v, want ErrEmptyCoefficients", err)
	}

	if _, err := TF2ZPK(rep.BA{B: []float64{1}}); !errors.Is(err, ErrEmptyCoefficients) {
		t.Errorf("empty denominator: got %v, want ErrEmptyCoefficients", err)
	}

	bad := rep.BA{B: []float64{0, 1}, A: []float64{1, 0.5}}
	if _, err := TF2ZPK(bad); !errors.Is(err, ErrZeroLeadingCoeff) {
		t.Errorf("zero leading coefficient: got %v, want ErrZeroLeadingCoeff", err)
	}
}
