package iir

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-filter/dsp/rep"
	"github.com/cwbudde/algo-filter/internal/testutil"
)

func designOrder5Lowpass(t *testing.T) rep.ZPK {
	t.Helper()

	zpk, err := DesignZPK(5, []float64{0.3}, 0, 0,
		BandLowpass, PrototypeButterworth, DomainDigital)
	if err != nil {
		t.Fatal(err)
	}

	return zpk
}

func TestZPK2SOSSectionCount(t *testing.T) {
	for _, order := range []int{1, 2, 3, 4, 5, 8, 9} {
		zpk, err := DesignZPK(order, []float64{0.4}, 0, 0,
			BandLowpass, PrototypeButterworth, DomainDigital)
		if err != nil {
			t.Fatalf("order %d: %v", order, err)
		}

		for _, pairing := range []Pairing{PairNearest, PairKeepOdd} {
			sos, err := ZPK2SOS(zpk, pairing)
			if err != nil {
				t.Fatalf("order %d pairing %v: %v", order, pairing, err)
			}

			want := (order + 1) / 2
			if len(sos.Sections) != want {
				t.Errorf("order %d pairing %v: %d sections, want %d",
					order, pairing, len(sos.Sections), want)
			}
		}
	}
}

func TestKeepOddYieldsOneFirstOrderSection(t *testing.T) {
	zpk := designOrder5Lowpass(t)

	sos, err := ZPK2SOS(zpk, PairKeepOdd)
	if err != nil {
		t.Fatal(err)
	}

	firstOrder := 0
	for _, s := range sos.Sections {
		if s.IsFirstOrder() {
			firstOrder++
		}
	}

	if firstOrder != 1 {
		t.Errorf("keep-odd: %d first-order sections, want exactly 1", firstOrder)
	}
}

func TestNearestEvenOrderHasNoFirstOrderSections(t *testing.T) {
	zpk, err := DesignZPK(6, []float64{0.3}, 0, 0,
		BandLowpass, PrototypeButterworth, DomainDigital)
	if err != nil {
		t.Fatal(err)
	}

	sos, err := ZPK2SOS(zpk, PairNearest)
	if err != nil {
		t.Fatal(err)
	}

	for i, s := range sos.Sections {
		if s.IsFirstOrder() {
			t.Errorf("section %d is first order", i)
		}
	}
}

func TestZPK2SOSGainProductPreserved(t *testing.T) {
	zpk := designOrder5Lowpass(t)

	for _, pairing := range []Pairing{PairNearest, PairKeepOdd} {
		sos, err := ZPK2SOS(zpk, pairing)
		if err != nil {
			t.Fatal(err)
		}

		back, err := SOS2ZPK(sos)
		if err != nil {
			t.Fatal(err)
		}

		if math.Abs(back.Gain-zpk.Gain) > 1e-10 {
			t.Errorf("pairing %v: gain = %v, want %v", pairing, back.Gain, zpk.Gain)
		}
	}
}

func TestSOSRoundTripPreservesPoles(t *testing.T) {
	zpk, err := DesignZPK(4, []float64{0.2}, 0, 0,
		BandLowpass, PrototypeButterworth, DomainDigital)
	if err != nil {
		t.Fatal(err)
	}

	sos, err := ZPK2SOS(zpk, PairNearest)
	if err != nil {
		t.Fatal(err)
	}

	back, err := SOS2ZPK(sos)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireRootsNear(t, back.Poles, zpk.Poles, 1e-8)
}

func TestSOSHighQSectionsLast(t *testing.T) {
	zpk, err := DesignZPK(6, []float64{0.15}, 0, 0,
		BandLowpass, PrototypeButterworth, DomainDigital)
	if err != nil {
		t.Fatal(err)
	}

	sos, err := ZPK2SOS(zpk, PairNearest)
	if err != nil {
		t.Fatal(err)
	}

	// Pole radius grows (or holds) along the cascade.
	prev := 0.0

	for i, s := range sos.Sections {
		// |A2| is the squared pole radius of a conjugate-pair section.
		r := math.Sqrt(math.Abs(s.A2))
		if r+1e-9 < prev {
			t.Errorf("section %d pole radius %v decreases below %v", i, r, prev)
		}

		prev = r
	}
}

func TestSOS2TFMatchesZPK2TF(t *testing.T) {
	zpk, err := DesignZPK(4, []float64{0.25}, 0, 0,
		BandLowpass, PrototypeButterworth, DomainDigital)
	if err != nil {
		t.Fatal(err)
	}

	want := ZPK2TF(zpk)

	sos, err := ZPK2SOS(zpk, PairNearest)
	if err != nil {
		t.Fatal(err)
	}

	got, err := SOS2TF(sos)
	if err != nil {
		t.Fatal(err)
	}

	if len(got.B) != len(want.B) || len(got.A) != len(want.A) {
		t.Fatalf("length mismatch: B %d vs %d, A %d vs %d",
			len(got.B), len(want.B), len(got.A), len(want.A))
	}

	for i := range want.B {
		if math.Abs(got.B[i]-want.B[i]) > 1e-10 {
			t.Errorf("B[%d]: got %v, want %v", i, got.B[i], want.B[i])
		}
	}

	for i := range want.A {
		if math.Abs(got.A[i]-want.A[i]) > 1e-10 {
			t.Errorf("A[%d]: got %v, want %v", i, got.A[i], want.A[i])
		}
	}
}

func TestZPK2SOSValidation(t *testing.T) {
	if _, err := ZPK2SOS(rep.ZPK{Gain: 1}, PairNearest); !errors.Is(err, ErrNoPoles) {
		t.Errorf("no poles: got %v, want ErrNoPoles", err)
	}

	mismatch := rep.ZPK{
		Zeros: []complex128{-1},
		Poles: []complex128{0.5, -0.5, 0.25},
		Gain:  1,
	}
	if _, err := ZPK2SOS(mismatch, PairNearest); !errors.Is(err, ErrCountMismatch) {
		t.Errorf("count mismatch: got %v, want ErrCountMismatch", err)
	}

	unpaired := rep.ZPK{
		Zeros: []complex128{complex(0.1, 0.9), complex(0.9, 0.1)},
		Poles: []complex128{0.5, -0.5},
		Gain:  1,
	}
	if _, err := ZPK2SOS(unpaired, PairNearest); !errors.Is(err, ErrUnpairedRoot) {
		t.Errorf("unpaired roots: got %v, want ErrUnpairedRoot", err)
	}
}

func TestSOS2ZPKEmptyInput(t *testing.T) {
	if _, err := SOS2ZPK(rep.SOS{}); !errors.Is(err, ErrEmptyFilter) {
		t.Errorf("got %v, want ErrEmptyFilter", err)
	}

	if _, err := SOS2TF(rep.SOS{}); !errors.Is(err, ErrEmptyFilter) {
		t.Errorf("got %v, want ErrEmptyFilter", err)
	}
}
