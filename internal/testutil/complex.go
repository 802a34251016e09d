package testutil

import (
	"math"
	"math/cmplx"
	"testing"
)

// RequireComplexSliceNear fails t if got and want differ in length or if
// any element pair exceeds eps in complex modulus.
func RequireComplexSliceNear(t *testing.T, got, want []complex128, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := cmplx.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireRootsNear fails t unless got matches want as a multiset: every
// expected root must have a distinct recovered root within eps. Order is
// ignored, which suits eigenvalue-based root finders whose output order is
// unspecified.
func RequireRootsNear(t *testing.T, got, want []complex128, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("root count mismatch: got %d, want %d", len(got), len(want))
	}

	used := make([]bool, len(got))
	for _, w := range want {
		best := -1
		bestDist := math.MaxFloat64
		for j, g := range got {
			if used[j] {
				continue
			}
			if d := cmplx.Abs(g - w); d < bestDist {
				bestDist = d
				best = j
			}
		}
		if best < 0 || bestDist > eps {
			t.Fatalf("root %v not matched (closest unused at distance %v)", w, bestDist)
		}
		used[best] = true
	}
}
