package testutil

import (
	"math"
	"testing"
)

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireCodesInRange fails t if any output code lies outside [0, fullScale].
func RequireCodesInRange(t *testing.T, codes []int, fullScale int) {
	t.Helper()
	for i, c := range codes {
		if c < 0 || c > fullScale {
			t.Fatalf("index %d: code %d outside [0, %d]", i, c, fullScale)
		}
	}
}

// RequireUintsEqual fails t at the first differing element.
func RequireUintsEqual(t *testing.T, got, want []uint64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %d, want %d", i, got[i], want[i])
		}
	}
}
