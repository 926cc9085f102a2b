package testutil

import (
	"math"
	"testing"
)

type countingSource struct{ n uint64 }

func (c *countingSource) Next() uint64 { c.n++; return c.n }
func (c *countingSource) Max() uint64  { return 4 }

func TestDrawNormalizes(t *testing.T) {
	got := Draw(&countingSource{}, 4)
	want := []float64{0.25, 0.5, 0.75, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func TestDrawRaw(t *testing.T) {
	RequireUintsEqual(t, DrawRaw(&countingSource{}, 3), []uint64{1, 2, 3})
}

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1.0, 48)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}
	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	for i, v := range s {
		if v < -1 || v > 1 {
			t.Fatalf("s[%d] = %v out of range", i, v)
		}
	}
}

func TestDC(t *testing.T) {
	for i, v := range DC(0.25, 8) {
		if v != 0.25 {
			t.Fatalf("index %d: %v", i, v)
		}
	}
}
