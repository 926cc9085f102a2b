package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		min      float64
		max      float64
		expected float64
	}{
		{name: "inside", value: 0.5, min: 0, max: 1, expected: 0.5},
		{name: "below", value: -1, min: 0, max: 1, expected: 0},
		{name: "above", value: 2, min: 0, max: 1, expected: 1},
		{name: "swapped", value: 2, min: 1, max: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clamp(tt.value, tt.min, tt.max)
			if got != tt.expected {
				t.Fatalf("Clamp() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestStepClampPinsAtBounds(t *testing.T) {
	v := 0.5
	for range 200 {
		v = StepClamp(v, -1, 0.01, 0.01, 0.99)
	}
	if v != 0.01 {
		t.Fatalf("after 200 decrements: got %v want 0.01", v)
	}

	for range 200 {
		v = StepClamp(v, 1, 0.01, 0.01, 0.99)
	}
	if v != 0.99 {
		t.Fatalf("after 200 increments: got %v want 0.99", v)
	}
}

func TestStepClampStaysOnGrid(t *testing.T) {
	v := 0.9
	for range 37 {
		v = StepClamp(v, -1, 0.01, 0.01, 0.99)
	}
	if !NearlyEqual(v, 0.53, 1e-12) {
		t.Fatalf("got %v want 0.53", v)
	}
}

func TestStepClampInt(t *testing.T) {
	size := 1
	for range 200 {
		size = StepClampInt(size, -1, 1, 1, 128)
	}
	if size != 1 {
		t.Fatalf("size = %d, want 1", size)
	}

	size = StepClampInt(120, 3, 4, 1, 128)
	if size != 128 {
		t.Fatalf("size = %d, want 128", size)
	}
}

func TestStepClampIntExtremeDirection(t *testing.T) {
	tests := []struct {
		direction int
		step      int
		want      int
	}{
		{direction: math.MaxInt, step: 1, want: 128},
		{direction: math.MinInt, step: 1, want: 1},
		{direction: math.MaxInt, step: 7, want: 128},
		{direction: math.MinInt + 1, step: 7, want: 1},
	}

	for _, tt := range tests {
		if got := StepClampInt(64, tt.direction, tt.step, 1, 128); got != tt.want {
			t.Errorf("StepClampInt(64, %d, %d) = %d, want %d", tt.direction, tt.step, got, tt.want)
		}
	}
}

func TestSaturateUint(t *testing.T) {
	tests := []struct {
		in   float64
		want uint64
	}{
		{in: -5, want: 0},
		{in: math.NaN(), want: 0},
		{in: 0.999, want: 0},
		{in: 12.7, want: 12},
		{in: 4294967295.9, want: 4294967295},
		{in: 1e30, want: math.MaxUint64},
		{in: math.Inf(1), want: math.MaxUint64},
	}

	for _, tt := range tests {
		if got := SaturateUint(tt.in); got != tt.want {
			t.Fatalf("SaturateUint(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestSaturatingStep(t *testing.T) {
	const step = math.MaxUint64 / 255

	tests := []struct {
		name string
		v    uint64
		n    int
		step uint64
		lo   uint64
		hi   uint64
		want uint64
	}{
		{name: "inside", v: 10, n: 5, step: 1, lo: 1, hi: 100, want: 15},
		{name: "multi step", v: 10, n: -2, step: 4, lo: 1, hi: 100, want: 2},
		{name: "top", v: 98, n: 5, step: 1, lo: 1, hi: 100, want: 100},
		{name: "bottom", v: 3, n: -5, step: 1, lo: 1, hi: 100, want: 1},
		{name: "max int", v: 50, n: math.MaxInt, step: 3, lo: 1, hi: 100, want: 100},
		{name: "min int", v: 50, n: math.MinInt, step: 3, lo: 1, hi: 100, want: 1},
		{name: "product overflows", v: step, n: 1 << 40, step: step, lo: step, hi: math.MaxUint64, want: math.MaxUint64},
		{name: "full range", v: math.MaxUint64 - 1, n: 9, step: 1, lo: 0, hi: math.MaxUint64, want: math.MaxUint64},
		{name: "zero step clamps", v: 0, n: 3, step: 0, lo: 7, hi: 9, want: 7},
		{name: "zero n clamps", v: 20, n: 0, step: 1, lo: 7, hi: 9, want: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SaturatingStep(tt.v, tt.n, tt.step, tt.lo, tt.hi); got != tt.want {
				t.Fatalf("SaturatingStep() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
}
