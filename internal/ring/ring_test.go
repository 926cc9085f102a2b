package ring

import (
	"math"
	"testing"
)

func TestWriteAdvancesModuloSpan(t *testing.T) {
	var b Buffer
	for i := range 5 {
		b.Write(uint64(i+1), 4)
	}

	if b.Cursor() != 1 {
		t.Fatalf("cursor = %d, want 1", b.Cursor())
	}
	if b.At(0) != 5 || b.At(3) != 4 {
		t.Fatalf("slots = %d..%d, want 5..4", b.At(0), b.At(3))
	}
}

func TestWriteToleratesShrinkingSpan(t *testing.T) {
	var b Buffer
	for i := range 100 {
		b.Write(uint64(i), Capacity)
	}

	b.Write(7, 10)
	if b.At(100) != 7 {
		t.Fatalf("slot 100 = %d, want 7", b.At(100))
	}
	if b.Cursor() != 101%10 {
		t.Fatalf("cursor = %d, want %d", b.Cursor(), 101%10)
	}

	b.Write(1, 0)
	if b.Cursor() != 0 {
		t.Fatalf("cursor = %d, want 0 for pinned span", b.Cursor())
	}
}

func TestTermMeanTruncatesPerTerm(t *testing.T) {
	var b Buffer
	for _, v := range []uint64{4, 4, 4, 4} {
		b.Write(v, Capacity)
	}
	if got := b.TermMean(4); got != 4 {
		t.Fatalf("TermMean(4) = %d, want 4", got)
	}

	b.Reset()
	for _, v := range []uint64{3, 3, 3, 3} {
		b.Write(v, Capacity)
	}
	if got := b.TermMean(4); got != 0 {
		t.Fatalf("TermMean(4) = %d, want 0 (3/4 truncates per term)", got)
	}
}

func TestTermMeanNeverOverflows(t *testing.T) {
	var b Buffer
	b.Fill(math.MaxUint64)

	for _, n := range []int{1, 3, 64, Capacity} {
		got := b.TermMean(n)
		want := (math.MaxUint64 / uint64(n)) * uint64(n)
		if got != want {
			t.Fatalf("TermMean(%d) = %d, want %d", n, got, want)
		}
	}
}
