package convolution

import (
	"testing"

	"github.com/cwbudde/algo-cvnoise/dsp/filter/average"
	"github.com/cwbudde/algo-cvnoise/dsp/noise"
	"github.com/cwbudde/algo-cvnoise/internal/testutil"
)

func TestMatchesFullWindowAverage(t *testing.T) {
	c := New()
	if err := c.SetKernel([]uint64{1, 2, 3}); err != nil {
		t.Fatalf("SetKernel() error = %v", err)
	}

	m, err := average.New(average.WithSize(Taps))
	if err != nil {
		t.Fatalf("average.New() error = %v", err)
	}

	src := noise.NewXorShift32Default()
	for i := range 1000 {
		v := src.Next()
		if got, want := c.Process(v), m.Process(v); got != want {
			t.Fatalf("step %d: got %d want %d", i, got, want)
		}
	}
}

func TestKernelStoredButUnused(t *testing.T) {
	c := New()
	taps := make([]uint64, Taps)
	for i := range taps {
		taps[i] = uint64(i)
	}
	if err := c.SetKernel(taps); err != nil {
		t.Fatalf("SetKernel() error = %v", err)
	}
	if k := c.Kernel(); k[5] != 5 || k[Taps-1] != Taps-1 {
		t.Fatalf("kernel not stored: %v", k[:8])
	}

	if err := c.SetKernel(make([]uint64, Taps+1)); err == nil {
		t.Fatal("expected error for oversized kernel")
	}

	if got := c.Process(Taps * 10); got != 10 {
		t.Fatalf("Process() = %d, want 10", got)
	}
}

func TestResetKeepsKernel(t *testing.T) {
	c := New()
	if err := c.SetKernel([]uint64{9}); err != nil {
		t.Fatalf("SetKernel() error = %v", err)
	}
	c.Process(1 << 20)
	c.Reset()

	if got := c.Process(0); got != 0 {
		t.Fatalf("Process(0) after reset = %d, want 0", got)
	}
	if c.Kernel()[0] != 9 {
		t.Fatal("kernel cleared by reset")
	}
}

func TestProcessInPlaceMatchesProcess(t *testing.T) {
	raw := testutil.DrawRaw(noise.NewLCG32Default(), 300)

	want := make([]uint64, len(raw))
	ref := New()
	for i, v := range raw {
		want[i] = ref.Process(v)
	}

	got := append([]uint64(nil), raw...)
	New().ProcessInPlace(got)
	testutil.RequireUintsEqual(t, got, want)
}
