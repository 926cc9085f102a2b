package color

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-cvnoise/dsp/core"
	"github.com/cwbudde/algo-cvnoise/dsp/filter/onepole"
	"github.com/cwbudde/algo-cvnoise/dsp/noise"
	"github.com/cwbudde/algo-cvnoise/dsp/window"
	"github.com/cwbudde/algo-cvnoise/internal/testutil"
)

func mustAnalyzer(t *testing.T, size int, opts ...core.ControlOption) *Analyzer {
	t.Helper()
	a, err := NewAnalyzer(size, opts...)
	if err != nil {
		t.Fatalf("NewAnalyzer() error = %v", err)
	}
	return a
}

func TestNewAnalyzerValidation(t *testing.T) {
	for _, size := range []int{0, 8, 100, 1000} {
		if _, err := NewAnalyzer(size); err == nil {
			t.Fatalf("expected error for fft size %d", size)
		}
	}
}

func TestAnalyzeTooShort(t *testing.T) {
	a := mustAnalyzer(t, 64)
	if _, err := a.Analyze(make([]float64, 63)); !errors.Is(err, ErrTooShort) {
		t.Fatalf("Analyze() error = %v, want ErrTooShort", err)
	}
}

func TestWhiteNoiseIsFlat(t *testing.T) {
	src := noise.NewLCG32Default()
	samples := testutil.Draw(src, 256*64)

	a := mustAnalyzer(t, 256)
	res, err := a.Analyze(samples)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if res.Frames != 64 || res.FFTSize != 256 {
		t.Fatalf("frames=%d size=%d", res.Frames, res.FFTSize)
	}
	if math.Abs(res.SlopeDBPerOctave) > 1.5 {
		t.Fatalf("white slope = %.2f dB/oct, want ~0", res.SlopeDBPerOctave)
	}
	if math.Abs(res.LowBandDB-res.HighBandDB) > 3 {
		t.Fatalf("band levels differ: low %.2f high %.2f", res.LowBandDB, res.HighBandDB)
	}
	testutil.RequireFinite(t, a.Spectrum())
}

func TestSmoothedNoiseTiltsDown(t *testing.T) {
	src := noise.NewLCG32Default()
	e, err := onepole.New(onepole.WithCoefficient(0.05))
	if err != nil {
		t.Fatalf("onepole.New() error = %v", err)
	}

	raw := make([]float64, 256*64)
	for i := range raw {
		raw[i] = float64(e.Process(src.Next())) / float64(src.Max())
	}

	a := mustAnalyzer(t, 256)
	res, err := a.Analyze(raw)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}

	if res.SlopeDBPerOctave > -3 {
		t.Fatalf("smoothed slope = %.2f dB/oct, want < -3", res.SlopeDBPerOctave)
	}
	if res.LowBandDB <= res.HighBandDB {
		t.Fatalf("low band %.2f not above high band %.2f", res.LowBandDB, res.HighBandDB)
	}
}

func TestCentroidOfTone(t *testing.T) {
	const tickRate = 1024.0
	a := mustAnalyzer(t, 256, core.WithTickRate(tickRate))

	freq := 32 * a.BinHz()
	samples := testutil.DeterministicSine(freq, tickRate, 1, 256*8)

	res, err := a.Analyze(samples)
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if math.Abs(res.CentroidHz-freq) > a.BinHz() {
		t.Fatalf("centroid = %.2f Hz, want %.2f", res.CentroidHz, freq)
	}
}

func TestSilenceStaysFinite(t *testing.T) {
	a := mustAnalyzer(t, 16)
	res, err := a.Analyze(testutil.DC(0.5, 64))
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if res.CentroidHz != 0 || math.IsNaN(res.SlopeDBPerOctave) {
		t.Fatalf("silence result = %+v", res)
	}
}

func TestSetWindow(t *testing.T) {
	a := mustAnalyzer(t, 128)
	if a.Window() != window.TypeHann {
		t.Fatalf("default window = %s, want hann", a.Window())
	}

	if err := a.SetWindow(window.Type(-1)); err == nil {
		t.Fatal("expected error for invalid window")
	}
	if a.Window() != window.TypeHann {
		t.Fatal("failed SetWindow changed the window")
	}

	samples := testutil.Draw(noise.NewLCG32Default(), 128*64)
	levels := make(map[window.Type]float64)
	for _, w := range []window.Type{window.TypeRectangular, window.TypeHann, window.TypeBlackmanHarris} {
		if err := a.SetWindow(w); err != nil {
			t.Fatalf("SetWindow(%s) error = %v", w, err)
		}
		res, err := a.Analyze(samples)
		if err != nil {
			t.Fatalf("Analyze() error = %v", err)
		}
		if res.Window != w {
			t.Fatalf("result window = %s, want %s", res.Window, w)
		}
		levels[w] = res.HighBandDB
	}

	// power-gain normalization keeps the broadband level window-independent
	ref := levels[window.TypeRectangular]
	for w, l := range levels {
		if math.Abs(l-ref) > 1 {
			t.Errorf("%s high band %.2f dB, rectangular %.2f dB", w, l, ref)
		}
	}
}
