package color

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"github.com/meko-christian/algo-approx"

	"github.com/cwbudde/algo-cvnoise/dsp/core"
	"github.com/cwbudde/algo-cvnoise/dsp/window"
)

const (
	ln2  = 0.693147180559945309417232121458
	ln10 = 2.30258509299404568401799145468

	minFFTSize = 16
	// powerFloor keeps log() finite on empty bins.
	powerFloor = 1e-30
)

// ErrTooShort reports an input shorter than one analysis frame.
var ErrTooShort = errors.New("color: input shorter than one frame")

// Result holds the spectral summary of a stream.
type Result struct {
	FFTSize          int
	Window           window.Type
	Frames           int
	SlopeDBPerOctave float64 // least-squares slope of the power spectrum
	CentroidHz       float64 // power-weighted mean frequency
	LowBandDB        float64 // mean power of the lowest octave of bins
	HighBandDB       float64 // mean power of the highest octave of bins
}

// Analyzer computes Results with preallocated scratch buffers. It is not safe
// for concurrent use.
type Analyzer struct {
	cfg  core.ControlConfig
	size int
	plan *algofft.Plan[complex128]

	winType window.Type
	gain    float64
	window  []float64
	frame   []float64
	in      []complex128
	out     []complex128
	re      []float64
	im      []float64
	power   []float64
	accum   []float64
}

// NewAnalyzer returns an analyzer for frames of fftSize samples. fftSize must
// be a power of two >= 16. The tick rate of the control config sets the
// frequency axis.
func NewAnalyzer(fftSize int, opts ...core.ControlOption) (*Analyzer, error) {
	if fftSize < minFFTSize || fftSize&(fftSize-1) != 0 {
		return nil, fmt.Errorf("color: fft size must be a power of two >= %d: %d", minFFTSize, fftSize)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("color: fft plan: %w", err)
	}

	bins := fftSize/2 + 1
	a := &Analyzer{
		cfg:    core.ApplyControlOptions(opts...),
		size:   fftSize,
		plan:   plan,
		frame:  make([]float64, fftSize),
		in:     make([]complex128, fftSize),
		out:    make([]complex128, fftSize),
		re:     make([]float64, bins),
		im:     make([]float64, bins),
		power:  make([]float64, bins),
		accum:  make([]float64, bins),
	}

	if err := a.SetWindow(window.TypeHann); err != nil {
		return nil, err
	}

	return a, nil
}

// SetWindow selects the analysis window. The default is Hann.
func (a *Analyzer) SetWindow(t window.Type) error {
	w, err := window.Generate(t, a.size)
	if err != nil {
		return fmt.Errorf("color: %w", err)
	}
	gain, err := window.PowerGain(w)
	if err != nil {
		return fmt.Errorf("color: %w", err)
	}

	a.winType = t
	a.window = w
	a.gain = gain
	return nil
}

// Window returns the analysis window type.
func (a *Analyzer) Window() window.Type { return a.winType }

// FFTSize returns the frame length.
func (a *Analyzer) FFTSize() int { return a.size }

// BinHz returns the frequency spacing of spectrum bins.
func (a *Analyzer) BinHz() float64 { return a.cfg.TickRate / float64(a.size) }

// Spectrum returns the averaged power spectrum of the last Analyze call,
// bins 0..FFTSize/2. The slice is owned by the analyzer.
func (a *Analyzer) Spectrum() []float64 { return a.accum }

// Analyze estimates the spectral color of samples. Trailing samples that do
// not fill a frame are ignored.
func (a *Analyzer) Analyze(samples []float64) (Result, error) {
	frames := len(samples) / a.size
	if frames == 0 {
		return Result{}, fmt.Errorf("%w: %d < %d", ErrTooShort, len(samples), a.size)
	}

	for i := range a.accum {
		a.accum[i] = 0
	}

	for f := range frames {
		if err := a.addFrame(samples[f*a.size : (f+1)*a.size]); err != nil {
			return Result{}, err
		}
	}

	vecmath.ScaleBlock(a.accum, a.accum, 1/(float64(frames)*a.gain))

	res := Result{FFTSize: a.size, Window: a.winType, Frames: frames}
	res.SlopeDBPerOctave = a.slope()
	res.CentroidHz = a.centroid()
	res.LowBandDB, res.HighBandDB = a.bandLevels()

	return res, nil
}

func (a *Analyzer) addFrame(block []float64) error {
	mean := 0.0
	for _, v := range block {
		mean += v
	}
	mean /= float64(len(block))

	for i, v := range block {
		a.frame[i] = v - mean
	}
	vecmath.MulBlockInPlace(a.frame, a.window)

	for i, v := range a.frame {
		a.in[i] = complex(v, 0)
	}

	if err := a.plan.Forward(a.out, a.in); err != nil {
		return fmt.Errorf("color: fft: %w", err)
	}

	for i := range a.re {
		a.re[i] = real(a.out[i])
		a.im[i] = imag(a.out[i])
	}
	vecmath.Power(a.power, a.re, a.im)
	vecmath.AddBlockInPlace(a.accum, a.power)

	return nil
}

// slope fits dB = k*log2(bin) + c over bins 1..N/2 and returns k.
func (a *Analyzer) slope() float64 {
	var sx, sy, sxx, sxy float64
	n := 0
	for k := 1; k < len(a.accum); k++ {
		x := log2(float64(k))
		y := powerDB(a.accum[k])
		sx += x
		sy += y
		sxx += x * x
		sxy += x * y
		n++
	}

	nf := float64(n)
	den := nf*sxx - sx*sx
	if den == 0 {
		return 0
	}
	return (nf*sxy - sx*sy) / den
}

func (a *Analyzer) centroid() float64 {
	var num, den float64
	binHz := a.BinHz()
	for k := 1; k < len(a.accum); k++ {
		num += float64(k) * binHz * a.accum[k]
		den += a.accum[k]
	}
	if den == 0 {
		return 0
	}
	return num / den
}

// bandLevels returns the mean power, in dB, of the lowest and highest octave
// of non-DC bins.
func (a *Analyzer) bandLevels() (low, high float64) {
	last := len(a.accum) - 1
	return bandDB(a.accum[1:3]), bandDB(a.accum[last/2+1 : last+1])
}

func bandDB(bins []float64) float64 {
	if len(bins) == 0 {
		return math.Inf(-1)
	}
	sum := 0.0
	for _, p := range bins {
		sum += p
	}
	return powerDB(sum / float64(len(bins)))
}

func powerDB(p float64) float64 {
	if p < powerFloor {
		p = powerFloor
	}
	return 10 * approx.FastLog(p) / ln10
}

func log2(x float64) float64 {
	return approx.FastLog(x) / ln2
}
