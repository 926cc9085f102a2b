package engine

import (
	"math"

	"github.com/cwbudde/algo-cvnoise/dsp/filter/average"
	"github.com/cwbudde/algo-cvnoise/dsp/filter/convolution"
	"github.com/cwbudde/algo-cvnoise/dsp/filter/ladder"
	"github.com/cwbudde/algo-cvnoise/dsp/filter/onepole"
	"github.com/cwbudde/algo-cvnoise/dsp/noise"
)

// Channels is the number of outputs written per tick.
const Channels = 2

// Edit modes select which ladder parameter the encoder moves.
const (
	ModeLadderCoefficient = 0
	ModeLadderResonance   = 1

	modeCount = 2
)

// Frame holds the two scaled outputs of one tick.
type Frame [Channels]int

// Sink receives scaled channel values.
type Sink interface {
	Out(channel, value int)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(channel, value int)

// Out calls f(channel, value).
func (f SinkFunc) Out(channel, value int) { f(channel, value) }

// Params is a snapshot of the live-editable parameters.
type Params struct {
	Mode              int
	Shaper            Shaper
	FullScale         int
	Slope             uint64
	AverageSize       int
	ExpCoefficient    float64
	LadderCoefficient float64
	LadderResonance   float64
}

// Engine is the two-channel noise voice. It owns one primary, one secondary
// and one target-seek source; any member of the generator family fills each
// role through WithPrimary, WithSecondary and WithSeekSource.
type Engine struct {
	cfg config

	primary   noise.Source
	secondary noise.Source
	seek      *noise.TargetSeek

	avg    *average.MovingAverage
	exp    *onepole.Exponential
	ladder *ladder.Ladder
	conv   *convolution.Convolution

	mode  int
	ticks uint64
}

// New constructs an engine with default parameters.
func New(opts ...Option) (*Engine, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	e := &Engine{cfg: cfg}

	var err error
	if e.primary, err = noise.NewSource(cfg.primary.kind, cfg.primary.seed); err != nil {
		return nil, err
	}
	if e.secondary, err = noise.NewSource(cfg.secondary.kind, cfg.secondary.seed); err != nil {
		return nil, err
	}

	seekSrc, err := noise.NewSource(cfg.seek.kind, cfg.seek.seed)
	if err != nil {
		return nil, err
	}
	if e.seek, err = noise.NewTargetSeek(seekSrc); err != nil {
		return nil, err
	}

	if e.avg, err = average.New(average.WithCursorWrap(cfg.wrap)); err != nil {
		return nil, err
	}
	if e.exp, err = onepole.New(); err != nil {
		return nil, err
	}
	if e.ladder, err = ladder.New(); err != nil {
		return nil, err
	}
	e.conv = convolution.New()

	return e, nil
}

// Start restores default parameters and clears filter memory, as on applet
// activation. Generators keep their position in the sequence.
func (e *Engine) Start() {
	e.mode = ModeLadderCoefficient
	e.ticks = 0

	e.seek.SetSlope(e.seek.DefaultSlope())

	e.avg.Reset()
	_ = e.avg.SetSize(average.DefaultSize)

	e.exp.Reset()
	_ = e.exp.SetCoefficient(onepole.DefaultCoefficient)

	e.ladder.Reset()
	_ = e.ladder.SetCoefficient(ladder.DefaultCoefficient)
	_ = e.ladder.SetResonance(ladder.DefaultResonance)

	e.conv.Reset()
}

// Tick advances the voice by one control period and returns both outputs.
func (e *Engine) Tick() Frame {
	raw := e.primary.Next()

	var f Frame
	f[0] = Scale(raw, e.primary.Max(), e.cfg.fullScale)
	f[1] = Scale(e.shape(raw), e.secondary.Max(), e.cfg.fullScale)
	e.ticks++

	return f
}

// Controller runs one tick and writes both channels to sink.
func (e *Engine) Controller(sink Sink) Frame {
	f := e.Tick()
	for ch, v := range f {
		sink.Out(ch, v)
	}
	return f
}

// Render fills dst with consecutive frames.
func (e *Engine) Render(dst []Frame) {
	for i := range dst {
		dst[i] = e.Tick()
	}
}

func (e *Engine) shape(raw uint64) uint64 {
	switch e.cfg.shaper {
	case ShaperExponential:
		return e.exp.Process(raw)
	case ShaperLadder:
		return e.ladder.Process(raw)
	case ShaperConvolution:
		return e.conv.Process(raw)
	case ShaperTargetSeek:
		return e.seek.Next()
	default:
		return e.avg.Process(raw)
	}
}

// OnButtonPress advances the edit mode, wrapping after the last mode.
func (e *Engine) OnButtonPress() {
	e.mode = (e.mode + 1) % modeCount
}

// OnEncoderMove applies one encoder event. Every event moves the slope, the
// average size, and the exponential coefficient together, plus the ladder
// coefficient or resonance depending on the edit mode. All values are
// pinned to their ranges.
func (e *Engine) OnEncoderMove(delta int) {
	if delta == 0 {
		return
	}

	e.seek.NudgeSlope(delta)
	e.avg.NudgeSize(delta)
	e.exp.NudgeCoefficient(delta)

	if e.mode == ModeLadderCoefficient {
		e.ladder.NudgeCoefficient(delta)
	} else {
		e.ladder.NudgeResonance(delta)
	}
}

// Mode returns the current edit mode.
func (e *Engine) Mode() int { return e.mode }

// Ticks returns the number of ticks since construction or Start.
func (e *Engine) Ticks() uint64 { return e.ticks }

// Shaper returns the channel-1 shaper.
func (e *Engine) Shaper() Shaper { return e.cfg.shaper }

// FullScale returns the output code that represents full scale.
func (e *Engine) FullScale() int { return e.cfg.fullScale }

// Params returns a snapshot of the live-editable parameters.
func (e *Engine) Params() Params {
	return Params{
		Mode:              e.mode,
		Shaper:            e.cfg.shaper,
		FullScale:         e.cfg.fullScale,
		Slope:             e.seek.Slope(),
		AverageSize:       e.avg.Size(),
		ExpCoefficient:    e.exp.Coefficient(),
		LadderCoefficient: e.ladder.Coefficient(),
		LadderResonance:   e.ladder.Resonance(),
	}
}

// OnDataRequest returns the persisted settings word. No settings are
// persisted yet, so it is always zero.
func (e *Engine) OnDataRequest() uint64 { return 0 }

// OnDataReceive restores settings from a persisted word. No settings are
// persisted yet, so the word is ignored.
func (e *Engine) OnDataReceive(uint64) {}

// Scale maps value from [0, domainMax] onto [0, targetMax], rounding to the
// nearest code.
func Scale(value, domainMax uint64, targetMax int) int {
	if domainMax == 0 || targetMax <= 0 {
		return 0
	}

	scaled := math.Round(float64(value) / float64(domainMax) * float64(targetMax))
	if scaled <= 0 {
		return 0
	}
	if scaled >= float64(targetMax) {
		return targetMax
	}
	return int(scaled)
}
