package engine

import (
	"fmt"
	"strings"

	"github.com/cwbudde/algo-cvnoise/dsp/core"
	"github.com/cwbudde/algo-cvnoise/dsp/filter/average"
	"github.com/cwbudde/algo-cvnoise/dsp/noise"
)

// DefaultSeed seeds every source of a default engine.
const DefaultSeed = 12345

// Shaper selects the processing applied to channel 1.
type Shaper int

const (
	// ShaperMovingAverage feeds the raw value through the moving average.
	ShaperMovingAverage Shaper = iota
	// ShaperExponential feeds the raw value through the one-pole smoother.
	ShaperExponential
	// ShaperLadder feeds the raw value through the four-stage ladder.
	ShaperLadder
	// ShaperConvolution feeds the raw value through the 128-tap window.
	ShaperConvolution
	// ShaperTargetSeek replaces the raw value with the target-seek walk.
	ShaperTargetSeek

	shaperCount // sentinel for validation
)

var shaperNames = [shaperCount]string{
	"average", "exponential", "ladder", "convolution", "seek",
}

// Shapers returns every shaper in declaration order.
func Shapers() []Shaper {
	out := make([]Shaper, shaperCount)
	for i := range out {
		out[i] = Shaper(i)
	}
	return out
}

// String returns the short name of the shaper.
func (s Shaper) String() string {
	if s.Valid() {
		return shaperNames[s]
	}
	return fmt.Sprintf("Shaper(%d)", int(s))
}

// Valid reports whether s is a known shaper.
func (s Shaper) Valid() bool {
	return s >= 0 && s < shaperCount
}

// ParseShaper resolves a shaper from its short name (case-insensitive).
func ParseShaper(name string) (Shaper, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range shaperNames {
		if n == name {
			return Shaper(i), nil
		}
	}
	return 0, fmt.Errorf("engine: unknown shaper %q", name)
}

type sourceConfig struct {
	kind noise.Kind
	seed uint64
}

// Option mutates constructor configuration.
type Option func(*config) error

type config struct {
	primary   sourceConfig
	secondary sourceConfig
	seek      sourceConfig
	shaper    Shaper
	fullScale int
	wrap      average.CursorWrap
}

func defaultConfig() config {
	return config{
		primary:   sourceConfig{kind: noise.KindLCG32, seed: DefaultSeed},
		secondary: sourceConfig{kind: noise.KindXorShift32, seed: DefaultSeed},
		seek:      sourceConfig{kind: noise.KindLCG32, seed: DefaultSeed},
		shaper:    ShaperMovingAverage,
		fullScale: core.FullScale5V,
		wrap:      average.WrapCapacity,
	}
}

// WithPrimary selects the source that drives both channels. For 32-bit kinds
// the seed must fit in 32 bits; New reports noise.ErrSeedRange otherwise.
func WithPrimary(kind noise.Kind, seed uint64) Option {
	return func(cfg *config) error {
		if !kind.Valid() {
			return fmt.Errorf("engine: invalid primary kind: %d", kind)
		}
		cfg.primary = sourceConfig{kind: kind, seed: seed}
		return nil
	}
}

// WithSecondary selects the source whose range scales channel 1. Seed rules
// match WithPrimary.
func WithSecondary(kind noise.Kind, seed uint64) Option {
	return func(cfg *config) error {
		if !kind.Valid() {
			return fmt.Errorf("engine: invalid secondary kind: %d", kind)
		}
		cfg.secondary = sourceConfig{kind: kind, seed: seed}
		return nil
	}
}

// WithSeekSource selects the source that draws target-seek targets. Seed rules
// match WithPrimary.
func WithSeekSource(kind noise.Kind, seed uint64) Option {
	return func(cfg *config) error {
		if !kind.Valid() {
			return fmt.Errorf("engine: invalid seek kind: %d", kind)
		}
		cfg.seek = sourceConfig{kind: kind, seed: seed}
		return nil
	}
}

// WithShaper selects the channel-1 shaper.
func WithShaper(s Shaper) Option {
	return func(cfg *config) error {
		if !s.Valid() {
			return fmt.Errorf("engine: invalid shaper: %d", s)
		}
		cfg.shaper = s
		return nil
	}
}

// WithFullScale sets the output code that represents full scale.
func WithFullScale(fullScale int) Option {
	return func(cfg *config) error {
		if fullScale <= 0 {
			return fmt.Errorf("engine: full scale must be > 0: %d", fullScale)
		}
		cfg.fullScale = fullScale
		return nil
	}
}

// WithControlConfig applies the full scale of a shared control config.
func WithControlConfig(cc core.ControlConfig) Option {
	return WithFullScale(cc.FullScale)
}

// WithAverageWrap selects the moving-average cursor wrap mode.
func WithAverageWrap(wrap average.CursorWrap) Option {
	return func(cfg *config) error {
		if wrap != average.WrapCapacity && wrap != average.WrapWindow {
			return fmt.Errorf("engine: invalid cursor wrap: %d", wrap)
		}
		cfg.wrap = wrap
		return nil
	}
}
