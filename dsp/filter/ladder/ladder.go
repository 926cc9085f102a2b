package ladder

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-cvnoise/dsp/core"
)

const (
	// DefaultCoefficient and DefaultResonance are the settings of a new filter.
	DefaultCoefficient = 0.9
	DefaultResonance   = 0.5

	// MinCoefficient and MaxCoefficient bound the shared stage coefficient.
	MinCoefficient = 0.01
	MaxCoefficient = 0.99
	// MinResonance and MaxResonance bound the feedback amount.
	MinResonance = 0.0
	MaxResonance = 0.99
	// ParamStep is the change per encoder detent for both parameters.
	ParamStep = 0.01
)

// Option mutates constructor configuration.
type Option func(*config) error

type config struct {
	coefficient float64
	resonance   float64
}

// WithCoefficient sets the stage coefficient in [0.01, 0.99].
func WithCoefficient(c float64) Option {
	return func(cfg *config) error {
		if err := validateRange(c, MinCoefficient, MaxCoefficient, "coefficient"); err != nil {
			return err
		}
		cfg.coefficient = c
		return nil
	}
}

// WithResonance sets the feedback amount in [0, 0.99].
func WithResonance(r float64) Option {
	return func(cfg *config) error {
		if err := validateRange(r, MinResonance, MaxResonance, "resonance"); err != nil {
			return err
		}
		cfg.resonance = r
		return nil
	}
}

// State contains the four stage outputs.
type State struct {
	Stage [4]uint64
}

// Ladder is a four-stage cascaded one-pole filter with output feedback.
type Ladder struct {
	coefficient float64
	resonance   float64
	state       State
}

// New constructs a ladder filter.
func New(opts ...Option) (*Ladder, error) {
	cfg := config{coefficient: DefaultCoefficient, resonance: DefaultResonance}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Ladder{coefficient: cfg.coefficient, resonance: cfg.resonance}, nil
}

// Coefficient returns the shared stage coefficient.
func (l *Ladder) Coefficient() float64 { return l.coefficient }

// Resonance returns the feedback amount.
func (l *Ladder) Resonance() float64 { return l.resonance }

// SetCoefficient updates the stage coefficient.
func (l *Ladder) SetCoefficient(c float64) error {
	if err := validateRange(c, MinCoefficient, MaxCoefficient, "coefficient"); err != nil {
		return err
	}
	l.coefficient = c
	return nil
}

// SetResonance updates the feedback amount.
func (l *Ladder) SetResonance(r float64) error {
	if err := validateRange(r, MinResonance, MaxResonance, "resonance"); err != nil {
		return err
	}
	l.resonance = r
	return nil
}

// NudgeCoefficient moves the coefficient by delta steps, pinned to its range.
func (l *Ladder) NudgeCoefficient(delta int) {
	l.coefficient = core.StepClamp(l.coefficient, delta, ParamStep, MinCoefficient, MaxCoefficient)
}

// NudgeResonance moves the resonance by delta steps, pinned to its range.
func (l *Ladder) NudgeResonance(delta int) {
	l.resonance = core.StepClamp(l.resonance, delta, ParamStep, MinResonance, MaxResonance)
}

// State returns a copy of the stage outputs.
func (l *Ladder) State() State { return l.state }

// SetState restores saved stage outputs.
func (l *Ladder) SetState(s State) { l.state = s }

// Reset clears all stages.
func (l *Ladder) Reset() { l.state = State{} }

// Process filters one sample.
func (l *Ladder) Process(v uint64) uint64 {
	s := &l.state
	c := l.coefficient

	x := core.SaturateUint(float64(v) - float64(s.Stage[3])*l.resonance)
	for i := range s.Stage {
		s.Stage[i] = core.SaturateUint(c*float64(x) + (1-c)*float64(s.Stage[i]))
		x = s.Stage[i]
	}

	return s.Stage[3]
}

// ProcessInPlace filters buf in place.
func (l *Ladder) ProcessInPlace(buf []uint64) {
	for i := range buf {
		buf[i] = l.Process(buf[i])
	}
}

func validateRange(value, min, max float64, name string) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("ladder: %s must be finite: %v", name, value)
	}
	if value < min || value > max {
		return fmt.Errorf("ladder: %s must be in [%g, %g]: %f", name, min, max, value)
	}
	return nil
}
