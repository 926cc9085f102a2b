// Package onepole provides a single-pole exponential smoother for raw
// unsigned noise samples.
//
// The recurrence is y[n] = c*x[n] + (1-c)*y[n-1]. The previous output is kept
// in float64 so that small coefficients do not stall on integer truncation;
// returned samples are truncated and saturated into the unsigned range.
package onepole

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-cvnoise/dsp/core"
)

const (
	// MinCoefficient is the smallest coefficient.
	MinCoefficient = 0.01
	// MaxCoefficient is the largest coefficient.
	MaxCoefficient = 0.99
	// DefaultCoefficient is the coefficient of a new filter.
	DefaultCoefficient = 0.9
	// CoefficientStep is the change per encoder detent.
	CoefficientStep = 0.01
)

// Option mutates constructor configuration.
type Option func(*config) error

type config struct {
	coefficient float64
}

// WithCoefficient sets the smoothing coefficient in [0.01, 0.99].
func WithCoefficient(c float64) Option {
	return func(cfg *config) error {
		if err := validateCoefficient(c); err != nil {
			return err
		}
		cfg.coefficient = c
		return nil
	}
}

// Exponential is a single-pole IIR low-pass.
type Exponential struct {
	coefficient float64
	last        float64
}

// New constructs an exponential smoother.
func New(opts ...Option) (*Exponential, error) {
	cfg := config{coefficient: DefaultCoefficient}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &Exponential{coefficient: cfg.coefficient}, nil
}

// Coefficient returns the smoothing coefficient.
func (e *Exponential) Coefficient() float64 { return e.coefficient }

// SetCoefficient updates the coefficient. State is kept.
func (e *Exponential) SetCoefficient(c float64) error {
	if err := validateCoefficient(c); err != nil {
		return err
	}
	e.coefficient = c
	return nil
}

// NudgeCoefficient moves the coefficient by delta steps, pinned to its range.
func (e *Exponential) NudgeCoefficient(delta int) {
	e.coefficient = core.StepClamp(e.coefficient, delta, CoefficientStep, MinCoefficient, MaxCoefficient)
}

// Last returns the unquantized previous output.
func (e *Exponential) Last() float64 { return e.last }

// Process filters one sample.
func (e *Exponential) Process(v uint64) uint64 {
	e.last = e.coefficient*float64(v) + (1-e.coefficient)*e.last
	return core.SaturateUint(e.last)
}

// ProcessInPlace filters buf in place.
func (e *Exponential) ProcessInPlace(buf []uint64) {
	for i := range buf {
		buf[i] = e.Process(buf[i])
	}
}

// Reset clears the filter memory.
func (e *Exponential) Reset() { e.last = 0 }

func validateCoefficient(c float64) error {
	if math.IsNaN(c) || c < MinCoefficient || c > MaxCoefficient {
		return fmt.Errorf("onepole: coefficient must be in [%g, %g]: %v", MinCoefficient, MaxCoefficient, c)
	}
	return nil
}
