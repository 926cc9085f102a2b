package noise

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-cvnoise/dsp/core"
)

// defaultSlopeSteps is the initial slope in units of SlopeStep.
const defaultSlopeSteps = 5

// slopeDivisions splits the source range into encoder-sized slope steps.
const slopeDivisions = 255

// TargetSeekState is a snapshot of a TargetSeek walker.
type TargetSeekState struct {
	Value     uint64
	Target    uint64
	Direction int
	Slope     uint64
}

// TargetSeek slews a value toward random targets drawn from a Source.
//
// The value moves by Slope per call. When it reaches the target it snaps to
// it, reverses, and draws the next target from the opposite half of the range:
// the upper half while rising, the lower half while falling.
type TargetSeek struct {
	src   Source
	max   uint64
	state TargetSeekState
}

// NewTargetSeek wraps src. The first target is drawn immediately; the walker
// starts at zero, rising, with a slope of five SlopeSteps.
func NewTargetSeek(src Source) (*TargetSeek, error) {
	if src == nil {
		return nil, errors.New("noise: target seek requires a source")
	}

	t := &TargetSeek{src: src, max: src.Max()}
	t.state = TargetSeekState{
		Target:    src.Next(),
		Direction: 1,
	}
	t.state.Slope = t.DefaultSlope()

	return t, nil
}

// Max returns the maximum value of the wrapped source.
func (t *TargetSeek) Max() uint64 { return t.max }

// Bits returns the width of the wrapped source.
func (t *TargetSeek) Bits() uint8 { return t.src.Bits() }

// Slope returns the per-call step.
func (t *TargetSeek) Slope() uint64 { return t.state.Slope }

// SetSlope replaces the per-call step. A zero slope freezes the walker.
func (t *TargetSeek) SetSlope(slope uint64) { t.state.Slope = slope }

// SlopeStep returns the slope increment applied per encoder detent.
func (t *TargetSeek) SlopeStep() uint64 { return t.max / slopeDivisions }

// DefaultSlope returns the slope of a freshly constructed walker.
func (t *TargetSeek) DefaultSlope() uint64 { return t.SlopeStep() * defaultSlopeSteps }

// NudgeSlope moves the slope by delta SlopeSteps, saturating in
// [SlopeStep(), Max()].
func (t *TargetSeek) NudgeSlope(delta int) {
	if delta == 0 {
		return
	}

	step := t.SlopeStep()
	t.state.Slope = core.SaturatingStep(t.state.Slope, delta, step, max(step, 1), t.max)
}

// State returns a copy of the walker state.
func (t *TargetSeek) State() TargetSeekState { return t.state }

// SetState restores a walker state.
func (t *TargetSeek) SetState(s TargetSeekState) error {
	if s.Direction != 1 && s.Direction != -1 {
		return fmt.Errorf("noise: direction must be +1 or -1: %d", s.Direction)
	}

	if s.Value > t.max || s.Target > t.max {
		return fmt.Errorf("noise: value %d and target %d must be <= %d", s.Value, s.Target, t.max)
	}

	t.state = s

	return nil
}

// Next advances the walk by one step and returns the new value.
func (t *TargetSeek) Next() uint64 {
	s := &t.state

	switch {
	case s.Direction > 0 && s.Value > t.max-s.Slope:
		s.Value = t.max
	case s.Direction < 0 && s.Value < s.Slope:
		s.Value = 0
	case s.Direction > 0:
		s.Value += s.Slope
	default:
		s.Value -= s.Slope
	}

	if (s.Direction > 0 && s.Value >= s.Target) || (s.Direction < 0 && s.Value <= s.Target) {
		s.Value = s.Target
		s.Direction = -s.Direction

		r := t.src.Next()
		if s.Direction > 0 {
			s.Target = (r >> 1) | (t.max/2 + 1)
		} else {
			s.Target = r >> 1
		}
	}

	return s.Value
}
