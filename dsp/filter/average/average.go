package average

import (
	"fmt"

	"github.com/cwbudde/algo-cvnoise/dsp/core"
	"github.com/cwbudde/algo-cvnoise/internal/ring"
)

const (
	// MinSize is the smallest window.
	MinSize = 1
	// MaxSize is the largest window and the ring capacity.
	MaxSize = ring.Capacity
	// DefaultSize is the window of a new filter.
	DefaultSize = 64
)

// CursorWrap selects how the write cursor wraps.
type CursorWrap int

const (
	// WrapCapacity advances the cursor modulo the ring capacity. Writes past
	// the window land in slots that are not averaged until the window grows.
	WrapCapacity CursorWrap = iota
	// WrapWindow advances the cursor modulo the current window size, so every
	// write lands in the averaged region once the cursor has wrapped.
	WrapWindow
)

func (w CursorWrap) String() string {
	switch w {
	case WrapCapacity:
		return "capacity"
	case WrapWindow:
		return "window"
	default:
		return "unknown"
	}
}

// Option mutates constructor configuration.
type Option func(*config) error

type config struct {
	size int
	wrap CursorWrap
}

func defaultConfig() config {
	return config{size: DefaultSize, wrap: WrapCapacity}
}

// WithSize sets the window size in [1, 128].
func WithSize(size int) Option {
	return func(cfg *config) error {
		if err := validateSize(size); err != nil {
			return err
		}
		cfg.size = size
		return nil
	}
}

// WithCursorWrap selects the cursor wrap mode.
func WithCursorWrap(wrap CursorWrap) Option {
	return func(cfg *config) error {
		if wrap != WrapCapacity && wrap != WrapWindow {
			return fmt.Errorf("average: invalid cursor wrap: %d", wrap)
		}
		cfg.wrap = wrap
		return nil
	}
}

// MovingAverage is a streaming per-term moving average.
type MovingAverage struct {
	buf  ring.Buffer
	size int
	wrap CursorWrap
}

// New constructs a moving-average filter.
func New(opts ...Option) (*MovingAverage, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	return &MovingAverage{size: cfg.size, wrap: cfg.wrap}, nil
}

// Size returns the window size.
func (m *MovingAverage) Size() int { return m.size }

// CursorWrap returns the cursor wrap mode.
func (m *MovingAverage) CursorWrap() CursorWrap { return m.wrap }

// Cursor returns the slot that receives the next sample.
func (m *MovingAverage) Cursor() int { return m.buf.Cursor() }

// SetSize updates the window size. The ring contents and cursor are kept.
func (m *MovingAverage) SetSize(size int) error {
	if err := validateSize(size); err != nil {
		return err
	}
	m.size = size
	return nil
}

// NudgeSize moves the window by delta slots, pinned to [MinSize, MaxSize].
func (m *MovingAverage) NudgeSize(delta int) {
	m.size = core.StepClampInt(m.size, delta, 1, MinSize, MaxSize)
}

// Process writes v and returns the average over the window.
func (m *MovingAverage) Process(v uint64) uint64 {
	span := ring.Capacity
	if m.wrap == WrapWindow {
		span = m.size
	}
	m.buf.Write(v, span)
	return m.buf.TermMean(m.size)
}

// Average returns the current window average without writing.
func (m *MovingAverage) Average() uint64 { return m.buf.TermMean(m.size) }

// ProcessInPlace filters buf in place.
func (m *MovingAverage) ProcessInPlace(buf []uint64) {
	for i := range buf {
		buf[i] = m.Process(buf[i])
	}
}

// Reset clears the ring and rewinds the cursor. Size and wrap mode are kept.
func (m *MovingAverage) Reset() { m.buf.Reset() }

func validateSize(size int) error {
	if size < MinSize || size > MaxSize {
		return fmt.Errorf("average: size must be in [%d, %d]: %d", MinSize, MaxSize, size)
	}
	return nil
}
