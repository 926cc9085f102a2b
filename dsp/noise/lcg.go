package noise

import "math"

const (
	// DefaultLCGSeed is the state used by NewLCG32Default.
	DefaultLCGSeed = 22222

	lcgMultiplier uint32 = 196314165
	lcgIncrement  uint32 = 907633515
)

// LCG32 is a linear congruential generator modulo 2^32. Every seed, including
// zero, is valid.
type LCG32 struct {
	state uint32
}

// NewLCG32 returns an LCG seeded with seed.
func NewLCG32(seed uint32) *LCG32 {
	return &LCG32{state: seed}
}

// NewLCG32Default returns an LCG seeded with DefaultLCGSeed.
func NewLCG32Default() *LCG32 {
	return NewLCG32(DefaultLCGSeed)
}

// Reset reloads the state with seed.
func (g *LCG32) Reset(seed uint32) { g.state = seed }

// State returns the current state.
func (g *LCG32) State() uint32 { return g.state }

// Next computes state*A + C with 32-bit wrap-around and returns it.
func (g *LCG32) Next() uint64 {
	g.state = g.state*lcgMultiplier + lcgIncrement
	return uint64(g.state)
}

// Max returns math.MaxUint32.
func (g *LCG32) Max() uint64 { return math.MaxUint32 }

// Bits returns 32.
func (g *LCG32) Bits() uint8 { return 32 }
