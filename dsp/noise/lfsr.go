package noise

import (
	"fmt"
	"math"
)

const (
	// DefaultLFSRSeed is the register value used by NewLFSR32Default.
	DefaultLFSRSeed = 0x55555555

	lfsrTaps uint32 = 0x80000062
)

// LFSR32 is a 32-bit Galois linear feedback shift register.
type LFSR32 struct {
	state uint32
}

// NewLFSR32 returns an LFSR seeded with seed. A zero seed is rejected because
// the all-zero register is a fixed point.
func NewLFSR32(seed uint32) (*LFSR32, error) {
	l := &LFSR32{}
	if err := l.Reset(seed); err != nil {
		return nil, err
	}
	return l, nil
}

// NewLFSR32Default returns an LFSR seeded with DefaultLFSRSeed.
func NewLFSR32Default() *LFSR32 {
	return &LFSR32{state: DefaultLFSRSeed}
}

// Reset reloads the register with seed.
func (l *LFSR32) Reset(seed uint32) error {
	if seed == 0 {
		return fmt.Errorf("lfsr32: %w", ErrZeroSeed)
	}
	l.state = seed
	return nil
}

// State returns the current register value.
func (l *LFSR32) State() uint32 { return l.state }

// Next shifts the register once and returns it.
func (l *LFSR32) Next() uint64 {
	if l.state&1 != 0 {
		l.state = (l.state >> 1) ^ lfsrTaps
	} else {
		l.state >>= 1
	}
	return uint64(l.state)
}

// Max returns math.MaxUint32.
func (l *LFSR32) Max() uint64 { return math.MaxUint32 }

// Bits returns 32.
func (l *LFSR32) Bits() uint8 { return 32 }
