package noise

import (
	"fmt"
	"math"
)

// DefaultXorShiftSeed is the state used by the xorshift default constructors.
const DefaultXorShiftSeed = 161803398

// XorShift32 is Marsaglia's 13/17/5 xorshift generator on a 32-bit register.
type XorShift32 struct {
	state uint32
}

// NewXorShift32 returns a generator seeded with seed. Zero is rejected.
func NewXorShift32(seed uint32) (*XorShift32, error) {
	x := &XorShift32{}
	if err := x.Reset(seed); err != nil {
		return nil, err
	}
	return x, nil
}

// NewXorShift32Default returns a generator seeded with DefaultXorShiftSeed.
func NewXorShift32Default() *XorShift32 {
	return &XorShift32{state: DefaultXorShiftSeed}
}

// Reset reloads the register with seed.
func (x *XorShift32) Reset(seed uint32) error {
	if seed == 0 {
		return fmt.Errorf("xorshift32: %w", ErrZeroSeed)
	}
	x.state = seed
	return nil
}

// State returns the current register value.
func (x *XorShift32) State() uint32 { return x.state }

// Next advances the register and returns it.
func (x *XorShift32) Next() uint64 {
	s := x.state
	s ^= s << 13
	s ^= s >> 17
	s ^= s << 5
	x.state = s
	return uint64(s)
}

// Max returns math.MaxUint32.
func (x *XorShift32) Max() uint64 { return math.MaxUint32 }

// Bits returns 32.
func (x *XorShift32) Bits() uint8 { return 32 }

// XorShift64 is Marsaglia's 13/7/17 xorshift generator on a 64-bit register.
type XorShift64 struct {
	state uint64
}

// NewXorShift64 returns a generator seeded with seed. Zero is rejected.
func NewXorShift64(seed uint64) (*XorShift64, error) {
	x := &XorShift64{}
	if err := x.Reset(seed); err != nil {
		return nil, err
	}
	return x, nil
}

// NewXorShift64Default returns a generator seeded with DefaultXorShiftSeed.
func NewXorShift64Default() *XorShift64 {
	return &XorShift64{state: DefaultXorShiftSeed}
}

// Reset reloads the register with seed.
func (x *XorShift64) Reset(seed uint64) error {
	if seed == 0 {
		return fmt.Errorf("xorshift64: %w", ErrZeroSeed)
	}
	x.state = seed
	return nil
}

// State returns the current register value.
func (x *XorShift64) State() uint64 { return x.state }

// Next advances the register and returns it.
func (x *XorShift64) Next() uint64 {
	s := x.state
	s ^= s << 13
	s ^= s >> 7
	s ^= s << 17
	x.state = s
	return s
}

// Max returns math.MaxUint64.
func (x *XorShift64) Max() uint64 { return math.MaxUint64 }

// Bits returns 64.
func (x *XorShift64) Bits() uint8 { return 64 }
