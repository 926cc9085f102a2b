package noise

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrZeroSeed reports a seed that would lock a generator in its zero state.
	ErrZeroSeed = errors.New("noise: seed must be non-zero")
	// ErrUnknownKind reports an unsupported source kind.
	ErrUnknownKind = errors.New("noise: unknown source kind")
	// ErrSeedRange reports a seed wider than the generator's register.
	ErrSeedRange = errors.New("noise: seed exceeds register width")
)

// Source is a deterministic pseudo-random sequence generator.
type Source interface {
	// Next advances the register and returns the new value in [0, Max()].
	Next() uint64
	// Max returns the largest value Next can return.
	Max() uint64
	// Bits returns the width of the generated values.
	Bits() uint8
}

// Kind selects a Source algorithm.
type Kind int

const (
	// KindLFSR32 is a 32-bit Galois LFSR.
	KindLFSR32 Kind = iota
	// KindLCG32 is a 32-bit linear congruential generator.
	KindLCG32
	// KindXorShift32 is a 32-bit xorshift generator.
	KindXorShift32
	// KindXorShift64 is a 64-bit xorshift generator.
	KindXorShift64

	kindCount // sentinel for validation
)

var kindNames = [kindCount]string{
	"lfsr32", "lcg32", "xorshift32", "xorshift64",
}

// Kinds returns every supported kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, kindCount)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// String returns the short name of the kind.
func (k Kind) String() string {
	if k.Valid() {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k >= 0 && k < kindCount
}

// ParseKind resolves a kind from its short name (case-insensitive).
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// DefaultSeed returns the seed used by the kind's default constructor.
func (k Kind) DefaultSeed() uint64 {
	switch k {
	case KindLFSR32:
		return DefaultLFSRSeed
	case KindLCG32:
		return DefaultLCGSeed
	case KindXorShift32, KindXorShift64:
		return DefaultXorShiftSeed
	default:
		return 0
	}
}

// NewSource constructs a source of the given kind. Seeds above
// math.MaxUint32 are rejected for 32-bit kinds.
func NewSource(kind Kind, seed uint64) (Source, error) {
	if kind != KindXorShift64 && kind.Valid() && seed > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %s seed %d", ErrSeedRange, kind, seed)
	}

	switch kind {
	case KindLFSR32:
		return NewLFSR32(uint32(seed))
	case KindLCG32:
		return NewLCG32(uint32(seed)), nil
	case KindXorShift32:
		return NewXorShift32(uint32(seed))
	case KindXorShift64:
		return NewXorShift64(seed)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
}
