// Package noise provides deterministic pseudo-random bit-stream sources for
// control-rate noise synthesis.
//
// Supported sources:
//   - LFSR32: Galois linear feedback shift register with tap mask 0x80000062.
//   - LCG32: linear congruential recurrence modulo 2^32.
//   - XorShift32 / XorShift64: Marsaglia xorshift recurrences.
//
// Every source implements [Source] and is interchangeable with the others.
// Sources never allocate after construction and are not safe for concurrent
// use. The shift-register and xorshift sources have an absorbing all-zero
// state, so their constructors reject a zero seed with [ErrZeroSeed].
//
// [TargetSeek] derives a ramped random walk from any Source: it slews toward
// a target drawn from the source and bounces between the two halves of the
// source's range.
package noise
