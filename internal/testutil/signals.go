package testutil

import "math"

// Source is the part of a noise source the helpers need.
type Source interface {
	Next() uint64
	Max() uint64
}

// Draw pulls n values from src and normalizes them to [0, 1].
func Draw(src Source, n int) []float64 {
	out := make([]float64, n)
	scale := 1 / float64(src.Max())
	for i := range out {
		out[i] = float64(src.Next()) * scale
	}
	return out
}

// DrawRaw pulls n raw values from src.
func DrawRaw(src Source, n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = src.Next()
	}
	return out
}

// DeterministicSine generates a sine wave sampled at tickRate.
func DeterministicSine(freqHz, tickRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / tickRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
