// Package window generates DFT-even cosine-sum windows for spectral
// analysis of control streams.
package window

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeBlackmanHarris
	TypeFlatTop
	typeCount
)

var (
	errEmptyCoeffs      = errors.New("window: coefficients must not be empty")
	errZeroCoherentGain = errors.New("window: coherent gain is zero")
)

var names = [typeCount]string{
	TypeRectangular:    "rectangular",
	TypeHann:           "hann",
	TypeHamming:        "hamming",
	TypeBlackman:       "blackman",
	TypeBlackmanHarris: "blackman-harris",
	TypeFlatTop:        "flattop",
}

// cosine-sum terms a0 - a1 cos(x) + a2 cos(2x) ...; signs folded in.
var terms = [typeCount][]float64{
	TypeRectangular:    {1},
	TypeHann:           {0.5, -0.5},
	TypeHamming:        {0.54, -0.46},
	TypeBlackman:       {0.42, -0.5, 0.08},
	TypeBlackmanHarris: {0.35875, -0.48829, 0.14128, -0.01168},
	TypeFlatTop:        {0.21557895, -0.41663158, 0.277263158, -0.083578947, 0.006947368},
}

// Types lists every window type.
func Types() []Type {
	out := make([]Type, 0, typeCount)
	for t := range typeCount {
		out = append(out, t)
	}
	return out
}

func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return names[t]
}

// Valid reports whether t names a known window.
func (t Type) Valid() bool { return t >= 0 && t < typeCount }

// ParseType returns the window type with the given name.
func ParseType(name string) (Type, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for t, n := range names {
		if n == name {
			return Type(t), nil
		}
	}
	return 0, fmt.Errorf("window: unknown type %q", name)
}

// Generate returns size periodic coefficients of window t.
func Generate(t Type, size int) ([]float64, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("window: invalid type %d", int(t))
	}
	if size <= 0 {
		return nil, fmt.Errorf("window: size must be > 0: %d", size)
	}

	out := make([]float64, size)
	for n := range out {
		out[n] = cosineSum(float64(n)/float64(size), terms[t])
	}
	return out, nil
}

// EquivalentNoiseBandwidth returns the ENBW in bins for a window.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := 0.0
	sumSquares := 0.0

	for _, c := range coeffs {
		sum += c
		sumSquares += c * c
	}

	if sum == 0 {
		return 0, errZeroCoherentGain
	}

	return float64(len(coeffs)) * sumSquares / (sum * sum), nil
}

// PowerGain returns the mean of the squared coefficients. Dividing a windowed
// power spectrum by it restores the level of broadband noise.
func PowerGain(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sumSquares := 0.0
	for _, c := range coeffs {
		sumSquares += c * c
	}
	return sumSquares / float64(len(coeffs)), nil
}

func cosineSum(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}
