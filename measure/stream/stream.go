// Package stream computes running statistics of rendered control streams.
//
// Samples are expected in normalized units (0 = bottom code, 1 = full scale);
// Normalize converts engine output codes into that range.
package stream

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Stats holds time-domain statistics of a control stream.
type Stats struct {
	Length    int
	Mean      float64
	StdDev    float64
	Min       float64
	Max       float64
	Range     float64 // max - min
	Reversals int     // sign changes of the first difference
	Holds     int     // consecutive equal samples
}

// Normalize converts output codes into [0, 1] relative to fullScale.
// dst and codes must have the same length; dst is returned for chaining.
func Normalize(dst []float64, codes []int, fullScale int) []float64 {
	n := len(codes)
	if n == 0 {
		return dst[:0]
	}

	_ = dst[n-1]
	for i, c := range codes {
		dst[i] = float64(c)
	}

	if fullScale > 0 {
		vecmath.ScaleBlock(dst[:n], dst[:n], 1/float64(fullScale))
	}

	return dst[:n]
}

// Accumulator gathers Stats over successive blocks using Welford's update.
type Accumulator struct {
	n         int
	mean      float64
	m2        float64
	minVal    float64
	maxVal    float64
	last      float64
	lastDiff  int
	reversals int
	holds     int
}

// Update adds a block of samples to the running statistics.
func (a *Accumulator) Update(samples []float64) {
	for _, x := range samples {
		a.Add(x)
	}
}

// Add adds one sample.
func (a *Accumulator) Add(x float64) {
	a.n++
	delta := x - a.mean
	a.mean += delta / float64(a.n)
	a.m2 += delta * (x - a.mean)

	if a.n == 1 {
		a.minVal, a.maxVal, a.last = x, x, x
		return
	}

	a.minVal = math.Min(a.minVal, x)
	a.maxVal = math.Max(a.maxVal, x)

	diff := 0
	switch {
	case x > a.last:
		diff = 1
	case x < a.last:
		diff = -1
	default:
		a.holds++
	}

	if diff != 0 {
		if a.lastDiff != 0 && diff != a.lastDiff {
			a.reversals++
		}
		a.lastDiff = diff
	}

	a.last = x
}

// Result returns the statistics of all samples added so far.
func (a *Accumulator) Result() Stats {
	if a.n == 0 {
		return Stats{}
	}

	return Stats{
		Length:    a.n,
		Mean:      a.mean,
		StdDev:    math.Sqrt(a.m2 / float64(a.n)),
		Min:       a.minVal,
		Max:       a.maxVal,
		Range:     a.maxVal - a.minVal,
		Reversals: a.reversals,
		Holds:     a.holds,
	}
}

// Reset clears all accumulated data.
func (a *Accumulator) Reset() {
	*a = Accumulator{}
}

// Calculate computes Stats for a complete block.
func Calculate(samples []float64) Stats {
	var a Accumulator
	a.Update(samples)
	return a.Result()
}
