package core

import "math"

const defaultEpsilon = 1e-12

// maxUintFloat is 2^64, the first float64 that does not fit in a uint64.
const maxUintFloat = 18446744073709551616.0

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// ClampInt limits value to the inclusive range [min, max].
func ClampInt(value, min, max int) int {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// StepClamp moves value by direction*step and pins the result to [min, max].
//
// The result is snapped to the step grid so that repeated nudges do not
// accumulate binary rounding drift.
func StepClamp(value float64, direction int, step, min, max float64) float64 {
	next := value + float64(direction)*step
	if step > 0 {
		next = Quantize(next, step)
	}

	return Clamp(next, min, max)
}

// StepClampInt moves value by direction*step and pins the result to [min, max].
// direction is limited to the number of steps spanning the range, so any int
// direction is safe.
func StepClampInt(value, direction, step, min, max int) int {
	value = ClampInt(value, min, max)
	if step <= 0 || direction == 0 {
		return value
	}

	limit := (max-min)/step + 1
	direction = ClampInt(direction, -limit, limit)

	return ClampInt(value+direction*step, min, max)
}

// Quantize rounds value to the nearest multiple of step. A non-positive step
// returns value unchanged.
func Quantize(value, step float64) float64 {
	if step <= 0 {
		return value
	}

	return math.Round(value/step) * step
}

// SaturateUint converts x to uint64 by truncation, pinning negative values and
// NaN to 0 and values beyond the uint64 range to math.MaxUint64.
func SaturateUint(x float64) uint64 {
	if !(x > 0) {
		return 0
	}

	if x >= maxUintFloat {
		return math.MaxUint64
	}

	return uint64(x)
}

// SaturatingStep moves v by n steps of size step and pins the result to
// [lo, hi]. The cost does not depend on n.
func SaturatingStep(v uint64, n int, step, lo, hi uint64) uint64 {
	var mag uint64
	if n < 0 {
		mag = uint64(-(n + 1)) + 1
	} else {
		mag = uint64(n)
	}

	var amount uint64
	switch {
	case step == 0 || mag == 0:
	case mag > math.MaxUint64/step:
		amount = math.MaxUint64
	default:
		amount = mag * step
	}

	switch {
	case n > 0:
		if v >= hi || hi-v <= amount {
			v = hi
		} else {
			v += amount
		}
	case n < 0:
		if v <= lo || v-lo <= amount {
			v = lo
		} else {
			v -= amount
		}
	}

	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}
