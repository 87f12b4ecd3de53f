package utils

import "math"

// SaturatingAdd returns a+b clamped to [0, math.MaxInt64].
// Currency counters never wrap around or go negative.
func SaturatingAdd(a, b int64) int64 {
	if b > 0 && a > math.MaxInt64-b {
		return math.MaxInt64
	}
	sum := a + b
	if sum < 0 {
		return 0
	}
	return sum
}

// SaturatingMul returns a*b for non-negative operands clamped to math.MaxInt64
func SaturatingMul(a, b int64) int64 {
	if a <= 0 || b <= 0 {
		return 0
	}
	if a > math.MaxInt64/b {
		return math.MaxInt64
	}
	return a * b
}

// FloorToInt64 floors a float into an int64, clamping NaN and negatives to 0
// and values beyond the int64 range to math.MaxInt64.
func FloorToInt64(v float64) int64 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(math.Floor(v))
}

// Clamp01 clamps v to the closed interval [0, 1]
func Clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
