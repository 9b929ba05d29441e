package gamemath

import "math"

// Degree/radian conversion factors.
const (
	Deg2Rad = math.Pi / 180
	Rad2Deg = 180 / math.Pi
)

// Clamp clamps v to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Clamp01 clamps v to [0, 1].
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// ClampMag clamps a value to [-max, max].
func ClampMag(v, max float64) float64 {
	return Clamp(v, -max, max)
}

// Lerp interpolates linearly between a and b. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Sign returns -1 for negative values and +1 otherwise. Sign(0) is +1,
// so callers that branch on a movement direction treat a zero request
// as rightward.
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// MoveToward reduces speed toward zero by the given amount, without
// overshooting.
func MoveToward(speed, amount float64) float64 {
	if speed > amount {
		return speed - amount
	}
	if speed < -amount {
		return speed + amount
	}
	return 0
}
