package gamemath

import "math"

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// ClampVelocity scales (vx, vy) down so its length does not exceed max.
// A non-positive max leaves the velocity unchanged.
func ClampVelocity(vx, vy, max float64) (float64, float64) {
	if max <= 0 {
		return vx, vy
	}
	l := math.Hypot(vx, vy)
	if l <= max {
		return vx, vy
	}
	k := max / l
	return vx * k, vy * k
}
