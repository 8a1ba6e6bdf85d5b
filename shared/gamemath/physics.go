package gamemath

import "math"

// ApplyFriction reduces speed toward zero by friction amount, landing on
// exactly zero once the remaining speed is within one step.
func ApplyFriction(speedX, friction float64) float64 {
	if speedX > friction {
		return speedX - friction
	}
	if speedX < -friction {
		return speedX + friction
	}
	return 0
}

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

// Approach moves speed toward target by accel, or by decel when speed is
// already past target in target's direction. It never overshoots target.
func Approach(speed, target, accel, decel float64) float64 {
	rate := accel
	if speed*target > 0 && math.Abs(speed) > math.Abs(target) {
		rate = decel
	}
	if speed < target {
		return math.Min(speed+rate, target)
	}
	return math.Max(speed-rate, target)
}

// ClampFloat clamps v to [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
