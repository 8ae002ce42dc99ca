package gamemath

// Accelerate pushes speed by accel*dt in the given direction (-1, 0 or 1)
// without letting it exceed max in that direction. A zero direction leaves
// speed untouched.
func Accelerate(speed, accel, max, dt float64, direction int) float64 {
	switch {
	case direction < 0:
		if next := speed - accel*dt; next > -max {
			return next
		}
		return -max
	case direction > 0:
		if next := speed + accel*dt; next < max {
			return next
		}
		return max
	}
	return speed
}

// Fall applies gravity to a vertical speed, capped at -maxFall.
func Fall(speedY, gravity, maxFall, dt float64) float64 {
	if next := speedY - gravity*dt; next > -maxFall {
		return next
	}
	return -maxFall
}

// ClampToBound clamps x to [-bound, bound]. clamped reports whether x was
// outside the range.
func ClampToBound(x, bound float64) (v float64, clamped bool) {
	if x > bound {
		return bound, true
	}
	if x < -bound {
		return -bound, true
	}
	return x, false
}
