// Package gamemath holds the scalar physics steps shared by the systems.
package gamemath

// ApplyFriction reduces speed toward zero by friction amount.
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

// ApplyGravity accelerates speedY downward and caps the fall speed. Rising
// speed is left unclamped.
func ApplyGravity(speedY, gravity, maxFall float64) float64 {
	speedY += gravity
	if maxFall > 0 && speedY > maxFall {
		return maxFall
	}
	return speedY
}

// Walk moves speedX toward target by accel without overshooting.
func Walk(speedX, target, accel float64) float64 {
	switch {
	case speedX < target:
		speedX += accel
		if speedX > target {
			return target
		}
	case speedX > target:
		speedX -= accel
		if speedX < target {
			return target
		}
	}
	return speedX
}
