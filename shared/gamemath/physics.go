package gamemath

import "math"

// ExpDamping returns the per-step damping multiplier for an exponential decay
// with the given coefficient. Applying v += v*ExpDamping(k, dt) decays v by
// exp(-k*dt), independent of how the elapsed time is split into steps.
func ExpDamping(coefficient, dt float64) float64 {
	return math.Exp(-coefficient*dt) - 1
}

// SmoothFactor returns the interpolation weight that moves a value toward its
// target at the given rate for dt seconds.
func SmoothFactor(rate, dt float64) float64 {
	if rate <= 0 || dt <= 0 {
		return 0
	}
	return 1 - math.Exp(-rate*dt)
}

// Clamp clamps a value to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
