package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the length below which a vector is treated as zero.
const Epsilon = 1e-12

var Up = mgl64.Vec3{0, 1, 0}

// SafeNormalize returns the unit vector of v. Zero-length input returns the
// zero vector and false instead of NaN components.
func SafeNormalize(v mgl64.Vec3) (mgl64.Vec3, bool) {
	l := v.Len()
	if l < Epsilon || math.IsNaN(l) {
		return mgl64.Vec3{}, false
	}
	return v.Mul(1 / l), true
}

// Horizontal returns v with its vertical component zeroed.
func Horizontal(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// RotateY rotates v around the vertical axis by angle radians
// (counter-clockwise when looking down from +Y).
func RotateY(v mgl64.Vec3, angle float64) mgl64.Vec3 {
	return mgl64.Rotate3DY(angle).Mul3x1(v)
}

// YawOf returns the heading of a direction vector, measured from +Z toward +X.
func YawOf(dir mgl64.Vec3) float64 {
	return math.Atan2(dir.X(), dir.Z())
}

// DirectionFromYawPitch returns the view direction of a camera that looks down
// -Z at zero yaw and pitch, rotated by yaw around Y and then pitch around X.
func DirectionFromYawPitch(yaw, pitch float64) mgl64.Vec3 {
	sy, cy := math.Sincos(yaw)
	sp, cp := math.Sincos(pitch)
	return mgl64.Vec3{-sy * cp, sp, -cy * cp}
}

// Lerp interpolates between a and b.
func Lerp(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}
