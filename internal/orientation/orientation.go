// Package orientation derives front/right unit vectors from yaw and pitch.
//
// Angles are stored in radians. Degrees only appear at the input boundary,
// see FromDegrees.
package orientation

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxPitch keeps the front vector away from world up, where the right vector
// is undefined.
var MaxPitch = mgl32.DegToRad(89.0)

// WorldUp is the fixed up axis used to derive the right vector.
var WorldUp = mgl32.Vec3{0, 1, 0}

const twoPi = 2 * math.Pi

// Orientation holds yaw/pitch and the unit vectors derived from them.
type Orientation struct {
	Yaw   float32
	Pitch float32
	Front mgl32.Vec3
	Right mgl32.Vec3
}

// New returns an orientation for the given yaw and pitch in radians.
func New(yaw, pitch float32) Orientation {
	var o Orientation
	o.Set(yaw, pitch)
	return o
}

// FromDegrees is New with angles given in degrees.
func FromDegrees(yawDeg, pitchDeg float32) Orientation {
	return New(mgl32.DegToRad(yawDeg), mgl32.DegToRad(pitchDeg))
}

// FromFront returns the orientation that looks along front.
// A zero vector yields yaw 0, pitch 0.
func FromFront(front mgl32.Vec3) Orientation {
	if front.Len() == 0 {
		return New(0, 0)
	}
	f := front.Normalize()
	pitch := float32(math.Asin(float64(mgl32.Clamp(f.Y(), -1, 1))))
	yaw := float32(math.Atan2(float64(f.Z()), float64(f.X())))
	return New(yaw, pitch)
}

// Direction computes the front and right unit vectors for yaw and pitch.
// The caller is responsible for keeping pitch strictly inside (-90deg, 90deg).
func Direction(yaw, pitch float32) (front, right mgl32.Vec3) {
	cy, sy := math.Cos(float64(yaw)), math.Sin(float64(yaw))
	cp, sp := math.Cos(float64(pitch)), math.Sin(float64(pitch))
	front = mgl32.Vec3{
		float32(cy * cp),
		float32(sp),
		float32(sy * cp),
	}.Normalize()
	right = front.Cross(WorldUp).Normalize()
	return front, right
}

// ClampPitch limits pitch to [-MaxPitch, MaxPitch].
func ClampPitch(pitch float32) float32 {
	return mgl32.Clamp(pitch, -MaxPitch, MaxPitch)
}

// WrapYaw maps yaw into [0, 2pi).
func WrapYaw(yaw float32) float32 {
	w := math.Mod(float64(yaw), twoPi)
	if w < 0 {
		w += twoPi
	}
	// Tiny negative yaws round up to 2pi in float32
	if f := float32(w); f < twoPi {
		return f
	}
	return 0
}

// Set replaces yaw and pitch and recomputes Front and Right.
func (o *Orientation) Set(yaw, pitch float32) {
	o.Yaw = WrapYaw(yaw)
	o.Pitch = ClampPitch(pitch)
	o.Front, o.Right = Direction(o.Yaw, o.Pitch)
}

// Turn adds the deltas (radians) to yaw and pitch.
func (o *Orientation) Turn(dyaw, dpitch float32) {
	o.Set(o.Yaw+dyaw, o.Pitch+dpitch)
}
