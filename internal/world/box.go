package world

import "github.com/go-gl/mathgl/mgl32"

// Box is an axis-aligned block of space. Origin is the min corner and Size
// the extent along each axis. Sizes are expected to be positive but are not
// validated.
type Box struct {
	Origin mgl32.Vec3
	Size   mgl32.Vec3
}

// Max returns the max corner.
func (b Box) Max() mgl32.Vec3 {
	return b.Origin.Add(b.Size)
}

// Center returns the midpoint of the box.
func (b Box) Center() mgl32.Vec3 {
	return b.Origin.Add(b.Size.Mul(0.5))
}

// ModelMatrix places local-space geometry (min corner at 0,0,0) at Origin.
func (b Box) ModelMatrix() mgl32.Mat4 {
	return mgl32.Translate3D(b.Origin.X(), b.Origin.Y(), b.Origin.Z())
}
