package blocks

import (
	"math"

	"github.com/alecchendev/glitch-game/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// plane is a*x + b*y + c*z + d = 0 with the normal pointing inward.
type plane struct {
	a, b, c, d float32
}

// frustum is the six clip planes in order: left, right, bottom, top, near, far.
type frustum [6]plane

// frustumFromClip builds the planes from projection*view.
func frustumFromClip(clip mgl32.Mat4) frustum {
	// mgl32 is column-major: row i is clip[i], clip[i+4], clip[i+8], clip[i+12]
	row := func(i int) plane {
		return plane{clip[i], clip[i+4], clip[i+8], clip[i+12]}
	}
	r0, r1, r2, r3 := row(0), row(1), row(2), row(3)

	return frustum{
		normalizePlane(addPlanes(r3, r0, 1)),
		normalizePlane(addPlanes(r3, r0, -1)),
		normalizePlane(addPlanes(r3, r1, 1)),
		normalizePlane(addPlanes(r3, r1, -1)),
		normalizePlane(addPlanes(r3, r2, 1)),
		normalizePlane(addPlanes(r3, r2, -1)),
	}
}

func addPlanes(p, q plane, sign float32) plane {
	return plane{p.a + sign*q.a, p.b + sign*q.b, p.c + sign*q.c, p.d + sign*q.d}
}

func normalizePlane(p plane) plane {
	l := float32(math.Sqrt(float64(p.a*p.a + p.b*p.b + p.c*p.c)))
	if l == 0 {
		return p
	}
	return plane{p.a / l, p.b / l, p.c / l, p.d / l}
}

// intersects reports whether the box is at least partly inside. Boxes
// straddling a corner may pass.
func (f *frustum) intersects(b world.Box) bool {
	min, max := b.Origin, b.Max()
	for _, p := range f {
		// Positive vertex: the corner furthest along the plane normal
		px := max.X()
		if p.a < 0 {
			px = min.X()
		}
		py := max.Y()
		if p.b < 0 {
			py = min.Y()
		}
		pz := max.Z()
		if p.c < 0 {
			pz = min.Z()
		}
		if p.a*px+p.b*py+p.c*pz+p.d < 0 {
			return false
		}
	}
	return true
}
