// Package physics answers geometric queries against the world's blocks.
// There is no collision response.
package physics

import (
	"math"

	"github.com/alecchendev/glitch-game/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	MinReachDistance = 0.1
	MaxReachDistance = 5.0
)

// RaycastResult is the nearest block a ray hits.
type RaycastResult struct {
	Index    int // into the blocks slice, -1 on a miss
	Distance float32
	Hit      bool
}

// Raycast returns the closest block whose box the ray enters between minDist
// and maxDist. direction must be normalized for Distance to be in world
// units. A ray starting inside a box hits it at distance minDist.
func Raycast(start, direction mgl32.Vec3, minDist, maxDist float32, blocks []world.Block) RaycastResult {
	result := RaycastResult{Index: -1}
	best := maxDist

	for i, b := range blocks {
		tNear, tFar, ok := intersectBox(start, direction, b.Box)
		if !ok || tFar < minDist {
			continue
		}
		t := max(tNear, minDist)
		if t <= best {
			best = t
			result = RaycastResult{Index: i, Distance: t, Hit: true}
		}
	}
	return result
}

// intersectBox is the slab test. It returns the entry and exit distances
// along the ray, which may be negative when the box is behind the start.
func intersectBox(start, dir mgl32.Vec3, b world.Box) (tNear, tFar float32, ok bool) {
	tNear = float32(math.Inf(-1))
	tFar = float32(math.Inf(1))
	lo, hi := b.Origin, b.Max()

	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if start[axis] < lo[axis] || start[axis] > hi[axis] {
				return 0, 0, false
			}
			continue
		}
		inv := 1 / dir[axis]
		t0 := (lo[axis] - start[axis]) * inv
		t1 := (hi[axis] - start[axis]) * inv
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tNear = max(tNear, t0)
		tFar = min(tFar, t1)
		if tNear > tFar {
			return 0, 0, false
		}
	}
	return tNear, tFar, true
}
