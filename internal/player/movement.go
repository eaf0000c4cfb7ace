package player

import "github.com/go-gl/mathgl/mgl32"

// Intent is the set of movement keys held during a frame.
type Intent struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

// Any reports whether any direction is held.
func (in Intent) Any() bool {
	return in.Forward || in.Backward || in.Left || in.Right
}

// MoveDelta returns the displacement for one frame: the normalized sum of the
// front/right vectors selected by intent, scaled by speed*dt. Opposing keys
// cancel, and a zero sum gives the zero vector.
func (p *Player) MoveDelta(intent Intent, speed, dt float32) mgl32.Vec3 {
	var dir mgl32.Vec3
	if intent.Forward {
		dir = dir.Add(p.orientation.Front)
	}
	if intent.Backward {
		dir = dir.Sub(p.orientation.Front)
	}
	if intent.Right {
		dir = dir.Add(p.orientation.Right)
	}
	if intent.Left {
		dir = dir.Sub(p.orientation.Right)
	}

	if dir.Len() < 1e-4 {
		return mgl32.Vec3{}
	}
	return dir.Normalize().Mul(speed * dt)
}
