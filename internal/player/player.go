// Package player holds the player's body: where it is, where it faces and
// how big it is.
package player

import (
	"github.com/alecchendev/glitch-game/internal/orientation"
	"github.com/alecchendev/glitch-game/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	// DefaultMoveSpeed is in world units per second.
	DefaultMoveSpeed = 2.5
)

// DefaultSize is the hurtbox extent of a new player.
var DefaultSize = mgl32.Vec3{1, 1, 1}

type Player struct {
	position    mgl32.Vec3
	orientation orientation.Orientation
	size        mgl32.Vec3
}

// New creates a player at position looking along front.
func New(position, front, size mgl32.Vec3) *Player {
	return &Player{
		position:    position,
		orientation: orientation.FromFront(front),
		size:        size,
	}
}

// FromWorld places a default-sized player at the world's start.
func FromWorld(w *world.World) *Player {
	return New(w.StartPosition, w.StartDirection, DefaultSize)
}

func (p *Player) Position() mgl32.Vec3 {
	return p.position
}

func (p *Player) Front() mgl32.Vec3 {
	return p.orientation.Front
}

func (p *Player) Right() mgl32.Vec3 {
	return p.orientation.Right
}

func (p *Player) Size() mgl32.Vec3 {
	return p.size
}

func (p *Player) Orientation() orientation.Orientation {
	return p.orientation
}

// Hurtbox returns the player's box, centered on its position.
func (p *Player) Hurtbox() world.Box {
	return world.Box{
		Origin: p.position.Sub(p.size.Mul(0.5)),
		Size:   p.size,
	}
}

// Move adds displacement to the position. There is no collision or bounds
// checking.
func (p *Player) Move(displacement mgl32.Vec3) {
	p.position = p.position.Add(displacement)
}

// Turn changes yaw and pitch by the given radians; pitch is clamped.
func (p *Player) Turn(dyaw, dpitch float32) {
	p.orientation.Turn(dyaw, dpitch)
}

// TurnHorizontal changes only yaw.
func (p *Player) TurnHorizontal(dyaw float32) {
	p.orientation.Turn(dyaw, 0)
}

// TurnVertical changes only pitch.
func (p *Player) TurnVertical(dpitch float32) {
	p.orientation.Turn(0, dpitch)
}
