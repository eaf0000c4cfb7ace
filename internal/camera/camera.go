// Package camera follows a target in first- or third-person mode and
// produces the view matrix.
package camera

import (
	"fmt"

	"github.com/alecchendev/glitch-game/internal/orientation"

	"github.com/go-gl/mathgl/mgl32"
)

type Mode int

const (
	FirstPerson Mode = iota
	ThirdPerson
)

func (m Mode) String() string {
	switch m {
	case FirstPerson:
		return "first_person"
	case ThirdPerson:
		return "third_person"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "first_person":
		return FirstPerson, nil
	case "third_person":
		return ThirdPerson, nil
	default:
		return 0, fmt.Errorf("unknown camera mode %q", s)
	}
}

// Target is what the camera tracks.
type Target interface {
	Position() mgl32.Vec3
	Front() mgl32.Vec3
	Orientation() orientation.Orientation
}

// Settings control the third-person follow position.
type Settings struct {
	// Distance is how far behind the target the camera sits.
	Distance float32
	// VerticalOffset is added to the target's front along world up before
	// scaling by Distance. Negative values lift the camera.
	VerticalOffset float32
	// PitchBias is the fixed downward pitch in radians.
	PitchBias float32
}

func DefaultSettings() Settings {
	return Settings{
		Distance:       4.0,
		VerticalOffset: -0.5,
		PitchBias:      mgl32.DegToRad(25),
	}
}

type Camera struct {
	target   Target
	mode     Mode
	settings Settings
	look     orientation.Orientation
}

func New(target Target, mode Mode, settings Settings) *Camera {
	c := &Camera{target: target, mode: mode, settings: settings}
	c.reseed()
	return c
}

func (c *Camera) Mode() Mode {
	return c.mode
}

// SetMode switches to m, re-seeding the look state from the target so the
// view does not jump.
func (c *Camera) SetMode(m Mode) {
	c.mode = m
	c.reseed()
}

// Toggle flips between first and third person and returns the new mode.
func (c *Camera) Toggle() Mode {
	if c.mode == FirstPerson {
		c.SetMode(ThirdPerson)
	} else {
		c.SetMode(FirstPerson)
	}
	return c.mode
}

// Look applies raw look input in radians. Third person derives its
// orientation from the target, so the input is ignored there.
func (c *Camera) Look(dyaw, dpitch float32) {
	if c.mode != FirstPerson {
		return
	}
	c.look.Turn(dyaw, dpitch)
}

func (c *Camera) reseed() {
	t := c.target.Orientation()
	switch c.mode {
	case ThirdPerson:
		c.look = orientation.New(t.Yaw, -c.settings.PitchBias)
	default:
		c.look = orientation.New(t.Yaw, t.Pitch)
	}
}

// Position returns the eye position for the current mode.
func (c *Camera) Position() mgl32.Vec3 {
	if c.mode == ThirdPerson {
		offset := c.target.Front().Add(mgl32.Vec3{0, c.settings.VerticalOffset, 0})
		return c.target.Position().Sub(offset.Mul(c.settings.Distance))
	}
	return c.target.Position()
}

// Orientation returns the viewing orientation for the current mode.
func (c *Camera) Orientation() orientation.Orientation {
	if c.mode == ThirdPerson {
		return orientation.New(c.target.Orientation().Yaw, -c.settings.PitchBias)
	}
	return c.look
}

func (c *Camera) Front() mgl32.Vec3 {
	return c.Orientation().Front
}

// ViewMatrix looks from Position along Front with world up.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	eye := c.Position()
	return mgl32.LookAtV(eye, eye.Add(c.Front()), orientation.WorldUp)
}
