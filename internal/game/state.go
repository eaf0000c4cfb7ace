package game

import (
	"fmt"

	"github.com/alecchendev/glitch-game/internal/camera"
	"github.com/alecchendev/glitch-game/internal/config"
	"github.com/alecchendev/glitch-game/internal/player"
	"github.com/alecchendev/glitch-game/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// Frame is the input gathered for one tick.
type Frame struct {
	Intent player.Intent
	// Look deltas in degrees, already scaled by sensitivity.
	LookYaw   float32
	LookPitch float32
	// ToggleCamera flips the camera mode before anything else happens.
	ToggleCamera bool
}

// State is everything the loop updates and renders. It is owned by the loop
// and passed explicitly.
type State struct {
	World     *world.World
	Player    *player.Player
	Camera    *camera.Camera
	MoveSpeed float32
}

// NewState places a player at the world's start and attaches a camera
// configured from cfg.
func NewState(w *world.World, cfg *config.Config) (*State, error) {
	mode, err := camera.ParseMode(cfg.Camera.Mode)
	if err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}
	p := player.FromWorld(w)
	settings := camera.Settings{
		Distance:       cfg.Camera.Distance,
		VerticalOffset: cfg.Camera.VerticalOffset,
		PitchBias:      mgl32.DegToRad(cfg.Camera.PitchBiasDeg),
	}
	return &State{
		World:     w,
		Player:    p,
		Camera:    camera.New(p, mode, settings),
		MoveSpeed: cfg.Controls.MoveSpeed,
	}, nil
}

// Update advances the state by dt seconds.
func (s *State) Update(dt float32, f Frame) {
	if f.ToggleCamera {
		s.Camera.Toggle()
	}

	if f.LookYaw != 0 || f.LookPitch != 0 {
		dyaw := mgl32.DegToRad(f.LookYaw)
		dpitch := mgl32.DegToRad(f.LookPitch)
		switch s.Camera.Mode() {
		case camera.FirstPerson:
			s.Player.Turn(dyaw, dpitch)
			s.Camera.Look(dyaw, dpitch)
		case camera.ThirdPerson:
			s.Player.TurnHorizontal(dyaw)
		}
	}

	if f.Intent.Any() {
		s.Player.Move(s.Player.MoveDelta(f.Intent, s.MoveSpeed, dt))
	}
}
