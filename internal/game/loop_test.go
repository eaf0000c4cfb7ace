package game

import (
	"testing"

	"github.com/alecchendev/glitch-game/internal/input"
	"github.com/alecchendev/glitch-game/internal/player"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestFrameFromInput(t *testing.T) {
	im := input.NewInputManager()
	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	im.HandleKeyEvent(glfw.KeyC, glfw.Press)
	im.HandleCursor(0, 0)
	im.HandleCursor(10, -20)

	f := frameFromInput(im, false, 0.5)
	if f.Intent != (player.Intent{Forward: true}) {
		t.Errorf("intent = %+v", f.Intent)
	}
	if !f.ToggleCamera {
		t.Error("toggle not forwarded")
	}
	if f.LookYaw != 5 || f.LookPitch != 10 {
		t.Errorf("look = (%v, %v), want (5, 10)", f.LookYaw, f.LookPitch)
	}
}

func TestFrameFromInputPaused(t *testing.T) {
	im := input.NewInputManager()
	im.HandleKeyEvent(glfw.KeyD, glfw.Press)
	im.HandleCursor(0, 0)
	im.HandleCursor(50, 50)

	if f := frameFromInput(im, true, 1); f != (Frame{}) {
		t.Errorf("paused frame = %+v, want zero", f)
	}
	// Look gathered while paused must not leak into the next frame
	if dy, dp := im.ConsumeLook(1); dy != 0 || dp != 0 {
		t.Errorf("look kept after paused frame: (%v, %v)", dy, dp)
	}
}
