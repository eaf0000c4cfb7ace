package input

import (
	"testing"

	"github.com/alecchendev/glitch-game/internal/player"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func TestKeyEdges(t *testing.T) {
	im := NewInputManager()

	im.HandleKeyEvent(glfw.KeyC, glfw.Press)
	if !im.IsActive(ActionToggleCamera) || !im.JustPressed(ActionToggleCamera) {
		t.Fatal("press not registered")
	}

	im.PostUpdate()
	if im.JustPressed(ActionToggleCamera) {
		t.Error("JustPressed survived PostUpdate")
	}
	if !im.IsActive(ActionToggleCamera) {
		t.Error("held key reported inactive")
	}

	// Key repeat must not re-trigger the edge
	im.HandleKeyEvent(glfw.KeyC, glfw.Repeat)
	if im.JustPressed(ActionToggleCamera) {
		t.Error("repeat produced a press edge")
	}

	im.HandleKeyEvent(glfw.KeyC, glfw.Release)
	if im.IsActive(ActionToggleCamera) || !im.JustReleased(ActionToggleCamera) {
		t.Error("release not registered")
	}
}

func TestTapWithinOneFrame(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyEscape, glfw.Press)
	im.HandleKeyEvent(glfw.KeyEscape, glfw.Release)
	if !im.JustPressed(ActionPause) {
		t.Error("tap lost before frame end")
	}
}

func TestMoveIntent(t *testing.T) {
	im := NewInputManager()
	im.HandleKeyEvent(glfw.KeyW, glfw.Press)
	im.HandleKeyEvent(glfw.KeyLeft, glfw.Press)

	want := player.Intent{Forward: true, Left: true}
	if got := im.MoveIntent(); got != want {
		t.Errorf("MoveIntent() = %+v, want %+v", got, want)
	}
}

func TestMouseButtons(t *testing.T) {
	im := NewInputManager()
	im.HandleMouseButtonEvent(glfw.MouseButtonRight, glfw.Press)
	if !im.IsActive(ActionMouseRight) {
		t.Error("right button not active")
	}
	im.HandleMouseButtonEvent(glfw.MouseButtonMiddle, glfw.Press)
	if im.IsActive(ActionMouseLeft) {
		t.Error("unbound button changed state")
	}
}

func TestCursorLook(t *testing.T) {
	im := NewInputManager()

	im.HandleCursor(100, 100)
	if dy, dp := im.ConsumeLook(1); dy != 0 || dp != 0 {
		t.Fatalf("first sample produced look (%v, %v)", dy, dp)
	}

	im.HandleCursor(110, 95)
	im.HandleCursor(120, 90)
	dyaw, dpitch := im.ConsumeLook(0.5)
	if dyaw != 10 || dpitch != 5 {
		t.Errorf("look = (%v, %v), want (10, 5)", dyaw, dpitch)
	}

	if dy, dp := im.ConsumeLook(0.5); dy != 0 || dp != 0 {
		t.Errorf("look not cleared: (%v, %v)", dy, dp)
	}
}

func TestResetCursorReprimes(t *testing.T) {
	im := NewInputManager()
	im.HandleCursor(0, 0)
	im.HandleCursor(5, 5)
	im.ResetCursor()

	// A jump after re-capturing the cursor must not spin the view
	im.HandleCursor(500, 500)
	if dy, dp := im.ConsumeLook(1); dy != 0 || dp != 0 {
		t.Errorf("look after reset = (%v, %v), want zero", dy, dp)
	}
}

func TestOutOfRangeAction(t *testing.T) {
	im := NewInputManager()
	if im.IsActive(ActionCount) || im.JustPressed(-1) || im.JustReleased(ActionCount) {
		t.Error("out of range action reported true")
	}
}
