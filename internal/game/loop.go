package game

import (
	"time"

	"github.com/alecchendev/glitch-game/internal/config"
	"github.com/alecchendev/glitch-game/internal/graphics/renderer"
	"github.com/alecchendev/glitch-game/internal/input"
	"github.com/alecchendev/glitch-game/internal/logger"
	"github.com/alecchendev/glitch-game/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// CullCounter reports how many blocks the last frame skipped.
type CullCounter interface {
	Culled() int
}

// Loop runs frames until the window closes or Quit is pressed.
type Loop struct {
	window   *glfw.Window
	input    *input.InputManager
	renderer *renderer.Renderer
	state    *State
	profiler *profiling.Profiler
	culler   CullCounter
	limiter  *FPSLimiter

	sensitivity   float32
	paused        bool
	showProfiling bool

	lastTime     time.Time
	frames       int
	lastFPSCheck time.Time
}

// NewLoop wires window callbacks to im and r.
func NewLoop(window *glfw.Window, im *input.InputManager, r *renderer.Renderer, s *State, p *profiling.Profiler, c CullCounter, cfg *config.Config) *Loop {
	l := &Loop{
		window:       window,
		input:        im,
		renderer:     r,
		state:        s,
		profiler:     p,
		culler:       c,
		limiter:      NewFPSLimiter(cfg.Graphics.FPSLimit),
		sensitivity:  cfg.Controls.MouseSensitivity,
		lastTime:     time.Now(),
		lastFPSCheck: time.Now(),
	}
	l.setupCallbacks()
	return l
}

func (l *Loop) setupCallbacks() {
	l.input.Attach(l.window)

	l.window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		winW, winH := w.GetSize()
		l.renderer.UpdateViewport(fbWidth, fbHeight, winW, winH)
	})

	l.window.SetFocusCallback(func(w *glfw.Window, focused bool) {
		if !focused && !l.paused {
			l.setPaused(true)
		}
	})

	fbW, fbH := l.window.GetFramebufferSize()
	winW, winH := l.window.GetSize()
	l.renderer.UpdateViewport(fbW, fbH, winW, winH)
}

// Run blocks until the loop ends.
func (l *Loop) Run() {
	logger.Info("entering game loop", zap.Stringer("camera", l.state.Camera.Mode()))
	for !l.window.ShouldClose() {
		l.tick()
	}
	logger.Info("game loop finished")
}

func (l *Loop) tick() {
	l.profiler.Reset()
	now := time.Now()
	dt := now.Sub(l.lastTime).Seconds()
	l.lastTime = now

	func() { defer l.profiler.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	l.handleActions()

	frame := frameFromInput(l.input, l.paused, l.sensitivity)
	func() { defer l.profiler.Track("state.Update")(); l.state.Update(float32(dt), frame) }()
	if frame.ToggleCamera {
		logger.Info("camera mode changed", zap.Stringer("mode", l.state.Camera.Mode()))
	}

	l.renderer.Render(l.state.World, l.state.Player, l.state.Camera, dt)

	func() { defer l.profiler.Track("glfw.SwapBuffers")(); l.window.SwapBuffers() }()

	l.input.PostUpdate()
	l.report(now)
	l.limiter.Wait(l.paused)
}

// frameFromInput collects the frame's input. While paused nothing reaches
// the state and pending look is dropped.
func frameFromInput(im *input.InputManager, paused bool, sensitivity float32) Frame {
	dyaw, dpitch := im.ConsumeLook(sensitivity)
	if paused {
		return Frame{}
	}
	return Frame{
		Intent:       im.MoveIntent(),
		LookYaw:      dyaw,
		LookPitch:    dpitch,
		ToggleCamera: im.JustPressed(input.ActionToggleCamera),
	}
}

func (l *Loop) handleActions() {
	if l.input.JustPressed(input.ActionQuit) {
		logger.Info("quit requested")
		l.window.SetShouldClose(true)
	}
	if l.input.JustPressed(input.ActionPause) {
		l.setPaused(!l.paused)
	}
	if l.input.JustPressed(input.ActionMouseLeft) && l.paused {
		l.setPaused(false)
	}
	if l.input.JustPressed(input.ActionToggleWireframe) {
		on := l.renderer.ToggleWireframe()
		logger.Debug("wireframe toggled", zap.Bool("on", on))
	}
	if l.input.JustPressed(input.ActionToggleProfiling) {
		l.showProfiling = !l.showProfiling
		logger.Debug("profiling toggled", zap.Bool("on", l.showProfiling))
	}
}

func (l *Loop) setPaused(paused bool) {
	l.paused = paused
	if paused {
		l.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	} else {
		l.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	}
	// The cursor jumps when capture changes
	l.input.ResetCursor()
	logger.Info("pause state changed", zap.Bool("paused", paused))
}

func (l *Loop) report(frameStart time.Time) {
	l.frames++
	if time.Since(l.lastFPSCheck) >= time.Second {
		if l.showProfiling {
			logger.Info("fps",
				zap.Int("frames", l.frames),
				zap.Int("culled", l.culler.Culled()),
				zap.String("top", l.profiler.TopN(3)))
		} else {
			logger.Debug("fps", zap.Int("frames", l.frames), zap.Int("culled", l.culler.Culled()))
		}
		l.frames = 0
		l.lastFPSCheck = time.Now()
	}

	target := l.limiter.Target(l.paused)
	if target == 0 {
		return
	}
	if took := time.Since(frameStart); took > target {
		logger.Warn("slow frame",
			zap.Duration("took", took),
			zap.Duration("target", target),
			zap.Duration("glfw", l.profiler.Sum("glfw.")),
			zap.Int("culled", l.culler.Culled()),
			zap.String("top", l.profiler.TopN(3)))
	}
}
