package renderer

import (
	"github.com/alecchendev/glitch-game/internal/camera"
	"github.com/alecchendev/glitch-game/internal/graphics"
	"github.com/alecchendev/glitch-game/internal/player"
	"github.com/alecchendev/glitch-game/internal/profiling"
	"github.com/alecchendev/glitch-game/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext is the per-frame data shared by all renderables.
type RenderContext struct {
	World      *world.World
	Player     *player.Player
	Projection *graphics.Projection
	Profiler   *profiling.Profiler
	Wireframe  bool
	DT         float64
	View       mgl32.Mat4
	Proj       mgl32.Mat4

	CameraMode     camera.Mode
	CameraPosition mgl32.Vec3
	CameraFront    mgl32.Vec3
}

// Renderable is one feature drawn each frame.
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
