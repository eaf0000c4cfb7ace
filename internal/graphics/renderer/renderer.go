package renderer

import (
	"fmt"

	"github.com/alecchendev/glitch-game/internal/camera"
	"github.com/alecchendev/glitch-game/internal/graphics"
	"github.com/alecchendev/glitch-game/internal/logger"
	"github.com/alecchendev/glitch-game/internal/player"
	"github.com/alecchendev/glitch-game/internal/profiling"
	"github.com/alecchendev/glitch-game/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// ClearColor is the background color.
var ClearColor = mgl32.Vec3{0.2, 0.3, 0.3}

// Renderer draws its renderables in order each frame.
type Renderer struct {
	renderables []Renderable
	projection  *graphics.Projection
	profiler    *profiling.Profiler
	wireframe   bool
}

// NewRenderer sets global GL state and initializes rs in order. If one fails,
// the ones already initialized are disposed.
func NewRenderer(projection *graphics.Projection, profiler *profiling.Profiler, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	for i, r := range rs {
		if err := r.Init(); err != nil {
			for j := i - 1; j >= 0; j-- {
				rs[j].Dispose()
			}
			return nil, fmt.Errorf("init renderable %T: %w", r, err)
		}
	}

	return &Renderer{
		renderables: rs,
		projection:  projection,
		profiler:    profiler,
	}, nil
}

// Render clears the frame and draws everything from cam's point of view.
func (r *Renderer) Render(w *world.World, p *player.Player, cam *camera.Camera, dt float64) {
	defer r.profiler.Track("renderer.Render")()

	gl.ClearColor(ClearColor.X(), ClearColor.Y(), ClearColor.Z(), 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := RenderContext{
		World:          w,
		Player:         p,
		CameraMode:     cam.Mode(),
		CameraPosition: cam.Position(),
		CameraFront:    cam.Front(),
		Projection:     r.projection,
		Profiler:       r.profiler,
		Wireframe:      r.wireframe,
		DT:             dt,
		View:           cam.ViewMatrix(),
		Proj:           r.projection.Matrix(),
	}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// ToggleWireframe flips wireframe drawing and returns the new setting.
func (r *Renderer) ToggleWireframe() bool {
	r.wireframe = !r.wireframe
	return r.wireframe
}

// UpdateViewport resizes the GL viewport and the projection.
func (r *Renderer) UpdateViewport(fbWidth, fbHeight, winWidth, winHeight int) {
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	r.projection.SetViewport(winWidth, winHeight)
	for _, renderable := range r.renderables {
		renderable.SetViewport(winWidth, winHeight)
	}
}

// Dispose cleans up all renderables in reverse order.
func (r *Renderer) Dispose() {
	for i := len(r.renderables) - 1; i >= 0; i-- {
		r.renderables[i].Dispose()
	}
	logger.Debug("renderer disposed", zap.Int("renderables", len(r.renderables)))
}
