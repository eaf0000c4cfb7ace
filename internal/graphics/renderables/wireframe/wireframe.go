// Package wireframe outlines the block under the crosshair in first person
// and the player's hurtbox in third person.
package wireframe

import (
	"github.com/alecchendev/glitch-game/internal/camera"
	"github.com/alecchendev/glitch-game/internal/graphics"
	"github.com/alecchendev/glitch-game/internal/graphics/renderer"
	"github.com/alecchendev/glitch-game/internal/graphics/shaders"
	"github.com/alecchendev/glitch-game/internal/physics"
	"github.com/alecchendev/glitch-game/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// edgeVertices are the 12 edges of the unit cube [0,1]^3 as line pairs.
var edgeVertices = []float32{
	// Bottom
	0, 0, 0, 1, 0, 0,
	1, 0, 0, 1, 0, 1,
	1, 0, 1, 0, 0, 1,
	0, 0, 1, 0, 0, 0,

	// Top
	0, 1, 0, 1, 1, 0,
	1, 1, 0, 1, 1, 1,
	1, 1, 1, 0, 1, 1,
	0, 1, 1, 0, 1, 0,

	// Verticals
	0, 0, 0, 0, 1, 0,
	1, 0, 0, 1, 1, 0,
	1, 0, 1, 1, 1, 1,
	0, 0, 1, 0, 1, 1,
}

// pad grows outlines slightly so they are not z-fighting the faces.
const pad = 0.01

// OutlineModel scales and places the unit cube onto b, grown by pad.
func OutlineModel(b world.Box) mgl32.Mat4 {
	origin := b.Origin.Sub(mgl32.Vec3{pad, pad, pad})
	size := b.Size.Add(mgl32.Vec3{2 * pad, 2 * pad, 2 * pad})
	return mgl32.Translate3D(origin.X(), origin.Y(), origin.Z()).
		Mul4(mgl32.Scale3D(size.X(), size.Y(), size.Z()))
}

// Target picks the box to outline for the frame, if any.
func Target(ctx renderer.RenderContext) (world.Box, bool) {
	switch ctx.CameraMode {
	case camera.ThirdPerson:
		return ctx.Player.Hurtbox(), true
	case camera.FirstPerson:
		hit := physics.Raycast(ctx.CameraPosition, ctx.CameraFront,
			physics.MinReachDistance, physics.MaxReachDistance, ctx.World.Blocks)
		if !hit.Hit {
			return world.Box{}, false
		}
		return ctx.World.Blocks[hit.Index].Box, true
	}
	return world.Box{}, false
}

// Wireframe draws black box edges.
type Wireframe struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
}

func NewWireframe() *Wireframe {
	return &Wireframe{}
}

func (w *Wireframe) Init() error {
	var err error
	w.shader, err = graphics.NewShader(shaders.LineVertexShader, shaders.LineFragmentShader)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &w.vao)
	gl.BindVertexArray(w.vao)
	gl.GenBuffers(1, &w.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, w.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(edgeVertices)*4, gl.Ptr(edgeVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.BindVertexArray(0)

	return nil
}

func (w *Wireframe) Render(ctx renderer.RenderContext) {
	defer ctx.Profiler.Track("renderer.renderOutline")()

	box, ok := Target(ctx)
	if !ok {
		return
	}
	model := OutlineModel(box)
	w.shader.Use()
	w.shader.SetMat4("projection", ctx.Proj)
	w.shader.SetMat4("view", ctx.View)
	w.shader.SetMat4("model", model)
	w.shader.SetVec3("color", mgl32.Vec3{0, 0, 0})

	gl.BindVertexArray(w.vao)
	gl.LineWidth(1.0)
	gl.DrawArrays(gl.LINES, 0, int32(len(edgeVertices)/3))
	gl.BindVertexArray(0)
}

func (w *Wireframe) SetViewport(width, height int) {}

// Dispose cleans up OpenGL resources
func (w *Wireframe) Dispose() {
	if w.vao != 0 {
		gl.DeleteVertexArrays(1, &w.vao)
	}
	if w.vbo != 0 {
		gl.DeleteBuffers(1, &w.vbo)
	}
	if w.shader != nil {
		w.shader.Delete()
	}
}
