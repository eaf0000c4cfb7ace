package crosshair

import (
	"github.com/alecchendev/glitch-game/internal/camera"
	"github.com/alecchendev/glitch-game/internal/graphics"
	"github.com/alecchendev/glitch-game/internal/graphics/renderer"
	"github.com/alecchendev/glitch-game/internal/graphics/shaders"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Vertices are two crossing lines in normalized device coordinates.
var Vertices = []float32{
	-0.02, 0.0,
	0.02, 0.0,
	0.0, -0.02,
	0.0, 0.02,
}

// Crosshair draws a screen-center cross in first person.
type Crosshair struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
}

func NewCrosshair() *Crosshair {
	return &Crosshair{}
}

func (c *Crosshair) Init() error {
	var err error
	c.shader, err = graphics.NewShader(shaders.CrosshairVertexShader, shaders.CrosshairFragmentShader)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &c.vao)
	gl.BindVertexArray(c.vao)
	gl.GenBuffers(1, &c.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, c.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(Vertices)*4, gl.Ptr(Vertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.BindVertexArray(0)

	return nil
}

func (c *Crosshair) Render(ctx renderer.RenderContext) {
	if ctx.CameraMode != camera.FirstPerson {
		return
	}
	defer ctx.Profiler.Track("renderer.renderCrosshair")()

	c.shader.Use()
	c.shader.SetFloat("aspectRatio", ctx.Projection.AspectRatio)

	gl.Disable(gl.DEPTH_TEST)
	gl.BindVertexArray(c.vao)
	gl.LineWidth(1.0)
	gl.DrawArrays(gl.LINES, 0, 4)
	gl.BindVertexArray(0)
	gl.Enable(gl.DEPTH_TEST)
}

func (c *Crosshair) SetViewport(width, height int) {}

// Dispose cleans up OpenGL resources
func (c *Crosshair) Dispose() {
	if c.vao != 0 {
		gl.DeleteVertexArrays(1, &c.vao)
	}
	if c.vbo != 0 {
		gl.DeleteBuffers(1, &c.vbo)
	}
	if c.shader != nil {
		c.shader.Delete()
	}
}
