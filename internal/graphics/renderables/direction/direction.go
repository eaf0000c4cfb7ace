// Package direction draws a heading arrow and the nearest compass letter at
// the bottom of the screen.
package direction

import (
	"math"

	"github.com/alecchendev/glitch-game/internal/graphics"
	"github.com/alecchendev/glitch-game/internal/graphics/renderer"
	"github.com/alecchendev/glitch-game/internal/graphics/shaders"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Arrow pointing up: body quad then head triangle.
var arrowVertices = []float32{
	-0.01, -0.08,
	0.01, -0.08,
	0.01, -0.02,
	-0.01, -0.02,

	-0.03, -0.02,
	0.03, -0.02,
	0.0, 0.02,
}

var letters = map[string][]float32{
	"N": {
		-0.02, -0.02, -0.02, 0.02,
		-0.02, 0.02, 0.02, -0.02,
		0.02, -0.02, 0.02, 0.02,
	},
	"E": {
		-0.02, -0.02, -0.02, 0.02,
		-0.02, 0.02, 0.02, 0.02,
		-0.02, 0.0, 0.01, 0.0,
		-0.02, -0.02, 0.02, -0.02,
	},
	"S": {
		0.02, 0.02, -0.02, 0.02,
		-0.02, 0.02, -0.02, 0.0,
		-0.02, 0.0, 0.02, 0.0,
		0.02, 0.0, 0.02, -0.02,
		0.02, -0.02, -0.02, -0.02,
	},
	"W": {
		-0.02, 0.02, -0.02, -0.02,
		-0.02, -0.02, -0.01, 0.0,
		-0.01, 0.0, 0.01, -0.02,
		0.01, -0.02, 0.02, 0.0,
		0.02, 0.0, 0.02, 0.02,
	},
}

var (
	arrowOffset  = mgl32.Vec2{0, -0.85}
	letterOffset = mgl32.Vec2{0, -0.7}
)

// Heading is the screen rotation for front: 0 when facing -z (north),
// positive counter-clockwise.
func Heading(front mgl32.Vec3) float32 {
	return -float32(math.Atan2(float64(front.X()), float64(-front.Z())))
}

// Cardinal names the compass direction closest to front.
func Cardinal(front mgl32.Vec3) string {
	if math.Abs(float64(front.X())) > math.Abs(float64(front.Z())) {
		if front.X() > 0 {
			return "E"
		}
		return "W"
	}
	if front.Z() > 0 {
		return "S"
	}
	return "N"
}

type Direction struct {
	shader    *graphics.Shader
	vao       uint32
	vbo       uint32
	letterVAO uint32
	letterVBO uint32
}

func NewDirection() *Direction {
	return &Direction{}
}

func (d *Direction) Init() error {
	var err error
	d.shader, err = graphics.NewShader(shaders.DirectionVertexShader, shaders.DirectionFragmentShader)
	if err != nil {
		return err
	}

	d.vao, d.vbo = newLineVAO(arrowVertices, gl.STATIC_DRAW)
	d.letterVAO, d.letterVBO = newLineVAO(nil, gl.DYNAMIC_DRAW)
	return nil
}

func newLineVAO(vertices []float32, usage uint32) (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	if len(vertices) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), usage)
	}
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.BindVertexArray(0)
	return vao, vbo
}

func (d *Direction) Render(ctx renderer.RenderContext) {
	defer ctx.Profiler.Track("renderer.renderDirection")()

	front := ctx.Player.Front()
	d.shader.Use()
	d.shader.SetFloat("aspectRatio", ctx.Projection.AspectRatio)

	gl.Disable(gl.DEPTH_TEST)
	defer gl.Enable(gl.DEPTH_TEST)
	gl.LineWidth(1.0)

	d.shader.SetVec3("color", mgl32.Vec3{1, 0, 0})
	d.shader.SetFloat("rotation", Heading(front))
	d.setOffset(arrowOffset)
	gl.BindVertexArray(d.vao)
	gl.DrawArrays(gl.LINE_LOOP, 0, 4)
	gl.DrawArrays(gl.LINE_LOOP, 4, 3)

	letter := letters[Cardinal(front)]
	d.shader.SetVec3("color", mgl32.Vec3{1, 1, 1})
	d.shader.SetFloat("rotation", 0)
	d.setOffset(letterOffset)
	gl.BindVertexArray(d.letterVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.letterVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(letter)*4, gl.Ptr(letter), gl.DYNAMIC_DRAW)
	gl.DrawArrays(gl.LINES, 0, int32(len(letter)/2))
	gl.BindVertexArray(0)
}

func (d *Direction) setOffset(v mgl32.Vec2) {
	d.shader.SetVec2("offset", v)
}

func (d *Direction) SetViewport(width, height int) {}

func (d *Direction) Dispose() {
	for _, vao := range []uint32{d.vao, d.letterVAO} {
		if vao != 0 {
			gl.DeleteVertexArrays(1, &vao)
		}
	}
	for _, vbo := range []uint32{d.vbo, d.letterVBO} {
		if vbo != 0 {
			gl.DeleteBuffers(1, &vbo)
		}
	}
	if d.shader != nil {
		d.shader.Delete()
	}
}
