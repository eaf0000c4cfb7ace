// Package playermodel draws the player's body when the camera is behind it.
package playermodel

import (
	"fmt"

	"github.com/alecchendev/glitch-game/internal/camera"
	"github.com/alecchendev/glitch-game/internal/graphics"
	"github.com/alecchendev/glitch-game/internal/graphics/renderer"
	"github.com/alecchendev/glitch-game/internal/graphics/shaders"
	"github.com/alecchendev/glitch-game/internal/logger"
	"github.com/alecchendev/glitch-game/internal/meshing"
	"github.com/alecchendev/glitch-game/internal/world"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// BodyColor is the player's hurtbox color.
var BodyColor = mgl32.Vec3{0.85, 0.35, 0.25}

// PlayerModel renders the hurtbox as a solid cube in third person.
type PlayerModel struct {
	backend graphics.Backend
	shader  *graphics.Shader
	mesh    *graphics.MeshBuffer
	size    mgl32.Vec3
	warned  bool
}

func NewPlayerModel(backend graphics.Backend) *PlayerModel {
	return &PlayerModel{backend: backend}
}

func (m *PlayerModel) Init() error {
	var err error
	m.shader, err = graphics.NewShader(shaders.ColorVertexShader, shaders.ColorFragmentShader)
	if err != nil {
		return fmt.Errorf("player shader: %w", err)
	}
	return nil
}

// visible reports whether the body should be drawn for mode.
func visible(mode camera.Mode) bool {
	return mode == camera.ThirdPerson
}

func (m *PlayerModel) Render(ctx renderer.RenderContext) {
	if !visible(ctx.CameraMode) {
		return
	}
	defer ctx.Profiler.Track("renderer.renderPlayer")()

	box := ctx.Player.Hurtbox()
	if !m.prepare(box.Size) {
		return
	}

	m.shader.Use()
	m.shader.SetMat4("view", ctx.View)
	m.shader.SetMat4("projection", ctx.Proj)
	m.shader.SetMat4("model", box.ModelMatrix())
	m.shader.SetVec3("color", BodyColor)
	m.shader.SetVec3("lightDir", mgl32.Vec3{-0.3, -1.0, -0.5})

	m.mesh.Bind()
	m.mesh.Draw()
	m.backend.BindVertexArray(0)
}

// prepare makes sure a mesh for size is uploaded. An upload failure is
// logged once until an upload succeeds again.
func (m *PlayerModel) prepare(size mgl32.Vec3) bool {
	if err := m.ensureMesh(size); err != nil {
		if !m.warned {
			logger.Warn("player mesh upload failed", zap.Any("size", size), zap.Error(err))
			m.warned = true
		}
		return false
	}
	m.warned = false
	return true
}

// ensureMesh uploads a cube for size, replacing the previous one if the
// hurtbox changed.
func (m *PlayerModel) ensureMesh(size mgl32.Vec3) error {
	if m.mesh != nil && m.size == size {
		return nil
	}
	mb, err := graphics.Upload(m.backend, meshing.Generate(size, world.KindSolidColor))
	if err != nil {
		return err
	}
	if m.mesh != nil {
		m.mesh.Release()
	}
	m.mesh, m.size = mb, size
	return nil
}

func (m *PlayerModel) SetViewport(width, height int) {}

func (m *PlayerModel) Dispose() {
	if m.mesh != nil {
		m.mesh.Release()
		m.mesh = nil
	}
	if m.shader != nil {
		m.shader.Delete()
	}
}
