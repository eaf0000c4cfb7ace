// Package blocks draws the world's blocks.
package blocks

import (
	"fmt"

	"github.com/alecchendev/glitch-game/internal/graphics"
	"github.com/alecchendev/glitch-game/internal/graphics/renderer"
	"github.com/alecchendev/glitch-game/internal/graphics/shaders"
	"github.com/alecchendev/glitch-game/internal/logger"
	"github.com/alecchendev/glitch-game/internal/meshing"
	"github.com/alecchendev/glitch-game/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// LightDir is the direction the scene light travels.
var LightDir = mgl32.Vec3{-0.3, -1.0, -0.5}

type drawItem struct {
	key     meshing.Key
	box     world.Box
	model   mgl32.Mat4
	color   mgl32.Vec3
	texture string
	texID   uint32
}

// plan returns the distinct mesh keys in first-seen order and one draw item
// per block, split by kind.
func plan(blocks []world.Block) (keys []meshing.Key, solid, textured []drawItem) {
	seen := make(map[meshing.Key]bool)
	for _, b := range blocks {
		k := meshing.KeyFor(b)
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
		item := drawItem{key: k, box: b.Box, model: b.ModelMatrix(), color: b.Color, texture: b.Texture}
		if b.Kind == world.KindTextured {
			textured = append(textured, item)
		} else {
			solid = append(solid, item)
		}
	}
	return keys, solid, textured
}

// Blocks draws every block of a world with one mesh buffer per distinct
// size and kind.
type Blocks struct {
	world    *world.World
	backend  graphics.Backend
	textures *graphics.TextureCache

	colorShader   *graphics.Shader
	textureShader *graphics.Shader

	meshes   map[meshing.Key]*graphics.MeshBuffer
	solid    []drawItem
	textured []drawItem

	visibleSolid    []drawItem
	visibleTextured []drawItem
	culled          int
}

func NewBlocks(w *world.World, backend graphics.Backend, textures *graphics.TextureCache) *Blocks {
	return &Blocks{
		world:    w,
		backend:  backend,
		textures: textures,
		meshes:   make(map[meshing.Key]*graphics.MeshBuffer),
	}
}

// Init compiles the shaders, uploads meshes and loads textures.
func (b *Blocks) Init() error {
	var err error
	b.colorShader, err = graphics.NewShader(shaders.ColorVertexShader, shaders.ColorFragmentShader)
	if err != nil {
		return fmt.Errorf("color shader: %w", err)
	}
	b.textureShader, err = graphics.NewShader(shaders.TextureVertexShader, shaders.TextureFragmentShader)
	if err != nil {
		return fmt.Errorf("texture shader: %w", err)
	}

	keys, solid, textured := plan(b.world.Blocks)
	for _, k := range keys {
		mb, err := graphics.Upload(b.backend, meshing.Generate(k.Size, k.Kind))
		if err != nil {
			return fmt.Errorf("mesh %v %v: %w", k.Kind, k.Size, err)
		}
		b.meshes[k] = mb
	}

	for i := range textured {
		textured[i].texID, err = b.textures.Get(textured[i].texture)
		if err != nil {
			return err
		}
	}
	b.solid, b.textured = solid, textured

	logger.Info("blocks uploaded",
		zap.Int("blocks", len(b.world.Blocks)),
		zap.Int("meshes", len(b.meshes)),
		zap.Int("textures", b.textures.Len()))
	return nil
}

// Render draws the visible blocks.
func (b *Blocks) Render(ctx renderer.RenderContext) {
	defer ctx.Profiler.Track("renderer.renderBlocks")()

	if ctx.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		defer gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	b.cull(ctx.Proj.Mul4(ctx.View))

	b.colorShader.Use()
	b.colorShader.SetMat4("view", ctx.View)
	b.colorShader.SetMat4("projection", ctx.Proj)
	b.colorShader.SetVec3("lightDir", LightDir)
	for _, item := range b.visibleSolid {
		b.colorShader.SetMat4("model", item.model)
		b.colorShader.SetVec3("color", item.color)
		b.draw(item.key)
	}

	b.textureShader.Use()
	b.textureShader.SetMat4("view", ctx.View)
	b.textureShader.SetMat4("projection", ctx.Proj)
	b.textureShader.SetInt("tex", 0)
	gl.ActiveTexture(gl.TEXTURE0)
	for _, item := range b.visibleTextured {
		gl.BindTexture(gl.TEXTURE_2D, item.texID)
		b.textureShader.SetMat4("model", item.model)
		b.draw(item.key)
	}

	b.backend.BindVertexArray(0)
}

// cull keeps the items inside the frustum of clip and counts the rest.
func (b *Blocks) cull(clip mgl32.Mat4) {
	f := frustumFromClip(clip)
	b.culled = 0
	b.visibleSolid = b.visibleSolid[:0]
	for _, item := range b.solid {
		if f.intersects(item.box) {
			b.visibleSolid = append(b.visibleSolid, item)
		} else {
			b.culled++
		}
	}
	b.visibleTextured = b.visibleTextured[:0]
	for _, item := range b.textured {
		if f.intersects(item.box) {
			b.visibleTextured = append(b.visibleTextured, item)
		} else {
			b.culled++
		}
	}
}

func (b *Blocks) draw(k meshing.Key) {
	mb := b.meshes[k]
	mb.Bind()
	mb.Draw()
}

// Culled returns how many blocks the last frame skipped.
func (b *Blocks) Culled() int {
	return b.culled
}

func (b *Blocks) SetViewport(width, height int) {}

// Dispose releases meshes, textures and shaders.
func (b *Blocks) Dispose() {
	for k, mb := range b.meshes {
		mb.Release()
		delete(b.meshes, k)
	}
	b.textures.Release()
	if b.colorShader != nil {
		b.colorShader.Delete()
	}
	if b.textureShader != nil {
		b.textureShader.Delete()
	}
}
