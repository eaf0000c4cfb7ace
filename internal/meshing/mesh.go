// Package meshing turns block boxes into indexed triangle meshes.
package meshing

import (
	"github.com/alecchendev/glitch-game/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	bytesFloat32 = 4

	// SolidFloatsPerVertex is pos.xyz
	SolidFloatsPerVertex = 3
	// TexturedFloatsPerVertex is pos.xyz + uv
	TexturedFloatsPerVertex = 5

	SolidVertexCount    = 8
	TexturedVertexCount = 24
	// IndexCount is the same for both topologies: 6 faces * 2 triangles * 3.
	IndexCount = 36
)

// Attribute describes one vertex attribute inside an interleaved buffer.
// Stride and Offset are in bytes.
type Attribute struct {
	Slot       uint32
	Components int32
	Stride     int32
	Offset     int
}

// Mesh is an immutable indexed triangle list in local space.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
	Layout   []Attribute
}

// VertexCount returns the number of vertices described by Vertices.
func (m Mesh) VertexCount() int {
	if len(m.Layout) == 0 {
		return 0
	}
	return len(m.Vertices) * bytesFloat32 / int(m.Layout[0].Stride)
}

// Key identifies meshes that are guaranteed to be identical.
type Key struct {
	Size mgl32.Vec3
	Kind world.Kind
}

// KeyFor returns the mesh key for a block.
func KeyFor(b world.Block) Key {
	return Key{Size: b.Size, Kind: b.Kind}
}

// ForBlock generates the mesh for a block.
func ForBlock(b world.Block) Mesh {
	return Generate(b.Size, b.Kind)
}

// Generate builds the mesh for a box of the given size with its min corner at
// the origin. Non-positive sizes are not rejected and give a degenerate or
// inside-out mesh.
func Generate(size mgl32.Vec3, kind world.Kind) Mesh {
	switch kind {
	case world.KindTextured:
		return texturedCube(size)
	default:
		return solidCube(size)
	}
}

// SolidLayout is the attribute layout of solid-color meshes.
func SolidLayout() []Attribute {
	return []Attribute{
		{Slot: 0, Components: 3, Stride: SolidFloatsPerVertex * bytesFloat32, Offset: 0},
	}
}

// TexturedLayout is the attribute layout of textured meshes.
func TexturedLayout() []Attribute {
	stride := int32(TexturedFloatsPerVertex * bytesFloat32)
	return []Attribute{
		{Slot: 0, Components: 3, Stride: stride, Offset: 0},
		{Slot: 1, Components: 2, Stride: stride, Offset: 3 * bytesFloat32},
	}
}
