package graphics

import (
	"fmt"

	"github.com/alecchendev/glitch-game/internal/meshing"
)

// MeshBuffer owns the vertex array, vertex buffer and index buffer of one
// uploaded mesh. Release must be called before the MeshBuffer is dropped,
// otherwise the backend resources leak.
type MeshBuffer struct {
	backend    Backend
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
	released   bool
}

// Upload allocates backend buffers for m and copies its data.
func Upload(backend Backend, m meshing.Mesh) (*MeshBuffer, error) {
	mb := &MeshBuffer{backend: backend, indexCount: int32(len(m.Indices))}

	mb.vao = backend.GenVertexArray()
	if mb.vao == 0 {
		return nil, fmt.Errorf("%w: vertex array", ErrBufferAllocation)
	}
	backend.BindVertexArray(mb.vao)
	defer backend.BindVertexArray(0)

	mb.vbo = backend.GenBuffer()
	mb.ebo = backend.GenBuffer()
	if mb.vbo == 0 || mb.ebo == 0 {
		mb.Release()
		return nil, fmt.Errorf("%w: vertex/index buffer", ErrBufferAllocation)
	}

	backend.ArrayBufferData(mb.vbo, m.Vertices)
	backend.ElementBufferData(mb.ebo, m.Indices)
	for _, a := range m.Layout {
		backend.VertexAttribPointer(a.Slot, a.Components, a.Stride, a.Offset)
	}

	return mb, nil
}

// Bind makes this mesh the active vertex array.
func (mb *MeshBuffer) Bind() {
	mb.backend.BindVertexArray(mb.vao)
}

// Draw issues one indexed draw for the whole mesh. Bind must have been called
// and a shader matching the mesh layout must be in use.
func (mb *MeshBuffer) Draw() {
	mb.backend.DrawTriangles(mb.indexCount)
}

// DrawCount draws the first count indices, capped at the mesh size.
func (mb *MeshBuffer) DrawCount(count int32) {
	if count > mb.indexCount {
		count = mb.indexCount
	}
	if count <= 0 {
		return
	}
	mb.backend.DrawTriangles(count)
}

// IndexCount returns the number of indices uploaded.
func (mb *MeshBuffer) IndexCount() int32 {
	return mb.indexCount
}

// Released reports whether Release has run.
func (mb *MeshBuffer) Released() bool {
	return mb.released
}

// Release deletes the backend handles. Only the first call has an effect.
func (mb *MeshBuffer) Release() {
	if mb.released {
		return
	}
	mb.released = true
	if mb.ebo != 0 {
		mb.backend.DeleteBuffer(mb.ebo)
	}
	if mb.vbo != 0 {
		mb.backend.DeleteBuffer(mb.vbo)
	}
	if mb.vao != 0 {
		mb.backend.DeleteVertexArray(mb.vao)
	}
	mb.vao, mb.vbo, mb.ebo = 0, 0, 0
}
