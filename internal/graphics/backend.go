package graphics

import "github.com/go-gl/gl/v4.1-core/gl"

const (
	bytesFloat32 = 4
	bytesUint32  = 4
)

// Backend is the subset of the render API that mesh buffers need. All calls
// must happen on the thread that owns the GL context.
type Backend interface {
	GenVertexArray() uint32
	GenBuffer() uint32
	BindVertexArray(vao uint32)
	// ArrayBufferData binds vbo as the array buffer and uploads data.
	ArrayBufferData(vbo uint32, data []float32)
	// ElementBufferData binds ebo as the element buffer of the bound vertex
	// array and uploads data.
	ElementBufferData(ebo uint32, data []uint32)
	// VertexAttribPointer declares a float attribute read from the bound
	// array buffer. stride and offset are in bytes.
	VertexAttribPointer(slot uint32, components, stride int32, offset int)
	DrawTriangles(indexCount int32)
	DeleteVertexArray(vao uint32)
	DeleteBuffer(buf uint32)
}

// GLBackend implements Backend on OpenGL 4.1 core.
type GLBackend struct{}

func (GLBackend) GenVertexArray() uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return vao
}

func (GLBackend) GenBuffer() uint32 {
	var buf uint32
	gl.GenBuffers(1, &buf)
	return buf
}

func (GLBackend) BindVertexArray(vao uint32) {
	gl.BindVertexArray(vao)
}

func (GLBackend) ArrayBufferData(vbo uint32, data []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*bytesFloat32, gl.Ptr(data), gl.STATIC_DRAW)
}

func (GLBackend) ElementBufferData(ebo uint32, data []uint32) {
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data)*bytesUint32, gl.Ptr(data), gl.STATIC_DRAW)
}

func (GLBackend) VertexAttribPointer(slot uint32, components, stride int32, offset int) {
	gl.EnableVertexAttribArray(slot)
	gl.VertexAttribPointerWithOffset(slot, components, gl.FLOAT, false, stride, uintptr(offset))
}

func (GLBackend) DrawTriangles(indexCount int32) {
	gl.DrawElements(gl.TRIANGLES, indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
}

func (GLBackend) DeleteVertexArray(vao uint32) {
	gl.DeleteVertexArrays(1, &vao)
}

func (GLBackend) DeleteBuffer(buf uint32) {
	gl.DeleteBuffers(1, &buf)
}
