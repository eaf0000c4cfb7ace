package graphics

import (
	"errors"
	"testing"

	"github.com/alecchendev/glitch-game/internal/meshing"
	"github.com/alecchendev/glitch-game/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

type attrib struct {
	slot       uint32
	components int32
	stride     int32
	offset     int
}

// fakeBackend records calls and hands out sequential handles.
type fakeBackend struct {
	next      uint32
	failAfter int // number of successful Gen* calls before returning 0; -1 never fails

	bound       uint32
	arrays      map[uint32]bool
	buffers     map[uint32]bool
	floatData   map[uint32][]float32
	indexData   map[uint32][]uint32
	attribs     map[uint32][]attrib
	draws       []int32
	drawnVAOs   []uint32
	deletedVAOs int
	deletedBufs int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		failAfter: -1,
		arrays:    map[uint32]bool{},
		buffers:   map[uint32]bool{},
		floatData: map[uint32][]float32{},
		indexData: map[uint32][]uint32{},
		attribs:   map[uint32][]attrib{},
	}
}

func (f *fakeBackend) gen() uint32 {
	if f.failAfter == 0 {
		return 0
	}
	if f.failAfter > 0 {
		f.failAfter--
	}
	f.next++
	return f.next
}

func (f *fakeBackend) GenVertexArray() uint32 {
	id := f.gen()
	if id != 0 {
		f.arrays[id] = true
	}
	return id
}

func (f *fakeBackend) GenBuffer() uint32 {
	id := f.gen()
	if id != 0 {
		f.buffers[id] = true
	}
	return id
}

func (f *fakeBackend) BindVertexArray(vao uint32) { f.bound = vao }

func (f *fakeBackend) ArrayBufferData(vbo uint32, data []float32) {
	f.floatData[vbo] = append([]float32(nil), data...)
}

func (f *fakeBackend) ElementBufferData(ebo uint32, data []uint32) {
	f.indexData[ebo] = append([]uint32(nil), data...)
}

func (f *fakeBackend) VertexAttribPointer(slot uint32, components, stride int32, offset int) {
	f.attribs[f.bound] = append(f.attribs[f.bound], attrib{slot, components, stride, offset})
}

func (f *fakeBackend) DrawTriangles(n int32) {
	f.draws = append(f.draws, n)
	f.drawnVAOs = append(f.drawnVAOs, f.bound)
}

func (f *fakeBackend) DeleteVertexArray(vao uint32) {
	delete(f.arrays, vao)
	f.deletedVAOs++
}

func (f *fakeBackend) DeleteBuffer(buf uint32) {
	delete(f.buffers, buf)
	f.deletedBufs++
}

func TestUploadCopiesMeshAndLayout(t *testing.T) {
	fb := newFakeBackend()
	m := meshing.Generate(mgl32.Vec3{1, 2, 3}, world.KindTextured)

	mb, err := Upload(fb, m)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if len(fb.arrays) != 1 || len(fb.buffers) != 2 {
		t.Fatalf("got %d arrays / %d buffers, want 1 / 2", len(fb.arrays), len(fb.buffers))
	}
	if fb.bound != 0 {
		t.Errorf("vertex array left bound after upload: %d", fb.bound)
	}
	if got := len(fb.floatData[mb.vbo]); got != len(m.Vertices) {
		t.Errorf("uploaded %d floats, want %d", got, len(m.Vertices))
	}
	if got := len(fb.indexData[mb.ebo]); got != len(m.Indices) {
		t.Errorf("uploaded %d indices, want %d", got, len(m.Indices))
	}
	attrs := fb.attribs[mb.vao]
	if len(attrs) != len(m.Layout) {
		t.Fatalf("declared %d attributes, want %d", len(attrs), len(m.Layout))
	}
	for i, a := range m.Layout {
		want := attrib{a.Slot, a.Components, a.Stride, a.Offset}
		if attrs[i] != want {
			t.Errorf("attribute %d = %+v, want %+v", i, attrs[i], want)
		}
	}
	if mb.IndexCount() != 36 {
		t.Errorf("IndexCount = %d, want 36", mb.IndexCount())
	}
}

func TestBindDraw(t *testing.T) {
	fb := newFakeBackend()
	mb, err := Upload(fb, meshing.Generate(mgl32.Vec3{1, 1, 1}, world.KindSolidColor))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	mb.Bind()
	mb.Draw()
	mb.DrawCount(6)
	mb.DrawCount(1000)
	mb.DrawCount(0)

	want := []int32{36, 6, 36}
	if len(fb.draws) != len(want) {
		t.Fatalf("draws = %v, want %v", fb.draws, want)
	}
	for i := range want {
		if fb.draws[i] != want[i] {
			t.Errorf("draw %d: %d indices, want %d", i, fb.draws[i], want[i])
		}
		if fb.drawnVAOs[i] != mb.vao {
			t.Errorf("draw %d used vao %d, want %d", i, fb.drawnVAOs[i], mb.vao)
		}
	}
}

func TestReleaseOnce(t *testing.T) {
	fb := newFakeBackend()
	mb, err := Upload(fb, meshing.Generate(mgl32.Vec3{1, 1, 1}, world.KindSolidColor))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	mb.Release()
	mb.Release()

	if !mb.Released() {
		t.Error("Released() = false after Release")
	}
	if fb.deletedVAOs != 1 || fb.deletedBufs != 2 {
		t.Errorf("deleted %d arrays / %d buffers, want 1 / 2", fb.deletedVAOs, fb.deletedBufs)
	}
	if len(fb.arrays) != 0 || len(fb.buffers) != 0 {
		t.Errorf("leaked handles: %v %v", fb.arrays, fb.buffers)
	}
}

func TestUploadAllocationFailure(t *testing.T) {
	m := meshing.Generate(mgl32.Vec3{1, 1, 1}, world.KindSolidColor)

	fb := newFakeBackend()
	fb.failAfter = 0
	if _, err := Upload(fb, m); !errors.Is(err, ErrBufferAllocation) {
		t.Fatalf("vao failure: got %v, want ErrBufferAllocation", err)
	}

	fb = newFakeBackend()
	fb.failAfter = 2 // vao and vbo succeed, ebo fails
	if _, err := Upload(fb, m); !errors.Is(err, ErrBufferAllocation) {
		t.Fatalf("ebo failure: got %v, want ErrBufferAllocation", err)
	}
	if len(fb.arrays) != 0 || len(fb.buffers) != 0 {
		t.Errorf("partial allocation leaked: %v %v", fb.arrays, fb.buffers)
	}
}
