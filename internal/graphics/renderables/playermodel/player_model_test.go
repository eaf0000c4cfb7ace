package playermodel

import (
	"testing"

	"github.com/alecchendev/glitch-game/internal/camera"
	"github.com/alecchendev/glitch-game/internal/logger"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestVisibleOnlyInThirdPerson(t *testing.T) {
	if visible(camera.FirstPerson) {
		t.Error("body drawn in first person")
	}
	if !visible(camera.ThirdPerson) {
		t.Error("body hidden in third person")
	}
}

type countingBackend struct {
	next    uint32
	deleted int
	fail    bool
}

func (b *countingBackend) GenVertexArray() uint32 {
	if b.fail {
		return 0
	}
	b.next++
	return b.next
}

func (b *countingBackend) GenBuffer() uint32                             { b.next++; return b.next }
func (b *countingBackend) BindVertexArray(uint32)                        {}
func (b *countingBackend) ArrayBufferData(uint32, []float32)             {}
func (b *countingBackend) ElementBufferData(uint32, []uint32)            {}
func (b *countingBackend) VertexAttribPointer(uint32, int32, int32, int) {}
func (b *countingBackend) DrawTriangles(int32)                           {}
func (b *countingBackend) DeleteVertexArray(uint32)                      { b.deleted++ }
func (b *countingBackend) DeleteBuffer(uint32)                           { b.deleted++ }

func TestEnsureMeshReuploadsOnResize(t *testing.T) {
	backend := &countingBackend{}
	m := NewPlayerModel(backend)

	if err := m.ensureMesh(mgl32.Vec3{1, 1, 1}); err != nil {
		t.Fatalf("ensureMesh: %v", err)
	}
	first := m.mesh
	if err := m.ensureMesh(mgl32.Vec3{1, 1, 1}); err != nil {
		t.Fatalf("ensureMesh: %v", err)
	}
	if m.mesh != first {
		t.Error("same size uploaded a new mesh")
	}

	if err := m.ensureMesh(mgl32.Vec3{1, 2, 1}); err != nil {
		t.Fatalf("ensureMesh: %v", err)
	}
	if m.mesh == first || !first.Released() {
		t.Error("resize did not replace and release the old mesh")
	}
	if backend.deleted != 3 {
		t.Errorf("deleted %d handles, want 3", backend.deleted)
	}

	m.Dispose()
	if backend.deleted != 6 {
		t.Errorf("deleted %d handles after dispose, want 6", backend.deleted)
	}
}

func TestUploadFailureWarnsOnce(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	prev := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = prev })

	backend := &countingBackend{fail: true}
	m := NewPlayerModel(backend)

	for i := 0; i < 3; i++ {
		if m.prepare(mgl32.Vec3{1, 1, 1}) {
			t.Fatal("prepare succeeded without a vertex array")
		}
	}
	if n := logs.FilterMessage("player mesh upload failed").Len(); n != 1 {
		t.Fatalf("got %d warnings, want 1", n)
	}

	backend.fail = false
	if !m.prepare(mgl32.Vec3{1, 1, 1}) {
		t.Fatal("prepare failed after the backend recovered")
	}
	backend.fail = true
	if m.prepare(mgl32.Vec3{1, 2, 1}) {
		t.Fatal("prepare succeeded without a vertex array")
	}
	if n := logs.FilterMessage("player mesh upload failed").Len(); n != 2 {
		t.Errorf("got %d warnings after a new failure, want 2", n)
	}
}
