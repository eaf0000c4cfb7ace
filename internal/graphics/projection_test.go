package graphics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestProjectionViewport(t *testing.T) {
	p := NewProjection(800, 600, 45)
	if p.AspectRatio != float32(800)/600 {
		t.Fatalf("aspect = %v", p.AspectRatio)
	}
	p.SetViewport(0, 0)
	if p.AspectRatio != float32(800)/600 {
		t.Errorf("minimized window changed aspect to %v", p.AspectRatio)
	}
	p.SetViewport(1000, 500)
	if p.AspectRatio != 2 {
		t.Errorf("aspect = %v, want 2", p.AspectRatio)
	}

	m := p.Matrix()
	want := mgl32.Perspective(mgl32.DegToRad(45), 2, p.NearPlane, p.FarPlane)
	if !m.ApproxEqual(want) {
		t.Errorf("Matrix = %v, want %v", m, want)
	}
}

func TestProjectionZeroStart(t *testing.T) {
	p := NewProjection(0, 0, 60)
	if p.AspectRatio != 1 {
		t.Errorf("aspect for zero-sized start = %v, want 1", p.AspectRatio)
	}
}
