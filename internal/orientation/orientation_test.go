package orientation

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-5

// near compares with an absolute tolerance; mgl32's ApproxEqual turns
// relative when a component is zero.
func near(a, b mgl32.Vec3, tol float32) bool {
	return a.Sub(b).Len() <= tol
}

func TestDirectionUnitAndPerpendicular(t *testing.T) {
	for yawDeg := float32(0); yawDeg < 360; yawDeg += 7.5 {
		for pitchDeg := float32(-88.5); pitchDeg < 89; pitchDeg += 3.5 {
			front, right := Direction(mgl32.DegToRad(yawDeg), mgl32.DegToRad(pitchDeg))
			if d := math.Abs(float64(front.Len()) - 1); d > eps {
				t.Fatalf("yaw=%v pitch=%v: |front| off by %v", yawDeg, pitchDeg, d)
			}
			if d := math.Abs(float64(right.Len()) - 1); d > eps {
				t.Fatalf("yaw=%v pitch=%v: |right| off by %v", yawDeg, pitchDeg, d)
			}
			if dot := math.Abs(float64(front.Dot(right))); dot > eps {
				t.Fatalf("yaw=%v pitch=%v: front.right = %v", yawDeg, pitchDeg, dot)
			}
		}
	}
}

func TestDirectionKnownValues(t *testing.T) {
	front, right := Direction(mgl32.DegToRad(-90), 0)
	if !near(front, mgl32.Vec3{0, 0, -1}, eps) {
		t.Errorf("front at yaw -90: got %v", front)
	}
	if !near(right, mgl32.Vec3{1, 0, 0}, eps) {
		t.Errorf("right at yaw -90: got %v", right)
	}

	front, _ = Direction(0, mgl32.DegToRad(45))
	want := mgl32.Vec3{float32(math.Sqrt2 / 2), float32(math.Sqrt2 / 2), 0}
	if !near(front, want, eps) {
		t.Errorf("front at pitch 45: got %v, want %v", front, want)
	}
}

func TestSetClampsPitch(t *testing.T) {
	o := FromDegrees(0, 120)
	if o.Pitch != MaxPitch {
		t.Fatalf("pitch not clamped: got %v, want %v", o.Pitch, MaxPitch)
	}
	o.Turn(0, mgl32.DegToRad(-500))
	if o.Pitch != -MaxPitch {
		t.Fatalf("pitch not clamped low: got %v, want %v", o.Pitch, -MaxPitch)
	}
	if o.Right.Len() < 1-eps {
		t.Errorf("right vector degenerate at clamped pitch: %v", o.Right)
	}
}

func TestWrapYaw(t *testing.T) {
	cases := map[float32]float32{
		0:                       0,
		-math.Pi / 2:            3 * math.Pi / 2,
		5 * math.Pi / 2:         math.Pi / 2,
		float32(4 * math.Pi):    0,
		float32(-4*math.Pi - 1): float32(2*math.Pi - 1),
		-1e-9:                   0,
	}
	for in, want := range cases {
		got := WrapYaw(in)
		if math.Abs(float64(got-want)) > 1e-4 {
			t.Errorf("WrapYaw(%v) = %v, want %v", in, got, want)
		}
		if got < 0 || got >= twoPi {
			t.Errorf("WrapYaw(%v) = %v outside [0, 2pi)", in, got)
		}
	}
}

func TestFromFrontRoundTrip(t *testing.T) {
	dirs := []mgl32.Vec3{
		{0, 0, 1},
		{0, 0, -1},
		{1, 0, 0},
		{1, 1, 1},
		{-2, -0.5, 3},
	}
	for _, d := range dirs {
		o := FromFront(d)
		if !near(o.Front, d.Normalize(), 1e-4) {
			t.Errorf("FromFront(%v).Front = %v", d, o.Front)
		}
	}

	o := FromFront(mgl32.Vec3{})
	if o.Yaw != 0 || o.Pitch != 0 {
		t.Errorf("FromFront(zero) = yaw %v pitch %v, want 0 0", o.Yaw, o.Pitch)
	}
}
