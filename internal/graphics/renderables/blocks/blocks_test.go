package blocks

import (
	"testing"

	"github.com/alecchendev/glitch-game/internal/meshing"
	"github.com/alecchendev/glitch-game/internal/world"

	"github.com/go-gl/mathgl/mgl32"
)

func TestPlanSharesMeshesByKey(t *testing.T) {
	unit := mgl32.Vec3{1, 1, 1}
	blocks := []world.Block{
		world.NewSolidColorBlock(world.Box{Origin: mgl32.Vec3{0, 0, 0}, Size: unit}, mgl32.Vec3{1, 0, 0}),
		world.NewSolidColorBlock(world.Box{Origin: mgl32.Vec3{3, 0, 0}, Size: unit}, mgl32.Vec3{0, 1, 0}),
		world.NewTexturedBlock(world.Box{Origin: mgl32.Vec3{0, 0, 3}, Size: unit}, "container.png"),
		world.NewSolidColorBlock(world.Box{Origin: mgl32.Vec3{0, -1, 0}, Size: mgl32.Vec3{10, 1, 10}}, world.DefaultColor),
	}

	keys, solid, textured := plan(blocks)

	want := []meshing.Key{
		{Size: unit, Kind: world.KindSolidColor},
		{Size: unit, Kind: world.KindTextured},
		{Size: mgl32.Vec3{10, 1, 10}, Kind: world.KindSolidColor},
	}
	if len(keys) != len(want) {
		t.Fatalf("got %d keys, want %d: %v", len(keys), len(want), keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("key %d = %v, want %v", i, keys[i], want[i])
		}
	}

	if len(solid) != 3 || len(textured) != 1 {
		t.Fatalf("solid=%d textured=%d, want 3 and 1", len(solid), len(textured))
	}
	if solid[1].color != (mgl32.Vec3{0, 1, 0}) {
		t.Errorf("color not carried: %v", solid[1].color)
	}
	if solid[1].model != mgl32.Translate3D(3, 0, 0) {
		t.Errorf("model = %v", solid[1].model)
	}
	if textured[0].texture != "container.png" {
		t.Errorf("texture = %q", textured[0].texture)
	}
}

func TestFrustumIntersects(t *testing.T) {
	proj := mgl32.Perspective(mgl32.DegToRad(45), 1, 0.1, 100)
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0})
	f := frustumFromClip(proj.Mul4(view))

	unit := mgl32.Vec3{1, 1, 1}
	cases := []struct {
		name   string
		origin mgl32.Vec3
		want   bool
	}{
		{"ahead", mgl32.Vec3{-0.5, -0.5, -5.5}, true},
		{"behind", mgl32.Vec3{-0.5, -0.5, 5}, false},
		{"far left", mgl32.Vec3{-100, -0.5, -5}, false},
		{"past far plane", mgl32.Vec3{-0.5, -0.5, -200}, false},
		{"around the eye", mgl32.Vec3{-0.5, -0.5, -0.5}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := f.intersects(world.Box{Origin: c.origin, Size: unit}); got != c.want {
				t.Errorf("intersects = %v, want %v", got, c.want)
			}
		})
	}
}

func TestCullCountsBlocksOutsideView(t *testing.T) {
	unit := mgl32.Vec3{1, 1, 1}
	w := &world.World{Blocks: []world.Block{
		world.NewSolidColorBlock(world.Box{Origin: mgl32.Vec3{-0.5, -0.5, -5.5}, Size: unit}, world.DefaultColor),
		world.NewSolidColorBlock(world.Box{Origin: mgl32.Vec3{-0.5, -0.5, 5}, Size: unit}, world.DefaultColor),
		world.NewTexturedBlock(world.Box{Origin: mgl32.Vec3{-100, -0.5, -5}, Size: unit}, "container.png"),
		world.NewTexturedBlock(world.Box{Origin: mgl32.Vec3{0, 0, -3}, Size: unit}, "container.png"),
	}}
	b := NewBlocks(w, nil, nil)
	_, b.solid, b.textured = plan(w.Blocks)

	proj := mgl32.Perspective(mgl32.DegToRad(45), 1, 0.1, 100)
	view := mgl32.LookAtV(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0})
	b.cull(proj.Mul4(view))

	if got := b.Culled(); got != 2 {
		t.Errorf("Culled() = %d, want 2", got)
	}
	if len(b.visibleSolid) != 1 || len(b.visibleTextured) != 1 {
		t.Errorf("visible solid=%d textured=%d, want 1 and 1", len(b.visibleSolid), len(b.visibleTextured))
	}

	// Looking the other way swaps which blocks survive
	back := mgl32.LookAtV(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0})
	b.cull(proj.Mul4(back))
	if got := b.Culled(); got != 3 {
		t.Errorf("Culled() facing +z = %d, want 3", got)
	}
}
