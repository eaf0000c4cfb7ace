package meshing

import "github.com/go-gl/mathgl/mgl32"

// Cube corners are numbered by bits: x = bit 0, y = bit 1, z = bit 2.
//
//	  c6------c7
//	 /|      /|
//	c2------c3|
//	| c4----|-c5
//	|/      |/
//	c0------c1
func corner(i int, size mgl32.Vec3) (x, y, z float32) {
	if i&1 != 0 {
		x = size.X()
	}
	if i&2 != 0 {
		y = size.Y()
	}
	if i&4 != 0 {
		z = size.Z()
	}
	return x, y, z
}

type face struct {
	// corners are counter-clockwise seen from outside the cube.
	corners [4]int
	// uAxis runs along corners[0]->corners[1], vAxis along corners[1]->corners[2].
	uAxis, vAxis int
}

var faces = [6]face{
	{corners: [4]int{4, 5, 7, 6}, uAxis: 0, vAxis: 1}, // +Z
	{corners: [4]int{1, 0, 2, 3}, uAxis: 0, vAxis: 1}, // -Z
	{corners: [4]int{5, 1, 3, 7}, uAxis: 2, vAxis: 1}, // +X
	{corners: [4]int{0, 4, 6, 2}, uAxis: 2, vAxis: 1}, // -X
	{corners: [4]int{6, 7, 3, 2}, uAxis: 0, vAxis: 2}, // +Y
	{corners: [4]int{0, 1, 5, 4}, uAxis: 0, vAxis: 2}, // -Y
}

// quadIndices appends the two triangles v0,v1,v2 and v2,v3,v0.
func quadIndices(dst []uint32, v0, v1, v2, v3 uint32) []uint32 {
	return append(dst,
		v0, v1, v2,
		v2, v3, v0,
	)
}

func solidCube(size mgl32.Vec3) Mesh {
	vertices := make([]float32, 0, SolidVertexCount*SolidFloatsPerVertex)
	for i := 0; i < SolidVertexCount; i++ {
		x, y, z := corner(i, size)
		vertices = append(vertices, x, y, z)
	}

	indices := make([]uint32, 0, IndexCount)
	for _, f := range faces {
		c := f.corners
		indices = quadIndices(indices, uint32(c[0]), uint32(c[1]), uint32(c[2]), uint32(c[3]))
	}

	return Mesh{Vertices: vertices, Indices: indices, Layout: SolidLayout()}
}

func texturedCube(size mgl32.Vec3) Mesh {
	vertices := make([]float32, 0, TexturedVertexCount*TexturedFloatsPerVertex)
	indices := make([]uint32, 0, IndexCount)

	for fi, f := range faces {
		w, h := size[f.uAxis], size[f.vAxis]
		uvs := [4][2]float32{{0, 0}, {w, 0}, {w, h}, {0, h}}
		for k, ci := range f.corners {
			x, y, z := corner(ci, size)
			vertices = append(vertices, x, y, z, uvs[k][0], uvs[k][1])
		}
		base := uint32(fi * 4)
		indices = quadIndices(indices, base, base+1, base+2, base+3)
	}

	return Mesh{Vertices: vertices, Indices: indices, Layout: TexturedLayout()}
}
