package world

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Kind selects the mesh topology and shading used for a block.
type Kind uint8

const (
	KindSolidColor Kind = iota
	KindTextured
)

func (k Kind) String() string {
	switch k {
	case KindSolidColor:
		return "solid"
	case KindTextured:
		return "textured"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "solid", "":
		return KindSolidColor, nil
	case "textured":
		return KindTextured, nil
	default:
		return 0, fmt.Errorf("unknown block kind %q", s)
	}
}

// DefaultColor is used for solid blocks that do not set one.
var DefaultColor = mgl32.Vec3{0.55, 0.55, 0.5}

// Block is one element of a world. Color is only meaningful for
// KindSolidColor, Texture only for KindTextured.
type Block struct {
	Box
	Kind    Kind
	Color   mgl32.Vec3
	Texture string
}

// NewSolidColorBlock returns a flat-colored block.
func NewSolidColorBlock(box Box, color mgl32.Vec3) Block {
	return Block{Box: box, Kind: KindSolidColor, Color: color}
}

// NewTexturedBlock returns a block shaded with the named texture.
func NewTexturedBlock(box Box, texture string) Block {
	return Block{Box: box, Kind: KindTextured, Texture: texture}
}
