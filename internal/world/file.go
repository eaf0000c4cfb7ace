package world

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

type worldFile struct {
	Name  string      `yaml:"name"`
	Start startFile   `yaml:"start"`
	Block []blockFile `yaml:"blocks"`
}

type startFile struct {
	Position  []float32 `yaml:"position"`
	Direction []float32 `yaml:"direction"`
}

type blockFile struct {
	Kind    string    `yaml:"kind"`
	Origin  []float32 `yaml:"origin"`
	Size    []float32 `yaml:"size"`
	Color   []float32 `yaml:"color"`
	Texture string    `yaml:"texture"`
}

func (f worldFile) toWorld() (*World, error) {
	w := &World{
		Name:           f.Name,
		StartDirection: mgl32.Vec3{0, 0, 1},
	}

	var err error
	if f.Start.Position != nil {
		if w.StartPosition, err = vec3(f.Start.Position); err != nil {
			return nil, fmt.Errorf("%w: start position: %v", ErrWorldLoad, err)
		}
	}
	if f.Start.Direction != nil {
		if w.StartDirection, err = vec3(f.Start.Direction); err != nil {
			return nil, fmt.Errorf("%w: start direction: %v", ErrWorldLoad, err)
		}
	}

	for i, bf := range f.Block {
		b, err := bf.toBlock()
		if err != nil {
			return nil, fmt.Errorf("%w: block %d: %v", ErrWorldLoad, i, err)
		}
		w.Blocks = append(w.Blocks, b)
	}
	return w, nil
}

func (bf blockFile) toBlock() (Block, error) {
	kind, err := ParseKind(bf.Kind)
	if err != nil {
		return Block{}, err
	}
	origin, err := vec3(bf.Origin)
	if err != nil {
		return Block{}, fmt.Errorf("origin: %v", err)
	}
	size, err := vec3(bf.Size)
	if err != nil {
		return Block{}, fmt.Errorf("size: %v", err)
	}
	box := Box{Origin: origin, Size: size}

	switch kind {
	case KindTextured:
		if bf.Texture == "" {
			return Block{}, fmt.Errorf("textured block needs a texture")
		}
		return NewTexturedBlock(box, bf.Texture), nil
	default:
		color := DefaultColor
		if bf.Color != nil {
			if color, err = vec3(bf.Color); err != nil {
				return Block{}, fmt.Errorf("color: %v", err)
			}
		}
		return NewSolidColorBlock(box, color), nil
	}
}

func vec3(v []float32) (mgl32.Vec3, error) {
	if len(v) != 3 {
		return mgl32.Vec3{}, fmt.Errorf("want 3 components, got %d", len(v))
	}
	return mgl32.Vec3{v[0], v[1], v[2]}, nil
}
