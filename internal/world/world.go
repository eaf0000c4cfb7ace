// Package world describes the static environment: where the player starts and
// which blocks exist.
package world

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// ErrWorldLoad is returned when a world description cannot be read or parsed.
var ErrWorldLoad = errors.New("world load failed")

// World is the environment the player is in.
type World struct {
	Name           string
	StartPosition  mgl32.Vec3
	StartDirection mgl32.Vec3
	Blocks         []Block
}

// Default returns the built-in world0 layout: a large ground block and a
// smaller textured block sitting on it.
func Default() *World {
	const length = 5.0
	return &World{
		Name:           "world0",
		StartPosition:  mgl32.Vec3{0, 0, 0},
		StartDirection: mgl32.Vec3{0, 0, 1},
		Blocks: []Block{
			NewSolidColorBlock(Box{
				Origin: mgl32.Vec3{-length / 2, -length, -length / 2},
				Size:   mgl32.Vec3{length, length, length},
			}, mgl32.Vec3{0.35, 0.55, 0.3}),
			NewTexturedBlock(Box{
				Origin: mgl32.Vec3{-length / 3, -1, -length / 4},
				Size:   mgl32.Vec3{1, length / 3, length / 3},
			}, "container.png"),
		},
	}
}

// Load reads a world description from a YAML file.
func Load(path string) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWorldLoad, err)
	}
	w, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return w, nil
}

// Parse decodes a YAML world description.
func Parse(data []byte) (*World, error) {
	var f worldFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWorldLoad, err)
	}
	return f.toWorld()
}
