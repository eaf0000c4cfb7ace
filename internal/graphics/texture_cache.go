package graphics

import (
	"path/filepath"
)

// TextureCache loads each texture file once and releases them together.
// It is only used from the render thread.
type TextureCache struct {
	dir      string
	load     func(path string) (uint32, error)
	free     func(id uint32)
	textures map[string]uint32
}

// NewTextureCache resolves relative texture names against dir.
func NewTextureCache(dir string) *TextureCache {
	return newTextureCache(dir, LoadTexture, DeleteTexture)
}

func newTextureCache(dir string, load func(string) (uint32, error), free func(uint32)) *TextureCache {
	return &TextureCache{
		dir:      dir,
		load:     load,
		free:     free,
		textures: make(map[string]uint32),
	}
}

// Get returns the texture for name, loading it on first use.
func (c *TextureCache) Get(name string) (uint32, error) {
	path := c.resolve(name)
	if tex, ok := c.textures[path]; ok {
		return tex, nil
	}

	tex, err := c.load(path)
	if err != nil {
		return 0, err
	}
	c.textures[path] = tex
	return tex, nil
}

// Len returns the number of loaded textures.
func (c *TextureCache) Len() int {
	return len(c.textures)
}

// Release frees every cached texture.
func (c *TextureCache) Release() {
	for path, tex := range c.textures {
		c.free(tex)
		delete(c.textures, path)
	}
}

func (c *TextureCache) resolve(name string) string {
	if filepath.IsAbs(name) || c.dir == "" {
		return name
	}
	return filepath.Join(c.dir, name)
}
