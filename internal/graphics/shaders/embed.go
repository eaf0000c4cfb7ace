// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// ColorVertexShader is the vertex shader for flat-colored meshes.
//
//go:embed color.vert
var ColorVertexShader string

// ColorFragmentShader shades flat-colored meshes with one directional light.
//
//go:embed color.frag
var ColorFragmentShader string

// TextureVertexShader is the vertex shader for textured meshes.
//
//go:embed texture.vert
var TextureVertexShader string

// TextureFragmentShader samples the bound 2D texture.
//
//go:embed texture.frag
var TextureFragmentShader string

// CrosshairVertexShader is the vertex shader for the screen-space crosshair.
//
//go:embed crosshair.vert
var CrosshairVertexShader string

// CrosshairFragmentShader is the fragment shader for the crosshair.
//
//go:embed crosshair.frag
var CrosshairFragmentShader string

// LineVertexShader transforms line geometry with model/view/projection.
//
//go:embed line.vert
var LineVertexShader string

//go:embed line.frag
var LineFragmentShader string

// DirectionVertexShader rotates 2D overlay geometry about its origin.
//
//go:embed direction.vert
var DirectionVertexShader string

//go:embed direction.frag
var DirectionFragmentShader string
