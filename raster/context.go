// (c) 2026 Zayn Otley
// https://github.com/zaynotley/rasterforge
// License: GPLv3 or later

package raster

import "github.com/zaynotley/rasterforge/vecmath"

// ShaderContext carries an open-ended set of varyings between the vertex
// and pixel stages. Each of the four maps is keyed by an integer the
// caller chooses (the demos' varyingColor, varyingUV, ...); the four types mirror
// the four varying kinds a shader can declare.
//
// A vertex shader writes into the context it is handed; Draw
// interpolates every key present in vertex 0's maps across the other
// two vertices and hands the pixel shader a freshly interpolated
// context for each covered pixel.
type ShaderContext struct {
	Scalar map[int]float32
	Vec2   map[int]vecmath.Vec2
	Vec3   map[int]vecmath.Vec3
	Vec4   map[int]vecmath.Vec4
}

// NewShaderContext returns an empty, ready-to-use context.
func NewShaderContext() ShaderContext {
	return ShaderContext{
		Scalar: make(map[int]float32),
		Vec2:   make(map[int]vecmath.Vec2),
		Vec3:   make(map[int]vecmath.Vec3),
		Vec4:   make(map[int]vecmath.Vec4),
	}
}

// reset clears all four maps in place, reusing the existing map
// allocations — called once per vertex per Draw so the hot loop never
// allocates a fresh context.
func (c *ShaderContext) reset() {
	for k := range c.Scalar {
		delete(c.Scalar, k)
	}
	for k := range c.Vec2 {
		delete(c.Vec2, k)
	}
	for k := range c.Vec3 {
		delete(c.Vec3, k)
	}
	for k := range c.Vec4 {
		delete(c.Vec4, k)
	}
}

// VertexShader computes a clip-space position for vertex index, writing
// any varyings it wants interpolated into output.
type VertexShader func(index int, output *ShaderContext) vecmath.Vec4

// PixelShader computes the final color for one covered pixel from its
// interpolated varyings.
type PixelShader func(input *ShaderContext) vecmath.Vec4
