// (c) 2026 Zayn Otley
// https://github.com/zaynotley/rasterforge
// License: GPLv3 or later

package raster

import "github.com/zaynotley/rasterforge/vecmath"

// vertexRecord is the per-vertex working state carried from the vertex
// shader through clip rejection, perspective divide, and into the inner
// rasterization loop.
type vertexRecord struct {
	pos vecmath.Vec4 // clip-space position as returned by the vertex shader
	rhw float32      // reciprocal homogeneous w, 1/pos.W

	spf vecmath.Vec2 // screen-space position, sub-pixel precision
	spi struct{ X, Y int }

	ctx ShaderContext
}

// clipReject reports whether pos lies outside the canonical view
// volume and must be discarded before rasterization — reject-on-crossing,
// not true homogeneous clipping.
func clipReject(pos vecmath.Vec4) bool {
	w := pos.W
	if w == 0 {
		return true
	}
	if pos.Z < 0 || pos.Z > w {
		return true
	}
	if pos.X < -w || pos.X > w {
		return true
	}
	if pos.Y < -w || pos.Y > w {
		return true
	}
	return false
}

// project performs the perspective divide and maps into screen space
// for a framebuffer of the given width/height.
func (v *vertexRecord) project(width, height int) {
	v.rhw = 1 / v.pos.W
	v.pos.X *= v.rhw
	v.pos.Y *= v.rhw
	v.pos.Z *= v.rhw

	v.spf.X = (v.pos.X + 1) * float32(width) * 0.5
	v.spf.Y = (1 - v.pos.Y) * float32(height) * 0.5
	v.spi.X = int(v.spf.X + 0.5)
	v.spi.Y = int(v.spf.Y + 0.5)
}
