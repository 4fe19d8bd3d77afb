// (c) 2026 Zayn Otley
// https://github.com/zaynotley/rasterforge
// License: GPLv3 or later

// Package raster implements the core triangle rasterization engine: a
// single rendering object owning a color framebuffer and matching depth
// buffer, driven by a pair of user-supplied vertex/pixel shader
// callables. See SPEC_FULL.md §3-4 for the full contract this package
// implements.
package raster

import (
	"image/color"

	"github.com/zaynotley/rasterforge/bmpimage"
	"github.com/zaynotley/rasterforge/vecmath"
)

// Rasterizer is the core rendering object. It owns its framebuffer and
// depth buffer exclusively for its lifetime and is single-threaded and
// synchronous: Draw runs to completion before returning, and concurrent
// use from multiple goroutines is undefined.
type Rasterizer struct {
	fb    *Framebuffer
	depth *DepthBuffer

	bg, fg color.RGBA

	vs VertexShader
	ps PixelShader

	wireframe bool
	filled    bool

	// scratch, reused across Draw calls to keep the hot path
	// allocation-free.
	verts [3]vertexRecord
}

// Init allocates the framebuffer and depth buffer and clears both. w and
// h must be positive.
func (r *Rasterizer) Init(w, h int) error {
	if w <= 0 || h <= 0 {
		return errInvalidSize{w, h}
	}
	r.fb = NewFramebuffer(w, h)
	r.depth = NewDepthBuffer(w, h)
	r.bg = color.RGBA{A: 255}
	r.fg = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	r.filled = true
	for i := range r.verts {
		r.verts[i].ctx = NewShaderContext()
	}
	r.Clear()
	return nil
}

type errInvalidSize struct{ w, h int }

func (e errInvalidSize) Error() string {
	return "raster: invalid framebuffer size"
}

// Clear fills the framebuffer with the background color and the depth
// buffer with 0.
func (r *Rasterizer) Clear() {
	r.fb.Clear(r.bg)
	r.depth.Clear()
}

// SetBackground sets the color used by Clear to fill the framebuffer.
func (r *Rasterizer) SetBackground(c color.RGBA) { r.bg = c }

// SetForeground sets the color used by the wireframe overlay.
func (r *Rasterizer) SetForeground(c color.RGBA) { r.fg = c }

// SetVertexStage installs the vertex shader callable.
func (r *Rasterizer) SetVertexStage(vs VertexShader) { r.vs = vs }

// SetPixelStage installs the pixel shader callable.
func (r *Rasterizer) SetPixelStage(ps PixelShader) { r.ps = ps }

// SetRenderState toggles the wireframe and filled passes independently;
// both may be enabled at once.
func (r *Rasterizer) SetRenderState(wireframe, filled bool) {
	r.wireframe = wireframe
	r.filled = filled
}

// Framebuffer exposes the owned color buffer for read-only inspection
// (tests, viewer blit, Save).
func (r *Rasterizer) Framebuffer() *Framebuffer { return r.fb }

// Save delegates to the bmpimage collaborator to write the current
// framebuffer to path as an uncompressed BMP.
func (r *Rasterizer) Save(path string) error {
	return bmpimage.Save(path, r.fb.Width, r.fb.Height, r.fb.Pix)
}

// Draw runs exactly one triangle through the full pipeline: transform,
// clip rejection, perspective divide, viewport mapping, winding check,
// top-left fill rule, the inner per-pixel loop, depth test, and pixel
// shader dispatch. It returns false — and leaves both buffers
// byte-identical to their pre-call state — if the buffers or vertex
// stage are unset, any vertex fails clip, or the triangle is degenerate.
func (r *Rasterizer) Draw() bool {
	if r.fb == nil || r.depth == nil || r.vs == nil {
		return false
	}

	for k := 0; k < 3; k++ {
		v := &r.verts[k]
		v.ctx.reset()
		v.pos = r.vs(k, &v.ctx)
		if clipReject(v.pos) {
			return false
		}
		v.project(r.fb.Width, r.fb.Height)
	}

	p0, p1, p2 := &r.verts[0], &r.verts[1], &r.verts[2]

	e1 := vecmath.Vec3{X: p1.pos.X - p0.pos.X, Y: p1.pos.Y - p0.pos.Y, Z: p1.pos.Z - p0.pos.Z}
	e2 := vecmath.Vec3{X: p2.pos.X - p0.pos.X, Y: p2.pos.Y - p0.pos.Y, Z: p2.pos.Z - p0.pos.Z}
	normal := e1.Cross(e2)
	switch {
	case normal.Z > 0:
		p1, p2 = p2, p1
	case normal.Z == 0:
		return false
	}

	area := cross2D(
		p1.spf.X-p0.spf.X, p1.spf.Y-p0.spf.Y,
		p2.spf.X-p0.spf.X, p2.spf.Y-p0.spf.Y,
	)
	if area < 0 {
		area = -area
	}
	if area == 0 {
		return false
	}

	if r.wireframe {
		r.drawWireframe(p0, p1, p2)
	}
	if r.filled {
		r.rasterizeTriangle(p0, p1, p2)
	}
	if r.wireframe {
		r.drawWireframe(p0, p1, p2)
	}
	return true
}

func cross2D(ax, ay, bx, by float32) float32 {
	return ax*by - ay*bx
}

func isTopLeft(ax, ay, bx, by int) bool {
	if ay == by {
		return ax < bx
	}
	return ay > by
}

func (r *Rasterizer) drawWireframe(p0, p1, p2 *vertexRecord) {
	drawLine(r.fb, p0.spi.X, p0.spi.Y, p1.spi.X, p1.spi.Y, r.fg)
	drawLine(r.fb, p1.spi.X, p1.spi.Y, p2.spi.X, p2.spi.Y, r.fg)
	drawLine(r.fb, p2.spi.X, p2.spi.Y, p0.spi.X, p0.spi.Y, r.fg)
}

func (r *Rasterizer) rasterizeTriangle(p0, p1, p2 *vertexRecord) {
	minX, maxX := bbox3(p0.spi.X, p1.spi.X, p2.spi.X, 0, r.fb.Width-1)
	minY, maxY := bbox3(p0.spi.Y, p1.spi.Y, p2.spi.Y, 0, r.fb.Height-1)
	if minX > maxX || minY > maxY {
		return
	}

	top01 := isTopLeft(p0.spi.X, p0.spi.Y, p1.spi.X, p1.spi.Y)
	top12 := isTopLeft(p1.spi.X, p1.spi.Y, p2.spi.X, p2.spi.Y)
	top20 := isTopLeft(p2.spi.X, p2.spi.Y, p0.spi.X, p0.spi.Y)

	bias01, bias12, bias20 := topLeftBias(top01), topLeftBias(top12), topLeftBias(top20)

	out := NewShaderContext()

	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			e01 := -(cx-p0.spi.X)*(p1.spi.Y-p0.spi.Y) + (cy-p0.spi.Y)*(p1.spi.X-p0.spi.X)
			e12 := -(cx-p1.spi.X)*(p2.spi.Y-p1.spi.Y) + (cy-p1.spi.Y)*(p2.spi.X-p1.spi.X)
			e20 := -(cx-p2.spi.X)*(p0.spi.Y-p2.spi.Y) + (cy-p2.spi.Y)*(p0.spi.X-p2.spi.X)

			if e01 < bias01 || e12 < bias12 || e20 < bias20 {
				continue
			}

			px, py := float32(cx)+0.5, float32(cy)+0.5
			s0x, s0y := p0.spf.X-px, p0.spf.Y-py
			s1x, s1y := p1.spf.X-px, p1.spf.Y-py
			s2x, s2y := p2.spf.X-px, p2.spf.Y-py

			a := absf(cross2D(s1x, s1y, s2x, s2y))
			b := absf(cross2D(s2x, s2y, s0x, s0y))
			c := absf(cross2D(s0x, s0y, s1x, s1y))
			total := a + b + c
			if total == 0 {
				continue
			}
			a, b, c = a/total, b/total, c/total

			rhwP := a*p0.rhw + b*p1.rhw + c*p2.rhw
			idx := cy*r.fb.Width + cx
			if rhwP < r.depth.Samples[idx] {
				continue
			}
			r.depth.Samples[idx] = rhwP

			w := float32(1) / rhwP
			c0 := p0.rhw * a * w
			c1 := p1.rhw * b * w
			c2 := p2.rhw * c * w

			interpolate(&out, &p0.ctx, &p1.ctx, &p2.ctx, c0, c1, c2)

			var rgba vecmath.Vec4
			if r.ps != nil {
				rgba = r.ps(&out)
			}
			r.fb.Pix[idx] = packColor(rgba)
		}
	}
}

// interpolate blends every varying key present in v0 across all three
// contexts using the supplied perspective-corrected weights. A key
// present only on v1 or v2 is ignored — vertex 0's key set defines what
// gets interpolated, matching the caller-trusted shader contract.
func interpolate(out, v0, v1, v2 *ShaderContext, c0, c1, c2 float32) {
	for k := range out.Scalar {
		delete(out.Scalar, k)
	}
	for k := range out.Vec2 {
		delete(out.Vec2, k)
	}
	for k := range out.Vec3 {
		delete(out.Vec3, k)
	}
	for k := range out.Vec4 {
		delete(out.Vec4, k)
	}

	for k, a0 := range v0.Scalar {
		out.Scalar[k] = a0*c0 + v1.Scalar[k]*c1 + v2.Scalar[k]*c2
	}
	for k, a0 := range v0.Vec2 {
		a1, a2 := v1.Vec2[k], v2.Vec2[k]
		out.Vec2[k] = vecmath.Vec2{
			X: a0.X*c0 + a1.X*c1 + a2.X*c2,
			Y: a0.Y*c0 + a1.Y*c1 + a2.Y*c2,
		}
	}
	for k, a0 := range v0.Vec3 {
		a1, a2 := v1.Vec3[k], v2.Vec3[k]
		out.Vec3[k] = vecmath.Vec3{
			X: a0.X*c0 + a1.X*c1 + a2.X*c2,
			Y: a0.Y*c0 + a1.Y*c1 + a2.Y*c2,
			Z: a0.Z*c0 + a1.Z*c1 + a2.Z*c2,
		}
	}
	for k, a0 := range v0.Vec4 {
		a1, a2 := v1.Vec4[k], v2.Vec4[k]
		out.Vec4[k] = vecmath.Vec4{
			X: a0.X*c0 + a1.X*c1 + a2.X*c2,
			Y: a0.Y*c0 + a1.Y*c1 + a2.Y*c2,
			Z: a0.Z*c0 + a1.Z*c1 + a2.Z*c2,
			W: a0.W*c0 + a1.W*c1 + a2.W*c2,
		}
	}
}

// topLeftBias implements the "≥1 vs ≥0" collapse of the top-left fill
// rule into a single comparison against the integer edge function.
func topLeftBias(top bool) int {
	if top {
		return 0
	}
	return 1
}

func bbox3(a, b, c, lo, hi int) (min, max int) {
	min, max = a, a
	if b < min {
		min = b
	}
	if b > max {
		max = b
	}
	if c < min {
		min = c
	}
	if c > max {
		max = c
	}
	if min < lo {
		min = lo
	}
	if max > hi {
		max = hi
	}
	return
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func clamp255(v float32) uint8 {
	v *= 255
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

func packColor(v vecmath.Vec4) color.RGBA {
	return color.RGBA{
		R: clamp255(v.X),
		G: clamp255(v.Y),
		B: clamp255(v.Z),
		A: clamp255(v.W),
	}
}
