// (c) 2026 Zayn Otley
// https://github.com/zaynotley/rasterforge
// License: GPLv3 or later

package raster

import (
	"image/color"
	"testing"

	"github.com/zaynotley/rasterforge/vecmath"
)

const attribColor = 0
const varyingColor = 0

// triangleScene returns a Rasterizer with a per-vertex-colored triangle scene
// wired up, matching the distilled spec's scenario 1.
func triangleScene(t *testing.T) (*Rasterizer, [3]vecmath.Vec4, [3]vecmath.Vec4) {
	t.Helper()
	r := &Rasterizer{}
	if err := r.Init(800, 600); err != nil {
		t.Fatalf("Init: %v", err)
	}
	r.SetBackground(color.RGBA{R: 0x19, G: 0x19, B: 0x70, A: 0xff})

	positions := [3]vecmath.Vec4{
		{X: 0.0, Y: 0.7, Z: 0.9, W: 1},
		{X: -0.6, Y: -0.2, Z: 0.01, W: 1},
		{X: 0.6, Y: -0.2, Z: 0.01, W: 1},
	}
	colors := [3]vecmath.Vec4{
		{X: 1, Y: 0, Z: 0, W: 1},
		{X: 0, Y: 1, Z: 0, W: 1},
		{X: 0, Y: 0, Z: 1, W: 1},
	}

	r.SetVertexStage(func(index int, out *ShaderContext) vecmath.Vec4 {
		out.Vec4[varyingColor] = colors[index]
		return positions[index]
	})
	r.SetPixelStage(func(in *ShaderContext) vecmath.Vec4 {
		return in.Vec4[varyingColor]
	})
	return r, positions, colors
}

func TestDrawSingleColoredTriangle(t *testing.T) {
	r, _, _ := triangleScene(t)
	if !r.Draw() {
		t.Fatalf("Draw returned false for a valid triangle")
	}

	fb := r.Framebuffer()
	// Screen-space corners, matching the spec's projection formula.
	screenX := func(ndc float32) int { return int((ndc+1)*float32(fb.Width)*0.5 + 0.5) }
	screenY := func(ndc float32) int { return int((1-ndc)*float32(fb.Height)*0.5 + 0.5) }

	// Screen y grows downward, so the pixels just below the apex are inside.
	top := fb.At(screenX(0.0), screenY(0.7)+2)
	if top.R < 200 || top.G > 60 || top.B > 60 {
		t.Fatalf("expected near-pure red near top vertex, got %+v", top)
	}

	centroidX := screenX((0.0 - 0.6 + 0.6) / 3)
	centroidY := screenY((0.7 - 0.2 - 0.2) / 3)
	c := fb.At(centroidX, centroidY)
	// Equal thirds of red/green/blue -> roughly equal channels.
	if absInt(int(c.R)-int(c.G)) > 40 || absInt(int(c.G)-int(c.B)) > 40 {
		t.Fatalf("expected near-equal channels at centroid, got %+v", c)
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestDrawDegenerateTriangleReturnsFalse(t *testing.T) {
	r := &Rasterizer{}
	if err := r.Init(100, 100); err != nil {
		t.Fatalf("Init: %v", err)
	}
	before := append([]color.RGBA(nil), r.Framebuffer().Pix...)

	r.SetVertexStage(func(index int, out *ShaderContext) vecmath.Vec4 {
		return vecmath.Vec4{X: 0, Y: 0, Z: 0.5, W: 1}
	})
	r.SetPixelStage(func(in *ShaderContext) vecmath.Vec4 { return vecmath.Vec4{X: 1, Y: 1, Z: 1, W: 1} })

	if r.Draw() {
		t.Fatalf("expected Draw to return false for a degenerate triangle")
	}
	assertBuffersEqual(t, before, r.Framebuffer().Pix)
}

func TestDrawClipRejectionReturnsFalse(t *testing.T) {
	r := &Rasterizer{}
	if err := r.Init(100, 100); err != nil {
		t.Fatalf("Init: %v", err)
	}
	before := append([]color.RGBA(nil), r.Framebuffer().Pix...)

	positions := [3]vecmath.Vec4{
		{X: 0, Y: 0, Z: 2, W: 1}, // beyond far plane: z > w
		{X: -0.5, Y: -0.5, Z: 0.5, W: 1},
		{X: 0.5, Y: -0.5, Z: 0.5, W: 1},
	}
	r.SetVertexStage(func(index int, out *ShaderContext) vecmath.Vec4 { return positions[index] })
	r.SetPixelStage(func(in *ShaderContext) vecmath.Vec4 { return vecmath.Vec4{X: 1, Y: 1, Z: 1, W: 1} })

	if r.Draw() {
		t.Fatalf("expected Draw to return false for a clip-rejected vertex")
	}
	assertBuffersEqual(t, before, r.Framebuffer().Pix)
}

func TestDrawWithoutVertexStageReturnsFalse(t *testing.T) {
	r := &Rasterizer{}
	if err := r.Init(10, 10); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if r.Draw() {
		t.Fatalf("expected Draw to return false with no vertex stage bound")
	}
}

func TestDepthTestDeterministic(t *testing.T) {
	run := func(nearFirst bool) color.RGBA {
		r := &Rasterizer{}
		if err := r.Init(64, 64); err != nil {
			t.Fatalf("Init: %v", err)
		}

		// The depth key is rhw = 1/w, so distance is set through w; x, y
		// and z are scaled by w so both triangles cover the same pixels.
		drawAt := func(w float32, c vecmath.Vec4) {
			positions := [3]vecmath.Vec4{
				{X: -0.9 * w, Y: -0.9 * w, Z: 0.5 * w, W: w},
				{X: 0.9 * w, Y: -0.9 * w, Z: 0.5 * w, W: w},
				{X: 0, Y: 0.9 * w, Z: 0.5 * w, W: w},
			}
			r.SetVertexStage(func(index int, out *ShaderContext) vecmath.Vec4 { return positions[index] })
			r.SetPixelStage(func(in *ShaderContext) vecmath.Vec4 { return c })
			if !r.Draw() {
				t.Fatalf("Draw failed for triangle at w=%v", w)
			}
		}

		red := vecmath.Vec4{X: 1, Y: 0, Z: 0, W: 1}
		green := vecmath.Vec4{X: 0, Y: 1, Z: 0, W: 1}

		if nearFirst {
			drawAt(1, red)   // near
			drawAt(2, green) // far
		} else {
			drawAt(2, green)
			drawAt(1, red)
		}
		return r.Framebuffer().At(32, 32)
	}

	a := run(true)
	b := run(false)
	if a != b {
		t.Fatalf("depth test order dependence: got %+v vs %+v", a, b)
	}
	if a.R < 200 || a.G > 60 {
		t.Fatalf("expected red (nearer) to win, got %+v", a)
	}
}

func TestClearIdempotent(t *testing.T) {
	r := &Rasterizer{}
	if err := r.Init(32, 32); err != nil {
		t.Fatalf("Init: %v", err)
	}
	r.Clear()
	first := append([]color.RGBA(nil), r.Framebuffer().Pix...)
	firstDepth := append([]float32(nil), r.depth.Samples...)
	r.Clear()
	assertBuffersEqual(t, first, r.Framebuffer().Pix)
	for i, v := range r.depth.Samples {
		if v != firstDepth[i] {
			t.Fatalf("depth buffer changed on second clear at %d: %v vs %v", i, v, firstDepth[i])
		}
	}
}

func TestColorChannelsClamped(t *testing.T) {
	r := &Rasterizer{}
	if err := r.Init(16, 16); err != nil {
		t.Fatalf("Init: %v", err)
	}
	positions := [3]vecmath.Vec4{
		{X: -0.9, Y: -0.9, Z: 0.5, W: 1},
		{X: 0.9, Y: -0.9, Z: 0.5, W: 1},
		{X: 0, Y: 0.9, Z: 0.5, W: 1},
	}
	r.SetVertexStage(func(index int, out *ShaderContext) vecmath.Vec4 { return positions[index] })
	r.SetPixelStage(func(in *ShaderContext) vecmath.Vec4 { return vecmath.Vec4{X: 2, Y: -1, Z: 0.5, W: 5} })
	if !r.Draw() {
		t.Fatalf("Draw failed")
	}
	c := r.Framebuffer().At(8, 8)
	if c.R != 255 || c.G != 0 || c.A != 255 {
		t.Fatalf("channels not clamped: got %+v", c)
	}
}

func TestTopLeftExclusivityNoDoubleShadeOnSharedEdge(t *testing.T) {
	// Two triangles sharing the diagonal of a quad, consistent winding.
	// Count how many times the pixel shader is invoked in the second
	// draw; no pixel should be shaded by both triangles.
	r := &Rasterizer{}
	if err := r.Init(40, 40); err != nil {
		t.Fatalf("Init: %v", err)
	}

	shaded := 0

	shadeCounting := func(positions [3]vecmath.Vec4) {
		r.SetVertexStage(func(index int, out *ShaderContext) vecmath.Vec4 { return positions[index] })
		r.SetPixelStage(func(in *ShaderContext) vecmath.Vec4 {
			shaded++
			return vecmath.Vec4{X: 1, Y: 1, Z: 1, W: 1}
		})
		r.Draw()
	}

	// Quad spanning most of the clip volume, split along the diagonal.
	a := vecmath.Vec4{X: -0.9, Y: -0.9, Z: 0.5, W: 1}
	b := vecmath.Vec4{X: 0.9, Y: -0.9, Z: 0.5, W: 1}
	c := vecmath.Vec4{X: 0.9, Y: 0.9, Z: 0.5, W: 1}
	d := vecmath.Vec4{X: -0.9, Y: 0.9, Z: 0.5, W: 1}

	before := countNonBackground(r)
	shadeCounting([3]vecmath.Vec4{a, b, c})
	mid := countNonBackground(r)
	// Reset only the depth buffer, so the second draw's depth test cannot
	// hide a pixel the first draw already covered: every pixel the second
	// triangle covers is shaded.
	r.depth.Clear()
	shaded = 0
	shadeCounting([3]vecmath.Vec4{a, c, d})
	after := countNonBackground(r)

	firstTriPixels := mid - before
	secondTriPixels := after - mid

	if firstTriPixels <= 0 || secondTriPixels <= 0 {
		t.Fatalf("expected both triangles to rasterize pixels, got %d and %d", firstTriPixels, secondTriPixels)
	}
	// A pixel shaded by both triangles is shaded in the second draw but
	// was already non-background, so it is missing from secondTriPixels.
	if shaded != secondTriPixels {
		t.Fatalf("%d pixels shaded by both triangles (second draw shaded %d, newly covered %d)", shaded-secondTriPixels, shaded, secondTriPixels)
	}
}

func countNonBackground(r *Rasterizer) int {
	n := 0
	for _, p := range r.Framebuffer().Pix {
		if p.R != 0 || p.G != 0 || p.B != 0 {
			n++
		}
	}
	return n
}

func assertBuffersEqual(t *testing.T, want, got []color.RGBA) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("buffer length mismatch: %d vs %d", len(want), len(got))
	}
	for i := range want {
		if want[i] != got[i] {
			t.Fatalf("buffer differs at %d: got %+v want %+v", i, got[i], want[i])
		}
	}
}

func TestBarycentricPartitionOfUnity(t *testing.T) {
	var sawSample bool
	r := &Rasterizer{}
	if err := r.Init(32, 32); err != nil {
		t.Fatalf("Init: %v", err)
	}
	positions := [3]vecmath.Vec4{
		{X: -0.5, Y: -0.5, Z: 0.5, W: 1},
		{X: 0.5, Y: -0.5, Z: 0.5, W: 1},
		{X: 0, Y: 0.5, Z: 0.5, W: 1},
	}
	r.SetVertexStage(func(index int, out *ShaderContext) vecmath.Vec4 {
		out.Scalar[0] = 1
		return positions[index]
	})
	r.SetPixelStage(func(in *ShaderContext) vecmath.Vec4 {
		sawSample = true
		v := in.Scalar[0]
		if v < 1-1e-3 || v > 1+1e-3 {
			t.Fatalf("interpolated constant-1 attribute drifted from partition of unity: got %v", v)
		}
		return vecmath.Vec4{X: v, Y: v, Z: v, W: 1}
	})
	if !r.Draw() {
		t.Fatalf("Draw failed")
	}
	if !sawSample {
		t.Fatalf("pixel shader never invoked")
	}
}
