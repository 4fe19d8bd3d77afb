// (c) 2026 Zayn Otley
// https://github.com/zaynotley/rasterforge
// License: GPLv3 or later

package texture

import (
	"image/color"
	"testing"
)

func TestSample2DCenterOfTexelMatchesTexel(t *testing.T) {
	img := Checkerboard(4, 4, 1, color.RGBA{R: 255, A: 255}, color.RGBA{B: 255, A: 255})
	s := New(img)

	// Center of texel (0,0) is u=0.125, v=0.125 for a 4-wide texture.
	c := s.Sample2D(0.125, 0.125)
	if c.X < 0.9 {
		t.Fatalf("expected near-pure red at texel center, got %+v", c)
	}
}

func TestSample2DClampsOutOfRangeUV(t *testing.T) {
	img := Checkerboard(4, 4, 1, color.RGBA{R: 255, A: 255}, color.RGBA{B: 255, A: 255})
	s := New(img)

	inBounds := s.Sample2D(0.01, 0.01)
	outOfBounds := s.Sample2D(-5, -5)
	if outOfBounds != inBounds {
		t.Fatalf("expected clamp-to-edge to match nearest in-bounds sample: got %+v want %+v", outOfBounds, inBounds)
	}
}

func TestSample2DInterpolatesBetweenTexels(t *testing.T) {
	img := Checkerboard(2, 1, 1, color.RGBA{A: 255}, color.RGBA{R: 255, A: 255})
	s := New(img)
	mid := s.Sample2D(0.5, 0.5)
	if mid.X <= 0 || mid.X >= 1 {
		t.Fatalf("expected a blended value strictly between texels at the boundary, got %+v", mid)
	}
}
