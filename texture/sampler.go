// (c) 2026 Zayn Otley
// https://github.com/zaynotley/rasterforge
// License: GPLv3 or later

// Package texture implements the bilinear texture sampler collaborator:
// clamp-to-edge bilinear filtering over any decoded image.Image, the
// same sampling behavior the rasterizer's pixel stages call out to via
// captured closures.
package texture

import (
	"image"
	"image/color"

	"github.com/zaynotley/rasterforge/vecmath"
)

// Sampler bilinearly samples a decoded image with clamp-to-edge
// addressing and normalized [0,1] UV coordinates, (0,0) at the
// top-left texel.
type Sampler struct {
	img           image.Image
	width, height int
}

// New wraps img for sampling.
func New(img image.Image) *Sampler {
	b := img.Bounds()
	return &Sampler{img: img, width: b.Dx(), height: b.Dy()}
}

// Sample2D returns the bilinearly filtered, clamp-to-edge color at (u,v).
func (s *Sampler) Sample2D(u, v float32) vecmath.Vec4 {
	fx := u*float32(s.width) - 0.5
	fy := v*float32(s.height) - 0.5

	x0 := int(floor(fx))
	y0 := int(floor(fy))
	tx := fx - float32(x0)
	ty := fy - float32(y0)

	c00 := s.texel(x0, y0)
	c10 := s.texel(x0+1, y0)
	c01 := s.texel(x0, y0+1)
	c11 := s.texel(x0+1, y0+1)

	top := lerp4(c00, c10, tx)
	bottom := lerp4(c01, c11, tx)
	return lerp4(top, bottom, ty)
}

func (s *Sampler) texel(x, y int) vecmath.Vec4 {
	x = clampInt(x, 0, s.width-1)
	y = clampInt(y, 0, s.height-1)
	b := s.img.Bounds()
	r, g, bch, a := s.img.At(b.Min.X+x, b.Min.Y+y).RGBA()
	return vecmath.Vec4{
		X: float32(r) / 65535,
		Y: float32(g) / 65535,
		Z: float32(bch) / 65535,
		W: float32(a) / 65535,
	}
}

func lerp4(a, b vecmath.Vec4, t float32) vecmath.Vec4 {
	return a.Add(b.Sub(a).Scale(t))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func floor(v float32) float32 {
	i := float32(int(v))
	if v < 0 && i != v {
		return i - 1
	}
	return i
}

// Checkerboard builds an in-memory checker texture alternating between
// two colors every squareSize pixels, matching the demo scenes'
// reference texture.
func Checkerboard(width, height, squareSize int, a, b color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := a
			if ((x/squareSize)+(y/squareSize))%2 == 1 {
				c = b
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
