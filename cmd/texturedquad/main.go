// (c) 2026 Zayn Otley
// https://github.com/zaynotley/rasterforge
// License: GPLv3 or later

// cmd/texturedquad renders two triangles forming a textured square,
// viewed through a look-at + perspective camera — the first demo that
// exercises the texture and vecmath collaborators together.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	"github.com/zaynotley/rasterforge/raster"
	"github.com/zaynotley/rasterforge/texture"
	"github.com/zaynotley/rasterforge/vecmath"
)

const (
	varyingUV = 0
)

type quadVertex struct {
	pos vecmath.Vec3
	uv  vecmath.Vec2
}

func main() {
	var (
		width, height int
		outPath       string
	)

	flagSet := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.IntVar(&width, "width", 800, "framebuffer width")
	flagSet.IntVar(&height, "height", 600, "framebuffer height")
	flagSet.StringVar(&outPath, "out", "texturedquad.bmp", "output BMP path")

	flagSet.Usage = func() {
		flagSet.SetOutput(os.Stdout)
		fmt.Println("Usage: texturedquad [-width N] [-height N] [-out path.bmp]")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	r := &raster.Rasterizer{}
	if err := r.Init(width, height); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	checker := texture.New(texture.Checkerboard(256, 256, 32,
		color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		color.RGBA{R: 0x3f, G: 0xbc, B: 0xef, A: 0xff},
	))

	view := vecmath.LookAt(vecmath.Vec3{X: -0.7, Y: 0, Z: 1.5}, vecmath.Vec3{}, vecmath.Vec3{X: 0, Y: 0, Z: 1})
	proj := vecmath.Perspective(float32(math.Pi/2), float32(width)/float32(height), 1, 500)
	mvp := proj.Mul(view)

	quad := [4]quadVertex{
		{pos: vecmath.Vec3{X: -1, Y: -1, Z: -1}, uv: vecmath.Vec2{X: 0, Y: 1}},
		{pos: vecmath.Vec3{X: 1, Y: -1, Z: -1}, uv: vecmath.Vec2{X: 1, Y: 1}},
		{pos: vecmath.Vec3{X: 1, Y: 1, Z: -1}, uv: vecmath.Vec2{X: 1, Y: 0}},
		{pos: vecmath.Vec3{X: -1, Y: 1, Z: -1}, uv: vecmath.Vec2{X: 0, Y: 0}},
	}
	triangles := [2][3]int{{0, 1, 2}, {0, 2, 3}}

	r.SetPixelStage(func(in *raster.ShaderContext) vecmath.Vec4 {
		uv := in.Vec2[varyingUV]
		return checker.Sample2D(uv.X, uv.Y)
	})

	triCount := 0
	for _, tri := range triangles {
		var verts [3]quadVertex
		for i, idx := range tri {
			verts[i] = quad[idx]
		}
		r.SetVertexStage(func(index int, out *raster.ShaderContext) vecmath.Vec4 {
			v := verts[index]
			out.Vec2[varyingUV] = v.uv
			return mvp.MulVec4(vecmath.Vec4FromVec3(v.pos, 1))
		})
		if r.Draw() {
			triCount++
		}
	}

	if triCount == 0 {
		fmt.Println("Error: no triangles survived clip/winding rejection")
		os.Exit(1)
	}

	if err := r.Save(outPath); err != nil {
		fmt.Printf("Error saving %s: %v\n", outPath, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%dx%d, %d triangles)\n", outPath, width, height, triCount)
}
