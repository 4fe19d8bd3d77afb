// (c) 2026 Zayn Otley
// https://github.com/zaynotley/rasterforge
// License: GPLv3 or later

// cmd/gouraud renders one frame of a rotated, per-vertex lit cube: diffuse-only
// lighting computed in the vertex stage and interpolated across each
// face, the classic Gouraud-shading demo.
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/zaynotley/rasterforge/raster"
	"github.com/zaynotley/rasterforge/vecmath"
)

const varyingColor = 0

type litVertex struct {
	pos    vecmath.Vec3
	normal vecmath.Vec3
}

func main() {
	var (
		width, height int
		outPath       string
		angle         float64
	)

	flagSet := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.IntVar(&width, "width", 800, "framebuffer width")
	flagSet.IntVar(&height, "height", 600, "framebuffer height")
	flagSet.StringVar(&outPath, "out", "gouraud.bmp", "output BMP path")
	flagSet.Float64Var(&angle, "angle", 1.0, "rotation angle about (-1,-0.5,1), radians")

	flagSet.Usage = func() {
		flagSet.SetOutput(os.Stdout)
		fmt.Println("Usage: gouraud [-width N] [-height N] [-angle rad] [-out path.bmp]")
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

	axis := vecmath.Vec3{X: -1, Y: -0.5, Z: 1}.Normalize()
	model := rotateAboutAxis(axis, float32(angle))
	view := vecmath.LookAt(vecmath.Vec3{X: 2.5, Y: 2, Z: 3}, vecmath.Vec3{}, vecmath.Vec3{X: 0, Y: 1, Z: 0})
	proj := vecmath.Perspective(float32(math.Pi/3), float32(width)/float32(height), 0.1, 100)
	mvp := proj.Mul(view).Mul(model)

	lightDir := vecmath.Vec3{X: -0.4, Y: 0.6, Z: 0.7}.Normalize()

	verts, faces := cubeFaces()

	r.SetPixelStage(func(in *raster.ShaderContext) vecmath.Vec4 {
		return in.Vec4[varyingColor]
	})

	triCount := 0
	for _, tri := range faces {
		var tv [3]litVertex
		for i, idx := range tri {
			tv[i] = verts[idx]
		}
		r.SetVertexStage(func(index int, out *raster.ShaderContext) vecmath.Vec4 {
			v := tv[index]
			n := model.TransformDir(v.normal).Normalize()
			diffuse := n.Dot(lightDir)
			if diffuse < 0.1 {
				diffuse = 0.1
			}
			out.Vec4[varyingColor] = vecmath.Vec4{X: diffuse, Y: diffuse, Z: diffuse, W: 1}
			return mvp.MulVec4(vecmath.Vec4FromVec3(v.pos, 1))
		})
		if r.Draw() {
			triCount++
		}
	}

	if err := r.Save(outPath); err != nil {
		fmt.Printf("Error saving %s: %v\n", outPath, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%dx%d, %d triangles)\n", outPath, width, height, triCount)
}

// rotateAboutAxis builds a rotation matrix about an arbitrary normalized
// axis by theta radians (Rodrigues' formula), needed because the demo's
// rotation axis is not axis-aligned.
func rotateAboutAxis(axis vecmath.Vec3, theta float32) vecmath.Mat4 {
	s, c := float32(math.Sin(float64(theta))), float32(math.Cos(float64(theta)))
	t := 1 - c
	x, y, z := axis.X, axis.Y, axis.Z

	return vecmath.Mat4{
		t*x*x + c, t*x*y + s*z, t*x*z - s*y, 0,
		t*x*y - s*z, t*y*y + c, t*y*z + s*x, 0,
		t*x*z + s*y, t*y*z - s*x, t*z*z + c, 0,
		0, 0, 0, 1,
	}
}

func cubeFaces() ([8]litVertex, [12][3]int) {
	h := float32(0.7)
	positions := [8]vecmath.Vec3{
		{X: -h, Y: -h, Z: -h}, {X: h, Y: -h, Z: -h}, {X: h, Y: h, Z: -h}, {X: -h, Y: h, Z: -h},
		{X: -h, Y: -h, Z: h}, {X: h, Y: -h, Z: h}, {X: h, Y: h, Z: h}, {X: -h, Y: h, Z: h},
	}
	var verts [8]litVertex
	for i, p := range positions {
		verts[i] = litVertex{pos: p, normal: p.Normalize()}
	}
	faces := [12][3]int{
		{0, 1, 2}, {0, 2, 3},
		{4, 6, 5}, {4, 7, 6},
		{0, 4, 5}, {0, 5, 1},
		{3, 2, 6}, {3, 6, 7},
		{0, 3, 7}, {0, 7, 4},
		{1, 5, 6}, {1, 6, 2},
	}
	return verts, faces
}
