// (c) 2026 Zayn Otley
// https://github.com/zaynotley/rasterforge
// License: GPLv3 or later

// cmd/specular renders a lit cube with a per-pixel Blinn-Phong specular
// highlight, exercising a vec3 view-direction varying alongside the vec3
// normal varying. The cube geometry is loaded through the OBJ loader
// rather than hand-listed.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/zaynotley/rasterforge/model"
	"github.com/zaynotley/rasterforge/raster"
	"github.com/zaynotley/rasterforge/vecmath"
)

const (
	varyingNormal  = 0
	varyingViewPos = 1
)

type specVertex struct {
	pos    vecmath.Vec3
	normal vecmath.Vec3
}

func main() {
	var (
		width, height int
		outPath       string
		shininess     float64
	)

	flagSet := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.IntVar(&width, "width", 800, "framebuffer width")
	flagSet.IntVar(&height, "height", 600, "framebuffer height")
	flagSet.StringVar(&outPath, "out", "specular.bmp", "output BMP path")
	flagSet.Float64Var(&shininess, "shininess", 32, "Blinn-Phong specular exponent")

	flagSet.Usage = func() {
		flagSet.SetOutput(os.Stdout)
		fmt.Println("Usage: specular [-width N] [-height N] [-shininess N] [-out path.bmp]")
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

	eye := vecmath.Vec3{X: 2.2, Y: 1.8, Z: 2.6}
	view := vecmath.LookAt(eye, vecmath.Vec3{}, vecmath.Vec3{X: 0, Y: 1, Z: 0})
	proj := vecmath.Perspective(float32(math.Pi/3), float32(width)/float32(height), 0.1, 100)
	mvp := proj.Mul(view)

	lightDir := vecmath.Vec3{X: -0.4, Y: 0.7, Z: 0.6}.Normalize()
	exp := float32(shininess)

	mesh, err := model.Parse(bytes.NewReader(model.CubeOBJ))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	r.SetPixelStage(func(in *raster.ShaderContext) vecmath.Vec4 {
		n := in.Vec3[varyingNormal].Normalize()
		viewDir := in.Vec3[varyingViewPos].Normalize()

		diffuse := n.Dot(lightDir)
		if diffuse < 0.05 {
			diffuse = 0.05
		}

		halfway := lightDir.Add(viewDir).Normalize()
		specAngle := n.Dot(halfway)
		if specAngle < 0 {
			specAngle = 0
		}
		specular := float32(math.Pow(float64(specAngle), float64(exp)))

		v := diffuse + specular
		if v > 1 {
			v = 1
		}
		return vecmath.Vec4{X: v, Y: v, Z: v, W: 1}
	})

	triCount := 0
	for _, face := range mesh.Faces {
		var tv [3]specVertex
		for i, v := range face {
			tv[i] = specVertex{pos: v.Position, normal: v.Normal}
		}
		r.SetVertexStage(func(index int, out *raster.ShaderContext) vecmath.Vec4 {
			v := tv[index]
			out.Vec3[varyingNormal] = v.normal
			out.Vec3[varyingViewPos] = eye.Sub(v.pos)
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
