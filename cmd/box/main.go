// (c) 2026 Zayn Otley
// https://github.com/zaynotley/rasterforge
// License: GPLv3 or later

// cmd/box renders an axis-aligned wireframe box, exercising the
// SetRenderState(wireframe, filled) contract with filled disabled, and
// loads its geometry through the OBJ loader instead of hand-listing
// corners.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	"github.com/zaynotley/rasterforge/model"
	"github.com/zaynotley/rasterforge/raster"
	"github.com/zaynotley/rasterforge/vecmath"
)

func main() {
	var (
		width, height int
		outPath       string
	)

	flagSet := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.IntVar(&width, "width", 640, "framebuffer width")
	flagSet.IntVar(&height, "height", 480, "framebuffer height")
	flagSet.StringVar(&outPath, "out", "box.bmp", "output BMP path")

	flagSet.Usage = func() {
		flagSet.SetOutput(os.Stdout)
		fmt.Println("Usage: box [-width N] [-height N] [-out path.bmp]")
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
	r.SetForeground(color.RGBA{G: 255, A: 255})
	r.SetRenderState(true, false)

	view := vecmath.LookAt(vecmath.Vec3{X: 2, Y: 2, Z: 2}, vecmath.Vec3{}, vecmath.Vec3{X: 0, Y: 1, Z: 0})
	proj := vecmath.Perspective(float32(math.Pi/3), float32(width)/float32(height), 0.1, 100)
	mvp := proj.Mul(view)

	mesh, err := model.Parse(bytes.NewReader(model.CubeOBJ))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	triCount := 0
	for _, face := range mesh.Faces {
		r.SetVertexStage(func(index int, out *raster.ShaderContext) vecmath.Vec4 {
			return mvp.MulVec4(vecmath.Vec4FromVec3(face[index].Position, 1))
		})
		r.SetPixelStage(func(in *raster.ShaderContext) vecmath.Vec4 { return vecmath.Vec4{} })
		if r.Draw() {
			triCount++
		}
	}

	if err := r.Save(outPath); err != nil {
		fmt.Printf("Error saving %s: %v\n", outPath, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%dx%d, %d triangle outlines)\n", outPath, width, height, triCount)
}
