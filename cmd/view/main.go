// (c) 2026 Zayn Otley
// https://github.com/zaynotley/rasterforge
// License: GPLv3 or later

// cmd/view opens an interactive ebiten window showing a continuously
// rotating, Gouraud-lit cube, driving the viewer package's game loop
// every frame instead of writing a single BMP to disk.
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
	"github.com/zaynotley/rasterforge/viewer"
)

const varyingColor = 0

type litVertex struct {
	pos    vecmath.Vec3
	normal vecmath.Vec3
}

func main() {
	var width, height int

	flagSet := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.IntVar(&width, "width", 800, "window width")
	flagSet.IntVar(&height, "height", 600, "window height")

	flagSet.Usage = func() {
		flagSet.SetOutput(os.Stdout)
		fmt.Println("Usage: view [-width N] [-height N]")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	mesh, err := model.Parse(bytes.NewReader(model.CubeOBJ))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	r := &raster.Rasterizer{}
	if err := r.Init(width, height); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	lightDir := vecmath.Vec3{X: -0.4, Y: 0.6, Z: 0.7}.Normalize()
	view := vecmath.LookAt(vecmath.Vec3{X: 2.5, Y: 2, Z: 3}, vecmath.Vec3{}, vecmath.Vec3{X: 0, Y: 1, Z: 0})

	frame := 0
	renderFrame := func(fb *raster.Framebuffer) int {
		proj := vecmath.Perspective(float32(math.Pi/3), float32(fb.Width)/float32(fb.Height), 0.1, 100)
		modelMat := vecmath.RotateY(float32(frame) * 0.02).Mul(vecmath.RotateX(float32(frame) * 0.013))
		mvp := proj.Mul(view).Mul(modelMat)
		frame++

		r.Clear()
		triCount := 0
		r.SetPixelStage(func(in *raster.ShaderContext) vecmath.Vec4 { return in.Vec4[varyingColor] })
		for _, face := range mesh.Faces {
			var tv [3]litVertex
			for i, v := range face {
				tv[i] = litVertex{pos: v.Position, normal: v.Normal}
			}
			r.SetVertexStage(func(index int, out *raster.ShaderContext) vecmath.Vec4 {
				v := tv[index]
				n := modelMat.TransformDir(v.normal).Normalize()
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
		copy(fb.Pix, r.Framebuffer().Pix)
		return triCount
	}

	w := viewer.New(width, height, renderFrame)
	if err := w.Run("rasterforge"); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
