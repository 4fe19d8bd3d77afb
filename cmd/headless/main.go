// (c) 2026 Zayn Otley
// https://github.com/zaynotley/rasterforge
// License: GPLv3 or later

// cmd/headless renders a continuously rotating cube without any window,
// driving the render loop from a raw-mode stdin reader: press s to save
// the current frame as a BMP, q to quit. This is termctl's stated
// purpose — controlling a render loop that has no GUI to receive input.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/zaynotley/rasterforge/model"
	"github.com/zaynotley/rasterforge/raster"
	"github.com/zaynotley/rasterforge/termctl"
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
		outPrefix     string
	)

	flagSet := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.IntVar(&width, "width", 320, "framebuffer width")
	flagSet.IntVar(&height, "height", 240, "framebuffer height")
	flagSet.StringVar(&outPrefix, "out", "frame", "output BMP filename prefix")

	flagSet.Usage = func() {
		flagSet.SetOutput(os.Stdout)
		fmt.Println("Usage: headless [-width N] [-height N] [-out prefix]")
		fmt.Println("  s  save the current frame")
		fmt.Println("  q  quit")
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
	proj := vecmath.Perspective(float32(math.Pi/3), float32(width)/float32(height), 0.1, 100)

	events := make(chan byte, 16)
	ctrl := termctl.New(func(b byte) {
		select {
		case events <- b:
		default:
		}
	})
	ctrl.Start()
	defer ctrl.Stop()

	fmt.Println("rendering... press s to save a frame, q to quit")

	ticker := time.NewTicker(33 * time.Millisecond)
	defer ticker.Stop()

	frame := 0
	saveCount := 0
	for {
		select {
		case <-ticker.C:
			renderCube(r, mesh, proj, view, lightDir, frame)
			frame++
		case b := <-events:
			switch b {
			case 'q', 'Q':
				return
			case 's', 'S':
				saveCount++
				path := fmt.Sprintf("%s-%03d.bmp", outPrefix, saveCount)
				if err := r.Save(path); err != nil {
					fmt.Printf("Error saving %s: %v\n", path, err)
					continue
				}
				fmt.Printf("saved %s\n", path)
			}
		}
	}
}

func renderCube(r *raster.Rasterizer, mesh *model.Model, proj, view vecmath.Mat4, lightDir vecmath.Vec3, frame int) {
	modelMat := vecmath.RotateY(float32(frame) * 0.02).Mul(vecmath.RotateX(float32(frame) * 0.013))
	mvp := proj.Mul(view).Mul(modelMat)

	r.Clear()
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
		r.Draw()
	}
}
