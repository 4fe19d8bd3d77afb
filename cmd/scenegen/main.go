// (c) 2026 Zayn Otley
// https://github.com/zaynotley/rasterforge
// License: GPLv3 or later

// cmd/scenegen batch-regenerates the reference BMPs for the triangle and
// box scenes (the other demos' scenes are not included) concurrently,
// one goroutine per independent raster.Rasterizer instance
// — the engine itself stays single-threaded per instance; this only
// parallelizes across independent instances.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/zaynotley/rasterforge/raster"
	"github.com/zaynotley/rasterforge/vecmath"
)

type scene struct {
	name string
	draw func(r *raster.Rasterizer)
}

func main() {
	var outDir string

	flagSet := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&outDir, "out", ".", "directory to write reference BMPs into")

	flagSet.Usage = func() {
		flagSet.SetOutput(os.Stdout)
		fmt.Println("Usage: scenegen [-out dir]")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	scenes := []scene{
		{name: "triangle.bmp", draw: drawTriangleScene},
		{name: "box.bmp", draw: drawBoxScene},
	}

	var g errgroup.Group
	for _, s := range scenes {
		s := s
		g.Go(func() error {
			r := &raster.Rasterizer{}
			if err := r.Init(800, 600); err != nil {
				return err
			}
			s.draw(r)
			path := filepath.Join(outDir, s.name)
			if err := r.Save(path); err != nil {
				return fmt.Errorf("%s: %w", s.name, err)
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func drawTriangleScene(r *raster.Rasterizer) {
	const varyingColor = 0
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
	r.SetVertexStage(func(index int, out *raster.ShaderContext) vecmath.Vec4 {
		out.Vec4[varyingColor] = colors[index]
		return positions[index]
	})
	r.SetPixelStage(func(in *raster.ShaderContext) vecmath.Vec4 { return in.Vec4[varyingColor] })
	r.Draw()
}

func drawBoxScene(r *raster.Rasterizer) {
	r.SetForeground(color.RGBA{G: 255, A: 255})
	r.SetRenderState(true, false)

	view := vecmath.LookAt(vecmath.Vec3{X: 2, Y: 2, Z: 2}, vecmath.Vec3{}, vecmath.Vec3{X: 0, Y: 1, Z: 0})
	proj := vecmath.Perspective(float32(math.Pi/3), float32(800)/float32(600), 0.1, 100)
	mvp := proj.Mul(view)

	h := float32(0.7)
	corners := [8]vecmath.Vec3{
		{X: -h, Y: -h, Z: -h}, {X: h, Y: -h, Z: -h}, {X: h, Y: h, Z: -h}, {X: -h, Y: h, Z: -h},
		{X: -h, Y: -h, Z: h}, {X: h, Y: -h, Z: h}, {X: h, Y: h, Z: h}, {X: -h, Y: h, Z: h},
	}
	faces := [12][3]int{
		{0, 1, 2}, {0, 2, 3},
		{4, 6, 5}, {4, 7, 6},
		{0, 4, 5}, {0, 5, 1},
		{3, 2, 6}, {3, 6, 7},
		{0, 3, 7}, {0, 7, 4},
		{1, 5, 6}, {1, 6, 2},
	}

	r.SetPixelStage(func(in *raster.ShaderContext) vecmath.Vec4 { return vecmath.Vec4{} })
	for _, tri := range faces {
		var verts [3]vecmath.Vec3
		for i, idx := range tri {
			verts[i] = corners[idx]
		}
		r.SetVertexStage(func(index int, out *raster.ShaderContext) vecmath.Vec4 {
			return mvp.MulVec4(vecmath.Vec4FromVec3(verts[index], 1))
		})
		r.Draw()
	}
}
