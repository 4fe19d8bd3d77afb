// (c) 2026 Zayn Otley
// https://github.com/zaynotley/rasterforge
// License: GPLv3 or later

// cmd/triangle renders a single Gouraud-shaded triangle, the simplest
// exercise of the core rasterizer: one vertex color per corner,
// perspective-correct interpolated to a smooth gradient.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/zaynotley/rasterforge/raster"
	"github.com/zaynotley/rasterforge/vecmath"
)

const varyingColor = 0

func main() {
	var (
		width, height int
		outPath       string
		wireframe     bool
	)

	flagSet := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.IntVar(&width, "width", 800, "framebuffer width")
	flagSet.IntVar(&height, "height", 600, "framebuffer height")
	flagSet.StringVar(&outPath, "out", "triangle.bmp", "output BMP path")
	flagSet.BoolVar(&wireframe, "wireframe", false, "overlay a wireframe outline")

	flagSet.Usage = func() {
		flagSet.SetOutput(os.Stdout)
		fmt.Println("Usage: triangle [-width N] [-height N] [-out path.bmp] [-wireframe]")
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
	r.SetRenderState(wireframe, true)

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
	r.SetPixelStage(func(in *raster.ShaderContext) vecmath.Vec4 {
		return in.Vec4[varyingColor]
	})

	if !r.Draw() {
		fmt.Println("Error: draw rejected")
		os.Exit(1)
	}

	if err := r.Save(outPath); err != nil {
		fmt.Printf("Error saving %s: %v\n", outPath, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%dx%d)\n", outPath, width, height)
}
