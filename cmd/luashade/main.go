// (c) 2026 Zayn Otley
// https://github.com/zaynotley/rasterforge
// License: GPLv3 or later

// cmd/luashade runs the triangle scene with its vertex/pixel shaders
// supplied by an external Lua script instead of compiled Go closures,
// exercising the scripting package end to end.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/zaynotley/rasterforge/raster"
	"github.com/zaynotley/rasterforge/scripting"
)

const defaultShader = `
function vertex(index, x, y, z)
    local colors = {
        {1, 0, 0, 1},
        {0, 1, 0, 1},
        {0, 0, 1, 1},
    }
    local c = colors[index + 1]
    set_varying4(0, c[1], c[2], c[3], c[4])
    return x, y, z, 1
end

function pixel()
    return get_varying4(0)
end
`

func main() {
	var (
		width, height int
		outPath       string
		scriptPath    string
	)

	flagSet := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.IntVar(&width, "width", 800, "framebuffer width")
	flagSet.IntVar(&height, "height", 600, "framebuffer height")
	flagSet.StringVar(&outPath, "out", "luashade.bmp", "output BMP path")
	flagSet.StringVar(&scriptPath, "script", "", "path to a Lua shader script (defaults to a built-in triangle shader)")

	flagSet.Usage = func() {
		flagSet.SetOutput(os.Stdout)
		fmt.Println("Usage: luashade [-script path.lua] [-width N] [-height N] [-out path.bmp]")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	source := defaultShader
	if scriptPath != "" {
		data, err := os.ReadFile(scriptPath)
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", scriptPath, err)
			os.Exit(1)
		}
		source = string(data)
	}

	prog, err := scripting.Load(source)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer prog.Close()
	scripting.RegisterHelpers(prog)

	positions := [3][3]float32{
		{0.0, 0.7, 0.9},
		{-0.6, -0.2, 0.01},
		{0.6, -0.2, 0.01},
	}

	r := &raster.Rasterizer{}
	if err := r.Init(width, height); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	r.SetVertexStage(prog.VertexShader(func(index int) (float32, float32, float32) {
		p := positions[index]
		return p[0], p[1], p[2]
	}))
	r.SetPixelStage(prog.PixelShader())

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
