// (c) 2026 Zayn Otley
// https://github.com/zaynotley/rasterforge
// License: GPLv3 or later

// cmd/normalmap renders a cube with a tangent-space normal map sampled
// in the pixel stage, exercising a vec3 varying (the tangent-space
// light direction) alongside the vec2 UV varying. The cube geometry is
// loaded through the OBJ loader rather than hand-listed.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"os"

	"github.com/zaynotley/rasterforge/model"
	"github.com/zaynotley/rasterforge/raster"
	"github.com/zaynotley/rasterforge/texture"
	"github.com/zaynotley/rasterforge/vecmath"
)

const (
	varyingUV        = 0
	varyingLightDirT = 1
)

type nmVertex struct {
	pos     vecmath.Vec3
	normal  vecmath.Vec3
	tangent vecmath.Vec3
	uv      vecmath.Vec2
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
	flagSet.StringVar(&outPath, "out", "normalmap.bmp", "output BMP path")

	flagSet.Usage = func() {
		flagSet.SetOutput(os.Stdout)
		fmt.Println("Usage: normalmap [-width N] [-height N] [-out path.bmp]")
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

	// A flat "up" normal map (128,128,255) everywhere — enough to
	// exercise the sampling/unpacking path without needing an asset file.
	normalTex := texture.New(solidImage(64, 64, color.RGBA{R: 128, G: 128, B: 255, A: 255}))

	modelMat := rotateY(0.6)
	view := vecmath.LookAt(vecmath.Vec3{X: 2, Y: 1.5, Z: 2.5}, vecmath.Vec3{}, vecmath.Vec3{X: 0, Y: 1, Z: 0})
	proj := vecmath.Perspective(float32(math.Pi/3), float32(width)/float32(height), 0.1, 100)
	mvp := proj.Mul(view).Mul(modelMat)

	lightDir := vecmath.Vec3{X: 0.3, Y: 0.6, Z: 0.75}.Normalize()

	mesh, err := model.Parse(bytes.NewReader(model.CubeOBJ))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	r.SetPixelStage(func(in *raster.ShaderContext) vecmath.Vec4 {
		uv := in.Vec2[varyingUV]
		sample := normalTex.Sample2D(uv.X, uv.Y)
		n := vecmath.Vec3{X: sample.X*2 - 1, Y: sample.Y*2 - 1, Z: sample.Z*2 - 1}.Normalize()
		lt := in.Vec3[varyingLightDirT]
		diffuse := n.Dot(lt)
		if diffuse < 0.05 {
			diffuse = 0.05
		}
		return vecmath.Vec4{X: diffuse, Y: diffuse, Z: diffuse, W: 1}
	})

	triCount := 0
	for _, face := range mesh.Faces {
		tv := cubeFaceToNormalMapVertices(face)
		r.SetVertexStage(func(index int, out *raster.ShaderContext) vecmath.Vec4 {
			v := tv[index]
			n := modelMat.TransformDir(v.normal).Normalize()
			t := modelMat.TransformDir(v.tangent).Normalize()
			b := n.Cross(t)

			out.Vec2[varyingUV] = v.uv
			out.Vec3[varyingLightDirT] = vecmath.Vec3{
				X: t.Dot(lightDir),
				Y: b.Dot(lightDir),
				Z: n.Dot(lightDir),
			}
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

func rotateY(theta float32) vecmath.Mat4 {
	s, c := float32(math.Sin(float64(theta))), float32(math.Cos(float64(theta)))
	return vecmath.Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

func solidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// cubeFaceToNormalMapVertices derives one tangent per face from its
// position/UV deltas (Wavefront OBJ has no standard tangent attribute,
// so the loader never produces one), the same edge/UV construction used
// for any flat-faced normal-mapped mesh.
func cubeFaceToNormalMapVertices(face model.Face) [3]nmVertex {
	edge1 := face[1].Position.Sub(face[0].Position)
	edge2 := face[2].Position.Sub(face[0].Position)
	duv1 := face[1].UV.Sub(face[0].UV)
	duv2 := face[2].UV.Sub(face[0].UV)

	denom := duv1.X*duv2.Y - duv2.X*duv1.Y
	f := float32(0)
	if denom != 0 {
		f = 1 / denom
	}
	tangent := edge1.Scale(duv2.Y).Sub(edge2.Scale(duv1.Y)).Scale(f).Normalize()

	var out [3]nmVertex
	for i, v := range face {
		out[i] = nmVertex{pos: v.Position, normal: v.Normal, tangent: tangent, uv: v.UV}
	}
	return out
}
