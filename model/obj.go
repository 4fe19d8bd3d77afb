// (c) 2026 Zayn Otley
// https://github.com/zaynotley/rasterforge
// License: GPLv3 or later

// Package model implements the Wavefront OBJ loader collaborator: parses
// v/vt/vn/f records into per-face position/uv/normal triples ready to
// hand to the rasterizer's vertex stage. CubeOBJ embeds a ready-made mesh
// that most of the cube-shaped demos load instead of hand-listing corners
// and faces (cmd/gouraud and cmd/scenegen still hand-list theirs).
package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/zaynotley/rasterforge/vecmath"
)

// Vertex is one corner of a triangulated face: a position, an optional
// texture coordinate, and an optional normal.
type Vertex struct {
	Position vecmath.Vec3
	UV       vecmath.Vec2
	Normal   vecmath.Vec3
}

// Face is a triangle: three corners, each already resolved to concrete
// position/uv/normal values (no further index lookups required).
type Face [3]Vertex

// Model is a flattened, load-time-triangulated Wavefront OBJ mesh.
type Model struct {
	Faces []Face
}

// Load parses path as a Wavefront OBJ file. Only polygonal faces (f),
// vertex positions (v), texture coordinates (vt) and normals (vn) are
// recognized; faces with more than three vertices are fan-triangulated
// around their first vertex; all other record types are ignored.
func Load(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads Wavefront OBJ text from r.
func Parse(r io.Reader) (*Model, error) {
	var positions []vecmath.Vec3
	var uvs []vecmath.Vec2
	var normals []vecmath.Vec3
	var faceIdx [][3][3]int // per face-corner: [posIdx, uvIdx, normIdx], 0 means absent

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("model: line %d: %w", lineNo, err)
			}
			positions = append(positions, v)
		case "vt":
			v, err := parseVec2(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("model: line %d: %w", lineNo, err)
			}
			uvs = append(uvs, v)
		case "vn":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("model: line %d: %w", lineNo, err)
			}
			normals = append(normals, v)
		case "f":
			corners := make([][3]int, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				c, err := parseFaceToken(tok)
				if err != nil {
					return nil, fmt.Errorf("model: line %d: %w", lineNo, err)
				}
				corners = append(corners, c)
			}
			if len(corners) < 3 {
				return nil, fmt.Errorf("model: line %d: face has fewer than 3 vertices", lineNo)
			}
			for i := 1; i < len(corners)-1; i++ {
				faceIdx = append(faceIdx, [3][3]int{corners[0], corners[i], corners[i+1]})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	resolve := func(idx [3]int) (Vertex, error) {
		var v Vertex
		pi, ti, ni := idx[0], idx[1], idx[2]
		if pi <= 0 || pi > len(positions) {
			return v, fmt.Errorf("model: vertex index %d out of range", pi)
		}
		v.Position = positions[pi-1]
		if ti > 0 {
			if ti > len(uvs) {
				return v, fmt.Errorf("model: uv index %d out of range", ti)
			}
			v.UV = uvs[ti-1]
		}
		if ni > 0 {
			if ni > len(normals) {
				return v, fmt.Errorf("model: normal index %d out of range", ni)
			}
			v.Normal = normals[ni-1]
		}
		return v, nil
	}

	m := &Model{Faces: make([]Face, 0, len(faceIdx))}
	for _, tri := range faceIdx {
		var face Face
		for i, idx := range tri {
			v, err := resolve(idx)
			if err != nil {
				return nil, err
			}
			face[i] = v
		}
		m.Faces = append(m.Faces, face)
	}
	return m, nil
}

func parseVec3(fields []string) (vecmath.Vec3, error) {
	if len(fields) < 3 {
		return vecmath.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 32)
	if err != nil {
		return vecmath.Vec3{}, err
	}
	y, err := strconv.ParseFloat(fields[1], 32)
	if err != nil {
		return vecmath.Vec3{}, err
	}
	z, err := strconv.ParseFloat(fields[2], 32)
	if err != nil {
		return vecmath.Vec3{}, err
	}
	return vecmath.Vec3{X: float32(x), Y: float32(y), Z: float32(z)}, nil
}

func parseVec2(fields []string) (vecmath.Vec2, error) {
	if len(fields) < 2 {
		return vecmath.Vec2{}, fmt.Errorf("expected 2 components, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 32)
	if err != nil {
		return vecmath.Vec2{}, err
	}
	y, err := strconv.ParseFloat(fields[1], 32)
	if err != nil {
		return vecmath.Vec2{}, err
	}
	return vecmath.Vec2{X: float32(x), Y: float32(y)}, nil
}

// parseFaceToken parses one "v", "v/vt", "v//vn", or "v/vt/vn" token
// into [posIdx, uvIdx, normIdx], with 0 meaning absent.
func parseFaceToken(tok string) ([3]int, error) {
	parts := strings.Split(tok, "/")
	var idx [3]int
	for i, p := range parts {
		if i > 2 {
			break
		}
		if p == "" {
			continue
		}
		v, err := strconv.Atoi(p)
		if err != nil {
			return idx, fmt.Errorf("invalid face index %q: %w", tok, err)
		}
		idx[i] = v
	}
	return idx, nil
}
