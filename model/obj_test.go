// (c) 2026 Zayn Otley
// https://github.com/zaynotley/rasterforge
// License: GPLv3 or later

package model

import (
	"strings"
	"testing"
)

func TestParseTriangle(t *testing.T) {
	src := `
# a single triangle
v 0.0 1.0 0.0
v -1.0 -1.0 0.0
v 1.0 -1.0 0.0
vt 0.5 1.0
vt 0.0 0.0
vt 1.0 0.0
f 1/1 2/2 3/3
`
	m, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(m.Faces) != 1 {
		t.Fatalf("expected 1 face, got %d", len(m.Faces))
	}
	f := m.Faces[0]
	if f[0].Position.Y != 1.0 {
		t.Fatalf("expected first vertex y=1.0, got %v", f[0].Position.Y)
	}
	if f[0].UV.X != 0.5 {
		t.Fatalf("expected first vertex uv.x=0.5, got %v", f[0].UV.X)
	}
}

func TestParseQuadFanTriangulation(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`
	m, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(m.Faces) != 2 {
		t.Fatalf("expected quad to fan-triangulate into 2 faces, got %d", len(m.Faces))
	}
}

func TestParseRejectsOutOfRangeIndex(t *testing.T) {
	src := `
v 0 0 0
f 1 2 3
`
	if _, err := Parse(strings.NewReader(src)); err == nil {
		t.Fatalf("expected an error for an out-of-range vertex index")
	}
}

func TestParseVertexNormalOnly(t *testing.T) {
	src := `
v 0 0 0
v 1 0 0
v 0 1 0
vn 0 0 1
f 1//1 2//1 3//1
`
	m, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if m.Faces[0][0].Normal.Z != 1 {
		t.Fatalf("expected normal z=1, got %v", m.Faces[0][0].Normal.Z)
	}
}
