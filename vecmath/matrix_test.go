// (c) 2026 Zayn Otley
// https://github.com/zaynotley/rasterforge
// License: GPLv3 or later

package vecmath

import "testing"

func almostEqual(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-4
}

func TestIdentityMulVec4(t *testing.T) {
	v := Vec4{1, 2, 3, 1}
	out := Identity().MulVec4(v)
	if out != v {
		t.Fatalf("identity changed vector: got %+v want %+v", out, v)
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(1, 2, 3)
	out := m.TransformPoint(Vec3{0, 0, 0})
	want := Vec3{1, 2, 3}
	if out != want {
		t.Fatalf("got %+v want %+v", out, want)
	}
}

func TestTranslateDirIgnored(t *testing.T) {
	m := Translate(1, 2, 3)
	out := m.TransformDir(Vec3{0, 0, 0})
	want := Vec3{0, 0, 0}
	if out != want {
		t.Fatalf("translation should not affect a direction: got %+v", out)
	}
}

func TestMulAssociativity(t *testing.T) {
	a := Translate(1, 0, 0)
	b := Scale(2, 2, 2)
	v := Vec4{1, 1, 1, 1}

	left := a.Mul(b).MulVec4(v)
	right := a.MulVec4(b.MulVec4(v))

	if !almostEqual(left.X, right.X) || !almostEqual(left.Y, right.Y) || !almostEqual(left.Z, right.Z) {
		t.Fatalf("Mul is not associative with MulVec4: got %+v want %+v", left, right)
	}
}

func TestLookAtEyeMapsToOrigin(t *testing.T) {
	eye := Vec3{0, 0, 5}
	m := LookAt(eye, Vec3{0, 0, 0}, Vec3{0, 1, 0})
	out := m.TransformPoint(eye)
	if !almostEqual(out.X, 0) || !almostEqual(out.Y, 0) || !almostEqual(out.Z, 0) {
		t.Fatalf("eye should map to view-space origin, got %+v", out)
	}
}

func TestVec3CrossOrthogonal(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	z := x.Cross(y)
	if !almostEqual(z.X, 0) || !almostEqual(z.Y, 0) || !almostEqual(z.Z, 1) {
		t.Fatalf("x cross y should be z, got %+v", z)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 0}.Normalize()
	if !almostEqual(v.Len(), 1) {
		t.Fatalf("normalized vector should have unit length, got %v", v.Len())
	}
}
