// (c) 2026 Zayn Otley
// https://github.com/zaynotley/rasterforge
// License: GPLv3 or later

package vecmath

import "math"

// Mat4 is a column-major 4x4 float32 matrix, indexed m[col*4+row] —
// matches the layout OpenGL-style MVP math expects.
type Mat4 [16]float32

// Identity returns the 4x4 identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate returns a translation matrix.
func Translate(x, y, z float32) Mat4 {
	m := Identity()
	m[12], m[13], m[14] = x, y, z
	return m
}

// Scale returns a non-uniform scale matrix.
func Scale(x, y, z float32) Mat4 {
	m := Identity()
	m[0], m[5], m[10] = x, y, z
	return m
}

// RotateX returns a rotation matrix about the X axis, angle in radians.
func RotateX(theta float32) Mat4 {
	s, c := float32(math.Sin(float64(theta))), float32(math.Cos(float64(theta)))
	m := Identity()
	m[5], m[6] = c, s
	m[9], m[10] = -s, c
	return m
}

// RotateY returns a rotation matrix about the Y axis, angle in radians.
func RotateY(theta float32) Mat4 {
	s, c := float32(math.Sin(float64(theta))), float32(math.Cos(float64(theta)))
	m := Identity()
	m[0], m[2] = c, -s
	m[8], m[10] = s, c
	return m
}

// RotateZ returns a rotation matrix about the Z axis, angle in radians.
func RotateZ(theta float32) Mat4 {
	s, c := float32(math.Sin(float64(theta))), float32(math.Cos(float64(theta)))
	m := Identity()
	m[0], m[1] = c, s
	m[4], m[5] = -s, c
	return m
}

// Mul returns a*b (a applied after b, i.e. column-vector convention: a.Mul(b).MulVec4(v) == a.MulVec4(b.MulVec4(v))).
func (a Mat4) Mul(b Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += a[k*4+row] * b[col*4+k]
			}
			out[col*4+row] = sum
		}
	}
	return out
}

// MulVec4 transforms a homogeneous vector by the matrix.
func (a Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		X: a[0]*v.X + a[4]*v.Y + a[8]*v.Z + a[12]*v.W,
		Y: a[1]*v.X + a[5]*v.Y + a[9]*v.Z + a[13]*v.W,
		Z: a[2]*v.X + a[6]*v.Y + a[10]*v.Z + a[14]*v.W,
		W: a[3]*v.X + a[7]*v.Y + a[11]*v.Z + a[15]*v.W,
	}
}

// TransformPoint transforms a point (implicit w=1) and returns xyz after
// the multiply, ignoring the resulting w (use MulVec4 directly for
// perspective-correct clip-space transforms).
func (a Mat4) TransformPoint(v Vec3) Vec3 {
	return a.MulVec4(Vec4FromVec3(v, 1)).Vec3()
}

// TransformDir transforms a direction (implicit w=0) — unaffected by translation.
func (a Mat4) TransformDir(v Vec3) Vec3 {
	return a.MulVec4(Vec4FromVec3(v, 0)).Vec3()
}

// LookAt builds a left-handed view matrix from eye towards center with
// the given up vector, matching D3DXMatrixLookAtLH: zaxis points from eye
// towards center (not negated), xaxis = up×zaxis.
func LookAt(eye, center, up Vec3) Mat4 {
	zaxis := center.Sub(eye).Normalize()
	xaxis := up.Cross(zaxis).Normalize()
	yaxis := zaxis.Cross(xaxis)

	return Mat4{
		xaxis.X, yaxis.X, zaxis.X, 0,
		xaxis.Y, yaxis.Y, zaxis.Y, 0,
		xaxis.Z, yaxis.Z, zaxis.Z, 0,
		-xaxis.Dot(eye), -yaxis.Dot(eye), -zaxis.Dot(eye), 1,
	}
}

// Perspective builds a left-handed perspective projection matrix matching
// D3DXMatrixPerspectiveFovLH: clip z maps to [0,w], not [-w,w]. fovY is in
// radians, aspect is width/height, near/far are positive distances with
// 0 < near < far.
func Perspective(fovY, aspect, near, far float32) Mat4 {
	f := float32(1 / math.Tan(float64(fovY)/2))
	var m Mat4
	m[0] = f / aspect
	m[5] = f
	m[10] = far / (far - near)
	m[11] = 1
	m[14] = -near * far / (far - near)
	return m
}

// Ortho builds an orthographic projection matrix over the given box.
func Ortho(left, right, bottom, top, near, far float32) Mat4 {
	m := Identity()
	m[0] = 2 / (right - left)
	m[5] = 2 / (top - bottom)
	m[10] = -2 / (far - near)
	m[12] = -(right + left) / (right - left)
	m[13] = -(top + bottom) / (top - bottom)
	m[14] = -(far + near) / (far - near)
	return m
}
