// (c) 2026 Zayn Otley
// https://github.com/zaynotley/rasterforge
// License: GPLv3 or later

package model

import _ "embed"

// CubeOBJ is a unit cube (half-extent 0.7) with per-face UVs and normals,
// embedded so the cmd/ demos can exercise the OBJ loader without shipping
// a separate asset alongside the binary.
//
//go:embed cube.obj
var CubeOBJ []byte
