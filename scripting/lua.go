// (c) 2026 Zayn Otley
// https://github.com/zaynotley/rasterforge
// License: GPLv3 or later

// Package scripting adapts a Lua script, run via gopher-lua, into the
// raster package's VertexShader/PixelShader callables. This gives the
// "shader callables as captured closures" design note a second concrete
// form: a shader program authored as text and loaded at run time
// instead of compiled into the binary.
package scripting

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/zaynotley/rasterforge/raster"
	"github.com/zaynotley/rasterforge/vecmath"
)

// Program wraps a Lua state exposing two globals a script must define:
//
//	function vertex(index, attrib_x, attrib_y, attrib_z)
//	    -- returns pos_x, pos_y, pos_z, pos_w, and writes varyings via set_varying4
//	end
//
//	function pixel()
//	    -- returns r, g, b, a, reading varyings via get_varying4
//	end
//
// Varying keys are passed as plain Lua numbers; only the vec4 varying
// kind is exposed to scripts, which covers colors and homogeneous
// positions — the common case for a scripted shader.
type Program struct {
	state *lua.LState
}

// Load compiles and runs the Lua source, leaving its vertex/pixel
// functions installed as globals.
func Load(source string) (*Program, error) {
	state := lua.NewState()
	if err := state.DoString(source); err != nil {
		state.Close()
		return nil, fmt.Errorf("scripting: %w", err)
	}
	return &Program{state: state}, nil
}

// Close releases the underlying Lua state.
func (p *Program) Close() {
	p.state.Close()
}

// attribSource supplies the per-vertex attributes a Lua vertex function
// reads; it is caller-defined, mirroring how the native demos capture
// their own vertex data in a Go closure.
type attribSource func(index int) (x, y, z float32)

// VertexShader adapts the Lua "vertex" global into a raster.VertexShader.
// attrib supplies the raw per-vertex position attribute handed to the
// script; the script is responsible for any transform.
func (p *Program) VertexShader(attrib attribSource) raster.VertexShader {
	return func(index int, out *raster.ShaderContext) vecmath.Vec4 {
		ax, ay, az := attrib(index)

		L := p.state
		fn := L.GetGlobal("vertex")
		if fn.Type() != lua.LTFunction {
			return vecmath.Vec4{}
		}

		varyingTable := L.NewTable()
		L.SetGlobal("__varying_out", varyingTable)

		if err := L.CallByParam(lua.P{Fn: fn, NRet: 4, Protect: true},
			lua.LNumber(index), lua.LNumber(ax), lua.LNumber(ay), lua.LNumber(az),
		); err != nil {
			return vecmath.Vec4{}
		}

		w := popNumber(L)
		z := popNumber(L)
		y := popNumber(L)
		x := popNumber(L)

		copyVaryingTable(varyingTable, out)
		return vecmath.Vec4{X: x, Y: y, Z: z, W: w}
	}
}

// PixelShader adapts the Lua "pixel" global into a raster.PixelShader.
func (p *Program) PixelShader() raster.PixelShader {
	return func(in *raster.ShaderContext) vecmath.Vec4 {
		L := p.state
		fn := L.GetGlobal("pixel")
		if fn.Type() != lua.LTFunction {
			return vecmath.Vec4{}
		}

		varyingTable := L.NewTable()
		for k, v := range in.Vec4 {
			inner := L.NewTable()
			inner.Append(lua.LNumber(v.X))
			inner.Append(lua.LNumber(v.Y))
			inner.Append(lua.LNumber(v.Z))
			inner.Append(lua.LNumber(v.W))
			varyingTable.RawSetInt(k, inner)
		}
		L.SetGlobal("__varying_in", varyingTable)

		if err := L.CallByParam(lua.P{Fn: fn, NRet: 4, Protect: true}); err != nil {
			return vecmath.Vec4{}
		}

		a := popNumber(L)
		b := popNumber(L)
		g := popNumber(L)
		r := popNumber(L)
		return vecmath.Vec4{X: r, Y: g, Z: b, W: a}
	}
}

func popNumber(L *lua.LState) float32 {
	v := L.Get(-1)
	L.Pop(1)
	if n, ok := v.(lua.LNumber); ok {
		return float32(n)
	}
	return 0
}

// copyVaryingTable reads __varying_out (populated by the script via
// set_varying4(key, x, y, z, w) calls, itself mutating the table) into
// the native shader context's Vec4 map.
func copyVaryingTable(t *lua.LTable, out *raster.ShaderContext) {
	t.ForEach(func(k, v lua.LValue) {
		key, ok := k.(lua.LNumber)
		if !ok {
			return
		}
		inner, ok := v.(*lua.LTable)
		if !ok {
			return
		}
		out.Vec4[int(key)] = vecmath.Vec4{
			X: float32(toNumber(inner.RawGetInt(1))),
			Y: float32(toNumber(inner.RawGetInt(2))),
			Z: float32(toNumber(inner.RawGetInt(3))),
			W: float32(toNumber(inner.RawGetInt(4))),
		}
	})
}

func toNumber(v lua.LValue) lua.LNumber {
	if n, ok := v.(lua.LNumber); ok {
		return n
	}
	return 0
}

// RegisterHelpers installs the set_varying4/get_varying4 helper
// functions a script needs to publish and read varyings, backed by the
// __varying_out / __varying_in globals VertexShader and PixelShader
// maintain.
func RegisterHelpers(p *Program) {
	L := p.state
	L.SetGlobal("set_varying4", L.NewFunction(func(L *lua.LState) int {
		key := L.ToInt(1)
		x, y, z, w := L.ToNumber(2), L.ToNumber(3), L.ToNumber(4), L.ToNumber(5)
		t, ok := L.GetGlobal("__varying_out").(*lua.LTable)
		if !ok {
			return 0
		}
		inner := L.NewTable()
		inner.Append(x)
		inner.Append(y)
		inner.Append(z)
		inner.Append(w)
		t.RawSetInt(key, inner)
		return 0
	}))
	L.SetGlobal("get_varying4", L.NewFunction(func(L *lua.LState) int {
		key := L.ToInt(1)
		t, ok := L.GetGlobal("__varying_in").(*lua.LTable)
		if !ok {
			L.Push(lua.LNumber(0))
			L.Push(lua.LNumber(0))
			L.Push(lua.LNumber(0))
			L.Push(lua.LNumber(0))
			return 4
		}
		inner, ok := t.RawGet(lua.LNumber(key)).(*lua.LTable)
		if !ok {
			L.Push(lua.LNumber(0))
			L.Push(lua.LNumber(0))
			L.Push(lua.LNumber(0))
			L.Push(lua.LNumber(0))
			return 4
		}
		L.Push(inner.RawGetInt(1))
		L.Push(inner.RawGetInt(2))
		L.Push(inner.RawGetInt(3))
		L.Push(inner.RawGetInt(4))
		return 4
	}))
}
