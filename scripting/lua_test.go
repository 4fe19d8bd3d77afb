// (c) 2026 Zayn Otley
// https://github.com/zaynotley/rasterforge
// License: GPLv3 or later

package scripting

import (
	"testing"

	"github.com/zaynotley/rasterforge/raster"
)

const testScript = `
function vertex(index, x, y, z)
    set_varying4(0, 1, 0, 0, 1)
    return x, y, z, 1
end

function pixel()
    local r, g, b, a = get_varying4(0)
    return r, g, b, a
end
`

func TestVertexAndPixelShaderRoundTrip(t *testing.T) {
	prog, err := Load(testScript)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	defer prog.Close()
	RegisterHelpers(prog)

	attrib := func(index int) (float32, float32, float32) {
		return float32(index), 0, 0
	}

	vs := prog.VertexShader(attrib)
	out := raster.NewShaderContext()
	pos := vs(2, &out)
	if pos.X != 2 {
		t.Fatalf("expected x=2 passed through from attrib, got %v", pos.X)
	}
	if out.Vec4[0].X != 1 {
		t.Fatalf("expected varying 0 to be set by the script, got %+v", out.Vec4[0])
	}

	ps := prog.PixelShader()
	color := ps(&out)
	if color.X != 1 || color.Y != 0 {
		t.Fatalf("expected pixel shader to read back the varying, got %+v", color)
	}
}

func TestLoadRejectsInvalidSyntax(t *testing.T) {
	if _, err := Load("this is not lua {{{"); err == nil {
		t.Fatalf("expected an error for invalid Lua source")
	}
}
