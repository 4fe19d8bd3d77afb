// (c) 2026 Zayn Otley
// https://github.com/zaynotley/rasterforge
// License: GPLv3 or later

package bmpimage

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	width, height := 4, 3
	pix := make([]color.RGBA, width*height)
	for i := range pix {
		pix[i] = color.RGBA{
			R: uint8(i * 7 % 256),
			G: uint8(i * 13 % 256),
			B: uint8(i * 29 % 256),
			A: 255,
		}
	}

	path := filepath.Join(t.TempDir(), "out.bmp")
	if err := Save(path, width, height, pix); err != nil {
		t.Fatalf("Save: %v", err)
	}

	gotW, gotH, gotPix, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if gotW != width || gotH != height {
		t.Fatalf("dimensions: got %dx%d want %dx%d", gotW, gotH, width, height)
	}
	for i, want := range pix {
		got := gotPix[i]
		if got.R != want.R || got.G != want.G || got.B != want.B {
			t.Fatalf("pixel %d: got %+v want %+v", i, got, want)
		}
	}
}

func TestSaveHeaderLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "header.bmp")
	pix := []color.RGBA{{R: 1, G: 2, B: 3, A: 255}}
	if err := Save(path, 1, 1, pix); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(data) != headerSize+4 {
		t.Fatalf("file size: got %d want %d", len(data), headerSize+4)
	}
	if data[0] != 'B' || data[1] != 'M' {
		t.Fatalf("missing BM magic, got %q", data[:2])
	}
	bfOffBits := uint32(data[10]) | uint32(data[11])<<8 | uint32(data[12])<<16 | uint32(data[13])<<24
	if bfOffBits != headerSize {
		t.Fatalf("bfOffBits: got %d want %d", bfOffBits, headerSize)
	}
}

func TestSaveRejectsMismatchedPixelCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.bmp")
	if err := Save(path, 2, 2, []color.RGBA{{}}); err == nil {
		t.Fatalf("expected error for mismatched pixel count")
	}
}
