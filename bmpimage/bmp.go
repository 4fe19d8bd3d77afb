// (c) 2026 Zayn Otley
// https://github.com/zaynotley/rasterforge
// License: GPLv3 or later

// Package bmpimage implements the framebuffer image collaborator: an
// uncompressed 32-bit BMP encoder matching the exact byte layout the
// round-trip tests require (54-byte header, bottom-up rows, rows already
// 4-byte aligned at 32bpp), plus a decoder delegating to
// golang.org/x/image/bmp. The encoder does not write 24-bit files.
package bmpimage

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"image/color"
	"os"

	"golang.org/x/image/bmp"
)

const (
	fileHeaderSize = 14
	infoHeaderSize = 40
	headerSize     = fileHeaderSize + infoHeaderSize
)

// Save writes pix (row-major, top-left origin, width*height entries) to
// path as an uncompressed 32-bit BMP with bottom-up row order.
func Save(path string, width, height int, pix []color.RGBA) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("bmpimage: invalid dimensions %dx%d", width, height)
	}
	if len(pix) != width*height {
		return fmt.Errorf("bmpimage: pixel slice length %d does not match %dx%d", len(pix), width, height)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	pitch := width * 4
	imageSize := pitch * height

	// BITMAPFILEHEADER (14 bytes)
	writeU16(w, 0x4D42) // "BM"
	writeU32(w, uint32(headerSize+imageSize))
	writeU16(w, 0)
	writeU16(w, 0)
	writeU32(w, uint32(headerSize))

	// BITMAPINFOHEADER (40 bytes)
	writeU32(w, infoHeaderSize)
	writeI32(w, int32(width))
	writeI32(w, int32(height))
	writeU16(w, 1)  // planes
	writeU16(w, 32) // bits per pixel
	writeU32(w, 0)  // BI_RGB, no compression
	writeU32(w, uint32(imageSize))
	writeI32(w, 2835) // ~72 DPI
	writeI32(w, 2835)
	writeU32(w, 0)
	writeU32(w, 0)

	// Pixel data, bottom-up, BGRA byte order, no padding needed at 32bpp.
	row := make([]byte, pitch)
	for y := height - 1; y >= 0; y-- {
		base := y * width
		for x := 0; x < width; x++ {
			c := pix[base+x]
			row[x*4+0] = c.B
			row[x*4+1] = c.G
			row[x*4+2] = c.R
			row[x*4+3] = c.A
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Flush()
}

// Load reads a BMP file via golang.org/x/image/bmp and returns its
// pixels as a flat, top-left-origin row-major RGBA slice.
func Load(path string) (width, height int, pix []color.RGBA, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, nil, err
	}
	defer f.Close()

	img, err := bmp.Decode(f)
	if err != nil {
		return 0, 0, nil, err
	}

	b := img.Bounds()
	width, height = b.Dx(), b.Dy()
	pix = make([]color.RGBA, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, bch, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			pix[y*width+x] = color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bch >> 8), A: uint8(a >> 8)}
		}
	}
	return width, height, pix, nil
}

func writeU16(w *bufio.Writer, v uint16) {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	w.Write(buf[:])
}

func writeU32(w *bufio.Writer, v uint32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	w.Write(buf[:])
}

func writeI32(w *bufio.Writer, v int32) {
	writeU32(w, uint32(v))
}
