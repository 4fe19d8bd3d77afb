// (c) 2026 Zayn Otley
// https://github.com/zaynotley/rasterforge
// License: GPLv3 or later

// Package viewer implements the optional interactive window collaborator:
// it blits a raster.Framebuffer into an ebiten window every frame and
// overlays an FPS/triangle-count HUD, with a clipboard-copy keybinding
// for grabbing the current frame as a PNG.
package viewer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"

	"github.com/zaynotley/rasterforge/raster"
)

// RenderFunc draws one frame into fb, returning the number of triangles
// submitted (for the HUD triangle counter).
type RenderFunc func(fb *raster.Framebuffer) int

// Window drives an ebiten game loop that calls a RenderFunc every frame
// and displays the result, with an FPS/triangle-count HUD and a
// clipboard-copy keybinding (press C).
type Window struct {
	width, height int
	render        RenderFunc

	image *ebiten.Image

	clipboardOnce sync.Once
	clipboardOK   bool

	triCount int
}

// New creates a viewer window of the given size driven by render.
func New(width, height int, render RenderFunc) *Window {
	return &Window{width: width, height: height, render: render}
}

// Run opens the window and blocks until it is closed.
func (w *Window) Run(title string) error {
	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizable(true)
	return ebiten.RunGame(w)
}

func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		w.copyFrameToClipboard()
	}
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	if w.image == nil {
		w.image = ebiten.NewImage(w.width, w.height)
	}

	fb := raster.NewFramebuffer(w.width, w.height)
	w.triCount = w.render(fb)
	w.image.WritePixels(framebufferBytes(fb))
	screen.DrawImage(w.image, nil)

	w.drawHUD(screen)
}

func (w *Window) Layout(_, _ int) (int, int) {
	return w.width, w.height
}

func (w *Window) drawHUD(screen *ebiten.Image) {
	face := basicfont.Face7x13
	ebitenutil.DrawRect(screen, 0, 0, 220, 16, color.RGBA{0, 0, 0, 180})
	msg := fmt.Sprintf("FPS %.0f  tris %d", ebiten.CurrentFPS(), w.triCount)
	text.Draw(screen, msg, face, 4, 12, color.RGBA{220, 220, 220, 255})
}

func (w *Window) copyFrameToClipboard() {
	w.clipboardOnce.Do(func() {
		w.clipboardOK = clipboard.Init() == nil
	})
	if !w.clipboardOK || w.image == nil {
		return
	}

	img := image.NewRGBA(image.Rect(0, 0, w.width, w.height))
	w.image.ReadPixels(img.Pix)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return
	}
	clipboard.Write(clipboard.FmtImage, buf.Bytes())
}

func framebufferBytes(fb *raster.Framebuffer) []byte {
	out := make([]byte, fb.Width*fb.Height*4)
	for i, c := range fb.Pix {
		out[i*4+0] = c.R
		out[i*4+1] = c.G
		out[i*4+2] = c.B
		out[i*4+3] = c.A
	}
	return out
}
