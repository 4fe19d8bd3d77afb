// (c) 2026 Zayn Otley
// https://github.com/zaynotley/rasterforge
// License: GPLv3 or later

package raster

import "image/color"

// drawLine rasterizes a line segment between two integer screen points
// using an integer error-accumulator (Bresenham family), matching the
// branch structure of the original bitmap line drawer: exact vertical,
// exact horizontal, and the general diagonal case are handled
// separately rather than folded into one symmetric loop.
func drawLine(fb *Framebuffer, x1, y1, x2, y2 int, c color.RGBA) {
	if x1 == x2 && y1 == y2 {
		fb.Set(x1, y1, c)
		return
	}

	if x1 == x2 {
		inc := 1
		if y1 > y2 {
			inc = -1
		}
		for y := y1; ; y += inc {
			fb.Set(x1, y, c)
			if y == y2 {
				break
			}
		}
		return
	}

	if y1 == y2 {
		inc := 1
		if x1 > x2 {
			inc = -1
		}
		for x := x1; ; x += inc {
			fb.Set(x, y1, c)
			if x == x2 {
				break
			}
		}
		return
	}

	dx := x2 - x1
	dy := y2 - y1
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	if dx >= dy {
		rem := dx >> 1
		y := y1
		for x := x1; ; x += sx {
			fb.Set(x, y, c)
			if x == x2 {
				break
			}
			rem += dy
			if rem >= dx {
				rem -= dx
				y += sy
			}
		}
	} else {
		rem := dy >> 1
		x := x1
		for y := y1; ; y += sy {
			fb.Set(x, y, c)
			if y == y2 {
				break
			}
			rem += dx
			if rem >= dy {
				rem -= dy
				x += sx
			}
		}
	}
}
