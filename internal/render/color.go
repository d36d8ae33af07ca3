package render

import "image/color"

// Vector2 is a plain 2D coordinate. Nothing consumes it yet; it is reserved
// for positioned and scaled draws.
type Vector2 struct {
	X float32
	Y float32
}

// Color is a straight (non-premultiplied) RGBA color, as the platform
// renderer's draw color expects.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

var (
	White = Color{R: 255, G: 255, B: 255, A: 255}
	// Red is the opaque dark red used as the default background.
	Red = Color{R: 187, G: 0, B: 0, A: 255}
)

// NRGBA converts c for use with image/draw.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (c Color) RGBA() (r, g, b, a uint32) { return c.NRGBA().RGBA() }
