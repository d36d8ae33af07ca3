// Package fb renders to the Linux framebuffer console. Frames are drawn on a
// logical canvas by the soft backend and scaled to the device on present;
// keyboard input is read from evdev devices.
package fb

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
)

const DefaultDevice = "/dev/fb0"

var ErrUnsupported = errors.New("fb: framebuffer backend is only available on linux")

// blit scales canvas onto dst with nearest-neighbor sampling.
func blit(dst draw.Image, canvas *image.RGBA) {
	if dst == nil || canvas == nil {
		return
	}
	bounds := dst.Bounds()
	fbWidth, fbHeight := bounds.Dx(), bounds.Dy()
	canvasWidth, canvasHeight := canvas.Rect.Dx(), canvas.Rect.Dy()
	if fbWidth == 0 || fbHeight == 0 || canvasWidth == 0 || canvasHeight == 0 {
		return
	}
	for y := 0; y < fbHeight; y++ {
		sy := canvas.Rect.Min.Y + (y*canvasHeight)/fbHeight
		for x := 0; x < fbWidth; x++ {
			sx := canvas.Rect.Min.X + (x*canvasWidth)/fbWidth
			pixel := canvas.RGBAAt(sx, sy)
			dst.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
}
