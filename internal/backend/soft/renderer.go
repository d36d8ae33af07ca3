package soft

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/rook-computer/draghini/internal/render"
)

var (
	ErrDestroyed    = errors.New("soft: renderer destroyed")
	ErrForeignImage = errors.New("soft: image was not decoded by this backend")
)

// Renderer draws into an offscreen RGBA canvas. Present copies the canvas
// into the front buffer and hands it to the present hook.
type Renderer struct {
	// Scaler stretches images whose size differs from the canvas.
	Scaler xdraw.Scaler

	canvas    *image.RGBA
	front     *image.RGBA
	color     render.Color
	onPresent func(frame *image.RGBA) error
	destroyed bool
}

var _ render.Renderer = (*Renderer)(nil)

func NewRenderer(width, height int, onPresent func(frame *image.RGBA) error) *Renderer {
	return &Renderer{
		Scaler:    xdraw.ApproxBiLinear,
		canvas:    image.NewRGBA(image.Rect(0, 0, width, height)),
		front:     image.NewRGBA(image.Rect(0, 0, width, height)),
		onPresent: onPresent,
	}
}

func (r *Renderer) Decode(path string) (render.Image, error) {
	if r.destroyed {
		return nil, ErrDestroyed
	}
	img, err := DecodeFile(path)
	if err != nil {
		return nil, err
	}
	return img, nil
}

func (r *Renderer) SetDrawColor(c render.Color) error {
	if r.destroyed {
		return ErrDestroyed
	}
	r.color = c
	return nil
}

func (r *Renderer) Clear() error {
	if r.destroyed {
		return ErrDestroyed
	}
	draw.Draw(r.canvas, r.canvas.Bounds(), &image.Uniform{C: r.color.NRGBA()}, image.Point{}, draw.Src)
	return nil
}

func (r *Renderer) Copy(img render.Image) error {
	if r.destroyed {
		return ErrDestroyed
	}
	si, ok := img.(*Image)
	if !ok {
		return fmt.Errorf("%w: %T", ErrForeignImage, img)
	}
	src := si.RGBA()
	if src == nil {
		return errors.New("soft: image destroyed")
	}
	dst := r.canvas.Bounds()
	if src.Bounds().Size() == dst.Size() {
		draw.Draw(r.canvas, dst, src, src.Bounds().Min, draw.Over)
		return nil
	}
	r.Scaler.Scale(r.canvas, dst, src, src.Bounds(), xdraw.Over, nil)
	return nil
}

func (r *Renderer) CopyRGBA(img *image.RGBA, at image.Point) error {
	if r.destroyed {
		return ErrDestroyed
	}
	if img == nil {
		return nil
	}
	rect := img.Bounds().Sub(img.Bounds().Min).Add(at)
	draw.Draw(r.canvas, rect, img, img.Bounds().Min, draw.Over)
	return nil
}

func (r *Renderer) Present() error {
	if r.destroyed {
		return ErrDestroyed
	}
	copy(r.front.Pix, r.canvas.Pix)
	if r.onPresent != nil {
		return r.onPresent(r.front)
	}
	return nil
}

// Canvas is the back buffer being drawn.
func (r *Renderer) Canvas() *image.RGBA { return r.canvas }

// Frame is the last presented frame. It is reused by the next Present.
func (r *Renderer) Frame() *image.RGBA { return r.front }

func (r *Renderer) Destroy() error {
	r.destroyed = true
	return nil
}
