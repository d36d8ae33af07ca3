package sdl2

import (
	"errors"
	"fmt"
	"image"
	"unsafe"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/rook-computer/draghini/internal/logging"
	"github.com/rook-computer/draghini/internal/render"
)

// Uploaded overlays are kept until this many exist, then all are dropped.
const overlayCacheLimit = 64

var ErrForeignImage = errors.New("sdl2: image was not decoded by this renderer")

type Renderer struct {
	renderer *sdl.Renderer
	logger   logging.Logger
	overlays map[*image.RGBA]*sdl.Texture
}

var _ render.Renderer = (*Renderer)(nil)

func newRenderer(r *sdl.Renderer, logger logging.Logger) *Renderer {
	return &Renderer{renderer: r, logger: logger, overlays: make(map[*image.RGBA]*sdl.Texture)}
}

// Decode loads path with SDL_image straight into a texture bound to r.
func (r *Renderer) Decode(path string) (render.Image, error) {
	tex, err := img.LoadTexture(r.renderer, path)
	if err != nil {
		return nil, err
	}
	_, _, w, h, err := tex.Query()
	if err != nil {
		_ = tex.Destroy()
		return nil, err
	}
	return &Texture{texture: tex, owner: r, width: int(w), height: int(h)}, nil
}

func (r *Renderer) SetDrawColor(c render.Color) error {
	return r.renderer.SetDrawColor(c.R, c.G, c.B, c.A)
}

func (r *Renderer) Clear() error { return r.renderer.Clear() }

func (r *Renderer) Copy(i render.Image) error {
	tex, ok := i.(*Texture)
	if !ok {
		return fmt.Errorf("%w: %T", ErrForeignImage, i)
	}
	if tex.texture == nil {
		return errors.New("sdl2: texture destroyed")
	}
	return r.renderer.Copy(tex.texture, nil, nil)
}

// CopyRGBA uploads pix once per distinct image and blends it at at.
func (r *Renderer) CopyRGBA(pix *image.RGBA, at image.Point) error {
	if pix == nil || pix.Rect.Empty() {
		return nil
	}
	tex, ok := r.overlays[pix]
	if !ok {
		var err error
		if tex, err = r.upload(pix); err != nil {
			return err
		}
		if len(r.overlays) >= overlayCacheLimit {
			r.dropOverlays()
		}
		r.overlays[pix] = tex
	}
	dst := sdl.Rect{X: int32(at.X), Y: int32(at.Y), W: int32(pix.Rect.Dx()), H: int32(pix.Rect.Dy())}
	return r.renderer.Copy(tex, nil, &dst)
}

func (r *Renderer) upload(pix *image.RGBA) (*sdl.Texture, error) {
	w, h := pix.Rect.Dx(), pix.Rect.Dy()
	// ABGR8888 is R,G,B,A in memory on little endian, the image.RGBA layout.
	tex, err := r.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888), int(sdl.TEXTUREACCESS_STATIC), int32(w), int32(h))
	if err != nil {
		return nil, err
	}
	if err := tex.Update(nil, unsafe.Pointer(&pix.Pix[0]), pix.Stride); err != nil {
		_ = tex.Destroy()
		return nil, err
	}
	if err := tex.SetBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		r.logger.Errorf("sdl", "overlay blend mode: %v", err)
	}
	return tex, nil
}

func (r *Renderer) dropOverlays() {
	for key, tex := range r.overlays {
		_ = tex.Destroy()
		delete(r.overlays, key)
	}
}

func (r *Renderer) Present() error {
	r.renderer.Present()
	return nil
}

func (r *Renderer) Destroy() error {
	r.dropOverlays()
	if r.renderer == nil {
		return nil
	}
	err := r.renderer.Destroy()
	r.renderer = nil
	return err
}

// Texture is an SDL texture decoded from a file. It is only valid while
// the renderer that decoded it is alive.
type Texture struct {
	texture *sdl.Texture
	owner   *Renderer
	width   int
	height  int
}

func (t *Texture) Size() (int, int) { return t.width, t.height }

// Destroy frees the texture. After the owning renderer is destroyed SDL has
// already freed it, so only the handle is dropped.
func (t *Texture) Destroy() error {
	if t.texture == nil {
		return nil
	}
	if t.owner != nil && t.owner.renderer == nil {
		t.texture = nil
		return nil
	}
	err := t.texture.Destroy()
	t.texture = nil
	return err
}
