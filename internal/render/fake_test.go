package render_test

import (
	"errors"
	"image"
	"time"

	"github.com/rook-computer/draghini/internal/input"
	"github.com/rook-computer/draghini/internal/pacing"
	"github.com/rook-computer/draghini/internal/render"
)

// fakeBackend records every collaborator call made by the context.
type fakeBackend struct {
	initErr     error
	windowErr   error
	rendererErr error

	calls  []string
	queue  *input.Queue
	clock  *fakeClock
	window *fakeWindow
	config render.WindowConfig
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{queue: input.NewQueue(), clock: &fakeClock{}}
}

func (b *fakeBackend) InitVideo() error {
	b.calls = append(b.calls, "init")
	return b.initErr
}

func (b *fakeBackend) QuitVideo() { b.calls = append(b.calls, "quit") }

func (b *fakeBackend) CreateWindow(cfg render.WindowConfig) (render.Window, error) {
	b.calls = append(b.calls, "window")
	b.config = cfg
	if b.windowErr != nil {
		return nil, b.windowErr
	}
	b.window = &fakeWindow{backend: b}
	return b.window, nil
}

func (b *fakeBackend) Events() input.Source { return b.queue }

func (b *fakeBackend) Clock() pacing.Clock { return b.clock }

type fakeWindow struct {
	backend  *fakeBackend
	renderer *fakeRenderer
}

func (w *fakeWindow) CreateRenderer() (render.Renderer, error) {
	w.backend.calls = append(w.backend.calls, "renderer")
	if w.backend.rendererErr != nil {
		return nil, w.backend.rendererErr
	}
	w.renderer = &fakeRenderer{backend: w.backend, images: map[string]*fakeImage{}}
	return w.renderer, nil
}

func (w *fakeWindow) Destroy() error {
	w.backend.calls = append(w.backend.calls, "destroy-window")
	return nil
}

type fakeRenderer struct {
	backend *fakeBackend

	color    render.Color
	clears   int
	copies   []render.Image
	overlays []image.Point
	presents int
	decodes  []string
	// images maps decodable paths to the image returned; others fail.
	images map[string]*fakeImage
}

func (r *fakeRenderer) Decode(path string) (render.Image, error) {
	r.decodes = append(r.decodes, path)
	img, ok := r.images[path]
	if !ok {
		return nil, errors.New("no such file")
	}
	return img, nil
}

func (r *fakeRenderer) SetDrawColor(c render.Color) error {
	r.color = c
	return nil
}

func (r *fakeRenderer) Clear() error {
	r.clears++
	return nil
}

func (r *fakeRenderer) Copy(img render.Image) error {
	r.copies = append(r.copies, img)
	return nil
}

func (r *fakeRenderer) CopyRGBA(img *image.RGBA, at image.Point) error {
	r.overlays = append(r.overlays, at)
	return nil
}

func (r *fakeRenderer) Present() error {
	r.presents++
	return nil
}

func (r *fakeRenderer) Destroy() error {
	r.backend.calls = append(r.backend.calls, "destroy-renderer")
	return nil
}

type fakeImage struct {
	w, h      int
	destroyed int
}

func (i *fakeImage) Size() (int, int) { return i.w, i.h }

func (i *fakeImage) Destroy() error {
	i.destroyed++
	return nil
}

type fakeClock struct {
	now time.Duration
}

func (c *fakeClock) Ticks() time.Duration  { return c.now }
func (c *fakeClock) Counter() uint64       { return uint64(c.now) }
func (c *fakeClock) Frequency() uint64     { return uint64(time.Second) }
func (c *fakeClock) Sleep(d time.Duration) { c.now += d }
