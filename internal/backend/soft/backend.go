// Package soft is a platform backend that renders into memory. It runs
// without a display, and the framebuffer backend builds on it.
package soft

import (
	"errors"
	"fmt"
	"image"

	"github.com/rook-computer/draghini/internal/input"
	"github.com/rook-computer/draghini/internal/pacing"
	"github.com/rook-computer/draghini/internal/render"
)

var (
	ErrVideoActive   = errors.New("soft: video subsystem already initialized")
	ErrVideoInactive = errors.New("soft: video subsystem not initialized")
	ErrWindowOpen    = errors.New("soft: a window is already open")
)

type Backend struct {
	// OnPresent receives every presented frame.
	OnPresent func(frame *image.RGBA) error

	queue  *input.Queue
	clock  pacing.Clock
	video  bool
	window *Window
}

var _ render.Backend = (*Backend)(nil)

// New returns a backend on clock; a nil clock uses the system clock.
func New(clock pacing.Clock) *Backend {
	if clock == nil {
		clock = pacing.NewSystemClock()
	}
	return &Backend{queue: input.NewQueue(), clock: clock}
}

func (b *Backend) InitVideo() error {
	if b.video {
		return ErrVideoActive
	}
	b.video = true
	return nil
}

func (b *Backend) QuitVideo() {
	b.video = false
	b.window = nil
}

func (b *Backend) CreateWindow(cfg render.WindowConfig) (render.Window, error) {
	if !b.video {
		return nil, ErrVideoInactive
	}
	if b.window != nil {
		return nil, ErrWindowOpen
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("soft: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	b.window = &Window{backend: b, config: cfg}
	return b.window, nil
}

func (b *Backend) Events() input.Source { return b.queue }

// Queue accepts synthetic events for the window.
func (b *Backend) Queue() *input.Queue { return b.queue }

func (b *Backend) Clock() pacing.Clock { return b.clock }

// Window returns the open window, or nil.
func (b *Backend) Window() *Window { return b.window }

type Window struct {
	backend  *Backend
	config   render.WindowConfig
	renderer *Renderer
}

func (w *Window) Config() render.WindowConfig { return w.config }

func (w *Window) CreateRenderer() (render.Renderer, error) {
	if w.renderer != nil {
		return nil, errors.New("soft: window already has a renderer")
	}
	w.renderer = NewRenderer(w.config.Width, w.config.Height, w.present)
	return w.renderer, nil
}

func (w *Window) present(frame *image.RGBA) error {
	if w.backend.OnPresent == nil {
		return nil
	}
	return w.backend.OnPresent(frame)
}

// Renderer returns the window's renderer, or nil.
func (w *Window) Renderer() *Renderer { return w.renderer }

func (w *Window) Destroy() error {
	if w.backend.window == w {
		w.backend.window = nil
	}
	return nil
}
