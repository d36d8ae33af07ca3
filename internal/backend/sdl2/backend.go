package sdl2

import (
	"errors"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/rook-computer/draghini/internal/input"
	"github.com/rook-computer/draghini/internal/logging"
	"github.com/rook-computer/draghini/internal/pacing"
	"github.com/rook-computer/draghini/internal/render"
)

var ErrVideoActive = errors.New("sdl2: backend already holds the video subsystem")

type Backend struct {
	Logger logging.Logger
	// RendererFlags are passed to SDL_CreateRenderer. New sets
	// RENDERER_ACCELERATED.
	RendererFlags uint32

	active bool
	events eventSource
	clock  clock
}

var _ render.Backend = (*Backend)(nil)

func New() *Backend {
	return &Backend{Logger: logging.NoopLogger{}, RendererFlags: uint32(sdl.RENDERER_ACCELERATED)}
}

func (b *Backend) InitVideo() error {
	if b.active {
		return ErrVideoActive
	}
	if err := acquireVideo(); err != nil {
		return err
	}
	b.active = true
	b.Logger.Infof("sdl", "video subsystem up (%d users)", videoRefs())
	return nil
}

func (b *Backend) QuitVideo() {
	if !b.active {
		return
	}
	b.active = false
	releaseVideo()
	b.Logger.Infof("sdl", "video subsystem released")
}

func (b *Backend) CreateWindow(cfg render.WindowConfig) (render.Window, error) {
	window, err := sdl.CreateWindow(cfg.Title,
		int32(sdl.WINDOWPOS_CENTERED),
		int32(sdl.WINDOWPOS_CENTERED),
		int32(cfg.Width), int32(cfg.Height), uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, err
	}
	return &Window{window: window, logger: b.Logger, flags: b.RendererFlags}, nil
}

func (b *Backend) Events() input.Source { return b.events }

func (b *Backend) Clock() pacing.Clock { return b.clock }

type Window struct {
	window *sdl.Window
	logger logging.Logger
	flags  uint32
}

func (w *Window) CreateRenderer() (render.Renderer, error) {
	r, err := sdl.CreateRenderer(w.window, -1, w.flags)
	if err != nil {
		return nil, err
	}
	return newRenderer(r, w.logger), nil
}

func (w *Window) Destroy() error {
	if w.window == nil {
		return nil
	}
	err := w.window.Destroy()
	w.window = nil
	return err
}

// eventSource reads the SDL event queue.
type eventSource struct{}

func (eventSource) PollEvent() (input.Event, bool) {
	ev := sdl.PollEvent()
	if ev == nil {
		return input.Event{}, false
	}
	return convertEvent(ev), true
}

// KeyboardState is SDL's live key array; the poller copies it.
func (eventSource) KeyboardState() []uint8 { return sdl.GetKeyboardState() }

func convertEvent(ev sdl.Event) input.Event {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		return input.Event{Kind: input.EventQuit}
	case *sdl.KeyboardEvent:
		kind := input.EventKeyUp
		if e.Type == sdl.KEYDOWN {
			kind = input.EventKeyDown
		}
		return input.Event{Kind: kind, Scancode: input.Scancode(e.Keysym.Scancode)}
	}
	return input.Event{Kind: input.EventOther}
}

// clock reads SDL's millisecond ticks and performance counter.
type clock struct{}

func (clock) Ticks() time.Duration { return time.Duration(sdl.GetTicks()) * time.Millisecond }
func (clock) Counter() uint64      { return sdl.GetPerformanceCounter() }
func (clock) Frequency() uint64    { return sdl.GetPerformanceFrequency() }

// Sleep has millisecond granularity; shorter requests are dropped.
func (clock) Sleep(d time.Duration) {
	if ms := d / time.Millisecond; ms > 0 {
		sdl.Delay(uint32(ms))
	}
}
