package render

import (
	"errors"
	"fmt"
	"image"

	"github.com/rook-computer/draghini/internal/input"
	"github.com/rook-computer/draghini/internal/logging"
	"github.com/rook-computer/draghini/internal/pacing"
)

const (
	DefaultTitle = "Draghini"
	DefaultSize  = 512
)

// State is the lifecycle of a Context.
type State int

const (
	StateInert State = iota
	StateReady
	StateFailed
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	case StateClosed:
		return "closed"
	default:
		return "inert"
	}
}

// Context owns one window and its renderer and runs the per-frame
// clear/draw/present cycle. It is not safe for concurrent use; the caller's
// loop orders clear, draws and present.
type Context struct {
	Logger logging.Logger
	// Decoder overrides the renderer's own decoder when set.
	Decoder Decoder
	Text    TextOptions

	backend  Backend
	window   Window
	renderer Renderer
	poller   *input.Poller
	pacer    *pacing.Pacer
	text     *TextRasterizer

	title  string
	width  int
	height int

	videoReady bool
	state      State
	err        error
	warned     bool
}

func NewContext(backend Backend) *Context {
	return &Context{
		Logger:  logging.NewStdoutLogger(),
		backend: backend,
		pacer:   pacing.New(backend.Clock()),
	}
}

// ResolveWindowConfig applies the default title and size to empty or zero
// values.
func ResolveWindowConfig(title string, width, height int) WindowConfig {
	if title == "" {
		title = DefaultTitle
	}
	if width == 0 {
		width = DefaultSize
	}
	if height == 0 {
		height = DefaultSize
	}
	return WindowConfig{Title: title, Width: width, Height: height}
}

// Initialize starts the video subsystem and creates the window and renderer.
// Any failure tears down what was created, leaves the context Failed and
// returns an error wrapping one of ErrVideoInit, ErrWindowCreate or
// ErrRendererCreate.
func (c *Context) Initialize(title string, width, height int) error {
	switch c.state {
	case StateReady:
		return ErrAlreadyInitialized
	case StateClosed:
		return ErrClosed
	}

	cfg := ResolveWindowConfig(title, width, height)
	c.title, c.width, c.height = cfg.Title, cfg.Width, cfg.Height
	if cfg.Width < 0 || cfg.Height < 0 {
		return c.fail(fmt.Errorf("%w: invalid size %dx%d", ErrWindowCreate, cfg.Width, cfg.Height))
	}

	if err := c.backend.InitVideo(); err != nil {
		return c.fail(fmt.Errorf("%w: %w", ErrVideoInit, err))
	}
	c.videoReady = true

	window, err := c.backend.CreateWindow(cfg)
	if err != nil {
		c.teardown()
		return c.fail(fmt.Errorf("%w: %w", ErrWindowCreate, err))
	}
	c.window = window

	renderer, err := window.CreateRenderer()
	if err != nil {
		c.teardown()
		return c.fail(fmt.Errorf("%w: %w", ErrRendererCreate, err))
	}
	c.renderer = renderer

	c.poller = input.NewPoller(c.backend.Events())
	c.pacer.Reset()
	c.state = StateReady
	c.err = nil
	c.logger().Infof("window", "created %q %dx%d", c.title, c.width, c.height)
	return nil
}

func (c *Context) fail(err error) error {
	c.state = StateFailed
	c.err = err
	c.logger().Errorf("window", "%v", err)
	return err
}

// teardown destroys whatever exists, renderer first.
func (c *Context) teardown() {
	if c.renderer != nil {
		if err := c.renderer.Destroy(); err != nil {
			c.logger().Errorf("window", "destroy renderer: %v", err)
		}
		c.renderer = nil
	}
	if c.window != nil {
		if err := c.window.Destroy(); err != nil {
			c.logger().Errorf("window", "destroy window: %v", err)
		}
		c.window = nil
	}
	if c.videoReady {
		c.backend.QuitVideo()
		c.videoReady = false
	}
}

// Close releases the renderer, the window and the video subsystem. It is
// safe on a context that was never initialized and safe to call twice.
// The poller is kept, so a quit seen before Close is still reported.
// Textures must be destroyed before Close: some renderers free their
// textures along with themselves.
func (c *Context) Close() error {
	if c.state == StateClosed {
		return nil
	}
	c.teardown()
	c.state = StateClosed
	return nil
}

func (c *Context) State() State { return c.state }

// Err returns the reason the last Initialize failed.
func (c *Context) Err() error { return c.err }

func (c *Context) Title() string { return c.title }

func (c *Context) Size() (width, height int) { return c.width, c.height }

func (c *Context) ready() bool {
	if c.state == StateReady {
		return true
	}
	if !c.warned {
		c.warned = true
		c.logger().Errorf("window", "draw call on %s context: %v", c.state, ErrNotInitialized)
	}
	return false
}

func (c *Context) logger() logging.Logger {
	if c.Logger == nil {
		return logging.NoopLogger{}
	}
	return c.Logger
}

// ClearBackground fills the whole render target with col.
func (c *Context) ClearBackground(col Color) {
	if !c.ready() {
		return
	}
	if err := c.renderer.SetDrawColor(col); err != nil {
		c.logger().Errorf("render", "set draw color: %v", err)
	}
	if err := c.renderer.Clear(); err != nil {
		c.logger().Errorf("render", "clear: %v", err)
	}
}

// DrawTexture2D copies tex over the whole render target, decoding it first
// if it has no image yet. A failed decode is logged and retried on the next
// draw.
func (c *Context) DrawTexture2D(tex *Texture2D) {
	if tex == nil || !c.ready() {
		return
	}
	if !tex.Loaded() {
		c.loadTexture2D(tex)
		if !tex.Loaded() {
			return
		}
	}
	if err := c.renderer.Copy(tex.Image()); err != nil {
		c.logger().Errorf("render", "copy %q: %v", tex.Path(), err)
	}
}

func (c *Context) loadTexture2D(tex *Texture2D) {
	img, err := c.decoder().Decode(tex.Path())
	if err == nil && img == nil {
		err = errors.New("decoder returned no image")
	}
	if err != nil {
		c.logger().Errorf("texture", "failed to load texture '%s': %v", tex.Path(), err)
		return
	}
	tex.Load(img)
	w, h := tex.Size()
	c.logger().Infof("texture", "loaded '%s' %dx%d", tex.Path(), w, h)
}

func (c *Context) decoder() Decoder {
	if c.Decoder != nil {
		return c.Decoder
	}
	return c.renderer
}

// DrawImage copies an already decoded image over the whole render target.
// The caller keeps ownership of img.
func (c *Context) DrawImage(img Image) {
	if img == nil || !c.ready() {
		return
	}
	if err := c.renderer.Copy(img); err != nil {
		c.logger().Errorf("render", "copy image: %v", err)
	}
}

// DrawText draws text with its top-left corner at (x, y).
func (c *Context) DrawText(text string, x, y int, col Color) {
	if !c.ready() {
		return
	}
	if c.text == nil {
		c.text = NewTextRasterizer(c.Text, c.logger())
	}
	img := c.text.Rasterize(text, col)
	if img == nil {
		return
	}
	if err := c.renderer.CopyRGBA(img, image.Pt(x, y)); err != nil {
		c.logger().Errorf("render", "copy text: %v", err)
	}
}

// DrawFPS draws the measured frame rate at (x, y).
func (c *Context) DrawFPS(x, y int) {
	c.DrawText(fmt.Sprintf("%d FPS", c.FPS()), x, y, White)
}

// Present flips the back buffer, then polls input and paces the frame.
func (c *Context) Present() {
	if !c.ready() {
		return
	}
	if err := c.renderer.Present(); err != nil {
		c.logger().Errorf("render", "present: %v", err)
	}
	c.updateWindow()
}

func (c *Context) updateWindow() {
	c.poller.Poll()
	c.pacer.Tick()
}

// SetTargetFPS sets the rate Present paces to. Non-positive values are
// rejected and the previous target is kept.
func (c *Context) SetTargetFPS(fps int) error {
	if err := c.pacer.SetTarget(fps); err != nil {
		return fmt.Errorf("%w: %d", ErrInvalidTargetFPS, fps)
	}
	return nil
}

func (c *Context) TargetFPS() int { return c.pacer.Target() }

// DeltaTime is the duration of the last frame in seconds.
func (c *Context) DeltaTime() float64 { return c.pacer.Last().Delta }

// FPS is the frame rate measured over the last frame.
func (c *Context) FPS() int { return c.pacer.Last().FPS }

// ShouldWindowClose reports whether a quit event has been seen.
func (c *Context) ShouldWindowClose() bool {
	if c.poller == nil {
		return false
	}
	return c.poller.ShouldClose()
}

// IsKeyDown reports whether code was held at the last Present. Always false
// before Initialize.
func (c *Context) IsKeyDown(code input.Scancode) bool {
	if c.poller == nil {
		return false
	}
	return c.poller.IsKeyDown(code)
}
