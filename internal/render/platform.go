package render

import (
	"image"

	"github.com/rook-computer/draghini/internal/input"
	"github.com/rook-computer/draghini/internal/pacing"
)

// Backend is the windowing/graphics library the context drives. Only one
// window and one renderer are created per backend.
type Backend interface {
	// InitVideo starts the process-wide video subsystem.
	InitVideo() error
	QuitVideo()
	// CreateWindow opens a shown window centered on screen.
	CreateWindow(cfg WindowConfig) (Window, error)
	// Events is only valid between InitVideo and QuitVideo.
	Events() input.Source
	Clock() pacing.Clock
}

type WindowConfig struct {
	Title  string
	Width  int
	Height int
}

type Window interface {
	// CreateRenderer creates an accelerated renderer bound to the window.
	CreateRenderer() (Renderer, error)
	Destroy() error
}

// Renderer draws into the window's back buffer.
type Renderer interface {
	Decoder

	SetDrawColor(c Color) error
	Clear() error
	// Copy stretches img over the whole render target.
	Copy(img Image) error
	// CopyRGBA blends a CPU-side image at the given top-left position.
	CopyRGBA(img *image.RGBA, at image.Point) error
	Present() error
	Destroy() error
}

// Decoder turns an image file into a resource drawable by one renderer.
type Decoder interface {
	Decode(path string) (Image, error)
}

// Image is a decoded, renderer-bound picture. Opaque beyond its size.
type Image interface {
	Size() (width int, height int)
	Destroy() error
}

// DecoderFunc adapts a function to Decoder.
type DecoderFunc func(path string) (Image, error)

func (f DecoderFunc) Decode(path string) (Image, error) { return f(path) }
