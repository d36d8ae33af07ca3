//go:build !linux

package fb

import (
	"github.com/rook-computer/draghini/internal/input"
	"github.com/rook-computer/draghini/internal/logging"
	"github.com/rook-computer/draghini/internal/pacing"
	"github.com/rook-computer/draghini/internal/render"
)

// Backend always fails InitVideo off linux.
type Backend struct {
	Logger       logging.Logger
	InputPattern string
	KeepConsole  bool

	clock pacing.Clock
	queue *input.Queue
}

var _ render.Backend = (*Backend)(nil)

func New(devicePath string) *Backend {
	return &Backend{Logger: logging.NoopLogger{}, clock: pacing.NewSystemClock(), queue: input.NewQueue()}
}

func (b *Backend) InitVideo() error { return ErrUnsupported }
func (b *Backend) QuitVideo()       {}

func (b *Backend) CreateWindow(cfg render.WindowConfig) (render.Window, error) {
	return nil, ErrUnsupported
}

func (b *Backend) Events() input.Source { return b.queue }
func (b *Backend) Clock() pacing.Clock  { return b.clock }
