//go:build linux

package fb

import (
	"context"
	"fmt"
	"image"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gonutz/framebuffer"

	"github.com/rook-computer/draghini/internal/backend/soft"
	"github.com/rook-computer/draghini/internal/input"
	"github.com/rook-computer/draghini/internal/logging"
	"github.com/rook-computer/draghini/internal/pacing"
	"github.com/rook-computer/draghini/internal/render"
)

type Backend struct {
	Logger logging.Logger
	// InputPattern selects the evdev devices to read.
	InputPattern string
	// KeepConsole leaves the VT in text mode with the cursor shown.
	KeepConsole bool

	devicePath string
	soft       *soft.Backend
	dev        *framebuffer.Device
	cancel     context.CancelFunc
	readers    *sync.WaitGroup
	signals    chan os.Signal
	graphics   bool
}

var _ render.Backend = (*Backend)(nil)

// New returns a backend for the framebuffer at devicePath, DefaultDevice
// when empty.
func New(devicePath string) *Backend {
	if devicePath == "" {
		devicePath = DefaultDevice
	}
	return &Backend{
		Logger:       logging.NoopLogger{},
		InputPattern: "/dev/input/event*",
		devicePath:   devicePath,
		soft:         soft.New(pacing.NewSystemClock()),
	}
}

// InitVideo opens the device, takes over the console and starts reading
// input. SIGINT and SIGTERM are delivered as quit events.
func (b *Backend) InitVideo() error {
	if b.dev != nil {
		return soft.ErrVideoActive
	}
	dev, err := framebuffer.Open(b.devicePath)
	if err != nil {
		return fmt.Errorf("open %s: %w", b.devicePath, err)
	}
	if err := b.soft.InitVideo(); err != nil {
		dev.Close()
		return err
	}
	b.dev = dev
	bounds := dev.Bounds()
	b.Logger.Infof("fb", "framebuffer open, bounds=%dx%d", bounds.Dx(), bounds.Dy())

	if !b.KeepConsole {
		if err := setConsoleMode(kdGraphics); err != nil {
			b.Logger.Errorf("tty", "KD_GRAPHICS failed: %v", err)
		} else {
			b.graphics = true
		}
		if err := setCursorVisible(false); err != nil {
			b.Logger.Errorf("tty", "hide cursor failed: %v", err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel
	b.readers = readKeyboards(ctx, b.InputPattern, b.soft.Queue(), b.Logger)

	b.signals = make(chan os.Signal, 1)
	signal.Notify(b.signals, os.Interrupt, syscall.SIGTERM)
	go func(signals <-chan os.Signal, queue *input.Queue) {
		for {
			select {
			case <-ctx.Done():
				return
			case <-signals:
				queue.Push(input.Event{Kind: input.EventQuit})
			}
		}
	}(b.signals, b.soft.Queue())

	b.soft.OnPresent = b.present
	return nil
}

func (b *Backend) present(frame *image.RGBA) error {
	blit(b.dev, frame)
	return nil
}

// QuitVideo stops input, restores the console and closes the device.
func (b *Backend) QuitVideo() {
	if b.dev == nil {
		return
	}
	signal.Stop(b.signals)
	b.cancel()
	b.readers.Wait()

	if !b.KeepConsole {
		if err := setCursorVisible(true); err != nil {
			b.Logger.Errorf("tty", "show cursor failed: %v", err)
		}
		if b.graphics {
			if err := setConsoleMode(kdText); err != nil {
				b.Logger.Errorf("tty", "KD_TEXT failed: %v", err)
			}
			b.graphics = false
		}
	}

	b.soft.OnPresent = nil
	b.soft.QuitVideo()
	b.dev.Close()
	b.dev = nil
	b.Logger.Infof("fb", "framebuffer closed")
}

// CreateWindow allocates the logical canvas. The title is only logged; the
// console has nowhere to show it.
func (b *Backend) CreateWindow(cfg render.WindowConfig) (render.Window, error) {
	w, err := b.soft.CreateWindow(cfg)
	if err != nil {
		return nil, err
	}
	b.Logger.Infof("fb", "canvas %q %dx%d", cfg.Title, cfg.Width, cfg.Height)
	return w, nil
}

func (b *Backend) Events() input.Source { return b.soft.Queue() }

func (b *Backend) Clock() pacing.Clock { return b.soft.Clock() }
