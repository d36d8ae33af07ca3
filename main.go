package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/rook-computer/draghini/internal/backend/fb"
	"github.com/rook-computer/draghini/internal/backend/sdl2"
	"github.com/rook-computer/draghini/internal/backend/soft"
	"github.com/rook-computer/draghini/internal/config"
	"github.com/rook-computer/draghini/internal/input"
	"github.com/rook-computer/draghini/internal/logging"
	"github.com/rook-computer/draghini/internal/render"
)

func init() {
	// SDL calls must come from the thread that initialized it.
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	defaults, err := config.DefaultFromEnv()
	if err != nil {
		fmt.Println("config error:", err)
		return -1
	}

	backendName := flag.String("backend", defaults.Backend, "platform backend: sdl | fb | headless; also configurable via "+config.EnvBackend)
	title := flag.String("title", "", "window title (default \"Draghini\")")
	width := flag.Int("width", 0, "window width in pixels (default 512)")
	height := flag.Int("height", 0, "window height in pixels (default 512)")
	fps := flag.Int("fps", defaults.TargetFPS, "target frame rate; also configurable via "+config.EnvFPS)
	texture := flag.String("texture", defaults.Texture, "image drawn every frame")
	showFPS := flag.Bool("show-fps", defaults.ShowFPS, "draw the measured frame rate; also configurable via "+config.EnvShowFPS)
	fontEngine := flag.String("font", render.FontEngineOpenType, "text engine: opentype | freetype | basic")
	fbDevice := flag.String("fb-device", defaults.FramebufferDevice, "framebuffer device for -backend fb; also configurable via "+config.EnvFBDevice)
	debug := flag.Bool("debug", false, "enable debug logging to ./draghini-debug.log")
	stdioLog := flag.String("stdio-log", defaults.StdioLog, "redirect stdout+stderr (including panics) to this file; also configurable via "+config.EnvStdioLog)
	flag.Parse()

	cfg := config.Config{
		Backend:           *backendName,
		Title:             *title,
		Width:             *width,
		Height:            *height,
		TargetFPS:         *fps,
		Texture:           *texture,
		ShowFPS:           *showFPS,
		FontEngine:        *fontEngine,
		FramebufferDevice: *fbDevice,
		Debug:             *debug,
		StdioLog:          *stdioLog,
	}
	if err := cfg.Validate(); err != nil {
		fmt.Println("config error:", err)
		return -1
	}

	// The framebuffer backend leaves the console in graphics mode, so
	// crashes are only readable from the redirect target.
	if cfg.StdioLog != "" {
		if err := redirectStdIO(cfg.StdioLog); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	var logger logging.Logger = logging.NewStdoutLogger()
	if cfg.Debug {
		f, err := os.OpenFile("./draghini-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			defer f.Close()
			logger = logging.Tee{logger, logging.NewFileLogger(f)}
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	ctx := render.NewContext(newBackend(cfg, logger))
	ctx.Logger = logger
	ctx.Text = render.TextOptions{Engine: cfg.FontEngine}
	defer ctx.Close()

	if err := ctx.Initialize(cfg.Title, cfg.Width, cfg.Height); err != nil {
		return -1
	}
	if err := ctx.SetTargetFPS(cfg.TargetFPS); err != nil {
		logger.Errorf("main", "%v", err)
	}

	monke := render.NewTexture2D(cfg.Texture)
	defer monke.Destroy()

	for !ctx.ShouldWindowClose() {
		ctx.ClearBackground(render.Red)
		ctx.DrawTexture2D(monke)
		if cfg.ShowFPS {
			ctx.DrawFPS(8, 8)
		}
		ctx.Present()

		if ctx.IsKeyDown(input.ScancodeEscape) {
			break
		}
	}
	return 0
}

func newBackend(cfg config.Config, logger logging.Logger) render.Backend {
	switch cfg.Backend {
	case config.BackendFB:
		b := fb.New(cfg.FramebufferDevice)
		b.Logger = logger
		return b
	case config.BackendHeadless:
		return soft.New(nil)
	default:
		b := sdl2.New()
		b.Logger = logger
		return b
	}
}
