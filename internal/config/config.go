package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	EnvBackend  = "DRAGHINI_BACKEND"
	EnvFPS      = "DRAGHINI_FPS"
	EnvShowFPS  = "DRAGHINI_SHOW_FPS"
	EnvFBDevice = "DRAGHINI_FB_DEVICE"
	EnvStdioLog = "DRAGHINI_STDIO_LOG"
)

const (
	BackendSDL      = "sdl"
	BackendFB       = "fb"
	BackendHeadless = "headless"
)

// Config holds the settings of the demo binaries. Empty title and zero
// sizes are left for the render context to default.
type Config struct {
	Backend           string
	Title             string
	Width             int
	Height            int
	TargetFPS         int
	Texture           string
	ShowFPS           bool
	FontEngine        string
	FramebufferDevice string
	Debug             bool
	StdioLog          string
}

// DefaultFromEnv returns the defaults overridden by any DRAGHINI_* variables.
func DefaultFromEnv() (Config, error) {
	cfg := Config{
		Backend:   BackendSDL,
		TargetFPS: 60,
		Texture:   "assets/monke.png",
	}

	if raw := os.Getenv(EnvBackend); raw != "" {
		cfg.Backend = raw
	}
	if raw := os.Getenv(EnvFPS); raw != "" {
		fps, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be an integer (got %q): %w", EnvFPS, raw, err)
		}
		cfg.TargetFPS = fps
	}
	if raw := os.Getenv(EnvShowFPS); raw != "" {
		show, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvShowFPS, raw, err)
		}
		cfg.ShowFPS = show
	}
	cfg.FramebufferDevice = os.Getenv(EnvFBDevice)
	cfg.StdioLog = os.Getenv(EnvStdioLog)

	return cfg, nil
}

// Validate rejects settings the render loop cannot run with.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendSDL, BackendFB, BackendHeadless:
	default:
		return fmt.Errorf("unknown backend %q (want %s, %s or %s)", c.Backend, BackendSDL, BackendFB, BackendHeadless)
	}
	if c.TargetFPS <= 0 {
		return fmt.Errorf("target fps must be positive (got %d)", c.TargetFPS)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("window size must not be negative (got %dx%d)", c.Width, c.Height)
	}
	return nil
}
