// Package sdl2 is the native backend: SDL2 windows and accelerated
// renderers, with textures decoded by SDL_image. SDL must be driven from
// the thread that initialized it; callers lock the main goroutine to its
// OS thread.
package sdl2

import (
	"sync"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// The video subsystem is process wide. It is initialized by the first
// acquire and shut down by the last release.
var video struct {
	mu   sync.Mutex
	refs int
}

func acquireVideo() error {
	video.mu.Lock()
	defer video.mu.Unlock()
	if video.refs == 0 {
		if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
			return err
		}
		// Decoders load lazily when this fails; LoadTexture still works.
		_ = img.Init(img.INIT_PNG | img.INIT_JPG)
	}
	video.refs++
	return nil
}

func releaseVideo() {
	video.mu.Lock()
	defer video.mu.Unlock()
	if video.refs == 0 {
		return
	}
	video.refs--
	if video.refs == 0 {
		img.Quit()
		sdl.Quit()
	}
}

func videoRefs() int {
	video.mu.Lock()
	defer video.mu.Unlock()
	return video.refs
}
