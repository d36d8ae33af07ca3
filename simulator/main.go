// Command simulator runs the demo loop on the in-memory backend and writes
// the last presented frame to a PNG file.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/rook-computer/draghini/internal/backend/soft"
	"github.com/rook-computer/draghini/internal/input"
	"github.com/rook-computer/draghini/internal/logging"
	"github.com/rook-computer/draghini/internal/render"
)

func main() {
	frames := flag.Int("frames", 60, "frames to render before a quit event is queued")
	fps := flag.Int("fps", 60, "target frame rate")
	texture := flag.String("texture", "assets/monke.png", "image drawn every frame")
	width := flag.Int("width", 0, "canvas width (default 512)")
	height := flag.Int("height", 0, "canvas height (default 512)")
	showFPS := flag.Bool("show-fps", true, "draw the measured frame rate")
	out := flag.String("out", "frame.png", "where to write the last frame")
	flag.Parse()

	if err := simulate(*frames, *fps, *texture, *width, *height, *showFPS, *out); err != nil {
		fmt.Println("simulator error:", err)
		os.Exit(1)
	}
	fmt.Println("Wrote", *out)
}

func simulate(frames, fps int, texturePath string, width, height int, showFPS bool, out string) error {
	backend := soft.New(nil)
	ctx := render.NewContext(backend)
	ctx.Logger = logging.NewStdoutLogger()
	defer ctx.Close()

	if err := ctx.Initialize("", width, height); err != nil {
		return err
	}
	if err := ctx.SetTargetFPS(fps); err != nil {
		return err
	}

	// The frame handed to OnPresent is reused by the next Present.
	var last *image.RGBA
	backend.OnPresent = func(frame *image.RGBA) error {
		last = frame
		return nil
	}

	tex := render.NewTexture2D(texturePath)
	defer tex.Destroy()

	n := 0
	for !ctx.ShouldWindowClose() {
		ctx.ClearBackground(render.Red)
		ctx.DrawTexture2D(tex)
		if showFPS {
			ctx.DrawFPS(8, 8)
		}
		n++
		if n >= frames {
			backend.Queue().Push(input.Event{Kind: input.EventQuit})
		}
		ctx.Present()
	}
	if last == nil {
		return fmt.Errorf("no frame presented")
	}
	return writePNG(out, last)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
