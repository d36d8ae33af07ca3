package fb

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rook-computer/draghini/internal/input"
)

func TestBlitScalesNearestNeighbor(t *testing.T) {
	canvas := image.NewRGBA(image.Rect(0, 0, 2, 1))
	canvas.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	canvas.SetRGBA(1, 0, color.RGBA{B: 255, A: 128})
	dev := image.NewRGBA(image.Rect(0, 0, 4, 2))

	blit(dev, canvas)

	for y := 0; y < 2; y++ {
		assert.Equal(t, color.RGBA{R: 255, A: 255}, dev.RGBAAt(0, y))
		assert.Equal(t, color.RGBA{R: 255, A: 255}, dev.RGBAAt(1, y))
		// The device has no alpha; pixels are written opaque.
		assert.Equal(t, color.RGBA{B: 255, A: 255}, dev.RGBAAt(2, y))
		assert.Equal(t, color.RGBA{B: 255, A: 255}, dev.RGBAAt(3, y))
	}
}

func TestBlitIgnoresEmpty(t *testing.T) {
	assert.NotPanics(t, func() {
		blit(nil, image.NewRGBA(image.Rect(0, 0, 1, 1)))
		blit(image.NewRGBA(image.Rect(0, 0, 1, 1)), nil)
		blit(image.NewRGBA(image.Rect(0, 0, 0, 0)), image.NewRGBA(image.Rect(0, 0, 1, 1)))
	})
}

func TestKeyEvent(t *testing.T) {
	ev, ok := keyEvent(evKey, 1, keyPressed)
	assert.True(t, ok)
	assert.Equal(t, input.Event{Kind: input.EventKeyDown, Scancode: input.ScancodeEscape}, ev)

	ev, ok = keyEvent(evKey, 57, keyReleased)
	assert.True(t, ok)
	assert.Equal(t, input.Event{Kind: input.EventKeyUp, Scancode: input.ScancodeSpace}, ev)

	_, ok = keyEvent(evKey, 57, 2)
	assert.False(t, ok, "autorepeat")
	_, ok = keyEvent(0x02, 1, keyPressed)
	assert.False(t, ok, "relative axis")
	_, ok = keyEvent(evKey, 999, keyPressed)
	assert.False(t, ok, "unmapped key")
}

func TestKeymapLetters(t *testing.T) {
	assert.Equal(t, input.ScancodeQ, evdevKeys[16])
	assert.Equal(t, input.ScancodeA, evdevKeys[30])
	assert.Equal(t, input.ScancodeZ, evdevKeys[44])
	assert.Equal(t, input.ScancodeUp, evdevKeys[103])
}
