package soft

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	// Formats accepted by Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/rook-computer/draghini/internal/render"
)

// Image is a decoded picture held in CPU memory.
type Image struct {
	rgba *image.RGBA
}

var _ render.Image = (*Image)(nil)

// NewImage copies src into an RGBA image with a zero origin.
func NewImage(src image.Image) *Image {
	b := src.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, b.Min, draw.Src)
	return &Image{rgba: rgba}
}

// DecodeFile reads and decodes the image file at path.
func DecodeFile(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return NewImage(img), nil
}

func (i *Image) Size() (int, int) {
	if i.rgba == nil {
		return 0, 0
	}
	return i.rgba.Rect.Dx(), i.rgba.Rect.Dy()
}

// RGBA returns the pixels, or nil once destroyed.
func (i *Image) RGBA() *image.RGBA { return i.rgba }

func (i *Image) Destroy() error {
	i.rgba = nil
	return nil
}
