package render

import (
	"image"
	"image/draw"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/rook-computer/draghini/internal/logging"
)

const (
	FontEngineOpenType = "opentype"
	FontEngineFreeType = "freetype"
	FontEngineBasic    = "basic"

	defaultFontSize = 20
	defaultFontDPI  = 72

	// Rasterized strings are cached until this many distinct entries exist.
	textCacheLimit = 64
)

type TextOptions struct {
	Engine string  // FontEngineOpenType when empty
	Size   float64 // points; defaultFontSize when 0
	DPI    float64
}

type textKey struct {
	text  string
	color Color
}

// TextRasterizer renders strings into RGBA images sized to fit the text.
type TextRasterizer struct {
	face  font.Face
	cache map[textKey]*image.RGBA
}

// NewTextRasterizer loads the Go Regular font with the requested engine and
// falls back to the fixed 7x13 face if parsing fails.
func NewTextRasterizer(opts TextOptions, logger logging.Logger) *TextRasterizer {
	if logger == nil {
		logger = logging.NoopLogger{}
	}
	if opts.Size <= 0 {
		opts.Size = defaultFontSize
	}
	if opts.DPI <= 0 {
		opts.DPI = defaultFontDPI
	}

	var face font.Face
	switch opts.Engine {
	case FontEngineBasic:
		face = basicfont.Face7x13
	case FontEngineFreeType:
		tt, err := truetype.Parse(goregular.TTF)
		if err != nil {
			logger.Errorf("text", "truetype parse failed, using basicfont: %v", err)
			face = basicfont.Face7x13
			break
		}
		face = truetype.NewFace(tt, &truetype.Options{Size: opts.Size, DPI: opts.DPI, Hinting: font.HintingFull})
		logger.Infof("text", "loaded truetype face at %.0fpt", opts.Size)
	default:
		fnt, err := opentype.Parse(goregular.TTF)
		if err != nil {
			logger.Errorf("text", "font parse failed, using basicfont: %v", err)
			face = basicfont.Face7x13
			break
		}
		otFace, err := opentype.NewFace(fnt, &opentype.FaceOptions{Size: opts.Size, DPI: opts.DPI, Hinting: font.HintingFull})
		if err != nil {
			logger.Errorf("text", "font face create failed, using basicfont: %v", err)
			face = basicfont.Face7x13
			break
		}
		face = otFace
		logger.Infof("text", "loaded opentype face at %.0fpt", opts.Size)
	}
	return &TextRasterizer{face: face, cache: make(map[textKey]*image.RGBA)}
}

// Measure returns the pixel extent of text.
func (r *TextRasterizer) Measure(text string) (width, height int) {
	metrics := r.face.Metrics()
	drawer := &font.Drawer{Face: r.face}
	return drawer.MeasureString(text).Ceil(), (metrics.Ascent + metrics.Descent).Ceil()
}

// Rasterize returns text drawn in c on a transparent background, or nil for
// an empty string. The returned image is shared and must not be modified.
func (r *TextRasterizer) Rasterize(text string, c Color) *image.RGBA {
	if text == "" {
		return nil
	}
	key := textKey{text: text, color: c}
	if img, ok := r.cache[key]; ok {
		return img
	}

	width, height := r.Measure(text)
	if width <= 0 || height <= 0 {
		return nil
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c.NRGBA()),
		Face: r.face,
		Dot:  fixed.P(0, r.face.Metrics().Ascent.Ceil()),
	}
	drawer.DrawString(text)

	if len(r.cache) >= textCacheLimit {
		clear(r.cache)
	}
	r.cache[key] = img
	return img
}
