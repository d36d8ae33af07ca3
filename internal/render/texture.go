package render

import "image"

// Texture2D is an image file drawn by the context. Nothing is read from disk
// until the first draw.
type Texture2D struct {
	path   string
	image  Image
	width  int
	height int
	src    image.Rectangle
}

func NewTexture2D(path string) *Texture2D {
	return &Texture2D{path: path}
}

// Load takes ownership of img and records its extent. A different image
// loaded earlier is released first.
func (t *Texture2D) Load(img Image) {
	if img == nil {
		return
	}
	if t.image != nil && t.image != img {
		_ = t.image.Destroy()
	}
	t.width, t.height = img.Size()
	t.src = image.Rect(0, 0, t.width, t.height)
	t.image = img
}

func (t *Texture2D) Path() string { return t.path }

func (t *Texture2D) Loaded() bool { return t.image != nil }

func (t *Texture2D) Image() Image { return t.image }

func (t *Texture2D) Size() (width, height int) { return t.width, t.height }

// SourceRect is the full extent of the decoded image, empty until loaded.
func (t *Texture2D) SourceRect() image.Rectangle { return t.src }

// Destroy releases the decoded image. Safe to call on a texture that was
// never drawn, and more than once. Call it before closing the context that
// drew it.
func (t *Texture2D) Destroy() {
	if t.image == nil {
		return
	}
	_ = t.image.Destroy()
	t.image = nil
}
