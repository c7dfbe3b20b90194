package asset

import (
	"image"
	"image/color"
	_ "image/png"
	"io/fs"

	"golang.org/x/image/draw"
)

// Texture is an immutable decoded bitmap
type Texture struct {
	img *image.NRGBA
}

// LoadTexture decodes a PNG image from fsys
func LoadTexture(fsys fs.FS, path string) (*Texture, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, &LoadError{Kind: KindTexture, Path: path, Err: err}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &LoadError{Kind: KindTexture, Path: path, Err: err}
	}

	tex, err := NewTexture(img)
	if err != nil {
		return nil, &LoadError{Kind: KindTexture, Path: path, Err: err}
	}
	return tex, nil
}

// NewTexture copies img into a zero-origin NRGBA buffer
func NewTexture(img image.Image) (*Texture, error) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, ErrEmptyTexture
	}

	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return &Texture{img: dst}, nil
}

// Width returns the texture width in pixels
func (t *Texture) Width() int {
	return t.img.Rect.Dx()
}

// Height returns the texture height in pixels
func (t *Texture) Height() int {
	return t.img.Rect.Dy()
}

// At returns the non-premultiplied color at (x, y), clamped to the texture
func (t *Texture) At(x, y int) color.NRGBA {
	if x < 0 {
		x = 0
	} else if x >= t.Width() {
		x = t.Width() - 1
	}
	if y < 0 {
		y = 0
	} else if y >= t.Height() {
		y = t.Height() - 1
	}
	return t.img.NRGBAAt(x, y)
}

// Image exposes the backing bitmap for compositing renderers
func (t *Texture) Image() image.Image {
	return t.img
}
