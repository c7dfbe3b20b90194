package asset

import (
	"io/fs"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// fontDPI keeps point size equal to pixel size
const fontDPI = 72

// Font is a sized font face
type Font struct {
	face font.Face
	size float64
}

// LoadFont parses a TrueType/OpenType file from fsys at the given point size
// An empty path selects the embedded Go Mono face
func LoadFont(fsys fs.FS, path string, size float64) (*Font, error) {
	var data []byte
	if path == "" {
		data = gomono.TTF
	} else {
		b, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, &LoadError{Kind: KindFont, Path: path, Err: err}
		}
		data = b
	}

	f, err := NewFont(data, size)
	if err != nil {
		return nil, &LoadError{Kind: KindFont, Path: path, Err: err}
	}
	return f, nil
}

// NewFont builds a face from raw font data
func NewFont(data []byte, size float64) (*Font, error) {
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	return &Font{face: face, size: size}, nil
}

// Face returns the shaping face for glyph drawing
func (f *Font) Face() font.Face {
	return f.face
}

// Size returns the point size the face was built with
func (f *Font) Size() float64 {
	return f.size
}

// Ascent returns the baseline offset from the top of a line in pixels
func (f *Font) Ascent() int {
	return f.face.Metrics().Ascent.Ceil()
}

// LineHeight returns the recommended line height in pixels
func (f *Font) LineHeight() int {
	return f.face.Metrics().Height.Ceil()
}

// Measure returns the advance width of s in pixels
func (f *Font) Measure(s string) float64 {
	return fixedToFloat64(font.MeasureString(f.face, s))
}

// Close releases the face
func (f *Font) Close() error {
	return f.face.Close()
}

func fixedToFloat64(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
