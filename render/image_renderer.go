package render

import (
	"image"
	"image/color"
	"math"

	"github.com/lixenwraith/pong/asset"
	"github.com/lixenwraith/pong/constant"
	"github.com/lixenwraith/pong/vmath"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// ImageRenderer composites a frame into an RGBA bitmap at playfield resolution
type ImageRenderer struct {
	img *image.RGBA
}

// NewImageRenderer creates a renderer with a width x height bitmap
func NewImageRenderer(width, height int) *ImageRenderer {
	return &ImageRenderer{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Image returns the composited frame
func (r *ImageRenderer) Image() *image.RGBA {
	return r.img
}

func (r *ImageRenderer) Clear(c color.RGBA) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (r *ImageRenderer) DrawSprite(tex *asset.Texture, pos vmath.Vec2) {
	x := int(math.Round(float64(pos.X)))
	y := int(math.Round(float64(pos.Y)))
	dst := image.Rect(x, y, x+tex.Width(), y+tex.Height())
	draw.Draw(r.img, dst, tex.Image(), image.Point{}, draw.Over)
}

// DrawText draws with the bound face, text without a font is skipped
func (r *ImageRenderer) DrawText(txt *Text, pos vmath.Vec2) {
	f := txt.Font()
	if f == nil {
		return
	}
	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(constant.ColorText),
		Face: f.Face(),
		Dot:  fixed.P(int(pos.X), int(pos.Y)+f.Ascent()),
	}
	d.DrawString(txt.Content())
}
