package render

import (
	"image/color"

	"github.com/lixenwraith/pong/asset"
	"github.com/lixenwraith/pong/vmath"
)

// Renderer receives draw calls for one frame, positions are playfield pixels
type Renderer interface {
	// Clear fills the whole playfield
	Clear(c color.RGBA)

	// DrawSprite draws a texture with its top-left corner at pos
	DrawSprite(tex *asset.Texture, pos vmath.Vec2)

	// DrawText draws a text block with its top-left corner at pos
	DrawText(txt *Text, pos vmath.Vec2)
}
