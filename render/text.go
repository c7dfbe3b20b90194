package render

import "github.com/lixenwraith/pong/asset"

// Text is a string bound to a font face
type Text struct {
	content string
	font    *asset.Font
}

// NewText creates a text block, font may be nil for cell-only sinks
func NewText(content string, font *asset.Font) *Text {
	return &Text{content: content, font: font}
}

// SetContent replaces the displayed string, visible from the next draw
func (t *Text) SetContent(content string) {
	t.content = content
}

// Content returns the current string
func (t *Text) Content() string {
	return t.content
}

// Font returns the bound face
func (t *Text) Font() *asset.Font {
	return t.font
}

// Width returns the shaped advance in pixels, 0 without a font
func (t *Text) Width() float64 {
	if t.font == nil {
		return 0
	}
	return t.font.Measure(t.content)
}
