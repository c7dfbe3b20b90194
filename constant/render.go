package constant

import "image/color"

// Playfield colors
var (
	// ColorBackground is cornflower blue
	ColorBackground = color.RGBA{R: 100, G: 149, B: 237, A: 255}

	// ColorText is used for the score line
	ColorText = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Score placement
const (
	ScoreX float32 = 64
	ScoreY float32 = 16

	// ScoreFontSize is the default point size of the score face
	ScoreFontSize = 14.0
)

// AlphaThreshold is the minimum sprite alpha painted by the terminal renderer
const AlphaThreshold = 0x80
