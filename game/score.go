package game

import (
	"fmt"

	"github.com/lixenwraith/pong/asset"
	"github.com/lixenwraith/pong/constant"
	"github.com/lixenwraith/pong/render"
	"github.com/lixenwraith/pong/vmath"
)

// Score counts paddle hits in the current rally and owns the on-screen text
type Score struct {
	Value    uint32
	Text     *render.Text
	Position vmath.Vec2
}

// NewScore creates a zero score drawn with font
func NewScore(font *asset.Font) Score {
	return Score{
		Text:     render.NewText(scoreLabel(0), font),
		Position: vmath.V2(constant.ScoreX, constant.ScoreY),
	}
}

// SetContent replaces the displayed string
func (s *Score) SetContent(content string) {
	s.Text.SetContent(content)
}

// Increment adds one hit and refreshes the label
func (s *Score) Increment() {
	s.Value++
	s.SetContent(scoreLabel(s.Value))
}

// Reset zeroes the counter and refreshes the label
func (s *Score) Reset() {
	s.Value = 0
	s.SetContent(scoreLabel(0))
}

// Win replaces the label with the end-of-game message for player
func (s *Score) Win(player int) {
	s.SetContent(fmt.Sprintf("Player %d wins with %d points!", player, s.Value))
}

func scoreLabel(v uint32) string {
	return fmt.Sprintf("Score: %d", v)
}
