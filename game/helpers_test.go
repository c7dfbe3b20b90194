package game

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/lixenwraith/pong/asset"
	"github.com/lixenwraith/pong/audio"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/input"
)

var (
	paddleColor = color.NRGBA{R: 240, G: 240, B: 240, A: 255}
	ballColor   = color.NRGBA{R: 250, G: 200, B: 0, A: 255}
)

func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func solidTexture(t *testing.T, w, h int, c color.NRGBA) *asset.Texture {
	t.Helper()
	tex, err := asset.NewTexture(solidImage(w, h, c))
	if err != nil {
		t.Fatalf("Failed to create texture: %v", err)
	}
	return tex
}

func encodePNG(t *testing.T, w, h int, c color.NRGBA) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, solidImage(w, h, c)); err != nil {
		t.Fatalf("Failed to encode PNG: %v", err)
	}
	return buf.Bytes()
}

func assetFS(t *testing.T) fstest.MapFS {
	t.Helper()
	return fstest.MapFS{
		"player1.png": {Data: encodePNG(t, 16, 64, paddleColor)},
		"player2.png": {Data: encodePNG(t, 16, 64, paddleColor)},
		"ball.png":    {Data: encodePNG(t, 12, 12, ballColor)},
	}
}

// recordingSounds counts cues by type
type recordingSounds struct {
	played map[audio.SoundType]int
}

func newRecordingSounds() *recordingSounds {
	return &recordingSounds{played: make(map[audio.SoundType]int)}
}

func (r *recordingSounds) Play(st audio.SoundType) bool {
	r.played[st]++
	return true
}

// newTestState builds a match with 16x64 paddles and a 12x12 ball
// Layout: player 1 at (16, 208), player 2 at (608, 208), ball at (314, 234)
func newTestState(t *testing.T) (*State, *recordingSounds) {
	t.Helper()
	font, err := asset.LoadFont(fstest.MapFS{}, "", 14)
	if err != nil {
		t.Fatalf("Failed to load embedded font: %v", err)
	}
	sounds := newRecordingSounds()
	s := NewState(
		solidTexture(t, 16, 64, paddleColor),
		solidTexture(t, 16, 64, paddleColor),
		solidTexture(t, 12, 12, ballColor),
		font,
		sounds,
	)
	return s, sounds
}

func frame(keys ...input.Key) *engine.Context {
	return engine.NewContext(input.NewSnapshot(input.ModNone, keys...), 1)
}

func ctrlFrame(keys ...input.Key) *engine.Context {
	return engine.NewContext(input.NewSnapshot(input.ModCtrl, keys...), 1)
}

func update(t *testing.T, s *State, ctx *engine.Context) {
	t.Helper()
	if err := s.Update(ctx); err != nil {
		t.Fatalf("Unexpected update error: %v", err)
	}
}
