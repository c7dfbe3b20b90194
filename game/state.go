package game

import (
	"io/fs"
	"log"

	"github.com/lixenwraith/pong/asset"
	"github.com/lixenwraith/pong/audio"
	"github.com/lixenwraith/pong/config"
	"github.com/lixenwraith/pong/constant"
	"github.com/lixenwraith/pong/engine"
	"github.com/lixenwraith/pong/input"
	"github.com/lixenwraith/pong/render"
	"github.com/lixenwraith/pong/vmath"
)

// Phase is the match lifecycle stage
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseTerminal
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseTerminal:
		return "Terminal"
	default:
		return "Unknown"
	}
}

// Sounds receives gameplay sound cues, *audio.SoundManager satisfies it
type Sounds interface {
	Play(st audio.SoundType) bool
}

type silentSounds struct{}

func (silentSounds) Play(audio.SoundType) bool { return false }

// State is a two-player match, driven by the engine one frame at a time
type State struct {
	Player1 Entity
	Player2 Entity
	Ball    Entity
	Score   Score
	Phase   Phase
	Winner  int // 1 or 2 once Terminal, 0 while playing

	sounds Sounds

	// Layout captured at construction, restored by Restart
	player1Start vmath.Vec2
	player2Start vmath.Vec2
	ballStart    vmath.Vec2
	ballVelocity vmath.Vec2
}

// NewState lays out paddles at the window edges and the ball at the centre
// A nil sounds sink plays nothing
func NewState(player1, player2, ball *asset.Texture, font *asset.Font, sounds Sounds) *State {
	if sounds == nil {
		sounds = silentSounds{}
	}

	s := &State{
		sounds: sounds,
		player1Start: vmath.V2(
			constant.PaddleInset,
			(constant.WindowHeight-float32(player1.Height()))/2,
		),
		player2Start: vmath.V2(
			constant.WindowWidth-float32(player2.Width())-constant.PaddleInset,
			(constant.WindowHeight-float32(player2.Height()))/2,
		),
		ballStart: vmath.V2(
			constant.WindowWidth/2-float32(ball.Width())/2,
			constant.WindowHeight/2-float32(ball.Height())/2,
		),
		ballVelocity: vmath.V2(-constant.BallSpeed, 0),
	}

	s.Player1 = NewEntity(player1, s.player1Start)
	s.Player2 = NewEntity(player2, s.player2Start)
	s.Ball = NewEntityWithVelocity(ball, s.ballStart, s.ballVelocity)
	s.Score = NewScore(font)
	return s
}

// Load reads the paddle and ball textures and the score font from fsys
// Any failure is returned as *asset.LoadError
func Load(fsys fs.FS, assets config.AssetsConfig, sounds Sounds) (*State, error) {
	p1, err := asset.LoadTexture(fsys, assets.Player1)
	if err != nil {
		return nil, err
	}
	p2, err := asset.LoadTexture(fsys, assets.Player2)
	if err != nil {
		return nil, err
	}
	ball, err := asset.LoadTexture(fsys, assets.Ball)
	if err != nil {
		return nil, err
	}
	font, err := asset.LoadFont(fsys, assets.Font, assets.FontSize)
	if err != nil {
		return nil, err
	}
	return NewState(p1, p2, ball, font, sounds), nil
}

// Restart restores the initial layout, zero score and Playing
func (s *State) Restart() {
	s.Player1.Position = s.player1Start
	s.Player1.Velocity = vmath.Vec2{}
	s.Player2.Position = s.player2Start
	s.Player2.Velocity = vmath.Vec2{}
	s.Ball.Position = s.ballStart
	s.Ball.Velocity = s.ballVelocity
	s.Score.Reset()
	s.Phase = PhasePlaying
	s.Winner = 0
}

// Update advances one frame
// Ctrl+W or Ctrl+Q quit and Ctrl+R restarts in any phase, physics runs only while Playing
func (s *State) Update(ctx *engine.Context) error {
	in := ctx.Input

	if in.IsModifierDown(input.ModCtrl) {
		if in.IsKeyDown(input.KeyW) || in.IsKeyDown(input.KeyQ) {
			ctx.Quit()
			return nil
		}
		if in.IsKeyDown(input.KeyR) {
			if s.Phase == PhaseTerminal {
				log.Printf("restart after player %d win", s.Winner)
			}
			s.Restart()
		}
	}

	if s.Phase != PhasePlaying {
		return nil
	}

	s.applyInput(in)
	s.integrate()
	s.resolvePaddleHit()
	s.bounceBallOffWalls()
	s.checkOutOfBounds()
	s.bouncePaddlesOffWalls()
	return nil
}

// Draw paints background, paddles, ball and score text
func (s *State) Draw(ctx *engine.Context, r render.Renderer) error {
	r.Clear(constant.ColorBackground)
	r.DrawSprite(s.Player1.Texture, s.Player1.Position)
	r.DrawSprite(s.Player2.Texture, s.Player2.Position)
	r.DrawSprite(s.Ball.Texture, s.Ball.Position)
	r.DrawText(s.Score.Text, s.Score.Position)
	return nil
}

func (s *State) applyInput(in input.Snapshot) {
	if in.IsKeyDown(input.KeyW) {
		s.Player1.Velocity.Y = accelerate(s.Player1.Velocity.Y, -constant.PaddleSpeed)
	}
	if in.IsKeyDown(input.KeyS) {
		s.Player1.Velocity.Y = accelerate(s.Player1.Velocity.Y, constant.PaddleSpeed)
	}
	if in.IsKeyDown(input.KeyUp) {
		s.Player2.Velocity.Y = accelerate(s.Player2.Velocity.Y, -constant.PaddleSpeed)
	}
	if in.IsKeyDown(input.KeyDown) {
		s.Player2.Velocity.Y = accelerate(s.Player2.Velocity.Y, constant.PaddleSpeed)
	}
}

// accelerate adds d to v unless the result would exceed PaddleMax in magnitude
func accelerate(v, d float32) float32 {
	if vmath.Abs(v+d) > constant.PaddleMax {
		return v
	}
	return v + d
}

func (s *State) integrate() {
	for _, p := range []*Entity{&s.Player1, &s.Player2} {
		p.Position = vmath.V2Add(p.Position, p.Velocity)
		p.Velocity = vmath.V2Scale(p.Velocity, constant.PaddleFriction)
	}
	s.Ball.Position = vmath.V2Add(s.Ball.Position, s.Ball.Velocity)
}

// resolvePaddleHit reflects the ball off at most one paddle, player 1 first
func (s *State) resolvePaddleHit() {
	ball := s.Ball.Bounds()

	var paddle *Entity
	switch {
	case ball.Intersects(s.Player1.Bounds()):
		paddle = &s.Player1
	case ball.Intersects(s.Player2.Bounds()):
		paddle = &s.Player2
	default:
		return
	}

	s.Ball.Velocity.X *= -(1 + constant.BallAcc)
	offset := (paddle.Centre().Y - s.Ball.Centre().Y) / paddle.Height()
	s.Ball.Velocity.Y += constant.PaddleSpin * -offset

	s.Score.Increment()
	s.sounds.Play(audio.SoundHit)
}

// bounceBallOffWalls flips vertical velocity at the top or bottom edge, position is not clamped
func (s *State) bounceBallOffWalls() {
	if s.Ball.Position.Y <= 0 || s.Ball.Position.Y+s.Ball.Height() >= constant.WindowHeight {
		s.Ball.Velocity.Y = -s.Ball.Velocity.Y
		s.sounds.Play(audio.SoundBounce)
	}
}

func (s *State) checkOutOfBounds() {
	switch {
	case s.Ball.Position.X < 0:
		s.win(2)
	case s.Ball.Position.X > constant.WindowWidth:
		s.win(1)
	}
}

func (s *State) win(player int) {
	s.Phase = PhaseTerminal
	s.Winner = player
	s.Score.Win(player)
	log.Printf("Player %d wins!", player)
	s.sounds.Play(audio.SoundWin)
}

// bouncePaddlesOffWalls is level-triggered, a paddle left past a wall keeps flipping
func (s *State) bouncePaddlesOffWalls() {
	for _, p := range []*Entity{&s.Player1, &s.Player2} {
		if p.Position.Y <= 0 || p.Position.Y+p.Height() >= constant.WindowHeight {
			p.Velocity = vmath.V2Scale(p.Velocity, constant.PaddleWallBounce)
		}
	}
}
