package engine

import (
	"github.com/lixenwraith/pong/input"
	"github.com/lixenwraith/pong/render"
)

// State is the game driven by the host loop
// Update runs once per frame before Draw, Draw must not mutate the state
type State interface {
	Update(ctx *Context) error
	Draw(ctx *Context, r render.Renderer) error
}

// InitFunc builds the initial state, an error aborts Run before the first frame
type InitFunc func() (State, error)

// Context is the per-frame view of the host handed to the state
type Context struct {
	Input input.Snapshot // Keyboard state frozen at frame start
	Frame uint64         // Frame counter, first frame is 1

	quit bool
}

// NewContext creates a frame context, used by the host loop and by tests
func NewContext(snapshot input.Snapshot, frame uint64) *Context {
	return &Context{Input: snapshot, Frame: frame}
}

// Quit asks the host to stop after the current Update
func (c *Context) Quit() {
	c.quit = true
}

// QuitRequested reports whether Quit was called this frame
func (c *Context) QuitRequested() bool {
	return c.quit
}
