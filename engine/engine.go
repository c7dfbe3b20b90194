package engine

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/pong/constant"
	"github.com/lixenwraith/pong/input"
	"github.com/lixenwraith/pong/render"
)

// Config holds host loop settings
type Config struct {
	Title         string
	FrameInterval time.Duration
	QuitOnEscape  bool
	HoldWindow    time.Duration
	ScreenshotDir string // Empty disables Ctrl+P captures
}

// DefaultConfig returns the stock window and loop settings
func DefaultConfig() Config {
	return Config{
		Title:         constant.WindowTitle,
		FrameInterval: constant.FrameUpdateInterval,
		QuitOnEscape:  constant.QuitOnEscape,
		HoldWindow:    constant.KeyHoldWindow,
		ScreenshotDir: "screenshots",
	}
}

// Engine hosts a State on a tcell screen
type Engine struct {
	screen   tcell.Screen
	config   Config
	clock    TimeSource
	keyboard *input.Keyboard
	renderer *render.TerminalRenderer

	frame          uint64
	capturePending bool
	crashHandler   func(any)
}

// New creates an engine on an initialized screen
func New(screen tcell.Screen, cfg Config) *Engine {
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = constant.FrameUpdateInterval
	}
	if cfg.HoldWindow <= 0 {
		cfg.HoldWindow = constant.KeyHoldWindow
	}
	return &Engine{
		screen:   screen,
		config:   cfg,
		clock:    NewTimeProvider(),
		keyboard: input.NewKeyboard(cfg.HoldWindow),
		renderer: render.NewTerminalRenderer(screen),
	}
}

// SetClock replaces the time source, used by tests
func (e *Engine) SetClock(clock TimeSource) {
	e.clock = clock
}

// SetCrashHandler sets the handler for panics on the event poller goroutine
// The default prints the stack and exits
func (e *Engine) SetCrashHandler(handler func(any)) {
	e.crashHandler = handler
}

// Frame returns the number of frames stepped so far
func (e *Engine) Frame() uint64 {
	return e.frame
}

// Renderer returns the terminal renderer
func (e *Engine) Renderer() *render.TerminalRenderer {
	return e.renderer
}

// Run initializes the state and drives it until quit, screen closure,
// context cancellation or an error from the state
func (e *Engine) Run(ctx context.Context, initState InitFunc) error {
	state, err := initState()
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}

	if titled, ok := e.screen.(interface{ SetTitle(string) }); ok {
		titled.SetTitle(e.config.Title)
	}

	events := make(chan tcell.Event, constant.EventChannelSize)
	done := make(chan struct{})
	defer close(done)
	go e.pollEvents(events, done)

	frameTicker := time.NewTicker(e.config.FrameInterval)
	defer frameTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !e.HandleEvent(ev) {
				return nil
			}

		case <-frameTicker.C:
			quit, err := e.Step(state)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}
	}
}

// pollEvents forwards screen events until the screen is finalized
func (e *Engine) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	defer func() {
		if r := recover(); r != nil {
			if e.crashHandler != nil {
				e.crashHandler(r)
				return
			}
			e.screen.Fini()
			fmt.Fprintf(os.Stderr, "\r\nEVENT POLLER CRASHED: %v\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		ev := e.screen.PollEvent()
		if ev == nil {
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// HandleEvent applies one screen event, returns false when the loop should stop
func (e *Engine) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		key, mods, ok := input.Translate(ev)
		if !ok {
			return true
		}

		ctrl := mods&input.ModCtrl != 0
		switch {
		case key == input.KeyC && ctrl:
			return false
		case key == input.KeyEscape && e.config.QuitOnEscape:
			return false
		case key == input.KeyP && ctrl:
			e.capturePending = true
		}
		e.keyboard.Press(key, mods, e.clock.Now())

	case *tcell.EventResize:
		cols, rows := ev.Size()
		e.renderer.Resize(cols, rows)
		e.screen.Sync()

	case *tcell.EventFocus:
		if !ev.Focused {
			e.keyboard.Release()
		}
	}
	return true
}

// Step runs one frame: Update, optional screenshot, then Draw and present
// Returns true when the state asked to quit
func (e *Engine) Step(state State) (bool, error) {
	now := e.clock.Now()
	e.frame++

	fc := NewContext(e.keyboard.Snapshot(now), e.frame)
	if err := state.Update(fc); err != nil {
		return false, fmt.Errorf("update frame %d: %w", e.frame, err)
	}
	if fc.QuitRequested() {
		return true, nil
	}

	if e.capturePending {
		e.capturePending = false
		e.capture(state, fc, now)
	}

	e.renderer.Begin()
	if err := state.Draw(fc, e.renderer); err != nil {
		return false, fmt.Errorf("draw frame %d: %w", e.frame, err)
	}
	e.renderer.Present()
	return false, nil
}

// capture draws the frame at playfield resolution and writes it as PNG
// Failures are logged and never stop the game
func (e *Engine) capture(state State, fc *Context, now time.Time) {
	if e.config.ScreenshotDir == "" {
		return
	}
	ir := render.NewImageRenderer(int(constant.WindowWidth), int(constant.WindowHeight))
	if err := state.Draw(fc, ir); err != nil {
		log.Printf("screenshot: draw: %v", err)
		return
	}
	path, err := render.WriteScreenshot(e.config.ScreenshotDir, ir.Image(), now)
	if err != nil {
		log.Printf("screenshot: %v", err)
		return
	}
	log.Printf("screenshot saved to %s", path)
}
