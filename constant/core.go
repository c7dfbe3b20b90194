package constant

import "time"

// Window & Bootstrap
const (
	// WindowTitle is shown in the terminal title bar where supported
	WindowTitle = "Pong"

	// WindowWidth and WindowHeight define the logical playfield in pixels
	// Terminal cells are mapped onto this space by the renderer
	WindowWidth  float32 = 640
	WindowHeight float32 = 480

	// QuitOnEscape ends the frame loop on a bare Escape press
	QuitOnEscape = true
)

// Game Loop Timing
const (
	// FrameUpdateInterval is the update/draw cadence (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventChannelSize buffers terminal events between poller and frame loop
	EventChannelSize = 256
)

// Input
const (
	// KeyHoldWindow is how long a key counts as held after its last press or repeat
	// Terminals report no key releases, autorepeat refreshes the window
	KeyHoldWindow = 160 * time.Millisecond
)
