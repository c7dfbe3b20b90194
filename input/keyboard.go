package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// Keyboard folds terminal key events into held-key state
// Terminals deliver presses and autorepeats but no releases, so a key stays
// held for holdWindow after the most recent event that named it
type Keyboard struct {
	holdWindow time.Duration
	keySeen    [keyCount]time.Time
	ctrlSeen   time.Time
}

// NewKeyboard creates a tracker with the given hold window
func NewKeyboard(holdWindow time.Duration) *Keyboard {
	return &Keyboard{holdWindow: holdWindow}
}

// HandleEvent records a key event observed at now
// Returns false for events the game does not poll
func (kb *Keyboard) HandleEvent(ev *tcell.EventKey, now time.Time) bool {
	key, mods, ok := Translate(ev)
	if !ok {
		return false
	}
	kb.Press(key, mods, now)
	return true
}

// Press marks key and mods as held at now
// Every event carries the full modifier state, so a plain key releases Ctrl
func (kb *Keyboard) Press(key Key, mods Modifier, now time.Time) {
	if key != KeyNone && key < keyCount {
		kb.keySeen[key] = now
	}
	if mods&ModCtrl != 0 {
		kb.ctrlSeen = now
	} else {
		kb.ctrlSeen = time.Time{}
	}
}

// Release forgets every held key, used after focus loss or restart of the loop
func (kb *Keyboard) Release() {
	kb.keySeen = [keyCount]time.Time{}
	kb.ctrlSeen = time.Time{}
}

// Snapshot freezes the held state at now
func (kb *Keyboard) Snapshot(now time.Time) Snapshot {
	var s Snapshot
	for k := KeyNone + 1; k < keyCount; k++ {
		if kb.held(kb.keySeen[k], now) {
			s.keys = s.keys.With(k)
		}
	}
	if kb.held(kb.ctrlSeen, now) {
		s.mods |= ModCtrl
	}
	return s
}

func (kb *Keyboard) held(seen, now time.Time) bool {
	if seen.IsZero() {
		return false
	}
	return now.Sub(seen) <= kb.holdWindow
}
