package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// keyEntry is the game key and implied modifiers for a terminal key code
type keyEntry struct {
	Key  Key
	Mods Modifier
}

// specialKeys maps non-rune terminal keys
// Ctrl+letter arrives as a control code, split back into modifier and letter
var specialKeys = map[tcell.Key]keyEntry{
	tcell.KeyUp:     {Key: KeyUp},
	tcell.KeyDown:   {Key: KeyDown},
	tcell.KeyEscape: {Key: KeyEscape},
	tcell.KeyCtrlW:  {Key: KeyW, Mods: ModCtrl},
	tcell.KeyCtrlS:  {Key: KeyS, Mods: ModCtrl},
	tcell.KeyCtrlR:  {Key: KeyR, Mods: ModCtrl},
	tcell.KeyCtrlQ:  {Key: KeyQ, Mods: ModCtrl},
	tcell.KeyCtrlP:  {Key: KeyP, Mods: ModCtrl},
	tcell.KeyCtrlC:  {Key: KeyC, Mods: ModCtrl},
}

// runeKeys maps printable runes, case-insensitive
var runeKeys = map[rune]Key{
	'w': KeyW,
	's': KeyS,
	'r': KeyR,
	'q': KeyQ,
	'p': KeyP,
	'c': KeyC,
}

// Translate converts a tcell key event into a game key and modifier mask
// ok is false for keys the game does not poll
func Translate(ev *tcell.EventKey) (key Key, mods Modifier, ok bool) {
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mods |= ModCtrl
	}

	if ev.Key() == tcell.KeyRune {
		k, found := runeKeys[unicode.ToLower(ev.Rune())]
		if !found {
			return KeyNone, mods, false
		}
		return k, mods, true
	}

	entry, found := specialKeys[ev.Key()]
	if !found {
		return KeyNone, mods, false
	}
	return entry.Key, mods | entry.Mods, true
}
