package input

// Key identifies a key the game polls
type Key uint8

const (
	KeyNone Key = iota
	KeyW
	KeyS
	KeyUp
	KeyDown
	KeyR
	KeyQ
	KeyP
	KeyC
	KeyEscape
	keyCount
)

var keyNames = [keyCount]string{
	KeyNone:   "None",
	KeyW:      "W",
	KeyS:      "S",
	KeyUp:     "Up",
	KeyDown:   "Down",
	KeyR:      "R",
	KeyQ:      "Q",
	KeyP:      "P",
	KeyC:      "C",
	KeyEscape: "Escape",
}

func (k Key) String() string {
	if k >= keyCount {
		return "Unknown"
	}
	return keyNames[k]
}

// Modifier is a bitmask of held modifier keys
type Modifier uint8

const (
	ModNone Modifier = 0
	ModCtrl Modifier = 1 << 0
)

// KeySet is a bitmask over Key values
type KeySet uint16

func (s KeySet) Has(k Key) bool {
	return s&(1<<k) != 0
}

func (s KeySet) With(k Key) KeySet {
	return s | 1<<k
}
