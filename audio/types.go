package audio

// SoundType represents different sound effects
type SoundType int

const (
	SoundHit    SoundType = iota // Ball struck by a paddle
	SoundBounce                  // Ball bounced off a horizontal wall
	SoundWin                     // Round over
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundHit:    "hit",
	SoundBounce: "bounce",
	SoundWin:    "win",
}

func (st SoundType) String() string {
	if st < 0 || st >= soundTypeCount {
		return "unknown"
	}
	return soundNames[st]
}

// ParseSoundType maps a config key to its SoundType
func ParseSoundType(name string) (SoundType, bool) {
	for st, n := range soundNames {
		if n == name {
			return SoundType(st), true
		}
	}
	return 0, false
}
