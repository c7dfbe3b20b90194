package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Hit Sound
const (
	HitSoundFrequency = 440.0
	HitSoundDuration  = 60 * time.Millisecond
	HitSoundAttack    = 2 * time.Millisecond
	HitSoundRelease   = 40 * time.Millisecond
)

// Wall Bounce Sound
const (
	BounceSoundFrequency = 220.0
	BounceSoundDuration  = 40 * time.Millisecond
	BounceSoundAttack    = 2 * time.Millisecond
	BounceSoundRelease   = 30 * time.Millisecond
)

// Win Jingle
const (
	WinNote1Frequency = 523.25 // C5
	WinNote2Frequency = 659.25 // E5
	WinNote3Frequency = 783.99 // G5
	WinNoteDuration   = 120 * time.Millisecond
)
