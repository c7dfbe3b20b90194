package audio

import "testing"

// TestSoundManagerSilentBeforeInit verifies Play is a no-op without a speaker
func TestSoundManagerSilentBeforeInit(t *testing.T) {
	sm := NewSoundManager(nil)

	if sm.IsEnabled() {
		t.Error("Expected manager disabled before Initialize")
	}
	if sm.Play(SoundHit) {
		t.Error("Expected Play to report false before Initialize")
	}

	// Cleanup on an uninitialized manager is safe
	sm.Cleanup()
}

// TestSoundManagerDisabledConfig verifies a disabled config never opens the speaker
func TestSoundManagerDisabledConfig(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	if err := sm.Initialize(); err != nil {
		t.Fatalf("Expected no error for disabled audio, got %v", err)
	}
	if sm.IsEnabled() {
		t.Error("Expected manager to stay silent")
	}
	if sm.Play(SoundWin) {
		t.Error("Expected Play to report false when disabled")
	}
}
