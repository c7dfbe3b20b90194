package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/pong/constant"
)

// drain streams s to completion and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			peak = math.Max(peak, math.Abs(buf[j][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("Expected streamer to drain")
	return 0, 0
}

// TestOscillatorWaves verifies every wave stays in range and stops on time
func TestOscillatorWaves(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 50 * time.Millisecond

	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveTriangle} {
		osc := NewOscillator(440, duration, wave, rate)

		samples := make([][2]float64, 100)
		n, ok := osc.Stream(samples)
		if !ok || n != 100 {
			t.Fatalf("Wave %d: expected 100 samples, got %d ok=%v", wave, n, ok)
		}
		for i := 0; i < n; i++ {
			if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
				t.Errorf("Wave %d: sample %d out of range: %f", wave, i, samples[i][0])
			}
			if samples[i][0] != samples[i][1] {
				t.Errorf("Wave %d: expected mono sample, got %v", wave, samples[i])
			}
		}

		total, _ := drain(t, osc)
		if total+100 != rate.N(duration) {
			t.Errorf("Wave %d: expected %d samples, got %d", wave, rate.N(duration), total+100)
		}
		if osc.Err() != nil {
			t.Errorf("Expected no error, got: %v", osc.Err())
		}
	}
}

// TestEnvelopeShape verifies attack starts silent and the stream ends at duration
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, time.Second, WaveSquare, rate) // constant +1
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 200)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("Expected envelope to cap at 100 samples, got %d", n)
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("Expected full sustain, got %f", samples[50][0])
	}
	if samples[99][0] >= samples[90][0] {
		t.Errorf("Expected release to fade, got %f then %f", samples[90][0], samples[99][0])
	}

	if n, ok := env.Stream(samples); n != 0 || ok {
		t.Errorf("Expected drained envelope, got n=%d ok=%v", n, ok)
	}
}

// TestSoundEffects verifies each effect is finite with the expected length
func TestSoundEffects(t *testing.T) {
	cfg := DefaultAudioConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	tests := []struct {
		st   SoundType
		want int
	}{
		{SoundHit, rate.N(constant.HitSoundDuration)},
		{SoundBounce, rate.N(constant.BounceSoundDuration)},
		{SoundWin, 3 * rate.N(constant.WinNoteDuration)},
	}

	for _, tt := range tests {
		t.Run(tt.st.String(), func(t *testing.T) {
			s := GetSoundEffect(tt.st, cfg)
			if s == nil {
				t.Fatal("Expected non-nil streamer")
			}
			total, peak := drain(t, s)
			if total != tt.want {
				t.Errorf("Expected %d samples, got %d", tt.want, total)
			}
			if peak == 0 {
				t.Error("Expected audible output")
			}
		})
	}

	if GetSoundEffect(SoundType(99), cfg) != nil {
		t.Error("Expected nil streamer for unknown sound")
	}
}

// TestSilentVolume verifies zero gain mutes output
func TestSilentVolume(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.MasterVolume = 0

	_, peak := drain(t, CreateHitSound(cfg))
	if peak != 0 {
		t.Errorf("Expected silence at zero volume, got peak %f", peak)
	}
}
