package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/pong/constant"
)

// AudioConfig holds audio settings
type AudioConfig struct {
	Enabled       bool                  `toml:"enabled"`
	MasterVolume  float64               `toml:"master_volume"`
	SampleRate    int                   `toml:"sample_rate"`
	EffectVolumes map[SoundType]float64 `toml:"-"`
}

// DefaultAudioConfig returns the built-in audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constant.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundHit:    0.8,
			SoundBounce: 0.5,
			SoundWin:    1.0,
		},
	}
}

// LoadAudioConfig applies environment overrides on top of base
// A nil base starts from DefaultAudioConfig
func LoadAudioConfig(base *AudioConfig) *AudioConfig {
	cfg := DefaultAudioConfig()
	if base != nil {
		cfg.Enabled = base.Enabled
		cfg.MasterVolume = base.MasterVolume
		cfg.SampleRate = base.SampleRate
		for st, v := range base.EffectVolumes {
			cfg.EffectVolumes[st] = v
		}
	}

	if enabled := os.Getenv("PONG_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is 0-100 in the environment
	if volume := os.Getenv("PONG_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = float64(val) / 100.0
		}
	}

	if effectVols := os.Getenv("PONG_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for name, v := range volumes {
				if st, ok := ParseSoundType(name); ok {
					cfg.EffectVolumes[st] = v
				}
			}
		}
	}

	if sampleRate := os.Getenv("PONG_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	cfg.MasterVolume = clampUnit(cfg.MasterVolume)
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = constant.AudioSampleRate
	}
	return cfg
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
