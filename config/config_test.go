package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func clearAudioEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PONG_AUDIO_ENABLED", "PONG_MASTER_VOLUME", "PONG_SFX_VOLUMES", "PONG_SAMPLE_RATE"} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Assets.Dir != "resources" || cfg.Assets.Ball != "ball.png" {
		t.Errorf("Unexpected asset defaults: %+v", cfg.Assets)
	}
	if cfg.Assets.Font != "" {
		t.Errorf("Expected embedded font by default, got %q", cfg.Assets.Font)
	}
	if cfg.Input.HoldWindow() != 160*time.Millisecond {
		t.Errorf("Expected 160ms hold window, got %v", cfg.Input.HoldWindow())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearAudioEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Assets.FontSize != Default().Assets.FontSize {
		t.Errorf("Expected default font size, got %v", cfg.Assets.FontSize)
	}

	cfg, err = Load("")
	if err != nil || cfg == nil {
		t.Fatalf("Expected defaults for empty path, got %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearAudioEnv(t)

	path := writeFile(t, "pong.toml", `
debug = true

[assets]
dir = "/opt/pong"
font = "InputMono-Regular.ttf"
font_size = 18.0

[input]
hold_ms = 90

[audio]
enabled = false
master_volume = 0.3

[screenshot]
dir = "/tmp/shots"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !cfg.Debug {
		t.Error("Expected debug=true")
	}
	if cfg.Assets.Dir != "/opt/pong" || cfg.Assets.Font != "InputMono-Regular.ttf" || cfg.Assets.FontSize != 18 {
		t.Errorf("Unexpected assets: %+v", cfg.Assets)
	}
	// Unset keys keep defaults
	if cfg.Assets.Player1 != "player1.png" {
		t.Errorf("Expected default player1 texture, got %q", cfg.Assets.Player1)
	}
	if cfg.Input.HoldWindow() != 90*time.Millisecond {
		t.Errorf("Expected 90ms, got %v", cfg.Input.HoldWindow())
	}
	if cfg.Audio.Enabled || cfg.Audio.MasterVolume != 0.3 {
		t.Errorf("Unexpected audio: %+v", cfg.Audio)
	}
	if cfg.Audio.SampleRate != 44100 {
		t.Errorf("Expected default sample rate, got %d", cfg.Audio.SampleRate)
	}
	if cfg.Screenshot.Dir != "/tmp/shots" {
		t.Errorf("Expected screenshot dir override, got %q", cfg.Screenshot.Dir)
	}
}

func TestLoadEnvBeatsFile(t *testing.T) {
	clearAudioEnv(t)
	t.Setenv("PONG_AUDIO_ENABLED", "true")

	path := writeFile(t, "pong.toml", "[audio]\nenabled = false\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !cfg.Audio.Enabled {
		t.Error("Expected environment to re-enable audio")
	}
}

func TestLoadErrors(t *testing.T) {
	clearAudioEnv(t)

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax", "[assets\n", "decode config"},
		{"unknown key", "[window]\nwidth = 800\n", "unknown key"},
		{"bad font size", "[assets]\nfont_size = 0.0\n", "font_size"},
		{"bad hold", "[input]\nhold_ms = -5\n", "hold_ms"},
		{"empty texture", "[assets]\nball = \"\"\n", "texture paths"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, "pong.toml", tt.content))
			if err == nil {
				t.Fatal("Expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestSaveThenLoad(t *testing.T) {
	clearAudioEnv(t)

	cfg := Default()
	cfg.Assets.FontSize = 20
	cfg.Input.HoldMs = 200

	path := filepath.Join(t.TempDir(), "out.toml")
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Expected saved config to load, got %v", err)
	}
	if loaded.Assets.FontSize != 20 || loaded.Input.HoldMs != 200 {
		t.Errorf("Expected saved values, got %+v %+v", loaded.Assets, loaded.Input)
	}
}
