// Package config loads optional TOML settings layered over built-in defaults.
//
// Window geometry and physics tuning are compile-time constants and are not
// exposed here.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/pong/audio"
	"github.com/lixenwraith/pong/constant"
)

// Config is the full runtime configuration
type Config struct {
	Debug      bool              `toml:"debug"`
	Assets     AssetsConfig      `toml:"assets"`
	Input      InputConfig       `toml:"input"`
	Audio      audio.AudioConfig `toml:"audio"`
	Screenshot ScreenshotConfig  `toml:"screenshot"`
}

// AssetsConfig locates textures and the score font
type AssetsConfig struct {
	Dir      string  `toml:"dir"`
	Player1  string  `toml:"player1"`
	Player2  string  `toml:"player2"`
	Ball     string  `toml:"ball"`
	Font     string  `toml:"font"` // empty selects the embedded face
	FontSize float64 `toml:"font_size"`
}

// InputConfig tunes terminal key-hold emulation
type InputConfig struct {
	HoldMs int `toml:"hold_ms"`
}

// HoldWindow returns the key hold window as a duration
func (c InputConfig) HoldWindow() time.Duration {
	return time.Duration(c.HoldMs) * time.Millisecond
}

// ScreenshotConfig sets where captures are written
type ScreenshotConfig struct {
	Dir string `toml:"dir"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Assets: AssetsConfig{
			Dir:      "resources",
			Player1:  "player1.png",
			Player2:  "player2.png",
			Ball:     "ball.png",
			FontSize: constant.ScoreFontSize,
		},
		Input: InputConfig{
			HoldMs: int(constant.KeyHoldWindow / time.Millisecond),
		},
		Audio: *audio.DefaultAudioConfig(),
		Screenshot: ScreenshotConfig{
			Dir: "screenshots",
		},
	}
}

// Load decodes path over the defaults and applies audio environment overrides
// An empty path or a missing file yields the defaults
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("decode config %s: %w", path, err)
		}
		if err == nil {
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				return nil, fmt.Errorf("config %s: unknown key %s", path, undecoded[0])
			}
		}
	}

	cfg.Audio = *audio.LoadAudioConfig(&cfg.Audio)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the game cannot run with
func (c *Config) Validate() error {
	if c.Assets.FontSize <= 0 {
		return fmt.Errorf("assets.font_size must be positive, got %v", c.Assets.FontSize)
	}
	if c.Input.HoldMs <= 0 {
		return fmt.Errorf("input.hold_ms must be positive, got %d", c.Input.HoldMs)
	}
	if c.Assets.Player1 == "" || c.Assets.Player2 == "" || c.Assets.Ball == "" {
		return errors.New("assets: texture paths must not be empty")
	}
	return nil
}

// AssetFS returns the filesystem textures and fonts are read from
func (c *Config) AssetFS() fs.FS {
	return os.DirFS(c.Assets.Dir)
}

// Save writes c as TOML to path
func (c *Config) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config %s: %w", path, err)
	}
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		f.Close()
		return fmt.Errorf("encode config %s: %w", path, err)
	}
	return f.Close()
}
