// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/user/termshow/pkg/orchestrator"
	"github.com/user/termshow/pkg/player"
	"github.com/user/termshow/pkg/stages/convert"
)

// Config represents the full configuration for termshow.
type Config struct {
	// Playback
	FPS      float64 `yaml:"fps"`
	Loop     bool    `yaml:"loop"`
	Progress bool    `yaml:"progress"`

	// Conversion
	Width    int     `yaml:"width"` // 0 = negotiate from terminal size
	Charset  string  `yaml:"charset"`
	Contrast float64 `yaml:"contrast"`
	Workers  int     `yaml:"workers"`

	// Decoding
	FFmpegPath string `yaml:"ffmpeg_path"`

	// Logging
	LogLevel string `yaml:"log_level"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		FPS:      30.0,
		Loop:     false,
		Progress: false,

		Width:    0,
		Charset:  convert.DefaultRamp,
		Contrast: 1.0,
		Workers:  runtime.NumCPU(),

		LogLevel: "info",
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	return cfg.Normalize(), nil
}

// Normalize clamps values to their valid ranges, mirroring the silent
// clamping the player applies at runtime.
func (c Config) Normalize() Config {
	if c.FPS < player.MinFPS {
		c.FPS = player.MinFPS
	}
	if c.FPS > player.MaxFPS {
		c.FPS = player.MaxFPS
	}
	if c.Charset == "" {
		c.Charset = convert.DefaultRamp
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	return c
}

// ToOrchestratorConfig converts the configuration for a playback run.
func (c Config) ToOrchestratorConfig(videoPath string) orchestrator.Config {
	return orchestrator.Config{
		VideoPath:   videoPath,
		FPS:         c.FPS,
		Loop:        c.Loop,
		Progress:    c.Progress,
		TargetWidth: c.Width,
		Ramp:        c.Charset,
		Contrast:    c.Contrast,
		Workers:     c.Workers,
	}
}
