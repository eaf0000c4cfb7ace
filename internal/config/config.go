// Package config handles game configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all game settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Controls ControlsConfig `yaml:"controls"`
	Camera   CameraConfig   `yaml:"camera"`
	World    WorldConfig    `yaml:"world"`
	Assets   AssetsConfig   `yaml:"assets"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds window and projection settings.
type GraphicsConfig struct {
	Width    int     `yaml:"width"`
	Height   int     `yaml:"height"`
	Title    string  `yaml:"title"`
	VSync    bool    `yaml:"vsync"`
	FPSLimit int     `yaml:"fps_limit"` // 0 = uncapped
	FOV      float32 `yaml:"fov"`       // vertical, degrees
}

// ControlsConfig holds look and movement tuning.
type ControlsConfig struct {
	MouseSensitivity float32 `yaml:"mouse_sensitivity"` // degrees per pixel
	MoveSpeed        float32 `yaml:"move_speed"`        // units per second
}

// CameraConfig holds the starting mode and third-person follow settings.
type CameraConfig struct {
	Mode           string  `yaml:"mode"`
	Distance       float32 `yaml:"distance"`
	VerticalOffset float32 `yaml:"vertical_offset"`
	PitchBiasDeg   float32 `yaml:"pitch_bias_deg"`
}

// WorldConfig points at a world file. Empty means the built-in world.
type WorldConfig struct {
	Path string `yaml:"path"`
}

type AssetsConfig struct {
	TextureDir string `yaml:"texture_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the stock settings.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:    800,
			Height:   600,
			Title:    "Glitch Game",
			VSync:    true,
			FPSLimit: 0,
			FOV:      45,
		},
		Controls: ControlsConfig{
			MouseSensitivity: 0.1,
			MoveSpeed:        2.5,
		},
		Camera: CameraConfig{
			Mode:           "third_person",
			Distance:       4,
			VerticalOffset: -0.5,
			PitchBiasDeg:   25,
		},
		Assets: AssetsConfig{
			TextureDir: "assets/textures",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports the first setting the game cannot start with.
func (c *Config) Validate() error {
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Graphics.Width, c.Graphics.Height)
	}
	if c.Graphics.FPSLimit < 0 {
		return fmt.Errorf("%w: fps_limit %d", ErrInvalidConfig, c.Graphics.FPSLimit)
	}
	if c.Graphics.FOV <= 0 || c.Graphics.FOV >= 180 {
		return fmt.Errorf("%w: fov %v", ErrInvalidConfig, c.Graphics.FOV)
	}
	switch c.Camera.Mode {
	case "first_person", "third_person":
	default:
		return fmt.Errorf("%w: camera mode %q", ErrInvalidConfig, c.Camera.Mode)
	}
	if c.Camera.Distance < 0 {
		return fmt.Errorf("%w: camera distance %v", ErrInvalidConfig, c.Camera.Distance)
	}
	if c.Controls.MoveSpeed < 0 {
		return fmt.Errorf("%w: move_speed %v", ErrInvalidConfig, c.Controls.MoveSpeed)
	}
	return nil
}
