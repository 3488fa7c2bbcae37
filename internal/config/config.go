// Package config loads the window and gesture settings of the board app.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Window   WindowConfig
	Board    BoardConfig
	Trash    TrashConfig
	Blink    BlinkConfig
	Outline  OutlineConfig
	Gestures GestureConfig
}

// WindowConfig holds the initial window size.
type WindowConfig struct {
	Width  float32
	Height float32
}

// BoardConfig holds the placement of new images.
type BoardConfig struct {
	DefaultFrame FrameConfig `mapstructure:"default_frame"`
}

// FrameConfig is a rectangle in board coordinates.
type FrameConfig struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// TrashConfig holds the drop target geometry.
type TrashConfig struct {
	Size   float32
	Margin float32
}

// BlinkConfig holds the blink animation settings.
type BlinkConfig struct {
	PeriodMS int     `mapstructure:"period_ms"`
	MinAlpha float32 `mapstructure:"min_alpha"`
}

// OutlineConfig holds the selection border settings.
type OutlineConfig struct {
	Ratio float64
}

// GestureConfig maps mouse wheel input onto pinch and rotate gestures.
type GestureConfig struct {
	PinchPerScroll  float64 `mapstructure:"pinch_per_scroll"`
	RotatePerScroll float64 `mapstructure:"rotate_per_scroll"`
	IdleMS          int     `mapstructure:"idle_ms"`
}

// Period returns the blink period as a duration.
func (b BlinkConfig) Period() time.Duration {
	return time.Duration(b.PeriodMS) * time.Millisecond
}

// Idle returns how long the wheel must be still before a gesture ends.
func (g GestureConfig) Idle() time.Duration {
	return time.Duration(g.IdleMS) * time.Millisecond
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 480)
	v.SetDefault("window.height", 800)
	v.SetDefault("board.default_frame.x", 150)
	v.SetDefault("board.default_frame.y", 150)
	v.SetDefault("board.default_frame.width", 150)
	v.SetDefault("board.default_frame.height", 150)
	v.SetDefault("trash.size", 50)
	v.SetDefault("trash.margin", 15)
	v.SetDefault("blink.period_ms", 700)
	v.SetDefault("blink.min_alpha", 0.1)
	v.SetDefault("outline.ratio", 1.08)
	v.SetDefault("gestures.pinch_per_scroll", 0.005)
	v.SetDefault("gestures.rotate_per_scroll", 0.01)
	v.SetDefault("gestures.idle_ms", 250)
}

// Default returns the built-in configuration without reading any file.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	// Defaults always decode.
	_ = v.Unmarshal(&c)
	return c
}

// Load reads configuration from file and env. Env var overrides use prefix DRAGBOARD_.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")

	explicit := os.Getenv("DRAGBOARD_CONFIG")
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		dir, err := os.UserConfigDir()
		if err != nil {
			dir = filepath.Join(os.Getenv("HOME"), ".config")
		}
		v.AddConfigPath(filepath.Join(dir, "dragboard"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("DRAGBOARD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the board cannot work with.
func (c Config) Validate() error {
	f := c.Board.DefaultFrame
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("config: default frame must have a positive size, got %vx%v", f.Width, f.Height)
	}
	if c.Trash.Size <= 0 {
		return fmt.Errorf("config: trash size must be positive, got %v", c.Trash.Size)
	}
	if c.Blink.PeriodMS <= 0 {
		return fmt.Errorf("config: blink period must be positive, got %dms", c.Blink.PeriodMS)
	}
	if c.Blink.MinAlpha < 0 || c.Blink.MinAlpha > 1 {
		return fmt.Errorf("config: blink min alpha must be within [0,1], got %v", c.Blink.MinAlpha)
	}
	if c.Outline.Ratio < 1 {
		return fmt.Errorf("config: outline ratio must be at least 1, got %v", c.Outline.Ratio)
	}
	if c.Gestures.IdleMS <= 0 {
		return fmt.Errorf("config: gesture idle timeout must be positive, got %dms", c.Gestures.IdleMS)
	}
	return nil
}
