package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("DRAGBOARD_CONFIG", "")
	return dir
}

func TestDefault(t *testing.T) {
	c := Default()
	require.Equal(t, FrameConfig{X: 150, Y: 150, Width: 150, Height: 150}, c.Board.DefaultFrame)
	require.Equal(t, float32(50), c.Trash.Size)
	require.Equal(t, float32(15), c.Trash.Margin)
	require.Equal(t, 700*time.Millisecond, c.Blink.Period())
	require.InDelta(t, 0.1, c.Blink.MinAlpha, 1e-6)
	require.InDelta(t, 1.08, c.Outline.Ratio, 1e-9)
	require.Equal(t, 250*time.Millisecond, c.Gestures.Idle())
	require.NoError(t, c.Validate())
}

func TestLoadWithoutFile(t *testing.T) {
	isolate(t)
	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, Default(), c)
}

func TestLoadExplicitFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "board.toml")
	data := []byte(`
[board.default_frame]
x = 10
y = 20
width = 100
height = 80

[blink]
period_ms = 300
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	t.Setenv("DRAGBOARD_CONFIG", path)

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, FrameConfig{X: 10, Y: 20, Width: 100, Height: 80}, c.Board.DefaultFrame)
	require.Equal(t, 300*time.Millisecond, c.Blink.Period())
	require.Equal(t, float32(50), c.Trash.Size)
}

func TestLoadFromUserConfigDir(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "dragboard"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dragboard", "config.toml"), []byte("[trash]\nsize = 70\n"), 0o644))

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, float32(70), c.Trash.Size)
}

func TestLoadEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("DRAGBOARD_TRASH_SIZE", "64")
	t.Setenv("DRAGBOARD_GESTURES_IDLE_MS", "500")

	c, err := Load()
	require.NoError(t, err)
	require.Equal(t, float32(64), c.Trash.Size)
	require.Equal(t, 500*time.Millisecond, c.Gestures.Idle())
}

func TestLoadMissingExplicitFile(t *testing.T) {
	dir := isolate(t)
	t.Setenv("DRAGBOARD_CONFIG", filepath.Join(dir, "nope.toml"))
	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "config: read")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	isolate(t)
	t.Setenv("DRAGBOARD_OUTLINE_RATIO", "0.5")
	_, err := Load()
	require.ErrorContains(t, err, "outline ratio")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"frame", func(c *Config) { c.Board.DefaultFrame.Width = 0 }, "default frame"},
		{"trash", func(c *Config) { c.Trash.Size = -1 }, "trash size"},
		{"blink period", func(c *Config) { c.Blink.PeriodMS = 0 }, "blink period"},
		{"blink alpha", func(c *Config) { c.Blink.MinAlpha = 2 }, "min alpha"},
		{"idle", func(c *Config) { c.Gestures.IdleMS = 0 }, "idle timeout"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			require.ErrorContains(t, c.Validate(), tt.want)
		})
	}
}
