package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/termdesk/internal/model"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultClockFormat, cfg.Desktop.ClockFormat)
	assert.Equal(t, time.Second, cfg.Desktop.ClockInterval.Duration())
	assert.True(t, cfg.Desktop.ShowTopBar)
	assert.True(t, cfg.Desktop.ShowDock)
	assert.Equal(t, []string{"Terminal", "Apps"}, cfg.Desktop.DockIcons)
	assert.True(t, cfg.Desktop.MouseAllMotion)
	assert.Equal(t, "default", cfg.Theme.Name)
	assert.True(t, cfg.Theme.HotReload)
	require.Len(t, cfg.Windows, 2)
	assert.Equal(t, "Test 2", cfg.Windows[0].Title)
	assert.Equal(t, "Test 1", cfg.Windows[1].Title)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.toml")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Desktop.ClockFormat, cfg.Desktop.ClockFormat)
	assert.Len(t, cfg.Windows, 2)
}

func TestLoadConfig_ParsesTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[desktop]
clock_format = "15:04"
clock_interval = "500ms"
show_top_bar = false
show_dock = false
dock_icons = ["Files"]
mouse_all_motion = false

[theme]
name = "catppuccin"
hot_reload = false

[[windows]]
title = "Notes"
x = -3
y = 2
width = 30
height = 8
content = "hello"

[[windows]]
title = "Session"
kind = "session"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "15:04", cfg.Desktop.ClockFormat)
	assert.Equal(t, 500*time.Millisecond, cfg.Desktop.ClockInterval.Duration())
	assert.False(t, cfg.Desktop.ShowTopBar)
	assert.False(t, cfg.Desktop.ShowDock)
	assert.Equal(t, []string{"Files"}, cfg.Desktop.DockIcons)
	assert.False(t, cfg.Desktop.MouseAllMotion)
	assert.Equal(t, "catppuccin", cfg.Theme.Name)
	assert.False(t, cfg.Theme.HotReload)

	require.Len(t, cfg.Windows, 2, "file windows replace the defaults")
	assert.Equal(t, "Notes", cfg.Windows[0].Title)
	assert.Equal(t, model.Position{X: -3, Y: 2}, cfg.Windows[0].Position())
	assert.Equal(t, model.Size{Width: 30, Height: 8}, cfg.Windows[0].Size())
	assert.Equal(t, ContentText, cfg.Windows[0].ContentKind())
	assert.Equal(t, "hello", cfg.Windows[0].Content)

	assert.Equal(t, model.DefaultPosition, cfg.Windows[1].Position())
	assert.Equal(t, model.DefaultSize, cfg.Windows[1].Size())
	assert.Equal(t, ContentSession, cfg.Windows[1].ContentKind())
}

func TestLoadConfig_PartialConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[theme]
name = "light"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "light", cfg.Theme.Name)
	assert.Equal(t, DefaultClockFormat, cfg.Desktop.ClockFormat)
	assert.Equal(t, []string{"Terminal", "Apps"}, cfg.Desktop.DockIcons)
	assert.Len(t, cfg.Windows, 2)
}

func TestLoadConfig_MillisecondInterval(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[desktop]\nclock_interval = \"250\"\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.Desktop.ClockInterval.Duration())
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`this is not valid toml [`), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_InvalidDuration(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[desktop]\nclock_interval = \"soon\"\n"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"no windows", func(c *Config) { c.Windows = nil }, false},
		{"zero interval", func(c *Config) { c.Desktop.ClockInterval = 0 }, true},
		{"unknown kind", func(c *Config) { c.Windows[0].Kind = "browser" }, true},
		{"zero width", func(c *Config) { c.Windows[0].Width = intPtr(0) }, true},
		{"negative height", func(c *Config) { c.Windows[1].Height = intPtr(-2) }, true},
		{"negative position", func(c *Config) { c.Windows[0].X = intPtr(-50) }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_SaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")

	cfg := DefaultConfig()
	cfg.Theme.Name = "light"
	require.NoError(t, cfg.Save(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "light", loaded.Theme.Name)
	require.Len(t, loaded.Windows, 2)
	assert.Equal(t, cfg.Windows[1].Position(), loaded.Windows[1].Position())
}

func TestConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, "/tmp/xdg/termdesk/config.toml", ConfigPath())
}

func TestConfigDir_FallsBackToHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/tmp/home")

	dir, err := ConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/home/.config/termdesk", dir)
	assert.Equal(t, "/tmp/home/.config/termdesk/config.toml", ConfigPath())
}
