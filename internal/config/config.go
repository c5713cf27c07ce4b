// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/jmylchreest/termdesk/internal/model"
)

// Default configuration values.
const (
	DefaultClockFormat   = "Mon Jan 02 2006 - 15:04:05"
	DefaultClockInterval = Duration(time.Second)
	DefaultThemeName     = "default"
)

// Content kinds a configured window can host.
const (
	ContentText    = "text"
	ContentSession = "session"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents the termdesk configuration.
type Config struct {
	Desktop DesktopConfig  `toml:"desktop"`
	Theme   ThemeConfig    `toml:"theme"`
	Windows []WindowConfig `toml:"windows"`
}

// DesktopConfig holds settings for the chrome around the windows.
type DesktopConfig struct {
	ClockFormat    string   `toml:"clock_format"`     // Go time layout
	ClockInterval  Duration `toml:"clock_interval"`   // Clock refresh period
	ShowTopBar     bool     `toml:"show_top_bar"`
	ShowDock       bool     `toml:"show_dock"`
	DockIcons      []string `toml:"dock_icons"`
	MouseAllMotion bool     `toml:"mouse_all_motion"` // Report motion without a held button
}

// ThemeConfig selects the colour theme.
type ThemeConfig struct {
	Name      string `toml:"name"`
	HotReload bool   `toml:"hot_reload"`
}

// WindowConfig describes one window opened at startup.
// Unset geometry falls back to the window defaults.
type WindowConfig struct {
	Title   string `toml:"title"`
	X       *int   `toml:"x,omitempty"`
	Y       *int   `toml:"y,omitempty"`
	Width   *int   `toml:"width,omitempty"`
	Height  *int   `toml:"height,omitempty"`
	Kind    string `toml:"kind,omitempty"` // text (default), session
	Content string `toml:"content,omitempty"`
}

// Position returns the configured top-left corner.
func (w WindowConfig) Position() model.Position {
	p := model.DefaultPosition
	if w.X != nil {
		p.X = *w.X
	}
	if w.Y != nil {
		p.Y = *w.Y
	}
	return p
}

// Size returns the configured extent.
func (w WindowConfig) Size() model.Size {
	s := model.DefaultSize
	if w.Width != nil {
		s.Width = *w.Width
	}
	if w.Height != nil {
		s.Height = *w.Height
	}
	return s
}

// ContentKind returns the content kind, defaulting to text.
func (w WindowConfig) ContentKind() string {
	if w.Kind == "" {
		return ContentText
	}
	return w.Kind
}

func intPtr(v int) *int {
	return &v
}

// DefaultWindows returns the windows opened when the config names none.
func DefaultWindows() []WindowConfig {
	return []WindowConfig{
		{
			Title:   "Test 2",
			X:       intPtr(4),
			Y:       intPtr(3),
			Width:   intPtr(44),
			Height:  intPtr(12),
			Content: "Drag a window by its title bar.\nRelease anywhere to drop it.",
		},
		{
			Title:  "Test 1",
			X:      intPtr(30),
			Y:      intPtr(9),
			Width:  intPtr(40),
			Height: intPtr(10),
			Kind:   ContentSession,
		},
	}
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Desktop: DesktopConfig{
			ClockFormat:    DefaultClockFormat,
			ClockInterval:  DefaultClockInterval,
			ShowTopBar:     true,
			ShowDock:       true,
			DockIcons:      []string{"Terminal", "Apps"},
			MouseAllMotion: true,
		},
		Theme: ThemeConfig{
			Name:      DefaultThemeName,
			HotReload: true,
		},
		Windows: DefaultWindows(),
	}
}

// ConfigDir returns the termdesk config directory.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "termdesk"), nil
}

// ConfigPath returns the path to the config file, or "" when no config
// directory can be determined.
func ConfigPath() string {
	dir, err := ConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "config.toml")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	// Start with defaults
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	// Lists from the file replace the defaults rather than extend them
	windows, icons := cfg.Windows, cfg.Desktop.DockIcons
	cfg.Windows, cfg.Desktop.DockIcons = nil, nil

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.Windows == nil {
		cfg.Windows = windows
	}
	if cfg.Desktop.DockIcons == nil {
		cfg.Desktop.DockIcons = icons
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Desktop.ClockInterval.Duration() <= 0 {
		return fmt.Errorf("%w: clock_interval must be positive, got %s",
			ErrInvalidConfig, c.Desktop.ClockInterval.Duration())
	}

	for i, w := range c.Windows {
		switch w.ContentKind() {
		case ContentText, ContentSession:
		default:
			return fmt.Errorf("%w: windows[%d]: unknown kind %q", ErrInvalidConfig, i, w.Kind)
		}
		if w.Width != nil && *w.Width < 1 {
			return fmt.Errorf("%w: windows[%d]: width must be positive, got %d", ErrInvalidConfig, i, *w.Width)
		}
		if w.Height != nil && *w.Height < 1 {
			return fmt.Errorf("%w: windows[%d]: height must be positive, got %d", ErrInvalidConfig, i, *w.Height)
		}
	}

	return nil
}
