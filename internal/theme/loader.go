package theme

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
)

// ErrThemeNotFound is returned when neither the user directory nor the
// bundled set has a theme of the requested name.
var ErrThemeNotFound = errors.New("theme not found")

// Load loads a theme by name.
// Theme resolution order:
//  1. User themes directory (~/.config/termdesk/themes/)
//  2. Embedded/bundled themes
//  3. The default theme, with a warning
//
// This allows users to override bundled themes by placing a file with the same name
// in their themes directory.
func Load(name string, logger *slog.Logger) *Theme {
	if logger == nil {
		logger = slog.Default()
	}

	themesDir, err := ThemesDir()
	if err != nil {
		logger.Warn("failed to get themes directory", "error", err)
		themesDir = ""
	}

	t, err := LoadFrom(themesDir, name, logger)
	if err != nil {
		logger.Warn("theme not found, using default", "theme", name, "error", err)
		return NewDefaultTheme()
	}
	return t
}

// LoadFrom resolves a theme against the given user themes directory.
func LoadFrom(themesDir, name string, logger *slog.Logger) (*Theme, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if name == "" {
		name = DefaultThemeName
	}

	if themesDir != "" {
		themePath := filepath.Join(themesDir, name+".toml")
		if _, err := os.Stat(themePath); err == nil {
			t, err := NewTheme(name, themePath)
			if err != nil {
				logger.Warn("failed to load user theme, trying bundled", "theme", name, "error", err)
			} else {
				logger.Info("loaded user theme", "name", name, "path", themePath)
				return t, nil
			}
		}
	}

	t, err := NewBundledTheme(name)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded bundled theme", "name", name)
	return t, nil
}
