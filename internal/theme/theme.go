package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"

	"github.com/jmylchreest/termdesk/internal/config"
)

// ErrInvalidColor is returned when a palette entry is not a colour.
var ErrInvalidColor = errors.New("invalid colour")

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Palette is the set of colours a theme defines. Values are hex colours
// ("#rrggbb") or ANSI colour numbers ("0"-"255").
type Palette struct {
	Desktop    string `toml:"desktop"`
	Foreground string `toml:"foreground"`
	ContentBg  string `toml:"content_bg"`
	TitleBarFg string `toml:"title_bar_fg"`
	TitleBarBg string `toml:"title_bar_bg"`
	Border     string `toml:"border"`
	ButtonFg   string `toml:"button_fg"`
	Success    string `toml:"success"`
	Warning    string `toml:"warning"`
	Error      string `toml:"error"`
	TopBarFg   string `toml:"top_bar_fg"`
	TopBarBg   string `toml:"top_bar_bg"`
	DockFg     string `toml:"dock_fg"`
	DockBg     string `toml:"dock_bg"`
}

// fallbackPalette fills any entry a theme file leaves out.
var fallbackPalette = Palette{
	Desktop:    "#1d2b3a",
	Foreground: "#e6e6e6",
	ContentBg:  "#24292e",
	TitleBarFg: "#f0f0f0",
	TitleBarBg: "#3b4252",
	Border:     "#4c566a",
	ButtonFg:   "#000000",
	Success:    "#2bc840",
	Warning:    "#febc2e",
	Error:      "#ff5f57",
	TopBarFg:   "#ffffff",
	TopBarBg:   "#111111",
	DockFg:     "#ffffff",
	DockBg:     "#2e3440",
}

// Validate checks that every palette entry is a usable colour.
func (p Palette) Validate() error {
	entries := map[string]string{
		"desktop":      p.Desktop,
		"foreground":   p.Foreground,
		"content_bg":   p.ContentBg,
		"title_bar_fg": p.TitleBarFg,
		"title_bar_bg": p.TitleBarBg,
		"border":       p.Border,
		"button_fg":    p.ButtonFg,
		"success":      p.Success,
		"warning":      p.Warning,
		"error":        p.Error,
		"top_bar_fg":   p.TopBarFg,
		"top_bar_bg":   p.TopBarBg,
		"dock_fg":      p.DockFg,
		"dock_bg":      p.DockBg,
	}
	for key, value := range entries {
		if !isColor(value) {
			return fmt.Errorf("%w: %s = %q", ErrInvalidColor, key, value)
		}
	}
	return nil
}

func isColor(s string) bool {
	if hexColor.MatchString(s) {
		return true
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}

// Theme represents a colour theme with metadata.
type Theme struct {
	Name      string    // Theme name (without .toml extension)
	Path      string    // Full path to the theme file (empty for bundled)
	Palette   Palette   // Parsed colours
	Styles    Styles    // lipgloss styles derived from Palette
	ModTime   time.Time // Last modification time
	IsDefault bool      // True if this is the embedded default theme
}

type themeFile struct {
	Name    string  `toml:"name"`
	Palette Palette `toml:"palette"`
}

// Parse builds a Theme from TOML data. Palette entries the data leaves out
// take the fallback colours.
func Parse(name string, data []byte) (*Theme, error) {
	file := themeFile{Name: name, Palette: fallbackPalette}
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse theme %q: %w", name, err)
	}
	if err := file.Palette.Validate(); err != nil {
		return nil, fmt.Errorf("theme %q: %w", name, err)
	}

	return &Theme{
		Name:    name,
		Palette: file.Palette,
		Styles:  NewStyles(file.Palette),
	}, nil
}

// NewTheme creates a new Theme by loading a TOML file.
func NewTheme(name, path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	t, err := Parse(name, data)
	if err != nil {
		return nil, err
	}
	t.Path = path
	t.ModTime = info.ModTime()
	return t, nil
}

// NewDefaultTheme creates the embedded default theme.
func NewDefaultTheme() *Theme {
	t, err := NewBundledTheme(DefaultThemeName)
	if err != nil {
		return &Theme{
			Name:      DefaultThemeName,
			Palette:   fallbackPalette,
			Styles:    NewStyles(fallbackPalette),
			IsDefault: true,
		}
	}
	return t
}

// NewBundledTheme creates a theme from the embedded files.
func NewBundledTheme(name string) (*Theme, error) {
	data, found := GetEmbeddedTheme(name)
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrThemeNotFound, name)
	}
	t, err := Parse(name, data)
	if err != nil {
		return nil, err
	}
	t.IsDefault = name == DefaultThemeName
	return t, nil
}

// Reload reads the theme file again and returns the result as a new
// Theme, leaving t untouched so it can be shared with readers. changed
// reports whether the palette differs from t's.
func (t *Theme) Reload() (fresh *Theme, changed bool, err error) {
	if t.Path == "" {
		return t, false, nil
	}

	fresh, err = NewTheme(t.Name, t.Path)
	if err != nil {
		return nil, false, err
	}
	fresh.IsDefault = t.IsDefault
	return fresh, fresh.Palette != t.Palette, nil
}

// ThemeInfo provides basic theme information for listing.
type ThemeInfo struct {
	Name      string
	Path      string
	IsDefault bool
	IsBundled bool // True if this is a bundled/embedded theme
}

// ThemesDir returns the path to the user's themes directory, inside the
// termdesk config directory.
func ThemesDir() (string, error) {
	configDir, err := config.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "themes"), nil
}

// ListAvailableThemes lists all available themes (bundled + user).
func ListAvailableThemes() ([]ThemeInfo, error) {
	seen := make(map[string]bool)
	var themes []ThemeInfo

	for _, name := range ListEmbeddedThemes() {
		if !seen[name] {
			seen[name] = true
			themes = append(themes, ThemeInfo{
				Name:      name,
				IsDefault: name == DefaultThemeName,
				IsBundled: true,
			})
		}
	}

	themesDir, err := ThemesDir()
	if err != nil {
		return themes, nil
	}

	entries, err := os.ReadDir(themesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return themes, nil
		}
		return themes, err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) != ".toml" {
			continue
		}
		themeName := name[:len(name)-len(".toml")]
		if seen[themeName] {
			// User file overrides the bundled one
			for i := range themes {
				if themes[i].Name == themeName {
					themes[i].Path = filepath.Join(themesDir, name)
					themes[i].IsBundled = false
				}
			}
			continue
		}
		seen[themeName] = true
		themes = append(themes, ThemeInfo{
			Name: themeName,
			Path: filepath.Join(themesDir, name),
		})
	}

	return themes, nil
}

// CreateThemesDir creates the themes directory if it doesn't exist.
func CreateThemesDir() error {
	themesDir, err := ThemesDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(themesDir, 0755)
}

func color(s string) lipgloss.Color {
	return lipgloss.Color(s)
}
