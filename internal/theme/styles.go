package theme

import "github.com/charmbracelet/lipgloss"

// Styles are the lipgloss styles every component renders with.
type Styles struct {
	Desktop  lipgloss.Style
	TitleBar lipgloss.Style
	Window   lipgloss.Style
	Content  lipgloss.Style
	TopBar   lipgloss.Style
	Dock     lipgloss.Style
	Muted    lipgloss.Style

	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles derives the component styles from a palette.
func NewStyles(p Palette) Styles {
	button := lipgloss.NewStyle().
		Foreground(color(p.ButtonFg)).
		Bold(true)

	return Styles{
		Desktop: lipgloss.NewStyle().
			Background(color(p.Desktop)),
		TitleBar: lipgloss.NewStyle().
			Foreground(color(p.TitleBarFg)).
			Background(color(p.TitleBarBg)).
			Bold(true),
		Window: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderTop(false).
			BorderForeground(color(p.Border)).
			BorderBackground(color(p.Desktop)),
		Content: lipgloss.NewStyle().
			Foreground(color(p.Foreground)).
			Background(color(p.ContentBg)),
		TopBar: lipgloss.NewStyle().
			Foreground(color(p.TopBarFg)).
			Background(color(p.TopBarBg)),
		Dock: lipgloss.NewStyle().
			Foreground(color(p.DockFg)).
			Background(color(p.DockBg)),
		Muted: lipgloss.NewStyle().
			Foreground(color(p.Border)),

		Success: button.Background(color(p.Success)),
		Warning: button.Background(color(p.Warning)),
		Error:   button.Background(color(p.Error)),
	}
}
