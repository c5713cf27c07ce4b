// Package theme handles colour palettes and hot-reload for termdesk.
// Themes are TOML files loaded from ~/.config/termdesk/themes/, with bundled
// themes embedded for use when no user theme overrides them.
package theme
