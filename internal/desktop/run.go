package desktop

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmylchreest/termdesk/internal/config"
	"github.com/jmylchreest/termdesk/internal/theme"
)

// RunOptions configures the desktop.
type RunOptions struct {
	Config *config.Config
	Theme  *theme.Theme
	Logger *slog.Logger
}

// Run starts the desktop and blocks until the user quits.
func Run(opts RunOptions) error {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	th := opts.Theme
	if th == nil {
		th = theme.Load(cfg.Theme.Name, logger)
	}

	m, err := New(cfg, th, logger)
	if err != nil {
		return err
	}
	defer m.Close()

	mouse := tea.WithMouseCellMotion()
	if cfg.Desktop.MouseAllMotion {
		mouse = tea.WithMouseAllMotion()
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), mouse)

	if cfg.Theme.HotReload {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		watcher, err := watchTheme(ctx, th, logger, p.Send)
		if err != nil {
			logger.Warn("failed to start theme watcher", "error", err)
		}
		defer watcher.Stop()
	}

	_, err = p.Run()
	return err
}

// watchTheme starts a watcher that delivers each reloaded theme to the
// program as a message, so the swap happens inside Update.
func watchTheme(ctx context.Context, th *theme.Theme, logger *slog.Logger, send func(tea.Msg)) (*theme.Watcher, error) {
	watcher := theme.NewWatcher(th, logger)
	watcher.SetChangeCallback(func(t *theme.Theme) {
		send(themeChangedMsg{theme: t})
	})
	return watcher, watcher.Start(ctx)
}
