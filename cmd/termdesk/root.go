// Package main provides the CLI entrypoint for termdesk.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/termdesk/internal/config"
	"github.com/jmylchreest/termdesk/internal/desktop"
	"github.com/jmylchreest/termdesk/internal/theme"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		configPath string
		logFile    string
		theme      string
	}
	logger  *slog.Logger
	logSink io.Closer
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "termdesk",
	Short: "A desktop of draggable windows inside your terminal",
	Long: `termdesk draws a small desktop in the terminal: a top bar with a clock,
a dock, and titled windows you can drag around with the mouse.

Press on a window's title bar and drag to move it; release anywhere to drop
it. The minimize, maximize and close buttons are shown but do nothing yet.

Running termdesk without a subcommand launches the desktop.`,
	Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogger(); err != nil {
			return err
		}

		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if globalOpts.theme != "" {
			cfg.Theme.Name = globalOpts.theme
		}

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logSink != nil {
			return logSink.Close()
		}
		return nil
	},
	RunE: runDesktop,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/termdesk/config.toml)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.logFile, "log-file", "",
		"Write logs to this file instead of stderr (the desktop only logs with this set)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.theme, "theme", "",
		"Theme name, overriding the config file")
}

// setupLogger configures the global slog logger.
func setupLogger() error {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for output
	var out io.Writer = os.Stderr
	if globalOpts.logFile != "" {
		f, err := os.OpenFile(globalOpts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		logSink = f
	}

	logger = slog.New(slog.NewTextHandler(out, opts))
	slog.SetDefault(logger)
	return nil
}

// getConfig returns the global config instance.
func getConfig() *config.Config {
	return cfg
}

func runDesktop(cmd *cobra.Command, args []string) error {
	c := getConfig()
	l := desktopLogger()
	slog.SetDefault(l)

	return desktop.Run(desktop.RunOptions{
		Config: c,
		Theme:  theme.Load(c.Theme.Name, l),
		Logger: l,
	})
}

// desktopLogger returns the logger used while the desktop owns the
// terminal. Without --log-file nothing may reach stderr under the alt
// screen, so logs are dropped.
func desktopLogger() *slog.Logger {
	if globalOpts.logFile == "" {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
