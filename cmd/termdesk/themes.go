package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/termdesk/internal/theme"
)

var themesOpts struct {
	force bool
}

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List bundled and user themes",
	Long: `List the colour themes termdesk can use.

User themes live in ~/.config/termdesk/themes/<name>.toml and override a
bundled theme of the same name. Edits to the active user theme are picked up
while the desktop runs.`,
	Args: cobra.NoArgs,
	RunE: runThemes,
}

var themesExportCmd = &cobra.Command{
	Use:   "export <name>",
	Short: "Copy a bundled theme into the user themes directory",
	Args:  cobra.ExactArgs(1),
	RunE:  runThemesExport,
}

func init() {
	rootCmd.AddCommand(themesCmd)
	themesCmd.AddCommand(themesExportCmd)

	themesExportCmd.Flags().BoolVar(&themesOpts.force, "force", false,
		"Overwrite an existing user theme")
}

func runThemes(cmd *cobra.Command, args []string) error {
	themes, err := theme.ListAvailableThemes()
	if err != nil {
		return err
	}

	active := getConfig().Theme.Name
	for _, t := range themes {
		marker := " "
		if t.Name == active {
			marker = "*"
		}
		source := "bundled"
		if !t.IsBundled {
			source = t.Path
		}
		fmt.Printf("%s %-12s %s\n", marker, t.Name, source)
	}
	return nil
}

func runThemesExport(cmd *cobra.Command, args []string) error {
	name := args[0]
	data, ok := theme.GetEmbeddedTheme(name)
	if !ok {
		return fmt.Errorf("%w: %s", theme.ErrThemeNotFound, name)
	}

	if err := theme.CreateThemesDir(); err != nil {
		return fmt.Errorf("failed to create themes directory: %w", err)
	}
	dir, err := theme.ThemesDir()
	if err != nil {
		return err
	}

	path := filepath.Join(dir, name+".toml")
	if _, err := os.Stat(path); err == nil && !themesOpts.force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	logger.Info("theme exported", "name", name, "path", path)
	fmt.Println(path)
	return nil
}
