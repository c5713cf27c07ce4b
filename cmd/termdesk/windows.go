package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/termdesk/internal/adapter/output"
	"github.com/jmylchreest/termdesk/internal/config"
	"github.com/jmylchreest/termdesk/internal/core"
	"github.com/jmylchreest/termdesk/internal/model"
)

var windowsOpts struct {
	// Filter options
	filter string
	search string
	limit  int

	// Sort options
	sortBy    string
	sortOrder string

	// Output options
	format   string
	template string
	age      bool
}

var windowsCmd = &cobra.Command{
	Use:   "windows [index]",
	Short: "List the windows the desktop opens",
	Long: `List the windows the desktop opens at startup, as configured.

With an index (1-based, in paint order) only that window is printed.

Examples:
  # Plain listing
  termdesk windows

  # Windows hanging off the left edge, as JSON
  termdesk windows --filter "x<0" --format json

  # Largest first
  termdesk windows --sort area --order desc

  # Custom layout
  termdesk windows --template '{{.Index}} {{.Window.Title}} {{.Window.Size}}'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindows,
}

func init() {
	rootCmd.AddCommand(windowsCmd)

	windowsCmd.Flags().StringVar(&windowsOpts.filter, "filter", "",
		"Filter expression (e.g. \"width>=40,title~notes\")")
	windowsCmd.Flags().StringVarP(&windowsOpts.search, "search", "s", "",
		"Search in titles")
	windowsCmd.Flags().IntVarP(&windowsOpts.limit, "limit", "n", 0,
		"Maximum number of windows to show (0=unlimited)")

	windowsCmd.Flags().StringVar(&windowsOpts.sortBy, "sort", "order",
		"Sort by field (order, title, x, y, area, created)")
	windowsCmd.Flags().StringVar(&windowsOpts.sortOrder, "order", "asc",
		"Sort order (asc, desc)")

	windowsCmd.Flags().StringVarP(&windowsOpts.format, "format", "f", "plain",
		"Output format (plain, json, yaml, ids)")
	windowsCmd.Flags().StringVar(&windowsOpts.template, "template", "",
		"Custom Go template for plain output")
	windowsCmd.Flags().BoolVar(&windowsOpts.age, "age", false,
		"Show when each window was created")
}

func runWindows(cmd *cobra.Command, args []string) error {
	windows, err := configuredWindows(getConfig())
	if err != nil {
		return err
	}

	if len(args) > 0 {
		idx, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid index %q: %w", args[0], err)
		}
		w := core.LookupByIndex(windows, idx)
		if w == nil {
			return fmt.Errorf("no window at index %d (have %d)", idx, len(windows))
		}
		windows = []model.Window{*w}
	}

	expr, err := core.ParseFilter(windowsOpts.filter)
	if err != nil {
		return err
	}
	windows = core.Search(windows, windowsOpts.search)
	core.Sort(windows, core.SortOptions{
		Field: core.ParseSortField(windowsOpts.sortBy),
		Order: core.ParseSortOrder(windowsOpts.sortOrder),
	})
	windows = core.Filter(windows, expr, windowsOpts.limit)

	opts := output.DefaultFormatterOptions()
	opts.Template = windowsOpts.template
	opts.ShowAge = windowsOpts.age

	return output.NewFormatter(output.FormatType(windowsOpts.format), opts).Format(os.Stdout, windows)
}

// configuredWindows builds the window records the desktop would mount.
func configuredWindows(c *config.Config) ([]model.Window, error) {
	windows := make([]model.Window, 0, len(c.Windows))
	for _, wc := range c.Windows {
		w, err := model.NewWindow(wc.Title)
		if err != nil {
			return nil, err
		}
		w.Position = wc.Position()
		w.Size = wc.Size()
		windows = append(windows, *w)
	}
	return windows, nil
}
