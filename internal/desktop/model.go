// Package desktop provides the BubbleTea model hosting the windows, the top
// bar and the dock.
package desktop

import (
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/jmylchreest/termdesk/internal/config"
	"github.com/jmylchreest/termdesk/internal/layout"
	"github.com/jmylchreest/termdesk/internal/model"
	"github.com/jmylchreest/termdesk/internal/pointer"
	"github.com/jmylchreest/termdesk/internal/theme"
	"github.com/jmylchreest/termdesk/internal/widget"
)

// Model is the desktop model.
type Model struct {
	// Configuration
	cfg    *config.Config
	theme  *theme.Theme
	logger *slog.Logger

	// Pointer stream shared by every window
	surface *pointer.Bus
	// Paint order; later windows are drawn above earlier ones
	windows []*widget.ApplicationWindow

	// Components
	keys KeyMap
	help help.Model

	// State
	now    time.Time
	width  int
	height int
	ready  bool
}

type tickMsg time.Time

type themeChangedMsg struct {
	theme *theme.Theme
}

// New creates the desktop and mounts the configured windows.
func New(cfg *config.Config, th *theme.Theme, logger *slog.Logger) (Model, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if th == nil {
		th = theme.NewDefaultTheme()
	}
	if logger == nil {
		logger = slog.Default()
	}

	m := Model{
		cfg:     cfg,
		theme:   th,
		logger:  logger,
		surface: pointer.NewBus(),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		now:     time.Now(),
	}

	session := sessionContent(m.now, len(cfg.Windows), time.Now)
	for _, wc := range cfg.Windows {
		title := wc.Title
		w, err := widget.NewApplicationWindow(m.surface, title, newContent(wc, session),
			widget.WithPosition(wc.Position()),
			widget.WithSize(wc.Size()),
			widget.WithLogger(logger),
			widget.WithCloseHandler(func() { logger.Debug("close requested", "window", title) }),
			widget.WithMinimizeHandler(func() { logger.Debug("minimize requested", "window", title) }),
			widget.WithMaximizeHandler(func() { logger.Debug("maximize requested", "window", title) }),
		)
		if err != nil {
			m.Close()
			return Model{}, err
		}
		logger.Debug("window mounted", "id", w.ID(), "title", title, "position", w.Position(), "size", w.Size())
		m.windows = append(m.windows, w)
	}

	return m, nil
}

// Windows returns the mounted windows in paint order.
func (m Model) Windows() []*widget.ApplicationWindow {
	return m.windows
}

// Close unmounts every window.
func (m Model) Close() {
	for _, w := range m.windows {
		w.Unmount()
	}
}

// Init starts the clock.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.cfg.Desktop.ClockInterval.Duration(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case tickMsg:
		m.now = time.Time(msg)
		return m, m.tick()

	case themeChangedMsg:
		m.theme = msg.theme
		m.logger.Info("theme reloaded", "name", msg.theme.Name)
		return m, nil
	}

	return m, nil
}

// handleKey handles key presses.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// handleMouse turns a terminal mouse report into a pointer event, hands it
// to the title bar under the pointer, then publishes it on the surface,
// which is where a dragging window listens.
func (m Model) handleMouse(msg tea.MouseMsg) {
	ev, ok := pointerEvent(msg)
	if !ok {
		return
	}

	if w := m.titleBarAt(ev.Position); w != nil {
		w.HandleTitleBarPointer(ev)
	}
	m.surface.Publish(ev)
}

// pointerEvent converts a mouse report. Wheel reports have no pointer
// equivalent.
func pointerEvent(msg tea.MouseMsg) (pointer.Event, bool) {
	if tea.MouseEvent(msg).IsWheel() {
		return pointer.Event{}, false
	}

	ev := pointer.Event{Position: model.Position{X: msg.X, Y: msg.Y}}
	switch msg.Action {
	case tea.MouseActionPress:
		ev.Kind = pointer.Down
	case tea.MouseActionRelease:
		ev.Kind = pointer.Up
	case tea.MouseActionMotion:
		ev.Kind = pointer.Move
	default:
		return pointer.Event{}, false
	}

	switch msg.Button {
	case tea.MouseButtonLeft:
		ev.Button = pointer.ButtonLeft
	case tea.MouseButtonMiddle:
		ev.Button = pointer.ButtonMiddle
	case tea.MouseButtonRight:
		ev.Button = pointer.ButtonRight
	default:
		ev.Button = pointer.ButtonNone
	}
	return ev, true
}

// titleBarAt returns the window whose title bar is visible at p, or nil.
// Chrome rows and window bodies cover whatever lies beneath them.
func (m Model) titleBarAt(p model.Position) *widget.ApplicationWindow {
	if m.onChrome(p) {
		return nil
	}
	for i := len(m.windows) - 1; i >= 0; i-- {
		w := m.windows[i]
		if !w.Bounds().Contains(p) {
			continue
		}
		if w.TitleBarBounds().Contains(p) {
			return w
		}
		return nil
	}
	return nil
}

// onChrome reports whether p falls on the top bar or the dock.
func (m Model) onChrome(p model.Position) bool {
	if m.cfg.Desktop.ShowTopBar && p.Y == 0 {
		return true
	}
	if m.cfg.Desktop.ShowDock && m.height > 0 && p.Y >= m.height-lineCount(m.dock()) {
		return true
	}
	return false
}

// View renders the desktop.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	c := layout.NewCanvas(m.width, m.height)
	c.Draw(0, 0, m.theme.Styles.Desktop.Width(m.width).Height(m.height).Render(""))

	for _, w := range m.windows {
		pos := w.Position()
		c.Draw(pos.X, pos.Y, w.Render(m.theme))
	}

	if m.cfg.Desktop.ShowTopBar {
		c.Draw(0, 0, m.topBar())
	}
	if m.cfg.Desktop.ShowDock {
		dock := m.dock()
		c.Draw(0, m.height-lineCount(dock), dock)
	}

	return c.String()
}

// topBar renders the title on the left and the clock on the right.
func (m Model) topBar() string {
	left := " termdesk"
	right := m.now.Format(m.cfg.Desktop.ClockFormat) + " "
	return m.theme.Styles.TopBar.Width(m.width).Render(spread(left, right, m.width))
}

// dock renders the icon row, with the full key help above it when shown.
func (m Model) dock() string {
	icons := make([]string, 0, len(m.cfg.Desktop.DockIcons))
	for _, icon := range m.cfg.Desktop.DockIcons {
		icons = append(icons, "["+icon+"]")
	}
	left := " " + strings.Join(icons, " ")

	style := m.theme.Styles.Dock.Width(m.width)
	if !m.help.ShowAll {
		right := m.help.ShortHelpView(m.keys.ShortHelp()) + " "
		return style.Render(spread(left, ansi.Strip(right), m.width))
	}

	full := strings.Split(ansi.Strip(m.help.FullHelpView(m.keys.FullHelp())), "\n")
	lines := make([]string, 0, len(full)+1)
	for _, line := range full {
		lines = append(lines, style.Render(ansi.Truncate(" "+line, m.width, "")))
	}
	lines = append(lines, style.Render(ansi.Truncate(left, m.width, "")))
	return strings.Join(lines, "\n")
}

func lineCount(s string) int {
	return strings.Count(s, "\n") + 1
}

// spread places left and right at opposite ends of a line width cells
// wide, dropping right when both do not fit.
func spread(left, right string, width int) string {
	gap := width - ansi.StringWidth(left) - ansi.StringWidth(right)
	if gap < 1 {
		return ansi.Truncate(left, width, "")
	}
	return left + strings.Repeat(" ", gap) + right
}
