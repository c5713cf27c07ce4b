package widget

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jmylchreest/termdesk/internal/model"
	"github.com/jmylchreest/termdesk/internal/pointer"
	"github.com/jmylchreest/termdesk/internal/theme"
)

// ApplicationWindow owns one window's position, size and title, turns
// pointer input on its title bar into drags and renders its content.
type ApplicationWindow struct {
	record  model.Window
	content Content
	surface *pointer.Bus
	bar     *TitleBar
	logger  *slog.Logger

	// nil when idle
	session *dragSession

	onClose    func()
	onMinimize func()
	onMaximize func()

	unmounted bool
}

// Option configures an ApplicationWindow.
type Option func(*ApplicationWindow)

// WithPosition sets the initial top-left corner.
func WithPosition(p model.Position) Option {
	return func(w *ApplicationWindow) { w.record.Position = p }
}

// WithSize sets the window extent.
func WithSize(s model.Size) Option {
	return func(w *ApplicationWindow) { w.record.Size = s }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(w *ApplicationWindow) { w.logger = l }
}

// WithCloseHandler sets what happens when the close button is clicked.
// The default does nothing.
func WithCloseHandler(fn func()) Option {
	return func(w *ApplicationWindow) { w.onClose = fn }
}

// WithMinimizeHandler sets what happens when the minimize button is
// clicked. The default does nothing.
func WithMinimizeHandler(fn func()) Option {
	return func(w *ApplicationWindow) { w.onMinimize = fn }
}

// WithMaximizeHandler sets what happens when the maximize button is
// clicked. The default does nothing.
func WithMaximizeHandler(fn func()) Option {
	return func(w *ApplicationWindow) { w.onMaximize = fn }
}

// NewApplicationWindow mounts a window on surface titled defaultWindowName
// and showing content.
func NewApplicationWindow(surface *pointer.Bus, defaultWindowName string, content Content, opts ...Option) (*ApplicationWindow, error) {
	record, err := model.NewWindow(defaultWindowName)
	if err != nil {
		return nil, err
	}

	w := &ApplicationWindow{
		record:     *record,
		content:    content,
		surface:    surface,
		logger:     slog.Default(),
		onClose:    noop,
		onMinimize: noop,
		onMaximize: noop,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.content == nil {
		w.content = Text("")
	}

	w.bar = NewTitleBar(w.record.Title,
		func() { w.onClose() },
		WithMinimize(func() { w.onMinimize() }),
		WithMaximize(func() { w.onMaximize() }),
		WithPointerDown(func(ev pointer.Event) { w.BeginDrag(ev.Position) }),
	)

	return w, nil
}

// ID returns the window's unique ID.
func (w *ApplicationWindow) ID() string {
	return w.record.ID
}

// Title returns the display name.
func (w *ApplicationWindow) Title() string {
	return w.record.Title
}

// SetTitle changes the display name.
func (w *ApplicationWindow) SetTitle(title string) {
	w.record.SetTitle(title)
	w.bar.SetTitle(title)
}

// Position returns the top-left corner.
func (w *ApplicationWindow) Position() model.Position {
	return w.record.Position
}

// Size returns the window extent.
func (w *ApplicationWindow) Size() model.Size {
	return w.record.Size
}

// Bounds returns the area the window covers.
func (w *ApplicationWindow) Bounds() model.Rect {
	return w.record.Bounds()
}

// TitleBarBounds returns the area of the title bar row.
func (w *ApplicationWindow) TitleBarBounds() model.Rect {
	return model.Rect{
		Position: w.record.Position,
		Size:     model.Size{Width: w.record.Size.Width, Height: 1},
	}
}

// Snapshot returns a copy of the window record.
func (w *ApplicationWindow) Snapshot() model.Window {
	return w.record
}

// DragState returns Idle or Dragging with the captured offset.
func (w *ApplicationWindow) DragState() DragState {
	if w.session == nil {
		return Idle{}
	}
	return Dragging{Offset: w.session.offset}
}

// IsDragging reports whether a drag session is active.
func (w *ApplicationWindow) IsDragging() bool {
	return w.session != nil
}

// Mounted reports whether the window is still mounted.
func (w *ApplicationWindow) Mounted() bool {
	return !w.unmounted
}

// HandleTitleBarPointer delivers a pointer event that landed on the title
// bar. Coordinates are surface coordinates.
func (w *ApplicationWindow) HandleTitleBarPointer(ev pointer.Event) {
	if w.unmounted {
		return
	}
	w.bar.HandlePointer(ev, ev.Position.X-w.record.Position.X, w.record.Size.Width)
}

// BeginDrag starts a drag session with the pointer at p. Calling it again
// mid-drag re-captures the offset from the current position.
func (w *ApplicationWindow) BeginDrag(p model.Position) {
	if w.unmounted {
		return
	}

	offset := p.Sub(w.record.Position)
	if w.session != nil {
		w.session.offset = offset
		w.logger.Debug("drag re-anchored", "window", w.record.ID, "offset", offset)
		return
	}

	w.session = &dragSession{
		offset: offset,
		move:   w.surface.Subscribe(pointer.Move, func(ev pointer.Event) { w.DragMove(ev.Position) }),
		up:     w.surface.Subscribe(pointer.Up, func(pointer.Event) { w.EndDrag() }),
	}
	w.logger.Debug("drag started", "window", w.record.ID, "title", w.record.Title, "offset", offset)
}

// DragMove moves the window so the pointer at p keeps its captured offset.
// Ignored when idle. The result is not clamped to the surface.
func (w *ApplicationWindow) DragMove(p model.Position) {
	if w.session == nil {
		return
	}
	w.record.Position = p.Minus(w.session.offset)
}

// EndDrag ends the drag session and releases its subscriptions. Any
// button press on the title bar ends with it.
func (w *ApplicationWindow) EndDrag() {
	if w.session == nil {
		return
	}
	w.bar.CancelPress()
	w.session.release()
	w.session = nil
	w.logger.Debug("drag ended", "window", w.record.ID, "position", w.record.Position)
}

// Unmount tears the window down, ending any drag in progress.
func (w *ApplicationWindow) Unmount() {
	w.EndDrag()
	w.unmounted = true
}

// Render draws the window: title bar, then the bordered content region.
// The result is Size.Width cells wide and Size.Height lines tall; the
// caller places it at Position.
func (w *ApplicationWindow) Render(th *theme.Theme) string {
	width, height := w.record.Size.Width, w.record.Size.Height
	if width <= 0 || height <= 0 {
		return ""
	}

	bar := w.bar.Render(width, th)
	if height == 1 || width < 2 {
		return bar
	}

	innerW, innerH := width-2, height-2
	if innerH == 0 {
		return bar + "\n" + th.Styles.Muted.Render(bottomBorder(innerW))
	}

	body := clip(w.content.View(innerW, innerH), innerW, innerH)
	region := th.Styles.Content.Width(innerW).Height(innerH).Render(body)
	return bar + "\n" + th.Styles.Window.Render(region)
}

func bottomBorder(innerW int) string {
	b := lipgloss.RoundedBorder()
	return b.BottomLeft + strings.Repeat(b.Bottom, innerW) + b.BottomRight
}

// clip limits s to height lines of at most width cells.
func clip(s string, width, height int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, width, "")
	}
	return strings.Join(lines, "\n")
}
