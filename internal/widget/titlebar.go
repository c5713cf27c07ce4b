package widget

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/jmylchreest/termdesk/internal/pointer"
	"github.com/jmylchreest/termdesk/internal/theme"
)

// Title bar button slots, left to right.
const (
	buttonMinimize = iota
	buttonMaximize
	buttonClose
	buttonCount
)

// buttonsWidth is the right-aligned button row: three buttons, a gap after
// each one.
const buttonsWidth = buttonCount * (ButtonWidth + 1)

// TitleBar shows a window title and the minimize, maximize and close
// buttons. Pointer events are passed to the owner untouched.
type TitleBar struct {
	title string

	onPointerDown func(pointer.Event)
	onPointerUp   func(pointer.Event)
	onPointerMove func(pointer.Event)

	buttons [buttonCount]RoundButton
	pressed int // button armed by the last pointer-down, -1 if none
}

type titleBarHooks struct {
	onMinimize    func()
	onMaximize    func()
	onPointerDown func(pointer.Event)
	onPointerUp   func(pointer.Event)
	onPointerMove func(pointer.Event)
}

// TitleBarOption configures a TitleBar.
type TitleBarOption func(*titleBarHooks)

// WithMinimize sets the minimize callback.
func WithMinimize(fn func()) TitleBarOption {
	return func(h *titleBarHooks) { h.onMinimize = fn }
}

// WithMaximize sets the maximize callback.
func WithMaximize(fn func()) TitleBarOption {
	return func(h *titleBarHooks) { h.onMaximize = fn }
}

// WithPointerDown sets the callback for pointer-down on the bar.
func WithPointerDown(fn func(pointer.Event)) TitleBarOption {
	return func(h *titleBarHooks) { h.onPointerDown = fn }
}

// WithPointerUp sets the callback for pointer-up on the bar.
func WithPointerUp(fn func(pointer.Event)) TitleBarOption {
	return func(h *titleBarHooks) { h.onPointerUp = fn }
}

// WithPointerMove sets the callback for pointer motion over the bar.
func WithPointerMove(fn func(pointer.Event)) TitleBarOption {
	return func(h *titleBarHooks) { h.onPointerMove = fn }
}

func noop() {}

func noopPointer(pointer.Event) {}

// NewTitleBar creates a title bar. onClose is required; every other
// callback defaults to a no-op.
func NewTitleBar(title string, onClose func(), opts ...TitleBarOption) *TitleBar {
	h := titleBarHooks{
		onMinimize:    noop,
		onMaximize:    noop,
		onPointerDown: noopPointer,
		onPointerUp:   noopPointer,
		onPointerMove: noopPointer,
	}
	for _, opt := range opts {
		opt(&h)
	}
	if onClose == nil {
		onClose = noop
	}

	return &TitleBar{
		title:         title,
		onPointerDown: h.onPointerDown,
		onPointerUp:   h.onPointerUp,
		onPointerMove: h.onPointerMove,
		buttons: [buttonCount]RoundButton{
			NewRoundButton(h.onMinimize, "-", WithVariant(VariantSuccess)),
			NewRoundButton(h.onMaximize, "+", WithVariant(VariantWarning)),
			NewRoundButton(onClose, "x", WithVariant(VariantError)),
		},
		pressed: -1,
	}
}

// Title returns the displayed title.
func (t *TitleBar) Title() string {
	return t.title
}

// SetTitle changes the displayed title.
func (t *TitleBar) SetTitle(title string) {
	t.title = title
}

// buttonsStart returns the column the button row starts at for a bar of the
// given width, or -1 when the bar is too narrow to show buttons.
func buttonsStart(width int) int {
	start := width - buttonsWidth
	if start < 1 {
		return -1
	}
	return start
}

// buttonAt returns the button slot under column x of a bar of the given
// width, or -1.
func (t *TitleBar) buttonAt(x, width int) int {
	start := buttonsStart(width)
	if start < 0 || x < start {
		return -1
	}
	rel := x - start
	slot := rel / (ButtonWidth + 1)
	if slot >= buttonCount || rel%(ButtonWidth+1) >= ButtonWidth {
		return -1
	}
	return slot
}

// HandlePointer forwards ev to the matching pointer callback, then runs
// click recognition for the buttons. x is the event column relative to the
// bar's left edge and width the bar's rendered width; a button is clicked
// when the pointer goes down and up on it.
func (t *TitleBar) HandlePointer(ev pointer.Event, x, width int) {
	switch ev.Kind {
	case pointer.Down:
		t.onPointerDown(ev)
		t.pressed = t.buttonAt(x, width)
	case pointer.Up:
		t.onPointerUp(ev)
		if t.pressed >= 0 && t.pressed == t.buttonAt(x, width) {
			t.buttons[t.pressed].Click()
		}
		t.pressed = -1
	case pointer.Move:
		t.onPointerMove(ev)
	}
}

// CancelPress disarms the button armed by the last pointer-down, so a
// later release over it is not taken as a click.
func (t *TitleBar) CancelPress() {
	t.pressed = -1
}

// Render draws the bar as a single line exactly width cells wide.
func (t *TitleBar) Render(width int, th *theme.Theme) string {
	if width <= 0 {
		return ""
	}

	bar := th.Styles.TitleBar
	start := buttonsStart(width)
	if start < 0 {
		return bar.Width(width).Render(ansi.Truncate(" "+t.title, width, ""))
	}

	var b strings.Builder
	b.WriteString(bar.Width(start).Render(ansi.Truncate(" "+t.title, start, "…")))
	gap := bar.Render(" ")
	for _, btn := range t.buttons {
		b.WriteString(btn.Render(th))
		b.WriteString(gap)
	}
	return b.String()
}
