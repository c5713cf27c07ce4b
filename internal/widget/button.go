package widget

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jmylchreest/termdesk/internal/theme"
)

// ButtonWidth is the number of cells a RoundButton occupies.
const ButtonWidth = 3

// Variant selects a button's semantic colour.
type Variant int

const (
	VariantSuccess Variant = iota
	VariantWarning
	VariantError
)

// String returns the string representation of the variant.
func (v Variant) String() string {
	switch v {
	case VariantSuccess:
		return "success"
	case VariantWarning:
		return "warning"
	case VariantError:
		return "error"
	default:
		return "unknown"
	}
}

// RoundButton is a stateless clickable control.
type RoundButton struct {
	variant  Variant
	label    string
	override *lipgloss.Style
	onClick  func()
}

// ButtonOption configures a RoundButton.
type ButtonOption func(*RoundButton)

// WithVariant sets the button variant. Buttons default to VariantSuccess.
func WithVariant(v Variant) ButtonOption {
	return func(b *RoundButton) {
		b.variant = v
	}
}

// WithStyle overrides parts of the themed style. Properties the override
// leaves unset come from the variant style.
func WithStyle(s lipgloss.Style) ButtonOption {
	return func(b *RoundButton) {
		b.override = &s
	}
}

// NewRoundButton creates a button that calls onClick when clicked.
func NewRoundButton(onClick func(), label string, opts ...ButtonOption) RoundButton {
	b := RoundButton{label: label, onClick: onClick}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Variant returns the button's variant.
func (b RoundButton) Variant() Variant {
	return b.variant
}

// Label returns the button's label.
func (b RoundButton) Label() string {
	return b.label
}

// Click invokes the click callback.
func (b RoundButton) Click() {
	if b.onClick != nil {
		b.onClick()
	}
}

// Render draws the button, always ButtonWidth cells wide.
func (b RoundButton) Render(th *theme.Theme) string {
	style := b.variantStyle(th)
	if b.override != nil {
		style = b.override.Inherit(style)
	}
	label := ansi.Truncate(b.label, ButtonWidth-2, "")
	return style.
		Width(ButtonWidth).
		MaxWidth(ButtonWidth).
		Align(lipgloss.Center).
		Render(label)
}

func (b RoundButton) variantStyle(th *theme.Theme) lipgloss.Style {
	switch b.variant {
	case VariantWarning:
		return th.Styles.Warning
	case VariantError:
		return th.Styles.Error
	default:
		return th.Styles.Success
	}
}
