// Package pointer carries pointer input from the host surface to the
// components that subscribe to it.
package pointer

import (
	"fmt"

	"github.com/jmylchreest/termdesk/internal/model"
)

// Kind identifies the type of pointer event.
type Kind int

const (
	// Down is a button press.
	Down Kind = iota
	// Up is a button release.
	Up
	// Move is pointer motion, with or without a button held.
	Move
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case Down:
		return "down"
	case Up:
		return "up"
	case Move:
		return "move"
	default:
		return "unknown"
	}
}

// Button identifies which button an event refers to.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// Event is a raw pointer event in surface coordinates.
type Event struct {
	Kind     Kind
	Position model.Position
	Button   Button
}

func (e Event) String() string {
	return fmt.Sprintf("%s@%s", e.Kind, e.Position)
}

// At is a shorthand for building events in surface coordinates.
func At(kind Kind, x, y int) Event {
	return Event{Kind: kind, Position: model.Position{X: x, Y: y}, Button: ButtonLeft}
}
