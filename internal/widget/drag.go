package widget

import (
	"github.com/jmylchreest/termdesk/internal/model"
	"github.com/jmylchreest/termdesk/internal/pointer"
)

// DragState is either Idle or Dragging.
type DragState interface {
	dragState()
}

// Idle means no drag session is active.
type Idle struct{}

// Dragging means a drag session is active. Offset is the vector from the
// window's top-left corner to the pointer, captured at drag start.
type Dragging struct {
	Offset model.Offset
}

func (Idle) dragState()     {}
func (Dragging) dragState() {}

// dragSession is the live state behind Dragging: the captured offset and
// the surface subscriptions held for the duration of the drag.
type dragSession struct {
	offset model.Offset
	move   *pointer.Subscription
	up     *pointer.Subscription
}

func (s *dragSession) release() {
	s.move.Cancel()
	s.up.Cancel()
}
