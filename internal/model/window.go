// Package model defines the core data structures for termdesk.
package model

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/oklog/ulid/v2"
)

// Window defaults used when the caller supplies no geometry.
var (
	DefaultPosition = Position{X: 200, Y: 200}
	DefaultSize     = Size{Width: 400, Height: 400}
)

// Window is the record behind one application window.
type Window struct {
	ID        string   `json:"id" yaml:"id"`
	Title     string   `json:"title" yaml:"title"`
	Position  Position `json:"position" yaml:"position"`
	Size      Size     `json:"size" yaml:"size"`
	CreatedAt int64    `json:"created_at" yaml:"created_at"`
}

// NewWindow creates a Window with a generated ULID at the default geometry.
func NewWindow(title string) (*Window, error) {
	id, err := ulid.New(ulid.Timestamp(time.Now()), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("failed to generate ULID: %w", err)
	}

	return &Window{
		ID:        id.String(),
		Title:     title,
		Position:  DefaultPosition,
		Size:      DefaultSize,
		CreatedAt: time.Now().Unix(),
	}, nil
}

// SetTitle changes the display name.
func (w *Window) SetTitle(title string) {
	w.Title = title
}

// Bounds returns the area the window covers.
func (w *Window) Bounds() Rect {
	return Rect{Position: w.Position, Size: w.Size}
}

// CreatedAtTime returns the creation timestamp as a time.Time.
func (w *Window) CreatedAtTime() time.Time {
	return time.Unix(w.CreatedAt, 0)
}

// Age returns a human-readable age, e.g. "3 minutes ago".
func (w *Window) Age() string {
	return humanize.Time(w.CreatedAtTime())
}
