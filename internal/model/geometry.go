package model

import "fmt"

// Position is the top-left corner of something on the desktop surface,
// in cells relative to the surface origin. Coordinates may be negative.
type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Size is the extent of a window in cells.
type Size struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// Offset is a vector between two positions.
type Offset struct {
	DX int `json:"dx" yaml:"dx"`
	DY int `json:"dy" yaml:"dy"`
}

// Sub returns the vector from q to p.
func (p Position) Sub(q Position) Offset {
	return Offset{DX: p.X - q.X, DY: p.Y - q.Y}
}

// Add translates p by o.
func (p Position) Add(o Offset) Position {
	return Position{X: p.X + o.DX, Y: p.Y + o.DY}
}

// Minus translates p by the inverse of o.
func (p Position) Minus(o Offset) Position {
	return Position{X: p.X - o.DX, Y: p.Y - o.DY}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

func (o Offset) String() string {
	return fmt.Sprintf("(%+d,%+d)", o.DX, o.DY)
}

// Rect is a positioned, sized area.
type Rect struct {
	Position
	Size
}

// Contains reports whether p lies inside r. Empty rects contain nothing.
func (r Rect) Contains(p Position) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}
