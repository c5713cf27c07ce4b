// Package layout composes rendered components onto a fixed-size cell grid.
package layout

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Canvas is a width x height grid of terminal cells. Blocks drawn later
// cover earlier ones.
type Canvas struct {
	width  int
	height int
	rows   []string
}

// NewCanvas creates a blank canvas.
func NewCanvas(width, height int) *Canvas {
	width = max(width, 0)
	height = max(height, 0)

	rows := make([]string, height)
	blank := strings.Repeat(" ", width)
	for i := range rows {
		rows[i] = blank
	}
	return &Canvas{width: width, height: height, rows: rows}
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in rows.
func (c *Canvas) Height() int { return c.height }

// Draw overlays a multi-line, possibly styled, block with its top-left
// corner at (x, y). Anything outside the canvas is clipped, so x and y may
// be negative or past the edges.
func (c *Canvas) Draw(x, y int, block string) {
	if block == "" {
		return
	}

	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 {
			continue
		}
		if row >= c.height {
			break
		}
		c.rows[row] = overlay(c.rows[row], c.width, x, line)
	}
}

// overlay replaces the cells of row starting at column x with line.
func overlay(row string, width, x int, line string) string {
	lineWidth := ansi.StringWidth(line)
	if lineWidth == 0 || x >= width || x+lineWidth <= 0 {
		return row
	}

	if x < 0 {
		line = ansi.TruncateLeft(line, -x, "")
		lineWidth += x
		x = 0
	}
	if x+lineWidth > width {
		line = ansi.Truncate(line, width-x, "")
		lineWidth = width - x
	}

	var b strings.Builder
	b.WriteString(sealed(ansi.Cut(row, 0, x)))
	b.WriteString(sealed(line))
	b.WriteString(ansi.Cut(row, x+lineWidth, width))
	return b.String()
}

// sealed terminates any styling s leaves open so it cannot bleed into the
// next piece.
func sealed(s string) string {
	if !strings.Contains(s, "\x1b") {
		return s
	}
	return s + ansi.ResetStyle
}

// String returns the canvas rows joined by newlines.
func (c *Canvas) String() string {
	return strings.Join(c.rows, "\n")
}
