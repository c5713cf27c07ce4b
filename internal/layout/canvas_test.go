package layout

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rows(c *Canvas) []string {
	return strings.Split(ansi.Strip(c.String()), "\n")
}

func TestNewCanvas(t *testing.T) {
	c := NewCanvas(4, 2)
	assert.Equal(t, 4, c.Width())
	assert.Equal(t, 2, c.Height())
	assert.Equal(t, "    \n    ", c.String())

	empty := NewCanvas(-1, -1)
	assert.Equal(t, 0, empty.Width())
	assert.Equal(t, "", empty.String())
}

func TestCanvas_Draw(t *testing.T) {
	tests := []struct {
		name  string
		x, y  int
		block string
		want  []string
	}{
		{"inside", 1, 1, "ab\ncd", []string{"......", ".ab...", ".cd...", "......"}},
		{"left edge", -1, 0, "abc", []string{"bc....", "......", "......", "......"}},
		{"right edge", 4, 3, "abc", []string{"......", "......", "......", "....ab"}},
		{"top edge", 0, -1, "ab\ncd", []string{"cd....", "......", "......", "......"}},
		{"bottom edge", 0, 3, "ab\ncd", []string{"......", "......", "......", "ab...."}},
		{"fully off left", -5, 0, "abc", []string{"......", "......", "......", "......"}},
		{"fully off right", 6, 0, "abc", []string{"......", "......", "......", "......"}},
		{"fully off bottom", 0, 4, "abc", []string{"......", "......", "......", "......"}},
		{"wider than canvas", -1, 2, "abcdefgh", []string{"......", "......", "bcdefg", "......"}},
		{"empty", 0, 0, "", []string{"......", "......", "......", "......"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(6, 4)
			c.Draw(0, 0, strings.Repeat("......\n", 3)+"......")
			c.Draw(tt.x, tt.y, tt.block)
			assert.Equal(t, tt.want, rows(c))
		})
	}
}

func TestCanvas_LaterDrawsCover(t *testing.T) {
	c := NewCanvas(5, 1)
	c.Draw(0, 0, "aaaa")
	c.Draw(2, 0, "bbb")
	assert.Equal(t, []string{"aabbb"}, rows(c))
}

func TestCanvas_StyledBlocksKeepWidth(t *testing.T) {
	style := lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("4"))
	c := NewCanvas(10, 2)
	c.Draw(0, 0, style.Render(strings.Repeat("x", 10)))
	c.Draw(3, 0, style.Render("yy"))
	c.Draw(-2, 1, style.Render("zzzz"))

	for _, line := range strings.Split(c.String(), "\n") {
		assert.Equal(t, 10, ansi.StringWidth(line))
	}
	got := rows(c)
	require.Len(t, got, 2)
	assert.Equal(t, "xxxyyxxxxx", got[0])
	assert.Equal(t, "zz        ", got[1])
}

func TestSealed(t *testing.T) {
	assert.Equal(t, "plain", sealed("plain"))
	assert.Equal(t, "\x1b[1mbold"+ansi.ResetStyle, sealed("\x1b[1mbold"))
}
