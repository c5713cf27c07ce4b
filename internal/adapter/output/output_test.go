package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/termdesk/internal/model"
)

func testWindows() []model.Window {
	now := time.Now()
	return []model.Window{
		{
			ID:        "01HZX0000000000000000000A1",
			Title:     "Test 2",
			Position:  model.Position{X: 4, Y: 3},
			Size:      model.Size{Width: 44, Height: 12},
			CreatedAt: now.Add(-2 * time.Hour).Unix(),
		},
		{
			ID:        "01HZX0000000000000000000B2",
			Title:     "Test 1",
			Position:  model.Position{X: -30, Y: 9},
			Size:      model.Size{Width: 1200, Height: 10},
			CreatedAt: now.Add(-2 * time.Hour).Unix(),
		},
	}
}

func TestNewFormatter(t *testing.T) {
	opts := DefaultFormatterOptions()
	assert.IsType(t, &PlainFormatter{}, NewFormatter(FormatPlain, opts))
	assert.IsType(t, &JSONFormatter{}, NewFormatter(FormatJSON, opts))
	assert.IsType(t, &YAMLFormatter{}, NewFormatter(FormatYAML, opts))
	assert.IsType(t, &IDsFormatter{}, NewFormatter(FormatIDs, opts))
	assert.IsType(t, &PlainFormatter{}, NewFormatter("bogus", opts))
}

func TestPlainFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	err := NewPlainFormatter(DefaultFormatterOptions()).Format(&buf, testWindows())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "[1] Test 2  (4,3)  44x12", lines[0])
	assert.Equal(t, "[2] Test 1  (-30,9)  1200x10", lines[1])
}

func TestPlainFormatter_Options(t *testing.T) {
	var buf bytes.Buffer
	f := NewPlainFormatter(FormatterOptions{ShowIndex: false, ShowAge: true})
	require.NoError(t, f.Format(&buf, testWindows()[:1]))

	assert.Equal(t, "Test 2  (4,3)  44x12  (2 hours ago)\n", buf.String())
}

func TestPlainFormatter_Template(t *testing.T) {
	var buf bytes.Buffer
	f := NewPlainFormatter(FormatterOptions{
		Template: `{{.Index}}:{{upper .Window.Title}}:{{comma .Window.Size.Width}}`,
	})
	require.NoError(t, f.Format(&buf, testWindows()))

	assert.Equal(t, "1:TEST 2:44\n2:TEST 1:1,200\n", buf.String())
}

func TestPlainFormatter_InvalidTemplateFallsBack(t *testing.T) {
	var buf bytes.Buffer
	f := NewPlainFormatter(FormatterOptions{Template: "{{.Broken"})
	require.NoError(t, f.Format(&buf, testWindows()[:1]))

	assert.Equal(t, "Test 2  (4,3)  44x12\n", buf.String())
}

func TestJSONFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().Format(&buf, testWindows()))

	var got []model.Window
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, testWindows()[1].Position, got[1].Position)
	assert.Contains(t, buf.String(), `"title": "Test 1"`)
}

func TestJSONFormatter_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter().Format(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestYAMLFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewYAMLFormatter().Format(&buf, testWindows()))

	var got []model.Window
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Test 2", got[0].Title)
	assert.Equal(t, model.Size{Width: 44, Height: 12}, got[0].Size)
}

func TestIDsFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewIDsFormatter().Format(&buf, testWindows()))
	assert.Equal(t, "01HZX0000000000000000000A1\n01HZX0000000000000000000B2\n", buf.String())
}
