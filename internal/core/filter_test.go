package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/termdesk/internal/model"
)

func testWindows() []model.Window {
	return []model.Window{
		{ID: "01AAA", Title: "Test 2", Position: model.Position{X: 4, Y: 3}, Size: model.Size{Width: 44, Height: 12}, CreatedAt: 300},
		{ID: "01AAB", Title: "Test 1", Position: model.Position{X: -30, Y: 9}, Size: model.Size{Width: 40, Height: 10}, CreatedAt: 100},
		{ID: "01BCC", Title: "notes", Position: model.Position{X: 60, Y: 1}, Size: model.Size{Width: 20, Height: 30}, CreatedAt: 200},
	}
}

func titles(windows []model.Window) []string {
	out := make([]string, 0, len(windows))
	for _, w := range windows {
		out = append(out, w.Title)
	}
	return out
}

func TestParseFilter(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		want    []string
		wantErr bool
	}{
		{"empty", "", []string{"Test 2", "Test 1", "notes"}, false},
		{"title exact", "title=Test 1", []string{"Test 1"}, false},
		{"title not equal", "title!=Test 1", []string{"Test 2", "notes"}, false},
		{"title contains ignores case", "title~TEST", []string{"Test 2", "Test 1"}, false},
		{"title regex", `name~=^[a-z]+$`, []string{"notes"}, false},
		{"negative x", "x<0", []string{"Test 1"}, false},
		{"width at least", "width>=40", []string{"Test 2", "Test 1"}, false},
		{"short alias", "h>10", []string{"Test 2", "notes"}, false},
		{"area", "area<=400", []string{"Test 1"}, false},
		{"and", "width>=40,y>5", []string{"Test 1"}, false},
		{"id", "id~bcc", []string{"notes"}, false},
		{"blank parts skipped", "x>0, ,", []string{"Test 2", "notes"}, false},
		{"unknown field", "colour=red", nil, true},
		{"missing operator", "title", nil, true},
		{"non numeric", "x=left", nil, true},
		{"contains on number", "x~4", nil, true},
		{"bad regex", "title~=(", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := ParseFilter(tt.expr)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidFilter)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, titles(Filter(testWindows(), expr, 0)))
		})
	}
}

func TestFilter_Limit(t *testing.T) {
	got := Filter(testWindows(), nil, 2)
	assert.Equal(t, []string{"Test 2", "Test 1"}, titles(got))

	got = Filter(testWindows(), nil, 10)
	assert.Len(t, got, 3)
}
