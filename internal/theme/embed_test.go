package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEmbeddedTheme_Default(t *testing.T) {
	data, found := GetEmbeddedTheme("default")
	require.True(t, found, "default theme should be found")
	assert.Contains(t, string(data), "[palette]")
	assert.Contains(t, string(data), "title_bar_bg")
}

func TestGetEmbeddedTheme_NotFound(t *testing.T) {
	data, found := GetEmbeddedTheme("nonexistent")
	assert.False(t, found)
	assert.Empty(t, data)
}

func TestListEmbeddedThemes(t *testing.T) {
	themes := ListEmbeddedThemes()

	assert.GreaterOrEqual(t, len(themes), 3)
	for _, name := range BundledThemes {
		assert.Contains(t, themes, name)
	}
}

func TestBundledThemes_Parse(t *testing.T) {
	for _, name := range BundledThemes {
		t.Run(name, func(t *testing.T) {
			th, err := NewBundledTheme(name)
			require.NoError(t, err)
			assert.Equal(t, name, th.Name)
			assert.NoError(t, th.Palette.Validate())
			assert.Equal(t, name == DefaultThemeName, th.IsDefault)
		})
	}
}

func TestIsEmbeddedTheme(t *testing.T) {
	assert.True(t, IsEmbeddedTheme("light"))
	assert.False(t, IsEmbeddedTheme("nope"))
}
