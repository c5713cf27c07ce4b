package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupByIndex(t *testing.T) {
	windows := testWindows()

	w := LookupByIndex(windows, 1)
	require.NotNil(t, w)
	assert.Equal(t, "Test 2", w.Title)

	assert.Nil(t, LookupByIndex(windows, 0))
	assert.Nil(t, LookupByIndex(windows, 4))
}

func TestSearch(t *testing.T) {
	windows := testWindows()

	assert.Equal(t, []string{"Test 2", "Test 1"}, titles(Search(windows, "test")))
	assert.Equal(t, []string{"notes"}, titles(Search(windows, "NOT")))
	assert.Len(t, Search(windows, ""), 3)
	assert.Empty(t, Search(windows, "xyz"))
}
