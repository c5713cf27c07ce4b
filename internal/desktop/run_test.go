package desktop

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmylchreest/termdesk/internal/config"
	"github.com/jmylchreest/termdesk/internal/theme"
)

// Run with -race: rendering must never read a theme the watcher writes.
func TestWatchTheme_RenderDuringReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mine.toml")
	writeTheme := func(i int) {
		data := fmt.Sprintf("[palette]\nsuccess = \"#%06x\"\n", 0x100000+i)
		require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	}
	writeTheme(0)

	th, err := theme.NewTheme("mine", path)
	require.NoError(t, err)

	m, err := New(config.DefaultConfig(), th, nil)
	require.NoError(t, err)
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	var mu sync.Mutex
	var msgs []tea.Msg
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	watcher, err := watchTheme(ctx, th, nil, func(msg tea.Msg) {
		mu.Lock()
		msgs = append(msgs, msg)
		mu.Unlock()
	})
	require.NoError(t, err)
	defer watcher.Stop()

	for i := 1; i <= 20; i++ {
		writeTheme(i)
		_ = m.View()
	}

	assert.Eventually(t, func() bool {
		return watcher.Current().Palette.Success == "#100014"
	}, 2*time.Second, 20*time.Millisecond)
	assert.Equal(t, "#100000", th.Palette.Success, "theme held by the model is never modified")

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		if len(msgs) == 0 {
			return false
		}
		last, ok := msgs[len(msgs)-1].(themeChangedMsg)
		if !ok || last.theme.Palette.Success != "#100014" {
			return false
		}
		return true
	}, 2*time.Second, 20*time.Millisecond)

	mu.Lock()
	pending := append([]tea.Msg(nil), msgs...)
	mu.Unlock()

	for _, msg := range pending {
		m = update(t, m, msg)
	}
	assert.Equal(t, "#100014", m.theme.Palette.Success)
	assert.NotEmpty(t, m.View())
}
