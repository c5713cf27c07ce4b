package theme

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches a user theme file for changes and triggers hot-reload.
type Watcher struct {
	mu     sync.RWMutex
	logger *slog.Logger

	// Theme being watched
	theme *Theme

	watcher *fsnotify.Watcher

	// Callback for changes
	onChangeCallback func(t *Theme)

	doneCh  chan struct{}
	running bool
}

// NewWatcher creates a new theme watcher.
func NewWatcher(theme *Theme, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}

	return &Watcher{
		logger: logger,
		theme:  theme,
	}
}

// SetChangeCallback sets the callback to invoke when the theme changes.
// The callback receives the newly loaded theme.
func (w *Watcher) SetChangeCallback(callback func(t *Theme)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChangeCallback = callback
}

// Start begins watching the theme file for changes. Bundled themes have
// no file and are not watched.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}

	if w.theme == nil || w.theme.Path == "" {
		w.mu.Unlock()
		w.logger.Debug("not watching bundled theme")
		return nil
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		w.mu.Unlock()
		return err
	}

	// Watch the directory containing the file (more reliable for editors
	// that replace files on save)
	if err := fw.Add(filepath.Dir(w.theme.Path)); err != nil {
		fw.Close()
		w.mu.Unlock()
		return err
	}

	w.watcher = fw
	w.running = true
	w.doneCh = make(chan struct{})
	path := w.theme.Path
	w.mu.Unlock()

	go w.watchLoop(ctx, fw, path)

	w.logger.Debug("theme watcher started", "path", path)
	return nil
}

// Stop stops watching the theme file.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	fw := w.watcher
	done := w.doneCh
	w.mu.Unlock()

	fw.Close()
	<-done
	w.logger.Debug("theme watcher stopped")
}

// IsRunning returns whether the watcher is currently running.
func (w *Watcher) IsRunning() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.running
}

func (w *Watcher) watchLoop(ctx context.Context, fw *fsnotify.Watcher, path string) {
	defer close(w.doneCh)

	filename := filepath.Base(path)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filename {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.checkForChanges()
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("theme watcher error", "error", err)
		}
	}
}

// checkForChanges reloads the theme and notifies the callback when the
// palette actually changed. The watched theme is replaced, never modified,
// so a theme already handed out stays safe to read.
func (w *Watcher) checkForChanges() {
	w.mu.Lock()
	current := w.theme
	callback := w.onChangeCallback
	fresh, changed, err := current.Reload()
	if err == nil && changed {
		w.theme = fresh
	}
	w.mu.Unlock()

	if err != nil {
		w.logger.Warn("failed to reload theme", "path", current.Path, "error", err)
		return
	}

	if changed {
		w.logger.Info("theme file changed, reloading", "path", current.Path)
		if callback != nil {
			callback(fresh)
		}
	}
}

// Current returns the most recently loaded theme.
func (w *Watcher) Current() *Theme {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.theme
}
