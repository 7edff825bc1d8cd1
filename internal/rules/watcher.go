package rules

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchEvent describes a source file that changed on disk.
type WatchEvent struct {
	Path string
}

// Watcher monitors files and directories for C source changes.
type Watcher struct {
	logger *slog.Logger
	Ready  chan struct{}

	newWatcher func() (*fsnotify.Watcher, error)
}

// NewWatcher creates a Watcher. Ready is closed once all roots are being
// monitored.
func NewWatcher(logger *slog.Logger) *Watcher {
	return &Watcher{
		logger:     logger.With("component", "watcher"),
		Ready:      make(chan struct{}),
		newWatcher: fsnotify.NewWatcher,
	}
}

// Watch monitors the given roots and calls callback for every changed C
// source file, debounced. It blocks until the context is cancelled.
func (w *Watcher) Watch(ctx context.Context, roots []string, callback func(WatchEvent)) error {
	watcher, err := w.newWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	for _, root := range roots {
		if err := w.addRecursive(watcher, root); err != nil {
			return err
		}
	}

	w.logger.Info("Watching for changes", "roots", roots)
	if w.Ready != nil {
		close(w.Ready)
	}

	var timer *time.Timer
	const debounceDuration = 100 * time.Millisecond
	var pendingEvent *WatchEvent

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-watcher.Errors:
			w.logger.Error("Watcher error", "error", err)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev := w.handleEvent(watcher, event); ev != nil {
				if timer != nil {
					timer.Stop()
				}
				pendingEvent = ev
				timer = time.AfterFunc(debounceDuration, func() {
					callback(*pendingEvent)
				})
			}
		}
	}
}

// handleEvent processes a single fsnotify event. A newly created directory is
// added to the watch set; a write or create on a C source file becomes a
// WatchEvent.
func (w *Watcher) handleEvent(watcher *fsnotify.Watcher, event fsnotify.Event) *WatchEvent {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return nil
	}

	if event.Has(fsnotify.Create) {
		info, err := os.Stat(event.Name)
		if err == nil && info.IsDir() {
			if err := w.addRecursive(watcher, event.Name); err != nil {
				w.logger.Error("Failed to watch new directory", "path", event.Name, "error", err)
			}
			return nil
		}
	}

	if IsSourceFile(event.Name) {
		return &WatchEvent{Path: event.Name}
	}
	return nil
}

// addRecursive adds root and, when root is a directory, all its
// subdirectories to the watcher.
func (w *Watcher) addRecursive(watcher *fsnotify.Watcher, root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		// Watch the parent so editor save-via-rename still produces events.
		return watcher.Add(filepath.Dir(root))
	}
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if strings.HasPrefix(filepath.Base(path), ".") && path != root {
				return filepath.SkipDir
			}
			return watcher.Add(path)
		}
		return nil
	})
}

// IsSourceFile reports whether path names a C source or header file.
func IsSourceFile(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".c" || ext == ".h"
}
