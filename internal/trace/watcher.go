package trace

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher re-reads a scanpath trace file whenever it changes, so a trace can
// be re-analyzed live while it is being recorded or edited. It uses fsnotify
// for change detection with a periodic poll as backup for missed events.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	mu      sync.Mutex
	closed  bool
}

// NewWatcher creates a Watcher for the given trace file. The file must
// already exist.
func NewWatcher(path string) (*Watcher, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("trace file: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	return &Watcher{path: path, watcher: fw}, nil
}

// Watch streams the file's contents: once immediately, then again after
// every change. Unchanged re-reads are suppressed. The channel is closed
// when the context is cancelled or Close is called.
func (w *Watcher) Watch(ctx context.Context) (<-chan string, error) {
	// Watch the parent directory so editor save-via-rename is still seen.
	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return nil, fmt.Errorf("watching trace directory: %w", err)
	}

	contents := make(chan string, 1)
	go w.watchLoop(ctx, contents)
	return contents, nil
}

func (w *Watcher) watchLoop(ctx context.Context, contents chan<- string) {
	defer close(contents)

	var last string
	seeded := false

	// emit reads the file and sends its contents when they changed.
	// Returns false when the loop should stop.
	emit := func() bool {
		data, err := os.ReadFile(w.path)
		if err != nil {
			// File may be mid-rename; the next event or tick retries.
			return true
		}
		text := string(data)
		if seeded && text == last {
			return true
		}
		select {
		case <-ctx.Done():
			return false
		case contents <- text:
			last, seeded = text, true
			return true
		}
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(200 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case event, open := <-w.watcher.Events:
			if !open {
				return
			}
			if event.Name != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				if !emit() {
					return
				}
			}
		case <-ticker.C:
			if !emit() {
				return
			}
		case _, open := <-w.watcher.Errors:
			if !open {
				return
			}
			// Keep going; the poll ticker covers missed events.
		}
	}
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	return w.watcher.Close()
}

// Path returns the watched file path.
func (w *Watcher) Path() string {
	return w.path
}
