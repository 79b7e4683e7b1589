package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Change reports that a watched file was written or replaced
type Change struct {
	Path string
	Time time.Time
}

// Watcher delivers debounced change notifications for a set of files.
// Parent directories are watched so files replaced by editors keep being tracked.
type Watcher struct {
	fs       *fsnotify.Watcher
	debounce time.Duration
	changes  chan Change
	onError  func(error)

	mu     sync.Mutex
	files  map[string]struct{}
	dirs   map[string]struct{}
	timers map[string]*time.Timer
}

// Option configures a Watcher
type Option func(*Watcher)

// WithErrorHandler receives errors reported by the file system
func WithErrorHandler(fn func(error)) Option {
	return func(w *Watcher) {
		w.onError = fn
	}
}

// New creates a watcher that waits for debounce of quiet before reporting a change
func New(debounce time.Duration, opts ...Option) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	w := &Watcher{
		fs:       fs,
		debounce: debounce,
		changes:  make(chan Change, 8),
		onError:  func(error) {},
		files:    make(map[string]struct{}),
		dirs:     make(map[string]struct{}),
		timers:   make(map[string]*time.Timer),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Add starts watching the given files
func (w *Watcher) Add(files ...string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, file := range files {
		absPath, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}
		if _, err := os.Stat(absPath); err != nil {
			return fmt.Errorf("failed to watch %s: %w", absPath, err)
		}

		dir := filepath.Dir(absPath)
		if _, ok := w.dirs[dir]; !ok {
			if err := w.fs.Add(dir); err != nil {
				return fmt.Errorf("failed to watch %s: %w", dir, err)
			}
			w.dirs[dir] = struct{}{}
		}
		w.files[absPath] = struct{}{}
	}

	return nil
}

// Changes returns the channel change notifications are sent on.
// Notifications are dropped while the channel is full.
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

// Run processes file system events until ctx is done or the watcher is closed
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				w.schedule(event.Name)
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			w.onError(err)
		}
	}
}

// schedule restarts the debounce timer of a watched file
func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.files[path]; !ok {
		return
	}

	if timer, ok := w.timers[path]; ok {
		timer.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		select {
		case w.changes <- Change{Path: path, Time: time.Now()}:
		default:
		}
	})
}

// Close stops watching and cancels pending notifications
func (w *Watcher) Close() error {
	w.mu.Lock()
	for _, timer := range w.timers {
		timer.Stop()
	}
	w.timers = make(map[string]*time.Timer)
	w.mu.Unlock()

	return w.fs.Close()
}
