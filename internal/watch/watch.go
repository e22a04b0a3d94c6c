// Package watch re-runs a callback when files under a directory tree change.
// Bursts of events are coalesced: the callback fires once the tree has been
// quiet for the debounce window.
package watch

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is the quiet period before the callback fires.
const DefaultDebounce = 500 * time.Millisecond

// Func is invoked from the watcher goroutine; it is never called concurrently
// with itself.
type Func func(ctx context.Context)

// Stats counts watcher activity.
type Stats struct {
	Events    int
	Triggers  int
	Errors    int
	LastEvent string
}

// Watcher watches root recursively. New directories are added as they appear.
type Watcher struct {
	mu       sync.Mutex
	fsw      *fsnotify.Watcher
	root     string
	debounce time.Duration
	onChange Func
	logger   *zap.Logger
	ignore   map[string]struct{}

	dirty   bool
	lastEvt time.Time
	stats   Stats

	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period; non-positive values keep the default.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger; nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithIgnore drops events for the given paths, typically the report and plot
// the callback itself writes, and for the hidden ".<name>.*" temporaries an
// atomic writer creates next to them.
func WithIgnore(paths ...string) Option {
	return func(w *Watcher) {
		for _, p := range paths {
			if abs, err := filepath.Abs(p); err == nil {
				w.ignore[abs] = struct{}{}
			}
		}
	}
}

// New creates a stopped watcher over root.
func New(root string, onChange Func, opts ...Option) (*Watcher, error) {
	if onChange == nil {
		return nil, errors.New("watch: nil callback")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fsw:      fsw,
		root:     abs,
		debounce: DefaultDebounce,
		onChange: onChange,
		logger:   zap.NewNop(),
		ignore:   make(map[string]struct{}),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	return w, nil
}

// Start adds root and every directory below it, then runs the event loop in a
// goroutine until ctx is done or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	if err := w.addTree(w.root); err != nil {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
		return err
	}
	w.logger.Info("watching", zap.String("root", w.root), zap.Duration("debounce", w.debounce))

	go w.run(ctx)

	return nil
}

// Stop ends the event loop, waits for it and releases the fsnotify handle.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		_ = w.fsw.Close()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.fsw.Close(); err != nil {
		w.logger.Error("closing watcher", zap.Error(err))
	}
}

// Stats returns a snapshot of the counters.
func (w *Watcher) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.stats
}

// WatchedDirs lists the directories currently registered.
func (w *Watcher) WatchedDirs() []string { return w.fsw.WatchList() }

func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			w.logger.Warn("skipping unreadable directory", zap.String("path", path), zap.Error(err))
			return fs.SkipDir
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.fsw.Add(path); err != nil {
			return err
		}
		w.logger.Debug("watch added", zap.String("path", path))

		return nil
	})
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	tick := w.debounce / 5
	if tick < 10*time.Millisecond {
		tick = 10 * time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case evt, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(evt)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", zap.Error(err))
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()
		case <-ticker.C:
			if w.settled() {
				w.logger.Debug("change settled, re-running")
				w.onChange(ctx)
			}
		}
	}
}

func (w *Watcher) handle(evt fsnotify.Event) {
	if evt.Op == fsnotify.Chmod {
		return
	}
	if w.ignored(evt.Name) {
		return
	}
	if evt.Has(fsnotify.Create) {
		if info, err := os.Stat(evt.Name); err == nil && info.IsDir() {
			if err := w.addTree(evt.Name); err != nil {
				w.logger.Warn("watch add failed", zap.String("path", evt.Name), zap.Error(err))
			}
		}
	}
	w.logger.Debug("file event", zap.String("path", evt.Name), zap.Stringer("op", evt.Op))

	w.mu.Lock()
	w.dirty = true
	w.lastEvt = time.Now()
	w.stats.Events++
	w.stats.LastEvent = evt.Name
	w.mu.Unlock()
}

func (w *Watcher) ignored(name string) bool {
	if _, ok := w.ignore[name]; ok {
		return true
	}
	dir, base := filepath.Split(name)
	for p := range w.ignore {
		pdir, pbase := filepath.Split(p)
		if dir == pdir && strings.HasPrefix(base, "."+pbase+".") {
			return true
		}
	}

	return false
}

// settled reports, and consumes, a pending change older than the debounce window.
func (w *Watcher) settled() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.dirty || time.Since(w.lastEvt) < w.debounce {
		return false
	}
	w.dirty = false
	w.stats.Triggers++

	return true
}
