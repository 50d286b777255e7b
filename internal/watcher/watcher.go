package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/goliatone/go-garden/internal/logging"
	"github.com/goliatone/go-garden/pkg/interfaces"
)

// ErrAlreadyRunning indicates Start was called on a running watcher.
var ErrAlreadyRunning = errors.New("watcher: already running")

// ErrNoDirectories indicates the watcher has nothing to observe.
var ErrNoDirectories = errors.New("watcher: at least one directory is required")

const defaultDebounce = 300 * time.Millisecond

// RebuildFunc is invoked after filesystem changes settle past the debounce window.
type RebuildFunc func(ctx context.Context, paths []string) error

// Config controls which paths trigger rebuilds.
type Config struct {
	// Dirs lists directories to watch. Each directory is walked so nested
	// content folders are observed too; fsnotify itself is not recursive.
	Dirs []string
	// Extensions filters events by file suffix (e.g. ".md", ".html").
	// Empty means every file change triggers a rebuild.
	Extensions []string
	Debounce   time.Duration
}

// Option configures optional watcher collaborators.
type Option func(*Watcher)

// WithLogger injects the logger used for watch events.
func WithLogger(logger interfaces.Logger) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// Watcher observes content and template directories and triggers debounced
// rebuilds of the site.
type Watcher struct {
	mu       sync.Mutex
	cfg      Config
	rebuild  RebuildFunc
	logger   interfaces.Logger
	notifier *fsnotify.Watcher
	pending  map[string]time.Time
	running  bool
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// New constructs a watcher for the configured directories. The rebuild
// callback is required; it receives the settled set of changed paths.
func New(cfg Config, rebuild RebuildFunc, opts ...Option) (*Watcher, error) {
	if rebuild == nil {
		return nil, errors.New("watcher: rebuild callback is required")
	}
	if len(cfg.Dirs) == 0 {
		return nil, ErrNoDirectories
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = defaultDebounce
	}

	w := &Watcher{
		cfg:     cfg,
		rebuild: rebuild,
		logger:  logging.NoOp(),
		pending: map[string]time.Time{},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Start begins watching in a background goroutine. It is non-blocking; use
// Stop or cancel the context to shut down.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return ErrAlreadyRunning
	}

	notifier, err := fsnotify.NewWatcher()
	if err != nil {
		w.mu.Unlock()
		return err
	}
	w.notifier = notifier
	w.running = true
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	w.mu.Unlock()

	watched := 0
	for _, dir := range w.cfg.Dirs {
		for _, sub := range collectDirs(dir) {
			if err := notifier.Add(sub); err != nil {
				w.logger.Warn("watcher.add.failed", "dir", sub, "error", err)
				continue
			}
			watched++
		}
	}
	w.logger.Info("watcher.started", "directories", watched, "debounce_ms", w.cfg.Debounce.Milliseconds())

	go w.run(ctx)
	return nil
}

// Stop terminates the watch loop and releases the underlying notifier.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	stopCh := w.stopCh
	doneCh := w.doneCh
	notifier := w.notifier
	w.mu.Unlock()

	close(stopCh)
	<-doneCh

	if err := notifier.Close(); err != nil {
		w.logger.Error("watcher.close.failed", "error", err)
	}
	w.logger.Info("watcher.stopped")
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.cfg.Debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.notifier.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.notifier.Errors:
			if !ok {
				return
			}
			w.logger.Error("watcher.event.error", "error", err)
		case <-ticker.C:
			w.flush(ctx)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}
	if !w.matches(event.Name) {
		return
	}

	// New directories need to be added to the notifier so nested files
	// created later are observed.
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.notifier.Add(event.Name); err != nil {
				w.logger.Warn("watcher.add.failed", "dir", event.Name, "error", err)
			}
			return
		}
	}

	w.logger.Debug("watcher.event", "path", event.Name, "op", event.Op.String())

	w.mu.Lock()
	w.pending[event.Name] = time.Now()
	w.mu.Unlock()
}

func (w *Watcher) flush(ctx context.Context) {
	w.mu.Lock()
	now := time.Now()
	settled := make([]string, 0, len(w.pending))
	for path, at := range w.pending {
		if now.Sub(at) >= w.cfg.Debounce {
			settled = append(settled, path)
			delete(w.pending, path)
		}
	}
	w.mu.Unlock()

	if len(settled) == 0 {
		return
	}

	w.logger.Info("watcher.rebuild", "changed", len(settled))
	if err := w.rebuild(ctx, settled); err != nil {
		w.logger.Error("watcher.rebuild.failed", "error", err)
	}
}

func (w *Watcher) matches(path string) bool {
	if len(w.cfg.Extensions) == 0 {
		return true
	}
	// Directories carry no extension but still matter for Create events.
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return true
	}
	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range w.cfg.Extensions {
		if ext == strings.ToLower(allowed) {
			return true
		}
	}
	return false
}

func collectDirs(root string) []string {
	var dirs []string
	filepath.WalkDir(root, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if entry.IsDir() {
			if strings.HasPrefix(entry.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			dirs = append(dirs, path)
		}
		return nil
	})
	if len(dirs) == 0 {
		dirs = append(dirs, root)
	}
	return dirs
}
