package skill

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatcherConfig configures the skill directory watcher.
type WatcherConfig struct {
	// Dir is the skills root directory to watch.
	Dir string

	// DebounceDelay is how long to wait for more changes before
	// emitting a path. Editors often write a file several times in
	// quick succession.
	DebounceDelay time.Duration

	// Logger for watch events.
	Logger *slog.Logger
}

// Watcher watches a skills directory and emits the paths of skill
// documents as they change.
type Watcher struct {
	config  WatcherConfig
	watcher *fsnotify.Watcher
	logger  *slog.Logger

	pendingMu sync.Mutex
	pending   map[string]struct{}

	changes chan string
}

// NewWatcher creates a watcher over the configured skills directory.
func NewWatcher(config WatcherConfig) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if config.DebounceDelay == 0 {
		config.DebounceDelay = 250 * time.Millisecond
	}

	return &Watcher{
		config:  config,
		watcher: fsw,
		logger:  logger,
		pending: make(map[string]struct{}),
		changes: make(chan string, 16),
	}, nil
}

// Changes returns the channel of changed skill document paths.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Start begins watching. Watches cover the skills root and each skill
// subdirectory; new skill directories are picked up as they appear.
func (w *Watcher) Start(ctx context.Context) error {
	if err := w.addWatches(); err != nil {
		return err
	}

	go w.processEvents(ctx)

	w.logger.Info("Skill watcher started",
		slog.String("dir", w.config.Dir),
		slog.Duration("debounce", w.config.DebounceDelay))

	return nil
}

// Stop stops the watcher. The changes channel is closed by the event
// goroutine on its way out, so no flush can send on a closed channel.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}

func (w *Watcher) addWatches() error {
	if err := w.watcher.Add(w.config.Dir); err != nil {
		return err
	}

	entries, err := os.ReadDir(w.config.Dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		path := filepath.Join(w.config.Dir, entry.Name())
		if err := w.watcher.Add(path); err != nil {
			w.logger.Warn("Failed to watch skill directory",
				slog.String("path", path),
				slog.String("error", err.Error()))
		}
	}
	return nil
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.changes)

	ticker := time.NewTicker(w.config.DebounceDelay)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFSEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", slog.String("error", err.Error()))

		case <-ticker.C:
			w.flushPending()
		}
	}
}

func (w *Watcher) handleFSEvent(event fsnotify.Event) {
	path := event.Name

	if filepath.Base(path) != DocumentFilename {
		// A new skill directory needs its own watch.
		if event.Has(fsnotify.Create) {
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				if err := w.watcher.Add(path); err != nil {
					w.logger.Warn("Failed to watch new directory",
						slog.String("path", path),
						slog.String("error", err.Error()))
				}
			}
		}
		return
	}

	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}

	w.pendingMu.Lock()
	w.pending[path] = struct{}{}
	w.pendingMu.Unlock()

	w.logger.Debug("Skill change detected", slog.String("path", path))
}

func (w *Watcher) flushPending() {
	w.pendingMu.Lock()
	paths := make([]string, 0, len(w.pending))
	for p := range w.pending {
		paths = append(paths, p)
	}
	w.pending = make(map[string]struct{})
	w.pendingMu.Unlock()

	for _, p := range paths {
		w.changes <- p
	}
}
