package watcher

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"sonicwave/src/features/scanning"
)

// Watcher monitors the music path for changes and emits events after a
// debounce window so a batch of copied files triggers a single rescan.
type Watcher struct {
	watcher       *fsnotify.Watcher
	watchPath     string
	extensions    map[string]bool
	debounce      time.Duration
	debounceTimer *time.Timer
	debounceMutex sync.Mutex
	// stateMutex guards running; stopChan is closed at most once, with the
	// mutex held.
	stateMutex sync.Mutex
	running    bool
	stopChan   chan struct{}
	eventChan  chan<- scanning.FileEvent
}

// NewWatcher creates a new file system watcher
func NewWatcher(eventChan chan<- scanning.FileEvent, extensions []string, debounce time.Duration) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	allowed := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		allowed[ext] = true
	}

	return &Watcher{
		watcher:    fsWatcher,
		extensions: allowed,
		debounce:   debounce,
		eventChan:  eventChan,
		stopChan:   make(chan struct{}),
	}, nil
}

// Start begins watching the music path for file changes
func (w *Watcher) Start(ctx context.Context, watchPath string) error {
	w.watchPath = watchPath
	slog.Info("Starting file watcher", "path", watchPath)

	if err := w.watcher.Add(watchPath); err != nil {
		return err
	}

	w.stateMutex.Lock()
	w.running = true
	w.stateMutex.Unlock()
	go w.watchLoop(ctx)

	slog.Info("File watcher started successfully")
	return nil
}

// Stop stops the file watcher. Safe to call more than once.
func (w *Watcher) Stop() {
	w.stateMutex.Lock()
	if !w.running {
		w.stateMutex.Unlock()
		return
	}
	w.running = false
	close(w.stopChan)
	w.stateMutex.Unlock()

	slog.Info("Stopping file watcher")

	w.debounceMutex.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
		w.debounceTimer = nil
	}
	w.debounceMutex.Unlock()

	w.watcher.Close()
}

// watchLoop processes file system events
func (w *Watcher) watchLoop(ctx context.Context) {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("File watcher error", "error", err)

		case <-w.stopChan:
			return

		case <-ctx.Done():
			return
		}
	}
}

// handleEvent processes a single file system event
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}
	if !w.isSupportedFile(event.Name) {
		return
	}

	slog.Debug("Detected change in supported file", "file", event.Name, "op", event.Op.String())

	eventType := scanning.FileCreated
	if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
		eventType = scanning.FileRemoved
	}

	// Start or reset the debounce timer
	w.debounceMutex.Lock()
	defer w.debounceMutex.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}

	w.debounceTimer = time.AfterFunc(w.debounce, func() {
		w.emitDebounceEvent(eventType)
	})
}

// isSupportedFile checks if the file is a supported audio format
func (w *Watcher) isSupportedFile(filePath string) bool {
	ext := strings.ToLower(filepath.Ext(filePath))
	return w.extensions[ext]
}

// emitDebounceEvent emits a file event after the debounce period
func (w *Watcher) emitDebounceEvent(eventType scanning.FileEventType) {
	event := scanning.FileEvent{
		Path:      w.watchPath,
		EventType: eventType,
		Timestamp: time.Now(),
	}

	select {
	case w.eventChan <- event:
		slog.Info("Emitted file event after debounce", "path", event.Path, "type", event.EventType)
	default:
		slog.Warn("Event channel full, dropping file event", "path", event.Path)
	}
}
