package scan

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/teranos/propdrift/errors"
	"github.com/teranos/propdrift/logger"
)

// RescanCallback receives the result of each completed re-scan.
type RescanCallback func(*Result)

// Watcher re-runs a scan whenever a TypeScript source under the root
// changes. Rapid editor save bursts are debounced into a single scan.
type Watcher struct {
	opts    Options
	watcher *fsnotify.Watcher
	log     *zap.SugaredLogger

	mu            sync.Mutex
	callbacks     []RescanCallback
	debounceTimer *time.Timer

	debouncePeriod time.Duration
}

// NewWatcher creates a watcher over every directory under the scan root.
// fsnotify does not watch recursively, so directories are registered one by
// one; directories created later are picked up when events arrive for them.
func NewWatcher(opts Options) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	w := &Watcher{
		opts:           opts,
		watcher:        fsw,
		log:            logger.ComponentLogger("scan.watcher"),
		debouncePeriod: 500 * time.Millisecond,
	}

	if err := w.addDirectories(opts.Root); err != nil {
		fsw.Close()
		return nil, err
	}
	return w, nil
}

func (w *Watcher) addDirectories(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.IsDir() {
			return nil
		}
		if d.Name() == "node_modules" || strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			return errors.Wrapf(err, "failed to watch %s", path)
		}
		return nil
	})
}

// SetDebounce overrides the delay between a source change and the rescan.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if d > 0 {
		w.debouncePeriod = d
	}
}

// OnRescan registers a callback invoked after every completed re-scan.
func (w *Watcher) OnRescan(callback RescanCallback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// Start watches until the context is cancelled.
func (w *Watcher) Start(ctx context.Context) {
	go w.watchLoop(ctx)
}

func (w *Watcher) watchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if event.Op&fsnotify.Create != 0 {
				// A new directory needs its own watch; errors here only
				// mean we miss events below it.
				if err := w.watcher.Add(event.Name); err == nil {
					w.log.Debugw("watching new path", "path", event.Name)
				}
			}
			if !isSourceFile(event.Name) && event.Op&fsnotify.Create == 0 {
				continue
			}
			w.log.Infow("source change detected",
				"file", event.Name,
				"op", event.Op.String())
			w.scheduleRescan(ctx)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warnw("watcher error", "error", err)
		}
	}
}

// scheduleRescan debounces rapid file changes into one scan.
func (w *Watcher) scheduleRescan(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debouncePeriod, func() {
		if err := w.rescan(ctx); err != nil {
			w.log.Errorw("re-scan failed", "error", err)
		}
	})
}

func (w *Watcher) rescan(ctx context.Context) error {
	result, err := Run(ctx, w.opts)
	if err != nil {
		return err
	}

	w.mu.Lock()
	callbacks := make([]RescanCallback, len(w.callbacks))
	copy(callbacks, w.callbacks)
	w.mu.Unlock()

	for _, callback := range callbacks {
		callback(result)
	}
	return nil
}

// Stop stops watching.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.mu.Unlock()
	return w.watcher.Close()
}

func isSourceFile(path string) bool {
	return strings.HasSuffix(path, ".ts") || strings.HasSuffix(path, ".tsx")
}
