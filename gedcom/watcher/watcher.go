// Package watcher re-parses a GEDCOM file whenever it changes on disk,
// debouncing rapid successive writes (editors often write several times in
// a row when saving).
package watcher

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/teranos/kin/errors"
	"github.com/teranos/kin/gedcom"
	"github.com/teranos/kin/gedcom/parser"
	"github.com/teranos/kin/logger"
)

// ReloadCallback is called with the freshly parsed result after each
// detected change. Returning an error is logged, not fatal; watching
// continues.
type ReloadCallback func(*gedcom.Result) error

// FileWatcher watches one GEDCOM file and re-parses it on write.
type FileWatcher struct {
	path           string
	watcher        *fsnotify.Watcher
	callbacks      []ReloadCallback
	parserOpts     []parser.Option
	mu             sync.RWMutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
}

// New creates a watcher for the GEDCOM file at path. Parser options are
// applied to every re-parse.
func New(path string, opts ...parser.Option) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, errors.Wrapf(err, "failed to watch %s", path)
	}

	return &FileWatcher{
		path:           path,
		watcher:        watcher,
		parserOpts:     opts,
		debouncePeriod: 500 * time.Millisecond,
	}, nil
}

// OnReload registers a callback for each successful re-parse.
func (fw *FileWatcher) OnReload(callback ReloadCallback) {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	fw.callbacks = append(fw.callbacks, callback)
}

// Start begins watching in a background goroutine.
func (fw *FileWatcher) Start() {
	go fw.watchLoop()
}

// Stop stops watching.
func (fw *FileWatcher) Stop() error {
	return fw.watcher.Close()
}

func (fw *FileWatcher) watchLoop() {
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				logger.Infow("GEDCOM file changed",
					"file", event.Name,
					"op", event.Op.String())
				fw.scheduleReload()
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			logger.Warnw("File watcher error", "error", err)
		}
	}
}

func (fw *FileWatcher) scheduleReload() {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.debounceTimer != nil {
		fw.debounceTimer.Stop()
	}
	fw.debounceTimer = time.AfterFunc(fw.debouncePeriod, fw.reload)
}

func (fw *FileWatcher) reload() {
	result, err := parser.New(fw.path, fw.parserOpts...).Parse()
	if err != nil {
		logger.Errorw("Re-parse failed", "path", fw.path, "error", err)
		return
	}

	fw.mu.RLock()
	callbacks := make([]ReloadCallback, len(fw.callbacks))
	copy(callbacks, fw.callbacks)
	fw.mu.RUnlock()

	for _, callback := range callbacks {
		if err := callback(result); err != nil {
			logger.Warnw("Reload callback error", "error", err)
			// Keep calling the remaining callbacks.
		}
	}
}
