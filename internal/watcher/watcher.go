// Package watcher re-runs validation of a values file whenever it changes.
package watcher

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Config contains watcher settings.
type Config struct {
	// DebounceSeconds is the quiet period after the last change before the
	// handler runs (default: 2).
	DebounceSeconds int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{DebounceSeconds: 2}
}

// Handler is called with the watched file's path after it changed and the
// debounce period elapsed.
type Handler func(path string) error

// Watcher monitors a single values file for changes. The parent directory is
// watched rather than the file itself, so editors that replace the file on
// save do not drop the watch.
type Watcher struct {
	config  *Config
	handler Handler

	fsWatcher *fsnotify.Watcher
	done      chan struct{}
	wg        sync.WaitGroup

	mu       sync.Mutex
	debounce *time.Timer
	runs     int
	errs     int
}

// New creates a Watcher. If config is nil, defaults are used.
func New(config *Config, handler Handler) *Watcher {
	if config == nil {
		config = DefaultConfig()
	}
	if config.DebounceSeconds <= 0 {
		config.DebounceSeconds = 2
	}
	return &Watcher{
		config:  config,
		handler: handler,
		done:    make(chan struct{}),
	}
}

// Start begins watching the given file. It returns an error if the watch
// cannot be established. The watcher runs until Stop is called.
func (w *Watcher) Start(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.fsWatcher, err = fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.fsWatcher.Add(filepath.Dir(absPath)); err != nil {
		w.fsWatcher.Close()
		return err
	}

	w.wg.Add(1)
	go w.loop(absPath)
	return nil
}

// Stop terminates the watch and waits for the event loop to exit. A pending
// debounced run is cancelled.
func (w *Watcher) Stop() {
	close(w.done)
	w.fsWatcher.Close()
	w.wg.Wait()

	w.mu.Lock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.mu.Unlock()
}

// Runs returns the number of completed handler invocations.
func (w *Watcher) Runs() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.runs
}

// Errors returns the number of handler invocations that failed.
func (w *Watcher) Errors() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.errs
}

func (w *Watcher) loop(path string) {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.scheduleRun(path)
		case _, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			// Watch errors are transient; the next event re-triggers.
		}
	}
}

// scheduleRun (re)arms the debounce timer so a burst of writes produces a
// single handler run.
func (w *Watcher) scheduleRun(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounce != nil {
		w.debounce.Stop()
	}
	delay := time.Duration(w.config.DebounceSeconds) * time.Second
	w.debounce = time.AfterFunc(delay, func() {
		select {
		case <-w.done:
			return
		default:
		}
		err := w.handler(path)
		w.mu.Lock()
		w.runs++
		if err != nil {
			w.errs++
		}
		w.mu.Unlock()
	})
}
