// Package watcher re-audits a password candidate file whenever it changes.
//
// The watcher uses fsnotify to monitor the directory containing the file
// (watching the directory rather than the file itself survives editors that
// replace the file on save), debounces rapid event bursts, and invokes a
// caller-supplied callback once per settled change.
package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay is how long to wait after the last filesystem event before
// firing the callback. Editors often emit several events per save.
const debounceDelay = 500 * time.Millisecond

// Watcher monitors a single password list file and invokes onChange after
// each settled modification.
type Watcher struct {
	path     string
	onChange func() error

	fsw    *fsnotify.Watcher
	stopCh chan struct{}
	wg     sync.WaitGroup
}

// New creates a Watcher for the given file. The file must exist when the
// watcher starts. onChange is called once at startup and again after every
// change; callback errors are reported to stderr but do not stop the watch.
func New(path string, onChange func() error) (*Watcher, error) {
	if path == "" {
		return nil, fmt.Errorf("watch path cannot be empty")
	}
	if onChange == nil {
		return nil, fmt.Errorf("onChange callback cannot be nil")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve watch path: %w", err)
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, fmt.Errorf("cannot watch %s: %w", path, err)
	}

	return &Watcher{
		path:     abs,
		onChange: onChange,
		stopCh:   make(chan struct{}),
	}, nil
}

// Start runs the initial audit and begins watching for changes.
func (w *Watcher) Start() error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create filesystem watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}
	w.fsw = fsw

	if err := w.onChange(); err != nil {
		fmt.Fprintf(os.Stderr, "watcher: initial audit: %v\n", err)
	}

	w.wg.Add(1)
	go w.run()

	return nil
}

// run consumes filesystem events until stopped, coalescing bursts of events
// for the watched file into a single callback per debounce window.
func (w *Watcher) run() {
	defer w.wg.Done()

	var debounce *time.Timer
	var debounceCh <-chan time.Time

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if debounce == nil {
				debounce = time.NewTimer(debounceDelay)
				debounceCh = debounce.C
			} else {
				if !debounce.Stop() {
					<-debounce.C
				}
				debounce.Reset(debounceDelay)
			}
		case <-debounceCh:
			debounce = nil
			debounceCh = nil
			if err := w.onChange(); err != nil {
				fmt.Fprintf(os.Stderr, "watcher: audit error: %v\n", err)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			fmt.Fprintf(os.Stderr, "watcher: filesystem error: %v\n", err)
		case <-w.stopCh:
			return
		}
	}
}

// Stop halts the watcher and waits for the event loop to exit.
func (w *Watcher) Stop() error {
	close(w.stopCh)
	w.wg.Wait()
	if w.fsw != nil {
		return w.fsw.Close()
	}
	return nil
}
