// Package watch regenerates output when JSON sample files change. It wraps
// fsnotify with a debouncer so a burst of editor writes triggers one
// regeneration.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// SampleWatcher monitors a fixed set of sample files and invokes a callback
// with the changed paths after a quiet period.
type SampleWatcher struct {
	watcher   *fsnotify.Watcher
	debouncer *Debouncer
	files     map[string]bool
	onChange  func([]string) error
	log       *zap.SugaredLogger
	stopChan  chan struct{}
	wg        sync.WaitGroup
}

// New creates a watcher for the given sample files.
func New(files []string, logger *zap.Logger, onChange func([]string) error) (*SampleWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	watched := make(map[string]bool, len(files))
	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", file, err)
		}
		watched[abs] = true
	}

	sw := &SampleWatcher{
		watcher:   fsw,
		debouncer: NewDebouncer(100 * time.Millisecond),
		files:     watched,
		onChange:  onChange,
		log:       logger.Sugar(),
		stopChan:  make(chan struct{}),
	}

	sw.debouncer.SetCallback(func(changed []string) {
		if err := sw.onChange(changed); err != nil {
			sw.log.Errorw("regeneration failed", "error", err)
		}
	})

	return sw, nil
}

// Start begins watching. Directories are watched rather than the files
// themselves, since editors that write via rename replace the original
// inode.
func (sw *SampleWatcher) Start() error {
	dirs := make(map[string]bool)
	for file := range sw.files {
		dirs[filepath.Dir(file)] = true
	}

	for dir := range dirs {
		if err := sw.watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch directory %s: %w", dir, err)
		}
		sw.log.Debugw("watching directory", "dir", dir)
	}

	sw.wg.Add(1)
	go sw.run()

	return nil
}

// Stop stops the watcher. Safe to call more than once.
func (sw *SampleWatcher) Stop() error {
	select {
	case <-sw.stopChan:
		return nil
	default:
		close(sw.stopChan)
	}

	sw.wg.Wait()
	sw.debouncer.Stop()
	return sw.watcher.Close()
}

// run is the event loop.
func (sw *SampleWatcher) run() {
	defer sw.wg.Done()

	for {
		select {
		case event, ok := <-sw.watcher.Events:
			if !ok {
				return
			}

			abs, err := filepath.Abs(event.Name)
			if err != nil || !sw.files[abs] {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				sw.log.Infow("sample changed", "file", event.Name)
				sw.debouncer.Add(abs)
			}

		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			sw.log.Errorw("watch error", "error", err)

		case <-sw.stopChan:
			return
		}
	}
}

// Debouncer collects changed files and fires a callback after a quiet
// period, coalescing rapid successive writes.
type Debouncer struct {
	duration time.Duration
	timer    *time.Timer
	files    map[string]struct{}
	mutex    sync.Mutex
	callback func([]string)
	stopChan chan struct{}
}

// NewDebouncer creates a debouncer with the given quiet period.
func NewDebouncer(duration time.Duration) *Debouncer {
	return &Debouncer{
		duration: duration,
		files:    make(map[string]struct{}),
		stopChan: make(chan struct{}),
	}
}

// Add records a changed file and restarts the quiet-period timer.
func (d *Debouncer) Add(file string) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	d.files[file] = struct{}{}

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(d.duration, d.flush)
}

// flush fires the callback with the accumulated files.
func (d *Debouncer) flush() {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if len(d.files) == 0 {
		return
	}

	files := make([]string, 0, len(d.files))
	for file := range d.files {
		files = append(files, file)
	}
	d.files = make(map[string]struct{})

	if d.callback != nil {
		d.callback(files)
	}
}

// SetCallback sets the function invoked after each quiet period.
func (d *Debouncer) SetCallback(callback func([]string)) {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	d.callback = callback
}

// Stop cancels any pending flush. Safe to call more than once.
func (d *Debouncer) Stop() {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}

	select {
	case <-d.stopChan:
	default:
		close(d.stopChan)
	}
}
