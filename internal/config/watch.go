package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Reload is delivered by a Watcher each time the watched file changes.
// Err is set when the new contents could not be read or failed validation.
type Reload struct {
	Path   string
	Config TreasureConfig
	Err    error
}

// Watcher reloads a treasure config file when it changes on disk.
type Watcher struct {
	watcher *fsnotify.Watcher
	path    string
	preset  DifficultyPreset
	Reloads chan Reload
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

const debounce = 100 * time.Millisecond

// NewWatcher watches path and applies preset to every reloaded config.
// The parent directory is watched so atomic rename-on-save is seen.
func NewWatcher(path string, preset DifficultyPreset) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		watcher: w,
		path:    abs,
		preset:  preset,
		Reloads: make(chan Reload, 4),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer func() {
		close(w.Reloads)
		close(w.Errors)
		close(w.done)
	}()

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			// Reload once the file has been quiet for the debounce window.
			timer.Reset(debounce)
		case <-timer.C:
			cfg, err := ReadTreasure(w.path)
			if err == nil {
				ApplyTreasurePreset(&cfg, w.preset)
			}
			select {
			case w.Reloads <- Reload{Path: w.path, Config: cfg, Err: err}:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default: // drop when the consumer is behind
			}
		case <-w.closeCh:
			return
		}
	}
}
