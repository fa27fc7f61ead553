package plan

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/cosmichound/multitimer/internal/util"
)

// Event reports that the watched plan file changed on disk
type Event struct {
	Path      string
	Operation string
}

// Watcher emits an Event whenever the content of one plan file changes.
// It watches the parent directory so that editors which save by rename
// are still seen.
type Watcher struct {
	watcher     *fsnotify.Watcher
	path        string
	events      chan Event
	fingerprint string
	done        chan struct{}
	closeOnce   sync.Once
}

// NewWatcher starts watching path
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher: fsw,
		path:    abs,
		events:  make(chan Event, 16),
		done:    make(chan struct{}),
	}
	w.fingerprint, _ = util.CalculateFileFingerprint(abs)

	go w.processEvents()

	return w, nil
}

func (w *Watcher) processEvents() {
	defer close(w.events)

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			fp, err := util.CalculateFileFingerprint(w.path)
			if err != nil || fp == w.fingerprint {
				// Gone mid-rename or unchanged; the follow-up event carries the content
				continue
			}
			w.fingerprint = fp

			select {
			case w.events <- Event{Path: w.path, Operation: event.Op.String()}:
			default:
				util.LogDebug("plan event dropped, consumer busy", util.F("path", w.path))
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Log error but continue running
			util.LogError("plan watch error", util.F("error", err.Error()))
		}
	}
}

// Events returns the change notifications. The channel closes after Close.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Path returns the absolute path being watched
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}
