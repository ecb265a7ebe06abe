package explorer

import (
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/RyanBlaney/sonido-escala/logging"
)

// Watcher monitors a state file and emits the parsed state every time the
// file is written. The parent directory is watched so that editors which
// replace the file on save are still seen.
type Watcher struct {
	Path    string
	Changes <-chan State // Read-only external channel

	changes  chan State
	done     chan struct{}
	watcher  *fsnotify.Watcher
	debounce time.Duration
	started  atomic.Bool
	stopOnce sync.Once
}

// NewWatcher creates a watcher for the state file at path.
func NewWatcher(path string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, err
	}

	ch := make(chan State, 16)
	return &Watcher{
		Path:     abs,
		Changes:  ch,
		changes:  ch,
		done:     make(chan struct{}),
		watcher:  fw,
		debounce: 100 * time.Millisecond,
	}, nil
}

// Start begins watching. On error the underlying fsnotify watcher is
// already closed.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(filepath.Dir(w.Path)); err != nil {
		w.watcher.Close()
		return err
	}

	w.started.Store(true)
	go w.loop()
	return nil
}

// Stop closes the watcher and the Changes channel. It may be called more
// than once, and before or after a failed Start.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		w.watcher.Close()
		if w.started.Load() {
			<-w.done
		}
		close(w.changes)
	})
}

func (w *Watcher) loop() {
	defer close(w.done)

	var pending time.Time
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				if !pending.IsZero() {
					w.emit()
				}
				return
			}
			if filepath.Clean(event.Name) != w.Path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				pending = time.Now()
			}

		case now := <-ticker.C:
			if !pending.IsZero() && now.Sub(pending) >= w.debounce {
				w.emit()
				pending = time.Time{}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Warn("state watcher error", logging.Fields{"path": w.Path, "error": err.Error()})
		}
	}
}

func (w *Watcher) emit() {
	state, err := LoadStateFile(w.Path)
	if err != nil {
		logging.Warn("state file unreadable", logging.Fields{"path": w.Path, "error": err.Error()})
		return
	}
	select {
	case w.changes <- state:
	default:
		logging.Warn("state change dropped, consumer is behind", logging.Fields{"path": w.Path})
	}
}
