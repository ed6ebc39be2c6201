package touchstick

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// LayoutWatcher reports changes to a layout file so it can be re-applied while
// the game runs. It watches the file's directory, which survives editors that
// replace the file on save.
type LayoutWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// WatchLayout starts watching path.
func WatchLayout(path string) (*LayoutWatcher, error) {
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

	lw := &LayoutWatcher{
		path:    abs,
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go lw.run()
	return lw, nil
}

// Close stops the watcher. Safe to call more than once.
func (w *LayoutWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *LayoutWatcher) run() {
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
			select {
			case w.Events <- event.Name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// Reload applies the layout to r if the file changed since the last call.
// It never blocks, so it can be called once per frame from Update. Bursts of
// writes queued since the last call are applied once. Reports whether a new
// layout was applied; a malformed or empty file leaves r untouched, and the
// next write to the file is picked up by a later call.
func (w *LayoutWatcher) Reload(r *Registry[string], opts ApplyOptions) (bool, error) {
	changed := false
drain:
	for {
		select {
		case <-w.Events:
			changed = true
		case err := <-w.Errors:
			return false, err
		default:
			break drain
		}
	}
	if !changed {
		return false, nil
	}
	l, err := LoadLayout(w.path)
	if err != nil {
		return false, err
	}
	if globalDebug {
		debugf("layout %s reloaded: %d sticks", w.path, len(l.Sticks))
	}
	if err := l.Apply(r, opts); err != nil {
		return false, err
	}
	return true, nil
}
