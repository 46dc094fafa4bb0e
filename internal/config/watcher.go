package config

import (
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchDebounce is the quiet period after the last file event before a
// reload is signalled. Editors often write a file in several steps.
const WatchDebounce = 250 * time.Millisecond

// Watcher signals when one of the watched config files changes.
// The parent directories are watched so atomic renames are seen.
type Watcher struct {
	Events chan struct{}

	files   map[string]struct{}
	watcher *fsnotify.Watcher
	done    chan struct{}
	once    sync.Once

	mu    sync.Mutex
	timer *time.Timer
}

// Watch starts watching the given config files. Files that do not exist yet
// are picked up when they are created.
func Watch(paths ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		Events:  make(chan struct{}, 1),
		files:   make(map[string]struct{}),
		watcher: fw,
		done:    make(chan struct{}),
	}

	dirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(expandPath(p))
		if err != nil {
			continue
		}
		w.files[abs] = struct{}{}
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			slog.Debug("config watch skipped", "dir", dir, "err", err)
		}
	}

	go w.run()
	return w, nil
}

// WatchDefault watches the files Load reads when no explicit path is given.
func WatchDefault() (*Watcher, error) {
	return Watch(getConfigPaths()...)
}

// Done is closed when the watcher stops.
func (w *Watcher) Done() <-chan struct{} {
	return w.done
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if _, ok := w.files[filepath.Clean(event.Name)]; !ok {
				continue
			}
			w.schedule()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("config watcher error", "err", err)
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(WatchDebounce, w.signal)
}

func (w *Watcher) signal() {
	select {
	case <-w.done:
		return
	default:
	}
	select {
	case w.Events <- struct{}{}:
	default:
	}
}
