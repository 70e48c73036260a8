// Package watcher provides file system watching with debouncing for record files.
package watcher

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/zjrosen/pokecard/internal/log"
)

// DefaultDebounce coalesces bursts of writes from editors that save in
// several steps.
const DefaultDebounce = 250 * time.Millisecond

// Event reports that a watched record file changed.
type Event struct {
	// Path is the path as given in Config.Paths.
	Path string
}

// Watcher monitors record files and sends one event per changed file after
// writes settle.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	// abs maps absolute cleaned paths to the caller's spelling.
	abs      map[string]string
	debounce time.Duration
	events   chan Event
	done     chan struct{}
	stopOnce sync.Once
}

// Config holds watcher configuration options.
type Config struct {
	Paths    []string
	Debounce time.Duration
}

// DefaultConfig returns sensible defaults for the watcher.
func DefaultConfig(paths ...string) Config {
	return Config{
		Paths:    paths,
		Debounce: DefaultDebounce,
	}
}

// New creates a new record file watcher.
func New(cfg Config) (*Watcher, error) {
	if len(cfg.Paths) == 0 {
		return nil, errors.New("no paths to watch")
	}

	abs := make(map[string]string, len(cfg.Paths))
	for _, p := range cfg.Paths {
		a, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", p, err)
		}
		abs[filepath.Clean(a)] = p
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	return &Watcher{
		fsWatcher: fsw,
		abs:       abs,
		debounce:  debounce,
		events:    make(chan Event, len(abs)),
		done:      make(chan struct{}),
	}, nil
}

// Start begins watching the directories containing the record files.
// Directories are watched rather than files so editors that replace the
// file on save keep triggering events.
func (w *Watcher) Start() (<-chan Event, error) {
	for _, dir := range w.dirs() {
		if err := w.fsWatcher.Add(dir); err != nil {
			return nil, fmt.Errorf("watching directory %s: %w", dir, err)
		}
		log.Debug(log.CatWatcher, "Watching directory", "dir", dir)
	}

	go w.loop()

	return w.events, nil
}

// Stop terminates the watcher and releases resources. It is safe to call
// more than once.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.done)
		err = w.fsWatcher.Close()
	})
	return err
}

func (w *Watcher) dirs() []string {
	seen := make(map[string]struct{})
	var dirs []string
	for a := range w.abs {
		dir := filepath.Dir(a)
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	return dirs
}

// loop processes file system events with debouncing.
func (w *Watcher) loop() {
	var (
		timer   *time.Timer
		pending = make(map[string]struct{})
	)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			path, relevant := w.relevantPath(event)
			if !relevant {
				continue
			}
			pending[path] = struct{}{}

			// Reset or start debounce timer
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case <-func() <-chan time.Time {
			if timer != nil {
				return timer.C
			}
			return nil
		}():
			for path := range pending {
				// Non-blocking send - a queued event for the same file is enough
				select {
				case w.events <- Event{Path: path}:
					log.Debug(log.CatWatcher, "Record changed", "path", path)
				default:
				}
				delete(pending, path)
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.ErrorErr(log.CatWatcher, "Watcher error", err)

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// relevantPath reports whether the event touches a watched file and returns
// the caller's spelling of its path.
func (w *Watcher) relevantPath(event fsnotify.Event) (string, bool) {
	// Only care about write or create operations (editors may replace the file)
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return "", false
	}

	a, err := filepath.Abs(event.Name)
	if err != nil {
		return "", false
	}
	path, ok := w.abs[filepath.Clean(a)]
	return path, ok
}
