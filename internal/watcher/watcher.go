// Package watcher watches the session directory and publishes an event
// per changed CSV file once writes have settled.
package watcher

import (
	"fmt"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/funkybooboo/lazycsv/internal/log"
	"github.com/funkybooboo/lazycsv/internal/pubsub"
)

// Config holds watcher configuration options.
type Config struct {
	Dir         string
	DebounceDur time.Duration
}

// DefaultConfig returns sensible defaults for watching dir.
func DefaultConfig(dir string) Config {
	return Config{Dir: dir, DebounceDur: 300 * time.Millisecond}
}

// Watcher monitors one directory for CSV changes. Bursts of writes to
// the same file collapse into a single event.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	dir       string
	debounce  time.Duration
	broker    *pubsub.Broker[string]
	done      chan struct{}
}

// New creates a watcher for the directory in cfg.
func New(cfg Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	return &Watcher{
		fsWatcher: fsw,
		dir:       cfg.Dir,
		debounce:  cfg.DebounceDur,
		broker:    pubsub.NewBroker[string](),
		done:      make(chan struct{}),
	}, nil
}

// Events returns the broker change notifications are published on. The
// payload is the absolute path of the changed file.
func (w *Watcher) Events() *pubsub.Broker[string] {
	return w.broker
}

// Start begins watching the directory.
func (w *Watcher) Start() error {
	if err := w.fsWatcher.Add(w.dir); err != nil {
		return fmt.Errorf("watching directory %s: %w", w.dir, err)
	}

	go w.run()

	log.Debug(log.CatWatcher, "watching directory", "dir", w.dir)
	return nil
}

// Stop terminates the watcher and releases resources.
func (w *Watcher) Stop() error {
	close(w.done)
	w.broker.Close()
	return w.fsWatcher.Close()
}

// run accumulates raw notifications per file and flushes them after a
// quiet period. Each relevant notification re-arms the deadline, so a
// burst of writes settles into one flush. The deadline channel is nil
// while nothing is pending, which parks that select case.
func (w *Watcher) run() {
	var deadline <-chan time.Time
	pending := make(map[string]fsnotify.Op)

	for {
		select {
		case ev, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !wanted(ev) {
				continue
			}
			pending[ev.Name] |= ev.Op
			deadline = time.After(w.debounce)

		case <-deadline:
			w.flush(pending)
			pending = make(map[string]fsnotify.Op)
			deadline = nil

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Warn(log.CatWatcher, "watch error", "error", err)

		case <-w.done:
			return
		}
	}
}

// flush publishes one event per settled file, in path order.
func (w *Watcher) flush(pending map[string]fsnotify.Op) {
	paths := make([]string, 0, len(pending))
	for p := range pending {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, p := range paths {
		t := eventType(pending[p])
		log.Debug(log.CatWatcher, "file changed", "path", p, "event", t)
		w.broker.Publish(t, p)
	}
}

// wanted keeps content changes to CSV files and drops everything else,
// chmod noise included. The extension match is case-sensitive like the
// directory scan.
func wanted(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	return filepath.Ext(ev.Name) == ".csv"
}

// eventType maps the merged fsnotify ops for one file to a broker
// event type. A file that was removed and not recreated counts as
// deleted; anything newly created counts as created.
func eventType(op fsnotify.Op) pubsub.EventType {
	switch {
	case op&(fsnotify.Remove|fsnotify.Rename) != 0 && op&(fsnotify.Create|fsnotify.Write) == 0:
		return pubsub.DeletedEvent
	case op&fsnotify.Create != 0:
		return pubsub.CreatedEvent
	default:
		return pubsub.UpdatedEvent
	}
}
