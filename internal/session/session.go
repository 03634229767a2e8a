// Package session manages the set of CSV files open in one run and which of
// them is active.
package session

import (
	"errors"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/funkybooboo/lazycsv/internal/document"
	"github.com/funkybooboo/lazycsv/internal/log"
)

// Parsed documents are kept for a short while so flipping between files
// skips the re-parse. Entries are dropped when the watcher reports a change.
const (
	cacheExpiration      = 5 * time.Minute
	cacheCleanupInterval = 10 * time.Minute
)

// ErrNoOtherFiles is returned by Switch when the session holds a single file.
var ErrNoOtherFiles = errors.New("no other CSV files in session")

// Direction selects which neighbor a file switch moves to.
type Direction int

const (
	Next Direction = iota
	Previous
)

func (d Direction) String() string {
	if d == Previous {
		return "previous"
	}
	return "next"
}

// Session owns the ordered file list, the active index, and the parse
// options shared by every file in the run.
type Session struct {
	files  []string
	active int
	opts   document.Options
	cache  *gocache.Cache
}

// New creates a session over files with the file at active opened first.
func New(files []string, active int, opts document.Options) (*Session, error) {
	if len(files) == 0 {
		return nil, errors.New("session needs at least one file")
	}
	if active < 0 || active >= len(files) {
		return nil, fmt.Errorf("active index %d out of range for %d files", active, len(files))
	}
	return &Session{
		files:  files,
		active: active,
		opts:   opts,
		cache:  gocache.New(cacheExpiration, cacheCleanupInterval),
	}, nil
}

// ActiveFile returns the path of the active file.
func (s *Session) ActiveFile() string {
	return s.files[s.active]
}

// ActiveIndex returns the position of the active file in the list.
func (s *Session) ActiveIndex() int {
	return s.active
}

// Files returns the session file list in order.
func (s *Session) Files() []string {
	return s.files
}

// FileCount returns the number of files in the session.
func (s *Session) FileCount() int {
	return len(s.files)
}

// HasMultipleFiles reports whether switching can go anywhere.
func (s *Session) HasMultipleFiles() bool {
	return len(s.files) > 1
}

// Options returns the parse options applied to every file.
func (s *Session) Options() document.Options {
	return s.opts
}

// Load parses the active file, reusing a cached document when one is fresh.
func (s *Session) Load() (*document.Document, error) {
	return s.load(s.ActiveFile())
}

// Reload drops the cached document for the active file and parses it again.
func (s *Session) Reload() (*document.Document, error) {
	path := s.ActiveFile()
	s.cache.Delete(path)
	return s.load(path)
}

// Switch moves to the neighboring file in dir, wrapping at either end, and
// returns its document. The active file only changes when the neighbor loads
// cleanly.
func (s *Session) Switch(dir Direction) (*document.Document, error) {
	if !s.HasMultipleFiles() {
		return nil, ErrNoOtherFiles
	}

	target := s.neighbor(dir)
	doc, err := s.load(s.files[target])
	if err != nil {
		return nil, fmt.Errorf("switch to %s file: %w", dir, err)
	}

	s.active = target
	log.Info(log.CatSession, "switched file", "path", doc.Path(), "index", target)
	return doc, nil
}

// Neighbor returns the path Switch would move to in dir.
func (s *Session) Neighbor(dir Direction) string {
	return s.files[s.neighbor(dir)]
}

// Invalidate drops any cached document for path.
func (s *Session) Invalidate(path string) {
	s.cache.Delete(path)
}

func (s *Session) neighbor(dir Direction) int {
	n := len(s.files)
	if dir == Next {
		return (s.active + 1) % n
	}
	return (s.active - 1 + n) % n
}

func (s *Session) load(path string) (*document.Document, error) {
	if v, found := s.cache.Get(path); found {
		if doc, ok := v.(*document.Document); ok {
			log.Debug(log.CatCache, "document cache hit", "path", path)
			return doc, nil
		}
	}

	doc, err := document.Load(path, s.opts)
	if err != nil {
		return nil, err
	}
	s.cache.Set(path, doc, gocache.DefaultExpiration)
	log.Debug(log.CatCache, "document cached", "path", path, "rows", doc.RowCount())
	return doc, nil
}
