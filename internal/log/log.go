// Package log writes leveled, categorized debug entries to a file.
// Logging is off until Init runs (the --debug flag or LAZYCSV_DEBUG);
// every entry is also published on a broker so UI surfaces can tail
// the log live.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/funkybooboo/lazycsv/internal/pubsub"
)

// Level is the severity of an entry.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

func (l Level) String() string {
	if l < LevelDebug || l > LevelError {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// Category names the subsystem an entry came from.
type Category string

const (
	CatDoc     Category = "doc"       // CSV loading and parsing
	CatSession Category = "session"   // Multi-file session switching
	CatNav     Category = "nav"       // Navigation engine transitions
	CatInput   Category = "input"     // Key resolution and pending commands
	CatUI      Category = "ui"        // UI component updates
	CatConfig  Category = "config"    // Configuration loading/saving
	CatWatcher Category = "watcher"   // File watcher events
	CatCache   Category = "cache"     // Document cache operations
	CatClip    Category = "clipboard" // Clipboard interactions
)

type logger struct {
	mu     sync.Mutex
	out    io.Writer
	min    Level
	broker *pubsub.Broker[string]
}

var (
	active *logger
	once   sync.Once
)

// Init opens the log file and turns logging on for the rest of the
// process. It returns the function that closes the file; calling Init
// again has no effect.
func Init(path string) (func(), error) {
	var (
		file *os.File
		err  error
	)
	once.Do(func() {
		file, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return
		}
		active = &logger{
			out:    file,
			min:    LevelDebug,
			broker: pubsub.NewBroker[string](),
		}
	})
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	if active == nil {
		return nil, fmt.Errorf("logger unavailable")
	}

	closeOnce := file
	return func() {
		if closeOnce != nil {
			_ = closeOnce.Close()
		}
	}, nil
}

// SetMinLevel drops entries below level.
func SetMinLevel(level Level) {
	if active == nil {
		return
	}
	active.mu.Lock()
	active.min = level
	active.mu.Unlock()
}

// Subscribe tails the log; each published entry arrives as one line.
// It returns nil before Init.
func Subscribe(ctx context.Context) *pubsub.ContinuousListener[string] {
	if active == nil {
		return nil
	}
	return pubsub.NewContinuousListener(ctx, active.broker)
}

// Debug records a debug entry.
func Debug(cat Category, msg string, fields ...any) {
	emit(LevelDebug, cat, msg, fields)
}

// Info records an info entry.
func Info(cat Category, msg string, fields ...any) {
	emit(LevelInfo, cat, msg, fields)
}

// Warn records a warning.
func Warn(cat Category, msg string, fields ...any) {
	emit(LevelWarn, cat, msg, fields)
}

// Error records an error entry.
func Error(cat Category, msg string, fields ...any) {
	emit(LevelError, cat, msg, fields)
}

// ErrorErr records err alongside msg as an error= field.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	text := "<nil>"
	if err != nil {
		text = err.Error()
	}
	emit(LevelError, cat, msg, append(fields, "error", text))
}

// emit renders one entry as
//
//	2026-01-12 10:45:00.123 WARN [watcher] message key=value
//
// and is a no-op until Init has run. Fields come in key, value order;
// a trailing key without a value is rendered with "?".
func emit(level Level, cat Category, msg string, fields []any) {
	l := active
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.min {
		return
	}

	var b strings.Builder
	b.WriteString(time.Now().Format("2006-01-02 15:04:05.000"))
	fmt.Fprintf(&b, " %s [%s] %s", level, cat, msg)
	for i := 0; i < len(fields); i += 2 {
		if i+1 < len(fields) {
			fmt.Fprintf(&b, " %v=%v", fields[i], fields[i+1])
		} else {
			fmt.Fprintf(&b, " %v=?", fields[i])
		}
	}
	b.WriteByte('\n')

	line := b.String()
	_, _ = io.WriteString(l.out, line)
	l.broker.Publish(pubsub.CreatedEvent, line)
}
