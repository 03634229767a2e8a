// Package input implements the modal command language: it buffers
// multi-key sequences and count prefixes and resolves completed
// sequences into semantic actions.
package input

// MaxCommandCount bounds count prefixes; digits that would push the
// count past it are ignored.
const MaxCommandCount = 100000

// PageSize is the number of rows one page motion covers.
const PageSize = 20

// Pending identifies a multi-key sequence waiting for its next key.
type Pending int

const (
	PendingNone Pending = iota
	PendingG            // after a lone g
	PendingZ            // after z, awaiting the viewport letter
	PendingD            // after a lone d
	PendingY            // after a lone y
)

// String returns the prefix key as the user typed it.
func (p Pending) String() string {
	switch p {
	case PendingG:
		return "g"
	case PendingZ:
		return "z"
	case PendingD:
		return "d"
	case PendingY:
		return "y"
	default:
		return ""
	}
}

// State carries the in-progress pieces of the command language between
// keystrokes: the pending prefix and the count being typed. The zero
// value is the idle state. There is no timer: a pending sequence waits
// indefinitely for its next key.
type State struct {
	Pending Pending

	// count is zero when no count is present. digitRun tracks whether
	// the previous key was a digit, so a fresh digit run replaces a
	// stale count instead of appending to it.
	count    int
	digitRun bool
}

// HasCount reports whether a count prefix is present.
func (s State) HasCount() bool {
	return s.count > 0
}

// Count returns the accumulated count, or 0 when none is present.
func (s State) Count() int {
	return s.count
}

// CountOr returns the accumulated count, or def when none is present.
func (s State) CountOr(def int) int {
	if s.count > 0 {
		return s.count
	}
	return def
}

// addDigit folds one digit into the count. A digit that does not extend
// the current run starts over, so the most recent run always wins; a
// digit that would push the count past MaxCommandCount is ignored.
func (s State) addDigit(d int) State {
	if !s.digitRun {
		s.count = d
		s.digitRun = true
		return s
	}
	if next := s.count*10 + d; next < MaxCommandCount {
		s.count = next
	}
	return s
}

// endRun marks the digit run as broken by a non-digit key.
func (s State) endRun() State {
	s.digitRun = false
	return s
}

// clear drops both the pending prefix and the count.
func (s State) clear() State {
	return State{}
}
