package input

// Kind classifies what a keystroke produced.
type Kind int

const (
	// KindPassThrough marks keys outside the command language; the
	// caller decides what they mean (quit, help, the colon prompt).
	KindPassThrough Kind = iota
	// KindPending means the key was absorbed and more keys are needed.
	KindPending
	// KindCompleted carries a fully resolved Action.
	KindCompleted
	// KindInvalid marks a sequence no command matches; Prefix and Key
	// name the two keys for the status line.
	KindInvalid
)

// Result is the outcome of feeding one key to Resolve.
type Result struct {
	Kind   Kind
	Action Action  // set when Kind is KindCompleted
	Prefix Pending // set when Kind is KindInvalid
	Key    string  // set when Kind is KindInvalid
}

func completed(st State, a Action) (State, Result) {
	return st.clear(), Result{Kind: KindCompleted, Action: a}
}

func pending(st State) (State, Result) {
	return st, Result{Kind: KindPending}
}

func passThrough(st State) (State, Result) {
	return st.endRun(), Result{Kind: KindPassThrough}
}

func invalid(st State, key string) (State, Result) {
	prefix := st.Pending
	return st.clear(), Result{Kind: KindInvalid, Prefix: prefix, Key: key}
}

// Resolve feeds one key into the command state machine. It is pure:
// the returned State replaces st, and the Result says what the key
// meant. Keys use the same string form the terminal layer produces,
// plain runes for characters and bracketed names like "<up>" for
// special keys.
func Resolve(st State, key string) (State, Result) {
	if st.Pending != PendingNone {
		return resolvePending(st, key)
	}

	if d, ok := digitValue(key); ok {
		if d == 0 && !st.HasCount() {
			return completed(st, JumpToFirstColumn{})
		}
		return pending(st.addDigit(d))
	}
	st = st.endRun()

	count := st.CountOr(1)
	switch key {
	case "h", "<left>":
		return completed(st, MoveBy{Dir: Left, Count: count})
	case "j", "<down>":
		return completed(st, MoveBy{Dir: Down, Count: count})
	case "k", "<up>":
		return completed(st, MoveBy{Dir: Up, Count: count})
	case "l", "<right>":
		return completed(st, MoveBy{Dir: Right, Count: count})
	case "<enter>":
		return completed(st, MoveBy{Dir: Down, Count: count})
	case "$":
		return completed(st, JumpToLastColumn{})
	case "w":
		return completed(st, SeekNonEmpty{Seek: SeekNext, Count: count})
	case "b":
		return completed(st, SeekNonEmpty{Seek: SeekPrev, Count: count})
	case "e":
		return completed(st, SeekNonEmpty{Seek: SeekLast, Count: count})
	case "g":
		st.Pending = PendingG
		return pending(st)
	case "z":
		st.Pending = PendingZ
		return pending(st)
	case "d":
		st.Pending = PendingD
		return pending(st)
	case "y":
		st.Pending = PendingY
		return pending(st)
	case "G", "<end>":
		return completed(st, rowJump(st))
	case "<home>":
		return completed(st, JumpToFirstRow{})
	case "<pgdown>", "<ctrl+d>":
		return completed(st, PageBy{Delta: PageSize * count})
	case "<pgup>", "<ctrl+u>":
		return completed(st, PageBy{Delta: -PageSize * count})
	case "]":
		return completed(st, SwitchFile{Dir: NextFile})
	case "[":
		return completed(st, SwitchFile{Dir: PreviousFile})
	case "<escape>":
		if st.HasCount() {
			return completed(st, CancelPending{})
		}
		return passThrough(st)
	default:
		return passThrough(st)
	}
}

// resolvePending handles the key after a g, z, d or y prefix. Any key
// that does not complete the sequence invalidates it, clearing both
// the prefix and the count; only digits after g keep the sequence
// open.
func resolvePending(st State, key string) (State, Result) {
	if key == "<escape>" {
		return completed(st, CancelPending{})
	}

	switch st.Pending {
	case PendingG:
		if d, ok := digitValue(key); ok {
			if d == 0 && !st.digitRun {
				return invalid(st, key)
			}
			return pending(st.addDigit(d))
		}
		switch key {
		case "g":
			return completed(st, JumpToFirstRow{})
		case "G", "<end>":
			return completed(st, rowJump(st))
		}
	case PendingZ:
		switch key {
		case "t":
			return completed(st, SetViewportMode{Anchor: AnchorTop})
		case "z":
			return completed(st, SetViewportMode{Anchor: AnchorCenter})
		case "b":
			return completed(st, SetViewportMode{Anchor: AnchorBottom})
		}
	case PendingD:
		if key == "d" {
			return completed(st, DeleteRow{})
		}
	case PendingY:
		if key == "y" {
			return completed(st, YankRow{})
		}
	}
	return invalid(st, key)
}

// rowJump is G and its aliases: with a count it is an absolute jump,
// without one it goes to the last row.
func rowJump(st State) Action {
	if st.HasCount() {
		return JumpToRow{Line: st.Count()}
	}
	return JumpToLastRow{}
}

func digitValue(key string) (int, bool) {
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		return int(key[0] - '0'), true
	}
	return 0, false
}
