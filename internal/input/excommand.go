package input

import (
	"strconv"
	"strings"

	"github.com/funkybooboo/lazycsv/internal/grid"
)

// ExCommand is one parsed colon-prompt command. Parsing never fails:
// malformed input comes back as a variant the caller can report.
type ExCommand interface {
	isExCommand()
}

// ExNoop is an empty prompt; submitting it just closes the prompt.
type ExNoop struct{}

// ExQuit closes the program. Force is the q! spelling.
type ExQuit struct {
	Force bool
}

// ExWrite is :w or :wq. The viewer is read-only, so the caller reports
// that instead of writing.
type ExWrite struct {
	AndQuit bool
}

// ExHelp opens the help overlay.
type ExHelp struct{}

// ExNavigate carries a jump parsed from the prompt, :15 or :c A.
type ExNavigate struct {
	Action Action
}

// ExColumnUsage is :c with no argument.
type ExColumnUsage struct{}

// ExBadColumn is :c with an argument that is not a column reference.
type ExBadColumn struct {
	Ref string
}

// ExUnknown is anything else; Input is the text after the colon.
type ExUnknown struct {
	Input string
}

func (ExNoop) isExCommand()        {}
func (ExQuit) isExCommand()        {}
func (ExWrite) isExCommand()       {}
func (ExHelp) isExCommand()        {}
func (ExNavigate) isExCommand()    {}
func (ExColumnUsage) isExCommand() {}
func (ExBadColumn) isExCommand()   {}
func (ExUnknown) isExCommand()     {}

// ParseExCommand reads the text typed at the colon prompt, without the
// leading colon. Command names are case-insensitive; a bare number is
// a row jump.
func ParseExCommand(line string) ExCommand {
	line = strings.TrimSpace(line)
	if line == "" {
		return ExNoop{}
	}

	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(name) {
	case "q", "quit":
		return ExQuit{}
	case "q!":
		return ExQuit{Force: true}
	case "w", "write":
		return ExWrite{}
	case "wq", "x":
		return ExWrite{AndQuit: true}
	case "h", "help":
		return ExHelp{}
	case "c", "col":
		if arg == "" {
			return ExColumnUsage{}
		}
		n, err := grid.ParseColumnRef(arg)
		if err != nil {
			return ExBadColumn{Ref: arg}
		}
		return ExNavigate{Action: JumpToColumn{Number: n}}
	}

	if n, err := strconv.Atoi(line); err == nil {
		return ExNavigate{Action: JumpToRow{Line: n}}
	}
	return ExUnknown{Input: line}
}
