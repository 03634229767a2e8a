package app

import (
	"errors"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/funkybooboo/lazycsv/internal/grid"
	"github.com/funkybooboo/lazycsv/internal/input"
	"github.com/funkybooboo/lazycsv/internal/log"
	"github.com/funkybooboo/lazycsv/internal/nav"
	"github.com/funkybooboo/lazycsv/internal/session"
	"github.com/funkybooboo/lazycsv/internal/ui/toaster"
)

// handleKey routes one keystroke. Ctrl+C quits from anywhere; an open
// help overlay captures everything else.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	if m.help.Visible() {
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		return m, cmd
	}

	if m.mode == ModeCommand {
		return m.handlePromptKey(msg)
	}
	return m.handleNormalKey(msg)
}

// handleNormalKey feeds the key to the command resolver. Keys the
// resolver passes through are the application-level bindings.
func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	st, res := input.Resolve(m.cmdState, commandKey(msg))
	m.cmdState = st

	switch res.Kind {
	case input.KindCompleted:
		return m.applyAction(res.Action)

	case input.KindPending:
		return m, nil

	case input.KindInvalid:
		log.Debug(log.CatInput, "unknown sequence", "prefix", res.Prefix.String(), "key", res.Key)
		m.status = msgUnknownSequence(res.Prefix.String(), res.Key)
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help = m.help.Toggle()
		return m, nil

	case key.Matches(msg, m.keys.Command):
		m.mode = ModeCommand
		m.prompt.SetValue("")
		m.prompt.Focus()
		return m, textinput.Blink
	}

	return m, nil
}

// applyAction runs one resolved action. File, clipboard and delete
// actions are handled here; everything else is a viewport transition.
func (m Model) applyAction(act input.Action) (tea.Model, tea.Cmd) {
	switch a := act.(type) {
	case input.SwitchFile:
		return m.switchFile(a.Dir)

	case input.YankRow:
		return m.yankRow()

	case input.DeleteRow:
		m.status = msgReadOnlyDelete
		return m, nil

	case input.CancelPending:
		m.status = msgCommandCancelled
		return m, nil
	}

	before := m.view
	view, err := m.engine.Apply(m.view, act, m.doc)
	if err != nil {
		m.status = navErrStatus(err)
		return m, nil
	}

	m.view = view
	m.status = m.navStatus(act, before, view)
	return m, nil
}

// navStatus picks the status a successful viewport transition reports.
// Most motions are silent; jumps and viewport anchors echo what they
// did, and word motions report when there was nowhere to go.
func (m Model) navStatus(act input.Action, before, after nav.Viewport) string {
	switch a := act.(type) {
	case input.JumpToFirstRow:
		return msgJumpedToFirstRow

	case input.JumpToRow:
		return msgJumpedToLine(a.Line)

	case input.SetViewportMode:
		switch a.Anchor {
		case input.AnchorTop:
			return msgViewTop
		case input.AnchorBottom:
			return msgViewBottom
		default:
			return msgViewCenter
		}

	case input.SeekNonEmpty:
		return m.seekStatus(before, after, a.Seek)
	}
	return ""
}

// seekStatus reports a word motion that found nothing. The last-cell
// seek is special: it lands on the final column even when the whole
// row is blank, so it is judged by the row rather than by movement.
func (m Model) seekStatus(before, after nav.Viewport, s input.Seek) string {
	switch s {
	case input.SeekNext:
		if after.Cursor.Col == before.Cursor.Col {
			return msgNoMoreCells
		}

	case input.SeekPrev:
		if after.Cursor.Col != before.Cursor.Col {
			return ""
		}
		if before.Cursor.Col == 0 {
			return msgAtFirstColumn
		}
		return msgNoPreviousCells

	default:
		if m.rowBlank(after.Cursor.Row) {
			return msgAllCellsEmpty
		}
	}
	return ""
}

func (m Model) rowBlank(row grid.RowIndex) bool {
	for c := range m.doc.ColumnCount() {
		if strings.TrimSpace(m.doc.CellText(row, grid.ColIndex(c))) != "" {
			return false
		}
	}
	return true
}

// switchFile activates a neighboring file in the session. The viewport
// resets on success; on failure the current document stays up.
func (m Model) switchFile(dir input.FileDirection) (tea.Model, tea.Cmd) {
	sdir := session.Next
	if dir == input.PreviousFile {
		sdir = session.Previous
	}

	target := m.session.Neighbor(sdir)
	doc, err := m.session.Switch(sdir)
	if err != nil {
		if errors.Is(err, session.ErrNoOtherFiles) {
			m.status = msgNoOtherFiles
		} else {
			log.ErrorErr(log.CatSession, "file switch failed", err, "target", target)
			m.status = msgLoadFailed(target)
		}
		return m, nil
	}

	m.doc = doc
	m.view = nav.Viewport{}
	m.status = msgLoaded(doc.Filename())
	return m, nil
}

// yankRow copies the cursor row to the system clipboard, tab-joined.
func (m Model) yankRow() (tea.Model, tea.Cmd) {
	row := m.doc.Row(m.view.Cursor.Row)
	if row == nil {
		return m, nil
	}

	if err := clipboard.WriteAll(strings.Join(row, "\t")); err != nil {
		log.ErrorErr(log.CatClip, "clipboard write failed", err)
		m.toast = m.toast.Show(msgClipboardError(err), toaster.LevelError)
		return m, toaster.ScheduleDismiss(toaster.DefaultDuration)
	}

	log.Debug(log.CatClip, "row copied", "row", m.view.Cursor.Row.LineNumber(), "cells", len(row))
	m.status = msgRowYanked
	return m, nil
}

// handlePromptKey runs the colon prompt. Esc cancels, Enter executes,
// anything else edits the input.
func (m Model) handlePromptKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.promptKeys.Cancel):
		m = m.closePrompt()
		m.status = msgCommandCancelled
		return m, nil

	case key.Matches(msg, m.promptKeys.Submit):
		line := m.prompt.Value()
		m = m.closePrompt()
		return m.runExCommand(line)
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m Model) closePrompt() Model {
	m.mode = ModeNormal
	m.prompt.Blur()
	m.prompt.SetValue("")
	return m
}

// runExCommand executes one submitted colon command.
func (m Model) runExCommand(line string) (tea.Model, tea.Cmd) {
	switch cmd := input.ParseExCommand(line).(type) {
	case input.ExQuit:
		return m, tea.Quit

	case input.ExWrite:
		m.status = msgReadOnlySave
		return m, nil

	case input.ExHelp:
		m.help = m.help.Toggle()
		return m, nil

	case input.ExNavigate:
		return m.applyExJump(cmd.Action)

	case input.ExColumnUsage:
		m.status = msgColumnUsage
		return m, nil

	case input.ExBadColumn:
		m.status = msgInvalidColumn(cmd.Ref)
		return m, nil

	case input.ExUnknown:
		m.status = msgUnknownExCommand(cmd.Input)
		return m, nil
	}

	return m, nil
}

// applyExJump applies a jump typed at the prompt. Prompt jumps echo in
// the prompt's own register, which names rows rather than lines.
func (m Model) applyExJump(act input.Action) (tea.Model, tea.Cmd) {
	view, err := m.engine.Apply(m.view, act, m.doc)
	if err != nil {
		m.status = navErrStatus(err)
		return m, nil
	}
	m.view = view

	switch a := act.(type) {
	case input.JumpToRow:
		m.status = msgJumpedToRow(a.Line)
	case input.JumpToColumn:
		m.status = msgJumpedToColumn(grid.ColumnLetter(grid.ColIndex(a.Number - 1)))
	}
	return m, nil
}

// navErrStatus renders a navigation error for the status bar. Motions
// on an empty grid stay silent; the empty-file tag in the status bar
// already says why nothing moves.
func navErrStatus(err error) string {
	if errors.Is(err, nav.ErrEmptyGrid) {
		return ""
	}
	return err.Error()
}

// commandKey converts a Bubble Tea key event to the string form the
// command resolver speaks.
func commandKey(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyUp:
		return "<up>"
	case tea.KeyDown:
		return "<down>"
	case tea.KeyLeft:
		return "<left>"
	case tea.KeyRight:
		return "<right>"
	case tea.KeyEnter:
		return "<enter>"
	case tea.KeyHome:
		return "<home>"
	case tea.KeyEnd:
		return "<end>"
	case tea.KeyPgUp:
		return "<pgup>"
	case tea.KeyPgDown:
		return "<pgdown>"
	case tea.KeyCtrlD:
		return "<ctrl+d>"
	case tea.KeyCtrlU:
		return "<ctrl+u>"
	case tea.KeyEsc:
		return "<escape>"
	case tea.KeyRunes:
		if len(msg.Runes) == 1 {
			return string(msg.Runes)
		}
	}
	return msg.String()
}
