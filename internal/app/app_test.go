package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/funkybooboo/lazycsv/internal/config"
	"github.com/funkybooboo/lazycsv/internal/document"
	"github.com/funkybooboo/lazycsv/internal/grid"
	"github.com/funkybooboo/lazycsv/internal/nav"
	"github.com/funkybooboo/lazycsv/internal/pubsub"
	"github.com/funkybooboo/lazycsv/internal/session"
	"github.com/funkybooboo/lazycsv/internal/testutil"
	"github.com/funkybooboo/lazycsv/internal/ui/help"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// newTestModel builds a model over a temp directory holding the given
// CSV files, with the first file (sorted by name) active and the
// watcher off.
func newTestModel(t *testing.T, files map[string]string) Model {
	t.Helper()
	m, _ := newTestModelIn(t, t.TempDir(), files, false)
	return m
}

func newTestModelIn(t *testing.T, dir string, files map[string]string, autoReload bool) (Model, string) {
	t.Helper()

	paths := testutil.SeedDir(t, dir, files)
	sess, err := session.New(paths, 0, document.Options{})
	require.NoError(t, err)

	cfg := config.Defaults()
	cfg.AutoReload = autoReload

	m, err := New(sess, cfg)
	require.NoError(t, err)
	return m, dir
}

func press(m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func pressRune(m Model, r rune) (Model, tea.Cmd) {
	return press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// typeKeys feeds each rune as its own keystroke, dropping the commands.
func typeKeys(m Model, keys string) Model {
	for _, r := range keys {
		if r == ' ' {
			m, _ = press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		m, _ = pressRune(m, r)
	}
	return m
}

func resize(m Model, width, height int) Model {
	updated, _ := m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return updated.(Model)
}

const peopleCSV = "name,age,city\nAlice,30,Oslo\nBob,25,Bergen\nCarol,35,Tromso\n"

func TestNew_LoadsActiveDocument(t *testing.T) {
	m := newTestModel(t, map[string]string{"a.csv": peopleCSV})

	require.Equal(t, "a.csv", m.doc.Filename())
	require.Equal(t, 3, m.doc.RowCount())
	require.Equal(t, nav.Viewport{}, m.view)
	require.Equal(t, ModeNormal, m.mode)
}

func TestUpdate_MotionKeys(t *testing.T) {
	m := newTestModel(t, map[string]string{"a.csv": peopleCSV})

	m = typeKeys(m, "jjl")
	require.Equal(t, grid.RowIndex(2), m.view.Cursor.Row)
	require.Equal(t, grid.ColIndex(1), m.view.Cursor.Col)

	m = typeKeys(m, "kh")
	require.Equal(t, grid.RowIndex(1), m.view.Cursor.Row)
	require.Equal(t, grid.ColIndex(0), m.view.Cursor.Col)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, grid.RowIndex(2), m.view.Cursor.Row)
}

func TestUpdate_CountPrefix(t *testing.T) {
	m := newTestModel(t, map[string]string{"a.csv": peopleCSV})

	m = typeKeys(m, "2j")
	require.Equal(t, grid.RowIndex(2), m.view.Cursor.Row)
	require.Empty(t, m.status)
}

func TestUpdate_CountedJumpReportsLine(t *testing.T) {
	m := newTestModel(t, map[string]string{"a.csv": peopleCSV})

	m = typeKeys(m, "2G")
	require.Equal(t, grid.RowIndex(1), m.view.Cursor.Row)
	require.Equal(t, "Jumped to line 2", m.status)
}

func TestUpdate_FirstAndLastRow(t *testing.T) {
	m := newTestModel(t, map[string]string{"a.csv": peopleCSV})

	m = typeKeys(m, "G")
	require.Equal(t, grid.RowIndex(2), m.view.Cursor.Row)
	require.Empty(t, m.status)

	m = typeKeys(m, "gg")
	require.Equal(t, grid.RowIndex(0), m.view.Cursor.Row)
	require.Equal(t, "Jumped to first row", m.status)
}

func TestUpdate_StatusClearsOnNextKey(t *testing.T) {
	m := newTestModel(t, map[string]string{"a.csv": peopleCSV})

	m = typeKeys(m, "gg")
	require.Equal(t, "Jumped to first row", m.status)

	m = typeKeys(m, "j")
	require.Empty(t, m.status)
}

func TestUpdate_UnknownSequence(t *testing.T) {
	m := newTestModel(t, map[string]string{"a.csv": peopleCSV})

	m = typeKeys(m, "gx")
	require.Equal(t, "Unknown command: g x", m.status)

	// The discarded sequence must not leak into the next key.
	m = typeKeys(m, "j")
	require.Equal(t, grid.RowIndex(1), m.view.Cursor.Row)
}

func TestUpdate_EscapeCancelsCount(t *testing.T) {
	m := newTestModel(t, map[string]string{"a.csv": peopleCSV})

	m = typeKeys(m, "5")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, "Command cancelled", m.status)

	m = typeKeys(m, "j")
	require.Equal(t, grid.RowIndex(1), m.view.Cursor.Row)
}

func TestUpdate_ViewportAnchors(t *testing.T) {
	m := newTestModel(t, map[string]string{"a.csv": peopleCSV})

	m = typeKeys(m, "zt")
	require.Equal(t, nav.ModeTop, m.view.Mode)
	require.Equal(t, "View: top", m.status)

	m = typeKeys(m, "zz")
	require.Equal(t, nav.ModeCenter, m.view.Mode)
	require.Equal(t, "View: center", m.status)

	m = typeKeys(m, "zb")
	require.Equal(t, nav.ModeBottom, m.view.Mode)
	require.Equal(t, "View: bottom", m.status)
}

func TestUpdate_DeleteIsRefused(t *testing.T) {
	m := newTestModel(t, map[string]string{"a.csv": peopleCSV})

	m = typeKeys(m, "dd")
	require.Equal(t, "Read-only: deleting rows is disabled", m.status)
	require.Equal(t, 3, m.doc.RowCount())
}

func TestUpdate_SeekStatuses(t *testing.T) {
	m := newTestModel(t, map[string]string{"a.csv": testutil.CSV("x,y,z", "a,,c")})

	m = typeKeys(m, "w")
	require.Equal(t, grid.ColIndex(2), m.view.Cursor.Col)
	require.Empty(t, m.status)

	m = typeKeys(m, "w")
	require.Equal(t, grid.ColIndex(2), m.view.Cursor.Col)
	require.Equal(t, "No more non-empty cells", m.status)

	m = typeKeys(m, "b")
	require.Equal(t, grid.ColIndex(0), m.view.Cursor.Col)
	require.Empty(t, m.status)

	m = typeKeys(m, "b")
	require.Equal(t, "Already at first column", m.status)
}

func TestUpdate_SeekAllCellsEmpty(t *testing.T) {
	m := newTestModel(t, map[string]string{"a.csv": testutil.CSV("x,y,z", ",,")})

	m = typeKeys(m, "e")
	require.Equal(t, grid.ColIndex(2), m.view.Cursor.Col)
	require.Equal(t, "All cells empty", m.status)
}

func TestUpdate_QuitKey(t *testing.T) {
	m := newTestModel(t, map[string]string{"a.csv": peopleCSV})

	_, cmd := pressRune(m, 'q')
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestUpdate_ForceQuitEverywhere(t *testing.T) {
	m := newTestModel(t, map[string]string{"a.csv": peopleCSV})
	m = typeKeys(m, ":")
	require.Equal(t, ModeCommand, m.mode)

	_, cmd := press(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestUpdate_HelpCapturesKeys(t *testing.T) {
	m := newTestModel(t, map[string]string{"a.csv": peopleCSV})
	m = resize(m, 80, 24)

	m = typeKeys(m, "?")
	require.True(t, m.help.Visible())

	// q closes help instead of quitting.
	var cmd tea.Cmd
	m, cmd = pressRune(m, 'q')
	require.False(t, m.help.Visible())
	require.NotNil(t, cmd)
	require.IsType(t, help.CloseMsg{}, cmd())
	require.Equal(t, grid.RowIndex(0), m.view.Cursor.Row)
}

func TestPrompt_RowJump(t *testing.T) {
	m := newTestModel(t, map[string]string{"a.csv": peopleCSV})

	m = typeKeys(m, ":2")
	require.Equal(t, ModeCommand, m.mode)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, ModeNormal, m.mode)
	require.Equal(t, grid.RowIndex(1), m.view.Cursor.Row)
	require.Equal(t, "Jumped to row 2", m.status)
}

func TestPrompt_RowJumpOutOfRange(t *testing.T) {
	m := newTestModel(t, map[string]string{"a.csv": peopleCSV})

	m = typeKeys(m, ":99")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, "row 99 out of range (max 3)", m.status)
	require.Equal(t, grid.RowIndex(0), m.view.Cursor.Row)
}

func TestPrompt_ColumnJump(t *testing.T) {
	m := newTestModel(t, map[string]string{"a.csv": peopleCSV})

	m = typeKeys(m, ":c B")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, grid.ColIndex(1), m.view.Cursor.Col)
	require.Equal(t, "Jumped to column B", m.status)
}

func TestPrompt_ColumnUsage(t *testing.T) {
	m := newTestModel(t, map[string]string{"a.csv": peopleCSV})

	m = typeKeys(m, ":c")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, "Usage: :c <column> (e.g., :c A, :c 5)", m.status)
}

func TestPrompt_InvalidColumn(t *testing.T) {
	m := newTestModel(t, map[string]string{"a.csv": peopleCSV})

	m = typeKeys(m, ":c 1x")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, "Invalid column: 1x", m.status)
}

func TestPrompt_Cancel(t *testing.T) {
	m := newTestModel(t, map[string]string{"a.csv": peopleCSV})

	m = typeKeys(m, ":15")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, ModeNormal, m.mode)
	require.Equal(t, "Command cancelled", m.status)
	require.Equal(t, grid.RowIndex(0), m.view.Cursor.Row)
	require.Empty(t, m.prompt.Value())
}

func TestPrompt_WriteRefused(t *testing.T) {
	m := newTestModel(t, map[string]string{"a.csv": peopleCSV})

	m = typeKeys(m, ":w")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, ModeNormal, m.mode)
	require.Equal(t, "Read-only: saving is disabled", m.status)
}

func TestPrompt_Unknown(t *testing.T) {
	m := newTestModel(t, map[string]string{"a.csv": peopleCSV})

	m = typeKeys(m, ":frob")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, "Unknown command: :frob", m.status)
}

func TestPrompt_QuitCommand(t *testing.T) {
	m := newTestModel(t, map[string]string{"a.csv": peopleCSV})

	m = typeKeys(m, ":q")
	_, cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestPrompt_HelpCommand(t *testing.T) {
	m := newTestModel(t, map[string]string{"a.csv": peopleCSV})
	m = resize(m, 80, 24)

	m = typeKeys(m, ":h")
	m, _ = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.help.Visible())
}

func TestSwitchFile_CyclesAndResets(t *testing.T) {
	m := newTestModel(t, map[string]string{
		"a.csv": peopleCSV,
		"b.csv": testutil.CSV("id", "1"),
	})

	m = typeKeys(m, "jl")
	m = typeKeys(m, "]")
	require.Equal(t, "b.csv", m.doc.Filename())
	require.Equal(t, "Loaded: b.csv", m.status)
	require.Equal(t, nav.Viewport{}, m.view)

	m = typeKeys(m, "[")
	require.Equal(t, "a.csv", m.doc.Filename())
}

func TestSwitchFile_SingleFile(t *testing.T) {
	m := newTestModel(t, map[string]string{"a.csv": peopleCSV})

	m = typeKeys(m, "]")
	require.Equal(t, "a.csv", m.doc.Filename())
	require.Equal(t, "No other CSV files in directory", m.status)
}

func TestYankRow_CopiesTabJoined(t *testing.T) {
	if err := clipboard.WriteAll("probe"); err != nil {
		t.Skipf("clipboard unavailable: %v", err)
	}

	m := newTestModel(t, map[string]string{"a.csv": peopleCSV})
	m = typeKeys(m, "jyy")
	require.Equal(t, "1 row yanked", m.status)

	got, err := clipboard.ReadAll()
	require.NoError(t, err)
	require.Equal(t, "Bob\t25\tBergen", got)
}

func TestYankRow_EmptyFileIsNoop(t *testing.T) {
	m := newTestModel(t, map[string]string{"a.csv": testutil.CSV("name,age")})

	m = typeKeys(m, "yy")
	require.Empty(t, m.status)
	require.False(t, m.toast.Visible())
}

func TestFileEvent_ReloadsActiveDocument(t *testing.T) {
	dir := t.TempDir()
	m, _ := newTestModelIn(t, dir, map[string]string{"a.csv": testutil.CSV("name", "Alice")}, true)
	defer func() { _ = m.Close() }()
	if m.watcherListener == nil {
		t.Skip("file watcher unavailable")
	}

	path := filepath.Join(dir, "a.csv")
	require.NoError(t, os.WriteFile(path, []byte(testutil.CSV("name", "Alice", "Bob")), 0o644))

	updated, cmd := m.Update(pubsub.Event[string]{Type: pubsub.UpdatedEvent, Payload: path})
	m = updated.(Model)
	require.NotNil(t, cmd)
	require.Equal(t, 2, m.doc.RowCount())
	require.True(t, m.toast.Visible())
}

func TestFileEvent_ClampsCursorOnShrink(t *testing.T) {
	dir := t.TempDir()
	m, _ := newTestModelIn(t, dir, map[string]string{"a.csv": peopleCSV}, true)
	defer func() { _ = m.Close() }()
	if m.watcherListener == nil {
		t.Skip("file watcher unavailable")
	}

	m = typeKeys(m, "G")
	require.Equal(t, grid.RowIndex(2), m.view.Cursor.Row)

	path := filepath.Join(dir, "a.csv")
	require.NoError(t, os.WriteFile(path, []byte(testutil.CSV("name,age,city", "Alice,30,Oslo")), 0o644))

	updated, _ := m.Update(pubsub.Event[string]{Type: pubsub.UpdatedEvent, Payload: path})
	m = updated.(Model)
	require.Equal(t, 1, m.doc.RowCount())
	require.Equal(t, grid.RowIndex(0), m.view.Cursor.Row)
}

func TestFileEvent_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	m, _ := newTestModelIn(t, dir, map[string]string{
		"a.csv": peopleCSV,
		"b.csv": testutil.CSV("id", "1"),
	}, true)
	defer func() { _ = m.Close() }()
	if m.watcherListener == nil {
		t.Skip("file watcher unavailable")
	}

	updated, cmd := m.Update(pubsub.Event[string]{Type: pubsub.UpdatedEvent, Payload: filepath.Join(dir, "b.csv")})
	m = updated.(Model)
	require.NotNil(t, cmd)
	require.Equal(t, "a.csv", m.doc.Filename())
	require.False(t, m.toast.Visible())
}

func TestFileEvent_DeletedKeepsDocument(t *testing.T) {
	dir := t.TempDir()
	m, _ := newTestModelIn(t, dir, map[string]string{"a.csv": peopleCSV}, true)
	defer func() { _ = m.Close() }()
	if m.watcherListener == nil {
		t.Skip("file watcher unavailable")
	}

	updated, _ := m.Update(pubsub.Event[string]{Type: pubsub.DeletedEvent, Payload: filepath.Join(dir, "a.csv")})
	m = updated.(Model)
	require.Equal(t, 3, m.doc.RowCount())
	require.True(t, m.toast.Visible())
}

func TestView_ComposesPanes(t *testing.T) {
	m := newTestModel(t, map[string]string{"a.csv": peopleCSV})
	m = resize(m, 60, 12)

	view := m.View()
	require.Equal(t, 12, lipgloss.Height(view))
	require.Contains(t, view, "lazycsv: a.csv")
	require.Contains(t, view, "-- NORMAL --")
	require.NotContains(t, view, "Files")
}

func TestView_ShowsFileStripForMultipleFiles(t *testing.T) {
	m := newTestModel(t, map[string]string{
		"a.csv": peopleCSV,
		"b.csv": testutil.CSV("id", "1"),
	})
	m = resize(m, 60, 14)

	view := m.View()
	require.Equal(t, 14, lipgloss.Height(view))
	require.Contains(t, view, "Files (1/2): ")
	require.Contains(t, view, "► a.csv")
}

func TestView_CommandLineReplacesStatus(t *testing.T) {
	m := newTestModel(t, map[string]string{"a.csv": peopleCSV})
	m = resize(m, 60, 12)

	m = typeKeys(m, ":15")
	view := m.View()
	require.Contains(t, view, ":15")
	require.NotContains(t, view, "-- NORMAL --")
}

func TestView_StatusBarHidden(t *testing.T) {
	paths := testutil.SeedDir(t, t.TempDir(), map[string]string{"a.csv": peopleCSV})
	sess, err := session.New(paths, 0, document.Options{})
	require.NoError(t, err)

	cfg := config.Defaults()
	cfg.AutoReload = false
	cfg.UI.ShowStatusBar = false
	m, err := New(sess, cfg)
	require.NoError(t, err)
	m = resize(m, 60, 12)

	view := m.View()
	require.Equal(t, 12, lipgloss.Height(view))
	require.NotContains(t, view, "-- NORMAL --")

	// The line comes back when it has something to carry.
	m = typeKeys(m, "gg")
	view = m.View()
	require.Equal(t, 12, lipgloss.Height(view))
	require.Contains(t, view, "Jumped to first row")
}

func TestView_BlankBeforeFirstResize(t *testing.T) {
	m := newTestModel(t, map[string]string{"a.csv": peopleCSV})
	require.Empty(t, m.View())
}

func TestClose_WithoutWatcher(t *testing.T) {
	m := newTestModel(t, map[string]string{"a.csv": peopleCSV})
	require.NoError(t, m.Close())
}

func TestClose_StopsWatcher(t *testing.T) {
	m, _ := newTestModelIn(t, t.TempDir(), map[string]string{"a.csv": peopleCSV}, true)
	if m.watcherHandle == nil {
		t.Skip("file watcher unavailable")
	}
	require.NoError(t, m.Close())
}

func TestCommandKey_SpecialKeys(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want string
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, "<up>"},
		{tea.KeyMsg{Type: tea.KeyDown}, "<down>"},
		{tea.KeyMsg{Type: tea.KeyLeft}, "<left>"},
		{tea.KeyMsg{Type: tea.KeyRight}, "<right>"},
		{tea.KeyMsg{Type: tea.KeyEnter}, "<enter>"},
		{tea.KeyMsg{Type: tea.KeyHome}, "<home>"},
		{tea.KeyMsg{Type: tea.KeyEnd}, "<end>"},
		{tea.KeyMsg{Type: tea.KeyPgUp}, "<pgup>"},
		{tea.KeyMsg{Type: tea.KeyPgDown}, "<pgdown>"},
		{tea.KeyMsg{Type: tea.KeyCtrlD}, "<ctrl+d>"},
		{tea.KeyMsg{Type: tea.KeyCtrlU}, "<ctrl+u>"},
		{tea.KeyMsg{Type: tea.KeyEsc}, "<escape>"},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}}, "g"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, commandKey(tt.msg), "key %v", tt.msg)
	}
}

func TestPageKeys_MoveByPage(t *testing.T) {
	var rows strings.Builder
	rows.WriteString("n\n")
	for range 50 {
		rows.WriteString("x\n")
	}
	m := newTestModel(t, map[string]string{"a.csv": rows.String()})

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyCtrlD})
	require.Equal(t, grid.RowIndex(20), m.view.Cursor.Row)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyCtrlU})
	require.Equal(t, grid.RowIndex(0), m.view.Cursor.Row)
}
