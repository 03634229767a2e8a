// Package app contains the root application model.
package app

import (
	"context"
	"path/filepath"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/funkybooboo/lazycsv/internal/config"
	"github.com/funkybooboo/lazycsv/internal/document"
	"github.com/funkybooboo/lazycsv/internal/input"
	"github.com/funkybooboo/lazycsv/internal/keys"
	"github.com/funkybooboo/lazycsv/internal/log"
	"github.com/funkybooboo/lazycsv/internal/nav"
	"github.com/funkybooboo/lazycsv/internal/pubsub"
	"github.com/funkybooboo/lazycsv/internal/session"
	"github.com/funkybooboo/lazycsv/internal/ui/help"
	"github.com/funkybooboo/lazycsv/internal/ui/statusbar"
	"github.com/funkybooboo/lazycsv/internal/ui/styles"
	"github.com/funkybooboo/lazycsv/internal/ui/table"
	"github.com/funkybooboo/lazycsv/internal/ui/toaster"
	"github.com/funkybooboo/lazycsv/internal/watcher"
)

// Mode is the modal state of the UI. Normal mode feeds keys to the
// command resolver; command mode routes them to the colon prompt.
type Mode int

const (
	ModeNormal Mode = iota
	ModeCommand
)

// Model is the root application state.
type Model struct {
	cfg     config.Config
	session *session.Session
	doc     *document.Document

	// Navigation state
	engine   nav.Engine
	view     nav.Viewport
	cmdState input.State

	// Modal state
	mode   Mode
	prompt textinput.Model

	// status is the transient message shown in the status bar until the
	// next keystroke.
	status string

	keys       keys.KeyMap
	promptKeys keys.PromptKeyMap

	help  help.Model
	toast toaster.Model
	grid  table.Renderer

	width  int
	height int

	// File watcher for auto-reload (pubsub-based)
	watcherHandle   *watcher.Watcher
	watcherCtx      context.Context
	watcherCancel   context.CancelFunc
	watcherListener *pubsub.ContinuousListener[string]
}

// New creates the application model over an open session. The active
// file is parsed before the program starts so startup failures surface
// as plain CLI errors rather than a broken screen.
func New(sess *session.Session, cfg config.Config) (Model, error) {
	doc, err := sess.Load()
	if err != nil {
		return Model{}, err
	}

	prompt := textinput.New()
	prompt.Prompt = ":"
	prompt.CharLimit = 120
	prompt.PromptStyle = styles.PromptStyle
	prompt.TextStyle = styles.PromptStyle

	// Watch the session directory when auto-reload is enabled. The
	// viewer works fine without it, so watcher failures are ignored.
	var (
		watcherHandle   *watcher.Watcher
		watcherCtx      context.Context
		watcherCancel   context.CancelFunc
		watcherListener *pubsub.ContinuousListener[string]
	)
	if cfg.AutoReload {
		w, err := watcher.New(watcher.DefaultConfig(filepath.Dir(sess.ActiveFile())))
		if err == nil {
			if err := w.Start(); err == nil {
				watcherHandle = w
				watcherCtx, watcherCancel = context.WithCancel(context.Background())
				watcherListener = pubsub.NewContinuousListener(watcherCtx, w.Events())
			} else {
				_ = w.Stop()
			}
		}
	}

	return Model{
		cfg:             cfg,
		session:         sess,
		doc:             doc,
		engine:          nav.Engine{VisibleCols: cfg.UI.MaxVisibleColumns},
		prompt:          prompt,
		keys:            keys.DefaultKeyMap(),
		promptKeys:      keys.DefaultPromptKeyMap(),
		help:            help.New(),
		toast:           toaster.New(),
		grid:            table.New(cfg.UI.MaxVisibleColumns, cfg.UI.MaxCellWidth),
		watcherHandle:   watcherHandle,
		watcherCtx:      watcherCtx,
		watcherCancel:   watcherCancel,
		watcherListener: watcherListener,
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.watcherListener != nil {
		return m.watcherListener.Listen()
	}
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help = m.help.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pubsub.Event[string]:
		return m.handleFileEvent(msg)

	case toaster.DismissMsg:
		m.toast = m.toast.Hide()
		return m, nil

	case help.CloseMsg:
		m.status = ""
		return m, nil
	}

	return m, nil
}

// handleFileEvent reacts to one settled file change from the watcher.
// Every branch re-arms the listener so the next change is seen too.
func (m Model) handleFileEvent(ev pubsub.Event[string]) (tea.Model, tea.Cmd) {
	listen := m.watcherListener.Listen()

	// The cache entry goes regardless of which file changed, so the next
	// switch onto it re-parses.
	m.session.Invalidate(ev.Payload)

	if !samePath(ev.Payload, m.session.ActiveFile()) {
		return m, listen
	}

	if ev.Type == pubsub.DeletedEvent {
		log.Warn(log.CatWatcher, "active file deleted", "path", ev.Payload)
		m.toast = m.toast.Show(msgFileDeleted(filepath.Base(ev.Payload)), toaster.LevelWarn)
		return m, tea.Batch(listen, toaster.ScheduleDismiss(toaster.DefaultDuration))
	}

	doc, err := m.session.Reload()
	if err != nil {
		log.ErrorErr(log.CatWatcher, "reload after change failed", err, "path", ev.Payload)
		m.toast = m.toast.Show(msgReloadFailed(ev.Payload), toaster.LevelError)
		return m, tea.Batch(listen, toaster.ScheduleDismiss(toaster.DefaultDuration))
	}

	m.doc = doc
	m.view = m.engine.ClampTo(m.view, doc)
	m.toast = m.toast.Show(msgReloaded(doc.Filename()), toaster.LevelInfo)
	return m, tea.Batch(listen, toaster.ScheduleDismiss(toaster.DefaultDuration))
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	statusLine := m.statusLineVisible()
	tableHeight := m.height
	if statusLine {
		tableHeight--
	}
	if m.session.HasMultipleFiles() {
		tableHeight -= statusbar.StripHeight
	}

	sections := make([]string, 0, 3)
	sections = append(sections, m.grid.Render(m.doc, m.view, m.width, tableHeight))
	if m.session.HasMultipleFiles() {
		sections = append(sections, statusbar.FileStrip(m.session.Files(), m.session.ActiveIndex(), m.width))
	}
	if statusLine {
		sections = append(sections, statusbar.Render(statusbar.Context{
			Doc:         m.doc,
			View:        m.view,
			Message:     m.status,
			CommandLine: m.commandLine(),
			Width:       m.width,
		}))
	}

	view := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.toast.Visible() {
		view = m.toast.Overlay(view, m.width, m.height)
	}
	return m.help.Overlay(view)
}

// statusLineVisible honors the show_status_bar setting. The line comes
// back whenever there is something it must carry, so an open prompt or
// a pending message is never lost.
func (m Model) statusLineVisible() bool {
	return m.cfg.UI.ShowStatusBar || m.mode == ModeCommand || m.status != ""
}

func (m Model) commandLine() string {
	if m.mode != ModeCommand {
		return ""
	}
	return m.prompt.View()
}

// Close releases resources held by the application.
func (m *Model) Close() error {
	if m.watcherCancel != nil {
		m.watcherCancel()
	}
	if m.watcherHandle != nil {
		return m.watcherHandle.Stop()
	}
	return nil
}

// samePath compares two paths the way discovery does, by absolute form.
func samePath(a, b string) bool {
	aa, _ := filepath.Abs(a)
	ba, _ := filepath.Abs(b)
	return aa == ba
}
