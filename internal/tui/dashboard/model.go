// ============================================================================
// clipdash - Clipboard Dashboard
// ============================================================================
//
// Package:     dashboard
// Description: Bubble Tea model for the clipboard dashboard
// Author:      clipdash contributors
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package dashboard

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/clipdash/internal/clip"
	"github.com/msto63/clipdash/pkg/core/config"
)

// pane is the part of the dashboard receiving keys
type pane int

const (
	paneBuffers pane = iota
	paneActions
	paneArg1
	paneArg2
	paneCount
)

// maxLogLines bounds the status history shown in the log panel
const maxLogLines = 200

// logEntry is one line of the status history
type logEntry struct {
	text string
	err  bool
}

// actionItem adapts a catalog action to the bubbles list
type actionItem struct {
	action clip.Action
}

func (i actionItem) Title() string       { return i.action.Title }
func (i actionItem) Description() string { return i.action.Key() }
func (i actionItem) FilterValue() string { return i.action.Title + " " + i.action.Key() }

// Model is the dashboard state
type Model struct {
	ctx context.Context
	svc *clip.Service

	keys keyMap
	help help.Model

	actions list.Model
	arg1    textinput.Model
	arg2    textinput.Model
	log     viewport.Model

	// sel holds the selected buffers. Its focus is the buffer cursor.
	sel   clip.Selection
	focus pane

	status        clip.Status
	statusSeq     int
	statusTimeout time.Duration
	logLines      []logEntry

	width  int
	height int
	ready  bool
}

// New creates a dashboard model over svc
func New(ctx context.Context, svc *clip.Service, cfg *config.Config) Model {
	items := make([]list.Item, 0, len(clip.Catalog()))
	for _, a := range clip.Catalog() {
		items = append(items, actionItem{action: a})
	}

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(ColorPrimary).
		BorderLeftForeground(ColorPrimary)

	actions := list.New(items, delegate, 0, 0)
	actions.Title = "Actions"
	actions.Styles.Title = PanelTitleStyle
	actions.SetShowStatusBar(false)
	actions.SetShowHelp(false)
	actions.DisableQuitKeybindings()

	arg1 := textinput.New()
	arg1.Placeholder = "arg1"
	arg1.CharLimit = 4096
	arg1.Width = 40

	arg2 := textinput.New()
	arg2.Placeholder = "arg2"
	arg2.CharLimit = 4096
	arg2.Width = 40

	return Model{
		ctx:           ctx,
		svc:           svc,
		keys:          defaultKeyMap(),
		help:          help.New(),
		actions:       actions,
		arg1:          arg1,
		arg2:          arg2,
		log:           viewport.New(0, 0),
		statusTimeout: cfg.General.StatusTimeout.Duration,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		func() tea.Msg { return startupMsg{} },
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.ready = true
		return m, nil

	case tea.FocusMsg:
		return m.handleFocus()

	case startupMsg:
		if st, ran := m.svc.StoreOnFocus(m.ctx, m.sel); ran {
			return m.applyStatus(st)
		}
		return m, nil

	case hotkeyMsg:
		return m.runAction("buffer.store")

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = clip.Status{}
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case paneArg1:
		m.arg1, cmd = m.arg1.Update(msg)
	case paneArg2:
		m.arg2, cmd = m.arg2.Update(msg)
	case paneActions:
		m.actions, cmd = m.actions.Update(msg)
	}
	return m, cmd
}

// handleFocus runs the focus toggles when the terminal gains focus. Store
// runs before retrieve.
func (m Model) handleFocus() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if st, ran := m.svc.StoreOnFocus(m.ctx, m.sel); ran {
		var cmd tea.Cmd
		m, cmd = m.applyStatus(st)
		cmds = append(cmds, cmd)
	}
	if st, ran := m.svc.RetrieveOnFocus(m.ctx, m.sel); ran {
		var cmd tea.Cmd
		m, cmd = m.applyStatus(st)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// An open filter prompt consumes every key
	if m.focus == paneActions && m.actions.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.actions, cmd = m.actions.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.NextPane):
		return m.setFocus((m.focus + 1) % paneCount)
	case key.Matches(msg, m.keys.PrevPane):
		return m.setFocus((m.focus + paneCount - 1) % paneCount)
	}

	if m.focus == paneArg1 || m.focus == paneArg2 {
		return m.handleArgKeys(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil
	case key.Matches(msg, m.keys.Store):
		return m.runAction("buffer.store")
	case key.Matches(msg, m.keys.Retrieve):
		return m.runAction("buffer.retrieve")
	case key.Matches(msg, m.keys.StoreFoc):
		b := m.svc.Behaviour()
		b.StoreOnFocus = !b.StoreOnFocus
		m.svc.SetBehaviour(b)
		return m, nil
	case key.Matches(msg, m.keys.RetrFoc):
		b := m.svc.Behaviour()
		b.RetrieveOnFocus = !b.RetrieveOnFocus
		m.svc.SetBehaviour(b)
		return m, nil
	case key.Matches(msg, m.keys.VarSubst):
		b := m.svc.Behaviour()
		b.VariableSubstitution = !b.VariableSubstitution
		m.svc.SetBehaviour(b)
		return m, nil
	}

	if m.focus == paneActions {
		if key.Matches(msg, m.keys.Run) {
			return m.runSelectedAction()
		}
		var cmd tea.Cmd
		m.actions, cmd = m.actions.Update(msg)
		return m, cmd
	}
	return m.handleBufferKeys(msg)
}

func (m Model) handleArgKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc:
		return m.setFocus(paneBuffers)
	case key.Matches(msg, m.keys.Run):
		return m.runSelectedAction()
	}

	var cmd tea.Cmd
	if m.focus == paneArg1 {
		m.arg1, cmd = m.arg1.Update(msg)
	} else {
		m.arg2, cmd = m.arg2.Update(msg)
	}
	return m, cmd
}

func (m Model) handleBufferKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := m.svc.Buffers().Len()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.sel.Focus > 0 {
			m.sel.Focus--
		}
	case key.Matches(msg, m.keys.Down):
		if m.sel.Focus < n-1 {
			m.sel.Focus++
		}
	case key.Matches(msg, m.keys.Toggle):
		if n > 0 {
			m.sel = m.sel.Toggle(m.sel.Focus)
		}
	case key.Matches(msg, m.keys.SelectAll):
		focus := m.sel.Focus
		if m.sel.Len() == n {
			m.sel = clip.Selection{}
		} else {
			all := make([]int, n)
			for i := range all {
				all[i] = i
			}
			m.sel = clip.Select(all...)
		}
		m.sel.Focus = focus
	case key.Matches(msg, m.keys.Run):
		if m.sel.Empty() && n > 0 {
			m.sel = clip.Select(m.sel.Focus)
		}
		return m.runAction("buffer.retrieve")
	case key.Matches(msg, m.keys.Delete):
		return m.runAction("buffer.delete")
	case key.Matches(msg, m.keys.MoveUp):
		return m.runAction("buffer.up")
	case key.Matches(msg, m.keys.MoveDown):
		return m.runAction("buffer.down")
	}
	return m, nil
}

// setFocus moves keyboard focus to p, focusing the matching text input
func (m Model) setFocus(p pane) (tea.Model, tea.Cmd) {
	m.focus = p
	m.arg1.Blur()
	m.arg2.Blur()
	switch p {
	case paneArg1:
		return m, m.arg1.Focus()
	case paneArg2:
		return m, m.arg2.Focus()
	}
	return m, nil
}

// selectedAction returns the action under the palette cursor
func (m Model) selectedAction() (clip.Action, bool) {
	item, ok := m.actions.SelectedItem().(actionItem)
	if !ok {
		return clip.Action{}, false
	}
	return item.action, true
}

func (m Model) runSelectedAction() (tea.Model, tea.Cmd) {
	action, ok := m.selectedAction()
	if !ok {
		return m, nil
	}
	return m.runAction(action.Key())
}

// runAction runs one catalog action with the current arguments and
// selection
func (m Model) runAction(name string) (Model, tea.Cmd) {
	st := m.svc.Run(m.ctx, name, clip.Args{
		Arg1:      m.arg1.Value(),
		Arg2:      m.arg2.Value(),
		Selection: m.sel,
	})
	return m.applyStatus(st)
}

// applyStatus shows st in the status bar and the log panel and schedules
// the status to clear
func (m Model) applyStatus(st clip.Status) (Model, tea.Cmd) {
	m.sel = st.Selection.Clamp(m.svc.Buffers().Len())
	m.status = st
	m.statusSeq++

	entry := logEntry{text: time.Now().Format("15:04:05") + "  " + st.String(), err: !st.OK()}
	m.logLines = append([]logEntry{entry}, m.logLines...)
	if len(m.logLines) > maxLogLines {
		m.logLines = m.logLines[:maxLogLines]
	}
	m.log.SetContent(m.renderLogLines())
	m.log.GotoTop()

	if m.statusTimeout <= 0 {
		return m, nil
	}
	seq := m.statusSeq
	return m, tea.Tick(m.statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// resize lays the panes out for the current terminal size
func (m *Model) resize() {
	m.help.Width = m.width
	_, actionsWidth := m.columnWidths()
	mainHeight := m.mainHeight()

	m.actions.SetSize(actionsWidth-4, mainHeight-2)
	m.arg1.Width = max(m.width-12, 10)
	m.arg2.Width = max(m.width-12, 10)
	m.log.Width = max(m.width-4, 10)
	m.log.Height = logHeight
}

const (
	headerHeight = 2
	argsHeight   = 2
	helpHeight   = 3
	logHeight    = 5
)

// mainHeight is the height of the buffer and action panels, borders
// included
func (m Model) mainHeight() int {
	bottom := argsHeight + helpHeight + logHeight + 2 + 1 + lineCount(m.help.View(m.keys))
	return max(m.height-headerHeight-bottom, 6)
}

// columnWidths splits the terminal between the buffer list and the
// action palette
func (m Model) columnWidths() (int, int) {
	buffers := m.width * 3 / 5
	return buffers, m.width - buffers
}

func (m Model) renderLogLines() string {
	lines := make([]string, len(m.logLines))
	for i, e := range m.logLines {
		if e.err {
			lines[i] = LogErrorLineStyle.Render(e.text)
		} else {
			lines[i] = LogLineStyle.Render(e.text)
		}
	}
	return strings.Join(lines, "\n")
}

func lineCount(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}
