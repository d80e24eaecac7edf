// ============================================================================
// clipdash - Clipboard Dashboard
// ============================================================================
//
// Package:     dashboard
// Description: Rendering of the dashboard panels
// Author:      clipdash contributors
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/msto63/clipdash/pkg/core/version"
)

// View renders the dashboard
func (m Model) View() string {
	if !m.ready {
		return "Loading dashboard..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderBuffers(), m.renderActions()))
	b.WriteString("\n")

	b.WriteString(m.renderArgs())
	b.WriteString("\n")

	b.WriteString(m.renderActionHelp())
	b.WriteString("\n")

	b.WriteString(PanelStyle.Width(max(m.width-2, 10)).Render(m.log.View()))
	b.WriteString("\n")

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")

	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) renderHeader() string {
	logo := LogoStyle.Render("ClipDash")
	sub := SubHeaderStyle.Render("clipboard dashboard v" + version.Version)

	b := m.svc.Behaviour()
	toggles := strings.Join([]string{
		renderToggle("store on focus", b.StoreOnFocus),
		renderToggle("retrieve on focus", b.RetrieveOnFocus),
		renderToggle("variables", b.VariableSubstitution),
	}, "  ")

	return logo + "  " + sub + "    " + toggles
}

func renderToggle(label string, on bool) string {
	if on {
		return ToggleOnStyle.Render("[x] " + label)
	}
	return ToggleOffStyle.Render("[ ] " + label)
}

func (m Model) panelStyle(p pane) lipgloss.Style {
	if m.focus == p {
		return ActivePanelStyle
	}
	return PanelStyle
}

// renderBuffers renders the buffer list, scrolled so the cursor stays
// visible
func (m Model) renderBuffers() string {
	width, _ := m.columnWidths()
	height := m.mainHeight() - 2
	inner := max(width-4, 10)

	summaries := m.svc.Summaries()
	title := PanelTitleStyle.Render(fmt.Sprintf("Buffers (%d)", len(summaries)))

	rows := max(height-1, 1)
	start := 0
	if m.sel.Focus >= rows {
		start = m.sel.Focus - rows + 1
	}
	end := min(start+rows, len(summaries))

	lines := []string{title}
	for i := start; i < end; i++ {
		lines = append(lines, m.renderBufferLine(i, summaries[i], inner))
	}
	if len(summaries) == 0 {
		lines = append(lines, SubHeaderStyle.Render("no buffers, press s to store the clipboard"))
	}

	return m.panelStyle(paneBuffers).
		Width(width - 2).
		Height(height).
		Render(strings.Join(lines, "\n"))
}

func (m Model) renderBufferLine(i int, summary string, width int) string {
	marker := "  "
	if i == m.sel.Focus {
		marker = FocusMarkerStyle.Render("> ")
	}
	check := "[ ]"
	if m.sel.Has(i) {
		check = "[x]"
	}
	prefix := fmt.Sprintf("%s %s ", BufferIndexStyle.Render(fmt.Sprintf("%3d", i)), check)
	text := ansi.Truncate(summary, max(width-lipgloss.Width(prefix)-2, 1), "…")

	style := BufferStyle
	switch {
	case m.sel.Has(i):
		style = BufferSelectedStyle
	case i == m.sel.Focus:
		style = BufferCursorStyle
	}
	return marker + prefix + style.Render(text)
}

func (m Model) renderActions() string {
	_, width := m.columnWidths()
	return m.panelStyle(paneActions).
		Width(width - 2).
		Height(m.mainHeight() - 2).
		Render(m.actions.View())
}

// renderArgs renders both inputs, dimming the label of an argument the
// current action ignores
func (m Model) renderArgs() string {
	action, ok := m.selectedAction()
	label := func(name string, used bool) string {
		if ok && !used {
			return ArgUnusedStyle.Width(6).Render(name)
		}
		return ArgLabelStyle.Render(name)
	}
	return label("arg1", action.Uses.Arg1()) + m.arg1.View() + "\n" +
		label("arg2", action.Uses.Arg2()) + m.arg2.View()
}

func (m Model) renderActionHelp() string {
	action, ok := m.selectedAction()
	if !ok {
		return strings.Repeat("\n", helpHeight-1)
	}
	title := HelpTitleStyle.Render(action.Title) + "  " + BufferIndexStyle.Render(action.Key())
	body := ansi.Wordwrap(action.Help, max(m.width-2, 10), "")
	lines := append([]string{title}, strings.Split(body, "\n")...)
	for len(lines) < helpHeight {
		lines = append(lines, "")
	}
	return HelpBodyStyle.Render(strings.Join(lines[:helpHeight], "\n"))
}

func (m Model) renderStatusBar() string {
	width := max(m.width, 10)
	switch {
	case m.status.Message == "":
		return StatusBarStyle.Width(width).Render(fmt.Sprintf("%d buffer(s), %d selected",
			m.svc.Buffers().Len(), m.sel.Len()))
	case !m.status.OK():
		return StatusErrorStyle.Width(width).Render(m.status.String())
	default:
		return StatusOKStyle.Width(width).Render(m.status.String())
	}
}
