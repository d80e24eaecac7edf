// ============================================================================
// clipdash - Clipboard Dashboard
// ============================================================================
//
// Package:     dashboard
// Description: Key bindings and their help entries
// Author:      clipdash contributors
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package dashboard

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextPane  key.Binding
	PrevPane  key.Binding
	Toggle    key.Binding
	SelectAll key.Binding
	Run       key.Binding
	Store     key.Binding
	Retrieve  key.Binding
	Delete    key.Binding
	MoveUp    key.Binding
	MoveDown  key.Binding
	StoreFoc  key.Binding
	RetrFoc   key.Binding
	VarSubst  key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		NextPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next pane"),
		),
		PrevPane: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous pane"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "select"),
		),
		SelectAll: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "select all/none"),
		),
		Run: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run / retrieve"),
		),
		Store: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "store clipboard"),
		),
		Retrieve: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retrieve"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d/del", "delete"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("K", "shift+up"),
			key.WithHelp("K", "move up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("J", "shift+down"),
			key.WithHelp("J", "move down"),
		),
		StoreFoc: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "store on focus"),
		),
		RetrFoc: key.NewBinding(
			key.WithKeys("O"),
			key.WithHelp("O", "retrieve on focus"),
		),
		VarSubst: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "variable substitution"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPane, k.Toggle, k.Run, k.Store, k.Retrieve, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextPane, k.PrevPane},
		{k.Toggle, k.SelectAll, k.Run, k.Store, k.Retrieve},
		{k.Delete, k.MoveUp, k.MoveDown},
		{k.StoreFoc, k.RetrFoc, k.VarSubst, k.Help, k.Quit},
	}
}
