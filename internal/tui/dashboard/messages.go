// ============================================================================
// clipdash - Clipboard Dashboard
// ============================================================================
//
// Package:     dashboard
// Description: Message types for the dashboard update loop
// Author:      clipdash contributors
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package dashboard

// hotkeyMsg is sent by the global hotkey listener
type hotkeyMsg struct{}

// startupMsg runs the store on focus toggle once when the dashboard opens
type startupMsg struct{}

// clearStatusMsg clears the status bar unless a newer status replaced it
type clearStatusMsg struct {
	seq int
}
