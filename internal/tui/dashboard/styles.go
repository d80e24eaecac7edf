// ============================================================================
// clipdash - Clipboard Dashboard
// ============================================================================
//
// Package:     dashboard
// Description: Styles for the dashboard TUI
// Author:      clipdash contributors
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package dashboard

import (
	"github.com/charmbracelet/lipgloss"
)

// Color Palette
var (
	// Primary colors
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorAccent    = lipgloss.Color("#F59E0B") // Amber
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorDimmed    = lipgloss.Color("#374151") // Dark Gray

	// Background colors
	ColorBg         = lipgloss.Color("#0F172A") // Slate 900
	ColorBgPanel    = lipgloss.Color("#1E293B") // Slate 800
	ColorBgSelected = lipgloss.Color("#3B0764") // Purple 950

	// Text colors
	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
	ColorTextDim   = lipgloss.Color("#64748B") // Slate 500
)

// Header styles
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	SubHeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)
)

// Panel styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDimmed).
			Padding(0, 1)

	ActivePanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorPrimary).
				Padding(0, 1)

	PanelTitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)
)

// Buffer list styles
var (
	BufferStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	BufferCursorStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Background(ColorBgPanel).
				Bold(true)

	BufferSelectedStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Background(ColorBgSelected)

	BufferIndexStyle = lipgloss.NewStyle().
				Foreground(ColorTextDim)

	FocusMarkerStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess).
				Bold(true)
)

// Argument and help styles
var (
	ArgLabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Width(6)

	ArgUnusedStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim).
			Italic(true)

	HelpTitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	HelpBodyStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Toggle and status bar styles
var (
	ToggleOnStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	ToggleOffStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Background(ColorBgPanel).
			Padding(0, 1)

	StatusOKStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Background(ColorBgPanel).
			Padding(0, 1)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Background(ColorBgPanel).
				Bold(true).
				Padding(0, 1)

	LogLineStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	LogErrorLineStyle = lipgloss.NewStyle().
				Foreground(ColorError)
)
