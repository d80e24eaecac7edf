// ============================================================================
// clipdash - Clipboard Dashboard
// ============================================================================
//
// Package:     dashboard
// Description: Starts the dashboard on the system clipboard
// Author:      clipdash contributors
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package dashboard

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/clipdash/internal/clip"
	"github.com/msto63/clipdash/pkg/core/config"
	"github.com/msto63/clipdash/pkg/core/logging"
)

// Run shows the dashboard until the user quits or ctx is cancelled
func Run(ctx context.Context, cfg *config.Config, logger *logging.Logger) error {
	port := clip.NewSystemClipboard(logger)
	if !port.Available() {
		logger.Warn("No clipboard utility found, the clipboard reads as empty")
	}

	svc := clip.NewService(port, cfg, logger)
	defer func() {
		if err := svc.Close(); err != nil {
			logger.Warn("Failed to remove temp files", "error", err.Error())
		}
	}()

	p := tea.NewProgram(
		New(ctx, svc, cfg),
		tea.WithAltScreen(),
		tea.WithReportFocus(),
		tea.WithContext(ctx),
	)

	if cfg.Hotkey.Enabled {
		stop, err := registerHotkey(cfg.Hotkey, logger, func() { p.Send(hotkeyMsg{}) })
		if err != nil {
			logger.Warn("Failed to register hotkey", "error", err.Error())
		} else {
			defer stop()
		}
	}

	logger.Info("Dashboard started", "buffers", svc.Buffers().Len())
	_, err := p.Run()
	if err != nil && ctx.Err() != nil {
		// Cancelled from outside, not a failure
		return nil
	}
	return err
}
