// Package log provides structured logging for clipdash.
//
// Package: log
// Title: clipdash Structured Logging
// Description: Structured, leveled logging with JSON and text output. Every
//              dashboard action carries an action ID so a single line in the
//              log file can be traced back to the command that produced it.
//              Logging is synchronous; the dashboard runs one event loop and
//              never logs from hot paths.
// Author: clipdash contributors
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Structured logger with levels, fields and formatters
// - 2026-10-19 v0.2.0: Action IDs, error-severity mapping, operation timers
//
// Usage:
//
//	import cdlog "github.com/msto63/clipdash/foundation/core/log"
//
//	logger := cdlog.NewWithConfig(cdlog.Config{
//	    Level:  cdlog.LevelInfo,
//	    Format: cdlog.FormatJSON,
//	    Output: file,
//	    Name:   "clipdash",
//	})
//	logger.Info("clipboard sorted", cdlog.Int("lines", 12))
//
//	timer := logger.WithActionID(id).StartTimer("list.sort")
//	defer timer.Stop()
package log
