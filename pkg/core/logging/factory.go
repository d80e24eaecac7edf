// ============================================================================
// clipdash - Clipboard Dashboard
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating file backed loggers
// Author:      clipdash contributors
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	cdlog "github.com/msto63/clipdash/foundation/core/log"
)

// StderrFile selects standard error instead of a log file
const StderrFile = "-"

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name written with every entry
	Name string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format: "json" or "text" (default: json)
	Format string

	// File receives the log. The dashboard owns the terminal, so logs
	// never go to stdout. "-" means stderr.
	File string

	// Additional outputs besides File
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "info",
		Format: "json",
		File:   StderrFile,
	}
}

// NewLogger creates a logger writing to the configured file. Parent
// directories are created. The caller closes the returned Logger.
func NewLogger(cfg LoggerConfig) (*Logger, error) {
	level, err := cdlog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	format, err := cdlog.ParseFormat(cfg.Format)
	if err != nil {
		return nil, fmt.Errorf("invalid log format: %w", err)
	}

	var output io.Writer = os.Stderr
	var closer io.Closer
	if cfg.File != "" && cfg.File != StderrFile {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		output = file
		closer = file
	}

	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	logger := cdlog.NewWithConfig(cdlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.Name,
	})

	return &Logger{Logger: logger, name: cfg.Name, closer: closer}, nil
}

// NewNop creates a logger that discards everything
func NewNop(name string) *Logger {
	return &Logger{Logger: cdlog.Discard().WithName(name), name: name}
}

// NewWriterLogger creates a logger on an arbitrary writer
func NewWriterLogger(name string, level cdlog.Level, w io.Writer) *Logger {
	return &Logger{
		Logger: cdlog.NewWithConfig(cdlog.Config{
			Level:  level,
			Format: cdlog.FormatJSON,
			Output: w,
			Name:   name,
		}),
		name: name,
	}
}
