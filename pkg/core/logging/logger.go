// ============================================================================
// clipdash - Clipboard Dashboard
// ============================================================================
//
// Package:     logging
// Description: Key/value logger used by the service, the CLI and the TUI
// Author:      clipdash contributors
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package logging

import (
	"io"

	cdlog "github.com/msto63/clipdash/foundation/core/log"
)

// Logger wraps the foundation logger with key/value pair methods
type Logger struct {
	*cdlog.Logger
	name   string
	closer io.Closer
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.name
}

// WithActionID returns a logger stamping entries with an action ID
func (l *Logger) WithActionID(id string) *Logger {
	return &Logger{Logger: l.Logger.WithActionID(id), name: l.name}
}

// WithLevel returns a logger with a different minimum level
func (l *Logger) WithLevel(level cdlog.Level) *Logger {
	return &Logger{Logger: l.Logger.WithLevel(level), name: l.name, closer: l.closer}
}

// Debug logs a debug message with key-value pairs
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.Logger.Debug(msg, toFields(keysAndValues...))
}

// Info logs an info message with key-value pairs
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.Logger.Info(msg, toFields(keysAndValues...))
}

// Warn logs a warning message with key-value pairs
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.Logger.Warn(msg, toFields(keysAndValues...))
}

// Error logs an error message with key-value pairs
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.Logger.Error(msg, toFields(keysAndValues...))
}

// Close closes the log file, if any
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}

// toFields converts key-value pairs to cdlog.Fields. A trailing key without
// a value and non-string keys are dropped.
func toFields(keysAndValues ...interface{}) cdlog.Fields {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(cdlog.Fields)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
