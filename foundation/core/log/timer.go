// File: timer.go
// Title: Operation Timer
// Description: Measures how long a dashboard action took and logs the result
//              when stopped.
// Author: clipdash contributors
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial timer

package log

import (
	"time"
)

// Timer measures the duration of one operation
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer starts a timer that logs at debug level
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel changes the level used on a successful stop
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field logged on stop
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the time since the timer started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop logs completion and returns the elapsed time. Only the first call logs.
func (t *Timer) Stop() time.Duration {
	return t.finish(nil)
}

// StopWithError logs a failure at warn level. A nil err behaves like Stop.
func (t *Timer) StopWithError(err error) time.Duration {
	return t.finish(err)
}

func (t *Timer) finish(err error) time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true
	elapsed := t.Elapsed()

	if t.logger == nil {
		return elapsed
	}

	entry := NewEntry(t.level, t.operation+" completed")
	if err != nil {
		entry.Level = LevelWarn
		entry.Message = t.operation + " failed"
		entry.Error = err
	}
	if !entry.Level.ShouldLog(t.logger.level) {
		return elapsed
	}

	entry.Logger = t.logger.name
	entry.ActionID = t.logger.actionID
	entry.Duration = elapsed
	entry.Fields = t.logger.contextFields.Merge(t.fields)
	entry.Fields["operation"] = t.operation
	t.logger.write(entry)

	return elapsed
}
