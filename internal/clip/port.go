// ============================================================================
// clipdash - Clipboard Dashboard
// ============================================================================
//
// Package:     clip
// Description: Clipboard port and its system and in-memory implementations
// Author:      clipdash contributors
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package clip

import (
	"sync"

	"github.com/atotto/clipboard"

	"github.com/msto63/clipdash/foundation/utils/stringx"
	"github.com/msto63/clipdash/pkg/core/logging"
)

// Port is the live clipboard as the actions see it. Read never fails: an
// unavailable clipboard or one holding non-text data reads as "". Write
// is fire and forget.
type Port interface {
	Read() string
	Write(text string)
}

// ReadLines reads the port and splits it into lines on sep, keeping empty
// lines. An empty clipboard has no lines.
func ReadLines(p Port, sep string) []string {
	return stringx.SplitLines(p.Read(), sep)
}

// SystemClipboard is the OS clipboard
type SystemClipboard struct {
	logger *logging.Logger
}

// NewSystemClipboard returns the OS clipboard port. Failures are logged on
// logger and otherwise swallowed.
func NewSystemClipboard(logger *logging.Logger) *SystemClipboard {
	return &SystemClipboard{logger: logger}
}

// Available reports whether a clipboard utility was found on this system
func (c *SystemClipboard) Available() bool {
	return !clipboard.Unsupported
}

// Read implements Port
func (c *SystemClipboard) Read() string {
	text, err := clipboard.ReadAll()
	if err != nil {
		c.logger.Debug("clipboard read failed", "error", err.Error())
		return ""
	}
	return text
}

// Write implements Port
func (c *SystemClipboard) Write(text string) {
	if err := clipboard.WriteAll(text); err != nil {
		c.logger.Warn("clipboard write failed", "error", err.Error(), "chars", stringx.Length(text))
	}
}

// MemoryClipboard is an in-process clipboard, used by tests and by the
// command line when reading stdin
type MemoryClipboard struct {
	mu     sync.Mutex
	text   string
	writes int
}

// NewMemoryClipboard returns a clipboard holding text
func NewMemoryClipboard(text string) *MemoryClipboard {
	return &MemoryClipboard{text: text}
}

// Read implements Port
func (c *MemoryClipboard) Read() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text
}

// Write implements Port
func (c *MemoryClipboard) Write(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
	c.writes++
}

// Writes returns how many times Write was called
func (c *MemoryClipboard) Writes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.writes
}
