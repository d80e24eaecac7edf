// File: trim.go
// Title: Explicit Whitespace Trimming
// Description: Left, right and full trimming over unicode.IsSpace, one rune
//              at a time.
// Author: clipdash contributors
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package stringx

import (
	"strings"
	"unicode"
)

// LTrim removes leading whitespace
func LTrim(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}

// RTrim removes trailing whitespace
func RTrim(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

// Trim removes leading and trailing whitespace
func Trim(s string) string {
	return RTrim(LTrim(s))
}

// IsBlank reports whether s is empty or only whitespace
func IsBlank(s string) bool {
	return LTrim(s) == ""
}
