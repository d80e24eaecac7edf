// File: stringx.go
// Title: Core String Utility Functions
// Description: Rune aware helpers used by the clipboard actions: centering,
//              cropping, word wrapping and ANSI stripping.
// Author: clipdash contributors
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Center and crop
// - 2026-10-19 v0.2.0: Word wrap and ANSI stripping via charmbracelet/x/ansi

package stringx

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
)

// Length returns the number of characters in s
func Length(s string) int {
	return utf8.RuneCountInString(s)
}

// Crop returns the first maxLen characters of s and whether anything was cut
func Crop(s string, maxLen int) (string, bool) {
	if maxLen < 0 {
		maxLen = 0
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s, false
	}
	return string([]rune(s)[:maxLen]), true
}

// Center pads s on both sides to width. The left side gets the smaller
// half of odd padding. Strings at least width long are returned unchanged.
func Center(s string, width int, pad rune) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}

	total := width - n
	left := total / 2

	var b strings.Builder
	b.Grow(len(s) + total*utf8.RuneLen(pad))
	for i := 0; i < left; i++ {
		b.WriteRune(pad)
	}
	b.WriteString(s)
	for i := 0; i < total-left; i++ {
		b.WriteRune(pad)
	}
	return b.String()
}

// WordWrap wraps s at whitespace so no line exceeds width where possible.
// Words longer than width are kept whole. Existing line breaks are kept.
func WordWrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return ansi.Wordwrap(s, width, "")
}

// StripANSI removes ANSI escape sequences such as terminal colors
func StripANSI(s string) string {
	return ansi.Strip(s)
}
