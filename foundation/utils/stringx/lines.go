// File: lines.go
// Title: Line List Helpers
// Description: Splitting text into line lists on an explicit separator,
//              keeping empty lines, and counting lines.
// Author: clipdash contributors
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Separator preserving split

package stringx

import (
	"strings"
)

// SplitLines splits s on sep and keeps every empty token, so "a\n\nb"
// gives three lines. The empty string gives no lines at all.
func SplitLines(s, sep string) []string {
	if s == "" {
		return nil
	}
	if sep == "" {
		return []string{s}
	}
	return strings.Split(s, sep)
}

// JoinLines is the inverse of SplitLines
func JoinLines(lines []string, sep string) string {
	return strings.Join(lines, sep)
}

// CountLines returns the number of separators in s plus one. Unlike
// SplitLines it reports 1 for the empty string, which is what the buffer
// list shows.
func CountLines(s, sep string) int {
	if sep == "" {
		return 1
	}
	return strings.Count(s, sep) + 1
}

// ReplaceSpecialChars expands the two-character escapes \n, \t and \r
// typed by the user. \n becomes lineSep.
func ReplaceSpecialChars(s, lineSep string) string {
	return strings.NewReplacer(`\n`, lineSep, `\t`, "\t", `\r`, "\r").Replace(s)
}
