// File: words.go
// Title: Initial Word Extraction
// Description: Builds a short, file system safe fragment from the first
//              words of a text, used to name saved buffers.
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
)

// wordScanLimit bounds how much of the text is inspected
const wordScanLimit = 100

// ExtractInitialWords returns up to wordCount words from the first 100
// characters of s, joined by single spaces. Anything other than ASCII
// letters, digits and spaces separates words. Returns "" when no word is
// found.
func ExtractInitialWords(s string, wordCount int) string {
	if wordCount <= 0 {
		return ""
	}

	runes := []rune(s)
	if len(runes) > wordScanLimit {
		runes = runes[:wordScanLimit]
	}

	for i, r := range runes {
		if !isWordRune(r) {
			runes[i] = ' '
		}
	}

	words := strings.Fields(string(runes))
	if len(words) > wordCount {
		words = words[:wordCount]
	}
	return strings.Join(words, " ")
}

func isWordRune(r rune) bool {
	return r == ' ' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
