// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx holds the text kernel of clipdash: slice
//              expressions, clamped slicing, explicit trimming, word
//              extraction for file names and line helpers.
// Author: clipdash contributors
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Trim, center and line helpers
// - 2026-10-19 v0.2.0: Slice expressions and word extraction

// Package stringx provides the string operations behind the clipdash actions.
//
// All functions count characters as Unicode code points and never split a
// UTF-8 sequence. None of them hold state.
//
// Slicing follows Python indexing with one difference: out of range indices
// are clamped instead of failing.
//
//	intent, err := stringx.ParseSliceExpr("-3:")
//	if err != nil {
//	    return err // *stringx.ParseError
//	}
//	intent.Apply("0123456789") // "789"
//
// Word extraction produces file name fragments:
//
//	stringx.ExtractInitialWords("  public void main() {", 3) // "public void main"
package stringx
