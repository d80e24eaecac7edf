// File: stringx_test.go
// Title: Unit Tests for Core String Utilities
// Description: Tests for trimming, word extraction, line helpers and the
//              formatting helpers.
// Author: clipdash contributors
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial tests

package stringx

import (
	"reflect"
	"testing"
)

func TestTrim(t *testing.T) {
	tests := []struct {
		name  string
		input string
		left  string
		right string
		both  string
	}{
		{"empty", "", "", "", ""},
		{"all whitespace", " \t\r\n ", "", "", ""},
		{"padded", "  abc  ", "abc  ", "  abc", "abc"},
		{"inner space kept", " a b ", "a b ", " a b", "a b"},
		{"unicode space", " x ", "x ", " x", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LTrim(tt.input); got != tt.left {
				t.Errorf("LTrim(%q) = %q; want %q", tt.input, got, tt.left)
			}
			if got := RTrim(tt.input); got != tt.right {
				t.Errorf("RTrim(%q) = %q; want %q", tt.input, got, tt.right)
			}
			if got := Trim(tt.input); got != tt.both {
				t.Errorf("Trim(%q) = %q; want %q", tt.input, got, tt.both)
			}
		})
	}
}

func TestTrimIdempotent(t *testing.T) {
	inputs := []string{"", "  x  ", "\tabc\n", "none", " \n "}
	for _, s := range inputs {
		if LTrim(LTrim(s)) != LTrim(s) {
			t.Errorf("LTrim not idempotent for %q", s)
		}
		if RTrim(RTrim(s)) != RTrim(s) {
			t.Errorf("RTrim not idempotent for %q", s)
		}
		trimmed := Trim(s)
		if Trim(trimmed) != trimmed {
			t.Errorf("Trim not idempotent for %q", s)
		}
	}
}

func TestExtractInitialWords(t *testing.T) {
	tests := []struct {
		input    string
		count    int
		expected string
	}{
		{"clip1", 3, "clip1"},
		{"  public void extractInitialWords() {", 3, "public void extractInitialWords"},
		{"   . _ * () \n  \t  ", 3, ""},
		{"one,two;three four", 4, "one two three four"},
		{"a b c", 0, ""},
		{"ünïcode words here", 2, "n code"},
	}

	for _, tt := range tests {
		result := ExtractInitialWords(tt.input, tt.count)
		if result != tt.expected {
			t.Errorf("ExtractInitialWords(%q, %d) = %q; want %q", tt.input, tt.count, result, tt.expected)
		}
	}
}

func TestExtractInitialWordsScansFirstHundredChars(t *testing.T) {
	input := make([]byte, 0, 110)
	for i := 0; i < 99; i++ {
		input = append(input, '.')
	}
	input = append(input, []byte("ab cd")...)

	if result := ExtractInitialWords(string(input), 3); result != "a" {
		t.Errorf("ExtractInitialWords() = %q; want %q", result, "a")
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		sep      string
		expected []string
	}{
		{"empty", "", "\n", nil},
		{"single", "abc", "\n", []string{"abc"}},
		{"keeps empties", "a\n\nb\n", "\n", []string{"a", "", "b", ""}},
		{"crlf", "a\r\nb", "\r\n", []string{"a", "b"}},
		{"only separator", "\n", "\n", []string{"", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SplitLines(tt.input, tt.sep)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("SplitLines(%q) = %q; want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestCountLines(t *testing.T) {
	if n := CountLines("", "\n"); n != 1 {
		t.Errorf("CountLines(\"\") = %d; want 1", n)
	}
	if n := CountLines("a\nb\n", "\n"); n != 3 {
		t.Errorf("CountLines(\"a\\nb\\n\") = %d; want 3", n)
	}
}

func TestReplaceSpecialChars(t *testing.T) {
	result := ReplaceSpecialChars(`a\nb\tc\r`, "\r\n")
	if result != "a\r\nb\tc\r" {
		t.Errorf("ReplaceSpecialChars() = %q", result)
	}
}

func TestCenter(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"ab", 6, "  ab  "},
		{"ab", 5, " ab  "},
		{"abc", 2, "abc"},
		{"", 3, "   "},
		{"é", 3, " é "},
	}

	for _, tt := range tests {
		if result := Center(tt.input, tt.width, ' '); result != tt.expected {
			t.Errorf("Center(%q, %d) = %q; want %q", tt.input, tt.width, result, tt.expected)
		}
	}
}

func TestCrop(t *testing.T) {
	if s, cut := Crop("héllo", 2); s != "hé" || !cut {
		t.Errorf("Crop() = %q, %v", s, cut)
	}
	if s, cut := Crop("abc", 3); s != "abc" || cut {
		t.Errorf("Crop() = %q, %v", s, cut)
	}
}

func TestWordWrap(t *testing.T) {
	if result := WordWrap("aaa bbb ccc", 7); result != "aaa bbb\nccc" {
		t.Errorf("WordWrap() = %q", result)
	}
	if result := WordWrap("abc", 0); result != "abc" {
		t.Errorf("WordWrap(width 0) = %q", result)
	}
}

func TestStripANSI(t *testing.T) {
	if result := StripANSI("\x1b[31mred\x1b[0m plain"); result != "red plain" {
		t.Errorf("StripANSI() = %q", result)
	}
}
