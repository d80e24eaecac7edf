// File: slice.go
// Title: Clamped Python-Style Slicing
// Description: Substring selection by possibly negative indices. Out of
//              range values are clamped to the string bounds, so slicing
//              never fails.
// Author: clipdash contributors
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package stringx

import "strconv"

// SliceKind tells which shape a SliceIntent has
type SliceKind int

const (
	// KindSingle selects one character
	KindSingle SliceKind = iota
	// KindRange selects a start:end span
	KindRange
)

// SliceIntent is a parsed slice expression. For KindSingle only Index is
// meaningful, for KindRange only Start and End (nil means absent).
type SliceIntent struct {
	Kind  SliceKind
	Index int
	Start *int
	End   *int
}

// Single returns an intent selecting one character
func Single(index int) SliceIntent {
	return SliceIntent{Kind: KindSingle, Index: index}
}

// Range returns an intent selecting a span. Either bound may be nil.
func Range(start, end *int) SliceIntent {
	return SliceIntent{Kind: KindRange, Start: start, End: end}
}

// Apply slices s according to the intent
func (si SliceIntent) Apply(s string) string {
	if si.Kind == KindSingle {
		return SliceSingle(s, si.Index)
	}
	return SliceRange(s, si.Start, si.End)
}

// String renders the intent back in slice syntax
func (si SliceIntent) String() string {
	if si.Kind == KindSingle {
		return strconv.Itoa(si.Index)
	}
	var out string
	if si.Start != nil {
		out = strconv.Itoa(*si.Start)
	}
	out += ":"
	if si.End != nil {
		out += strconv.Itoa(*si.End)
	}
	return out
}

// SliceSingle returns the character at index, or "" when index is out of
// range. -1 is the last character.
func SliceSingle(s string, index int) string {
	end := index + 1
	if end == 0 {
		// -1 + 1 would select nothing
		return sliceRunes([]rune(s), index, nil)
	}
	return sliceRunes([]rune(s), index, &end)
}

// SliceRange returns s[start:end] with Python semantics. A nil start means
// 0 and a nil end means len(s). Negative values count from the end and
// everything is clamped to [0, len(s)]. start > end yields "".
func SliceRange(s string, start, end *int) string {
	from := 0
	if start != nil {
		from = *start
	}
	return sliceRunes([]rune(s), from, end)
}

func sliceRunes(runes []rune, start int, end *int) string {
	n := len(runes)

	stop := n
	if end != nil {
		stop = *end
	}

	start = normalizeIndex(start, n)
	stop = normalizeIndex(stop, n)

	if start >= stop {
		return ""
	}
	return string(runes[start:stop])
}

func normalizeIndex(i, n int) int {
	if i < 0 {
		i += n
	}
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

// IntPtr returns a pointer to v, for building Range bounds
func IntPtr(v int) *int {
	return &v
}
