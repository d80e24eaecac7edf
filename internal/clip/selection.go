// ============================================================================
// clipdash - Clipboard Dashboard
// ============================================================================
//
// Package:     clip
// Description: Caller owned selection state and retrieve rotation
// Author:      clipdash contributors
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package clip

import (
	"slices"

	cderror "github.com/msto63/clipdash/foundation/core/error"
)

// Selection is the set of selected buffer indices, kept sorted and
// unique, plus the focused index. The buffer list never stores it.
type Selection struct {
	Indices []int
	Focus   int
}

// Select builds a selection of indices with focus on the first one
func Select(indices ...int) Selection {
	sorted := slices.Clone(indices)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	sel := Selection{Indices: sorted}
	if len(sorted) > 0 {
		sel.Focus = sorted[0]
	}
	return sel
}

// Empty reports whether nothing is selected
func (s Selection) Empty() bool {
	return len(s.Indices) == 0
}

// Len returns the number of selected indices
func (s Selection) Len() int {
	return len(s.Indices)
}

// Has reports whether index i is selected
func (s Selection) Has(i int) bool {
	return slices.Contains(s.Indices, i)
}

// Toggle adds i if absent and removes it otherwise. Focus moves to i.
func (s Selection) Toggle(i int) Selection {
	next := make([]int, 0, len(s.Indices)+1)
	found := false
	for _, idx := range s.Indices {
		if idx == i {
			found = true
			continue
		}
		next = append(next, idx)
	}
	if !found {
		next = append(next, i)
		slices.Sort(next)
	}
	return Selection{Indices: next, Focus: i}
}

// sorted returns the indices in ascending order without duplicates. A
// Selection built by hand may carry them in any order.
func (s Selection) sorted() []int {
	out := slices.Clone(s.Indices)
	slices.Sort(out)
	return slices.Compact(out)
}

// Clamp drops indices that are not below n, sorts the rest and keeps focus
// inside [0, n)
func (s Selection) Clamp(n int) Selection {
	next := make([]int, 0, len(s.Indices))
	for _, idx := range s.sorted() {
		if idx >= 0 && idx < n {
			next = append(next, idx)
		}
	}
	focus := s.Focus
	if focus >= n {
		focus = n - 1
	}
	if focus < 0 {
		focus = 0
	}
	return Selection{Indices: next, Focus: focus}
}

// Rotate picks the buffer a retrieve delivers and moves focus on. The
// target is the focused buffer when it is selected, otherwise the first
// selected buffer after focus, wrapping to the first selected one. Focus
// then advances to the next selected buffer, wrapping. ordinal is the
// 1-based position of target within the selection.
func Rotate(sel Selection) (target, ordinal int, next Selection, err error) {
	if sel.Empty() {
		return 0, 0, sel, cderror.NoSelection("buffer.retrieve")
	}
	indices := sel.sorted()

	// focus past the last selected index wraps to the first
	pos := 0
	for i, idx := range indices {
		if idx >= sel.Focus {
			pos = i
			break
		}
	}

	target = indices[pos]
	nextFocus := indices[(pos+1)%len(indices)]

	next = Selection{Indices: indices, Focus: nextFocus}
	return target, pos + 1, next, nil
}

// Shift moves every index and the focus by n, for when n buffers were
// inserted at the front
func (s Selection) Shift(n int) Selection {
	next := make([]int, len(s.Indices))
	for i, idx := range s.Indices {
		next[i] = idx + n
	}
	return Selection{Indices: next, Focus: s.Focus + n}
}
