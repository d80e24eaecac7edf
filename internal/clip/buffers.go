// ============================================================================
// clipdash - Clipboard Dashboard
// ============================================================================
//
// Package:     clip
// Description: Ordered list of saved clip buffers
// Author:      clipdash contributors
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package clip

import (
	"slices"
	"strings"

	"github.com/msto63/clipdash/foundation/utils/slicex"
)

// Buffers is the ordered list of saved clips. Entries are identified by
// position and new entries go to the front. Not safe for concurrent use:
// every action runs on the single UI loop.
type Buffers struct {
	items []string
}

// NewBuffers returns a list holding initial in the given order
func NewBuffers(initial []string) *Buffers {
	return &Buffers{items: slicex.Clone(initial)}
}

// Len returns the number of buffers
func (b *Buffers) Len() int {
	return len(b.items)
}

// Get returns the buffer at index i
func (b *Buffers) Get(i int) (string, bool) {
	if i < 0 || i >= len(b.items) {
		return "", false
	}
	return b.items[i], true
}

// All returns a copy of every buffer in order
func (b *Buffers) All() []string {
	return slicex.Clone(b.items)
}

// Add inserts text at the front
func (b *Buffers) Add(text string) {
	b.items = slices.Insert(b.items, 0, text)
}

// AddAll adds each text in turn, so the last one ends up first
func (b *Buffers) AddAll(texts []string) {
	for _, text := range texts {
		b.Add(text)
	}
}

// Set replaces the buffer at index i
func (b *Buffers) Set(i int, text string) bool {
	if i < 0 || i >= len(b.items) {
		return false
	}
	b.items[i] = text
	return true
}

// Selected returns the selected buffers in index order
func (b *Buffers) Selected(sel Selection) []string {
	var out []string
	for _, i := range sel.sorted() {
		if text, ok := b.Get(i); ok {
			out = append(out, text)
		}
	}
	return out
}

// Delete removes the selected buffers, highest index first, and returns
// how many were removed
func (b *Buffers) Delete(sel Selection) int {
	removed := 0
	for _, i := range slicex.Reverse(sel.sorted()) {
		if i < 0 || i >= len(b.items) {
			continue
		}
		b.items = slices.Delete(b.items, i, i+1)
		removed++
	}
	return removed
}

// MoveUp swaps each selected buffer with the one above it. A buffer at the
// top, or below another selected buffer, stays. The selection follows the
// moved buffers.
func (b *Buffers) MoveUp(sel Selection) Selection {
	return b.move(sel, -1)
}

// MoveDown is MoveUp towards the end of the list
func (b *Buffers) MoveDown(sel Selection) Selection {
	return b.move(sel, 1)
}

func (b *Buffers) move(sel Selection, dir int) Selection {
	order := sel.sorted()
	selected := make(map[int]bool, len(order))
	for _, i := range order {
		selected[i] = true
	}

	if dir > 0 {
		order = slicex.Reverse(order)
	}

	focus := sel.Focus
	for _, i := range order {
		j := i + dir
		if i < 0 || i >= len(b.items) || j < 0 || j >= len(b.items) {
			continue
		}
		if selected[j] {
			continue
		}
		b.items[i], b.items[j] = b.items[j], b.items[i]
		delete(selected, i)
		selected[j] = true
		if focus == i {
			focus = j
		}
	}

	indices := make([]int, 0, len(selected))
	for i := range selected {
		indices = append(indices, i)
	}
	slices.Sort(indices)
	return Selection{Indices: indices, Focus: focus}
}

// Prepend puts text in front of every selected buffer and returns the
// number changed
func (b *Buffers) Prepend(sel Selection, text string) int {
	return b.update(sel, func(s string) string { return text + s })
}

// Append adds text to the end of every selected buffer
func (b *Buffers) Append(sel Selection, text string) int {
	return b.update(sel, func(s string) string { return s + text })
}

// Replace overwrites every selected buffer with text
func (b *Buffers) Replace(sel Selection, text string) int {
	return b.update(sel, func(string) string { return text })
}

func (b *Buffers) update(sel Selection, fn func(string) string) int {
	changed := 0
	for _, i := range sel.sorted() {
		if i < 0 || i >= len(b.items) {
			continue
		}
		b.items[i] = fn(b.items[i])
		changed++
	}
	return changed
}

// Join concatenates the selected buffers in index order with sep between
func (b *Buffers) Join(sel Selection, sep string) string {
	return strings.Join(b.Selected(sel), sep)
}

// Summaries returns the display label of every buffer
func (b *Buffers) Summaries(cropLength int, sep string) []string {
	return slicex.Map(b.items, func(s string) string {
		return Summary(s, cropLength, sep)
	})
}
