// ============================================================================
// clipdash - Clipboard Dashboard
// ============================================================================
//
// Package:     clip
// Description: Read-transform-write combinators over the clipboard line list
// Author:      clipdash contributors
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package clip

import (
	"github.com/msto63/clipdash/foundation/utils/slicex"
	"github.com/msto63/clipdash/foundation/utils/stringx"
)

// Transform is one of WholeList, PerLine, Filter, TryPerLine or TryFilter
type Transform interface {
	apply(lines []string) ([]string, error)
}

// WholeList transforms the complete line list. It receives a copy and may
// reorder, drop or add lines.
type WholeList func(lines []string) []string

// PerLine maps every line independently. Line count and order are kept.
type PerLine func(line string) string

// Filter keeps the lines it returns true for
type Filter func(line string) bool

// TryPerLine is PerLine for a mapping that can fail
type TryPerLine func(line string) (string, error)

// TryFilter is Filter for a predicate that can fail
type TryFilter func(line string) (bool, error)

func (f WholeList) apply(lines []string) ([]string, error) {
	return f(slicex.Clone(lines)), nil
}

func (f PerLine) apply(lines []string) ([]string, error) {
	return slicex.Map(lines, (func(string) string)(f)), nil
}

func (f Filter) apply(lines []string) ([]string, error) {
	return slicex.Filter(lines, (func(string) bool)(f)), nil
}

func (f TryPerLine) apply(lines []string) ([]string, error) {
	return slicex.TryMap(lines, (func(string) (string, error))(f))
}

func (f TryFilter) apply(lines []string) ([]string, error) {
	return slicex.TryFilter(lines, (func(string) (bool, error))(f))
}

// Result reports a completed combinator run
type Result struct {
	// Before is the line list read from the clipboard
	Before []string
	// After is the line list written back
	After []string
}

// Lines returns the number of lines written back
func (r Result) Lines() int {
	return len(r.After)
}

// Apply reads the clipboard once, splits it on sep, runs t and writes the
// joined result back once. When t fails nothing is written and the error
// is returned as is.
func Apply(port Port, sep string, t Transform) (Result, error) {
	before := ReadLines(port, sep)

	after, err := t.apply(before)
	if err != nil {
		return Result{Before: before}, err
	}

	port.Write(stringx.JoinLines(after, sep))
	return Result{Before: before, After: after}, nil
}
