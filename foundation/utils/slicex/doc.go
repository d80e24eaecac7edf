// Package slicex implements generic slice helpers for clipdash.
//
// Package: slicex
// Title: Slice Utilities
// Description: Functional helpers over slices. The line list combinators
//              build on Map, Filter and their fallible variants; the list
//              actions use Sort, Reverse and CompactAdjacent.
// Author: clipdash contributors
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Core transformation functions
// - 2026-10-19 v0.2.0: TryMap, TryFilter, CompactAdjacent
//
// Every function returns a new slice. A nil input gives a nil result.
//
//	lines := []string{"b", "a", "a"}
//	slicex.CompactAdjacent(slicex.Sort(lines)) // ["a", "b"]
package slicex
