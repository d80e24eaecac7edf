// File: slicex.go
// Title: Core Slice Utilities
// Description: Generic slice helpers used by the line list combinators:
//              mapping and filtering with and without failure, reversing,
//              sorting and removal of adjacent duplicates. All functions
//              return new slices and leave their input untouched.
// Author: clipdash contributors
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Filter, Map, Reverse, Clone, Sort
// - 2026-10-19 v0.2.0: Fallible TryMap and TryFilter, CompactAdjacent

package slicex

import (
	"cmp"
	"slices"
)

// Filter returns a new slice containing only elements that match the predicate
func Filter[T any](slice []T, predicate func(T) bool) []T {
	if slice == nil || predicate == nil {
		return nil
	}

	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}

// Map returns a new slice with mapper applied to each element, in order
func Map[T, R any](slice []T, mapper func(T) R) []R {
	if slice == nil || mapper == nil {
		return nil
	}

	result := make([]R, len(slice))
	for i, item := range slice {
		result[i] = mapper(item)
	}
	return result
}

// TryMap is Map for a mapper that can fail. The first error stops the
// mapping and no partial result is returned.
func TryMap[T, R any](slice []T, mapper func(T) (R, error)) ([]R, error) {
	if slice == nil || mapper == nil {
		return nil, nil
	}

	result := make([]R, len(slice))
	for i, item := range slice {
		mapped, err := mapper(item)
		if err != nil {
			return nil, err
		}
		result[i] = mapped
	}
	return result, nil
}

// TryFilter is Filter for a predicate that can fail. The first error
// stops the filtering and no partial result is returned.
func TryFilter[T any](slice []T, predicate func(T) (bool, error)) ([]T, error) {
	if slice == nil || predicate == nil {
		return nil, nil
	}

	result := make([]T, 0, len(slice))
	for _, item := range slice {
		keep, err := predicate(item)
		if err != nil {
			return nil, err
		}
		if keep {
			result = append(result, item)
		}
	}
	return result, nil
}

// Reverse returns a reversed copy
func Reverse[T any](slice []T) []T {
	if slice == nil {
		return nil
	}
	result := Clone(slice)
	slices.Reverse(result)
	return result
}

// Clone returns a shallow copy. nil stays nil.
func Clone[T any](slice []T) []T {
	if slice == nil {
		return nil
	}
	return append(make([]T, 0, len(slice)), slice...)
}

// Sort returns a sorted copy
func Sort[T cmp.Ordered](slice []T) []T {
	if slice == nil {
		return nil
	}
	result := Clone(slice)
	slices.Sort(result)
	return result
}

// CompactAdjacent returns a copy with runs of equal neighbours reduced to
// one element, like the uniq command line tool
func CompactAdjacent[T comparable](slice []T) []T {
	if slice == nil {
		return nil
	}
	return slices.Compact(Clone(slice))
}

// Count returns how many elements match the predicate
func Count[T any](slice []T, predicate func(T) bool) int {
	count := 0
	for _, item := range slice {
		if predicate(item) {
			count++
		}
	}
	return count
}

// Contains reports whether element is present
func Contains[T comparable](slice []T, element T) bool {
	return slices.Contains(slice, element)
}
