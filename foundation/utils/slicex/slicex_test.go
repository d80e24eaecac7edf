// File: slicex_test.go
// Title: Unit Tests for Slice Utilities
// Description: Tests for the slice helpers used by the line combinators.
// Author: clipdash contributors
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial tests

package slicex

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestFilter(t *testing.T) {
	input := []string{"apple", "", "banana", ""}
	result := Filter(input, func(s string) bool { return s != "" })
	if !reflect.DeepEqual(result, []string{"apple", "banana"}) {
		t.Errorf("Filter() = %q", result)
	}
	if len(input) != 4 {
		t.Error("Filter() modified its input")
	}
	if Filter[string](nil, func(string) bool { return true }) != nil {
		t.Error("Filter(nil) should be nil")
	}
}

func TestMap(t *testing.T) {
	result := Map([]string{"a", "b"}, strings.ToUpper)
	if !reflect.DeepEqual(result, []string{"A", "B"}) {
		t.Errorf("Map() = %q", result)
	}
}

func TestTryMap(t *testing.T) {
	errBad := errors.New("bad line")
	tests := []struct {
		name     string
		input    []string
		expected []string
		wantErr  bool
	}{
		{"all ok", []string{"a", "b"}, []string{"a!", "b!"}, false},
		{"fails midway", []string{"a", "bad", "c"}, nil, true},
		{"empty", []string{}, []string{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := TryMap(tt.input, func(s string) (string, error) {
				if s == "bad" {
					return "", errBad
				}
				return s + "!", nil
			})
			if (err != nil) != tt.wantErr {
				t.Fatalf("TryMap() error = %v; wantErr %v", err, tt.wantErr)
			}
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("TryMap() = %q; want %q", result, tt.expected)
			}
		})
	}
}

func TestTryFilter(t *testing.T) {
	result, err := TryFilter([]int{1, 2, 3, 4}, func(i int) (bool, error) { return i%2 == 0, nil })
	if err != nil || !reflect.DeepEqual(result, []int{2, 4}) {
		t.Errorf("TryFilter() = %v, %v", result, err)
	}

	_, err = TryFilter([]int{1, 2}, func(i int) (bool, error) { return false, errors.New("x") })
	if err == nil {
		t.Error("TryFilter() should return the predicate error")
	}
}

func TestReverseAndSort(t *testing.T) {
	input := []string{"b", "a", "c"}
	if result := Reverse(input); !reflect.DeepEqual(result, []string{"c", "a", "b"}) {
		t.Errorf("Reverse() = %q", result)
	}
	if result := Sort(input); !reflect.DeepEqual(result, []string{"a", "b", "c"}) {
		t.Errorf("Sort() = %q", result)
	}
	if !reflect.DeepEqual(input, []string{"b", "a", "c"}) {
		t.Errorf("input modified: %q", input)
	}
}

func TestCompactAdjacent(t *testing.T) {
	tests := []struct {
		input    []string
		expected []string
	}{
		{[]string{"a", "a", "b", "a"}, []string{"a", "b", "a"}},
		{[]string{"", "", "x"}, []string{"", "x"}},
		{[]string{}, []string{}},
	}

	for _, tt := range tests {
		if result := CompactAdjacent(tt.input); !reflect.DeepEqual(result, tt.expected) {
			t.Errorf("CompactAdjacent(%q) = %q; want %q", tt.input, result, tt.expected)
		}
	}
}

func TestCount(t *testing.T) {
	if n := Count([]string{"a", "", "b"}, func(s string) bool { return s == "" }); n != 1 {
		t.Errorf("Count() = %d; want 1", n)
	}
	if !Contains([]int{1, 2}, 2) || Contains([]int{1, 2}, 3) {
		t.Error("Contains() wrong")
	}
}
