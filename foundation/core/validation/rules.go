// File: rules.go
// Title: Field Rules
// Description: Checks on single configuration fields. Each returns a
//              result naming the field so several can be combined.
// Author: clipdash contributors
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Required, Positive, NotNegative, OneOf, Prefix

package validation

import (
	"fmt"
	"strings"
)

// Required fails for an empty or blank string
func Required(field, value string) ValidationResult {
	if strings.TrimSpace(value) == "" {
		return NewFieldError(CodeRequired, field, "must not be empty", value)
	}
	return NewValidationResult()
}

// Positive fails for values below 1
func Positive(field string, value int) ValidationResult {
	if value < 1 {
		return NewFieldError(CodeRange, field, fmt.Sprintf("must be positive, got %d", value), value)
	}
	return NewValidationResult()
}

// NotNegative fails for values below 0
func NotNegative(field string, value int64) ValidationResult {
	if value < 0 {
		return NewFieldError(CodeRange, field, fmt.Sprintf("must not be negative, got %d", value), value)
	}
	return NewValidationResult()
}

// OneOf fails unless value equals one of allowed, ignoring case
func OneOf(field, value string, allowed ...string) ValidationResult {
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return NewValidationResult()
		}
	}
	return NewFieldError(CodeOneOf, field,
		fmt.Sprintf("%q is not one of %s", value, strings.Join(allowed, ", ")), value)
}

// Prefix fails unless value starts with prefix
func Prefix(field, value, prefix string) ValidationResult {
	if !strings.HasPrefix(value, prefix) {
		return NewFieldError(CodeFormat, field, fmt.Sprintf("must start with %q", prefix), value)
	}
	return NewValidationResult()
}
