// File: validation.go
// Title: Validation Results
// Description: Result and error types collected while validating a value,
//              and their conversion to a foundation error.
// Author: clipdash contributors
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Results, field errors and ToError

package validation

import (
	"fmt"
	"strings"

	cderror "github.com/msto63/clipdash/foundation/core/error"
)

// Validation error codes
const (
	CodeRequired = "VALIDATION_REQUIRED" // Field is required but missing
	CodeRange    = "VALIDATION_RANGE"    // Numeric range validation
	CodeOneOf    = "VALIDATION_ONE_OF"   // Value outside an allowed set
	CodeFormat   = "VALIDATION_FORMAT"   // Invalid format
)

// Validator validates a value
type Validator interface {
	Validate(value interface{}) ValidationResult
}

// ValidatorFunc is a function type that implements the Validator interface
type ValidatorFunc func(value interface{}) ValidationResult

// Validate implements the Validator interface for ValidatorFunc
func (f ValidatorFunc) Validate(value interface{}) ValidationResult {
	return f(value)
}

// ValidationResult represents the result of a validation operation
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError represents a single validation error
type ValidationError struct {
	Code    string      `json:"code"`
	Field   string      `json:"field,omitempty"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// NewValidationResult creates a successful validation result
func NewValidationResult() ValidationResult {
	return ValidationResult{Valid: true}
}

// NewFieldError creates a failed validation result for one field
func NewFieldError(code, field, message string, value interface{}) ValidationResult {
	return ValidationResult{
		Valid: false,
		Errors: []ValidationError{
			{Code: code, Field: field, Message: message, Value: value},
		},
	}
}

// ErrorMessages returns the messages of all errors, prefixed with the field
func (r ValidationResult) ErrorMessages() []string {
	msgs := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		msgs[i] = e.String()
	}
	return msgs
}

// HasError checks if the result contains a specific error code
func (r ValidationResult) HasError(code string) bool {
	for _, err := range r.Errors {
		if err.Code == code {
			return true
		}
	}
	return false
}

// ToError converts the result to a foundation error with code. Returns nil
// if validation passed. The message lists every failed field.
func (r ValidationResult) ToError(code cderror.Code, operation string) error {
	if r.Valid {
		return nil
	}
	if len(r.Errors) == 0 {
		return cderror.New("validation failed").WithCode(code).WithOperation(operation)
	}

	err := cderror.New(strings.Join(r.ErrorMessages(), "; ")).
		WithCode(code).
		WithOperation(operation).
		WithDetail("validation", r.Errors[0].Code)
	if r.Errors[0].Field != "" {
		err = err.WithDetail("field", r.Errors[0].Field)
	}
	if len(r.Errors) > 1 {
		err = err.WithDetail("totalErrors", len(r.Errors))
	}
	return err
}

// String returns "field: message"
func (e ValidationError) String() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Combine merges multiple validation results into a single result
func Combine(results ...ValidationResult) ValidationResult {
	combined := NewValidationResult()
	for _, result := range results {
		if !result.Valid {
			combined.Valid = false
			combined.Errors = append(combined.Errors, result.Errors...)
		}
	}
	return combined
}
