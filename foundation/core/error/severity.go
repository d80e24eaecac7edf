// File: severity.go
// Title: Error Severity
// Description: Severity levels used to pick the log level of a failure.
// Author: clipdash contributors
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial severity levels

package error

// Severity ranks how serious a failure is
type Severity int

const (
	// SeverityLow covers rejected user input
	SeverityLow Severity = iota

	// SeverityMedium covers recoverable environment failures
	SeverityMedium

	// SeverityHigh covers failures that lose user data
	SeverityHigh

	// SeverityCritical stops the program
	SeverityCritical
)

// String returns the lower case name of the severity
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode returns the default severity for a code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInvalidInput, CodeInvalidFormat, CodeNoSelection, CodeUnknownAction:
		return SeverityLow
	case CodeFileWriteFailed:
		return SeverityHigh
	case CodeConfigError:
		return SeverityCritical
	default:
		return SeverityMedium
	}
}
