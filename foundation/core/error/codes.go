// File: codes.go
// Title: Error Codes
// Description: Machine readable error codes for clipdash failures. Codes map
//              onto a default severity and the category shown in logs.
// Author: clipdash contributors
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial code set

package error

// Code identifies a class of failure
type Code string

const (
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"

	// User input
	CodeInvalidInput  Code = "INVALID_INPUT"
	CodeInvalidFormat Code = "INVALID_FORMAT"
	CodeNoSelection   Code = "NO_SELECTION"
	CodeUnknownAction Code = "UNKNOWN_ACTION"

	// Environment
	CodeExternalTool    Code = "EXTERNAL_TOOL"
	CodeFileReadFailed  Code = "FILE_READ_FAILED"
	CodeFileWriteFailed Code = "FILE_WRITE_FAILED"
	CodeConfigError     Code = "CONFIG_ERROR"
)

// String returns the code as a string
func (c Code) String() string {
	return string(c)
}

// IsValid reports whether c is one of the defined codes
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal,
		CodeInvalidInput, CodeInvalidFormat, CodeNoSelection, CodeUnknownAction,
		CodeExternalTool, CodeFileReadFailed, CodeFileWriteFailed, CodeConfigError:
		return true
	default:
		return false
	}
}

// Category groups codes for log filtering
func (c Code) Category() string {
	switch c {
	case CodeInvalidInput, CodeInvalidFormat, CodeNoSelection, CodeUnknownAction:
		return "input"
	case CodeExternalTool:
		return "tool"
	case CodeFileReadFailed, CodeFileWriteFailed:
		return "file"
	case CodeConfigError:
		return "configuration"
	default:
		return "generic"
	}
}
