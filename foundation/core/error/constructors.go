// File: constructors.go
// Title: Error Constructors
// Description: Shorthand constructors for the failures clipdash reports.
// Author: clipdash contributors
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial constructors

package error

// InvalidInput reports a rejected argument
func InvalidInput(operation, message string) *Error {
	return New(message).WithCode(CodeInvalidInput).WithOperation(operation)
}

// InvalidFormat reports an argument that failed to parse
func InvalidFormat(operation, message string) *Error {
	return New(message).WithCode(CodeInvalidFormat).WithOperation(operation)
}

// NoSelection reports an action that needs a selection but got none
func NoSelection(operation string) *Error {
	return New("No item selected").WithCode(CodeNoSelection).WithOperation(operation)
}

// ExternalTool reports a helper program that could not be started
func ExternalTool(operation, tool string, cause error) *Error {
	return Wrap(cause, "could not run "+tool).
		WithCode(CodeExternalTool).
		WithOperation(operation).
		WithDetail("tool", tool)
}

// FileRead reports a file that could not be read
func FileRead(operation, path string, cause error) *Error {
	return Wrap(cause, "could not read "+path).
		WithCode(CodeFileReadFailed).
		WithOperation(operation).
		WithDetail("path", path)
}

// FileWrite reports a file that could not be written
func FileWrite(operation, path string, cause error) *Error {
	return Wrap(cause, "could not write "+path).
		WithCode(CodeFileWriteFailed).
		WithOperation(operation).
		WithDetail("path", path)
}
