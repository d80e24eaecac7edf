// File: error_test.go
// Title: Error Tests
// Description: Tests for wrapping, code and severity propagation and the
//              JSON rendering used by the log formatter.
// Author: clipdash contributors
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial error tests

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("something broke")
	if err.Error() != "something broke" {
		t.Errorf("Error() = %q", err.Error())
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v; want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v; want %v", err.Severity(), SeverityMedium)
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "x") != nil {
		t.Error("Wrap(nil) should return nil")
	}

	base := errors.New("permission denied")
	wrapped := Wrap(base, "could not write buffer_000.txt")
	if wrapped.Error() != "could not write buffer_000.txt: permission denied" {
		t.Errorf("Error() = %q", wrapped.Error())
	}
	if !errors.Is(wrapped, base) {
		t.Error("errors.Is should find the cause")
	}

	inner := InvalidInput("list.center", "bad width").WithDetail("arg", "x")
	outer := Wrap(inner, "center failed")
	if outer.Code() != CodeInvalidInput {
		t.Errorf("wrapped Code() = %v; want %v", outer.Code(), CodeInvalidInput)
	}
	if outer.Details()["arg"] != "x" {
		t.Errorf("wrapped details = %v", outer.Details())
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeInvalidInput, SeverityLow},
		{CodeNoSelection, SeverityLow},
		{CodeExternalTool, SeverityMedium},
		{CodeFileWriteFailed, SeverityHigh},
		{CodeConfigError, SeverityCritical},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := New("x").WithCode(tt.code).Severity(); got != tt.want {
				t.Errorf("severity = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestExplicitSeverityWins(t *testing.T) {
	err := New("x").WithSeverity(SeverityCritical).WithCode(CodeInvalidInput)
	if err.Severity() != SeverityCritical {
		t.Errorf("Severity() = %v; want %v", err.Severity(), SeverityCritical)
	}
}

func TestHasCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", NoSelection("buffer.retrieve"))
	if !HasCode(err, CodeNoSelection) {
		t.Error("HasCode should look through fmt wrapping")
	}
	if HasCode(err, CodeInvalidInput) {
		t.Error("HasCode matched the wrong code")
	}
	if HasCode(errors.New("plain"), CodeUnknown) {
		t.Error("HasCode should be false for plain errors")
	}
	if GetCode(err) != CodeNoSelection {
		t.Errorf("GetCode() = %v", GetCode(err))
	}
}

func TestConstructors(t *testing.T) {
	cause := errors.New("exec: \"meld\": not found")
	tests := []struct {
		name string
		err  *Error
		code Code
		msg  string
	}{
		{"no selection", NoSelection("buffer.join"), CodeNoSelection, "No item selected"},
		{"tool", ExternalTool("buffer.diff", "meld", cause), CodeExternalTool, "could not run meld: " + cause.Error()},
		{"read", FileRead("buffer.load", "a.txt", cause), CodeFileReadFailed, "could not read a.txt: " + cause.Error()},
		{"write", FileWrite("buffer.save", "b.txt", cause), CodeFileWriteFailed, "could not write b.txt: " + cause.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code() != tt.code {
				t.Errorf("Code() = %v; want %v", tt.err.Code(), tt.code)
			}
			if tt.err.Error() != tt.msg {
				t.Errorf("Error() = %q; want %q", tt.err.Error(), tt.msg)
			}
			if tt.err.Operation() == "" {
				t.Error("Operation() should be set")
			}
		})
	}
}

func TestMarshalJSON(t *testing.T) {
	err := InvalidFormat("list.slice", "Too many colons").WithDetail("expr", "1:2:3")
	raw, marshalErr := json.Marshal(err)
	if marshalErr != nil {
		t.Fatalf("Marshal() error = %v", marshalErr)
	}

	var data map[string]interface{}
	if err := json.Unmarshal(raw, &data); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if data["code"] != "INVALID_FORMAT" || data["severity"] != "low" || data["operation"] != "list.slice" {
		t.Errorf("unexpected JSON %s", raw)
	}
}
