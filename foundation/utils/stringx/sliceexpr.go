// File: sliceexpr.go
// Title: Slice Expression Parser
// Description: Parses user supplied slice expressions such as "4", "3:5",
//              "2:" and ":-4" into a SliceIntent.
// Author: clipdash contributors
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package stringx

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports a malformed slice expression. Message is meant to be
// shown to the user as is.
type ParseError struct {
	Expr    string
	Message string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return e.Message
}

// ParseSliceExpr parses expr into a SliceIntent.
//
// Without a colon the whole expression must be an integer. With one colon
// each side is either blank (absent bound) or an integer. More colons are
// rejected. Blank tokens are absent rather than malformed.
func ParseSliceExpr(expr string) (SliceIntent, error) {
	colons := strings.Count(expr, ":")

	switch colons {
	case 0:
		value, err := parseSliceToken(expr)
		if err != nil {
			return SliceIntent{}, &ParseError{Expr: expr, Message: err.Error()}
		}
		if value == nil {
			return SliceIntent{}, &ParseError{
				Expr:    expr,
				Message: "The single value slice argument must be an integer",
			}
		}
		return Single(*value), nil

	case 1:
		tokens := strings.SplitN(expr, ":", 2)
		start, err := parseSliceToken(tokens[0])
		if err != nil {
			return SliceIntent{}, &ParseError{Expr: expr, Message: err.Error()}
		}
		end, err := parseSliceToken(tokens[1])
		if err != nil {
			return SliceIntent{}, &ParseError{Expr: expr, Message: err.Error()}
		}
		return Range(start, end), nil

	default:
		return SliceIntent{}, &ParseError{
			Expr:    expr,
			Message: fmt.Sprintf("Too many colons (%d) in slice argument: %q", colons, expr),
		}
	}
}

// parseSliceToken returns nil for a blank token
func parseSliceToken(token string) (*int, error) {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil, fmt.Errorf("Could not parse %q into an integer", token)
	}
	return &value, nil
}
