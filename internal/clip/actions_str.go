// ============================================================================
// clipdash - Clipboard Dashboard
// ============================================================================
//
// Package:     clip
// Description: String group actions on the whole clipboard
// Author:      clipdash contributors
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package clip

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	cderror "github.com/msto63/clipdash/foundation/core/error"
	"github.com/msto63/clipdash/foundation/utils/slicex"
	"github.com/msto63/clipdash/foundation/utils/stringx"
)

func (s *Service) registerStrActions() {
	s.register("str.ltrim", s.strMap(stringx.LTrim, "Left-trimmed current clipboard contents"))
	s.register("str.trim", s.strMap(stringx.Trim, "Trimmed current clipboard contents"))
	s.register("str.rtrim", s.strMap(stringx.RTrim, "Right-trimmed current clipboard contents"))
	s.register("str.lower", s.strMap(strings.ToLower, "Lower-cased current clipboard contents"))
	s.register("str.upper", s.strMap(strings.ToUpper, "Upper-cased current clipboard contents"))
	s.register("str.strip-ansi", s.strMap(stringx.StripANSI, "Stripped terminal escape sequences from current clipboard contents"))
	s.register("str.prepend", s.strPrepend)
	s.register("str.append", s.strAppend)
	s.register("str.wrap", s.strWrap)
	s.register("str.split", s.strSplit)
	s.register("str.replace", s.strReplace)
	s.register("str.regex-replace", s.strRegexReplace)
}

// strMap builds an action that rewrites the whole clipboard with fn
func (s *Service) strMap(fn func(string) string, msg string) handler {
	return func(_ context.Context, args Args) (string, Selection, error) {
		s.port.Write(fn(s.port.Read()))
		return msg, args.Selection, nil
	}
}

func (s *Service) strPrepend(_ context.Context, args Args) (string, Selection, error) {
	s.port.Write(args.Arg1 + s.port.Read())
	return fmt.Sprintf("Prepended %d character(s) to current clipboard", stringx.Length(args.Arg1)), args.Selection, nil
}

func (s *Service) strAppend(_ context.Context, args Args) (string, Selection, error) {
	s.port.Write(s.port.Read() + args.Arg1)
	return fmt.Sprintf("Appended %d character(s) to current clipboard", stringx.Length(args.Arg1)), args.Selection, nil
}

func (s *Service) strWrap(_ context.Context, args Args) (string, Selection, error) {
	width, err := parseWidth("str.wrap", "word wrap", args.Arg1)
	if err != nil {
		return "", args.Selection, err
	}

	lines := stringx.SplitLines(s.port.Read(), s.sep)
	wrapped := slicex.Map(lines, func(line string) string {
		return strings.ReplaceAll(stringx.WordWrap(line, width), "\n", s.sep)
	})
	s.port.Write(stringx.JoinLines(wrapped, s.sep))
	return fmt.Sprintf("Word wrapped the current clipboard contents to %d columns wide", width), args.Selection, nil
}

func (s *Service) strSplit(_ context.Context, args Args) (string, Selection, error) {
	if args.Arg1 == "" {
		return "", args.Selection, cderror.InvalidInput("str.split", "Give the string to split on (arg1)")
	}

	text := s.port.Read()
	split := strings.ReplaceAll(text, args.Arg1, s.sep)
	s.port.Write(split)
	return fmt.Sprintf("Split %d character(s) using '%s' into %d line(s) in current clipboard",
		stringx.Length(text), args.Arg1, len(stringx.SplitLines(split, s.sep))), args.Selection, nil
}

func (s *Service) strReplace(_ context.Context, args Args) (string, Selection, error) {
	target := stringx.ReplaceSpecialChars(args.Arg1, s.sep)
	repl := stringx.ReplaceSpecialChars(args.Arg2, s.sep)
	if target == "" {
		return "", args.Selection, cderror.InvalidInput("str.replace", "Give the text to replace (arg1)")
	}

	s.port.Write(strings.ReplaceAll(s.port.Read(), target, repl))
	return fmt.Sprintf("Replaced '%s' with '%s' in current clipboard", target, repl), args.Selection, nil
}

func (s *Service) strRegexReplace(_ context.Context, args Args) (string, Selection, error) {
	re, err := s.compile(args.Arg1)
	if err != nil {
		return "", args.Selection, cderror.Wrap(err, "Problem doing the regex substitution").
			WithCode(cderror.CodeInvalidFormat).
			WithOperation("str.regex-replace")
	}

	s.port.Write(re.ReplaceAllString(s.port.Read(), args.Arg2))
	return fmt.Sprintf("Replaced regex '%s' with '%s' in current clipboard", args.Arg1, args.Arg2), args.Selection, nil
}

// parseWidth reads a column width from arg
func parseWidth(operation, what, arg string) (int, error) {
	width, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, cderror.Wrap(err, fmt.Sprintf("Invalid argument for %s. It must be an integer.", what)).
			WithCode(cderror.CodeInvalidInput).
			WithOperation(operation)
	}
	if width < 1 {
		return 0, cderror.InvalidInput(operation, fmt.Sprintf("Invalid argument for %s. It must be a positive integer.", what))
	}
	return width, nil
}
