// ============================================================================
// clipdash - Clipboard Dashboard
// ============================================================================
//
// Package:     clip
// Description: List group actions on the clipboard's lines
// Author:      clipdash contributors
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package clip

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	cderror "github.com/msto63/clipdash/foundation/core/error"
	"github.com/msto63/clipdash/foundation/utils/slicex"
	"github.com/msto63/clipdash/foundation/utils/stringx"
)

func (s *Service) registerListActions() {
	s.register("list.ltrim", s.listPerLine(stringx.LTrim, "Left-trimmed %d lines in current clipboard"))
	s.register("list.trim", s.listPerLine(stringx.Trim, "Trimmed %d lines in current clipboard"))
	s.register("list.rtrim", s.listPerLine(stringx.RTrim, "Right-trimmed %d lines in current clipboard"))
	s.register("list.sort", s.listWhole(slicex.Sort[string], "Sorted %d lines in current clipboard"))
	s.register("list.reverse", s.listWhole(slicex.Reverse[string], "Reversed %d lines in current clipboard"))
	s.register("list.collapse", s.listCollapse)
	s.register("list.uniq", s.listUniq)
	s.register("list.stats", s.listStats)
	s.register("list.prepend", s.listPrepend)
	s.register("list.append", s.listAppend)
	s.register("list.center", s.listCenter)
	s.register("list.slice", s.listSlice)
	s.register("list.join", s.listJoin)
	s.register("list.contains", s.listContains)
	s.register("list.regex", s.listRegex)
	s.register("list.regex-full", s.listRegexFull)
	s.register("list.regex-replace", s.listRegexReplace)
	s.register("list.unescape", s.listUnescape)
}

func (s *Service) listPerLine(fn func(string) string, format string) handler {
	return func(_ context.Context, args Args) (string, Selection, error) {
		res, err := Apply(s.port, s.sep, PerLine(fn))
		if err != nil {
			return "", args.Selection, err
		}
		return fmt.Sprintf(format, res.Lines()), args.Selection, nil
	}
}

func (s *Service) listWhole(fn func([]string) []string, format string) handler {
	return func(_ context.Context, args Args) (string, Selection, error) {
		res, err := Apply(s.port, s.sep, WholeList(fn))
		if err != nil {
			return "", args.Selection, err
		}
		return fmt.Sprintf(format, res.Lines()), args.Selection, nil
	}
}

func (s *Service) listCollapse(_ context.Context, args Args) (string, Selection, error) {
	res, err := Apply(s.port, s.sep, Filter(func(line string) bool { return line != "" }))
	if err != nil {
		return "", args.Selection, err
	}
	return fmt.Sprintf("Collapsed %d lines down to %d by removing empty lines in current clipboard",
		len(res.Before), res.Lines()), args.Selection, nil
}

func (s *Service) listUniq(_ context.Context, args Args) (string, Selection, error) {
	res, err := Apply(s.port, s.sep, WholeList(slicex.CompactAdjacent[string]))
	if err != nil {
		return "", args.Selection, err
	}
	return fmt.Sprintf("Made %d lines %d by removing adjacent duplicates in current clipboard",
		len(res.Before), res.Lines()), args.Selection, nil
}

func (s *Service) listStats(_ context.Context, args Args) (string, Selection, error) {
	return ComputeStats(s.port.Read(), s.sep).String(), args.Selection, nil
}

func (s *Service) listPrepend(_ context.Context, args Args) (string, Selection, error) {
	res, err := Apply(s.port, s.sep, PerLine(func(line string) string { return args.Arg1 + line }))
	if err != nil {
		return "", args.Selection, err
	}
	return fmt.Sprintf("Prepended %d character(s) to %d lines in current clipboard",
		stringx.Length(args.Arg1), res.Lines()), args.Selection, nil
}

func (s *Service) listAppend(_ context.Context, args Args) (string, Selection, error) {
	res, err := Apply(s.port, s.sep, PerLine(func(line string) string { return line + args.Arg1 }))
	if err != nil {
		return "", args.Selection, err
	}
	return fmt.Sprintf("Appended %d character(s) to %d lines in current clipboard",
		stringx.Length(args.Arg1), res.Lines()), args.Selection, nil
}

func (s *Service) listCenter(_ context.Context, args Args) (string, Selection, error) {
	width, err := parseWidth("list.center", "center", args.Arg1)
	if err != nil {
		return "", args.Selection, err
	}
	res, err := Apply(s.port, s.sep, PerLine(func(line string) string { return stringx.Center(line, width, ' ') }))
	if err != nil {
		return "", args.Selection, err
	}
	return fmt.Sprintf("Centered %d lines in current clipboard", res.Lines()), args.Selection, nil
}

func (s *Service) listSlice(_ context.Context, args Args) (string, Selection, error) {
	intent, err := stringx.ParseSliceExpr(args.Arg1)
	if err != nil {
		return "", args.Selection, cderror.Wrap(err, "Invalid slice expression").
			WithCode(cderror.CodeInvalidFormat).
			WithOperation("list.slice")
	}
	res, err := Apply(s.port, s.sep, PerLine(intent.Apply))
	if err != nil {
		return "", args.Selection, err
	}
	return fmt.Sprintf("Applied slice substring expression \"%s\" to %d line(s) in current clipboard",
		args.Arg1, res.Lines()), args.Selection, nil
}

func (s *Service) listJoin(_ context.Context, args Args) (string, Selection, error) {
	res, err := Apply(s.port, s.sep, WholeList(func(lines []string) []string {
		return []string{strings.Join(lines, args.Arg1)}
	}))
	if err != nil {
		return "", args.Selection, err
	}
	return fmt.Sprintf("Joined %d lines with '%s' in current clipboard", len(res.Before), args.Arg1), args.Selection, nil
}

func (s *Service) listContains(_ context.Context, args Args) (string, Selection, error) {
	res, err := Apply(s.port, s.sep, Filter(func(line string) bool { return strings.Contains(line, args.Arg1) }))
	if err != nil {
		return "", args.Selection, err
	}
	return fmt.Sprintf("Filtered %d lines down to %d in current clipboard", len(res.Before), res.Lines()), args.Selection, nil
}

func (s *Service) listRegex(_ context.Context, args Args) (string, Selection, error) {
	re, err := s.compileLineRegex("list.regex", `^.*(?:`+args.Arg1+`).*$`, args.Arg1)
	if err != nil {
		return "", args.Selection, err
	}
	res, err := Apply(s.port, s.sep, Filter(re.MatchString))
	if err != nil {
		return "", args.Selection, err
	}
	return fmt.Sprintf("Regex filtered %d lines down to %d in current clipboard", len(res.Before), res.Lines()), args.Selection, nil
}

func (s *Service) listRegexFull(_ context.Context, args Args) (string, Selection, error) {
	re, err := s.compileLineRegex("list.regex-full", `^(?:`+args.Arg1+`)$`, args.Arg1)
	if err != nil {
		return "", args.Selection, err
	}
	res, err := Apply(s.port, s.sep, Filter(re.MatchString))
	if err != nil {
		return "", args.Selection, err
	}
	return fmt.Sprintf("Regex (full) filtered %d lines down to %d in current clipboard", len(res.Before), res.Lines()), args.Selection, nil
}

func (s *Service) listRegexReplace(_ context.Context, args Args) (string, Selection, error) {
	re, err := s.compileLineRegex("list.regex-replace", args.Arg1, args.Arg1)
	if err != nil {
		return "", args.Selection, err
	}
	_, err = Apply(s.port, s.sep, PerLine(func(line string) string { return re.ReplaceAllString(line, args.Arg2) }))
	if err != nil {
		return "", args.Selection, err
	}
	return fmt.Sprintf("Replaced regex '%s' with '%s' in lines in current clipboard", args.Arg1, args.Arg2), args.Selection, nil
}

func (s *Service) listUnescape(_ context.Context, args Args) (string, Selection, error) {
	n := 0
	res, err := Apply(s.port, s.sep, TryPerLine(func(line string) (string, error) {
		n++
		out, err := strconv.Unquote(quoteLine(line))
		if err != nil {
			return "", cderror.InvalidFormat("list.unescape", fmt.Sprintf("Line %d is not a valid escaped string", n)).
				WithDetail("line", n)
		}
		return out, nil
	}))
	if err != nil {
		return "", args.Selection, err
	}
	return fmt.Sprintf("Unescaped %d lines in current clipboard", res.Lines()), args.Selection, nil
}

// quoteLine wraps line in double quotes, escaping the quotes inside it that
// are not escaped already
func quoteLine(line string) string {
	var sb strings.Builder
	sb.Grow(len(line) + 2)
	sb.WriteByte('"')
	escaped := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c == '"' && !escaped {
			sb.WriteByte('\\')
		}
		sb.WriteByte(c)
		escaped = c == '\\' && !escaped
	}
	sb.WriteByte('"')
	return sb.String()
}

func (s *Service) compileLineRegex(operation, expr, raw string) (*regexp.Regexp, error) {
	re, err := s.compile(expr)
	if err != nil {
		return nil, cderror.Wrap(err, fmt.Sprintf("Invalid regex '%s'", raw)).
			WithCode(cderror.CodeInvalidFormat).
			WithOperation(operation)
	}
	return re, nil
}
