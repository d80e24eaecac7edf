// ============================================================================
// clipdash - Clipboard Dashboard
// ============================================================================
//
// Package:     clip
// Description: Buffer group actions
// Author:      clipdash contributors
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package clip

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	cderror "github.com/msto63/clipdash/foundation/core/error"
	"github.com/msto63/clipdash/foundation/utils/slicex"
	"github.com/msto63/clipdash/foundation/utils/stringx"
)

func (s *Service) registerBufferActions() {
	s.register("buffer.store", s.bufferStore)
	s.register("buffer.replace", s.bufferReplace)
	s.register("buffer.prepend", s.bufferPrepend)
	s.register("buffer.append", s.bufferAppend)
	s.register("buffer.retrieve", s.bufferRetrieve)
	s.register("buffer.join", s.bufferJoin)
	s.register("buffer.diff", s.bufferDiff)
	s.register("buffer.up", s.bufferUp)
	s.register("buffer.down", s.bufferDown)
	s.register("buffer.delete", s.bufferDelete)
	s.register("buffer.store-lines", s.bufferStoreLines)
	s.register("buffer.save", s.bufferSave)
	s.register("buffer.load", s.bufferLoad)
}

func (s *Service) bufferStore(_ context.Context, args Args) (string, Selection, error) {
	text := s.port.Read()
	s.buffers.Add(text)
	msg := fmt.Sprintf("Storing %d line(s) and %d chars from the clipboard to a buffer",
		stringx.CountLines(text, s.sep), stringx.Length(text))
	return msg, args.Selection.Shift(1), nil
}

func (s *Service) bufferReplace(_ context.Context, args Args) (string, Selection, error) {
	text := s.port.Read()
	n := s.buffers.Replace(args.Selection, text)
	return fmt.Sprintf("Replace %d buffer(s) with %d characters", n, stringx.Length(text)), args.Selection, nil
}

func (s *Service) bufferPrepend(_ context.Context, args Args) (string, Selection, error) {
	text := s.port.Read()
	n := s.buffers.Prepend(args.Selection, text)
	return fmt.Sprintf("Prepend %d characters to %d buffer(s)", stringx.Length(text), n), args.Selection, nil
}

func (s *Service) bufferAppend(_ context.Context, args Args) (string, Selection, error) {
	text := s.port.Read()
	n := s.buffers.Append(args.Selection, text)
	return fmt.Sprintf("Append %d characters to %d buffer(s)", stringx.Length(text), n), args.Selection, nil
}

func (s *Service) bufferRetrieve(_ context.Context, args Args) (string, Selection, error) {
	target, ordinal, next, err := Rotate(args.Selection)
	if err != nil {
		return "", args.Selection, err
	}

	text, _ := s.buffers.Get(target)
	if s.cfg.Behaviour.VariableSubstitution {
		text = Substitute(text, BufferVars(s.buffers.All(), s.port.Read()))
	}
	s.port.Write(text)

	lines := stringx.CountLines(text, s.sep)
	chars := stringx.Length(text)
	if args.Selection.Len() > 1 {
		return fmt.Sprintf("Retrieving %d line(s) and %d chars from buffer (#%d of %d) and storing to the clipboard",
			lines, chars, ordinal, args.Selection.Len()), next, nil
	}
	return fmt.Sprintf("Retrieving %d line(s) and %d chars from buffer and storing to the clipboard",
		lines, chars), next, nil
}

func (s *Service) bufferJoin(_ context.Context, args Args) (string, Selection, error) {
	if args.Selection.Empty() {
		return "", args.Selection, cderror.NoSelection("buffer.join")
	}
	text := s.buffers.Join(args.Selection, s.sep)
	s.port.Write(text)
	return fmt.Sprintf("Joining the %d selected buffers and storing %d chars to the clipboard",
		args.Selection.Len(), stringx.Length(text)), args.Selection, nil
}

func (s *Service) bufferDiff(ctx context.Context, args Args) (string, Selection, error) {
	if args.Selection.Len() != 2 {
		return "", args.Selection, cderror.InvalidInput("buffer.diff", "Need two buffers selected to do a diff")
	}
	texts := s.buffers.Selected(args.Selection)
	if err := s.launcher.Diff(ctx, texts[0], texts[1]); err != nil {
		return "", args.Selection, cderror.Wrap(err, "Can't launch diff tool")
	}
	return "Diffing the two selected buffers with " + s.cfg.Tools.DiffApp, args.Selection, nil
}

func (s *Service) bufferUp(_ context.Context, args Args) (string, Selection, error) {
	next := s.buffers.MoveUp(args.Selection)
	return fmt.Sprintf("Moved %d buffer(s) up", args.Selection.Len()), next, nil
}

func (s *Service) bufferDown(_ context.Context, args Args) (string, Selection, error) {
	next := s.buffers.MoveDown(args.Selection)
	return fmt.Sprintf("Moved %d buffer(s) down", args.Selection.Len()), next, nil
}

func (s *Service) bufferDelete(_ context.Context, args Args) (string, Selection, error) {
	n := s.buffers.Delete(args.Selection)
	focus := 0
	if !args.Selection.Empty() {
		focus = args.Selection.Indices[0]
	}
	return fmt.Sprintf("Deleted %d selected clip buffer(s)", n), Selection{Focus: focus}, nil
}

func (s *Service) bufferStoreLines(_ context.Context, args Args) (string, Selection, error) {
	lines := ReadLines(s.port, s.sep)
	s.buffers.AddAll(slicex.Reverse(lines))
	return fmt.Sprintf("Stored %d line(s) into individual buffers", len(lines)), args.Selection.Shift(len(lines)), nil
}

func (s *Service) bufferSave(_ context.Context, args Args) (string, Selection, error) {
	dir := strings.TrimSpace(args.Arg1)
	if dir == "" {
		dir = s.cfg.Buffers.SaveDir
	}

	paths, err := SaveBuffers(dir, s.buffers.Selected(args.Selection), s.cfg.Buffers.WordsForFileNaming)
	if err != nil {
		if cderror.HasCode(err, cderror.CodeFileWriteFailed) {
			return "", args.Selection, cderror.Wrap(err, "Problem writing file")
		}
		return "", args.Selection, err
	}
	return fmt.Sprintf("Wrote %d buffer(s) to %s", len(paths), dir), args.Selection, nil
}

func (s *Service) bufferLoad(_ context.Context, args Args) (string, Selection, error) {
	paths := slicex.Filter(filepath.SplitList(args.Arg1), func(p string) bool {
		return strings.TrimSpace(p) != ""
	})
	if len(paths) == 0 {
		return "", args.Selection, cderror.InvalidInput("buffer.load", "Give one or more files or directories to load")
	}

	texts, skipped := LoadFiles(paths, s.sep)
	for _, path := range skipped {
		s.logger.Debug("skipped unreadable file", "path", path)
	}
	s.buffers.AddAll(texts)
	return fmt.Sprintf("Read %d files and stored contents in buffers", len(texts)), args.Selection.Shift(len(texts)), nil
}
