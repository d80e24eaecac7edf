// ============================================================================
// clipdash - Clipboard Dashboard
// ============================================================================
//
// Package:     clip
// Description: Actions that hand the clipboard to external programs
// Author:      clipdash contributors
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package clip

import (
	"context"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	cderror "github.com/msto63/clipdash/foundation/core/error"
	"github.com/msto63/clipdash/foundation/utils/filex"
	"github.com/msto63/clipdash/foundation/utils/slicex"
)

func (s *Service) registerToolActions() {
	s.register("action.view", s.actionView)
	s.register("action.open-urls", s.actionOpenURLs)
	s.register("action.open-files", s.actionOpenFiles)
	s.register("action.load", s.actionLoad)
}

func (s *Service) actionView(ctx context.Context, args Args) (string, Selection, error) {
	if err := s.launcher.View(ctx, s.port.Read()); err != nil {
		if cderror.HasCode(err, cderror.CodeFileWriteFailed) {
			return "", args.Selection, cderror.Wrap(err, "Couldn't write temp file for the viewer")
		}
		return "", args.Selection, cderror.Wrap(err, "Couldn't launch the viewer")
	}
	return "Opened current clipboard in " + s.cfg.Tools.ViewApp, args.Selection, nil
}

func (s *Service) actionOpenURLs(ctx context.Context, args Args) (string, Selection, error) {
	targets := s.clipTargets()
	for _, target := range targets {
		if _, err := url.ParseRequestURI(target); err != nil {
			return "", args.Selection, cderror.Wrap(err, "Couldn't launch URI's in clipboard because").
				WithCode(cderror.CodeInvalidInput).
				WithOperation("action.open-urls")
		}
	}

	count, err := s.openAll(ctx, targets)
	if err != nil {
		return "", args.Selection, cderror.Wrap(err, "Couldn't launch URI's in clipboard because")
	}
	return fmt.Sprintf("Opened %d URI(s) in the browser", count), args.Selection, nil
}

func (s *Service) actionOpenFiles(ctx context.Context, args Args) (string, Selection, error) {
	targets := s.clipTargets()
	for _, target := range targets {
		if !filex.Exists(target) {
			return "", args.Selection, cderror.InvalidInput("action.open-files",
				fmt.Sprintf("Couldn't launch file/folder in clipboard because: %s does not exist", target))
		}
	}

	count, err := s.openAll(ctx, targets)
	if err != nil {
		return "", args.Selection, cderror.Wrap(err, "Couldn't launch file/folder in clipboard because")
	}
	return fmt.Sprintf("Opened %d file(s)/folder(s) in the browser", count), args.Selection, nil
}

func (s *Service) actionLoad(_ context.Context, args Args) (string, Selection, error) {
	path := strings.TrimSpace(args.Arg1)
	if path == "" {
		return "", args.Selection, cderror.InvalidInput("action.load", "Give the file to load (arg1)")
	}

	lines, err := LoadFileToClipboard(s.port, path, s.sep)
	if err != nil {
		return "", args.Selection, cderror.Wrap(err, "Problem reading from file "+filepath.Base(path))
	}
	return fmt.Sprintf("Read %d lines from file (%s) into system clipboard", lines, filepath.Base(path)), args.Selection, nil
}

// clipTargets returns the non-blank clipboard lines, trimmed
func (s *Service) clipTargets() []string {
	lines := slicex.Map(ReadLines(s.port, s.sep), strings.TrimSpace)
	return slicex.Filter(lines, func(line string) bool { return line != "" })
}

func (s *Service) openAll(ctx context.Context, targets []string) (int, error) {
	count := 0
	for _, target := range targets {
		if err := s.launcher.Open(ctx, target); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}
