// ============================================================================
// clipdash - Clipboard Dashboard
// ============================================================================
//
// Package:     clip
// Description: Saving buffers to disk and loading files into buffers
// Author:      clipdash contributors
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package clip

import (
	"fmt"
	"path/filepath"
	"strings"

	cderror "github.com/msto63/clipdash/foundation/core/error"
	"github.com/msto63/clipdash/foundation/utils/filex"
	"github.com/msto63/clipdash/foundation/utils/stringx"
)

// BufferFileName names the file for the n-th saved buffer (1-based). The
// first words of text are added when there are any.
func BufferFileName(n int, text string, words int) string {
	name := fmt.Sprintf("buffer_%03d", n)
	if desc := stringx.ExtractInitialWords(text, words); desc != "" {
		name += "_" + desc
	}
	return name + ".txt"
}

// SaveBuffers writes each text to its own file in dir and returns the
// paths written. It stops at the first failure.
func SaveBuffers(dir string, texts []string, words int) ([]string, error) {
	if len(texts) == 0 {
		return nil, cderror.New("There were no buffers selected").
			WithCode(cderror.CodeNoSelection).
			WithOperation("buffer.save")
	}

	paths := make([]string, 0, len(texts))
	for i, text := range texts {
		path := filepath.Join(dir, BufferFileName(i+1, text, words))
		if err := filex.WriteString(path, text, 0o644); err != nil {
			return paths, cderror.FileWrite("buffer.save", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// LoadFiles reads every text file named in paths, with lines separated by
// sep. A directory contributes the files directly inside it. Unreadable
// and binary files are skipped and returned in skipped.
func LoadFiles(paths []string, sep string) (texts []string, skipped []string) {
	var files []string
	for _, path := range paths {
		if filex.IsDir(path) {
			inner, err := filex.ListFiles(path)
			if err != nil {
				skipped = append(skipped, path)
				continue
			}
			files = append(files, inner...)
			continue
		}
		files = append(files, path)
	}

	for _, file := range files {
		text, err := readClipFile(file, sep)
		if err != nil {
			skipped = append(skipped, file)
			continue
		}
		texts = append(texts, text)
	}
	return texts, skipped
}

// LoadFileToClipboard writes the text of one file to port, with lines
// separated by sep, and returns the number of lines read
func LoadFileToClipboard(port Port, path, sep string) (int, error) {
	if !filex.IsFile(path) {
		return 0, cderror.FileRead("action.load", path, fmt.Errorf("not a regular file"))
	}
	text, err := readClipFile(path, sep)
	if err != nil {
		return 0, cderror.FileRead("action.load", path, err)
	}
	port.Write(text)
	return stringx.CountLines(text, sep), nil
}

// readClipFile reads a text file, drops a single trailing line ending and
// rewrites the remaining line endings to sep
func readClipFile(path, sep string) (string, error) {
	text, err := filex.ReadText(path)
	if err != nil {
		return "", err
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if sep != "" && sep != "\n" {
		text = strings.ReplaceAll(text, "\n", sep)
	}
	return text, nil
}
