// File: filex.go
// Title: Core File Utilities
// Description: File helpers for saving buffers, loading dropped or listed
//              files and handing temporary files to external viewers.
// Author: clipdash contributors
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Existence checks, read and write helpers
// - 2026-10-19 v0.2.0: Text detection, sorted file listing, temp files

package filex

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"unicode/utf8"
)

// textSniffLen is how much of a file IsText inspects
const textSniffLen = 8000

// Exists checks if a file or directory exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsFile checks if the path is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsDir checks if the path is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsText reports whether data looks like text: valid UTF-8 without NUL
// bytes in its first few kilobytes
func IsText(data []byte) bool {
	sample := data
	if len(sample) > textSniffLen {
		sample = sample[:textSniffLen]
		// do not judge a rune cut in half at the boundary
		for i := 0; i < utf8.UTFMax && !utf8.Valid(sample); i++ {
			sample = sample[:len(sample)-1]
		}
	}
	return bytes.IndexByte(sample, 0) < 0 && utf8.Valid(sample)
}

// ReadText reads a file and returns its content as a string. Files that
// do not look like text are rejected.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}
	if !IsText(data) {
		return "", fmt.Errorf("file %s is not a text file", path)
	}
	return string(data), nil
}

// WriteString writes content to path, creating parent directories
func WriteString(path, content string, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}

// ListFiles returns the paths of the regular files directly inside dir,
// sorted by name. Subdirectories are not descended into.
func ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// TempFile creates a file in the system temp directory whose name is
// prefix, a random part and suffix, and writes content to it
func TempFile(prefix, suffix string, content []byte) (string, error) {
	tmpFile, err := os.CreateTemp("", prefix+"*"+suffix)
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}

	path := tmpFile.Name()
	if _, err := tmpFile.Write(content); err != nil {
		tmpFile.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write content to temporary file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to close temporary file: %w", err)
	}
	return path, nil
}

// SafeRemove removes a file and ignores a file that is already gone
func SafeRemove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}
