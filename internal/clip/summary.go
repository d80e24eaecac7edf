// ============================================================================
// clipdash - Clipboard Dashboard
// ============================================================================
//
// Package:     clip
// Description: One-line display label for a buffer
// Author:      clipdash contributors
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package clip

import (
	"fmt"
	"strings"

	"github.com/msto63/clipdash/foundation/utils/stringx"
)

// Summary formats clip as a single display line. Line separators become
// spaces. Text longer than cropLength is cut and marked with "...". Long or
// multi-line text gets a "(N chars, M lines)" suffix, where N counts the
// flattened text.
func Summary(clip string, cropLength int, sep string) string {
	lines := stringx.CountLines(clip, sep)

	flat := clip
	if sep != "" {
		flat = strings.ReplaceAll(clip, sep, " ")
	}
	length := stringx.Length(flat)

	if length <= cropLength && lines <= 1 {
		return flat
	}

	cropped, cut := stringx.Crop(flat, cropLength)
	ellipsis := ""
	if cut {
		ellipsis = "..."
	}
	return fmt.Sprintf("%s%s (%d chars, %d lines)", cropped, ellipsis, length, lines)
}
