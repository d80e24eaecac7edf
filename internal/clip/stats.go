// ============================================================================
// clipdash - Clipboard Dashboard
// ============================================================================
//
// Package:     clip
// Description: Line statistics for the list stats action
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

// Stats describes a block of text split into lines
type Stats struct {
	Lines      int
	Chars      int
	Words      int
	MinLineLen int
	MaxLineLen int
	AvgLineLen float64
}

// ComputeStats splits text on sep and measures it. Chars counts the whole
// text including separators. Empty text has zero lines and zero stats.
func ComputeStats(text, sep string) Stats {
	lines := stringx.SplitLines(text, sep)
	if len(lines) == 0 {
		return Stats{}
	}

	st := Stats{
		Lines:      len(lines),
		Chars:      stringx.Length(text),
		Words:      len(strings.Fields(text)),
		MinLineLen: -1,
	}

	total := 0
	for _, line := range lines {
		n := stringx.Length(line)
		if st.MinLineLen < 0 || n < st.MinLineLen {
			st.MinLineLen = n
		}
		if n > st.MaxLineLen {
			st.MaxLineLen = n
		}
		total += n
	}
	st.AvgLineLen = float64(total) / float64(len(lines))
	return st
}

// String renders the status bar message
func (s Stats) String() string {
	return fmt.Sprintf("List stats: lines=%d chars=%d words=%d min/max/avgLineLength=%d / %d / %.1f",
		s.Lines, s.Chars, s.Words, s.MinLineLen, s.MaxLineLen, s.AvgLineLen)
}
