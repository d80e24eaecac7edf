// ============================================================================
// clipdash - Clipboard Dashboard
// ============================================================================
//
// Package:     clip
// Description: ${name} variable substitution for retrieved buffers
// Author:      clipdash contributors
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package clip

import (
	"strconv"
	"strings"
)

// Substitute replaces every ${name} in template with vars[name]. Unknown
// names and an unterminated ${ are left as written. $${ is an escaped ${.
func Substitute(template string, vars map[string]string) string {
	var sb strings.Builder
	sb.Grow(len(template))

	for i := 0; i < len(template); {
		if strings.HasPrefix(template[i:], "$${") {
			sb.WriteString("${")
			i += 3
			continue
		}
		if strings.HasPrefix(template[i:], "${") {
			end := strings.IndexByte(template[i+2:], '}')
			if end >= 0 {
				name := template[i+2 : i+2+end]
				if value, ok := vars[name]; ok {
					sb.WriteString(value)
					i += end + 3
					continue
				}
			}
		}
		sb.WriteByte(template[i])
		i++
	}
	return sb.String()
}

// BufferVars returns the variables available to a retrieve: each buffer by
// its index and the current clipboard as clip
func BufferVars(buffers []string, clipboard string) map[string]string {
	vars := make(map[string]string, len(buffers)+1)
	for i, text := range buffers {
		vars[strconv.Itoa(i)] = text
	}
	vars["clip"] = clipboard
	return vars
}
