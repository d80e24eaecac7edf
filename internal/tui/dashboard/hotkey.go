// ============================================================================
// clipdash - Clipboard Dashboard
// ============================================================================
//
// Package:     dashboard
// Description: Global hotkey that stores the clipboard from anywhere
// Author:      clipdash contributors
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package dashboard

import (
	"strings"

	cderror "github.com/msto63/clipdash/foundation/core/error"
	"github.com/msto63/clipdash/pkg/core/config"
)

// The hotkey library needs cgo and an X display on Linux and panics at
// startup without one. It is only linked into builds tagged "hotkey", see
// hotkey_native.go. Other builds log that the hotkey is unavailable.

var hotkeyModifierNames = map[string]bool{
	"ctrl": true, "shift": true, "alt": true, "super": true,
}

// hotkeyBinding is a parsed hotkey with lower case names
type hotkeyBinding struct {
	Modifiers []string
	Key       string
}

// String renders the binding as "ctrl+shift+c"
func (b hotkeyBinding) String() string {
	return strings.Join(append(append([]string{}, b.Modifiers...), b.Key), "+")
}

// validHotkeyKey reports whether name is a letter, a digit, space or f1-f12
func validHotkeyKey(name string) bool {
	if len(name) == 1 {
		c := name[0]
		return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
	}
	switch name {
	case "space", "f1", "f2", "f3", "f4", "f5", "f6", "f7", "f8", "f9", "f10", "f11", "f12":
		return true
	}
	return false
}

// parseHotkey resolves the configured modifier names and key
func parseHotkey(cfg config.HotkeyConfig) (hotkeyBinding, error) {
	const op = "hotkey.parse"

	b := hotkeyBinding{Modifiers: make([]string, 0, len(cfg.Modifiers))}
	for _, name := range cfg.Modifiers {
		mod := strings.ToLower(strings.TrimSpace(name))
		if !hotkeyModifierNames[mod] {
			return hotkeyBinding{}, cderror.InvalidInput(op, "unknown hotkey modifier "+name).
				WithDetail("modifier", name)
		}
		b.Modifiers = append(b.Modifiers, mod)
	}

	b.Key = strings.ToLower(strings.TrimSpace(cfg.Key))
	if !validHotkeyKey(b.Key) {
		return hotkeyBinding{}, cderror.InvalidInput(op, "unknown hotkey key "+cfg.Key).
			WithDetail("key", cfg.Key)
	}
	return b, nil
}
