//go:build hotkey && (linux || windows)

// ============================================================================
// clipdash - Clipboard Dashboard
// ============================================================================
//
// Package:     dashboard
// Description: Hotkey registration through golang.design/x/hotkey
// Author:      clipdash contributors
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package dashboard

import (
	"golang.design/x/hotkey"

	cderror "github.com/msto63/clipdash/foundation/core/error"
	"github.com/msto63/clipdash/pkg/core/config"
	"github.com/msto63/clipdash/pkg/core/logging"
)

var hotkeyKeys = map[string]hotkey.Key{
	"a": hotkey.KeyA, "b": hotkey.KeyB, "c": hotkey.KeyC, "d": hotkey.KeyD,
	"e": hotkey.KeyE, "f": hotkey.KeyF, "g": hotkey.KeyG, "h": hotkey.KeyH,
	"i": hotkey.KeyI, "j": hotkey.KeyJ, "k": hotkey.KeyK, "l": hotkey.KeyL,
	"m": hotkey.KeyM, "n": hotkey.KeyN, "o": hotkey.KeyO, "p": hotkey.KeyP,
	"q": hotkey.KeyQ, "r": hotkey.KeyR, "s": hotkey.KeyS, "t": hotkey.KeyT,
	"u": hotkey.KeyU, "v": hotkey.KeyV, "w": hotkey.KeyW, "x": hotkey.KeyX,
	"y": hotkey.KeyY, "z": hotkey.KeyZ,
	"0": hotkey.Key0, "1": hotkey.Key1, "2": hotkey.Key2, "3": hotkey.Key3,
	"4": hotkey.Key4, "5": hotkey.Key5, "6": hotkey.Key6, "7": hotkey.Key7,
	"8": hotkey.Key8, "9": hotkey.Key9,
	"space": hotkey.KeySpace,
	"f1":    hotkey.KeyF1, "f2": hotkey.KeyF2, "f3": hotkey.KeyF3, "f4": hotkey.KeyF4,
	"f5": hotkey.KeyF5, "f6": hotkey.KeyF6, "f7": hotkey.KeyF7, "f8": hotkey.KeyF8,
	"f9": hotkey.KeyF9, "f10": hotkey.KeyF10, "f11": hotkey.KeyF11, "f12": hotkey.KeyF12,
}

// registerHotkey registers the global hotkey and calls fire on every key
// press. The returned func unregisters it.
func registerHotkey(cfg config.HotkeyConfig, logger *logging.Logger, fire func()) (func(), error) {
	b, err := parseHotkey(cfg)
	if err != nil {
		return nil, err
	}

	mods := make([]hotkey.Modifier, 0, len(b.Modifiers))
	for _, name := range b.Modifiers {
		mods = append(mods, hotkeyModifiers[name])
	}

	hk := hotkey.New(mods, hotkeyKeys[b.Key])
	if err := hk.Register(); err != nil {
		return nil, cderror.Wrap(err, "failed to register hotkey").
			WithCode(cderror.CodeConfigError).
			WithOperation("hotkey.register")
	}
	logger.Info("Hotkey registered", "hotkey", b.String())

	// Listen for hotkey events
	go func() {
		for range hk.Keydown() {
			logger.Debug("Hotkey pressed")
			fire()
		}
	}()

	return func() {
		if err := hk.Unregister(); err != nil {
			logger.Debug("Hotkey unregister failed", "error", err.Error())
		}
	}, nil
}
