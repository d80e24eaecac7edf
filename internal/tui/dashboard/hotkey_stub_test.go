//go:build !hotkey || !(linux || windows)

package dashboard

import (
	"testing"

	"github.com/msto63/clipdash/pkg/core/config"
	"github.com/msto63/clipdash/pkg/core/logging"
)

func TestRegisterHotkey_NotBuiltIn(t *testing.T) {
	logger := logging.NewNop("test")

	fired := false
	stop, err := registerHotkey(config.HotkeyConfig{Modifiers: []string{"ctrl", "shift"}, Key: "c"}, logger, func() { fired = true })
	if err != nil {
		t.Fatalf("registerHotkey() error = %v", err)
	}
	stop()
	if fired {
		t.Error("registerHotkey() fired without a key press")
	}

	if _, err := registerHotkey(config.HotkeyConfig{Key: "pause"}, logger, func() {}); err == nil {
		t.Error("registerHotkey() should reject an unknown key")
	}
}
