//go:build !hotkey || !(linux || windows)

package dashboard

import (
	"github.com/msto63/clipdash/pkg/core/config"
	"github.com/msto63/clipdash/pkg/core/logging"
)

// registerHotkey validates the binding and logs that this build has no
// hotkey support. Build with -tags hotkey on Linux or Windows to enable it.
func registerHotkey(cfg config.HotkeyConfig, logger *logging.Logger, _ func()) (func(), error) {
	b, err := parseHotkey(cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("Hotkey not available in this build", "hotkey", b.String())
	return func() {}, nil
}
