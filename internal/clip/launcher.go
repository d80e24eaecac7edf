// ============================================================================
// clipdash - Clipboard Dashboard
// ============================================================================
//
// Package:     clip
// Description: Starts the viewer, diff tool and OS opener
// Author:      clipdash contributors
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package clip

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
	"strings"
	"sync"

	cderror "github.com/msto63/clipdash/foundation/core/error"
	"github.com/msto63/clipdash/foundation/utils/filex"
	"github.com/msto63/clipdash/pkg/core/config"
	"github.com/msto63/clipdash/pkg/core/logging"
)

// StartFunc starts a command without waiting for it to exit
type StartFunc func(cmd *exec.Cmd) error

// startDetached starts cmd and reaps it in the background
func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}

// Launcher starts external programs on clipboard and buffer contents. The
// temp files it writes live until Cleanup.
type Launcher struct {
	tools  config.ToolsConfig
	logger *logging.Logger
	start  StartFunc

	mu    sync.Mutex
	temps []string
}

// NewLauncher returns a launcher for the configured tools
func NewLauncher(tools config.ToolsConfig, logger *logging.Logger) *Launcher {
	return &Launcher{tools: tools, logger: logger, start: startDetached}
}

// WithStart replaces how commands are started
func (l *Launcher) WithStart(start StartFunc) *Launcher {
	l.start = start
	return l
}

// View opens text in the configured viewer
func (l *Launcher) View(ctx context.Context, text string) error {
	path, err := l.tempFile(l.tools.ViewTempPrefix, text)
	if err != nil {
		return cderror.FileWrite("action.view", "temp file", err)
	}
	return l.run(ctx, "action.view", l.tools.ViewApp, path)
}

// Diff opens a and b side by side in the configured diff tool
func (l *Launcher) Diff(ctx context.Context, a, b string) error {
	pathA, err := l.tempFile(l.tools.DiffTempPrefixA, a)
	if err != nil {
		return cderror.FileWrite("buffer.diff", "temp file", err)
	}
	pathB, err := l.tempFile(l.tools.DiffTempPrefixB, b)
	if err != nil {
		return cderror.FileWrite("buffer.diff", "temp file", err)
	}
	return l.run(ctx, "buffer.diff", l.tools.DiffApp, pathA, pathB)
}

// Open hands target, a URL or a path, to the OS opener
func (l *Launcher) Open(ctx context.Context, target string) error {
	return l.run(ctx, "action.open", l.opener(), target)
}

// TempFiles returns the temp files written so far
func (l *Launcher) TempFiles() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.temps...)
}

// Cleanup removes every temp file written by the launcher
func (l *Launcher) Cleanup() error {
	l.mu.Lock()
	temps := l.temps
	l.temps = nil
	l.mu.Unlock()

	var errs []error
	for _, path := range temps {
		if err := filex.SafeRemove(path); err != nil {
			errs = append(errs, err)
		}
	}
	if len(temps) > 0 {
		l.logger.Debug("removed temp files", "count", len(temps))
	}
	return errors.Join(errs...)
}

func (l *Launcher) tempFile(prefix, text string) (string, error) {
	path, err := filex.TempFile(prefix, l.tools.TempExt, []byte(text))
	if err != nil {
		return "", err
	}
	l.mu.Lock()
	l.temps = append(l.temps, path)
	l.mu.Unlock()
	return path, nil
}

// run starts app with args. app may carry its own arguments, as in
// "code --wait".
func (l *Launcher) run(ctx context.Context, operation, app string, args ...string) error {
	fields := strings.Fields(app)
	if len(fields) == 0 {
		return cderror.ExternalTool(operation, app, errors.New("no program configured"))
	}
	if err := ctx.Err(); err != nil {
		return cderror.ExternalTool(operation, fields[0], err)
	}

	cmd := exec.CommandContext(ctx, fields[0], append(fields[1:], args...)...)
	if err := l.start(cmd); err != nil {
		return cderror.ExternalTool(operation, fields[0], err)
	}

	l.logger.Debug("started external tool", "tool", fields[0], "args", len(args))
	return nil
}

func (l *Launcher) opener() string {
	if l.tools.OpenApp != "" {
		return l.tools.OpenApp
	}
	switch runtime.GOOS {
	case "windows":
		return "rundll32 url.dll,FileProtocolHandler"
	case "darwin":
		return "open"
	default:
		return "xdg-open"
	}
}
