// Package clipboard provides a clipboard adapter using wl-clipboard (Wayland),
// xclip/xsel (X11), or the native atotto/clipboard backend as a last resort.
package clipboard

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	native "github.com/atotto/clipboard"

	"github.com/bnema/scanclip/internal/application/port"
	"github.com/bnema/scanclip/internal/logging"
)

// Tool names accepted by New.
const (
	ToolAuto   = "auto"
	ToolWlCopy = "wl-copy"
	ToolXclip  = "xclip"
	ToolXsel   = "xsel"
	ToolNative = "native"
)

// Adapter implements port.Clipboard using system clipboard tools.
type Adapter struct {
	copyCmd string
	// writeNative is swapped in tests.
	writeNative func(string) error
}

var _ port.Clipboard = (*Adapter)(nil)

// New creates a new clipboard adapter.
// With ToolAuto it detects Wayland vs X11 and selects the matching tool,
// falling back to the native backend when none is installed.
func New(tool string) *Adapter {
	a := &Adapter{writeNative: native.WriteAll}

	switch tool {
	case ToolWlCopy, ToolXclip, ToolXsel:
		if path, err := exec.LookPath(tool); err == nil {
			a.copyCmd = path
		}
		return a
	case ToolNative:
		return a
	}

	// Check for Wayland first
	if os.Getenv("WAYLAND_DISPLAY") != "" {
		if path, err := exec.LookPath(ToolWlCopy); err == nil {
			a.copyCmd = path
			return a
		}
	}

	// Fall back to X11 if Wayland tools not available
	if os.Getenv("DISPLAY") != "" {
		if path, err := exec.LookPath(ToolXclip); err == nil {
			a.copyCmd = path
		} else if path, err := exec.LookPath(ToolXsel); err == nil {
			a.copyCmd = path
		}
	}

	return a
}

// Tool returns the command in use, or "native".
func (a *Adapter) Tool() string {
	if a.copyCmd == "" {
		return ToolNative
	}
	return filepath.Base(a.copyCmd)
}

// Available reports why the clipboard cannot be written, or nil.
func (a *Adapter) Available() error {
	if a.copyCmd == "" && native.Unsupported {
		return fmt.Errorf("no clipboard utility found (install wl-clipboard, xclip or xsel)")
	}
	return nil
}

// WriteText copies text to the clipboard.
func (a *Adapter) WriteText(ctx context.Context, text string) error {
	log := logging.FromContext(ctx)

	if a.copyCmd == "" {
		if err := a.writeNative(text); err != nil {
			log.Error().Err(err).Str("tool", ToolNative).Msg("clipboard write failed")
			return err
		}
		log.Debug().Str("tool", ToolNative).Int("len", len(text)).Msg("clipboard write success")
		return nil
	}

	var cmd *exec.Cmd
	switch base := filepath.Base(a.copyCmd); {
	case strings.Contains(base, ToolWlCopy):
		cmd = exec.CommandContext(ctx, a.copyCmd)
	case strings.Contains(base, ToolXclip):
		cmd = exec.CommandContext(ctx, a.copyCmd, "-selection", "clipboard")
	case strings.Contains(base, ToolXsel):
		cmd = exec.CommandContext(ctx, a.copyCmd, "--clipboard", "--input")
	default:
		err := fmt.Errorf("unknown clipboard tool: %s", a.copyCmd)
		log.Error().Err(err).Msg("clipboard write failed")
		return err
	}

	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		log.Error().Err(err).Str("tool", a.copyCmd).Msg("clipboard write failed")
		return err
	}

	log.Debug().Str("tool", a.copyCmd).Int("len", len(text)).Msg("clipboard write success")
	return nil
}
