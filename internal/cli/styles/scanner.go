package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/scanclip/internal/domain/entity"
)

// previewLimit caps how much of a payload the result card shows.
const previewLimit = 240

// ScannerRenderer draws the pieces of the scanner screen.
type ScannerRenderer struct {
	theme *Theme
}

// NewScannerRenderer creates a scanner renderer with the given theme.
func NewScannerRenderer(theme *Theme) *ScannerRenderer {
	return &ScannerRenderer{theme: theme}
}

// Header renders the title bar with the current state badge.
func (r *ScannerRenderer) Header(state entity.ScanState) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	title := fmt.Sprintf("%s %s", iconStyle.Render(IconQRCode), r.theme.Title.Render("scanclip"))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", r.StateBadge(state))
}

// StateBadge renders a short label for state.
func (r *ScannerRenderer) StateBadge(state entity.ScanState) string {
	switch state {
	case entity.ScanStateScanning, entity.ScanStateAccepted:
		return r.theme.Badge.Render(stateLabel(state))
	default:
		return r.theme.BadgeMuted.Render(stateLabel(state))
	}
}

func stateLabel(state entity.ScanState) string {
	switch state {
	case entity.ScanStateIdle:
		return "idle"
	case entity.ScanStateAwaitingPermission:
		return "waiting for camera"
	case entity.ScanStateScanning:
		return "scanning"
	case entity.ScanStateAccepted:
		return "captured"
	case entity.ScanStateCancelled:
		return "cancelled"
	default:
		return state.String()
	}
}

// Surface renders the open scan surface. spinner is the current spinner frame.
func (r *ScannerRenderer) Surface(spinner, source string) string {
	lines := []string{
		fmt.Sprintf("%s %s", lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconCamera),
			r.theme.Title.Render("Point the camera at a code")),
		"",
		spinner + " " + r.theme.Subtle.Render("waiting for a decode"),
	}
	if source != "" {
		lines = append(lines, "", r.theme.Subtle.Render("source: "+source))
	}
	lines = append(lines, "", r.theme.Subtle.Render("esc to cancel"))
	return r.theme.Modal.Render(strings.Join(lines, "\n"))
}

// AwaitingPermission renders the line shown while access is being requested.
func (r *ScannerRenderer) AwaitingPermission(spinner string) string {
	return fmt.Sprintf("%s %s %s", spinner,
		lipgloss.NewStyle().Foreground(r.theme.Warning).Render(IconLock),
		r.theme.Normal.Render("Requesting camera access..."))
}

// Result renders the last accepted payload, or a hint when there is none.
func (r *ScannerRenderer) Result(payload entity.ScannedPayload) string {
	if payload.IsEmpty() {
		return r.theme.Subtle.Render("Nothing scanned yet. Press s to scan.")
	}

	header := r.theme.BoxHeader.Render(fmt.Sprintf("%s Last result", IconQRCode))
	body := r.theme.Normal.Render(Preview(string(payload), previewLimit))
	meta := r.theme.Subtle.Render(fmt.Sprintf("%d bytes • c to copy", len(payload)))
	return r.theme.Box.Render(lipgloss.JoinVertical(lipgloss.Left, header, body, "", meta))
}

// Notice renders a notice as a modal. pending is how many more are queued.
func (r *ScannerRenderer) Notice(n entity.Notice, pending int) string {
	icon, style := IconInfo, r.theme.Highlight
	switch n.Kind {
	case entity.NoticePermissionDenied, entity.NoticeCopyFailed:
		icon, style = IconWarning, r.theme.ErrorStyle
	case entity.NoticeCopySucceeded, entity.NoticeScanAccepted:
		icon, style = IconCheck, r.theme.SuccessStyle
	}

	lines := []string{
		style.Bold(true).Render(fmt.Sprintf("%s %s", icon, n.Title)),
		"",
		r.theme.Normal.Render(n.Message),
		"",
		r.theme.ActiveButton.Render("OK"),
	}
	if pending > 0 {
		lines = append(lines, "", r.theme.Subtle.Render(fmt.Sprintf("+%d more", pending)))
	}
	return r.theme.Modal.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// Preview flattens newlines and truncates s to limit runes.
func Preview(s string, limit int) string {
	s = strings.ReplaceAll(s, "\r\n", "⏎")
	s = strings.ReplaceAll(s, "\n", "⏎")
	runes := []rune(s)
	if limit > 0 && len(runes) > limit {
		return string(runes[:limit-1]) + "…"
	}
	return s
}
