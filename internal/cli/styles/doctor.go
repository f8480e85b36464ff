package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/scanclip/internal/application/usecase"
)

// DoctorRenderer renders diagnostics results.
type DoctorRenderer struct {
	theme *Theme
}

// NewDoctorRenderer creates a doctor renderer with the given theme.
func NewDoctorRenderer(theme *Theme) *DoctorRenderer {
	return &DoctorRenderer{theme: theme}
}

// Render renders the header badge and one line per probe.
func (r *DoctorRenderer) Render(out *usecase.RunDiagnosticsOutput) string {
	lines := make([]string, 0, len(out.Results))
	width := 0
	for _, res := range out.Results {
		width = max(width, len(res.Name))
	}
	for _, res := range out.Results {
		lines = append(lines, r.renderResult(res, width))
	}

	body := r.theme.Box.Render(strings.Join(lines, "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, r.renderHeader(out.OK), "", body)
}

func (r *DoctorRenderer) renderHeader(ok bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	statusStyle := r.theme.SuccessStyle
	statusText := "OK"
	if !ok {
		statusStyle = r.theme.WarningStyle
		statusText = "Needs attention"
	}

	title := fmt.Sprintf("%s %s", iconStyle.Render(IconDoctor), r.theme.Title.Render("Doctor"))
	badge := r.theme.BadgeMuted.Render(statusStyle.Render(statusText))
	return lipgloss.JoinHorizontal(lipgloss.Center, title, " ", badge)
}

func (r *DoctorRenderer) renderResult(res usecase.DiagnosticResult, width int) string {
	icon, style := IconCheck, r.theme.SuccessStyle
	if !res.OK {
		icon, style = IconWarning, r.theme.WarningStyle
	}

	line := fmt.Sprintf("%s %s  %s",
		style.Render(icon),
		r.theme.Normal.Bold(true).Render(fmt.Sprintf("%-*s", width, res.Name)),
		r.theme.Subtle.Render(res.Detail))
	if res.Error != "" {
		line += "\n" + strings.Repeat(" ", width+4) + style.Render(res.Error)
	}
	return line
}
