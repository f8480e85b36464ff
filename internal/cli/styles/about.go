package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/scanclip/internal/domain/build"
)

// AboutRenderer renders build info next to a small logo.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Render renders build info with an ASCII logo and styled info lines.
func (r *AboutRenderer) Render(info build.Info) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, r.renderLogo(), "   ", r.renderInfoLines(info))
}

// RenderShort renders a one-line version string.
func (r *AboutRenderer) RenderShort(info build.Info) string {
	return fmt.Sprintf("%s %s (%s)",
		r.theme.Title.Render("scanclip"),
		r.theme.Highlight.Render(info.Version),
		r.theme.Subtle.Render(info.Commit),
	)
}

func (r *AboutRenderer) renderLogo() string {
	logoStyle := lipgloss.NewStyle().Foreground(r.theme.Accent).Bold(true)

	// Finder frame corners
	logo := `█▀▀▀   ▀▀▀█
█  ▄▄ ▄  █
   ▀▄█▀▄
█  ▀ ▄▀  █
█▄▄▄   ▄▄▄█`

	return logoStyle.MarginTop(1).MarginLeft(2).Render(logo)
}

func (r *AboutRenderer) renderInfoLines(info build.Info) string {
	keyStyle := r.theme.Subtle
	valStyle := r.theme.Highlight
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	row := func(icon, label, value string) string {
		return fmt.Sprintf("%s %s %s", iconStyle.Render(icon), keyStyle.Render(label), valStyle.Render(value))
	}

	lines := []string{
		r.theme.Title.Render("scanclip"),
		"",
		row(IconVersion, "Version", info.Version),
		row(IconGitBranch, "Commit", info.Commit),
		row(IconCalendar, "Built", info.BuildDate),
		row(IconGo, "Go", info.GoVersion),
		"",
		fmt.Sprintf("%s %s", iconStyle.Render(IconGithub), keyStyle.Render(build.RepoURL())),
		keyStyle.Render("by ") + valStyle.Render(strings.Join(build.Contributors(), ", ")),
	}

	return strings.Join(lines, "\n")
}
