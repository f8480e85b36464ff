package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/scanclip/internal/domain/entity"
)

// PermissionRenderer renders the stored camera permission outcome.
type PermissionRenderer struct {
	theme *Theme
}

// NewPermissionRenderer creates a permission renderer with the given theme.
func NewPermissionRenderer(theme *Theme) *PermissionRenderer {
	return &PermissionRenderer{theme: theme}
}

// RenderStatus renders one status line for the camera permission.
func (r *PermissionRenderer) RenderStatus(state entity.PermissionState, mode string) string {
	var value string
	switch state {
	case entity.PermissionGranted:
		value = r.theme.SuccessStyle.Render(IconCheck + " granted")
	case entity.PermissionDenied:
		value = r.theme.ErrorStyle.Render(IconX + " denied")
	default:
		value = r.theme.Subtle.Render("unknown")
	}

	line := fmt.Sprintf("%s %s %s",
		lipgloss.NewStyle().Foreground(r.theme.Accent).Render(IconCamera),
		r.theme.Title.Render("camera"),
		value)
	if mode != "" {
		line += "  " + r.theme.Subtle.Render("(mode: "+mode+")")
	}
	return line + "\n" + r.theme.Subtle.Render("Last outcome only; every scan asks again.")
}

// RenderReset renders the confirmation printed after forgetting the outcome.
func (r *PermissionRenderer) RenderReset() string {
	return r.theme.SuccessStyle.Render(IconCheck) + " " + r.theme.Normal.Render("Stored camera permission cleared")
}
