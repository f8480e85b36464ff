package cli

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/bnema/scanclip/internal/application/port"
	"github.com/bnema/scanclip/internal/cli/styles"
	"github.com/bnema/scanclip/internal/domain/entity"
)

// ConsoleNotifier prints notices as single lines, for headless runs where
// nobody can dismiss a modal.
type ConsoleNotifier struct {
	mu    sync.Mutex
	w     io.Writer
	theme *styles.Theme
}

var _ port.Notifier = (*ConsoleNotifier)(nil)

// NewConsoleNotifier creates a notifier writing to w.
func NewConsoleNotifier(w io.Writer, theme *styles.Theme) *ConsoleNotifier {
	return &ConsoleNotifier{w: w, theme: theme}
}

// Notify implements port.Notifier.
func (n *ConsoleNotifier) Notify(_ context.Context, notice entity.Notice) {
	icon, style := styles.IconInfo, n.theme.Highlight
	switch notice.Kind {
	case entity.NoticePermissionDenied, entity.NoticeCopyFailed:
		icon, style = styles.IconWarning, n.theme.ErrorStyle
	case entity.NoticeScanAccepted, entity.NoticeCopySucceeded:
		icon, style = styles.IconCheck, n.theme.SuccessStyle
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	_, _ = fmt.Fprintf(n.w, "%s %s %s\n",
		style.Render(icon),
		style.Bold(true).Render(notice.Title+":"),
		n.theme.Normal.Render(notice.Message))
}
