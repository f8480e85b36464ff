package port

import (
	"context"

	"github.com/bnema/scanclip/internal/domain/entity"
)

// Notifier presents user-facing notices. Each notice is an independent
// acknowledgement the user dismisses explicitly; presenters queue them.
type Notifier interface {
	Notify(ctx context.Context, notice entity.Notice)
}
