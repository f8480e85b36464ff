package port

import (
	"context"

	"github.com/bnema/scanclip/internal/domain/entity"
)

// DecodeHandler receives decode events while the scan surface is open.
type DecodeHandler func(ev entity.DecodeEvent)

// Camera is the scan surface: it owns the camera hardware while open and
// delivers decode events to the handler given to Open.
type Camera interface {
	// Open acquires the camera and starts delivering events to handler.
	Open(ctx context.Context, handler DecodeHandler) error

	// Close releases the camera. After Close returns no new events are
	// delivered. Close must not wait for a handler call that is in progress,
	// since the handler itself may trigger Close. Closing a closed camera is a no-op.
	Close(ctx context.Context) error
}
