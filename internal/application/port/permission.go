package port

import (
	"context"

	"github.com/bnema/scanclip/internal/domain/entity"
)

// PermissionRequester asks the platform (or the user) for device access.
// Implementations may block until the user answers; they must honour ctx.
type PermissionRequester interface {
	// RequestAccess prompts for permType and reports whether it was granted.
	// An error means the request itself failed, not that it was denied.
	RequestAccess(ctx context.Context, permType entity.PermissionType) (bool, error)
}
