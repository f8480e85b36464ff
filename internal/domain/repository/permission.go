package repository

import (
	"context"

	"github.com/bnema/scanclip/internal/domain/entity"
)

// PermissionRepository defines operations for permission outcome persistence.
// Records are informational: the scan flow always prompts.
type PermissionRepository interface {
	// Get retrieves the last recorded outcome for a permission type.
	// Returns nil if no record exists (treat as "unknown").
	Get(ctx context.Context, permType entity.PermissionType) (*entity.PermissionRecord, error)

	// Set saves or updates a permission record.
	Set(ctx context.Context, record *entity.PermissionRecord) error

	// Delete removes the record for a permission type.
	Delete(ctx context.Context, permType entity.PermissionType) error
}
