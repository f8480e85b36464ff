package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/scanclip/internal/domain/entity"
	"github.com/bnema/scanclip/internal/domain/repository"
	"github.com/bnema/scanclip/internal/logging"
)

const (
	getPermissionQuery = `SELECT permission_type, state, updated_at FROM permissions WHERE permission_type = ?`

	setPermissionQuery = `INSERT INTO permissions (permission_type, state, updated_at)
VALUES (?, ?, ?)
ON CONFLICT(permission_type) DO UPDATE SET state = excluded.state, updated_at = excluded.updated_at`

	deletePermissionQuery = `DELETE FROM permissions WHERE permission_type = ?`
)

type permissionRepo struct {
	db *sql.DB
}

// NewPermissionRepository creates a new SQLite-backed permission repository.
func NewPermissionRepository(db *sql.DB) repository.PermissionRepository {
	return &permissionRepo{db: db}
}

func (r *permissionRepo) Get(ctx context.Context, permType entity.PermissionType) (*entity.PermissionRecord, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("type", string(permType)).Msg("getting permission")

	var (
		rawType   string
		rawState  string
		updatedAt any
	)
	err := r.db.QueryRowContext(ctx, getPermissionQuery, string(permType)).Scan(&rawType, &rawState, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get permission %s: %w", permType, err)
	}

	record := &entity.PermissionRecord{
		Type:  entity.PermissionType(rawType),
		State: entity.ParsePermissionState(rawState),
	}
	record.UpdatedAt = parseTimestamp(updatedAt)
	return record, nil
}

func (r *permissionRepo) Set(ctx context.Context, record *entity.PermissionRecord) error {
	log := logging.FromContext(ctx)

	if record == nil {
		log.Error().Msg("cannot set nil permission record")
		return errors.New("cannot set nil permission record")
	}
	if record.State != entity.PermissionGranted && record.State != entity.PermissionDenied {
		return fmt.Errorf("cannot persist permission state %q", record.State)
	}

	updatedAt := record.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	log.Debug().
		Str("type", string(record.Type)).
		Str("state", string(record.State)).
		Msg("setting permission")

	if _, err := r.db.ExecContext(ctx, setPermissionQuery,
		string(record.Type), string(record.State), updatedAt.UTC()); err != nil {
		return fmt.Errorf("set permission %s: %w", record.Type, err)
	}
	return nil
}

func (r *permissionRepo) Delete(ctx context.Context, permType entity.PermissionType) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("type", string(permType)).Msg("deleting permission")

	if _, err := r.db.ExecContext(ctx, deletePermissionQuery, string(permType)); err != nil {
		return fmt.Errorf("delete permission %s: %w", permType, err)
	}
	return nil
}

// parseTimestamp accepts the driver's decoded time or its text forms.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05"} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	case []byte:
		return parseTimestamp(string(t))
	}
	return time.Time{}
}
