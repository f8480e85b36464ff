package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/bnema/scanclip/internal/application/port"
	"github.com/bnema/scanclip/internal/domain/entity"
	"github.com/bnema/scanclip/internal/domain/repository"
	"github.com/bnema/scanclip/internal/logging"
)

// PermissionGate acquires camera access for a scan session.
// Every call prompts; a failing platform request is treated as denied.
type PermissionGate struct {
	requester port.PermissionRequester
	permRepo  repository.PermissionRepository
	now       func() time.Time
}

// NewPermissionGate creates a gate. permRepo may be nil, in which case
// outcomes are not recorded and Status always reports unknown.
func NewPermissionGate(requester port.PermissionRequester, permRepo repository.PermissionRepository) *PermissionGate {
	return &PermissionGate{
		requester: requester,
		permRepo:  permRepo,
		now:       time.Now,
	}
}

// RequestAccess asks for camera access and returns the outcome.
// It never returns an error: failures are logged and reported as denied.
func (g *PermissionGate) RequestAccess(ctx context.Context) entity.PermissionState {
	log := logging.FromContext(ctx).With().
		Str("component", "permission").
		Str("type", string(entity.PermissionTypeCamera)).
		Logger()

	if g.requester == nil {
		log.Warn().Msg("no permission requester available, denying")
		return entity.PermissionDenied
	}

	granted, err := g.requester.RequestAccess(ctx, entity.PermissionTypeCamera)
	if err != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
		// Nobody answered, so there is no outcome to keep.
		log.Debug().Err(err).Msg("permission request abandoned")
		return entity.PermissionDenied
	}
	if err != nil {
		log.Error().Err(err).Msg("permission request failed, treating as denied")
		g.record(ctx, entity.PermissionDenied)
		return entity.PermissionDenied
	}

	state := entity.PermissionDenied
	if granted {
		state = entity.PermissionGranted
	}
	log.Debug().Str("state", string(state)).Msg("permission request resolved")

	g.record(ctx, state)
	return state
}

// Status returns the last recorded outcome without prompting.
func (g *PermissionGate) Status(ctx context.Context) entity.PermissionState {
	if g.permRepo == nil {
		return entity.PermissionUnknown
	}

	record, err := g.permRepo.Get(ctx, entity.PermissionTypeCamera)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to read stored permission, returning unknown")
		return entity.PermissionUnknown
	}
	if record == nil {
		return entity.PermissionUnknown
	}
	return record.State
}

// Forget drops the recorded outcome.
func (g *PermissionGate) Forget(ctx context.Context) error {
	if g.permRepo == nil {
		return nil
	}
	return g.permRepo.Delete(ctx, entity.PermissionTypeCamera)
}

func (g *PermissionGate) record(ctx context.Context, state entity.PermissionState) {
	if g.permRepo == nil {
		return
	}

	record := &entity.PermissionRecord{
		Type:      entity.PermissionTypeCamera,
		State:     state,
		UpdatedAt: g.now(),
	}
	if err := g.permRepo.Set(ctx, record); err != nil {
		logging.FromContext(ctx).Warn().
			Err(err).
			Str("state", string(state)).
			Msg("failed to persist permission outcome")
	}
}
