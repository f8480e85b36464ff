package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/scanclip/internal/application/port"
	"github.com/bnema/scanclip/internal/domain/entity"
	"github.com/bnema/scanclip/internal/domain/repository"
)

// LazyPermissionRepository opens the database on the first permission lookup.
type LazyPermissionRepository struct {
	provider port.DatabaseProvider
	repo     repository.PermissionRepository
	once     sync.Once
	initErr  error
}

// NewLazyPermissionRepository creates a lazy-loading permission repository.
func NewLazyPermissionRepository(provider port.DatabaseProvider) repository.PermissionRepository {
	return &LazyPermissionRepository{provider: provider}
}

func (r *LazyPermissionRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewPermissionRepository(db)
	})
	return r.initErr
}

func (r *LazyPermissionRepository) Get(ctx context.Context, permType entity.PermissionType) (*entity.PermissionRecord, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Get(ctx, permType)
}

func (r *LazyPermissionRepository) Set(ctx context.Context, record *entity.PermissionRecord) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Set(ctx, record)
}

func (r *LazyPermissionRepository) Delete(ctx context.Context, permType entity.PermissionType) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Delete(ctx, permType)
}
