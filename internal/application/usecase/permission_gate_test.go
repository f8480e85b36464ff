package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	portmocks "github.com/bnema/scanclip/internal/application/port/mocks"
	"github.com/bnema/scanclip/internal/application/usecase"
	"github.com/bnema/scanclip/internal/domain/entity"
	repomocks "github.com/bnema/scanclip/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPermissionGate_GrantedIsRecorded(t *testing.T) {
	ctx := testContext()
	requester := portmocks.NewMockPermissionRequester(t)
	permRepo := repomocks.NewMockPermissionRepository(t)
	gate := usecase.NewPermissionGate(requester, permRepo)

	requester.EXPECT().RequestAccess(mock.Anything, entity.PermissionTypeCamera).Return(true, nil).Once()
	permRepo.EXPECT().Set(mock.Anything, mock.AnythingOfType("*entity.PermissionRecord")).
		Run(func(_ context.Context, r *entity.PermissionRecord) {
			assert.Equal(t, entity.PermissionTypeCamera, r.Type)
			assert.Equal(t, entity.PermissionGranted, r.State)
			assert.False(t, r.UpdatedAt.IsZero())
		}).Return(nil).Once()

	assert.Equal(t, entity.PermissionGranted, gate.RequestAccess(ctx))
}

func TestPermissionGate_Denied(t *testing.T) {
	ctx := testContext()
	requester := portmocks.NewMockPermissionRequester(t)
	gate := usecase.NewPermissionGate(requester, nil)

	requester.EXPECT().RequestAccess(mock.Anything, entity.PermissionTypeCamera).Return(false, nil).Once()

	assert.Equal(t, entity.PermissionDenied, gate.RequestAccess(ctx))
}

func TestPermissionGate_RequestErrorFailsClosedWithoutRetry(t *testing.T) {
	ctx := testContext()
	requester := portmocks.NewMockPermissionRequester(t)
	permRepo := repomocks.NewMockPermissionRepository(t)
	gate := usecase.NewPermissionGate(requester, permRepo)

	requester.EXPECT().RequestAccess(mock.Anything, entity.PermissionTypeCamera).
		Return(true, errors.New("dialog crashed")).Once()
	permRepo.EXPECT().Set(mock.Anything, mock.MatchedBy(func(r *entity.PermissionRecord) bool {
		return r.State == entity.PermissionDenied
	})).Return(nil).Once()

	assert.Equal(t, entity.PermissionDenied, gate.RequestAccess(ctx))
	requester.AssertNumberOfCalls(t, "RequestAccess", 1)
}

func TestPermissionGate_AbandonedRequestNotRecorded(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"canceled", context.Canceled},
		{"deadline", context.DeadlineExceeded},
		{"wrapped", fmt.Errorf("prompt: %w", context.Canceled)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requester := portmocks.NewMockPermissionRequester(t)
			permRepo := repomocks.NewMockPermissionRepository(t)
			gate := usecase.NewPermissionGate(requester, permRepo)

			requester.EXPECT().RequestAccess(mock.Anything, entity.PermissionTypeCamera).
				Return(false, tt.err).Once()

			assert.Equal(t, entity.PermissionDenied, gate.RequestAccess(testContext()))
			permRepo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
		})
	}
}

func TestPermissionGate_PersistFailureIgnored(t *testing.T) {
	ctx := testContext()
	requester := portmocks.NewMockPermissionRequester(t)
	permRepo := repomocks.NewMockPermissionRepository(t)
	gate := usecase.NewPermissionGate(requester, permRepo)

	requester.EXPECT().RequestAccess(mock.Anything, entity.PermissionTypeCamera).Return(true, nil)
	permRepo.EXPECT().Set(mock.Anything, mock.Anything).Return(errors.New("disk full"))

	assert.Equal(t, entity.PermissionGranted, gate.RequestAccess(ctx))
}

func TestPermissionGate_NilRequesterDenies(t *testing.T) {
	gate := usecase.NewPermissionGate(nil, nil)
	assert.Equal(t, entity.PermissionDenied, gate.RequestAccess(testContext()))
}

func TestPermissionGate_Status(t *testing.T) {
	ctx := testContext()

	t.Run("no repository", func(t *testing.T) {
		gate := usecase.NewPermissionGate(nil, nil)
		assert.Equal(t, entity.PermissionUnknown, gate.Status(ctx))
	})

	t.Run("no record", func(t *testing.T) {
		permRepo := repomocks.NewMockPermissionRepository(t)
		permRepo.EXPECT().Get(mock.Anything, entity.PermissionTypeCamera).Return(nil, nil)
		gate := usecase.NewPermissionGate(nil, permRepo)
		assert.Equal(t, entity.PermissionUnknown, gate.Status(ctx))
	})

	t.Run("stored record", func(t *testing.T) {
		permRepo := repomocks.NewMockPermissionRepository(t)
		permRepo.EXPECT().Get(mock.Anything, entity.PermissionTypeCamera).Return(&entity.PermissionRecord{
			Type:      entity.PermissionTypeCamera,
			State:     entity.PermissionDenied,
			UpdatedAt: time.Now(),
		}, nil)
		gate := usecase.NewPermissionGate(nil, permRepo)
		assert.Equal(t, entity.PermissionDenied, gate.Status(ctx))
	})

	t.Run("repository error", func(t *testing.T) {
		permRepo := repomocks.NewMockPermissionRepository(t)
		permRepo.EXPECT().Get(mock.Anything, entity.PermissionTypeCamera).Return(nil, errors.New("locked"))
		gate := usecase.NewPermissionGate(nil, permRepo)
		assert.Equal(t, entity.PermissionUnknown, gate.Status(ctx))
	})
}

func TestPermissionGate_Forget(t *testing.T) {
	ctx := testContext()
	permRepo := repomocks.NewMockPermissionRepository(t)
	permRepo.EXPECT().Delete(mock.Anything, entity.PermissionTypeCamera).Return(nil).Once()

	gate := usecase.NewPermissionGate(nil, permRepo)
	require.NoError(t, gate.Forget(ctx))
	require.NoError(t, usecase.NewPermissionGate(nil, nil).Forget(ctx))
}
