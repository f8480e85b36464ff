package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/bnema/scanclip/internal/application/port/mocks"
	"github.com/bnema/scanclip/internal/application/usecase"
)

func TestRunDiagnostics_AllOK(t *testing.T) {
	ctx := testContext()
	probe := portmocks.NewMockDiagnosticProbe(t)
	probe.EXPECT().Name().Return("clipboard")
	probe.EXPECT().Probe(mock.Anything).Return("wl-copy", nil)

	out, err := usecase.NewRunDiagnosticsUseCase(probe).Execute(ctx)
	require.NoError(t, err)

	assert.True(t, out.OK)
	require.Len(t, out.Results, 1)
	assert.Equal(t, usecase.DiagnosticResult{Name: "clipboard", Detail: "wl-copy", OK: true}, out.Results[0])
}

func TestRunDiagnostics_FailureKeepsGoing(t *testing.T) {
	ctx := testContext()

	failing := portmocks.NewMockDiagnosticProbe(t)
	failing.EXPECT().Name().Return("database")
	failing.EXPECT().Probe(mock.Anything).Return("/tmp/x.sqlite", errors.New("locked"))

	passing := portmocks.NewMockDiagnosticProbe(t)
	passing.EXPECT().Name().Return("camera")
	passing.EXPECT().Probe(mock.Anything).Return("stdin", nil)

	out, err := usecase.NewRunDiagnosticsUseCase(failing, passing).Execute(ctx)
	require.NoError(t, err)

	assert.False(t, out.OK)
	require.Len(t, out.Results, 2)
	assert.Equal(t, "locked", out.Results[0].Error)
	assert.Equal(t, "/tmp/x.sqlite", out.Results[0].Detail)
	assert.True(t, out.Results[1].OK)
}

func TestRunDiagnostics_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(testContext())
	cancel()

	probe := portmocks.NewMockDiagnosticProbe(t)
	_, err := usecase.NewRunDiagnosticsUseCase(probe).Execute(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
