package usecase_test

import (
	"errors"
	"testing"

	portmocks "github.com/bnema/scanclip/internal/application/port/mocks"
	"github.com/bnema/scanclip/internal/application/usecase"
	"github.com/bnema/scanclip/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResultSink_StoreOverwrites(t *testing.T) {
	sink := usecase.NewResultSink(nil, nil)

	_, ok := sink.Current()
	assert.False(t, ok)

	sink.Store("one")
	sink.Store("two")

	payload, ok := sink.Current()
	assert.True(t, ok)
	assert.Equal(t, entity.ScannedPayload("two"), payload)
}

func TestResultSink_CopyStoredPayload(t *testing.T) {
	ctx := testContext()
	clipboard := portmocks.NewMockClipboard(t)
	notifier := portmocks.NewMockNotifier(t)
	sink := usecase.NewResultSink(clipboard, notifier)
	sink.Store("XYZ")

	clipboard.EXPECT().WriteText(mock.Anything, "XYZ").Return(nil).Once()
	notifier.EXPECT().Notify(mock.Anything, noticeOf(entity.NoticeCopySucceeded)).Once()

	require.NoError(t, sink.CopyToClipboard(ctx))
}

func TestResultSink_CopyEmptyNeverWrites(t *testing.T) {
	ctx := testContext()
	clipboard := portmocks.NewMockClipboard(t)
	notifier := portmocks.NewMockNotifier(t)
	sink := usecase.NewResultSink(clipboard, notifier)

	err := sink.CopyToClipboard(ctx)

	assert.ErrorIs(t, err, usecase.ErrNothingToCopy)
	clipboard.AssertNotCalled(t, "WriteText", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestResultSink_CopyFailureReportedNotRetried(t *testing.T) {
	ctx := testContext()
	clipboard := portmocks.NewMockClipboard(t)
	notifier := portmocks.NewMockNotifier(t)
	sink := usecase.NewResultSink(clipboard, notifier)
	sink.Store("XYZ")

	writeErr := errors.New("no display")
	clipboard.EXPECT().WriteText(mock.Anything, "XYZ").Return(writeErr).Once()
	notifier.EXPECT().Notify(mock.Anything, noticeOf(entity.NoticeCopyFailed)).Once()

	err := sink.CopyToClipboard(ctx)

	assert.ErrorIs(t, err, writeErr)
	payload, _ := sink.Current()
	assert.Equal(t, entity.ScannedPayload("XYZ"), payload, "failure leaves the payload in place")
}

func TestResultSink_NilClipboard(t *testing.T) {
	ctx := testContext()
	notifier := portmocks.NewMockNotifier(t)
	sink := usecase.NewResultSink(nil, notifier)
	sink.Store("XYZ")

	notifier.EXPECT().Notify(mock.Anything, noticeOf(entity.NoticeCopyFailed)).Once()

	assert.Error(t, sink.CopyToClipboard(ctx))
}
