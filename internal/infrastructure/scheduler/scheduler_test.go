package scheduler_test

import (
	"testing"
	"time"

	"github.com/bnema/scanclip/internal/infrastructure/scheduler"
	"github.com/stretchr/testify/assert"
)

func TestClock_AfterFuncRuns(t *testing.T) {
	done := make(chan struct{})
	scheduler.New().AfterFunc(time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduled function did not run")
	}
}

func TestClock_StopPreventsRun(t *testing.T) {
	ran := make(chan struct{}, 1)
	stop := scheduler.New().AfterFunc(time.Hour, func() { ran <- struct{}{} })

	assert.True(t, stop())
	assert.False(t, stop(), "second stop reports nothing to prevent")
	assert.Empty(t, ran)
}
