package usecase_test

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/scanclip/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// manualScheduler collects AfterFunc calls and runs them only when told to.
type manualScheduler struct {
	mu    sync.Mutex
	tasks []*manualTask
}

type manualTask struct {
	delay   time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) func() bool {
	task := &manualTask{delay: d, fn: f}

	s.mu.Lock()
	s.tasks = append(s.tasks, task)
	s.mu.Unlock()

	return func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		if task.fired || task.stopped {
			return false
		}
		task.stopped = true
		return true
	}
}

// FireAll runs every pending task and returns how many ran.
func (s *manualScheduler) FireAll() int {
	s.mu.Lock()
	var due []*manualTask
	for _, task := range s.tasks {
		if !task.fired && !task.stopped {
			task.fired = true
			due = append(due, task)
		}
	}
	s.mu.Unlock()

	for _, task := range due {
		task.fn()
	}
	return len(due)
}

// Pending returns the delays of tasks that have neither fired nor stopped.
func (s *manualScheduler) Pending() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	var delays []time.Duration
	for _, task := range s.tasks {
		if !task.fired && !task.stopped {
			delays = append(delays, task.delay)
		}
	}
	return delays
}
