// Package scheduler provides the wall-clock implementation of port.Scheduler.
package scheduler

import (
	"time"

	"github.com/bnema/scanclip/internal/application/port"
)

// Clock schedules work with time.AfterFunc.
type Clock struct{}

var _ port.Scheduler = Clock{}

// New returns a wall-clock scheduler.
func New() Clock {
	return Clock{}
}

// AfterFunc implements port.Scheduler.
func (Clock) AfterFunc(d time.Duration, f func()) func() bool {
	return time.AfterFunc(d, f).Stop
}
