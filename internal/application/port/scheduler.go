package port

import "time"

// Scheduler runs a function once after a delay.
// Tests substitute a manual implementation so no real time passes.
type Scheduler interface {
	// AfterFunc schedules f after d and returns a stop function that
	// reports whether the call was prevented. f runs on its own goroutine,
	// never inside AfterFunc.
	AfterFunc(d time.Duration, f func()) (stop func() bool)
}
