package entity

import "sync/atomic"

// ScanLock is the single-use debounce guard of a scan session.
// A fresh lock starts armed; the first successful TryConsume flips it to
// consumed and every later call in the same session loses.
type ScanLock struct {
	consumed atomic.Bool
}

// NewScanLock returns an armed lock.
func NewScanLock() *ScanLock {
	return &ScanLock{}
}

// Armed reports whether the lock can still be consumed.
func (l *ScanLock) Armed() bool {
	return !l.consumed.Load()
}

// TryConsume atomically flips armed to consumed.
// It returns true only for the call that performed the flip.
func (l *ScanLock) TryConsume() bool {
	return l.consumed.CompareAndSwap(false, true)
}

// Reset re-arms the lock for a new session.
func (l *ScanLock) Reset() {
	l.consumed.Store(false)
}
