package entity

import "time"

// ScanState is the state of the scan-session controller.
type ScanState int

const (
	// ScanStateIdle is the initial state: surface closed, nothing pending.
	ScanStateIdle ScanState = iota
	// ScanStateAwaitingPermission means a camera permission request is in flight.
	ScanStateAwaitingPermission
	// ScanStateScanning means the surface is open and the lock is armed.
	ScanStateScanning
	// ScanStateAccepted means a payload was accepted; the session is over.
	ScanStateAccepted
	// ScanStateCancelled means the user closed the surface before a decode.
	ScanStateCancelled
)

// String returns a human-readable state name.
func (s ScanState) String() string {
	switch s {
	case ScanStateIdle:
		return "idle"
	case ScanStateAwaitingPermission:
		return "awaiting_permission"
	case ScanStateScanning:
		return "scanning"
	case ScanStateAccepted:
		return "accepted"
	case ScanStateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// CanStartSession returns true if a new scan may be requested from this state.
func (s ScanState) CanStartSession() bool {
	switch s {
	case ScanStateIdle, ScanStateAccepted, ScanStateCancelled:
		return true
	default:
		return false
	}
}

// Visibility is whether the scan surface is active.
type Visibility int

const (
	// VisibilityClosed means the surface is hidden and the camera released.
	VisibilityClosed Visibility = iota
	// VisibilityOpen means the surface is shown and decode events are delivered.
	VisibilityOpen
)

// String returns a human-readable visibility name.
func (v Visibility) String() string {
	if v == VisibilityOpen {
		return "open"
	}
	return "closed"
}

// SessionID identifies one scan session.
type SessionID uint64

// ScannedPayload is the opaque text decoded from a code.
type ScannedPayload string

// IsEmpty returns true if there is no payload.
func (p ScannedPayload) IsEmpty() bool {
	return p == ""
}

// DecodeEvent is a notification from the camera subsystem carrying a
// successfully decoded payload.
type DecodeEvent struct {
	Payload    ScannedPayload
	Format     string // e.g. "qr", "ean13"; empty when the source does not say
	ReceivedAt time.Time
}

// SessionSnapshot is a consistent view of the controller at one instant.
type SessionSnapshot struct {
	ID         SessionID
	State      ScanState
	Visibility Visibility
	LockArmed  bool
	Payload    ScannedPayload
}
