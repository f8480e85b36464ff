package entity

import "time"

// PermissionType represents the kind of device access being requested.
type PermissionType string

const (
	// PermissionTypeCamera represents camera access permission.
	PermissionTypeCamera PermissionType = "camera"
)

// PermissionState is the outcome of a permission request.
type PermissionState string

const (
	// PermissionUnknown means no request has been decided yet.
	PermissionUnknown PermissionState = "unknown"

	// PermissionDenied means the user or the OS refused access.
	PermissionDenied PermissionState = "denied"

	// PermissionGranted means access was allowed.
	PermissionGranted PermissionState = "granted"
)

// ParsePermissionState converts a stored string back into a PermissionState.
// Anything unrecognised maps to PermissionUnknown.
func ParsePermissionState(s string) PermissionState {
	switch PermissionState(s) {
	case PermissionGranted:
		return PermissionGranted
	case PermissionDenied:
		return PermissionDenied
	default:
		return PermissionUnknown
	}
}

// PermissionRecord stores the last observed outcome for a permission type.
// It is informational only: every scan request prompts again.
type PermissionRecord struct {
	Type      PermissionType
	State     PermissionState
	UpdatedAt time.Time
}

// IsGranted returns true if the recorded outcome is granted.
func (p *PermissionRecord) IsGranted() bool {
	return p.State == PermissionGranted
}

// IsDenied returns true if the recorded outcome is denied.
func (p *PermissionRecord) IsDenied() bool {
	return p.State == PermissionDenied
}
