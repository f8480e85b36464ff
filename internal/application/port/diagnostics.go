package port

import "context"

// DiagnosticProbe checks one part of the environment scanclip depends on.
type DiagnosticProbe interface {
	// Name is the short label shown in reports, e.g. "clipboard".
	Name() string

	// Probe runs the check. detail describes what was found and is
	// reported even when err is non-nil.
	Probe(ctx context.Context) (detail string, err error)
}
