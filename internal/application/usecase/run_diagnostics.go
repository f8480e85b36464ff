package usecase

import (
	"context"

	"github.com/bnema/scanclip/internal/application/port"
	"github.com/bnema/scanclip/internal/logging"
)

// DiagnosticResult is the outcome of one probe.
type DiagnosticResult struct {
	Name   string
	Detail string
	OK     bool
	Error  string
}

// RunDiagnosticsOutput contains every probe result in the order given.
type RunDiagnosticsOutput struct {
	OK      bool
	Results []DiagnosticResult
}

// RunDiagnosticsUseCase runs environment probes for the doctor command.
type RunDiagnosticsUseCase struct {
	probes []port.DiagnosticProbe
}

// NewRunDiagnosticsUseCase creates a new use case.
func NewRunDiagnosticsUseCase(probes ...port.DiagnosticProbe) *RunDiagnosticsUseCase {
	return &RunDiagnosticsUseCase{probes: probes}
}

// Execute runs every probe. A failing probe never stops the others.
func (uc *RunDiagnosticsUseCase) Execute(ctx context.Context) (*RunDiagnosticsOutput, error) {
	log := logging.FromContext(ctx).With().Str("component", "doctor").Logger()

	out := &RunDiagnosticsOutput{
		OK:      true,
		Results: make([]DiagnosticResult, 0, len(uc.probes)),
	}

	for _, probe := range uc.probes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		detail, err := probe.Probe(ctx)
		result := DiagnosticResult{Name: probe.Name(), Detail: detail, OK: err == nil}
		if err != nil {
			result.Error = err.Error()
			out.OK = false
			log.Debug().Err(err).Str("probe", result.Name).Msg("probe failed")
		}
		out.Results = append(out.Results, result)
	}

	return out, nil
}
