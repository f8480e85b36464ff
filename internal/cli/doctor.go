package cli

import (
	"github.com/bnema/scanclip/internal/application/usecase"
	"github.com/bnema/scanclip/internal/infrastructure/clipboard"
	"github.com/bnema/scanclip/internal/infrastructure/diagnostics"
)

// NewDiagnostics builds the doctor use case over the loaded config.
func (a *App) NewDiagnostics() *usecase.RunDiagnosticsUseCase {
	return usecase.NewRunDiagnosticsUseCase(
		diagnostics.ConfigProbe{Path: a.ConfigManager.GetConfigFile()},
		diagnostics.CameraProbe{Config: a.Config.Camera},
		diagnostics.ClipboardProbe{Adapter: clipboard.New(string(a.Config.Clipboard.Tool))},
		diagnostics.DatabaseProbe{DB: a.db},
	)
}
