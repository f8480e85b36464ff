package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bnema/scanclip/internal/application/port"
	"github.com/bnema/scanclip/internal/application/usecase"
	"github.com/bnema/scanclip/internal/infrastructure/camera"
	"github.com/bnema/scanclip/internal/infrastructure/clipboard"
	"github.com/bnema/scanclip/internal/infrastructure/config"
	"github.com/bnema/scanclip/internal/infrastructure/permission"
	"github.com/bnema/scanclip/internal/infrastructure/scheduler"
)

// ScanSessionOptions selects the front-end collaborators of a scan session.
type ScanSessionOptions struct {
	// Notifier presents notices. Required.
	Notifier port.Notifier
	// Stdin feeds the stdin camera source. Defaults to os.Stdin.
	Stdin io.Reader
	// ImmediateNotices disables the accepted notice delay.
	ImmediateNotices bool
}

// ScanSession bundles one controller with the adapters it drives.
type ScanSession struct {
	Controller *usecase.ScanSessionController
	Sink       *usecase.ResultSink
	Camera     port.Camera
	Clipboard  *clipboard.Adapter
	// Prompts is set in prompt mode; a front end must answer its prompts.
	Prompts *permission.PromptRequester
	// Source describes the camera for display.
	Source string
}

// NewScanSession builds the controller and adapters from the loaded config.
func (a *App) NewScanSession(opts ScanSessionOptions) (*ScanSession, error) {
	if opts.Notifier == nil {
		return nil, fmt.Errorf("scan session needs a notifier")
	}

	cam, source, err := newCamera(a.Config.Camera, opts.Stdin)
	if err != nil {
		return nil, err
	}

	requester, prompts, err := newRequester(a.Config.Permission.Mode)
	if err != nil {
		return nil, err
	}

	clip := clipboard.New(string(a.Config.Clipboard.Tool))
	sink := usecase.NewResultSink(clip, opts.Notifier)

	delay := time.Duration(a.Config.Scan.AcceptNoticeDelayMs) * time.Millisecond
	if opts.ImmediateNotices {
		delay = 0
	}

	controller := usecase.NewScanSessionController(usecase.ScanSessionOptions{
		Gate:              usecase.NewPermissionGate(requester, a.permRepo),
		Camera:            cam,
		Sink:              sink,
		Notifier:          opts.Notifier,
		Scheduler:         scheduler.New(),
		AcceptNoticeDelay: delay,
	})

	return &ScanSession{
		Controller: controller,
		Sink:       sink,
		Camera:     cam,
		Clipboard:  clip,
		Prompts:    prompts,
		Source:     source,
	}, nil
}

func newCamera(cfg config.CameraConfig, stdin io.Reader) (port.Camera, string, error) {
	switch cfg.Source {
	case config.CameraSourceStdin:
		if stdin == nil {
			stdin = os.Stdin
		}
		return camera.NewReaderCamera(stdin), "stdin", nil
	case config.CameraSourceSpool, "":
		return camera.NewSpoolCamera(cfg.SpoolDir), cfg.SpoolDir, nil
	default:
		return nil, "", fmt.Errorf("unknown camera source %q", cfg.Source)
	}
}

func newRequester(mode config.PermissionMode) (port.PermissionRequester, *permission.PromptRequester, error) {
	if mode == config.PermissionModePrompt || mode == "" {
		prompts := permission.NewPromptRequester()
		return prompts, prompts, nil
	}

	policy, err := permission.NewPolicyRequester(string(mode))
	if err != nil {
		return nil, nil, err
	}
	return policy, nil, nil
}
