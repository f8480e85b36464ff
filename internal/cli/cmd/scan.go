package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/scanclip/internal/cli"
	"github.com/bnema/scanclip/internal/cli/model"
	"github.com/bnema/scanclip/internal/cli/styles"
	"github.com/bnema/scanclip/internal/domain/entity"
	"github.com/bnema/scanclip/internal/infrastructure/camera"
	"github.com/bnema/scanclip/internal/infrastructure/permission"
)

var (
	errScanNotStarted = errors.New("scan did not start: camera permission denied or camera unavailable")
	errInputEnded     = errors.New("input ended before a code was scanned")
)

var (
	scanOnce    bool
	scanCopy    bool
	scanTimeout time.Duration
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Open the scanner",
	Long: `Open the interactive scanner.

Press s to start a scan. Camera access is requested for every scan; once
granted, the scan surface stays open until a code is decoded or you press
esc. The first decoded payload is kept and shown; press c to copy it.

With --once, scanclip runs a single session without a TUI, prints the
payload to stdout and exits. Notices go to stderr.

Examples:
  scanclip scan                         # Interactive scanner
  scanclip scan --once                  # Print one payload
  scanclip scan --once --copy           # Print and copy one payload
  zbarcam --raw | scanclip scan --once  # Read payloads from a decoder (camera.source = "stdin")`,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().BoolVar(&scanOnce, "once", false, "run one headless session and print the payload")
	scanCmd.Flags().BoolVar(&scanCopy, "copy", false, "copy the payload to the clipboard (with --once)")
	scanCmd.Flags().DurationVar(&scanTimeout, "timeout", 0, "give up after this long (with --once, 0 waits forever)")
}

func runScan(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	if !scanOnce && (scanCopy || scanTimeout > 0) {
		return fmt.Errorf("--copy and --timeout require --once")
	}

	if scanOnce {
		return runScanOnce(app)
	}
	return runScanInteractive(app)
}

// runScanInteractive runs the scanner TUI until the user quits.
func runScanInteractive(app *cli.App) error {
	bridge := model.NewBridge()

	session, err := app.NewScanSession(cli.ScanSessionOptions{Notifier: bridge})
	if err != nil {
		return err
	}
	session.Controller.OnChange(bridge.OnSnapshot)
	app.WatchConfig(session)

	ctx, cancel := context.WithCancel(app.Ctx())
	defer cancel()

	m := model.NewScannerModel(ctx, app.Theme, model.ScannerModelConfig{
		Controller: session.Controller,
		Copier:     session.Sink,
		Source:     session.Source,
	})

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if _, ok := session.Camera.(*camera.ReaderCamera); ok {
		// stdin carries payloads; keys come from the terminal.
		opts = append(opts, tea.WithInputTTY())
	}
	p := tea.NewProgram(m, opts...)
	bridge.Attach(p)

	g, gctx := errgroup.WithContext(ctx)
	if session.Prompts != nil {
		g.Go(func() error {
			return bridge.ForwardPrompts(gctx, session.Prompts.Prompts())
		})
	}
	g.Go(func() error {
		defer cancel()
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("run scanner: %w", err)
		}
		return nil
	})

	err = g.Wait()
	bridge.Attach(nil)
	session.Controller.Close(app.Ctx())
	return err
}

// runScanOnce runs a single headless session and prints the payload.
func runScanOnce(app *cli.App) error {
	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if scanTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, scanTimeout)
		defer cancel()
	}

	session, err := app.NewScanSession(cli.ScanSessionOptions{
		Notifier:         cli.NewConsoleNotifier(os.Stderr, app.Theme),
		ImmediateNotices: true,
	})
	if err != nil {
		return err
	}
	defer session.Controller.Close(app.Ctx())

	payload, err := scanOne(ctx, session, askOnTTY(app.Theme))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("no code scanned within %s", scanTimeout)
		}
		return err
	}

	fmt.Println(string(payload))

	if scanCopy {
		if err := session.Sink.CopyToClipboard(app.Ctx()); err != nil {
			return fmt.Errorf("copy payload: %w", err)
		}
	}
	return nil
}

// scanOne requests a scan and waits for the accepted payload. Prompts, if
// any, are answered with ask.
func scanOne(ctx context.Context, session *cli.ScanSession, ask model.AskFunc) (entity.ScannedPayload, error) {
	accepted := make(chan entity.ScannedPayload, 1)
	session.Controller.OnChange(func(s entity.SessionSnapshot) {
		if s.State == entity.ScanStateAccepted {
			select {
			case accepted <- s.Payload:
			default:
			}
		}
	})

	var inputDone <-chan struct{}
	if rc, ok := session.Camera.(*camera.ReaderCamera); ok {
		inputDone = rc.Done()
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(runCtx)

	if session.Prompts != nil {
		g.Go(func() error {
			return model.AnswerPrompts(gctx, session.Prompts.Prompts(), ask)
		})
	}

	var payload entity.ScannedPayload
	g.Go(func() error {
		defer cancel()

		if snap := session.Controller.RequestScan(gctx); snap.State != entity.ScanStateScanning {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return errScanNotStarted
		}

		select {
		case payload = <-accepted:
			return nil
		case <-inputDone:
			// A final line may have been accepted just before EOF.
			select {
			case payload = <-accepted:
				return nil
			default:
				return errInputEnded
			}
		case <-gctx.Done():
			return ctx.Err()
		}
	})

	if err := g.Wait(); err != nil {
		return "", err
	}
	return payload, nil
}

// askOnTTY answers permission prompts with a dialog on the terminal, so
// stdin stays free for payloads.
func askOnTTY(theme *styles.Theme) model.AskFunc {
	return func(ctx context.Context, p *permission.Prompt) (bool, error) {
		return model.RunConfirm(ctx, theme,
			"Allow camera access?",
			fmt.Sprintf("scanclip wants to use the %s to scan a code", p.Type),
			tea.WithInputTTY(),
			tea.WithOutput(os.Stderr),
		)
	}
}
