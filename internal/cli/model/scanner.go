package model

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/scanclip/internal/cli/styles"
	"github.com/bnema/scanclip/internal/domain/entity"
)

// ScanController is the part of the scan session controller the TUI drives.
type ScanController interface {
	RequestScan(ctx context.Context) entity.SessionSnapshot
	Cancel(ctx context.Context) entity.SessionSnapshot
	Snapshot() entity.SessionSnapshot
}

// PayloadCopier copies the last accepted payload.
type PayloadCopier interface {
	CopyToClipboard(ctx context.Context) error
}

// ScannerModel is the interactive scanner screen.
//
// Controller calls run inside tea.Cmds because RequestScan blocks until the
// permission prompt is answered, which itself needs the event loop. The
// screen state comes only from SnapshotMsgs.
type ScannerModel struct {
	ctx        context.Context
	controller ScanController
	copier     PayloadCopier
	source     string

	snapshot entity.SessionSnapshot
	notices  []entity.Notice

	prompt       *styles.ConfirmModel
	promptAnswer func(bool)
	promptID     uint64

	theme    *styles.Theme
	renderer *styles.ScannerRenderer
	keys     styles.ScannerKeyMap
	help     help.Model
	spinner  spinner.Model
	showHelp bool
	width    int
	quitting bool
}

// ScannerModelConfig holds the dependencies of the scanner screen.
type ScannerModelConfig struct {
	Controller ScanController
	Copier     PayloadCopier
	// Source names the camera backend shown on the scan surface.
	Source string
}

// NewScannerModel creates the scanner screen.
func NewScannerModel(ctx context.Context, theme *styles.Theme, cfg ScannerModelConfig) ScannerModel {
	return ScannerModel{
		ctx:        ctx,
		controller: cfg.Controller,
		copier:     cfg.Copier,
		source:     cfg.Source,
		theme:      theme,
		renderer:   styles.NewScannerRenderer(theme),
		keys:       styles.DefaultScannerKeyMap(),
		help:       styles.NewHelp(theme),
		spinner:    styles.NewDefaultSpinner(theme),
	}
}

// Init implements tea.Model.
func (m ScannerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadSnapshot)
}

func (m ScannerModel) loadSnapshot() tea.Msg {
	return SnapshotMsg{Snapshot: m.controller.Snapshot()}
}

// Update implements tea.Model.
func (m ScannerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case SnapshotMsg:
		m.snapshot = msg.Snapshot
		return m, nil

	case NoticeMsg:
		m.notices = append(m.notices, msg.Notice)
		return m, nil

	case PromptMsg:
		// Only one session awaits permission at a time, so a prompt still on
		// screen belongs to an abandoned session.
		m.answerPrompt(false)
		confirm := styles.NewConfirm(m.theme, "Allow camera access?")
		confirm.Detail = fmt.Sprintf("scanclip wants to use the %s to scan a code", msg.Type)
		m.prompt = &confirm
		m.promptAnswer = msg.Answer
		m.promptID = msg.ID
		return m, nil

	case PromptClosedMsg:
		if m.prompt != nil && m.promptID == msg.ID {
			m.prompt = nil
			m.promptAnswer = nil
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m ScannerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	if m.prompt != nil {
		confirm, _ := m.prompt.Update(msg)
		m.prompt = &confirm
		if confirm.Done() {
			m.answerPrompt(confirm.Result())
		}
		return m, nil
	}

	if len(m.notices) > 0 {
		if key.Matches(msg, m.keys.Dismiss) {
			m.notices = m.notices[1:]
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp

	case key.Matches(msg, m.keys.Scan):
		if m.snapshot.State.CanStartSession() {
			return m, m.requestScan()
		}

	case key.Matches(msg, m.keys.Cancel):
		switch m.snapshot.State {
		case entity.ScanStateScanning, entity.ScanStateAwaitingPermission:
			return m, m.cancel()
		}

	case key.Matches(msg, m.keys.Copy):
		if !m.snapshot.Payload.IsEmpty() {
			return m, m.copyPayload()
		}
	}

	return m, nil
}

func (m ScannerModel) quit() (tea.Model, tea.Cmd) {
	m.answerPrompt(false)
	m.quitting = true
	return m, tea.Quit
}

// answerPrompt resolves the visible prompt, if any.
func (m *ScannerModel) answerPrompt(granted bool) {
	if m.promptAnswer != nil {
		m.promptAnswer(granted)
	}
	m.prompt = nil
	m.promptAnswer = nil
}

func (m ScannerModel) requestScan() tea.Cmd {
	ctx, controller := m.ctx, m.controller
	return func() tea.Msg {
		controller.RequestScan(ctx)
		return nil
	}
}

func (m ScannerModel) cancel() tea.Cmd {
	ctx, controller := m.ctx, m.controller
	return func() tea.Msg {
		controller.Cancel(ctx)
		return nil
	}
}

// copyPayload reports its outcome through the sink's notices.
func (m ScannerModel) copyPayload() tea.Cmd {
	ctx, copier := m.ctx, m.copier
	if copier == nil {
		return nil
	}
	return func() tea.Msg {
		_ = copier.CopyToClipboard(ctx)
		return nil
	}
}

// View implements tea.Model.
func (m ScannerModel) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch {
	case m.prompt != nil:
		body = m.prompt.View()
	case len(m.notices) > 0:
		body = m.renderer.Notice(m.notices[0], len(m.notices)-1)
	case m.snapshot.Visibility == entity.VisibilityOpen:
		body = m.renderer.Surface(m.spinner.View(), m.source)
	case m.snapshot.State == entity.ScanStateAwaitingPermission:
		body = m.renderer.AwaitingPermission(m.spinner.View())
	default:
		body = m.renderer.Result(m.snapshot.Payload)
	}

	m.help.ShowAll = m.showHelp
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderer.Header(m.snapshot.State),
		"",
		body,
		"",
		m.help.View(m.keys),
	) + "\n"
}

// Snapshot returns the last state the screen rendered from.
func (m ScannerModel) Snapshot() entity.SessionSnapshot {
	return m.snapshot
}

// PendingNotices returns how many notices wait for dismissal.
func (m ScannerModel) PendingNotices() int {
	return len(m.notices)
}

// Prompting reports whether a permission prompt is on screen.
func (m ScannerModel) Prompting() bool {
	return m.prompt != nil
}
