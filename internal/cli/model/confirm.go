package model

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/scanclip/internal/cli/styles"
	"github.com/bnema/scanclip/internal/infrastructure/permission"
	"github.com/bnema/scanclip/internal/logging"
)

// ErrPromptAborted is returned when the confirm program ends without an answer.
var ErrPromptAborted = errors.New("prompt aborted")

// confirmProgram runs a ConfirmModel as a standalone program.
type confirmProgram struct {
	confirm styles.ConfirmModel
}

func (m confirmProgram) Init() tea.Cmd {
	return nil
}

func (m confirmProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "ctrl+c" {
		m.confirm.Canceled = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.confirm, cmd = m.confirm.Update(msg)
	if m.confirm.Done() {
		return m, tea.Quit
	}
	return m, cmd
}

func (m confirmProgram) View() string {
	if m.confirm.Done() {
		return ""
	}
	return m.confirm.View() + "\n"
}

// RunConfirm shows a yes/no dialog and returns the answer. Cancelling counts
// as no.
func RunConfirm(ctx context.Context, theme *styles.Theme, message, detail string, opts ...tea.ProgramOption) (bool, error) {
	confirm := styles.NewConfirm(theme, message)
	confirm.Detail = detail

	opts = append(opts, tea.WithContext(ctx))
	final, err := tea.NewProgram(confirmProgram{confirm: confirm}, opts...).Run()
	if err != nil {
		if ctx.Err() != nil {
			return false, ctx.Err()
		}
		return false, fmt.Errorf("run confirm: %w", err)
	}

	result, ok := final.(confirmProgram)
	if !ok || !result.confirm.Done() {
		return false, ErrPromptAborted
	}
	return result.confirm.Result(), nil
}

// AskFunc answers one permission prompt.
type AskFunc func(ctx context.Context, p *permission.Prompt) (bool, error)

// AnswerPrompts answers requester prompts with ask until ctx ends.
// A failing ask denies the prompt.
func AnswerPrompts(ctx context.Context, prompts <-chan *permission.Prompt, ask AskFunc) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case p, ok := <-prompts:
			if !ok {
				return nil
			}
			// The question is dropped when its requester stops waiting.
			askCtx, cancel := context.WithCancel(ctx)
			go func() {
				select {
				case <-p.Done():
					cancel()
				case <-askCtx.Done():
				}
			}()
			granted, err := ask(askCtx, p)
			cancel()
			if err != nil {
				logging.FromContext(ctx).Warn().Err(err).Msg("permission prompt failed, denying")
				granted = false
			}
			p.Answer(granted)
		}
	}
}
