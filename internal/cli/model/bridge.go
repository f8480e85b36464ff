package model

import (
	"context"
	"sync"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/scanclip/internal/application/port"
	"github.com/bnema/scanclip/internal/domain/entity"
	"github.com/bnema/scanclip/internal/infrastructure/permission"
)

// SnapshotMsg carries a controller state transition into the TUI.
type SnapshotMsg struct {
	Snapshot entity.SessionSnapshot
}

// NoticeMsg carries a user-facing notice into the TUI.
type NoticeMsg struct {
	Notice entity.Notice
}

// PromptMsg asks the user to allow or deny a permission.
// Answer must be called exactly once.
type PromptMsg struct {
	ID     uint64
	Type   entity.PermissionType
	Answer func(granted bool)
}

// PromptClosedMsg withdraws prompt ID: its requester stopped waiting.
type PromptClosedMsg struct {
	ID uint64
}

// Bridge delivers events produced outside the bubbletea loop (controller
// transitions, notices, permission prompts) to a running program.
type Bridge struct {
	mu       sync.Mutex
	program  *tea.Program
	promptID atomic.Uint64
}

var _ port.Notifier = (*Bridge)(nil)

// NewBridge creates a detached bridge. Messages are dropped until Attach.
func NewBridge() *Bridge {
	return &Bridge{}
}

// Attach sets the program that receives messages. Pass nil to detach.
func (b *Bridge) Attach(p *tea.Program) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.program = p
}

// Send forwards msg and reports whether a program was attached.
func (b *Bridge) Send(msg tea.Msg) bool {
	b.mu.Lock()
	p := b.program
	b.mu.Unlock()

	if p == nil {
		return false
	}
	p.Send(msg)
	return true
}

// Notify implements port.Notifier.
func (b *Bridge) Notify(_ context.Context, notice entity.Notice) {
	b.Send(NoticeMsg{Notice: notice})
}

// OnSnapshot is registered as a controller change listener.
func (b *Bridge) OnSnapshot(snap entity.SessionSnapshot) {
	b.Send(SnapshotMsg{Snapshot: snap})
}

// ForwardPrompts turns requester prompts into PromptMsgs until ctx ends.
// A prompt that cannot be shown is denied, and one whose requester gives up
// is withdrawn from the screen.
func (b *Bridge) ForwardPrompts(ctx context.Context, prompts <-chan *permission.Prompt) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case p, ok := <-prompts:
			if !ok {
				return nil
			}
			id := b.promptID.Add(1)
			if !b.Send(PromptMsg{ID: id, Type: p.Type, Answer: p.Answer}) {
				p.Answer(false)
				continue
			}
			go func() {
				select {
				case <-p.Done():
					b.Send(PromptClosedMsg{ID: id})
				case <-ctx.Done():
				}
			}()
		}
	}
}
