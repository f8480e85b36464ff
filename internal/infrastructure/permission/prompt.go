package permission

import (
	"context"
	"sync"

	"github.com/bnema/scanclip/internal/application/port"
	"github.com/bnema/scanclip/internal/domain/entity"
	"github.com/bnema/scanclip/internal/logging"
)

// Prompt is a pending permission question shown to the user.
type Prompt struct {
	Type entity.PermissionType

	once  sync.Once
	reply chan bool
	done  chan struct{}
}

// Done is closed once the requester stops waiting, answered or not. A front
// end still showing the prompt should withdraw it.
func (p *Prompt) Done() <-chan struct{} {
	return p.done
}

// Answer resolves the prompt. Only the first answer counts.
func (p *Prompt) Answer(granted bool) {
	p.once.Do(func() {
		p.reply <- granted
	})
}

// PromptRequester forwards permission requests to an interactive front end
// and waits for its answer.
type PromptRequester struct {
	prompts chan *Prompt
}

var _ port.PermissionRequester = (*PromptRequester)(nil)

// NewPromptRequester creates a requester with an unbuffered prompt channel.
func NewPromptRequester() *PromptRequester {
	return &PromptRequester{prompts: make(chan *Prompt)}
}

// Prompts delivers questions to the front end.
func (r *PromptRequester) Prompts() <-chan *Prompt {
	return r.prompts
}

// RequestAccess publishes a prompt and blocks until it is answered or ctx
// ends, in which case ctx's error is returned.
func (r *PromptRequester) RequestAccess(ctx context.Context, permType entity.PermissionType) (bool, error) {
	log := logging.FromContext(ctx).With().Str("type", string(permType)).Logger()

	prompt := &Prompt{Type: permType, reply: make(chan bool, 1), done: make(chan struct{})}
	defer close(prompt.done)

	select {
	case r.prompts <- prompt:
		log.Debug().Msg("permission prompt shown")
	case <-ctx.Done():
		return false, ctx.Err()
	}

	select {
	case granted := <-prompt.reply:
		log.Debug().Bool("granted", granted).Msg("permission prompt answered")
		return granted, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}
