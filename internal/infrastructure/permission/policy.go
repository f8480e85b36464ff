// Package permission provides camera permission requesters: a fixed policy
// for unattended use and an interactive prompt answered by the TUI.
package permission

import (
	"context"
	"fmt"

	"github.com/bnema/scanclip/internal/application/port"
	"github.com/bnema/scanclip/internal/domain/entity"
	"github.com/bnema/scanclip/internal/logging"
)

// Permission modes accepted by configuration.
const (
	ModePrompt = "prompt"
	ModeGrant  = "grant"
	ModeDeny   = "deny"
)

// PolicyRequester answers every request with a fixed decision.
type PolicyRequester struct {
	grant bool
}

var _ port.PermissionRequester = (*PolicyRequester)(nil)

// NewPolicyRequester creates a requester for ModeGrant or ModeDeny.
func NewPolicyRequester(mode string) (*PolicyRequester, error) {
	switch mode {
	case ModeGrant:
		return &PolicyRequester{grant: true}, nil
	case ModeDeny:
		return &PolicyRequester{grant: false}, nil
	default:
		return nil, fmt.Errorf("unsupported permission policy %q", mode)
	}
}

// RequestAccess implements port.PermissionRequester.
func (p *PolicyRequester) RequestAccess(ctx context.Context, permType entity.PermissionType) (bool, error) {
	logging.FromContext(ctx).Debug().
		Str("type", string(permType)).
		Bool("granted", p.grant).
		Msg("permission answered by policy")
	return p.grant, nil
}
