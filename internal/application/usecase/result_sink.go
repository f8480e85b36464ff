package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/scanclip/internal/application/port"
	"github.com/bnema/scanclip/internal/domain/entity"
	"github.com/bnema/scanclip/internal/logging"
)

// ErrNothingToCopy is returned by CopyToClipboard when no payload is held.
var ErrNothingToCopy = errors.New("nothing to copy")

// ResultSink holds the last accepted payload and copies it on demand.
type ResultSink struct {
	clipboard port.Clipboard
	notifier  port.Notifier

	mu      sync.RWMutex
	payload entity.ScannedPayload
}

// NewResultSink creates an empty sink.
func NewResultSink(clipboard port.Clipboard, notifier port.Notifier) *ResultSink {
	return &ResultSink{
		clipboard: clipboard,
		notifier:  notifier,
	}
}

// Store overwrites the held payload.
func (s *ResultSink) Store(payload entity.ScannedPayload) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payload = payload
}

// Current returns the held payload and whether there is one.
func (s *ResultSink) Current() (entity.ScannedPayload, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.payload, !s.payload.IsEmpty()
}

// CopyToClipboard writes the held payload to the clipboard.
// Returns ErrNothingToCopy without calling the clipboard when empty.
// The caller gets the write error back; it is not retried.
func (s *ResultSink) CopyToClipboard(ctx context.Context) error {
	log := logging.FromContext(ctx).With().Str("component", "result").Logger()

	payload, ok := s.Current()
	if !ok {
		log.Debug().Msg("copy requested with no payload")
		return ErrNothingToCopy
	}

	if s.clipboard == nil {
		log.Warn().Msg("clipboard is nil")
		s.notify(ctx, entity.NoticeCopyFailed)
		return fmt.Errorf("clipboard not available")
	}

	if err := s.clipboard.WriteText(ctx, string(payload)); err != nil {
		log.Error().Err(err).Msg("clipboard write failed")
		s.notify(ctx, entity.NoticeCopyFailed)
		return fmt.Errorf("clipboard write failed: %w", err)
	}

	log.Debug().Int("len", len(payload)).Msg("payload copied to clipboard")
	s.notify(ctx, entity.NoticeCopySucceeded)
	return nil
}

func (s *ResultSink) notify(ctx context.Context, kind entity.NoticeKind) {
	if s.notifier != nil {
		s.notifier.Notify(ctx, entity.NewNotice(kind))
	}
}
