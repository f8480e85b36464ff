package camera

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/bnema/scanclip/internal/application/port"
	"github.com/bnema/scanclip/internal/domain/entity"
	"github.com/bnema/scanclip/internal/logging"
)

// ReaderCamera reads one payload per line, typically from stdin where a
// keyboard-wedge scanner or a decoder pipeline writes its results.
// Lines read while the camera is closed are discarded.
type ReaderCamera struct {
	r io.Reader

	startOnce sync.Once
	done      chan struct{}
	err       error

	mu      sync.Mutex
	handler port.DecodeHandler
}

var _ port.Camera = (*ReaderCamera)(nil)

// NewReaderCamera creates a camera reading lines from r.
func NewReaderCamera(r io.Reader) *ReaderCamera {
	return &ReaderCamera{r: r, done: make(chan struct{})}
}

// Open starts delivering lines to handler. The reader goroutine starts on
// the first Open and runs until the input ends.
func (c *ReaderCamera) Open(ctx context.Context, handler port.DecodeHandler) error {
	c.mu.Lock()
	if c.handler != nil {
		c.mu.Unlock()
		return ErrAlreadyOpen
	}
	c.handler = handler
	c.mu.Unlock()

	c.startOnce.Do(func() {
		go c.read(context.WithoutCancel(ctx))
	})

	logging.FromContext(ctx).Debug().Msg("reader camera open")
	return nil
}

// Close stops delivery. The input keeps being drained.
func (c *ReaderCamera) Close(ctx context.Context) error {
	c.mu.Lock()
	wasOpen := c.handler != nil
	c.handler = nil
	c.mu.Unlock()

	if wasOpen {
		logging.FromContext(ctx).Debug().Msg("reader camera closed")
	}
	return nil
}

// Done is closed when the input is exhausted.
func (c *ReaderCamera) Done() <-chan struct{} {
	return c.done
}

// Err returns the read error once Done is closed, nil on a clean EOF.
func (c *ReaderCamera) Err() error {
	select {
	case <-c.done:
		return c.err
	default:
		return nil
	}
}

func (c *ReaderCamera) read(ctx context.Context) {
	defer close(c.done)
	log := logging.FromContext(ctx)

	scanner := bufio.NewScanner(c.r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		c.mu.Lock()
		handler := c.handler
		c.mu.Unlock()

		if handler == nil {
			log.Debug().Msg("discarding input while camera closed")
			continue
		}
		handler(entity.DecodeEvent{
			Payload:    entity.ScannedPayload(line),
			ReceivedAt: time.Now(),
		})
	}

	c.err = scanner.Err()
	if c.err != nil {
		log.Warn().Err(c.err).Msg("reader camera input failed")
	} else {
		log.Debug().Msg("reader camera input exhausted")
	}
}
