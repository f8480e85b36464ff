// Package camera provides scan surfaces that feed decode events to the scan
// session controller.
package camera

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/scanclip/internal/application/port"
	"github.com/bnema/scanclip/internal/domain/entity"
	"github.com/bnema/scanclip/internal/logging"
)

// ErrAlreadyOpen is returned when Open is called on an open camera.
var ErrAlreadyOpen = errors.New("camera already open")

const spoolDirPerm = 0o750

// DefaultSettleDelay is how long a spool file must go without writes before
// it is read.
const DefaultSettleDelay = 250 * time.Millisecond

// SpoolCamera turns files dropped into a directory into decode events.
// An external decoder writes each result to its own file; the file extension,
// when present, names the symbology (result.qr, code.ean13).
//
// A file is read once it has been quiet for the settle delay, so decoders may
// write in place. Renaming a finished file into the directory is still the
// safe way to publish a result. Dotfiles and *.tmp, *.part, *.swp names are
// never read.
type SpoolCamera struct {
	dir    string
	settle time.Duration

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	gen     uint64
	handler port.DecodeHandler
	pending map[string]*time.Timer
}

var _ port.Camera = (*SpoolCamera)(nil)

// SpoolOption configures a SpoolCamera.
type SpoolOption func(*SpoolCamera)

// WithSettleDelay overrides DefaultSettleDelay. Zero reads on the first event.
func WithSettleDelay(d time.Duration) SpoolOption {
	return func(c *SpoolCamera) {
		c.settle = max(d, 0)
	}
}

// NewSpoolCamera creates a camera watching dir.
func NewSpoolCamera(dir string, opts ...SpoolOption) *SpoolCamera {
	c := &SpoolCamera{dir: dir, settle: DefaultSettleDelay}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dir returns the watched directory.
func (c *SpoolCamera) Dir() string {
	return c.dir
}

// Open starts watching the spool directory.
func (c *SpoolCamera) Open(ctx context.Context, handler port.DecodeHandler) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.watcher != nil {
		return ErrAlreadyOpen
	}
	if err := os.MkdirAll(c.dir, spoolDirPerm); err != nil {
		return fmt.Errorf("failed to create spool directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(c.dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", c.dir, err)
	}

	c.gen++
	c.watcher = watcher
	c.handler = handler
	c.pending = make(map[string]*time.Timer)

	log := logging.FromContext(ctx).With().Str("component", "spool-camera").Str("dir", c.dir).Logger()
	log.Debug().Msg("spool camera open")

	go c.watch(logging.WithContext(context.WithoutCancel(ctx), log), watcher, c.gen)
	return nil
}

// Close stops the watcher. Events already being handled are not waited for.
func (c *SpoolCamera) Close(ctx context.Context) error {
	c.mu.Lock()
	watcher := c.watcher
	c.watcher = nil
	c.handler = nil
	c.gen++
	for _, timer := range c.pending {
		timer.Stop()
	}
	c.pending = nil
	c.mu.Unlock()

	if watcher == nil {
		return nil
	}

	logging.FromContext(ctx).Debug().Str("dir", c.dir).Msg("spool camera closed")
	return watcher.Close()
}

func (c *SpoolCamera) watch(ctx context.Context, watcher *fsnotify.Watcher, gen uint64) {
	log := logging.FromContext(ctx)

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if ignoredName(ev.Name) {
				continue
			}
			switch {
			case ev.Has(fsnotify.Create), ev.Has(fsnotify.Write):
				c.arm(ctx, ev.Name, gen)
			case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
				c.disarm(ev.Name, gen)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Msg("spool watcher error")
		}
	}
}

// arm (re)starts the settle timer of path. Every write pushes the read back.
func (c *SpoolCamera) arm(ctx context.Context, path string, gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gen != gen || c.pending == nil {
		return
	}
	if timer, ok := c.pending[path]; ok && timer.Stop() {
		timer.Reset(c.settle)
		return
	}
	// A timer that already fired is replaced; its callback sees it no longer
	// owns the path and returns.
	var timer *time.Timer
	timer = time.AfterFunc(c.settle, func() {
		c.settled(ctx, path, gen, timer)
	})
	c.pending[path] = timer
}

// disarm forgets a file that was removed or renamed away before it settled.
func (c *SpoolCamera) disarm(path string, gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gen != gen {
		return
	}
	if timer, ok := c.pending[path]; ok {
		timer.Stop()
		delete(c.pending, path)
	}
}

func (c *SpoolCamera) settled(ctx context.Context, path string, gen uint64, timer *time.Timer) {
	c.mu.Lock()
	if c.gen != gen || c.pending[path] != timer {
		c.mu.Unlock()
		return
	}
	delete(c.pending, path)
	c.mu.Unlock()

	c.consume(ctx, path, gen)
}

// consume reads one settled spool file and hands its content to the current
// handler.
func (c *SpoolCamera) consume(ctx context.Context, path string, gen uint64) {
	log := logging.FromContext(ctx)

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Debug().Err(err).Str("file", path).Msg("skipping unreadable spool file")
		return
	}
	payload := strings.TrimSpace(string(data))
	if payload == "" {
		// Created but not written yet. The first write re-arms it.
		return
	}

	c.mu.Lock()
	handler := c.handler
	active := c.gen == gen
	c.mu.Unlock()

	if !active || handler == nil {
		return
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Str("file", path).Msg("failed to remove spool file")
	}

	handler(entity.DecodeEvent{
		Payload:    entity.ScannedPayload(payload),
		Format:     formatFromName(path),
		ReceivedAt: time.Now(),
	})
}

func formatFromName(path string) string {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	switch strings.ToLower(ext) {
	case "", "txt":
		return ""
	default:
		return strings.ToLower(ext)
	}
}

// ignoredName reports files a writer has not finished publishing.
func ignoredName(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") {
		return true
	}
	switch strings.ToLower(filepath.Ext(base)) {
	case ".tmp", ".part", ".swp":
		return true
	}
	return false
}
