package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bnema/scanclip/internal/application/port"
	"github.com/bnema/scanclip/internal/domain/entity"
	"github.com/bnema/scanclip/internal/logging"
	"github.com/rs/zerolog"
)

// DefaultAcceptNoticeDelay is how long the accepted notice waits so the
// scan surface can finish closing. It is cosmetic: the ScanLock alone
// prevents duplicate acceptance.
const DefaultAcceptNoticeDelay = 500 * time.Millisecond

var errNoCamera = errors.New("no camera configured")

// ScanSessionController runs the scan session state machine:
// Idle -> AwaitingPermission -> Scanning -> Accepted | Cancelled -> Idle.
//
// All state lives behind mu. The permission request runs with mu released;
// its result is matched to the session by ID, so a session cancelled in the
// meantime ignores it. Cancelling also cancels the request's context.
type ScanSessionController struct {
	gate      *PermissionGate
	camera    port.Camera
	sink      *ResultSink
	notifier  port.Notifier
	scheduler port.Scheduler

	acceptNoticeDelay time.Duration

	mu         sync.Mutex
	state      entity.ScanState
	visibility entity.Visibility
	lock       *entity.ScanLock
	sessionID  entity.SessionID
	seq        uint64

	// cancelRequest ends the in-flight permission request of sessionID.
	cancelRequest context.CancelFunc
	// pendingNotices holds the stop funcs of delayed accepted notices.
	pendingNotices map[entity.SessionID]func() bool

	emitMu      sync.Mutex
	lastEmitted uint64
	listenersMu sync.RWMutex
	listeners   []func(entity.SessionSnapshot)
}

// ScanSessionOptions holds the collaborators of the controller.
type ScanSessionOptions struct {
	Gate      *PermissionGate
	Camera    port.Camera
	Sink      *ResultSink
	Notifier  port.Notifier
	Scheduler port.Scheduler

	// AcceptNoticeDelay postpones the accepted notice. Zero shows it at once.
	AcceptNoticeDelay time.Duration
}

// transition is a snapshot tagged with the order it was taken in.
type transition struct {
	seq  uint64
	snap entity.SessionSnapshot
}

// NewScanSessionController creates a controller in the Idle state.
func NewScanSessionController(opts ScanSessionOptions) *ScanSessionController {
	return &ScanSessionController{
		gate:              opts.Gate,
		camera:            opts.Camera,
		sink:              opts.Sink,
		notifier:          opts.Notifier,
		scheduler:         opts.Scheduler,
		acceptNoticeDelay: max(opts.AcceptNoticeDelay, 0),
		state:             entity.ScanStateIdle,
		visibility:        entity.VisibilityClosed,
	}
}

// OnChange registers a listener called after every state transition.
// Listeners see transitions in order; one that lost a race with a newer
// transition is skipped. Listeners must not block or call back into the
// controller.
func (c *ScanSessionController) OnChange(fn func(entity.SessionSnapshot)) {
	c.listenersMu.Lock()
	defer c.listenersMu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// SetAcceptNoticeDelay changes the delay used for later accepted notices.
// A notice already scheduled keeps its delay.
func (c *ScanSessionController) SetAcceptNoticeDelay(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.acceptNoticeDelay = max(d, 0)
}

// Snapshot returns a consistent view of the controller.
func (c *ScanSessionController) Snapshot() entity.SessionSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// RequestScan starts a new session: it asks for camera access and, once
// granted, opens the scan surface with a freshly armed lock. It blocks until
// the permission request resolves. Calling it while a session is in
// progress is a no-op.
func (c *ScanSessionController) RequestScan(ctx context.Context) entity.SessionSnapshot {
	c.mu.Lock()
	if !c.state.CanStartSession() {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		c.logger(ctx, snap.ID).Debug().Str("state", snap.State.String()).Msg("scan already in progress")
		return snap
	}

	c.sessionID++
	id := c.sessionID
	c.state = entity.ScanStateAwaitingPermission
	c.visibility = entity.VisibilityClosed
	c.lock = nil
	reqCtx, cancel := context.WithCancel(ctx)
	c.cancelRequest = cancel
	awaiting := c.transitionLocked()
	c.mu.Unlock()
	defer cancel()

	log := c.logger(ctx, id)
	log.Debug().Msg("scan requested, awaiting permission")
	c.emit(awaiting)

	permission := entity.PermissionDenied
	if c.gate != nil {
		permission = c.gate.RequestAccess(reqCtx)
	}

	c.mu.Lock()
	if c.sessionID == id {
		c.cancelRequest = nil
	}
	if c.sessionID != id || c.state != entity.ScanStateAwaitingPermission {
		snap := c.snapshotLocked()
		c.mu.Unlock()
		log.Debug().Str("permission", string(permission)).Msg("session abandoned before permission resolved, ignoring result")
		return snap
	}

	if permission != entity.PermissionGranted {
		c.state = entity.ScanStateIdle
		idle := c.transitionLocked()
		c.mu.Unlock()

		c.emit(idle)
		if ctx.Err() != nil {
			// The caller gave up; nobody denied anything.
			log.Debug().Err(ctx.Err()).Msg("scan request ended before permission resolved")
			return idle.snap
		}
		log.Info().Msg("camera permission denied")
		c.notify(ctx, entity.NewNotice(entity.NoticePermissionDenied))
		return idle.snap
	}

	// The camera is opened and released only under mu, so a session can never
	// close a camera another session opened. Early decode events wait here.
	if err := c.openCameraLocked(ctx, id); err != nil {
		c.state = entity.ScanStateIdle
		idle := c.transitionLocked()
		c.mu.Unlock()

		log.Error().Err(err).Msg("failed to open scan surface")
		c.emit(idle)
		return idle.snap
	}

	c.lock = entity.NewScanLock()
	c.visibility = entity.VisibilityOpen
	c.state = entity.ScanStateScanning
	scanning := c.transitionLocked()
	c.mu.Unlock()

	log.Info().Msg("scan surface open")
	c.emit(scanning)
	return scanning.snap
}

// HandleDecode offers a decode event to the current session.
// It returns true only for the event that was accepted.
func (c *ScanSessionController) HandleDecode(ctx context.Context, ev entity.DecodeEvent) bool {
	c.mu.Lock()
	id := c.sessionID
	c.mu.Unlock()
	return c.deliver(ctx, id, ev)
}

// Cancel closes the scan surface without a result. While a permission
// request is in flight the session is abandoned and its outcome ignored.
// In any other state Cancel does nothing.
func (c *ScanSessionController) Cancel(ctx context.Context) entity.SessionSnapshot {
	c.mu.Lock()
	id := c.sessionID

	switch c.state {
	case entity.ScanStateScanning:
		c.state = entity.ScanStateCancelled
		c.visibility = entity.VisibilityClosed
		c.lock = nil
		c.releaseCamera(ctx)
		cancelled := c.transitionLocked()
		c.state = entity.ScanStateIdle
		idle := c.transitionLocked()
		c.mu.Unlock()

		c.logger(ctx, id).Info().Msg("scan cancelled")
		c.emit(cancelled)
		c.emit(idle)
		return idle.snap

	case entity.ScanStateAwaitingPermission:
		c.state = entity.ScanStateIdle
		cancelRequest := c.cancelRequest
		c.cancelRequest = nil
		idle := c.transitionLocked()
		c.mu.Unlock()

		if cancelRequest != nil {
			cancelRequest()
		}
		c.logger(ctx, id).Info().Msg("scan cancelled while awaiting permission")
		c.emit(idle)
		return idle.snap

	default:
		snap := c.snapshotLocked()
		c.mu.Unlock()
		return snap
	}
}

// Close releases the camera if a session is open and drops every pending
// accepted notice. Used on shutdown.
func (c *ScanSessionController) Close(ctx context.Context) {
	c.Cancel(ctx)

	c.mu.Lock()
	pending := c.pendingNotices
	c.pendingNotices = nil
	c.mu.Unlock()

	for _, stop := range pending {
		stop()
	}
}

func (c *ScanSessionController) deliver(ctx context.Context, id entity.SessionID, ev entity.DecodeEvent) bool {
	log := c.logger(ctx, id)

	if ev.Payload.IsEmpty() {
		log.Debug().Msg("dropping empty decode event")
		return false
	}

	c.mu.Lock()
	if c.sessionID != id || c.state != entity.ScanStateScanning ||
		c.visibility != entity.VisibilityOpen || c.lock == nil {
		c.mu.Unlock()
		log.Debug().Msg("dropping decode event outside an open session")
		return false
	}
	if !c.lock.TryConsume() {
		c.mu.Unlock()
		log.Debug().Msg("dropping decode event, lock already consumed")
		return false
	}

	c.visibility = entity.VisibilityClosed
	c.state = entity.ScanStateAccepted
	if c.sink != nil {
		c.sink.Store(ev.Payload)
	}
	c.releaseCamera(ctx)
	accepted := c.transitionLocked()
	delayed := c.scheduleAcceptNoticeLocked(ctx, id)
	c.mu.Unlock()

	log.Info().Str("format", ev.Format).Int("len", len(ev.Payload)).Msg("decode event accepted")
	c.emit(accepted)
	if !delayed {
		c.notify(context.WithoutCancel(ctx), entity.NewNotice(entity.NoticeScanAccepted))
	}
	return true
}

func (c *ScanSessionController) openCameraLocked(ctx context.Context, id entity.SessionID) error {
	if c.camera == nil {
		return errNoCamera
	}
	return c.camera.Open(ctx, func(ev entity.DecodeEvent) {
		c.deliver(ctx, id, ev)
	})
}

// releaseCamera must be called with mu held.
func (c *ScanSessionController) releaseCamera(ctx context.Context) {
	if c.camera == nil {
		return
	}
	if err := c.camera.Close(ctx); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to release camera")
	}
}

// scheduleAcceptNoticeLocked arms the delayed accepted notice of session id
// and reports whether it did. The scheduler must not run f synchronously.
func (c *ScanSessionController) scheduleAcceptNoticeLocked(ctx context.Context, id entity.SessionID) bool {
	if c.acceptNoticeDelay == 0 || c.scheduler == nil {
		return false
	}

	noticeCtx := context.WithoutCancel(ctx)
	if c.pendingNotices == nil {
		c.pendingNotices = make(map[entity.SessionID]func() bool)
	}
	c.pendingNotices[id] = c.scheduler.AfterFunc(c.acceptNoticeDelay, func() {
		c.mu.Lock()
		_, pending := c.pendingNotices[id]
		delete(c.pendingNotices, id)
		c.mu.Unlock()

		// Close got here first.
		if !pending {
			return
		}
		c.notify(noticeCtx, entity.NewNotice(entity.NoticeScanAccepted))
	})
	return true
}

func (c *ScanSessionController) notify(ctx context.Context, notice entity.Notice) {
	if c.notifier != nil {
		c.notifier.Notify(ctx, notice)
	}
}

func (c *ScanSessionController) emit(t transition) {
	c.emitMu.Lock()
	defer c.emitMu.Unlock()

	if t.seq <= c.lastEmitted {
		return
	}
	c.lastEmitted = t.seq

	c.listenersMu.RLock()
	listeners := make([]func(entity.SessionSnapshot), len(c.listeners))
	copy(listeners, c.listeners)
	c.listenersMu.RUnlock()

	for _, fn := range listeners {
		fn(t.snap)
	}
}

func (c *ScanSessionController) transitionLocked() transition {
	c.seq++
	return transition{seq: c.seq, snap: c.snapshotLocked()}
}

func (c *ScanSessionController) snapshotLocked() entity.SessionSnapshot {
	snap := entity.SessionSnapshot{
		ID:         c.sessionID,
		State:      c.state,
		Visibility: c.visibility,
		LockArmed:  c.lock != nil && c.lock.Armed(),
	}
	if c.sink != nil {
		snap.Payload, _ = c.sink.Current()
	}
	return snap
}

func (c *ScanSessionController) logger(ctx context.Context, id entity.SessionID) *zerolog.Logger {
	log := logging.FromContext(ctx).With().
		Str("component", "scan").
		Uint64("session_id", uint64(id)).
		Logger()
	return &log
}
