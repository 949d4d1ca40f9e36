package capture

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dahuapp/dahu/pkg/core"
)

// Config holds the collaborators a session needs.
type Config struct {
	Controller *core.Controller
	Screen     ScreenProvider
	Pointer    PointerProvider
	Triggers   TriggerSource
	Keymap     Keymap // zero value means DefaultKeymap
	Logger     *slog.Logger
}

// Session is the capture-mode state machine. It starts disarmed;
// Enter arms it and Exit (or the exit trigger) disarms it again. The
// cycle may repeat any number of times.
//
// The armed flag is atomic rather than guarded by mu: the controller
// probes it while holding its own mutex, and Enter calls back into the
// controller while holding mu, so a locked probe would invert the lock
// order.
type Session struct {
	mu         sync.Mutex
	armed      atomic.Bool
	cancel     func()
	ctx        context.Context
	controller *core.Controller
	screen     ScreenProvider
	pointer    PointerProvider
	triggers   TriggerSource
	keymap     Keymap
	logger     *slog.Logger
}

// NewSession creates a disarmed session. It registers itself with the
// controller so saving is rejected while armed.
func NewSession(cfg Config) *Session {
	keymap := cfg.Keymap
	if keymap.empty() {
		keymap = DefaultKeymap()
	}

	s := &Session{
		controller: cfg.Controller,
		screen:     cfg.Screen,
		pointer:    cfg.Pointer,
		triggers:   cfg.Triggers,
		keymap:     keymap,
		logger:     cfg.Logger,
	}
	cfg.Controller.BindCaptureState(s)
	return s
}

// Armed reports whether capture mode is active. Lock-free, so it is
// safe to call from bus handlers and from the controller.
func (s *Session) Armed() bool {
	return s.armed.Load()
}

// Enter arms the session and subscribes to the trigger source.
// Calling Enter while already armed is a no-op; re-entry never
// double-subscribes. Arming without an active project fails with
// ErrNoActiveProject and leaves the session disarmed.
func (s *Session) Enter(ctx context.Context) error {
	s.mu.Lock()
	if s.armed.Load() {
		s.mu.Unlock()
		return nil
	}
	if !s.controller.HasProject() {
		s.mu.Unlock()
		return core.ErrNoActiveProject
	}

	cancel, err := s.triggers.Subscribe(s.handleKey)
	if err != nil {
		s.mu.Unlock()
		return fmt.Errorf("subscribe to triggers: %w", err)
	}

	s.armed.Store(true)
	s.cancel = cancel
	s.ctx = ctx
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.Info("capture mode armed")
	}
	s.announce(core.EventCaptureArmed)
	return nil
}

// Exit disarms the session and unsubscribes from the trigger source.
// A no-op when already disarmed.
func (s *Session) Exit() {
	s.mu.Lock()
	if !s.armed.Load() {
		s.mu.Unlock()
		return
	}

	cancel := s.cancel
	s.cancel = nil
	s.ctx = nil
	s.armed.Store(false)
	s.mu.Unlock()

	// Outside the lock: the source may block cancellation on an
	// in-flight handler, and the exit trigger arrives through one.
	cancel()
	if s.logger != nil {
		s.logger.Info("capture mode disarmed")
	}
	s.announce(core.EventCaptureDisarmed)
}

func (s *Session) announce(t core.EventType) {
	dir, _ := s.controller.ProjectDir()
	s.controller.Bus().Publish(core.Event{
		Type:      t,
		Path:      dir,
		Index:     -1,
		Timestamp: time.Now().Unix(),
	})
}

// Capture records one slide: it asks the screen collaborator for a new
// image, reads the cursor position, and appends the result to the
// active project. A failing capture collaborator surfaces as
// ErrCaptureFailed and the session stays armed. Capturing while
// disarmed fails with ErrNotArmed without touching the project.
func (s *Session) Capture() (core.Slide, error) {
	s.mu.Lock()
	if !s.armed.Load() {
		s.mu.Unlock()
		return core.Slide{}, core.ErrNotArmed
	}
	ctx := s.ctx
	s.mu.Unlock()

	dir, ok := s.controller.ProjectDir()
	if !ok {
		return core.Slide{}, core.ErrNoActiveProject
	}

	imagePath, err := s.screen.TakeScreen(ctx, dir)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("screen capture failed", "dir", dir, "error", err)
		}
		s.controller.Bus().Publish(core.Event{
			Type:      core.EventCaptureFailed,
			Path:      dir,
			Index:     -1,
			Timestamp: time.Now().Unix(),
		})
		return core.Slide{}, fmt.Errorf("%w: %v", core.ErrCaptureFailed, err)
	}

	x, y := s.pointer.CursorPosition()
	return s.controller.AppendSlide(imagePath, x, y)
}

// handleKey is invoked by the trigger source for each key event.
func (s *Session) handleKey(key Key) {
	action, ok := s.keymap.Resolve(key)
	if !ok {
		return
	}

	switch action {
	case ActionCapture:
		if _, err := s.Capture(); err != nil && s.logger != nil {
			s.logger.Warn("capture trigger failed", "key", string(key), "error", err)
		}
	case ActionExit:
		s.Exit()
	}
}

var _ core.CaptureState = (*Session)(nil)
