package capture_test

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dahuapp/dahu/pkg/capture"
	"github.com/dahuapp/dahu/pkg/core"
)

// memStore is a minimal in-memory core.Store.
type memStore struct {
	docs map[string]core.Document
}

func newMemStore() *memStore {
	return &memStore{docs: make(map[string]core.Document)}
}

func (m *memStore) EnsureProjectDir(ctx context.Context, dir string) error { return nil }

func (m *memStore) LoadDocument(ctx context.Context, dir string) (core.Document, error) {
	doc, ok := m.docs[dir]
	if !ok {
		return core.Document{}, core.ErrProjectNotFound
	}
	return doc, nil
}

func (m *memStore) SaveDocument(ctx context.Context, dir string, doc core.Document) error {
	m.docs[dir] = doc
	return nil
}

// fakeScreen hands out sequential image names, or fails on demand.
type fakeScreen struct {
	n    int
	fail bool
}

func (f *fakeScreen) TakeScreen(ctx context.Context, targetDir string) (string, error) {
	if f.fail {
		return "", errors.New("capture hardware unavailable")
	}
	f.n++
	return fmt.Sprintf("s%d.png", f.n), nil
}

// fakePointer reports a fixed position.
type fakePointer struct{ x, y int }

func (f *fakePointer) CursorPosition() (int, int) { return f.x, f.y }

// fakeTriggers is a hand-rolled trigger source that records
// subscription churn.
type fakeTriggers struct {
	handler    func(capture.Key)
	subscribes int
	cancels    int
}

func (f *fakeTriggers) Subscribe(handler func(capture.Key)) (func(), error) {
	f.handler = handler
	f.subscribes++
	return func() {
		f.cancels++
		f.handler = nil
	}, nil
}

func (f *fakeTriggers) press(k capture.Key) {
	if f.handler != nil {
		f.handler(k)
	}
}

func newTestSession(t *testing.T) (*capture.Session, *core.Controller, *fakeScreen, *fakeTriggers) {
	t.Helper()

	controller := core.NewController(newMemStore(), nil, nil)
	screen := &fakeScreen{}
	triggers := &fakeTriggers{}
	session := capture.NewSession(capture.Config{
		Controller: controller,
		Screen:     screen,
		Pointer:    &fakePointer{x: 10, y: 20},
		Triggers:   triggers,
	})
	return session, controller, screen, triggers
}

func TestEnter_RequiresProject(t *testing.T) {
	session, _, _, triggers := newTestSession(t)

	err := session.Enter(context.Background())
	assert.ErrorIs(t, err, core.ErrNoActiveProject)
	assert.False(t, session.Armed())
	assert.Zero(t, triggers.subscribes, "failed arm must not subscribe")
}

func TestEnter_Idempotent(t *testing.T) {
	session, controller, _, triggers := newTestSession(t)
	require.NoError(t, controller.Create(context.Background(), "/tmp/p"))

	require.NoError(t, session.Enter(context.Background()))
	require.NoError(t, session.Enter(context.Background()))

	assert.True(t, session.Armed())
	assert.Equal(t, 1, triggers.subscribes, "re-entry must not double-subscribe")
}

func TestExit_BeforeEnterIsNoop(t *testing.T) {
	session, _, _, triggers := newTestSession(t)

	session.Exit()
	assert.False(t, session.Armed())
	assert.Zero(t, triggers.cancels)
}

func TestExit_Unsubscribes(t *testing.T) {
	session, controller, _, triggers := newTestSession(t)
	require.NoError(t, controller.Create(context.Background(), "/tmp/p"))
	require.NoError(t, session.Enter(context.Background()))

	session.Exit()
	assert.False(t, session.Armed())
	assert.Equal(t, 1, triggers.cancels)

	session.Exit()
	assert.Equal(t, 1, triggers.cancels, "second exit must be a no-op")
}

func TestCaptureTrigger_AppendsSlides(t *testing.T) {
	session, controller, _, triggers := newTestSession(t)
	require.NoError(t, controller.Create(context.Background(), "/tmp/p"))
	require.NoError(t, session.Enter(context.Background()))

	triggers.press("c")
	triggers.press("c")

	assert.Equal(t, []string{"s1.png", "s2.png"}, slices.Collect(controller.SlidePaths()),
		"consecutive captures append in call order")
	assert.True(t, controller.IsDirty())

	slide := controller.Slides()[0]
	assert.Equal(t, 10, slide.X)
	assert.Equal(t, 20, slide.Y)
}

func TestCaptureTrigger_WhileDisarmed(t *testing.T) {
	session, controller, _, triggers := newTestSession(t)
	require.NoError(t, controller.Create(context.Background(), "/tmp/p"))
	require.NoError(t, session.Enter(context.Background()))
	session.Exit()

	triggers.press("c")

	assert.Equal(t, 0, controller.SlideCount(), "trigger while disarmed produces no slide")
	assert.False(t, controller.IsDirty())

	_, err := session.Capture()
	assert.ErrorIs(t, err, core.ErrNotArmed)
}

func TestSaveAndToggleConcurrently(t *testing.T) {
	session, controller, _, _ := newTestSession(t)
	require.NoError(t, controller.Create(context.Background(), "/tmp/p"))

	// Save probes the armed flag while holding the controller mutex and
	// Enter calls back into the controller while holding the session
	// mutex; the two must never block each other.
	done := make(chan struct{})
	go func() {
		defer close(done)
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			for i := 0; i < 5000; i++ {
				_ = controller.Save(context.Background())
			}
		}()
		go func() {
			defer wg.Done()
			for i := 0; i < 5000; i++ {
				_ = session.Enter(context.Background())
				session.Exit()
			}
		}()
		wg.Wait()
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("concurrent save and enter/exit blocked each other")
	}
}

func TestCaptureFailure_StaysArmed(t *testing.T) {
	session, controller, screen, _ := newTestSession(t)
	require.NoError(t, controller.Create(context.Background(), "/tmp/p"))
	require.NoError(t, session.Enter(context.Background()))

	var failures int
	controller.Bus().Subscribe(func(e core.Event) {
		if e.Type == core.EventCaptureFailed {
			failures++
		}
	})

	screen.fail = true
	_, err := session.Capture()
	assert.ErrorIs(t, err, core.ErrCaptureFailed)
	assert.True(t, session.Armed(), "a failed capture must not auto-exit")
	assert.Equal(t, 0, controller.SlideCount())
	assert.False(t, controller.IsDirty())
	assert.Equal(t, 1, failures)

	// The session keeps working once the collaborator recovers.
	screen.fail = false
	_, err = session.Capture()
	assert.NoError(t, err)
	assert.Equal(t, 1, controller.SlideCount())
}

func TestExitTrigger_Disarms(t *testing.T) {
	session, controller, _, triggers := newTestSession(t)
	require.NoError(t, controller.Create(context.Background(), "/tmp/p"))
	require.NoError(t, session.Enter(context.Background()))

	triggers.press("x") // unbound key, ignored
	assert.True(t, session.Armed())

	triggers.press("esc")
	assert.False(t, session.Armed())
	assert.Equal(t, 1, triggers.cancels)
}

func TestSaveWhileArmed_Rejected(t *testing.T) {
	session, controller, _, triggers := newTestSession(t)
	require.NoError(t, controller.Create(context.Background(), "/tmp/p"))
	require.NoError(t, session.Enter(context.Background()))

	triggers.press("c")
	err := controller.Save(context.Background())
	assert.ErrorIs(t, err, core.ErrSaveWhileCapturing)

	session.Exit()
	assert.NoError(t, controller.Save(context.Background()))
}

func TestCustomKeymap(t *testing.T) {
	controller := core.NewController(newMemStore(), nil, nil)
	triggers := &fakeTriggers{}
	session := capture.NewSession(capture.Config{
		Controller: controller,
		Screen:     &fakeScreen{},
		Pointer:    &fakePointer{},
		Triggers:   triggers,
		Keymap: capture.Keymap{
			Capture: []capture.Key{"f7"},
			Exit:    []capture.Key{"f8"},
		},
	})
	require.NoError(t, controller.Create(context.Background(), "/tmp/p"))
	require.NoError(t, session.Enter(context.Background()))

	triggers.press("c") // default binding, not active here
	assert.Equal(t, 0, controller.SlideCount())

	triggers.press("f7")
	assert.Equal(t, 1, controller.SlideCount())

	triggers.press("f8")
	assert.False(t, session.Armed())
}
