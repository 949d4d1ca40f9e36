package core

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"sync"
	"time"

	"github.com/dahuapp/dahu/pkg/bus"
)

// CaptureState lets the controller ask whether capture mode is armed
// without depending on the capture package.
type CaptureState interface {
	Armed() bool
}

// Controller owns the active project and orchestrates create, open and
// save against the persistence store. It is the only component allowed
// to replace or mutate the active project.
//
// All mutation is serialized through one mutex, so a save in progress
// is never interleaved with a concurrent slide addition. Events are
// published after the mutex is released; handlers may safely call back
// into the controller.
type Controller struct {
	mu       sync.Mutex
	store    Store
	bus      *bus.Bus[Event]
	logger   *slog.Logger
	capture  CaptureState
	project  *Project
	selected int
}

// NewController creates a controller with no active project.
// The bus may be nil, in which case one is created; the logger may be nil.
func NewController(store Store, b *bus.Bus[Event], logger *slog.Logger) *Controller {
	if b == nil {
		b = bus.New[Event](logger)
	}
	return &Controller{
		store:    store,
		bus:      b,
		logger:   logger,
		selected: -1,
	}
}

// Bus exposes the event bus so presentation collaborators can subscribe.
func (c *Controller) Bus() *bus.Bus[Event] { return c.bus }

// BindCaptureState wires the capture session's armed probe. Save is
// rejected while the probe reports armed.
func (c *Controller) BindCaptureState(cs CaptureState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.capture = cs
}

// Create replaces the active project with a fresh one rooted at dir,
// creating the directory if absent. The new project holds an empty
// slide model and no unsaved changes.
func (c *Controller) Create(ctx context.Context, dir string) error {
	c.mu.Lock()
	if err := c.store.EnsureProjectDir(ctx, dir); err != nil {
		c.mu.Unlock()
		return fmt.Errorf("create project %s: %w", dir, err)
	}

	c.project = newProject(dir, NewSlideModel(), StatusCreated)
	c.selected = -1
	c.mu.Unlock()

	if c.logger != nil {
		c.logger.Info("project created", "dir", dir)
	}
	c.publish(Event{Type: EventProjectCreated, Path: dir, Index: -1})
	return nil
}

// Open loads the project document under dir and replaces the active
// project with the result. On any read or parse failure the previously
// active project is left unchanged.
func (c *Controller) Open(ctx context.Context, dir string) error {
	c.mu.Lock()
	doc, err := c.store.LoadDocument(ctx, dir)
	if err != nil {
		c.mu.Unlock()
		return fmt.Errorf("open project %s: %w", dir, err)
	}

	model := NewSlideModel()
	if err := model.FromDocument(doc); err != nil {
		c.mu.Unlock()
		return fmt.Errorf("open project %s: %w", dir, err)
	}

	c.project = newProject(dir, model, StatusOpened)
	c.selected = -1
	count := model.Len()
	c.mu.Unlock()

	if c.logger != nil {
		c.logger.Info("project opened", "dir", dir, "slides", count)
	}
	c.publish(Event{Type: EventProjectOpened, Path: dir, Index: -1})
	return nil
}

// Save serializes the active project's model and writes it to the
// project directory. Saving requires an active project and is rejected
// while capture mode is armed. The dirty flag is cleared only on a
// successful write.
func (c *Controller) Save(ctx context.Context) error {
	c.mu.Lock()
	if c.project == nil {
		c.mu.Unlock()
		return ErrNoActiveProject
	}
	if c.capture != nil && c.capture.Armed() {
		c.mu.Unlock()
		return ErrSaveWhileCapturing
	}

	dir := c.project.dir
	doc := c.project.model.ToDocument()
	if err := c.store.SaveDocument(ctx, dir, doc); err != nil {
		c.mu.Unlock()
		return fmt.Errorf("save project %s: %w", dir, err)
	}

	c.project.dirty = false
	c.mu.Unlock()

	if c.logger != nil {
		c.logger.Info("project saved", "dir", dir, "slides", len(doc.Slides))
	}
	c.publish(Event{Type: EventProjectSaved, Path: dir, Index: -1})
	return nil
}

// AppendSlide adds a captured slide to the active project's model,
// marks the project dirty and announces the addition. Called by the
// capture session on each capture trigger.
func (c *Controller) AppendSlide(path string, x, y int) (Slide, error) {
	c.mu.Lock()
	if c.project == nil {
		c.mu.Unlock()
		return Slide{}, ErrNoActiveProject
	}

	slide, err := c.project.model.AddSlide(path, x, y)
	if err != nil {
		c.mu.Unlock()
		return Slide{}, err
	}

	c.project.dirty = true
	index := c.project.model.Len() - 1
	c.mu.Unlock()

	if c.logger != nil {
		c.logger.Debug("slide added", "path", path, "x", x, "y", y, "index", index)
	}
	c.publish(Event{Type: EventSlideAdded, Path: path, Index: index})
	return slide, nil
}

// Select changes the selected slide and announces the change.
func (c *Controller) Select(index int) error {
	c.mu.Lock()
	if c.project == nil {
		c.mu.Unlock()
		return ErrNoActiveProject
	}
	if index < 0 || index >= c.project.model.Len() {
		c.mu.Unlock()
		return fmt.Errorf("selection index %d out of range", index)
	}

	c.selected = index
	path := c.project.model.Slides()[index].Path
	c.mu.Unlock()

	c.publish(Event{Type: EventSelectionChanged, Path: path, Index: index})
	return nil
}

// Selected returns the selected slide index, or -1 when nothing is selected.
func (c *Controller) Selected() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

// MarkDirty flags the active project as diverging from disk.
func (c *Controller) MarkDirty() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.project != nil {
		c.project.dirty = true
	}
}

// IsDirty reports whether the active project has unsaved changes.
// False when no project is active.
func (c *Controller) IsDirty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.project != nil && c.project.dirty
}

// HasProject reports whether a project is active.
func (c *Controller) HasProject() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.project != nil
}

// ProjectDir returns the active project directory.
func (c *Controller) ProjectDir() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.project == nil {
		return "", false
	}
	return c.project.dir, true
}

// ProjectStatus reports how the active project came to be.
func (c *Controller) ProjectStatus() (ProjectStatus, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.project == nil {
		return "", false
	}
	return c.project.status, true
}

// Slides returns a snapshot of the active project's slides, empty when
// no project is active.
func (c *Controller) Slides() []Slide {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.project == nil {
		return nil
	}
	return c.project.model.Slides()
}

// SlidePaths returns a snapshot sequence of the active project's slide
// image paths in presentation order.
func (c *Controller) SlidePaths() iter.Seq[string] {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.project == nil {
		return func(yield func(string) bool) {}
	}
	return c.project.model.SlidePaths()
}

// SlideCount reports the number of slides in the active project.
func (c *Controller) SlideCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.project == nil {
		return 0
	}
	return c.project.model.Len()
}

// CloseRequiresConfirmation reports whether quitting now would lose
// unsaved changes. The decision to discard or save stays with the
// caller; the controller only guarantees the flag is accurate.
func (c *Controller) CloseRequiresConfirmation() bool {
	return c.IsDirty()
}

func (c *Controller) publish(e Event) {
	e.Timestamp = time.Now().Unix()
	c.bus.Publish(e)
}
