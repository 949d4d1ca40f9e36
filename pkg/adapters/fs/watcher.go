package fs

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/fsnotify/fsnotify"

	"github.com/dahuapp/dahu/pkg/bus"
	"github.com/dahuapp/dahu/pkg/core"
)

// Watcher observes a project directory and publishes an
// EventDocumentModified whenever the project document changes on disk.
// This includes the application's own saves; consumers that save
// through the controller can correlate using the EventProjectSaved
// they receive first.
type Watcher struct {
	*worker.BaseWorker
	dir       string
	docName   string
	bus       *bus.Bus[core.Event]
	logger    *slog.Logger
	watcher   *fsnotify.Watcher
	debouncer *debouncer
	cancel    context.CancelFunc
}

// NewWatcher creates a watcher for the project directory dir. Events
// are published on b.
func NewWatcher(dir string, b *bus.Bus[core.Event], config Config) *Watcher {
	docName := config.DocumentName
	if docName == "" {
		docName = core.DocumentFileName
	}
	return &Watcher{
		BaseWorker: worker.NewBaseWorker("document-watcher"),
		dir:        dir,
		docName:    docName,
		bus:        b,
		logger:     config.Logger,
	}
}

// Start begins watching. It may only be called once per watcher.
func (w *Watcher) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	status := w.State().Status
	if status != worker.StatusCreated && status != worker.StatusPending {
		return fmt.Errorf("watcher already started (status: %s)", status)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(w.dir); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}

	w.watcher = watcher
	w.debouncer = newDebouncer(50 * time.Millisecond)

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.SetStatus(worker.StatusRunning)
	return w.StartFunc(runCtx, w.run)
}

// Stop halts the watcher and waits for the event loop to finish.
func (w *Watcher) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.StopRequested = true
		w.cancel()
	}
	return w.BaseWorker.Stop(ctx)
}

// State reports worker state for diagnostics.
func (w *Watcher) State() worker.State {
	return w.ExportState(func(s *worker.State) {
		s.Metadata = map[string]string{
			worker.MetadataType: string(worker.TypeGoroutine),
		}
	})
}

func (w *Watcher) run(ctx context.Context) error {
	defer w.watcher.Close()
	defer w.debouncer.stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			if w.logger != nil {
				w.logger.Error("fsnotify error", "error", err)
			}
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	name := filepath.Base(event.Name)
	if name != w.docName {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}

	if w.logger != nil {
		w.logger.Debug("document changed on disk", "path", event.Name, "op", event.Op.String())
	}

	dir := w.dir
	w.debouncer.add(func() {
		w.bus.Publish(core.Event{
			Type:      core.EventDocumentModified,
			Path:      dir,
			Index:     -1,
			Timestamp: time.Now().Unix(),
		})
	})
}
