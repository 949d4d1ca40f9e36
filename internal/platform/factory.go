package platform

import (
	"context"

	"github.com/dahuapp/dahu/pkg/adapters/desktop"
	"github.com/dahuapp/dahu/pkg/adapters/fs"
	"github.com/dahuapp/dahu/pkg/bus"
	"github.com/dahuapp/dahu/pkg/capture"
	"github.com/dahuapp/dahu/pkg/core"
)

// Editor is the assembled application core: project controller,
// capture session and the event bus that connects them to a
// presentation layer.
type Editor struct {
	Controller *core.Controller
	Session    *capture.Session
	Bus        *bus.Bus[core.Event]

	opts *options
}

// New assembles an editor. Collaborators not supplied via options
// default to the filesystem store and the desktop adapters.
func New(opts ...Option) *Editor {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.bus == nil {
		o.bus = bus.New[core.Event](o.logger)
	}
	if o.store == nil {
		o.store = fs.NewProjectStore(fs.Config{
			Logger:       o.logger,
			DocumentName: o.documentName,
		})
	}
	if o.screen == nil {
		o.screen = &desktop.SyntheticScreen{Logger: o.logger}
	}
	if o.pointer == nil {
		o.pointer = &desktop.Pointer{}
	}
	if o.triggers == nil {
		o.triggers = desktop.NewKeySource()
	}

	controller := core.NewController(o.store, o.bus, o.logger)
	session := capture.NewSession(capture.Config{
		Controller: controller,
		Screen:     o.screen,
		Pointer:    o.pointer,
		Triggers:   o.triggers,
		Keymap:     o.keymap,
		Logger:     o.logger,
	})

	return &Editor{
		Controller: controller,
		Session:    session,
		Bus:        o.bus,
		opts:       o,
	}
}

// WatchProject starts a filesystem watcher on the active project
// directory. External modifications of the project document surface as
// EventDocumentModified on the bus. The caller stops the watcher via
// its Stop method.
func (e *Editor) WatchProject(ctx context.Context) (*fs.Watcher, error) {
	dir, ok := e.Controller.ProjectDir()
	if !ok {
		return nil, core.ErrNoActiveProject
	}

	w := fs.NewWatcher(dir, e.Bus, fs.Config{
		Logger:       e.opts.logger,
		DocumentName: e.opts.documentName,
	})
	if err := w.Start(ctx); err != nil {
		return nil, err
	}
	return w, nil
}
