package platform

import (
	"log/slog"

	"github.com/dahuapp/dahu/pkg/bus"
	"github.com/dahuapp/dahu/pkg/capture"
	"github.com/dahuapp/dahu/pkg/core"
)

// options holds the internal configuration for the editor assembly.
type options struct {
	store        core.Store
	screen       capture.ScreenProvider
	pointer      capture.PointerProvider
	triggers     capture.TriggerSource
	keymap       capture.Keymap
	bus          *bus.Bus[core.Event]
	logger       *slog.Logger
	documentName string
}

// Option defines a functional option for configuring the editor.
type Option func(*options)

// defaultOptions returns the default configuration. Collaborators left
// nil are filled in with the filesystem/desktop adapters by New.
func defaultOptions() *options {
	return &options{}
}

// WithLogger sets the logger shared by all components.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStore injects a custom persistence store (e.g. in-memory for tests).
func WithStore(store core.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithScreenProvider injects the screen capture collaborator.
func WithScreenProvider(screen capture.ScreenProvider) Option {
	return func(o *options) {
		o.screen = screen
	}
}

// WithPointerProvider injects the cursor position collaborator.
func WithPointerProvider(pointer capture.PointerProvider) Option {
	return func(o *options) {
		o.pointer = pointer
	}
}

// WithTriggerSource injects the key trigger collaborator.
func WithTriggerSource(triggers capture.TriggerSource) Option {
	return func(o *options) {
		o.triggers = triggers
	}
}

// WithKeymap overrides the default capture/exit key bindings.
func WithKeymap(keymap capture.Keymap) Option {
	return func(o *options) {
		o.keymap = keymap
	}
}

// WithBus injects a pre-existing event bus so subscribers can be wired
// before the editor is assembled.
func WithBus(b *bus.Bus[core.Event]) Option {
	return func(o *options) {
		o.bus = b
	}
}

// WithDocumentName overrides the project document filename.
func WithDocumentName(name string) Option {
	return func(o *options) {
		o.documentName = name
	}
}
