package dahu

import (
	"log/slog"

	"github.com/dahuapp/dahu/internal/platform"
	"github.com/dahuapp/dahu/pkg/bus"
	"github.com/dahuapp/dahu/pkg/capture"
	"github.com/dahuapp/dahu/pkg/core"
)

// --- Types ---

// Editor is the assembled application core.
type Editor = platform.Editor

// Controller owns the active project.
type Controller = core.Controller

// Session is the capture-mode state machine.
type Session = capture.Session

// Slide is one captured moment.
type Slide = core.Slide

// Event is a model change a presentation layer may react to.
type Event = core.Event

// Keymap maps key names to capture actions.
type Keymap = capture.Keymap

// --- Configuration ---

// Option defines a functional option for configuring the editor.
type Option = platform.Option

// WithLogger sets the logger shared by all components.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStore injects a custom persistence store.
func WithStore(store core.Store) Option {
	return platform.WithStore(store)
}

// WithScreenProvider injects the screen capture collaborator.
func WithScreenProvider(screen capture.ScreenProvider) Option {
	return platform.WithScreenProvider(screen)
}

// WithPointerProvider injects the cursor position collaborator.
func WithPointerProvider(pointer capture.PointerProvider) Option {
	return platform.WithPointerProvider(pointer)
}

// WithTriggerSource injects the key trigger collaborator.
func WithTriggerSource(triggers capture.TriggerSource) Option {
	return platform.WithTriggerSource(triggers)
}

// WithKeymap overrides the default capture/exit key bindings.
func WithKeymap(keymap capture.Keymap) Option {
	return platform.WithKeymap(keymap)
}

// WithBus injects a pre-existing event bus.
func WithBus(b *bus.Bus[core.Event]) Option {
	return platform.WithBus(b)
}

// WithDocumentName overrides the project document filename.
func WithDocumentName(name string) Option {
	return platform.WithDocumentName(name)
}

// --- Factory ---

// New assembles an editor with the given options. Collaborators not
// supplied default to the filesystem store and the desktop adapters.
func New(opts ...Option) *Editor {
	return platform.New(opts...)
}
