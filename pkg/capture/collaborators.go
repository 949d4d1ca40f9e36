// Package capture implements the capture-mode state machine.
//
// A Session toggles between disarmed and armed. While armed it listens
// to a trigger source for two inputs: a capture trigger, which asks the
// screen and pointer collaborators for a new slide and appends it to
// the active project, and an exit trigger, which disarms the session.
package capture

import "context"

// Key is a discrete key event delivered by a trigger source. Values
// are lower-case key names ("c", "f7", "esc").
type Key string

// ScreenProvider produces captured screen images.
type ScreenProvider interface {
	// TakeScreen captures the screen into targetDir and returns the
	// image path relative to it. The provider assigns the filename;
	// it must be unique within the directory.
	TakeScreen(ctx context.Context, targetDir string) (string, error)
}

// PointerProvider reports the current cursor position.
type PointerProvider interface {
	CursorPosition() (x, y int)
}

// TriggerSource delivers discrete key events to a subscriber.
// Subscribe registers the handler and returns a cancel function that
// unregisters it; the source must stop calling the handler once cancel
// returns.
type TriggerSource interface {
	Subscribe(handler func(Key)) (cancel func(), err error)
}
