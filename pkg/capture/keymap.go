package capture

// Action is what a key press means to an armed session.
type Action string

const (
	// ActionCapture records a new slide.
	ActionCapture Action = "capture"
	// ActionExit leaves capture mode.
	ActionExit Action = "exit"
)

// Keymap maps key names to session actions. The exact bindings are a
// configuration concern; the session only cares about the two actions.
type Keymap struct {
	Capture []Key `yaml:"capture"`
	Exit    []Key `yaml:"exit"`
}

// DefaultKeymap returns the stock bindings: c or f7 captures, esc or q
// exits.
func DefaultKeymap() Keymap {
	return Keymap{
		Capture: []Key{"c", "f7"},
		Exit:    []Key{"esc", "q"},
	}
}

// Resolve maps a key to its action, if any.
func (k Keymap) Resolve(key Key) (Action, bool) {
	for _, c := range k.Capture {
		if c == key {
			return ActionCapture, true
		}
	}
	for _, e := range k.Exit {
		if e == key {
			return ActionExit, true
		}
	}
	return "", false
}

func (k Keymap) empty() bool {
	return len(k.Capture) == 0 && len(k.Exit) == 0
}
