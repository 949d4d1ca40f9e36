package desktop

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/dahuapp/dahu/pkg/bus"
	"github.com/dahuapp/dahu/pkg/capture"
)

// KeySource fans key events out to subscribers in subscription order.
// It backs both the programmatic Push API (tests, embedders with their
// own input hook) and ReaderSource below.
type KeySource struct {
	bus *bus.Bus[capture.Key]
}

// NewKeySource creates an empty source.
func NewKeySource() *KeySource {
	return &KeySource{bus: bus.New[capture.Key](nil)}
}

// Subscribe implements capture.TriggerSource.
func (s *KeySource) Subscribe(handler func(capture.Key)) (func(), error) {
	token := s.bus.Subscribe(handler)
	return func() { s.bus.Unsubscribe(token) }, nil
}

// Push delivers one key event to all current subscribers.
func (s *KeySource) Push(key capture.Key) {
	s.bus.Publish(key)
}

// ReaderSource turns lines read from r into key events: each line is
// one lower-cased key name ("c", "esc", "q"). Suitable for driving a
// capture session from cooked-mode stdin.
type ReaderSource struct {
	*KeySource
	r io.Reader
}

// NewReaderSource wraps r. Run must be called to start reading.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{KeySource: NewKeySource(), r: r}
}

// Run reads key names until r is exhausted or ctx is cancelled.
func (s *ReaderSource) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(s.r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if line == "" {
			continue
		}
		s.Push(capture.Key(line))
	}
	return scanner.Err()
}

var _ capture.TriggerSource = (*KeySource)(nil)
