package desktop

import "sync"

// Pointer tracks the last reported cursor position. A host input hook
// calls Move; the capture session reads CursorPosition at capture time.
type Pointer struct {
	mu sync.Mutex
	x  int
	y  int
}

// Move records the current cursor position.
func (p *Pointer) Move(x, y int) {
	p.mu.Lock()
	p.x, p.y = x, y
	p.mu.Unlock()
}

// CursorPosition returns the last recorded position.
func (p *Pointer) CursorPosition() (x, y int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.x, p.y
}
