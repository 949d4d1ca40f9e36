// Package bus provides a minimal in-process publish/subscribe primitive.
//
// Delivery is synchronous and ordered: Publish invokes handlers in
// subscription order within the calling goroutine. There is no buffering
// and no replay; a subscriber only sees events published after it
// subscribed.
package bus

import (
	"log/slog"
	"sync"
)

// Handler receives published events.
type Handler[T any] func(T)

// Token identifies a subscription so it can be cancelled later.
// Function values are not comparable, so Unsubscribe works on tokens
// rather than on the handler itself.
type Token uint64

type subscription[T any] struct {
	token   Token
	handler Handler[T]
}

// Bus fans events out to subscribers in subscription order.
type Bus[T any] struct {
	mu     sync.Mutex
	next   Token
	subs   []subscription[T]
	logger *slog.Logger
}

// New creates an empty bus. The logger may be nil; it is only used to
// report handlers that panic during delivery.
func New[T any](logger *slog.Logger) *Bus[T] {
	return &Bus[T]{logger: logger}
}

// Subscribe registers a handler and returns a token for Unsubscribe.
func (b *Bus[T]) Subscribe(h Handler[T]) Token {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.next++
	b.subs = append(b.subs, subscription[T]{token: b.next, handler: h})
	return b.next
}

// Unsubscribe removes the subscription identified by token.
// Unknown tokens are ignored.
func (b *Bus[T]) Unsubscribe(token Token) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, s := range b.subs {
		if s.token == token {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// Publish delivers event to every current subscriber, in subscription
// order. A panicking handler is isolated and reported so the remaining
// handlers still run.
func (b *Bus[T]) Publish(event T) {
	b.mu.Lock()
	subs := make([]subscription[T], len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, s := range subs {
		b.deliver(s, event)
	}
}

// Len reports the number of active subscriptions.
func (b *Bus[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

func (b *Bus[T]) deliver(s subscription[T], event T) {
	defer func() {
		if r := recover(); r != nil {
			if b.logger != nil {
				b.logger.Error("event handler panicked", "token", s.token, "panic", r)
			}
		}
	}()
	s.handler(event)
}
