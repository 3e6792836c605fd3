// Package pubsub implements the change-notification fan-out used by the
// cart and wishlist state: synchronous delivery, in registration order,
// with subscription lifetime controlled by the returned cancel func.
package pubsub

import "sync"

type subscriber[E any] struct {
	id int
	fn func(E)
}

// Broker fans events out to subscribers.
// The zero value is ready to use.
type Broker[E any] struct {
	mu   sync.Mutex
	subs []subscriber[E]
	next int
}

// Subscribe registers fn and returns a cancel func that removes the
// subscription. Cancel is safe to call more than once.
func (b *Broker[E]) Subscribe(fn func(E)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	b.subs = append(b.subs, subscriber[E]{id: id, fn: fn})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers e to every subscriber registered at the time of the
// call, synchronously and in registration order.
func (b *Broker[E]) Publish(e E) {
	b.mu.Lock()
	subs := make([]subscriber[E], len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, s := range subs {
		s.fn(e)
	}
}
