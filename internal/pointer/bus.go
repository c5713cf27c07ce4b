package pointer

import (
	"sync"
	"sync/atomic"
)

// Handler receives pointer events.
type Handler func(Event)

// Bus is the surface-wide pointer stream. Handlers subscribe per event kind
// and are called synchronously, in subscription order, from Publish.
type Bus struct {
	mu   sync.Mutex
	subs []*Subscription
}

// Subscription is a registered handler. It stays live until Cancel.
type Subscription struct {
	bus     *Bus
	kind    Kind
	handler Handler
	active  atomic.Bool
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers h for events of the given kind.
func (b *Bus) Subscribe(kind Kind, h Handler) *Subscription {
	s := &Subscription{bus: b, kind: kind, handler: h}
	s.active.Store(true)

	b.mu.Lock()
	b.subs = append(b.subs, s)
	b.mu.Unlock()

	return s
}

// Publish delivers ev to every live subscription for its kind.
// A subscription cancelled while ev is being delivered is skipped.
func (b *Bus) Publish(ev Event) {
	b.mu.Lock()
	targets := make([]*Subscription, 0, len(b.subs))
	for _, s := range b.subs {
		if s.kind == ev.Kind {
			targets = append(targets, s)
		}
	}
	b.mu.Unlock()

	for _, s := range targets {
		if s.active.Load() {
			s.handler(ev)
		}
	}
}

// Len returns the number of live subscriptions.
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Cancel removes the subscription. Safe to call more than once and from
// inside a handler.
func (s *Subscription) Cancel() {
	if !s.active.CompareAndSwap(true, false) {
		return
	}

	b := s.bus
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, sub := range b.subs {
		if sub == s {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			break
		}
	}
}

// Active reports whether the subscription is still registered.
func (s *Subscription) Active() bool {
	return s.active.Load()
}
