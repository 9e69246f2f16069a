package events

import (
	"log/slog"
	"sync"
)

// Handler processes a single event. Handlers run synchronously on the
// emitting goroutine, in subscription order.
type Handler func(Event)

// Bus manages event distribution
type Bus struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[Type][]*Subscription
}

// Subscription is the handle returned by Subscribe. Cancel removes the
// handler; canceling twice is a no-op.
type Subscription struct {
	id        uint64
	evtType   Type
	bus       *Bus
	handlerFn Handler
}

// Cancel removes the subscription from the bus
func (s *Subscription) Cancel() {
	s.bus.unsubscribe(s.evtType, s.id)
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		subs: make(map[Type][]*Subscription),
	}
}

// Subscribe registers a handler for an event type and returns its
// subscription handle.
func (b *Bus) Subscribe(evtType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	sub := &Subscription{id: b.nextID, evtType: evtType, bus: b, handlerFn: handler}
	b.subs[evtType] = append(b.subs[evtType], sub)
	return sub
}

func (b *Bus) unsubscribe(evtType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subs[evtType]
	for i, s := range subs {
		if s.id == id {
			b.subs[evtType] = append(subs[:i], subs[i+1:]...)
			return
		}
	}
}

// Emit delivers an event to all subscribers of its type, in the order
// they subscribed.
func (b *Bus) Emit(event Event) {
	b.mu.RLock()
	subs := make([]*Subscription, len(b.subs[event.Type()]))
	copy(subs, b.subs[event.Type()])
	b.mu.RUnlock()

	slog.Debug("emitting leveling event",
		"type", string(event.Type()),
		"actor_id", event.ActorID(),
		"subscribers", len(subs),
	)

	for _, s := range subs {
		s.handlerFn(event)
	}
}

// Clear removes all subscriptions
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subs = make(map[Type][]*Subscription)
}
