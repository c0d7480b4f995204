package pubsub

import (
	"context"
	"sync"

	"complaintbox/internal/domain/complaint"
)

// LocalChangeBus is an in-process fan-out of change events for
// single-instance deployments running without Redis. Same contract as
// the Redis bus: at-most-once, no row payloads.
type LocalChangeBus struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[int]func(complaint.ChangeEvent)
}

func NewLocalChangeBus() *LocalChangeBus {
	return &LocalChangeBus{
		handlers: make(map[int]func(complaint.ChangeEvent)),
	}
}

func (b *LocalChangeBus) Publish(_ context.Context, event complaint.ChangeEvent) error {
	b.mu.RLock()
	handlers := make([]func(complaint.ChangeEvent), 0, len(b.handlers))
	for _, h := range b.handlers {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(event)
	}
	return nil
}

func (b *LocalChangeBus) Subscribe(_ context.Context, handler func(complaint.ChangeEvent)) (complaint.Subscription, error) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.handlers[id] = handler
	b.mu.Unlock()

	return &localSubscription{bus: b, id: id}, nil
}

type localSubscription struct {
	bus  *LocalChangeBus
	id   int
	once sync.Once
}

func (s *localSubscription) Close() {
	s.once.Do(func() {
		s.bus.mu.Lock()
		delete(s.bus.handlers, s.id)
		s.bus.mu.Unlock()
	})
}
