package host

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

// Registry is a Commands implementation shared by host implementations.
type Registry struct {
	mu       sync.Mutex
	handlers map[string]Handler
}

func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register binds id to h. Registering an id twice replaces the handler.
func (r *Registry) Register(id string, h Handler) Disposable {
	r.mu.Lock()
	r.handlers[id] = h
	r.mu.Unlock()

	return DisposeFunc(func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.handlers, id)
	})
}

func (r *Registry) Execute(ctx context.Context, id string) error {
	r.mu.Lock()
	h, ok := r.handlers[id]
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("command '%s' not found", id)
	}
	return h(ctx)
}

// Registered reports whether a handler is bound to id.
func (r *Registry) Registered(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.handlers[id]
	return ok
}

// Bus is a synchronous Events implementation.
type Bus struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(Event)
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]func(Event))}
}

func (b *Bus) Subscribe(fn func(Event)) Disposable {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	b.mu.Unlock()

	return DisposeFunc(func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, id)
	})
}

// Publish delivers e to every subscriber in subscription order.
func (b *Bus) Publish(e Event) {
	b.mu.Lock()
	ids := make([]int, 0, len(b.subs))
	for id := range b.subs {
		ids = append(ids, id)
	}
	b.mu.Unlock()

	slices.Sort(ids)
	for _, id := range ids {
		b.mu.Lock()
		fn, ok := b.subs[id]
		b.mu.Unlock()
		if ok {
			fn(e)
		}
	}
}

// Subscribers returns the number of live subscriptions.
func (b *Bus) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}
