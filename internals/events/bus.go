// file: internals/events/bus.go
package events

import (
	"log"
	"sync"
)

// Handler consumes one event. Errors are logged, never propagated back to
// the publisher: a failed notification must not fail the mutation that
// triggered it.
type Handler func(Event) error

// Bus is an in-process publish/subscribe queue. Publish enqueues and
// returns immediately; a single dispatcher goroutine fans events out to
// subscribers (at-least-once, fire-and-forget).
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	queue    chan Event
	done     chan struct{}
	closed   bool
}

func NewBus(buffer int) *Bus {
	if buffer <= 0 {
		buffer = 256
	}
	b := &Bus{
		handlers: make(map[string][]Handler),
		queue:    make(chan Event, buffer),
		done:     make(chan struct{}),
	}
	go b.dispatch()
	return b
}

// Subscribe registers a handler for an event name. Must be called during
// startup wiring, before traffic.
func (b *Bus) Subscribe(name string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[name] = append(b.handlers[name], h)
}

// Publish enqueues the event. When the queue is full the event is dropped
// with a log line rather than blocking the request path.
func (b *Bus) Publish(e Event) {
	// the lock is held across the send so Close cannot close the channel
	// between the flag check and the enqueue
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	select {
	case b.queue <- e:
	default:
		log.Printf("[WARN] event bus full, dropping %s", e.Name)
	}
}

// Close drains the queue and stops the dispatcher.
func (b *Bus) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	b.mu.Unlock()

	close(b.queue)
	<-b.done
}

func (b *Bus) dispatch() {
	defer close(b.done)
	for e := range b.queue {
		b.mu.RLock()
		hs := append([]Handler(nil), b.handlers[e.Name]...)
		b.mu.RUnlock()
		for _, h := range hs {
			if err := h(e); err != nil {
				log.Printf("[ERROR] event handler %s: %v", e.Name, err)
			}
		}
	}
}
